package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// ContextManager mocks model.ContextManager.
type ContextManager struct {
	mock.Mock
}

func (m *ContextManager) GetTokenFromContext(ctx context.Context) (string, bool) {
	ret := m.Called(ctx)

	return ret.String(0), ret.Bool(1)
}

func (m *ContextManager) SetTokenToContext(ctx context.Context, token string) context.Context {
	ret := m.Called(ctx, token)

	var r0 context.Context
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(context.Context)
	}

	return r0
}

// NewContextManager returns a ContextManager mock whose expectations are asserted on test cleanup.
func NewContextManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *ContextManager {
	mk := &ContextManager{}
	mk.Mock.Test(t)

	t.Cleanup(func() { mk.AssertExpectations(t) })

	return mk
}
