package mocks

import (
	"context"

	"github.com/dtroode/gophtasks-server/internal/model"
	"github.com/stretchr/testify/mock"
)

// UserStore mocks model.UserStore.
type UserStore struct {
	mock.Mock
}

func (m *UserStore) AddUser(ctx context.Context, username string) (model.User, error) {
	ret := m.Called(ctx, username)

	return ret.Get(0).(model.User), ret.Error(1)
}

func (m *UserStore) GetUserIDByToken(ctx context.Context, token string) (string, error) {
	ret := m.Called(ctx, token)

	return ret.String(0), ret.Error(1)
}

// NewUserStore returns a UserStore mock whose expectations are asserted on test cleanup.
func NewUserStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *UserStore {
	mk := &UserStore{}
	mk.Mock.Test(t)

	t.Cleanup(func() { mk.AssertExpectations(t) })

	return mk
}
