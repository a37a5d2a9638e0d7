package mocks

import (
	"context"

	"github.com/dtroode/gophtasks-server/internal/model"
	"github.com/stretchr/testify/mock"
)

// UserService mocks service.UserService and handler.UserService.
type UserService struct {
	mock.Mock
}

func (m *UserService) AddUser(ctx context.Context, username string) (model.User, error) {
	ret := m.Called(ctx, username)

	return ret.Get(0).(model.User), ret.Error(1)
}

func (m *UserService) GetUserID(ctx context.Context, token string) (string, error) {
	ret := m.Called(ctx, token)

	return ret.String(0), ret.Error(1)
}

// NewUserService returns a UserService mock whose expectations are asserted on test cleanup.
func NewUserService(t interface {
	mock.TestingT
	Cleanup(func())
}) *UserService {
	mk := &UserService{}
	mk.Mock.Test(t)

	t.Cleanup(func() { mk.AssertExpectations(t) })

	return mk
}
