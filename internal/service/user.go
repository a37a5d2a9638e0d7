package service

import (
	"context"

	"github.com/dtroode/gophtasks-server/internal/apierrors"
	"github.com/dtroode/gophtasks-server/internal/logger"
	"github.com/dtroode/gophtasks-server/internal/model"
)

// User resolves bearer tokens and registers users.
type User struct {
	userStore model.UserStore
	logger    *logger.Logger
}

// NewUser creates a User service. It fails with INVALID_ARGUMENT when a collaborator is missing.
func NewUser(userStore model.UserStore, logger *logger.Logger) (*User, error) {
	if userStore == nil {
		return nil, apierrors.NewErrInvalidArgument("userStore")
	}
	if logger == nil {
		return nil, apierrors.NewErrInvalidArgument("logger")
	}

	return &User{
		userStore: userStore,
		logger:    logger.With("service", "user"),
	}, nil
}

func (s *User) AddUser(ctx context.Context, username string) (model.User, error) {
	user, err := s.userStore.AddUser(ctx, username)
	if err != nil {
		return model.User{}, err
	}

	s.logger.Info("user registered", "user_id", user.ID, "name", user.Name)
	return user, nil
}

func (s *User) GetUserID(ctx context.Context, token string) (string, error) {
	return s.userStore.GetUserIDByToken(ctx, token)
}
