package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/gophtasks-server/internal/apierrors"
	"github.com/dtroode/gophtasks-server/internal/mocks"
	"github.com/dtroode/gophtasks-server/internal/model"
	"github.com/dtroode/gophtasks-server/internal/repository/memory"
	"github.com/dtroode/gophtasks-server/internal/testutil"
)

const (
	asilvaToken = "b0506867-77c3-4142-9437-1f627deebd67"
	pnunesToken = "f1d1cdbc-97f0-41c4-b206-051250684b19"
)

func TestNewUser_MissingCollaborators(t *testing.T) {
	_, err := NewUser(nil, testutil.MakeNoopLogger())
	require.Error(t, err)
	assert.True(t, apierrors.HasCode(err, apierrors.CodeInvalidArgument))
	assert.Equal(t, "Invalid argument userStore", err.Error())

	_, err = NewUser(memory.NewUserRepository(nil), nil)
	assert.True(t, apierrors.HasCode(err, apierrors.CodeInvalidArgument))
}

func TestUser_GetUserID(t *testing.T) {
	ctx := context.Background()
	svc, err := NewUser(memory.NewUserRepository(memory.SeedUsers()), testutil.MakeNoopLogger())
	require.NoError(t, err)

	id, err := svc.GetUserID(ctx, asilvaToken)
	require.NoError(t, err)
	assert.Equal(t, "1", id)

	id, err = svc.GetUserID(ctx, pnunesToken)
	require.NoError(t, err)
	assert.Equal(t, "2", id)

	_, err = svc.GetUserID(ctx, "nope")
	assert.True(t, apierrors.HasCode(err, apierrors.CodeUserNotFound))
}

func TestUser_AddUser(t *testing.T) {
	ctx := context.Background()
	svc, err := NewUser(memory.NewUserRepository(memory.SeedUsers()), testutil.MakeNoopLogger())
	require.NoError(t, err)

	user, err := svc.AddUser(ctx, "jdoe")
	require.NoError(t, err)
	assert.Equal(t, "3", user.ID)
	assert.NotEmpty(t, user.Token)

	id, err := svc.GetUserID(ctx, user.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, id)
}

func TestUser_AddUser_StoreError(t *testing.T) {
	store := mocks.NewUserStore(t)
	store.On("AddUser", mock.Anything, "").Return(model.User{}, apierrors.NewErrInvalidBody("username"))

	svc, err := NewUser(store, testutil.MakeNoopLogger())
	require.NoError(t, err)

	_, err = svc.AddUser(context.Background(), "")
	assert.True(t, apierrors.HasCode(err, apierrors.CodeInvalidBody))
}
