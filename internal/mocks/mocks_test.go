package mocks_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/gophtasks-server/internal/api/http/handler"
	"github.com/dtroode/gophtasks-server/internal/mocks"
	"github.com/dtroode/gophtasks-server/internal/model"
	"github.com/dtroode/gophtasks-server/internal/service"
)

var (
	_ model.TaskStore      = (*mocks.TaskStore)(nil)
	_ model.UserStore      = (*mocks.UserStore)(nil)
	_ model.ContextManager = (*mocks.ContextManager)(nil)
	_ service.UserService  = (*mocks.UserService)(nil)
	_ handler.UserService  = (*mocks.UserService)(nil)
	_ handler.TaskService  = (*mocks.TaskService)(nil)
)

func TestTaskStore_GetAllTasks_NilResult(t *testing.T) {
	store := mocks.NewTaskStore(t)
	store.On("GetAllTasks", mock.Anything, "1").Return(nil, nil)

	tasks, err := store.GetAllTasks(context.Background(), "1")
	assert.NoError(t, err)
	assert.Nil(t, tasks)
}

func TestContextManager_SetTokenToContext(t *testing.T) {
	ctx := context.Background()
	cm := mocks.NewContextManager(t)
	cm.On("SetTokenToContext", ctx, "tok").Return(ctx)

	assert.Equal(t, ctx, cm.SetTokenToContext(ctx, "tok"))
}
