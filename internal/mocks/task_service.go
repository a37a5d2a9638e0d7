package mocks

import (
	"context"

	"github.com/dtroode/gophtasks-server/internal/model"
	"github.com/stretchr/testify/mock"
)

// TaskService mocks handler.TaskService.
type TaskService struct {
	mock.Mock
}

func (m *TaskService) AddTask(ctx context.Context, newTask model.TaskInput, token string) (model.Task, error) {
	ret := m.Called(ctx, newTask, token)

	return ret.Get(0).(model.Task), ret.Error(1)
}

func (m *TaskService) DeleteTask(ctx context.Context, taskID string, token string) (model.Task, error) {
	ret := m.Called(ctx, taskID, token)

	return ret.Get(0).(model.Task), ret.Error(1)
}

func (m *TaskService) GetAllTasks(ctx context.Context, token string) ([]model.Task, error) {
	ret := m.Called(ctx, token)

	var r0 []model.Task
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Task)
	}

	return r0, ret.Error(1)
}

func (m *TaskService) GetTask(ctx context.Context, taskID string, token string) (model.Task, error) {
	ret := m.Called(ctx, taskID, token)

	return ret.Get(0).(model.Task), ret.Error(1)
}

func (m *TaskService) UpdateTask(ctx context.Context, taskID string, newTask model.TaskInput, token string) (model.Task, error) {
	ret := m.Called(ctx, taskID, newTask, token)

	return ret.Get(0).(model.Task), ret.Error(1)
}

// NewTaskService returns a TaskService mock whose expectations are asserted on test cleanup.
func NewTaskService(t interface {
	mock.TestingT
	Cleanup(func())
}) *TaskService {
	mk := &TaskService{}
	mk.Mock.Test(t)

	t.Cleanup(func() { mk.AssertExpectations(t) })

	return mk
}
