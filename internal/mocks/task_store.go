package mocks

import (
	"context"

	"github.com/dtroode/gophtasks-server/internal/model"
	"github.com/stretchr/testify/mock"
)

// TaskStore mocks model.TaskStore.
type TaskStore struct {
	mock.Mock
}

func (m *TaskStore) AddTask(ctx context.Context, newTask model.TaskInput, userID string) (model.Task, error) {
	ret := m.Called(ctx, newTask, userID)

	return ret.Get(0).(model.Task), ret.Error(1)
}

func (m *TaskStore) DeleteTask(ctx context.Context, taskID string) (model.Task, error) {
	ret := m.Called(ctx, taskID)

	return ret.Get(0).(model.Task), ret.Error(1)
}

func (m *TaskStore) GetAllTasks(ctx context.Context, userID string) ([]model.Task, error) {
	ret := m.Called(ctx, userID)

	var r0 []model.Task
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Task)
	}

	return r0, ret.Error(1)
}

func (m *TaskStore) GetTask(ctx context.Context, taskID string) (model.Task, error) {
	ret := m.Called(ctx, taskID)

	return ret.Get(0).(model.Task), ret.Error(1)
}

func (m *TaskStore) UpdateTask(ctx context.Context, taskID string, newTask model.TaskInput) (model.Task, error) {
	ret := m.Called(ctx, taskID, newTask)

	return ret.Get(0).(model.Task), ret.Error(1)
}

func (m *TaskStore) VerifyNewTaskProperties(newTask model.TaskInput) bool {
	ret := m.Called(newTask)

	return ret.Bool(0)
}

// NewTaskStore returns a TaskStore mock whose expectations are asserted on test cleanup.
func NewTaskStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *TaskStore {
	mk := &TaskStore{}
	mk.Mock.Test(t)

	t.Cleanup(func() { mk.AssertExpectations(t) })

	return mk
}
