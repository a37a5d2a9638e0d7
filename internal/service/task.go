package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/dtroode/gophtasks-server/internal/apierrors"
	"github.com/dtroode/gophtasks-server/internal/logger"
	"github.com/dtroode/gophtasks-server/internal/model"
)

// UserService resolves bearer tokens to user ids.
type UserService interface {
	GetUserID(ctx context.Context, token string) (string, error)
}

// Task enforces ownership on every task operation.
type Task struct {
	taskStore   model.TaskStore
	userService UserService
	logger      *logger.Logger
}

// NewTask creates a Task service. It fails with INVALID_ARGUMENT when a collaborator is missing.
func NewTask(taskStore model.TaskStore, userService UserService, logger *logger.Logger) (*Task, error) {
	if taskStore == nil {
		return nil, apierrors.NewErrInvalidArgument("taskStore")
	}
	if userService == nil {
		return nil, apierrors.NewErrInvalidArgument("userService")
	}
	if logger == nil {
		return nil, apierrors.NewErrInvalidArgument("logger")
	}

	return &Task{
		taskStore:   taskStore,
		userService: userService,
		logger:      logger.With("service", "task"),
	}, nil
}

// GetTask returns the task if the token's owner owns it.
// Token resolution and task lookup run concurrently; the first failure wins.
func (s *Task) GetTask(ctx context.Context, taskID string, token string) (model.Task, error) {
	if taskID == "" {
		return model.Task{}, apierrors.NewErrMissingParameter("taskId")
	}

	var (
		userID string
		task   model.Task
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		id, err := s.userService.GetUserID(gctx, token)
		if err != nil {
			return err
		}
		userID = id
		return nil
	})
	g.Go(func() error {
		t, err := s.taskStore.GetTask(gctx, taskID)
		if err != nil {
			return err
		}
		task = t
		return nil
	})
	if err := g.Wait(); err != nil {
		return model.Task{}, err
	}

	if task.UserID != userID {
		s.logger.Warn("task access denied", "user_id", userID, "task_id", task.ID)
		return model.Task{}, apierrors.NewErrNotAuthorized(fmt.Sprintf("User %s", userID), fmt.Sprintf("Task %s", task.ID))
	}

	return task, nil
}

func (s *Task) GetAllTasks(ctx context.Context, token string) ([]model.Task, error) {
	userID, err := s.userService.GetUserID(ctx, token)
	if err != nil {
		return nil, err
	}

	return s.taskStore.GetAllTasks(ctx, userID)
}

func (s *Task) AddTask(ctx context.Context, newTask model.TaskInput, token string) (model.Task, error) {
	userID, err := s.userService.GetUserID(ctx, token)
	if err != nil {
		return model.Task{}, err
	}

	if !s.taskStore.VerifyNewTaskProperties(newTask) {
		return model.Task{}, apierrors.NewErrInvalidBody("new Task")
	}

	task, err := s.taskStore.AddTask(ctx, newTask, userID)
	if err != nil {
		return model.Task{}, err
	}

	s.logger.Debug("task added", "task_id", task.ID, "user_id", userID)
	return task, nil
}

// DeleteTask re-runs the GetTask ownership check before removing the task.
func (s *Task) DeleteTask(ctx context.Context, taskID string, token string) (model.Task, error) {
	task, err := s.GetTask(ctx, taskID, token)
	if err != nil {
		return model.Task{}, err
	}

	deleted, err := s.taskStore.DeleteTask(ctx, task.ID)
	if err != nil {
		return model.Task{}, err
	}

	s.logger.Debug("task deleted", "task_id", deleted.ID, "user_id", deleted.UserID)
	return deleted, nil
}

// UpdateTask re-runs the GetTask ownership check, validates the candidate
// and keeps the original owner.
func (s *Task) UpdateTask(ctx context.Context, taskID string, newTask model.TaskInput, token string) (model.Task, error) {
	task, err := s.GetTask(ctx, taskID, token)
	if err != nil {
		return model.Task{}, err
	}

	if !s.taskStore.VerifyNewTaskProperties(newTask) {
		return model.Task{}, apierrors.NewErrInvalidBody("new Task")
	}
	newTask.UserID = task.UserID

	updated, err := s.taskStore.UpdateTask(ctx, task.ID, newTask)
	if err != nil {
		return model.Task{}, err
	}

	s.logger.Debug("task updated", "task_id", updated.ID, "user_id", updated.UserID)
	return updated, nil
}
