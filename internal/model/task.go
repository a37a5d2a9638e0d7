package model

import "context"

// TaskStore defines persistence operations for tasks.
type TaskStore interface {
	GetTask(ctx context.Context, taskID string) (Task, error)
	GetAllTasks(ctx context.Context, userID string) ([]Task, error)
	AddTask(ctx context.Context, newTask TaskInput, userID string) (Task, error)
	UpdateTask(ctx context.Context, taskID string, newTask TaskInput) (Task, error)
	DeleteTask(ctx context.Context, taskID string) (Task, error)
	VerifyNewTaskProperties(newTask TaskInput) bool
}

// Task represents a stored task owned by exactly one user.
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	UserID      string `json:"userId"`
}

// TaskInput is a caller supplied candidate for a new or updated task.
// UserID is accepted on the wire but never trusted.
type TaskInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	UserID      string `json:"userId,omitempty"`
}

// HasTitle reports whether the only mandatory field is present.
func (t TaskInput) HasTitle() bool {
	return t.Title != ""
}
