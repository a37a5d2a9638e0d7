package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dtroode/gophtasks-server/internal/apierrors"
	"github.com/dtroode/gophtasks-server/internal/logger"
	"github.com/dtroode/gophtasks-server/internal/model"
)

// TaskService performs ownership-checked task operations on behalf of a token.
type TaskService interface {
	GetTask(ctx context.Context, taskID string, token string) (model.Task, error)
	GetAllTasks(ctx context.Context, token string) ([]model.Task, error)
	AddTask(ctx context.Context, newTask model.TaskInput, token string) (model.Task, error)
	UpdateTask(ctx context.Context, taskID string, newTask model.TaskInput, token string) (model.Task, error)
	DeleteTask(ctx context.Context, taskID string, token string) (model.Task, error)
}

// Task serves the /tasks endpoints. Every route expects the token
// middleware to have stored the bearer token on the request context.
type Task struct {
	taskService    TaskService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewTask creates a Task handler. It fails with INVALID_ARGUMENT when a collaborator is missing.
func NewTask(taskService TaskService, contextManager model.ContextManager, logger *logger.Logger) (*Task, error) {
	if taskService == nil {
		return nil, apierrors.NewErrInvalidArgument("taskService")
	}
	if contextManager == nil {
		return nil, apierrors.NewErrInvalidArgument("contextManager")
	}
	if logger == nil {
		return nil, apierrors.NewErrInvalidArgument("logger")
	}
	return &Task{taskService: taskService, contextManager: contextManager, logger: logger}, nil
}

type addTaskResponse struct {
	Status string     `json:"status"`
	Task   model.Task `json:"task"`
}

// GetTask handles GET /tasks/{taskId}.
func (h *Task) GetTask(w http.ResponseWriter, r *http.Request) {
	token, ok := h.token(w, r)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(r.Context(), mux.Vars(r)["taskId"], token)
	if err != nil {
		h.fail(w, "failed to get task", err)
		return
	}

	writeJSON(w, http.StatusOK, task)
}

// GetAllTasks handles GET /tasks.
func (h *Task) GetAllTasks(w http.ResponseWriter, r *http.Request) {
	token, ok := h.token(w, r)
	if !ok {
		return
	}

	tasks, err := h.taskService.GetAllTasks(r.Context(), token)
	if err != nil {
		h.fail(w, "failed to get tasks", err)
		return
	}
	if tasks == nil {
		tasks = []model.Task{}
	}

	writeJSON(w, http.StatusOK, tasks)
}

// AddTask handles POST /tasks.
func (h *Task) AddTask(w http.ResponseWriter, r *http.Request) {
	token, ok := h.token(w, r)
	if !ok {
		return
	}

	newTask, ok := decodeTask(w, r)
	if !ok {
		return
	}

	task, err := h.taskService.AddTask(r.Context(), newTask, token)
	if err != nil {
		h.fail(w, "failed to add task", err)
		return
	}

	writeJSON(w, http.StatusCreated, addTaskResponse{
		Status: fmt.Sprintf("Task %s was added!", task.ID),
		Task:   task,
	})
}

// UpdateTask handles PUT /tasks/{taskId}. Without an id it fails with MISSING_PARAMETER.
func (h *Task) UpdateTask(w http.ResponseWriter, r *http.Request) {
	token, ok := h.token(w, r)
	if !ok {
		return
	}

	newTask, ok := decodeTask(w, r)
	if !ok {
		return
	}

	if _, err := h.taskService.UpdateTask(r.Context(), mux.Vars(r)["taskId"], newTask, token); err != nil {
		h.fail(w, "failed to update task", err)
		return
	}

	writeJSON(w, http.StatusOK, struct{}{})
}

// DeleteTask handles DELETE /tasks/{taskId}. Without an id it fails with MISSING_PARAMETER.
func (h *Task) DeleteTask(w http.ResponseWriter, r *http.Request) {
	token, ok := h.token(w, r)
	if !ok {
		return
	}

	if _, err := h.taskService.DeleteTask(r.Context(), mux.Vars(r)["taskId"], token); err != nil {
		h.fail(w, "failed to delete task", err)
		return
	}

	writeJSON(w, http.StatusOK, struct{}{})
}

func (h *Task) token(w http.ResponseWriter, r *http.Request) (string, bool) {
	token, ok := h.contextManager.GetTokenFromContext(r.Context())
	if !ok {
		WriteError(w, apierrors.NewErrMissingToken())
		return "", false
	}
	return token, true
}

func (h *Task) fail(w http.ResponseWriter, msg string, err error) {
	if _, ok := apierrors.CodeOf(err); !ok {
		h.logger.Error(msg, "error", err)
	}
	WriteError(w, err)
}

func decodeTask(w http.ResponseWriter, r *http.Request) (model.TaskInput, bool) {
	var newTask model.TaskInput
	if err := json.NewDecoder(r.Body).Decode(&newTask); err != nil {
		WriteError(w, apierrors.NewErrInvalidBody("malformed JSON"))
		return model.TaskInput{}, false
	}
	return newTask, true
}
