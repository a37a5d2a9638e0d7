package memory

import (
	"context"
	"slices"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/dtroode/gophtasks-server/internal/apierrors"
	"github.com/dtroode/gophtasks-server/internal/model"
)

var _ model.TaskStore = (*TaskRepository)(nil)

// TaskRepository keeps tasks in an ordered slice.
type TaskRepository struct {
	mu     sync.RWMutex
	tasks  []model.Task
	nextID atomic.Int64
}

// NewTaskRepository creates a repository holding a copy of seed.
// Ids of new tasks continue from len(seed).
func NewTaskRepository(seed []model.Task) *TaskRepository {
	r := &TaskRepository{tasks: slices.Clone(seed)}
	r.nextID.Store(int64(len(seed)))
	return r
}

func (r *TaskRepository) VerifyNewTaskProperties(newTask model.TaskInput) bool {
	return newTask.HasTitle()
}

func (r *TaskRepository) GetTask(_ context.Context, taskID string) (model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(taskID)
	if idx == -1 {
		return model.Task{}, apierrors.NewErrTaskNotFound(taskID)
	}
	return r.tasks[idx], nil
}

func (r *TaskRepository) GetAllTasks(_ context.Context, userID string) ([]model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]model.Task, 0)
	for _, task := range r.tasks {
		if task.UserID == userID {
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}

func (r *TaskRepository) AddTask(_ context.Context, newTask model.TaskInput, userID string) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task := model.Task{
		ID:          strconv.FormatInt(r.nextID.Add(1)-1, 10),
		Title:       newTask.Title,
		Description: newTask.Description,
		UserID:      userID,
	}
	r.tasks = append(r.tasks, task)

	return task, nil
}

func (r *TaskRepository) UpdateTask(_ context.Context, taskID string, newTask model.TaskInput) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(taskID)
	if idx == -1 {
		return model.Task{}, apierrors.NewErrTaskNotFound(taskID)
	}
	r.tasks[idx].Title = newTask.Title
	r.tasks[idx].Description = newTask.Description
	return r.tasks[idx], nil
}

func (r *TaskRepository) DeleteTask(_ context.Context, taskID string) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(taskID)
	if idx == -1 {
		return model.Task{}, apierrors.NewErrTaskNotFound(taskID)
	}
	task := r.tasks[idx]
	r.tasks = slices.Delete(r.tasks, idx, idx+1)
	return task, nil
}

// indexOf must be called with mu held.
func (r *TaskRepository) indexOf(taskID string) int {
	return slices.IndexFunc(r.tasks, func(t model.Task) bool { return t.ID == taskID })
}
