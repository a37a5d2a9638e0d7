package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/gophtasks-server/internal/apierrors"
	"github.com/dtroode/gophtasks-server/internal/model"
)

var _ model.TaskStore = (*TaskRepository)(nil)

type TaskRepository struct {
	db *Connection
}

func NewTaskRepository(db *Connection) *TaskRepository {
	return &TaskRepository{
		db: db,
	}
}

func (r *TaskRepository) VerifyNewTaskProperties(newTask model.TaskInput) bool {
	return newTask.HasTitle()
}

func (r *TaskRepository) GetTask(ctx context.Context, taskID string) (model.Task, error) {
	id, err := uuid.Parse(taskID)
	if err != nil {
		return model.Task{}, apierrors.NewErrTaskNotFound(taskID)
	}

	query := `SELECT id, title, description, user_id FROM tasks WHERE id = $1`

	task, err := scanTask(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Task{}, apierrors.NewErrTaskNotFound(taskID)
		}
		return model.Task{}, fmt.Errorf("failed to get task by id: %w", err)
	}

	return task, nil
}

func (r *TaskRepository) GetAllTasks(ctx context.Context, userID string) ([]model.Task, error) {
	tasks := make([]model.Task, 0)

	owner, err := uuid.Parse(userID)
	if err != nil {
		return tasks, nil
	}

	query := `SELECT id, title, description, user_id FROM tasks
			  WHERE user_id = $1 ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, query, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks by user id: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}

	return tasks, nil
}

func (r *TaskRepository) AddTask(ctx context.Context, newTask model.TaskInput, userID string) (model.Task, error) {
	owner, err := uuid.Parse(userID)
	if err != nil {
		return model.Task{}, fmt.Errorf("invalid owner id %q: %w", userID, err)
	}

	query := `INSERT INTO tasks (id, title, description, user_id)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, title, description, user_id`

	task, err := scanTask(r.db.QueryRow(ctx, query, uuid.New(), newTask.Title, newTask.Description, owner))
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

func (r *TaskRepository) UpdateTask(ctx context.Context, taskID string, newTask model.TaskInput) (model.Task, error) {
	id, err := uuid.Parse(taskID)
	if err != nil {
		return model.Task{}, apierrors.NewErrTaskNotFound(taskID)
	}

	query := `UPDATE tasks SET title = $2, description = $3
			  WHERE id = $1
			  RETURNING id, title, description, user_id`

	task, err := scanTask(r.db.QueryRow(ctx, query, id, newTask.Title, newTask.Description))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Task{}, apierrors.NewErrTaskNotFound(taskID)
		}
		return model.Task{}, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

func (r *TaskRepository) DeleteTask(ctx context.Context, taskID string) (model.Task, error) {
	id, err := uuid.Parse(taskID)
	if err != nil {
		return model.Task{}, apierrors.NewErrTaskNotFound(taskID)
	}

	query := `DELETE FROM tasks WHERE id = $1
			  RETURNING id, title, description, user_id`

	task, err := scanTask(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Task{}, apierrors.NewErrTaskNotFound(taskID)
		}
		return model.Task{}, fmt.Errorf("failed to delete task: %w", err)
	}

	return task, nil
}

func scanTask(row pgx.Row) (model.Task, error) {
	var (
		id, owner uuid.UUID
		task      model.Task
	)
	if err := row.Scan(&id, &task.Title, &task.Description, &owner); err != nil {
		return model.Task{}, err
	}
	task.ID = id.String()
	task.UserID = owner.String()

	return task, nil
}
