package elastic

import (
	"context"
	"fmt"
	"net/http"

	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/elastic/go-elasticsearch/v8/esutil"
	"github.com/tidwall/gjson"

	"github.com/dtroode/gophtasks-server/internal/apierrors"
	"github.com/dtroode/gophtasks-server/internal/model"
)

var _ model.TaskStore = (*TaskRepository)(nil)

type taskDocument struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	UserID      string `json:"userId"`
}

// TaskRepository stores tasks as documents keyed by the engine assigned id.
type TaskRepository struct {
	conn *Connection
}

func NewTaskRepository(conn *Connection) *TaskRepository {
	return &TaskRepository{
		conn: conn,
	}
}

func (r *TaskRepository) VerifyNewTaskProperties(newTask model.TaskInput) bool {
	return newTask.HasTitle()
}

func (r *TaskRepository) GetTask(ctx context.Context, taskID string) (model.Task, error) {
	res, err := r.conn.perform(ctx, esapi.GetRequest{
		Index:      r.conn.indices.Tasks,
		DocumentID: taskID,
	})
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to get task: %w", err)
	}
	if res.notFound() {
		return model.Task{}, apierrors.NewErrTaskNotFound(taskID)
	}
	if res.failed() {
		return model.Task{}, res.err("get task")
	}

	doc := gjson.ParseBytes(res.body)
	if !doc.Get("found").Bool() {
		return model.Task{}, apierrors.NewErrTaskNotFound(taskID)
	}

	return taskFromHit(doc), nil
}

func (r *TaskRepository) GetAllTasks(ctx context.Context, userID string) ([]model.Task, error) {
	hits, err := r.conn.lookup(ctx, r.conn.indices.Tasks, "userId", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks by user id: %w", err)
	}

	tasks := make([]model.Task, 0, len(hits))
	for _, hit := range hits {
		tasks = append(tasks, taskFromHit(hit))
	}

	return tasks, nil
}

func (r *TaskRepository) AddTask(ctx context.Context, newTask model.TaskInput, userID string) (model.Task, error) {
	doc := taskDocument{
		Title:       newTask.Title,
		Description: newTask.Description,
		UserID:      userID,
	}

	res, err := r.conn.perform(ctx, esapi.IndexRequest{
		Index:   r.conn.indices.Tasks,
		Body:    esutil.NewJSONReader(doc),
		Refresh: refreshTrue,
	})
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to add task: %w", err)
	}
	if res.failed() {
		return model.Task{}, res.err("add task")
	}

	return model.Task{
		ID:          gjson.GetBytes(res.body, "_id").String(),
		Title:       doc.Title,
		Description: doc.Description,
		UserID:      doc.UserID,
	}, nil
}

// UpdateTask applies a partial document so the stored owner is never touched.
func (r *TaskRepository) UpdateTask(ctx context.Context, taskID string, newTask model.TaskInput) (model.Task, error) {
	res, err := r.conn.perform(ctx, esapi.UpdateRequest{
		Index:      r.conn.indices.Tasks,
		DocumentID: taskID,
		Body: esutil.NewJSONReader(map[string]any{
			"doc": map[string]any{
				"title":       newTask.Title,
				"description": newTask.Description,
			},
		}),
		Refresh: refreshTrue,
	})
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to update task: %w", err)
	}
	if res.notFound() {
		return model.Task{}, apierrors.NewErrTaskNotFound(taskID)
	}
	if res.failed() {
		return model.Task{}, res.err("update task")
	}

	return r.GetTask(ctx, taskID)
}

func (r *TaskRepository) DeleteTask(ctx context.Context, taskID string) (model.Task, error) {
	task, err := r.GetTask(ctx, taskID)
	if err != nil {
		return model.Task{}, err
	}

	res, err := r.conn.perform(ctx, esapi.DeleteRequest{
		Index:      r.conn.indices.Tasks,
		DocumentID: taskID,
		Refresh:    refreshTrue,
	})
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to delete task: %w", err)
	}
	if res.status == http.StatusNotFound || gjson.GetBytes(res.body, "result").String() == "not_found" {
		return model.Task{}, apierrors.NewErrTaskNotFound(taskID)
	}
	if res.failed() {
		return model.Task{}, res.err("delete task")
	}

	return task, nil
}

func taskFromHit(hit gjson.Result) model.Task {
	return model.Task{
		ID:          hit.Get("_id").String(),
		Title:       hit.Get("_source.title").String(),
		Description: hit.Get("_source.description").String(),
		UserID:      hit.Get("_source.userId").String(),
	}
}
