package tipatask

import (
	"context"
	"fmt"

	"github.com/donskikhas/tipatask-sub001/internal/model"
)

// TasksAPI exposes the tasks collection and its status/priority
// dictionaries.
type TasksAPI struct {
	app *App
}

// Get returns every task.
func (t TasksAPI) Get(ctx context.Context) ([]model.Task, error) {
	return getRecords[model.Task](ctx, t.app, "tasks")
}

// Set replaces the tasks collection and schedules a push.
func (t TasksAPI) Set(ctx context.Context, tasks []model.Task) error {
	return setRecords(ctx, t.app, "tasks", tasks)
}

// ByID returns the task with the given id, or ErrNotFound.
func (t TasksAPI) ByID(ctx context.Context, id string) (model.Task, error) {
	tasks, err := t.Get(ctx)
	if err != nil {
		return model.Task{}, err
	}
	for _, task := range tasks {
		if task.ID == id {
			return task, nil
		}
	}
	return model.Task{}, fmt.Errorf("task %q: %w", id, model.ErrNotFound)
}

// Statuses returns the task-status dictionary.
func (t TasksAPI) Statuses(ctx context.Context) ([]model.Status, error) {
	return getRecords[model.Status](ctx, t.app, "statuses")
}

// SetStatuses replaces the status dictionary and schedules a push.
func (t TasksAPI) SetStatuses(ctx context.Context, statuses []model.Status) error {
	return setRecords(ctx, t.app, "statuses", statuses)
}

// Priorities returns the task-priority dictionary.
func (t TasksAPI) Priorities(ctx context.Context) ([]model.Priority, error) {
	return getRecords[model.Priority](ctx, t.app, "priorities")
}

// SetPriorities replaces the priority dictionary and schedules a push.
func (t TasksAPI) SetPriorities(ctx context.Context, priorities []model.Priority) error {
	return setRecords(ctx, t.app, "priorities", priorities)
}
