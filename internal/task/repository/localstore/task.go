package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"taskflow/internal/model"
	"taskflow/internal/task/repository"
	"taskflow/pkg/kvstore"
)

// LoadTasks reads and decodes the slot. Undecodable content, records without
// an id and duplicate ids are all treated as an absent slot.
func (r *implRepository) LoadTasks(ctx context.Context) ([]model.Task, error) {
	data, err := r.store.Get(ctx, r.slot)
	if errors.Is(err, kvstore.ErrNotFound) {
		return []model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("LoadTasks"), err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToLoad, err)
	}

	var tasks []model.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		r.l.Warnf(ctx, "%s: slot %q is malformed, starting empty: %v", r.dsn("LoadTasks"), r.slot, err)
		return []model.Task{}, nil
	}
	if err := validate(tasks); err != nil {
		r.l.Warnf(ctx, "%s: slot %q rejected, starting empty: %v", r.dsn("LoadTasks"), r.slot, err)
		return []model.Task{}, nil
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks, nil
}

// SaveTasks serializes the full list and replaces the slot.
func (r *implRepository) SaveTasks(ctx context.Context, tasks []model.Task) error {
	if tasks == nil {
		tasks = []model.Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		r.l.Errorf(ctx, "%s marshal: %v", r.dsn("SaveTasks"), err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToSave, err)
	}
	if err := r.store.Put(ctx, r.slot, data); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SaveTasks"), err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToSave, err)
	}
	return nil
}

func validate(tasks []model.Task) error {
	seen := make(map[string]struct{}, len(tasks))
	for i, t := range tasks {
		if t.ID == "" {
			return fmt.Errorf("task %d has no id", i)
		}
		if _, dup := seen[t.ID]; dup {
			return fmt.Errorf("duplicate id %q", t.ID)
		}
		seen[t.ID] = struct{}{}
	}
	return nil
}
