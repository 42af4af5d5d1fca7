package repository

import (
	"context"

	"taskflow/internal/model"
)

// Repository is the Persistence Adapter for the task list. The list is
// always read and written whole.
type Repository interface {
	// LoadTasks returns the persisted list in display order. A missing or
	// malformed slot yields an empty list and no error.
	LoadTasks(ctx context.Context) ([]model.Task, error)
	// SaveTasks overwrites the slot with tasks.
	SaveTasks(ctx context.Context, tasks []model.Task) error
}
