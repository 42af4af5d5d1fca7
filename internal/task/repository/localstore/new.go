package localstore

import (
	"fmt"

	"taskflow/internal/task/repository"
	"taskflow/pkg/kvstore"
	"taskflow/pkg/log"
)

// DefaultSlot is the storage key holding the serialized task list.
const DefaultSlot = "tasks"

type implRepository struct {
	store kvstore.Store
	slot  string
	l     log.Logger
}

// New creates a Repository that keeps the task list in a single kvstore slot.
func New(store kvstore.Store, slot string, l log.Logger) repository.Repository {
	if store == nil {
		panic("task/repository/localstore: store is required")
	}
	if slot == "" {
		slot = DefaultSlot
	}
	return &implRepository{store: store, slot: slot, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/localstore.%s", method)
}
