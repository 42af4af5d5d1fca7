package task

import (
	"context"

	"taskflow/internal/model"
)

// UseCase is the Task Store: the single owner of the ordered task list.
// Every mutation is persisted before it returns.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// Load hydrates the list from the repository. Only the first call reads
	// storage; later calls are no-ops.
	Load(ctx context.Context) error

	List(ctx context.Context) ListOutput
	Stats(ctx context.Context) Stats

	Add(ctx context.Context, input AddInput) (MutationOutput, error)
	Edit(ctx context.Context, input EditInput) (MutationOutput, error)
	Delete(ctx context.Context, id string) (MutationOutput, error)
	ToggleCompletion(ctx context.Context, id string) (MutationOutput, error)

	// Reorder replaces the whole list with the given sequence.
	Reorder(ctx context.Context, tasks []model.Task) error
	// ReorderByIDs reorders the current tasks to match ids, which must be a
	// permutation of the current ids.
	ReorderByIDs(ctx context.Context, ids []string) error
	// Move relocates DraggedID to the slot TargetID currently occupies.
	Move(ctx context.Context, input MoveInput) (MutationOutput, error)

	GenerateEmptySlots(ctx context.Context, target int) (GenerateSlotsOutput, error)
	Clear(ctx context.Context) error
}
