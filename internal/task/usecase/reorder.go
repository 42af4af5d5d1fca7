package usecase

import (
	"context"
	"fmt"

	"taskflow/internal/model"
	"taskflow/internal/task"
	"taskflow/internal/task/reorder"
)

// Reorder replaces the list wholesale. The caller is trusted to pass a
// permutation of the current tasks.
func (uc *implUseCase) Reorder(ctx context.Context, tasks []model.Task) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	next := make([]model.Task, len(tasks))
	copy(next, tasks)
	return uc.commit(ctx, "Reorder", next)
}

// ReorderByIDs arranges the current tasks in the order of ids.
func (uc *implUseCase) ReorderByIDs(ctx context.Context, ids []string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if len(ids) != len(uc.tasks) {
		return fmt.Errorf("%w: got %d ids for %d tasks", task.ErrNotPermutation, len(ids), len(uc.tasks))
	}

	byID := make(map[string]model.Task, len(uc.tasks))
	for _, t := range uc.tasks {
		byID[t.ID] = t
	}

	next := make([]model.Task, 0, len(ids))
	for _, id := range ids {
		t, ok := byID[id]
		if !ok {
			return fmt.Errorf("%w: unknown or repeated id %q", task.ErrNotPermutation, id)
		}
		delete(byID, id)
		next = append(next, t)
	}

	return uc.commit(ctx, "ReorderByIDs", next)
}

// Move applies a drop of DraggedID onto TargetID against the current list.
func (uc *implUseCase) Move(ctx context.Context, input task.MoveInput) (task.MutationOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	next, ok := reorder.Move(uc.tasks, input.DraggedID, input.TargetID)
	if !ok {
		uc.l.Debugf(ctx, "uc.Move: %q onto %q ignored", input.DraggedID, input.TargetID)
		return task.MutationOutput{}, nil
	}

	if err := uc.commit(ctx, "Move", next); err != nil {
		return task.MutationOutput{}, err
	}
	return task.MutationOutput{Task: next[reorder.IndexOf(next, input.DraggedID)], Changed: true}, nil
}
