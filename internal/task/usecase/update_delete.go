package usecase

import (
	"context"

	"taskflow/internal/model"
	"taskflow/internal/task"
	"taskflow/internal/task/reorder"
)

// Edit replaces title, description and completion of the matching task in
// place. ID and CreatedAt are never changed.
func (uc *implUseCase) Edit(ctx context.Context, input task.EditInput) (task.MutationOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	idx := reorder.IndexOf(uc.tasks, input.ID)
	if idx < 0 {
		uc.l.Debugf(ctx, "uc.Edit: unknown id %q ignored", input.ID)
		return task.MutationOutput{}, nil
	}

	next := uc.snapshot()
	edited := next[idx]
	edited.Title = input.Title
	edited.Description = input.Description
	if input.Completed != nil {
		edited.Completed = *input.Completed
	}
	next[idx] = edited

	if err := uc.commit(ctx, "Edit", next); err != nil {
		return task.MutationOutput{}, err
	}
	return task.MutationOutput{Task: edited, Changed: true}, nil
}

// Delete removes the matching task.
func (uc *implUseCase) Delete(ctx context.Context, id string) (task.MutationOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	idx := reorder.IndexOf(uc.tasks, id)
	if idx < 0 {
		uc.l.Debugf(ctx, "uc.Delete: unknown id %q ignored", id)
		return task.MutationOutput{}, nil
	}

	removed := uc.tasks[idx]
	next := make([]model.Task, 0, len(uc.tasks)-1)
	next = append(next, uc.tasks[:idx]...)
	next = append(next, uc.tasks[idx+1:]...)

	if err := uc.commit(ctx, "Delete", next); err != nil {
		return task.MutationOutput{}, err
	}
	return task.MutationOutput{Task: removed, Changed: true}, nil
}

// ToggleCompletion flips the completed flag of the matching task.
func (uc *implUseCase) ToggleCompletion(ctx context.Context, id string) (task.MutationOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	idx := reorder.IndexOf(uc.tasks, id)
	if idx < 0 {
		uc.l.Debugf(ctx, "uc.ToggleCompletion: unknown id %q ignored", id)
		return task.MutationOutput{}, nil
	}

	next := uc.snapshot()
	next[idx].Completed = !next[idx].Completed

	if err := uc.commit(ctx, "ToggleCompletion", next); err != nil {
		return task.MutationOutput{}, err
	}
	return task.MutationOutput{Task: next[idx], Changed: true}, nil
}

// Clear empties the list.
func (uc *implUseCase) Clear(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	return uc.commit(ctx, "Clear", []model.Task{})
}
