package usecase

import (
	"context"
	"strings"

	"taskflow/internal/model"
	"taskflow/internal/task"
)

// Add appends a new task. A title that trims to empty is a no-op.
func (uc *implUseCase) Add(ctx context.Context, input task.AddInput) (task.MutationOutput, error) {
	if strings.TrimSpace(input.Title) == "" {
		uc.l.Debugf(ctx, "uc.Add: empty title ignored")
		return task.MutationOutput{}, nil
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	t := uc.newTask(input.Title, input.Description)
	next := append(uc.snapshot(), t)
	if err := uc.commit(ctx, "Add", next); err != nil {
		return task.MutationOutput{}, err
	}
	return task.MutationOutput{Task: t, Changed: true}, nil
}

// GenerateEmptySlots tops the list up to target entries with placeholder
// tasks. The whole list length counts, placeholders included.
func (uc *implUseCase) GenerateEmptySlots(ctx context.Context, target int) (task.GenerateSlotsOutput, error) {
	if target < 0 {
		return task.GenerateSlotsOutput{}, task.ErrInvalidSlotGoal
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	missing := target - len(uc.tasks)
	if missing <= 0 {
		return task.GenerateSlotsOutput{Created: []model.Task{}}, nil
	}

	created := make([]model.Task, 0, missing)
	for i := 0; i < missing; i++ {
		created = append(created, uc.newTask("", ""))
	}

	next := append(uc.snapshot(), created...)
	if err := uc.commit(ctx, "GenerateEmptySlots", next); err != nil {
		return task.GenerateSlotsOutput{}, err
	}
	uc.l.Infof(ctx, "uc.GenerateEmptySlots: appended %d placeholders", missing)
	return task.GenerateSlotsOutput{Created: created}, nil
}
