package usecase

import (
	"context"
	"fmt"

	"taskflow/internal/model"
	"taskflow/internal/task"
)

// snapshot copies the current list. Callers hold mu.
func (uc *implUseCase) snapshot() []model.Task {
	out := make([]model.Task, len(uc.tasks))
	copy(out, uc.tasks)
	return out
}

// commit persists next and only then makes it the current list, so a failed
// write leaves memory and storage agreeing on the previous value. Callers
// hold mu, which also keeps writes in mutation order.
func (uc *implUseCase) commit(ctx context.Context, op string, next []model.Task) error {
	if err := uc.repo.SaveTasks(ctx, next); err != nil {
		uc.l.Errorf(ctx, "uc.%s SaveTasks: %v", op, err)
		return fmt.Errorf("%w: %v", task.ErrPersist, err)
	}
	uc.tasks = next
	return nil
}

func (uc *implUseCase) newTask(title, description string) model.Task {
	return model.Task{
		ID:          uc.newID(),
		Title:       title,
		Description: description,
		Completed:   false,
		CreatedAt:   uc.now(),
	}
}
