package usecase

import (
	"context"
)

// Load hydrates the store once.
func (uc *implUseCase) Load(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.loaded {
		return nil
	}

	tasks, err := uc.repo.LoadTasks(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Load LoadTasks: %v", err)
		return err
	}

	uc.tasks = tasks
	uc.loaded = true
	uc.l.Infof(ctx, "uc.Load: hydrated %d tasks", len(tasks))
	return nil
}
