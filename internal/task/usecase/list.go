package usecase

import (
	"context"

	"taskflow/internal/task"
)

// List returns a copy of the ordered list together with its stats.
func (uc *implUseCase) List(ctx context.Context) task.ListOutput {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	tasks := uc.snapshot()
	return task.ListOutput{
		Tasks: tasks,
		Stats: task.ComputeStats(tasks),
	}
}

// Stats returns the progress numbers of the current list.
func (uc *implUseCase) Stats(ctx context.Context) task.Stats {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	return task.ComputeStats(uc.tasks)
}
