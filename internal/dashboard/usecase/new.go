package usecase

import (
	"time"

	"taskflow/internal/dashboard"
	"taskflow/internal/task"
	pkgLog "taskflow/pkg/log"
)

type implUseCase struct {
	l      pkgLog.Logger
	taskUC task.UseCase
	now    func() time.Time
}

var _ dashboard.UseCase = (*implUseCase)(nil)

// New creates the dashboard UseCase on top of the Task Store.
func New(l pkgLog.Logger, taskUC task.UseCase) *implUseCase {
	return &implUseCase{
		l:      l,
		taskUC: taskUC,
		now:    time.Now,
	}
}
