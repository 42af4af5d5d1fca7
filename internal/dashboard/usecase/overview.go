package usecase

import (
	"context"
	"fmt"

	"taskflow/internal/dashboard"
	"taskflow/internal/model"
	"taskflow/internal/task"
)

// Overview reads the current list once so the tasks and the stats agree.
func (uc *implUseCase) Overview(ctx context.Context, user model.User, prefs dashboard.Preferences) dashboard.Overview {
	list := uc.taskUC.List(ctx)
	now := uc.now()
	return dashboard.Overview{
		Greeting:   dashboard.Greeting(now),
		Welcome:    dashboard.Welcome(now, user.Name),
		User:       user,
		Progress:   list.Stats,
		DailyCount: prefs.DailyCount(),
		Tasks:      list.Tasks,
	}
}

func (uc *implUseCase) SetDailyCount(ctx context.Context, prefs dashboard.Preferences, n int) error {
	if !dashboard.ValidDailyCount(n) {
		return fmt.Errorf("%w: got %d", dashboard.ErrInvalidDailyCount, n)
	}
	prefs.SetDailyCount(n)
	uc.l.Debugf(ctx, "uc.SetDailyCount: %d", n)
	return nil
}

func (uc *implUseCase) Generate(ctx context.Context, prefs dashboard.Preferences) (task.GenerateSlotsOutput, error) {
	out, err := uc.taskUC.GenerateEmptySlots(ctx, prefs.DailyCount())
	if err != nil {
		uc.l.Errorf(ctx, "uc.Generate GenerateEmptySlots: %v", err)
		return task.GenerateSlotsOutput{}, err
	}
	return out, nil
}
