package dashboard

import (
	"context"

	"taskflow/internal/model"
	"taskflow/internal/task"
)

// Preferences holds the per-session daily task count. auth.Session
// implements it.
type Preferences interface {
	DailyCount() int
	SetDailyCount(n int)
}

// UseCase assembles the welcome, progress and config views.
type UseCase interface {
	Overview(ctx context.Context, user model.User, prefs Preferences) Overview
	SetDailyCount(ctx context.Context, prefs Preferences, n int) error
	// Generate tops the task list up to the session's daily count.
	Generate(ctx context.Context, prefs Preferences) (task.GenerateSlotsOutput, error)
}
