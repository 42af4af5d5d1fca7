// Package bootstrap wires configuration into the stores, use cases and the
// HTTP server shared by the binaries under cmd/.
package bootstrap

import (
	"context"
	"fmt"

	"taskflow/config"
	authUsecase "taskflow/internal/auth/usecase"
	dashboardUsecase "taskflow/internal/dashboard/usecase"
	"taskflow/internal/httpserver"
	"taskflow/internal/middleware"
	"taskflow/internal/task"
	"taskflow/internal/task/repository/localstore"
	taskUsecase "taskflow/internal/task/usecase"
	"taskflow/pkg/kvstore"
	"taskflow/pkg/log"
)

// NewLogger builds the zap logger described by cfg.
func NewLogger(cfg *config.Config) log.Logger {
	return log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
}

// OpenTaskStore opens the key-value store and hydrates the Task Store from
// the configured slot.
func OpenTaskStore(ctx context.Context, cfg *config.Config, l log.Logger) (task.UseCase, error) {
	store, err := kvstore.NewFileStore(cfg.Storage.Dir)
	if err != nil {
		return nil, fmt.Errorf("bootstrap.OpenTaskStore: %w", err)
	}

	uc := taskUsecase.New(l, localstore.New(store, cfg.Storage.Slot, l))
	if err := uc.Load(ctx); err != nil {
		return nil, fmt.Errorf("bootstrap.OpenTaskStore: %w", err)
	}
	return uc, nil
}

// NewServer builds the HTTP server on top of taskUC.
func NewServer(cfg *config.Config, l log.Logger, taskUC task.UseCase) (*httpserver.HTTPServer, error) {
	authUC := authUsecase.New(l, authUsecase.Config{
		SessionTTL:        cfg.Session.TTL,
		MaxSessions:       cfg.Session.MaxSessions,
		DefaultDailyCount: cfg.Dashboard.DefaultDailyCount,
		RateLimitPerMin:   cfg.Auth.RateLimitPerMin,
	})

	return httpserver.New(l, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		TaskUC:      taskUC,
		AuthUC:      authUC,
		DashboardUC: dashboardUsecase.New(l, taskUC),
		Cookie: middleware.CookieConfig{
			Name:   cfg.Session.CookieName,
			MaxAge: int(cfg.Session.TTL.Seconds()),
			Secure: cfg.Session.Secure,
		},
	})
}

// Serve runs the HTTP server until ctx is cancelled.
func Serve(ctx context.Context, cfg *config.Config, l log.Logger) error {
	taskUC, err := OpenTaskStore(ctx, cfg, l)
	if err != nil {
		return err
	}

	srv, err := NewServer(cfg, l, taskUC)
	if err != nil {
		return fmt.Errorf("bootstrap.Serve: %w", err)
	}

	return srv.Run(ctx)
}
