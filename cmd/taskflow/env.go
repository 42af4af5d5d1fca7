package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"taskflow/config"
	"taskflow/internal/bootstrap"
	"taskflow/internal/task"
	"taskflow/pkg/log"
)

// openStore loads config and hydrates the Task Store. Logs go to logOut so
// they never mix with command output.
func openStore(ctx context.Context, logOut io.Writer) (*config.Config, log.Logger, task.UseCase, error) {
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}

	l := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled && logOut == os.Stderr,
		Output:       logOut,
	})

	uc, err := bootstrap.OpenTaskStore(ctx, cfg, l)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, l, uc, nil
}
