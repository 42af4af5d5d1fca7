package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"taskflow/config"
	_ "taskflow/docs" // Swagger docs
	"taskflow/internal/bootstrap"
)

// @title       TaskFlow API
// @description Daily task tracker with drag-and-drop ordering and a mock sign-in.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := bootstrap.NewLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting TaskFlow...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Storage: %s (slot %q)", cfg.Storage.Dir, cfg.Storage.Slot)

	// 3. Task Store
	taskUC, err := bootstrap.OpenTaskStore(ctx, cfg, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to open task store: %v", err)
		return
	}

	// 4. HTTP Server
	httpServer, err := bootstrap.NewServer(cfg, logger, taskUC)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
