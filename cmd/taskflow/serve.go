package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"taskflow/config"
	_ "taskflow/docs" // Swagger docs
	"taskflow/internal/bootstrap"
)

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web dashboard and JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFile(configPath)
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.HTTPServer.Port = port
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			l := bootstrap.NewLogger(cfg)
			l.Infof(ctx, "Starting TaskFlow on :%d", cfg.HTTPServer.Port)
			return bootstrap.Serve(ctx, cfg, l)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "HTTP port (overrides http_server.port)")

	return cmd
}
