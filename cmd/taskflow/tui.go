package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	dashboardUsecase "taskflow/internal/dashboard/usecase"
	"taskflow/internal/model"
	"taskflow/internal/tui"
)

func tuiCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the dashboard in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			logFile, err := openTUILog()
			if err != nil {
				return err
			}
			defer logFile.Close()

			cfg, l, taskUC, err := openStore(cmd.Context(), logFile)
			if err != nil {
				return err
			}

			user := model.User{Name: name}
			m := tui.New(cmd.Context(), l, taskUC, dashboardUsecase.New(l, taskUC), user, cfg.Dashboard.DefaultDailyCount)
			if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
				return fmt.Errorf("tui: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", defaultName(), "name shown in the greeting")

	return cmd
}

func defaultName() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "there"
}

func openTUILog() (*os.File, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	dir = filepath.Join(dir, "taskflow")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("tui log dir: %w", err)
	}
	return os.OpenFile(filepath.Join(dir, "tui.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
