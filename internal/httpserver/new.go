package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"taskflow/internal/auth"
	"taskflow/internal/dashboard"
	"taskflow/internal/middleware"
	"taskflow/internal/task"
	"taskflow/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Domains
	taskUC      task.UseCase
	authUC      auth.UseCase
	dashboardUC dashboard.UseCase
	cookie      middleware.CookieConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	TaskUC      task.UseCase
	AuthUC      auth.UseCase
	DashboardUC dashboard.UseCase
	Cookie      middleware.CookieConfig
}

// New creates a new HTTPServer instance with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		taskUC:          cfg.TaskUC,
		authUC:          cfg.AuthUC,
		dashboardUC:     cfg.DashboardUC,
		cookie:          cfg.Cookie,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskUC == nil {
		return errors.New("task usecase is required")
	}
	if srv.authUC == nil {
		return errors.New("auth usecase is required")
	}
	if srv.dashboardUC == nil {
		return errors.New("dashboard usecase is required")
	}
	return nil
}
