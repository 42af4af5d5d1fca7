package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	authHTTP "taskflow/internal/auth/delivery/http"
	dashboardHTTP "taskflow/internal/dashboard/delivery/http"
	"taskflow/internal/middleware"
	taskHTTP "taskflow/internal/task/delivery/http"
)

// Each domain follows the same steps:
//  1. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  2. Register Routes:     mydomainHTTP.RegisterRoutes(api.Group("/myresource"), h, mw)

func (srv HTTPServer) setupAuthDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := authHTTP.New(srv.l, srv.authUC, mw)
	authHTTP.RegisterRoutes(api.Group("/auth"), h, mw)

	srv.l.Infof(ctx, "Auth domain registered")
	return nil
}

func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := taskHTTP.New(srv.l, srv.taskUC)
	taskHTTP.RegisterRoutes(api.Group("/tasks"), h, mw)

	srv.l.Infof(ctx, "Task domain registered")
	return nil
}

func (srv HTTPServer) setupDashboardDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	tmpl, err := dashboardHTTP.Templates()
	if err != nil {
		return fmt.Errorf("httpserver.setupDashboardDomain: %w", err)
	}
	srv.gin.SetHTMLTemplate(tmpl)
	srv.gin.StaticFS("/static", dashboardHTTP.StaticFS())

	h := dashboardHTTP.New(srv.l, srv.dashboardUC)
	dashboardHTTP.RegisterPageRoutes(srv.gin, h, mw)
	dashboardHTTP.RegisterRoutes(api.Group("/dashboard"), h, mw)

	srv.l.Infof(ctx, "Dashboard domain registered")
	return nil
}
