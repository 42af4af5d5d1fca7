package http

import (
	"github.com/gin-gonic/gin"

	"taskflow/internal/middleware"
)

// RegisterPageRoutes mounts the HTML page. Visitors without a session get
// the sign-in form.
func RegisterPageRoutes(r gin.IRoutes, h *handler, mw middleware.Middleware) {
	r.GET("/", mw.OptionalAuth(), h.Page)
}

// RegisterRoutes mounts the dashboard JSON API.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("", mw.Auth(), h.Overview)
	rg.PUT("/daily-count", mw.Auth(), h.SetDailyCount)
	rg.POST("/generate", mw.Auth(), h.Generate)
}
