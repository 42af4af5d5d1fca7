package http

import (
	"github.com/gin-gonic/gin"

	"taskflow/internal/middleware"
)

// RegisterRoutes maps the auth endpoints. Only /me requires a session.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/login", h.Login)
	rg.POST("/register", h.Register)
	rg.POST("/logout", mw.OptionalAuth(), h.Logout)
	rg.GET("/me", mw.Auth(), h.Me)
}
