package http

import (
	"github.com/gin-gonic/gin"

	"taskflow/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods. Every route
// requires a session.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("", mw.Auth())
	{
		tasks.GET("", h.List)
		tasks.POST("", h.Create)
		tasks.GET("/stats", h.Stats)
		tasks.PUT("/order", h.Order)
		tasks.POST("/slots", h.Slots)
		tasks.PUT("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)
		tasks.POST("/:id/toggle", h.Toggle)
	}

	drag := tasks.Group("/drag")
	{
		drag.POST("/start", h.DragStart)
		drag.POST("/over", h.DragOver)
		drag.POST("/drop", h.DragDrop)
		drag.POST("/cancel", h.DragCancel)
	}
}
