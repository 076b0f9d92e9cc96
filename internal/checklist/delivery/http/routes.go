package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.GET("", h.Render)
	items := rg.Group("/items")
	{
		items.POST("", h.AddItem)
		items.PUT("/:id/phases/:phase", h.TogglePhase)
		items.DELETE("/:id", h.RemoveItem)
	}
}
