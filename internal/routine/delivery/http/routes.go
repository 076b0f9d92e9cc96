package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.PATCH("/:id/completed", h.SetCompleted)
	rg.DELETE("/:id", h.Delete)
}
