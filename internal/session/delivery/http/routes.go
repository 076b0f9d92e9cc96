package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.POST("/start", h.Start)
	rg.GET("/session", h.Current)
	rg.DELETE("/session", h.Logout)
}
