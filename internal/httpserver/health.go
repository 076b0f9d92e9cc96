package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"trackfit-companion/pkg/response"
)

const (
	HealthVersion = "1.0.0"
	ServiceName   = "trackfit-companion"

	// readinessKey is read, never written, to check that storage answers.
	readinessKey   = "trackfit:readiness"
	storageTimeout = 2 * time.Second
)

// status builds the common body of the system probes.
func (srv HTTPServer) status(state string) gin.H {
	return gin.H{
		"status":  state,
		"version": HealthVersion,
		"service": ServiceName,
		"uptime":  time.Since(srv.startedAt).Round(time.Second).String(),
	}
}

// healthCheck reports the service identity and uptime.
// @Summary Health Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.status("healthy"))
}

// readyCheck answers 503 until the checklist storage can be read.
// @Summary Readiness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} response.Resp "Storage unavailable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), storageTimeout)
	defer cancel()

	if _, _, err := srv.storage.Get(ctx, readinessKey); err != nil {
		srv.l.Warnf(ctx, "httpserver.readyCheck: %v", err)
		body := srv.status("not_ready")
		body["storage"] = "unavailable"
		c.JSON(http.StatusServiceUnavailable, response.Resp{
			ErrorCode: http.StatusServiceUnavailable,
			Message:   "Storage unavailable",
			Data:      body,
		})
		return
	}

	body := srv.status("ready")
	body["storage"] = "ok"
	response.OK(c, body)
}

// liveCheck answers as long as the process serves HTTP.
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.status("alive"))
}
