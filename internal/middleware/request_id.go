package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"trackfit-companion/pkg/log"
)

const RequestIDHeader = "X-Request-ID"

// RequestID tags each request context with an id that log lines carry.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
