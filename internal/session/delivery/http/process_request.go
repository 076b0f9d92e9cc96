package http

import (
	"github.com/gin-gonic/gin"
)

// processStartReq binds the sign-in body. Both fields are optional.
func (h *handler) processStartReq(c *gin.Context) (startReq, error) {
	var req startReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
