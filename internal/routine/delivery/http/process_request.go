package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processSetCompletedReq binds the completion body and the id URI param.
func (h *handler) processSetCompletedReq(c *gin.Context) (setCompletedReq, error) {
	var req setCompletedReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	return req, nil
}
