package http

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// processAddItemReq binds the add item request body.
func (h *handler) processAddItemReq(c *gin.Context) (addItemReq, error) {
	var req addItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processTogglePhaseReq binds the toggle body and URI params.
// A non-numeric phase becomes -1, which the use case ignores.
func (h *handler) processTogglePhaseReq(c *gin.Context) (togglePhaseReq, error) {
	var req togglePhaseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ItemID = c.Param("id")
	phase, err := strconv.Atoi(c.Param("phase"))
	if err != nil {
		phase = -1
	}
	req.Phase = phase
	return req, nil
}
