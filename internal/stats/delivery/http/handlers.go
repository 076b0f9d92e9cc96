package http

import (
	"github.com/gin-gonic/gin"

	"trackfit-companion/pkg/response"
)

// Overview godoc
// @Summary     Overview stats
// @Description Returns the signed-in user's streak, consistency, workout count and average duration, formatted for display.
// @Tags        Stats
// @Produce     json
// @Success     200 {object} overviewResp
// @Failure     401 {object} response.Resp "You need to sign in first."
// @Failure     502 {object} response.Resp "Request failed"
// @Router      /api/v1/stats/overview [GET]
func (h *handler) Overview(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Overview(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Overview: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newOverviewResp(output))
}
