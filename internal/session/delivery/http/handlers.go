package http

import (
	"github.com/gin-gonic/gin"

	"trackfit-companion/pkg/response"
)

// Start godoc
// @Summary     Start session
// @Description Signs in against the TrackFit backend and stores the session locally.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body startReq true "Name and email"
// @Success     200 {object} startResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Unable to start session"
// @Router      /api/v1/auth/start [POST]
func (h *handler) Start(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processStartReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Start(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Start: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newStartResp(output))
}

// Current godoc
// @Summary     Current session
// @Description Reports whether a user is signed in, with the profile pill details.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} currentResp
// @Router      /api/v1/auth/session [GET]
func (h *handler) Current(c *gin.Context) {
	response.OK(c, h.newCurrentResp(h.uc.Describe(c.Request.Context())))
}

// Logout godoc
// @Summary     Sign out
// @Description Clears the locally stored session.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} response.Resp
// @Failure     500 {object} response.Resp
// @Router      /api/v1/auth/session [DELETE]
func (h *handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Logout(ctx); err != nil {
		h.l.Errorf(ctx, "uc.Logout: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}
