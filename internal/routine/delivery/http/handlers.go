package http

import (
	"github.com/gin-gonic/gin"

	"trackfit-companion/pkg/response"
)

// List godoc
// @Summary     List routine tasks
// @Description Fetches the signed-in user's routine tasks from the TrackFit backend.
// @Tags        Routines
// @Produce     json
// @Success     200 {object} listResp
// @Failure     401 {object} response.Resp "You need to sign in first."
// @Failure     502 {object} response.Resp "Request failed"
// @Router      /api/v1/routines [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Create godoc
// @Summary     Create routine task
// @Description Creates a routine task and returns the refreshed list.
// @Tags        Routines
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Routine task"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "You need to sign in first."
// @Router      /api/v1/routines [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Create(ctx, req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	h.List(c)
}

// SetCompleted godoc
// @Summary     Set routine completion
// @Description Marks a routine task done or not done and returns the refreshed list.
// @Tags        Routines
// @Accept      json
// @Produce     json
// @Param       id   path string          true "Routine ID"
// @Param       body body setCompletedReq true "Completion value"
// @Success     200 {object} listResp
// @Failure     401 {object} response.Resp "You need to sign in first."
// @Router      /api/v1/routines/{id}/completed [PATCH]
func (h *handler) SetCompleted(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSetCompletedReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.SetCompleted(ctx, req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.SetCompleted: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	h.List(c)
}

// Delete godoc
// @Summary     Delete routine task
// @Description Deletes a routine task and returns the refreshed list.
// @Tags        Routines
// @Produce     json
// @Param       id path string true "Routine ID"
// @Success     200 {object} listResp
// @Failure     401 {object} response.Resp "You need to sign in first."
// @Router      /api/v1/routines/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	h.List(c)
}
