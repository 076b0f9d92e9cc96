package http

import (
	"github.com/gin-gonic/gin"

	"trackfit-companion/pkg/response"
)

// Render godoc
// @Summary     Get checklist
// @Description Returns the current user's checklist with derived statuses and summary.
// @Tags        Checklist
// @Produce     json
// @Success     200 {object} renderResp
// @Router      /api/v1/checklist [GET]
func (h *handler) Render(c *gin.Context) {
	response.OK(c, newRenderResp(h.uc.RenderModel(c.Request.Context())))
}

// AddItem godoc
// @Summary     Add checklist item
// @Description Appends an item with all phases unset. A blank title is ignored.
// @Tags        Checklist
// @Accept      json
// @Produce     json
// @Param       body body addItemReq true "Item title"
// @Success     200  {object} addItemResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Unable to save checklist"
// @Router      /api/v1/checklist/items [POST]
func (h *handler) AddItem(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAddItemReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.AddItem(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AddItem: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newAddItemResp(output))
}

// TogglePhase godoc
// @Summary     Set a phase
// @Description Sets one of the three phases of an item. Unknown items and phases are ignored.
// @Tags        Checklist
// @Accept      json
// @Produce     json
// @Param       id    path string         true "Item ID"
// @Param       phase path int            true "Phase index (0-2)"
// @Param       body  body togglePhaseReq true "New value"
// @Success     200 {object} togglePhaseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Unable to save checklist"
// @Router      /api/v1/checklist/items/{id}/phases/{phase} [PUT]
func (h *handler) TogglePhase(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTogglePhaseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.TogglePhase(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.TogglePhase: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newTogglePhaseResp(output))
}

// RemoveItem godoc
// @Summary     Remove checklist item
// @Description Removes an item. Removing an unknown id is a no-op.
// @Tags        Checklist
// @Produce     json
// @Param       id path string true "Item ID"
// @Success     200 {object} removeItemResp
// @Failure     500 {object} response.Resp "Unable to save checklist"
// @Router      /api/v1/checklist/items/{id} [DELETE]
func (h *handler) RemoveItem(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.RemoveItem(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.RemoveItem: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newRemoveItemResp(output))
}
