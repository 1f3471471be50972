package handlers

import (
	"fmt"
	"net/http"

	"taskmanager/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateLabelRequest is the label creation payload. Owner must be the
// caller's id.
type CreateLabelRequest struct {
	Name  string `json:"name" binding:"required" example:"bug"`
	Color string `json:"color" example:"#ff0000"`
	Owner int    `json:"owner" example:"1"`
}

type UpdateLabelRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// @Summary      Create label
// @Tags         labels
// @Accept       json
// @Produce      json
// @Param        body  body      CreateLabelRequest  true  "Label"
// @Success      200   {object}  models.Label
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /labels [post]
// @Security     BearerAuth
func (h *Handler) createLabel(c *gin.Context) {
	caller, ok := h.mustCaller(c)
	if !ok {
		return
	}
	var req CreateLabelRequest
	if ok := h.bindJSON(c, &req); !ok {
		return
	}
	l, err := h.services.CreateLabel(c.Request.Context(), caller, service.LabelInput{
		Name:  req.Name,
		Color: req.Color,
		Owner: req.Owner,
	})
	if err != nil {
		h.fail(c, err, "label_create_failed", "user_id", caller.ID)
		return
	}
	respond(c, fmt.Sprintf(msgCreated, "Label"), l)
}

// @Summary      List own labels
// @Tags         labels
// @Produce      json
// @Success      200  {array}   models.Label
// @Failure      404  {object}  errorResponse
// @Router       /labels/all [get]
// @Security     BearerAuth
func (h *Handler) listLabels(c *gin.Context) {
	caller, ok := h.mustCaller(c)
	if !ok {
		return
	}
	labels, err := h.services.ListLabels(c.Request.Context(), caller)
	if err != nil {
		h.fail(c, err, "label_list_failed", "user_id", caller.ID)
		return
	}
	if len(labels) == 0 {
		abortWithMessage(c, http.StatusNotFound, fmt.Sprintf(msgNoneFound, "labels"))
		return
	}
	respond(c, msgRetrieved, labels)
}

// @Summary      Get label
// @Tags         labels
// @Produce      json
// @Param        id   path      int  true  "Label ID"
// @Success      200  {object}  models.Label
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /labels/{id} [get]
// @Security     BearerAuth
func (h *Handler) getLabel(c *gin.Context) {
	caller, ok := h.mustCaller(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	l, err := h.services.GetLabel(c.Request.Context(), caller, id)
	if err != nil {
		h.fail(c, err, "label_get_failed", "id", id)
		return
	}
	respond(c, msgRetrieved, l)
}

// @Summary      Update label
// @Tags         labels
// @Accept       json
// @Produce      json
// @Param        id    path      int                 true  "Label ID"
// @Param        body  body      UpdateLabelRequest  true  "Fields to change"
// @Success      200   {object}  models.Label
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /labels/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateLabel(c *gin.Context) {
	caller, ok := h.mustCaller(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req UpdateLabelRequest
	if ok := h.bindJSON(c, &req); !ok {
		return
	}
	l, err := h.services.UpdateLabel(c.Request.Context(), caller, id, service.LabelUpdate{Name: req.Name, Color: req.Color})
	if err != nil {
		h.fail(c, err, "label_update_failed", "id", id)
		return
	}
	respond(c, fmt.Sprintf(msgUpdated, "Label"), l)
}

// @Summary      Delete label
// @Description  Removes the label from every project and task; those stay
// @Tags         labels
// @Produce      json
// @Param        id   path      int  true  "Label ID"
// @Success      200  {object}  envelope
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /labels/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteLabel(c *gin.Context) {
	caller, ok := h.mustCaller(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.services.DeleteLabel(c.Request.Context(), caller, id); err != nil {
		h.fail(c, err, "label_delete_failed", "id", id)
		return
	}
	respond(c, fmt.Sprintf(msgDeleted, "Label"), nil)
}
