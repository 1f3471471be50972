package handlers

import (
	"fmt"
	"net/http"

	"taskmanager/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateProjectRequest is the project creation payload. Creator must be the
// caller's id.
type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required" example:"Launch"`
	Description string `json:"description" example:"Q3 launch"`
	Creator     int    `json:"creator" example:"1"`
	Ends        Date   `json:"ends" swaggertype:"string" example:"2030-01-31"`
	Labels      []int  `json:"labels"`
}

// UpdateProjectRequest fields left empty keep their stored value.
type UpdateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Ends        Date   `json:"ends" swaggertype:"string" example:"2030-01-31"`
	Completed   bool   `json:"completed"`
}

// @Summary      Create project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        body  body      CreateProjectRequest  true  "Project"
// @Success      200   {object}  models.ProjectView
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /projects [post]
// @Security     BearerAuth
func (h *Handler) createProject(c *gin.Context) {
	caller, ok := h.mustCaller(c)
	if !ok {
		return
	}
	var req CreateProjectRequest
	if ok := h.bindJSON(c, &req); !ok {
		return
	}
	p, err := h.services.CreateProject(c.Request.Context(), caller, service.ProjectInput{
		Name:        req.Name,
		Description: req.Description,
		Creator:     req.Creator,
		Ends:        req.Ends.Time,
		Labels:      req.Labels,
	})
	if err != nil {
		h.fail(c, err, "project_create_failed", "user_id", caller.ID)
		return
	}
	respond(c, fmt.Sprintf(msgCreated, "Project"), p)
}

// @Summary      List own projects
// @Tags         projects
// @Produce      json
// @Success      200  {array}   models.ProjectView
// @Failure      404  {object}  errorResponse
// @Router       /projects/all [get]
// @Security     BearerAuth
func (h *Handler) listProjects(c *gin.Context) {
	caller, ok := h.mustCaller(c)
	if !ok {
		return
	}
	projects, err := h.services.ListProjects(c.Request.Context(), caller)
	if err != nil {
		h.fail(c, err, "project_list_failed", "user_id", caller.ID)
		return
	}
	if len(projects) == 0 {
		abortWithMessage(c, http.StatusNotFound, fmt.Sprintf(msgNoneFound, "projects"))
		return
	}
	respond(c, msgRetrieved, projects)
}

// @Summary      Get project
// @Tags         projects
// @Produce      json
// @Param        id   path      int  true  "Project ID"
// @Success      200  {object}  models.ProjectView
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /projects/{id} [get]
// @Security     BearerAuth
func (h *Handler) getProject(c *gin.Context) {
	caller, ok := h.mustCaller(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	p, err := h.services.GetProject(c.Request.Context(), caller, id)
	if err != nil {
		h.fail(c, err, "project_get_failed", "id", id)
		return
	}
	respond(c, msgRetrieved, p)
}

// @Summary      Update project
// @Description  Empty fields keep their value; completed cannot be reset to false
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id    path      int                   true  "Project ID"
// @Param        body  body      UpdateProjectRequest  true  "Fields to change"
// @Success      200   {object}  models.ProjectView
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /projects/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateProject(c *gin.Context) {
	caller, ok := h.mustCaller(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req UpdateProjectRequest
	if ok := h.bindJSON(c, &req); !ok {
		return
	}
	p, err := h.services.UpdateProject(c.Request.Context(), caller, id, service.ProjectUpdate{
		Name:        req.Name,
		Description: req.Description,
		Ends:        req.Ends.Time,
		Completed:   req.Completed,
	})
	if err != nil {
		h.fail(c, err, "project_update_failed", "id", id)
		return
	}
	respond(c, fmt.Sprintf(msgUpdated, "Project"), p)
}

// @Summary      Delete project
// @Description  Also deletes the project's tasks and label links
// @Tags         projects
// @Produce      json
// @Param        id   path      int  true  "Project ID"
// @Success      200  {object}  envelope
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /projects/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteProject(c *gin.Context) {
	caller, ok := h.mustCaller(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.services.DeleteProject(c.Request.Context(), caller, id); err != nil {
		h.fail(c, err, "project_delete_failed", "id", id)
		return
	}
	respond(c, fmt.Sprintf(msgDeleted, "Project"), nil)
}

// @Summary      Attach labels to project
// @Description  Unknown labels and existing links are skipped
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id    path      int            true  "Project ID"
// @Param        body  body      labelsRequest  true  "Label ids"
// @Success      200   {object}  models.ProjectView
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /projects/{id}/labels [post]
// @Security     BearerAuth
func (h *Handler) attachProjectLabels(c *gin.Context) {
	caller, ok := h.mustCaller(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req labelsRequest
	if ok := h.bindJSON(c, &req); !ok {
		return
	}
	p, err := h.services.AttachProjectLabels(c.Request.Context(), caller, id, req.Labels)
	if err != nil {
		h.fail(c, err, "project_attach_failed", "id", id)
		return
	}
	respond(c, "Labels added successfully", p)
}

// @Summary      Detach label from project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id    path      int           true  "Project ID"
// @Param        body  body      labelRequest  true  "Label id"
// @Success      200   {object}  envelope
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /projects/{id}/labels [delete]
// @Security     BearerAuth
func (h *Handler) detachProjectLabel(c *gin.Context) {
	caller, ok := h.mustCaller(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req labelRequest
	if ok := h.bindJSON(c, &req); !ok {
		return
	}
	if err := h.services.DetachProjectLabel(c.Request.Context(), caller, id, req.Label); err != nil {
		h.fail(c, err, "project_detach_failed", "id", id, "label_id", req.Label)
		return
	}
	respond(c, msgLabelRemoved, nil)
}
