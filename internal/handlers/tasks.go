package handlers

import (
	"fmt"
	"net/http"

	"taskmanager/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateTaskRequest is the task creation payload. Creator must be the
// caller's id and project one of the caller's projects.
type CreateTaskRequest struct {
	Name        string `json:"name" binding:"required" example:"Write docs"`
	Description string `json:"description"`
	Creator     int    `json:"creator" example:"1"`
	Project     int    `json:"project" binding:"required" example:"1"`
	Due         Date   `json:"due" swaggertype:"string" example:"2030-01-15"`
	Labels      []int  `json:"labels"`
}

// UpdateTaskRequest fields left empty keep their stored value.
type UpdateTaskRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Due         Date   `json:"due" swaggertype:"string" example:"2030-01-15"`
	Completed   bool   `json:"completed"`
}

// @Summary      Create task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        body  body      CreateTaskRequest  true  "Task"
// @Success      200   {object}  models.TaskView
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /tasks [post]
// @Security     BearerAuth
func (h *Handler) createTask(c *gin.Context) {
	caller, ok := h.mustCaller(c)
	if !ok {
		return
	}
	var req CreateTaskRequest
	if ok := h.bindJSON(c, &req); !ok {
		return
	}
	t, err := h.services.CreateTask(c.Request.Context(), caller, service.TaskInput{
		Name:        req.Name,
		Description: req.Description,
		Creator:     req.Creator,
		ProjectID:   req.Project,
		Due:         req.Due.ptr(),
		Labels:      req.Labels,
	})
	if err != nil {
		h.fail(c, err, "task_create_failed", "user_id", caller.ID, "project_id", req.Project)
		return
	}
	respond(c, fmt.Sprintf(msgCreated, "Task"), t)
}

// @Summary      List own tasks
// @Tags         tasks
// @Produce      json
// @Success      200  {array}   models.TaskView
// @Failure      404  {object}  errorResponse
// @Router       /tasks/all [get]
// @Security     BearerAuth
func (h *Handler) listTasks(c *gin.Context) {
	caller, ok := h.mustCaller(c)
	if !ok {
		return
	}
	tasks, err := h.services.ListTasks(c.Request.Context(), caller)
	if err != nil {
		h.fail(c, err, "task_list_failed", "user_id", caller.ID)
		return
	}
	if len(tasks) == 0 {
		abortWithMessage(c, http.StatusNotFound, fmt.Sprintf(msgNoneFound, "tasks"))
		return
	}
	respond(c, msgRetrieved, tasks)
}

// @Summary      Get task
// @Tags         tasks
// @Produce      json
// @Param        id   path      int  true  "Task ID"
// @Success      200  {object}  models.TaskView
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /tasks/{id} [get]
// @Security     BearerAuth
func (h *Handler) getTask(c *gin.Context) {
	caller, ok := h.mustCaller(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	t, err := h.services.GetTask(c.Request.Context(), caller, id)
	if err != nil {
		h.fail(c, err, "task_get_failed", "id", id)
		return
	}
	respond(c, msgRetrieved, t)
}

// @Summary      Update task
// @Description  Empty fields keep their value; completed cannot be reset to false
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "Task ID"
// @Param        body  body      UpdateTaskRequest  true  "Fields to change"
// @Success      200   {object}  models.TaskView
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /tasks/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateTask(c *gin.Context) {
	caller, ok := h.mustCaller(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req UpdateTaskRequest
	if ok := h.bindJSON(c, &req); !ok {
		return
	}
	t, err := h.services.UpdateTask(c.Request.Context(), caller, id, service.TaskUpdate{
		Name:        req.Name,
		Description: req.Description,
		Due:         req.Due.ptr(),
		Completed:   req.Completed,
	})
	if err != nil {
		h.fail(c, err, "task_update_failed", "id", id)
		return
	}
	respond(c, fmt.Sprintf(msgUpdated, "Task"), t)
}

// @Summary      Delete task
// @Tags         tasks
// @Produce      json
// @Param        id   path      int  true  "Task ID"
// @Success      200  {object}  envelope
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /tasks/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteTask(c *gin.Context) {
	caller, ok := h.mustCaller(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.services.DeleteTask(c.Request.Context(), caller, id); err != nil {
		h.fail(c, err, "task_delete_failed", "id", id)
		return
	}
	respond(c, fmt.Sprintf(msgDeleted, "Task"), nil)
}

// @Summary      Attach labels to task
// @Description  Unknown labels and existing links are skipped
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id    path      int            true  "Task ID"
// @Param        body  body      labelsRequest  true  "Label ids"
// @Success      200   {object}  models.TaskView
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /tasks/{id}/labels [post]
// @Security     BearerAuth
func (h *Handler) attachTaskLabels(c *gin.Context) {
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
	t, err := h.services.AttachTaskLabels(c.Request.Context(), caller, id, req.Labels)
	if err != nil {
		h.fail(c, err, "task_attach_failed", "id", id)
		return
	}
	respond(c, "Labels added successfully", t)
}

// @Summary      Detach label from task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id    path      int           true  "Task ID"
// @Param        body  body      labelRequest  true  "Label id"
// @Success      200   {object}  envelope
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /tasks/{id}/labels [delete]
// @Security     BearerAuth
func (h *Handler) detachTaskLabel(c *gin.Context) {
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
	if err := h.services.DetachTaskLabel(c.Request.Context(), caller, id, req.Label); err != nil {
		h.fail(c, err, "task_detach_failed", "id", id, "label_id", req.Label)
		return
	}
	respond(c, msgLabelRemoved, nil)
}
