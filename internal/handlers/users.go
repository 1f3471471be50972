package handlers

import (
	"fmt"
	"net/http"

	"taskmanager/internal/service"

	"github.com/gin-gonic/gin"
)

// UpdateUserRequest fields left empty keep their stored value.
type UpdateUserRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Profile  string `json:"profile"`
}

// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {array}   models.UserView
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/all [get]
// @Security     BearerAuth
func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.services.ListUsers(c.Request.Context())
	if err != nil {
		h.fail(c, err, "user_list_failed")
		return
	}
	if len(users) == 0 {
		abortWithMessage(c, http.StatusNotFound, fmt.Sprintf(msgNoneFound, "users"))
		return
	}
	respond(c, msgRetrieved, users)
}

// @Summary      Get user
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  models.UserView
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/{id} [get]
// @Security     BearerAuth
func (h *Handler) getUser(c *gin.Context) {
	caller, ok := h.mustCaller(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	u, err := h.services.GetUser(c.Request.Context(), caller, id)
	if err != nil {
		h.fail(c, err, "user_get_failed", "id", id)
		return
	}
	respond(c, msgRetrieved, u)
}

// @Summary      Update user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "User ID"
// @Param        body  body      UpdateUserRequest  true  "Fields to change"
// @Success      200   {object}  models.UserView
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /users/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateUser(c *gin.Context) {
	caller, ok := h.mustCaller(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req UpdateUserRequest
	if ok := h.bindJSON(c, &req); !ok {
		return
	}
	u, err := h.services.UpdateUser(c.Request.Context(), caller, id, service.UserUpdate{
		Email:    req.Email,
		Username: req.Username,
		Name:     req.Name,
		Profile:  req.Profile,
	})
	if err != nil {
		h.fail(c, err, "user_update_failed", "id", id)
		return
	}
	respond(c, fmt.Sprintf(msgUpdated, "User"), u)
}

// @Summary      Delete user
// @Description  Also deletes the user's projects, tasks and labels
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  envelope
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteUser(c *gin.Context) {
	caller, ok := h.mustCaller(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.services.DeleteUser(c.Request.Context(), caller, id); err != nil {
		h.fail(c, err, "user_delete_failed", "id", id)
		return
	}
	if h.log != nil {
		h.log.Infow("user_deleted", "id", id, "by", caller.ID)
	}
	respond(c, fmt.Sprintf(msgDeleted, "User"), nil)
}

// @Summary      Request activation token
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/{id}/verification [post]
// @Security     BearerAuth
func (h *Handler) issueVerification(c *gin.Context) {
	caller, ok := h.mustCaller(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	token, err := h.services.IssueActivationToken(c.Request.Context(), caller, id)
	if err != nil {
		h.fail(c, err, "user_verification_failed", "id", id)
		return
	}
	respond(c, "Activation token issued", gin.H{"token": token})
}
