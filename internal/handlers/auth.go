package handlers

import (
	"net/http"

	"taskmanager/internal/models"
	"taskmanager/internal/service"

	"github.com/gin-gonic/gin"
)

// RegisterRequest is the sign-up payload.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required" example:"alice@example.com"`
	Username string `json:"username" binding:"required" example:"alice"`
	Name     string `json:"name" binding:"required" example:"Alice"`
	Password string `json:"password" binding:"required" example:"s3cr3t"`
}

// LoginResponse is the user profile plus a bearer token.
type LoginResponse struct {
	models.UserView
	AuthToken string `json:"auth_token"`
}

type activateRequest struct {
	Token string `json:"token" binding:"required"`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary      Log in
// @Description  Credentials are sent with HTTP Basic auth (email, password)
// @Tags         auth
// @Produce      json
// @Success      200  {object}  LoginResponse
// @Failure      400  {object}  errorResponse
// @Router       /login [post]
// @Security     BasicAuth
func (h *Handler) login(c *gin.Context) {
	email, password, ok := c.Request.BasicAuth()
	if !ok {
		abortWithMessage(c, http.StatusBadRequest, msgBadRequest)
		return
	}

	ctx := c.Request.Context()
	u, token, err := h.services.Login(ctx, email, password)
	if err != nil {
		h.fail(c, err, "auth_login_failed", "email", email)
		return
	}
	view, err := h.services.GetUser(ctx, u, u.ID)
	if err != nil {
		h.fail(c, err, "auth_login_failed", "email", email)
		return
	}
	respond(c, "Login success", LoginResponse{UserView: *view, AuthToken: token})
}

// @Summary      Register
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      RegisterRequest  true  "Account"
// @Success      200   {object}  models.UserView
// @Failure      400   {object}  errorResponse
// @Router       /register [post]
func (h *Handler) register(c *gin.Context) {
	var req RegisterRequest
	if ok := h.bindJSON(c, &req); !ok {
		return
	}

	u, err := h.services.Register(c.Request.Context(), service.RegisterInput{
		Email:    req.Email,
		Username: req.Username,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		h.fail(c, err, "auth_register_failed", "username", req.Username)
		return
	}
	respond(c, "Registration success", models.UserView{
		User:     *u,
		Projects: []models.ProjectSummary{},
		Tasks:    []models.TaskSummary{},
		Labels:   []models.LabelSummary{},
	})
}

// @Summary      Activate account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      200  {object}  models.User
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /activate [post]
// @Security     BearerAuth
func (h *Handler) activate(c *gin.Context) {
	caller, ok := h.mustCaller(c)
	if !ok {
		return
	}
	var req activateRequest
	if ok := h.bindJSON(c, &req); !ok {
		return
	}
	u, err := h.services.Activate(c.Request.Context(), caller, req.Token)
	if err != nil {
		h.fail(c, err, "auth_activate_failed", "user_id", caller.ID)
		return
	}
	respond(c, "Account activated", u)
}
