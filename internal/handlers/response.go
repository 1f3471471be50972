package handlers

import (
	"errors"
	"net/http"

	"taskmanager/internal/service"

	"github.com/gin-gonic/gin"
)

// Response messages shared by the resource handlers.
const (
	msgInternal     = "internal server error"
	msgNotFound     = "resource not found"
	msgNotAllowed   = "method not allowed"
	msgBadRequest   = "bad request"
	msgInvalidBody  = "invalid body: "
	msgNoneFound    = "no %s found"
	msgRetrieved    = "retrieved successfully"
	msgCreated      = "%s created successfully"
	msgUpdated      = "%s updated successfully"
	msgDeleted      = "%s deleted successfully"
	msgLabelRemoved = "label removed successfully"
)

type envelope struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

type errorResponse struct {
	Message string `json:"message"`
}

func respond(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, envelope{Message: message, Data: data})
}

func abortWithMessage(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, errorResponse{Message: message})
}

// statusFor maps service sentinels to HTTP statuses. Unknown errors are 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrUnauthenticated), errors.Is(err, service.ErrTokenInvalid):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrConflict),
		errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes the error response for err. Internal errors are logged under
// logKey and hidden from the client.
func (h *Handler) fail(c *gin.Context, err error, logKey string, kv ...any) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		if h.log != nil {
			fields := append([]any{"err", err, "request_id", c.GetString(requestIDKey)}, kv...)
			h.log.Errorw(logKey, fields...)
		}
		abortWithMessage(c, status, msgInternal)
		return
	}
	if h.log != nil {
		fields := append([]any{"err", err, "status", status}, kv...)
		h.log.Debugw(logKey, fields...)
	}
	abortWithMessage(c, status, clientMessage(err))
}

// clientMessage returns the sentinel text so internal detail never leaks.
func clientMessage(err error) string {
	for _, sentinel := range []error{
		service.ErrUnauthenticated,
		service.ErrForbidden,
		service.ErrNotFound,
		service.ErrConflict,
		service.ErrInvalidCredentials,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	// validation messages describe the request and are safe to echo
	return err.Error()
}

func (h *Handler) noRoute(c *gin.Context) {
	abortWithMessage(c, http.StatusNotFound, msgNotFound)
}

func (h *Handler) noMethod(c *gin.Context) {
	abortWithMessage(c, http.StatusMethodNotAllowed, msgNotAllowed)
}
