package handlers

import (
	"net/http"
	"strings"
	"time"

	"taskmanager/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	callerKey       = "caller"
	requestIDKey    = "request_id"
	requestIDHeader = "X-Request-ID"

	msgMissingAuth   = "missing Authorization header"
	msgInvalidScheme = "invalid Authorization header format"
	msgAdminOnly     = "admin access required"
)

// authenticate resolves the bearer token to a user and stores it on the
// context for the rest of the request.
func (h *Handler) authenticate(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		abortWithMessage(c, http.StatusUnauthorized, msgMissingAuth)
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		abortWithMessage(c, http.StatusUnauthorized, msgInvalidScheme)
		return
	}

	caller, err := h.services.Authenticate(c.Request.Context(), strings.TrimSpace(parts[1]))
	if err != nil {
		if statusFor(err) != http.StatusUnauthorized {
			h.fail(c, err, "auth_lookup_failed")
			return
		}
		if h.log != nil {
			h.log.Infow("auth_token_rejected", "err", err, "request_id", c.GetString(requestIDKey))
		}
		abortWithMessage(c, http.StatusUnauthorized, "invalid or expired token")
		return
	}

	c.Set(callerKey, caller)
	c.Next()
}

// requireAdmin must run after authenticate.
func (h *Handler) requireAdmin(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		abortWithMessage(c, http.StatusUnauthorized, msgMissingAuth)
		return
	}
	if !caller.IsAdmin {
		abortWithMessage(c, http.StatusForbidden, msgAdminOnly)
		return
	}
	c.Next()
}

func callerFrom(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(callerKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*models.User)
	return u, ok && u != nil
}

// requestID tags each request with an id, reusing the client's if present.
func (h *Handler) requestID(c *gin.Context) {
	id := c.GetHeader(requestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Set(requestIDKey, id)
	c.Header(requestIDHeader, id)
	c.Next()
}

func (h *Handler) requestLogger(c *gin.Context) {
	start := time.Now()
	c.Next()
	if h.log == nil {
		return
	}
	h.log.Infow("http_request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"latency", time.Since(start),
		"request_id", c.GetString(requestIDKey),
	)
}
