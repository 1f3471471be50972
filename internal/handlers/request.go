package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"taskmanager/internal/models"
	"taskmanager/internal/service"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// Date accepts "YYYY-MM-DD" or RFC 3339 in JSON bodies. An empty string or
// null leaves it unset.
type Date struct {
	time.Time
	Set bool
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	for _, layout := range []string{dateLayout, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time, d.Set = t, true
			return nil
		}
	}
	return fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
}

func (d Date) ptr() *time.Time {
	if !d.Set {
		return nil
	}
	t := d.Time
	return &t
}

// bindJSON binds the request body into dst and writes a 400 on failure.
// Returns false if the request was already handled.
func (h *Handler) bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "path", c.FullPath(), "err", err)
		}
		abortWithMessage(c, http.StatusBadRequest, msgInvalidBody+err.Error())
		return false
	}
	return true
}

// pathID parses :id. Anything that is not a positive integer matches no
// resource.
func (h *Handler) pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		h.fail(c, fmt.Errorf("%w: id %q", service.ErrNotFound, c.Param("id")), "bad_path_id")
		return 0, false
	}
	return id, true
}

// mustCaller returns the user stored by authenticate.
func (h *Handler) mustCaller(c *gin.Context) (*models.User, bool) {
	caller, ok := callerFrom(c)
	if !ok {
		h.fail(c, service.ErrUnauthenticated, "caller_missing")
		return nil, false
	}
	return caller, true
}

type labelsRequest struct {
	Labels []int `json:"labels"`
}

type labelRequest struct {
	Label int `json:"label" binding:"required"`
}
