package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"taskmanager/internal/models"
	"taskmanager/internal/service"

	"github.com/gin-gonic/gin"
)

// minimal router wiring only the middleware + protected endpoints
func newMiddlewareOnlyRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(s, nil)
	r.GET("/secure", h.authenticate, func(c *gin.Context) {
		u, _ := callerFrom(c)
		c.JSON(http.StatusOK, gin.H{"ok": true, "userId": u.ID})
	})
	r.GET("/admin", h.authenticate, h.requireAdmin, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	// requireAdmin without authenticate in front of it
	r.GET("/admin-unguarded", h.requireAdmin, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestAuthenticate_Errors(t *testing.T) {
	cases := []struct {
		name    string
		header  string
		authErr error
		wantMsg string
	}{
		{name: "missing header", header: "", wantMsg: msgMissingAuth},
		{name: "invalid scheme", header: "Token abc", wantMsg: msgInvalidScheme},
		{name: "bearer without token", header: "Bearer", wantMsg: msgInvalidScheme},
		{name: "bearer with blank token", header: "Bearer   ", wantMsg: msgInvalidScheme},
		{
			name:    "expired/invalid token",
			header:  "Bearer expired",
			authErr: fmt.Errorf("%w: %w", service.ErrUnauthenticated, service.ErrTokenInvalid),
			wantMsg: "invalid or expired token",
		},
		{
			name:    "user gone",
			header:  "Bearer stale",
			authErr: fmt.Errorf("%w: user 3 no longer matches token", service.ErrUnauthenticated),
			wantMsg: "invalid or expired token",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			auth := &mockAuth{authUser: &models.User{ID: 1}, authErr: tc.authErr}
			r := newMiddlewareOnlyRouter(&service.Service{Authorization: auth})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/secure", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			r.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Fatalf("status: got %d, want 401 (body=%s)", w.Code, w.Body.String())
			}
			var out errorResponse
			_ = json.Unmarshal(w.Body.Bytes(), &out)
			if out.Message != tc.wantMsg {
				t.Fatalf("message: got %q, want %q", out.Message, tc.wantMsg)
			}
		})
	}
}

func TestAuthenticate_StoreFailureIs500(t *testing.T) {
	auth := &mockAuth{authErr: errors.New("database is locked")}
	r := newMiddlewareOnlyRouter(&service.Service{Authorization: auth})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer tok")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status: got %d, want 500", w.Code)
	}
}

func TestAuthenticate_SuccessStoresCaller(t *testing.T) {
	auth := &mockAuth{authUser: &models.User{ID: 123}}
	r := newMiddlewareOnlyRouter(&service.Service{Authorization: auth})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d; body=%s", w.Code, http.StatusOK, w.Body.String())
	}
	var resp struct {
		OK     bool `json:"ok"`
		UserID int  `json:"userId"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !resp.OK || resp.UserID != 123 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if auth.lastToken != "good-token" {
		t.Fatalf("Authenticate got %q, want %q", auth.lastToken, "good-token")
	}
}

func TestAuthenticate_SchemeIsCaseInsensitive(t *testing.T) {
	for _, scheme := range []string{"bearer", "BEARER", "BeArEr"} {
		auth := &mockAuth{authUser: &models.User{ID: 7}}
		r := newMiddlewareOnlyRouter(&service.Service{Authorization: auth})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/secure", nil)
		req.Header.Set("Authorization", scheme+" good-token")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("%s: status got %d, want 200; body=%s", scheme, w.Code, w.Body.String())
		}
		if auth.lastToken != "good-token" {
			t.Fatalf("%s: Authenticate got %q", scheme, auth.lastToken)
		}
	}
}

func TestRequireAdmin(t *testing.T) {
	cases := []struct {
		name string
		path string
		user *models.User
		want int
	}{
		{name: "admin", path: "/admin", user: &models.User{ID: 1, IsAdmin: true}, want: http.StatusOK},
		{name: "regular user", path: "/admin", user: &models.User{ID: 2}, want: http.StatusForbidden},
		{name: "no caller", path: "/admin-unguarded", user: &models.User{ID: 1, IsAdmin: true}, want: http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newMiddlewareOnlyRouter(&service.Service{Authorization: &mockAuth{authUser: tc.user}})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			req.Header.Set("Authorization", "Bearer tok")
			r.ServeHTTP(w, req)

			if w.Code != tc.want {
				t.Fatalf("status: got %d, want %d (body=%s)", w.Code, tc.want, w.Body.String())
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	r := newTestRouter(&service.Service{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Header().Get(requestIDHeader) == "" {
		t.Fatalf("expected generated %s header", requestIDHeader)
	}

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	r.ServeHTTP(w, req)
	if got := w.Header().Get(requestIDHeader); got != "abc-123" {
		t.Fatalf("expected client request id echoed, got %q", got)
	}
}

func TestRouter_NotFoundAndMethodNotAllowed(t *testing.T) {
	r := newTestRouter(&service.Service{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/login", nil))
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", w.Code)
	}
	var out errorResponse
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.Message != msgNotAllowed {
		t.Fatalf("unexpected message %q", out.Message)
	}
}
