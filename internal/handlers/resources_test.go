package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"taskmanager/internal/models"
	"taskmanager/internal/service"

	"github.com/gin-gonic/gin"
)

var testCaller = &models.User{ID: 1, Email: "alice@example.com", Username: "alice"}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header = authHeader("valid")
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestProjectHandlers(t *testing.T) {
	projects := &mockProjects{view: &models.ProjectView{Project: models.Project{ID: 3, Name: "P"}}}
	s := &service.Service{Authorization: &mockAuth{authUser: testCaller}, Projects: projects}
	r := newTestRouter(s)

	w := do(r, http.MethodPost, "/projects", `{"name":"P","description":"d","creator":1,"ends":"2030-01-31","labels":[4,5]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("create status=%d, body=%s", w.Code, w.Body.String())
	}
	in := projects.lastCreate
	if in.Creator != 1 || len(in.Labels) != 2 || !in.Ends.Equal(time.Date(2030, 1, 31, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected create input: %+v", in)
	}

	w = do(r, http.MethodPost, "/projects", `{"name":"P","creator":1,"ends":"31/01/2030"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad date: expected 400, got %d", w.Code)
	}

	w = do(r, http.MethodPut, "/projects/3", `{"completed":true}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update status=%d, body=%s", w.Code, w.Body.String())
	}
	if !projects.lastUpdate.Completed || projects.lastUpdate.Name != "" || !projects.lastUpdate.Ends.IsZero() {
		t.Fatalf("unexpected update input: %+v", projects.lastUpdate)
	}

	w = do(r, http.MethodPost, "/projects/3/labels", `{"labels":[7]}`)
	if w.Code != http.StatusOK || len(projects.lastLabels) != 1 || projects.lastLabels[0] != 7 {
		t.Fatalf("attach status=%d labels=%v", w.Code, projects.lastLabels)
	}

	w = do(r, http.MethodDelete, "/projects/3/labels", `{"label":7}`)
	if w.Code != http.StatusOK || projects.lastDetach != [2]int{3, 7} {
		t.Fatalf("detach status=%d args=%v", w.Code, projects.lastDetach)
	}

	w = do(r, http.MethodGet, "/projects/all", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("empty list: expected 404, got %d", w.Code)
	}
	projects.list = []models.ProjectView{*projects.view}
	w = do(r, http.MethodGet, "/projects/all", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list status=%d", w.Code)
	}

	w = do(r, http.MethodGet, "/projects/abc", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("non-numeric id: expected 404, got %d", w.Code)
	}
}

func TestResourceHandlers_ErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{service.ErrForbidden, http.StatusForbidden},
		{fmt.Errorf("%w: project 9", service.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: name is required", service.ErrValidation), http.StatusBadRequest},
		{fmt.Errorf("select project: %w", io.ErrUnexpectedEOF), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(http.StatusText(tc.want), func(t *testing.T) {
			s := &service.Service{
				Authorization: &mockAuth{authUser: testCaller},
				Projects:      &mockProjects{err: tc.err},
				Tasks:         &mockTasks{err: tc.err},
				Labels:        &mockLabels{err: tc.err},
			}
			r := newTestRouter(s)
			for _, path := range []string{"/projects/9", "/tasks/9", "/labels/9"} {
				w := do(r, http.MethodGet, path, "")
				if w.Code != tc.want {
					t.Fatalf("%s: got %d, want %d", path, w.Code, tc.want)
				}
				var out errorResponse
				_ = json.Unmarshal(w.Body.Bytes(), &out)
				if tc.want == http.StatusInternalServerError && out.Message != msgInternal {
					t.Fatalf("internal detail leaked: %q", out.Message)
				}
			}
		})
	}
}

func TestTaskHandlers(t *testing.T) {
	tasks := &mockTasks{view: &models.TaskView{Task: models.Task{ID: 8, Name: "T"}}}
	s := &service.Service{Authorization: &mockAuth{authUser: testCaller}, Tasks: tasks}
	r := newTestRouter(s)

	w := do(r, http.MethodPost, "/tasks", `{"name":"T","creator":1,"project":3,"due":"2030-01-15"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("create status=%d, body=%s", w.Code, w.Body.String())
	}
	if tasks.lastCreate.ProjectID != 3 || tasks.lastCreate.Due == nil || tasks.lastCreate.Due.Day() != 15 {
		t.Fatalf("unexpected create input: %+v", tasks.lastCreate)
	}

	w = do(r, http.MethodPost, "/tasks", `{"name":"T","creator":1,"project":3}`)
	if w.Code != http.StatusOK || tasks.lastCreate.Due != nil {
		t.Fatalf("due should be optional: status=%d due=%v", w.Code, tasks.lastCreate.Due)
	}

	w = do(r, http.MethodPut, "/tasks/8", `{"name":"T2"}`)
	if w.Code != http.StatusOK || tasks.lastUpdate.Name != "T2" || tasks.lastUpdate.Due != nil || tasks.lastUpdate.Completed {
		t.Fatalf("update status=%d input=%+v", w.Code, tasks.lastUpdate)
	}

	w = do(r, http.MethodPost, "/tasks/8/labels", `{"labels":[1,2]}`)
	if w.Code != http.StatusOK || len(tasks.lastLabels) != 2 {
		t.Fatalf("attach status=%d labels=%v", w.Code, tasks.lastLabels)
	}

	w = do(r, http.MethodDelete, "/tasks/8/labels", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("detach without label: expected 400, got %d", w.Code)
	}

	w = do(r, http.MethodDelete, "/tasks/8", "")
	if w.Code != http.StatusOK {
		t.Fatalf("delete status=%d", w.Code)
	}
}

func TestLabelHandlers(t *testing.T) {
	labels := &mockLabels{label: &models.Label{ID: 2, Name: "bug", Color: "#f00"}}
	s := &service.Service{Authorization: &mockAuth{authUser: testCaller}, Labels: labels}
	r := newTestRouter(s)

	w := do(r, http.MethodPost, "/labels", `{"name":"bug","color":"#f00","owner":1}`)
	if w.Code != http.StatusOK || labels.lastCreate.Owner != 1 {
		t.Fatalf("create status=%d input=%+v", w.Code, labels.lastCreate)
	}
	var resp struct {
		Data models.Label `json:"data"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Data.ID != 2 || resp.Data.Color != "#f00" {
		t.Fatalf("unexpected payload: %+v", resp.Data)
	}

	labels.err = service.ErrForbidden
	w = do(r, http.MethodDelete, "/labels/2", "")
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestUserHandlers(t *testing.T) {
	users := &mockUsers{view: &models.UserView{User: *testCaller}}
	s := &service.Service{Authorization: &mockAuth{authUser: testCaller}, Users: users}
	r := newTestRouter(s)

	w := do(r, http.MethodGet, "/users/1", "")
	if w.Code != http.StatusOK || users.lastID != 1 {
		t.Fatalf("get status=%d id=%d", w.Code, users.lastID)
	}

	w = do(r, http.MethodPut, "/users/1", `{"profile":"hi"}`)
	if w.Code != http.StatusOK || users.lastUpdate.Profile != "hi" {
		t.Fatalf("update status=%d input=%+v", w.Code, users.lastUpdate)
	}

	w = do(r, http.MethodPost, "/users/1/verification", "")
	if w.Code != http.StatusOK {
		t.Fatalf("verification status=%d", w.Code)
	}

	// non-admin caller
	w = do(r, http.MethodGet, "/users/all", "")
	if w.Code != http.StatusForbidden {
		t.Fatalf("users/all for non-admin: expected 403, got %d", w.Code)
	}

	w = do(r, http.MethodDelete, "/users/1", "")
	if w.Code != http.StatusOK || len(users.deleted) != 1 {
		t.Fatalf("delete status=%d deleted=%v", w.Code, users.deleted)
	}
}

func TestUserHandlers_AdminList(t *testing.T) {
	admin := &models.User{ID: 9, IsAdmin: true}
	users := &mockUsers{}
	r := newTestRouter(&service.Service{Authorization: &mockAuth{authUser: admin}, Users: users})

	w := do(r, http.MethodGet, "/users/all", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("empty list: expected 404, got %d", w.Code)
	}

	users.list = []models.UserView{{User: *admin}}
	w = do(r, http.MethodGet, "/users/all", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list status=%d", w.Code)
	}
}
