package handlers

import (
	"context"
	"net/http"

	"taskmanager/internal/models"
	"taskmanager/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerUser *models.User
	registerErr  error
	loginUser    *models.User
	loginToken   string
	loginErr     error
	authUser     *models.User
	authErr      error
	activateErr  error

	lastRegister   service.RegisterInput
	lastLoginEmail string
	lastLoginPass  string
	lastToken      string
}

func (m *mockAuth) Register(_ context.Context, in service.RegisterInput) (*models.User, error) {
	m.lastRegister = in
	return m.registerUser, m.registerErr
}

func (m *mockAuth) Login(_ context.Context, email, password string) (*models.User, string, error) {
	m.lastLoginEmail = email
	m.lastLoginPass = password
	return m.loginUser, m.loginToken, m.loginErr
}

func (m *mockAuth) Authenticate(_ context.Context, token string) (*models.User, error) {
	m.lastToken = token
	return m.authUser, m.authErr
}

func (m *mockAuth) IssueActivationToken(context.Context, *models.User, int) (string, error) {
	return "activation-token", nil
}

func (m *mockAuth) Activate(_ context.Context, caller *models.User, _ string) (*models.User, error) {
	if m.activateErr != nil {
		return nil, m.activateErr
	}
	u := *caller
	u.Activated = true
	return &u, nil
}

type mockUsers struct {
	view    *models.UserView
	list    []models.UserView
	err     error
	listErr error

	lastID     int
	lastUpdate service.UserUpdate
	deleted    []int
}

func (m *mockUsers) GetUser(_ context.Context, _ *models.User, id int) (*models.UserView, error) {
	m.lastID = id
	return m.view, m.err
}

func (m *mockUsers) ListUsers(context.Context) ([]models.UserView, error) {
	return m.list, m.listErr
}

func (m *mockUsers) UpdateUser(_ context.Context, _ *models.User, id int, in service.UserUpdate) (*models.UserView, error) {
	m.lastID = id
	m.lastUpdate = in
	return m.view, m.err
}

func (m *mockUsers) DeleteUser(_ context.Context, _ *models.User, id int) error {
	m.deleted = append(m.deleted, id)
	return m.err
}

type mockProjects struct {
	view *models.ProjectView
	list []models.ProjectView
	err  error

	lastCreate   service.ProjectInput
	lastUpdate   service.ProjectUpdate
	lastLabels   []int
	lastDetach   [2]int
	detachCalled int
}

func (m *mockProjects) CreateProject(_ context.Context, _ *models.User, in service.ProjectInput) (*models.ProjectView, error) {
	m.lastCreate = in
	return m.view, m.err
}

func (m *mockProjects) GetProject(context.Context, *models.User, int) (*models.ProjectView, error) {
	return m.view, m.err
}

func (m *mockProjects) ListProjects(context.Context, *models.User) ([]models.ProjectView, error) {
	return m.list, m.err
}

func (m *mockProjects) UpdateProject(_ context.Context, _ *models.User, _ int, in service.ProjectUpdate) (*models.ProjectView, error) {
	m.lastUpdate = in
	return m.view, m.err
}

func (m *mockProjects) DeleteProject(context.Context, *models.User, int) error {
	return m.err
}

func (m *mockProjects) AttachProjectLabels(_ context.Context, _ *models.User, _ int, labelIDs []int) (*models.ProjectView, error) {
	m.lastLabels = labelIDs
	return m.view, m.err
}

func (m *mockProjects) DetachProjectLabel(_ context.Context, _ *models.User, id, labelID int) error {
	m.detachCalled++
	m.lastDetach = [2]int{id, labelID}
	return m.err
}

type mockTasks struct {
	view *models.TaskView
	list []models.TaskView
	err  error

	lastCreate service.TaskInput
	lastUpdate service.TaskUpdate
	lastLabels []int
	lastDetach [2]int
}

func (m *mockTasks) CreateTask(_ context.Context, _ *models.User, in service.TaskInput) (*models.TaskView, error) {
	m.lastCreate = in
	return m.view, m.err
}

func (m *mockTasks) GetTask(context.Context, *models.User, int) (*models.TaskView, error) {
	return m.view, m.err
}

func (m *mockTasks) ListTasks(context.Context, *models.User) ([]models.TaskView, error) {
	return m.list, m.err
}

func (m *mockTasks) UpdateTask(_ context.Context, _ *models.User, _ int, in service.TaskUpdate) (*models.TaskView, error) {
	m.lastUpdate = in
	return m.view, m.err
}

func (m *mockTasks) DeleteTask(context.Context, *models.User, int) error {
	return m.err
}

func (m *mockTasks) AttachTaskLabels(_ context.Context, _ *models.User, _ int, labelIDs []int) (*models.TaskView, error) {
	m.lastLabels = labelIDs
	return m.view, m.err
}

func (m *mockTasks) DetachTaskLabel(_ context.Context, _ *models.User, id, labelID int) error {
	m.lastDetach = [2]int{id, labelID}
	return m.err
}

type mockLabels struct {
	label *models.Label
	list  []models.Label
	err   error

	lastCreate service.LabelInput
}

func (m *mockLabels) CreateLabel(_ context.Context, _ *models.User, in service.LabelInput) (*models.Label, error) {
	m.lastCreate = in
	return m.label, m.err
}

func (m *mockLabels) GetLabel(context.Context, *models.User, int) (*models.Label, error) {
	return m.label, m.err
}

func (m *mockLabels) ListLabels(context.Context, *models.User) ([]models.Label, error) {
	return m.list, m.err
}

func (m *mockLabels) UpdateLabel(context.Context, *models.User, int, service.LabelUpdate) (*models.Label, error) {
	return m.label, m.err
}

func (m *mockLabels) DeleteLabel(context.Context, *models.User, int) error {
	return m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
