package service

import (
	"context"

	"taskmanager/internal/logger"
	"taskmanager/internal/models"
	"taskmanager/internal/repository"
)

// Authorization covers registration, login, bearer-token resolution and
// account activation.
type Authorization interface {
	Register(ctx context.Context, in RegisterInput) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	Authenticate(ctx context.Context, accessToken string) (*models.User, error)
	IssueActivationToken(ctx context.Context, caller *models.User, userID int) (string, error)
	Activate(ctx context.Context, caller *models.User, token string) (*models.User, error)
}

type Users interface {
	GetUser(ctx context.Context, caller *models.User, id int) (*models.UserView, error)
	ListUsers(ctx context.Context) ([]models.UserView, error)
	UpdateUser(ctx context.Context, caller *models.User, id int, in UserUpdate) (*models.UserView, error)
	DeleteUser(ctx context.Context, caller *models.User, id int) error
}

type Projects interface {
	CreateProject(ctx context.Context, caller *models.User, in ProjectInput) (*models.ProjectView, error)
	GetProject(ctx context.Context, caller *models.User, id int) (*models.ProjectView, error)
	ListProjects(ctx context.Context, caller *models.User) ([]models.ProjectView, error)
	UpdateProject(ctx context.Context, caller *models.User, id int, in ProjectUpdate) (*models.ProjectView, error)
	DeleteProject(ctx context.Context, caller *models.User, id int) error
	AttachProjectLabels(ctx context.Context, caller *models.User, id int, labelIDs []int) (*models.ProjectView, error)
	DetachProjectLabel(ctx context.Context, caller *models.User, id, labelID int) error
}

type Tasks interface {
	CreateTask(ctx context.Context, caller *models.User, in TaskInput) (*models.TaskView, error)
	GetTask(ctx context.Context, caller *models.User, id int) (*models.TaskView, error)
	ListTasks(ctx context.Context, caller *models.User) ([]models.TaskView, error)
	UpdateTask(ctx context.Context, caller *models.User, id int, in TaskUpdate) (*models.TaskView, error)
	DeleteTask(ctx context.Context, caller *models.User, id int) error
	AttachTaskLabels(ctx context.Context, caller *models.User, id int, labelIDs []int) (*models.TaskView, error)
	DetachTaskLabel(ctx context.Context, caller *models.User, id, labelID int) error
}

type Labels interface {
	CreateLabel(ctx context.Context, caller *models.User, in LabelInput) (*models.Label, error)
	GetLabel(ctx context.Context, caller *models.User, id int) (*models.Label, error)
	ListLabels(ctx context.Context, caller *models.User) ([]models.Label, error)
	UpdateLabel(ctx context.Context, caller *models.User, id int, in LabelUpdate) (*models.Label, error)
	DeleteLabel(ctx context.Context, caller *models.User, id int) error
}

// Service aggregates the sub-services the HTTP layer depends on.
type Service struct {
	Authorization
	Users
	Projects
	Tasks
	Labels
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, cfg AuthConfig, log *logger.Logger) *Service {
	assoc := NewAssociationManager(repos.Associations, log.Named("labels"))
	return &Service{
		Authorization: NewAuthService(repos.Users, NewTokenService(cfg.SigningKey), cfg, log.Named("auth")),
		Users:         NewUserService(repos),
		Projects:      NewProjectService(repos, assoc),
		Tasks:         NewTaskService(repos, assoc),
		Labels:        NewLabelService(repos.Labels),
	}
}
