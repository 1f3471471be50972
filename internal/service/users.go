package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"taskmanager/internal/models"
	"taskmanager/internal/repository"
)

type UserService struct {
	repos *repository.Repository
}

func NewUserService(repos *repository.Repository) *UserService {
	return &UserService{repos: repos}
}

// GetUser returns the profile of id to its owner or an admin.
func (s *UserService) GetUser(ctx context.Context, caller *models.User, id int) (*models.UserView, error) {
	u, err := s.load(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, u)
}

// ListUsers returns every account. Routing restricts it to admins.
func (s *UserService) ListUsers(ctx context.Context) ([]models.UserView, error) {
	users, err := s.repos.Users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.UserView, 0, len(users))
	for i := range users {
		v, err := s.view(ctx, &users[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, nil
}

// UpdateUser changes the profile fields that are set in in.
func (s *UserService) UpdateUser(ctx context.Context, caller *models.User, id int, in UserUpdate) (*models.UserView, error) {
	u, err := s.load(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	updated := *u
	// Identity fields are stored trimmed, as on registration, so Login and
	// the uniqueness checks see the same value.
	updated.Email = orString(strings.TrimSpace(in.Email), u.Email)
	updated.Username = orString(strings.TrimSpace(in.Username), u.Username)
	updated.Name = orString(in.Name, u.Name)
	updated.Profile = orString(in.Profile, u.Profile)
	if updated.Email != u.Email {
		updated.Avatar = gravatarURL(updated.Email)
	}

	if updated.Email != u.Email || updated.Username != u.Username {
		taken, err := s.repos.Users.EmailOrUsernameTaken(ctx, updated.Email, updated.Username, u.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrConflict
		}
	}
	if err := s.repos.Users.Update(ctx, updated); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return s.view(ctx, &updated)
}

// DeleteUser removes the account and everything it owns.
func (s *UserService) DeleteUser(ctx context.Context, caller *models.User, id int) error {
	u, err := s.load(ctx, caller, id)
	if err != nil {
		return err
	}
	return s.repos.Users.Delete(ctx, u.ID)
}

func (s *UserService) load(ctx context.Context, caller *models.User, id int) (*models.User, error) {
	u, err := s.repos.Users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, id)
	}
	if err := authorize(UserAccess(caller, u.ID)); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) view(ctx context.Context, u *models.User) (*models.UserView, error) {
	projects, err := s.repos.Projects.ListByUser(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	tasks, err := s.repos.Tasks.ListByUser(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	labels, err := s.repos.Labels.ListByUser(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	v := &models.UserView{
		User:     *u,
		Projects: make([]models.ProjectSummary, 0, len(projects)),
		Tasks:    make([]models.TaskSummary, 0, len(tasks)),
		Labels:   make([]models.LabelSummary, 0, len(labels)),
	}
	for i := range projects {
		v.Projects = append(v.Projects, projects[i].Summary())
	}
	for i := range tasks {
		v.Tasks = append(v.Tasks, tasks[i].Summary())
	}
	for i := range labels {
		v.Labels = append(v.Labels, labels[i].Summary())
	}
	return v, nil
}
