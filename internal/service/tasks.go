package service

import (
	"context"
	"fmt"
	"strings"

	"taskmanager/internal/models"
	"taskmanager/internal/repository"
)

type TaskService struct {
	repos *repository.Repository
	assoc *AssociationManager
}

func NewTaskService(repos *repository.Repository, assoc *AssociationManager) *TaskService {
	return &TaskService{repos: repos, assoc: assoc}
}

// CreateTask stores a task under one of the caller's projects, then
// attaches the requested labels.
func (s *TaskService) CreateTask(ctx context.Context, caller *models.User, in TaskInput) (*models.TaskView, error) {
	if in.Creator != caller.ID {
		return nil, ErrForbidden
	}
	if strings.TrimSpace(in.Name) == "" || in.ProjectID == 0 {
		return nil, fmt.Errorf("%w: name and project are required", ErrValidation)
	}
	project, err := s.repos.Projects.GetByID(ctx, in.ProjectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, fmt.Errorf("%w: project %d", ErrNotFound, in.ProjectID)
	}
	if err := authorize(OwnerAccess(caller, project.UserID)); err != nil {
		return nil, err
	}

	t := models.Task{
		Name:        in.Name,
		Description: in.Description,
		UserID:      caller.ID,
		ProjectID:   project.ID,
		Due:         in.Due,
	}
	id, err := s.repos.Tasks.Create(ctx, t)
	if err != nil {
		return nil, err
	}
	if err := s.assoc.AttachAll(ctx, repository.TaskLabels, id, in.Labels); err != nil {
		return nil, err
	}
	return s.GetTask(ctx, caller, id)
}

func (s *TaskService) GetTask(ctx context.Context, caller *models.User, id int) (*models.TaskView, error) {
	t, err := s.load(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, caller, t)
}

// ListTasks returns the caller's own tasks.
func (s *TaskService) ListTasks(ctx context.Context, caller *models.User) ([]models.TaskView, error) {
	tasks, err := s.repos.Tasks.ListByUser(ctx, caller.ID)
	if err != nil {
		return nil, err
	}
	out := make([]models.TaskView, 0, len(tasks))
	for i := range tasks {
		v, err := s.view(ctx, caller, &tasks[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, caller *models.User, id int, in TaskUpdate) (*models.TaskView, error) {
	t, err := s.load(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	t.Name = orString(in.Name, t.Name)
	t.Description = orString(in.Description, t.Description)
	t.Due = orTimePtr(in.Due, t.Due)
	t.Completed = orBool(in.Completed, t.Completed)

	if err := s.repos.Tasks.Update(ctx, *t); err != nil {
		return nil, err
	}
	return s.view(ctx, caller, t)
}

func (s *TaskService) DeleteTask(ctx context.Context, caller *models.User, id int) error {
	if _, err := s.load(ctx, caller, id); err != nil {
		return err
	}
	return s.repos.Tasks.Delete(ctx, id)
}

func (s *TaskService) AttachTaskLabels(ctx context.Context, caller *models.User, id int, labelIDs []int) (*models.TaskView, error) {
	t, err := s.load(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	if len(labelIDs) == 0 {
		return nil, fmt.Errorf("%w: labels must not be empty", ErrValidation)
	}
	if err := s.assoc.AttachAll(ctx, repository.TaskLabels, t.ID, labelIDs); err != nil {
		return nil, err
	}
	return s.view(ctx, caller, t)
}

func (s *TaskService) DetachTaskLabel(ctx context.Context, caller *models.User, id, labelID int) error {
	return s.assoc.Detach(ctx, caller, repository.TaskLabels, id, labelID)
}

func (s *TaskService) load(ctx context.Context, caller *models.User, id int) (*models.Task, error) {
	t, err := s.repos.Tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("%w: task %d", ErrNotFound, id)
	}
	if err := authorize(OwnerAccess(caller, t.UserID)); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TaskService) view(ctx context.Context, owner *models.User, t *models.Task) (*models.TaskView, error) {
	project, err := s.repos.Projects.GetByID(ctx, t.ProjectID)
	if err != nil {
		return nil, err
	}
	labels, err := s.assoc.Summaries(ctx, repository.TaskLabels, t.ID)
	if err != nil {
		return nil, err
	}
	v := &models.TaskView{
		Task:    *t,
		Creator: owner.Summary(),
		Labels:  labels,
	}
	if project != nil {
		v.Project = project.Summary()
	}
	return v, nil
}
