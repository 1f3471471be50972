package service

import (
	"context"
	"fmt"
	"strings"

	"taskmanager/internal/models"
	"taskmanager/internal/repository"
)

type ProjectService struct {
	repos *repository.Repository
	assoc *AssociationManager
}

func NewProjectService(repos *repository.Repository, assoc *AssociationManager) *ProjectService {
	return &ProjectService{repos: repos, assoc: assoc}
}

// CreateProject stores the project, then attaches the requested labels one
// commit at a time.
func (s *ProjectService) CreateProject(ctx context.Context, caller *models.User, in ProjectInput) (*models.ProjectView, error) {
	if in.Creator != caller.ID {
		return nil, ErrForbidden
	}
	if strings.TrimSpace(in.Name) == "" || in.Ends.IsZero() {
		return nil, fmt.Errorf("%w: name and ends are required", ErrValidation)
	}

	p := models.Project{
		Name:        in.Name,
		Description: in.Description,
		UserID:      caller.ID,
		Ends:        in.Ends,
	}
	id, err := s.repos.Projects.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	if err := s.assoc.AttachAll(ctx, repository.ProjectLabels, id, in.Labels); err != nil {
		return nil, err
	}
	return s.GetProject(ctx, caller, id)
}

func (s *ProjectService) GetProject(ctx context.Context, caller *models.User, id int) (*models.ProjectView, error) {
	p, err := s.load(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, caller, p)
}

// ListProjects returns the caller's own projects.
func (s *ProjectService) ListProjects(ctx context.Context, caller *models.User) ([]models.ProjectView, error) {
	projects, err := s.repos.Projects.ListByUser(ctx, caller.ID)
	if err != nil {
		return nil, err
	}
	out := make([]models.ProjectView, 0, len(projects))
	for i := range projects {
		v, err := s.view(ctx, caller, &projects[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, nil
}

func (s *ProjectService) UpdateProject(ctx context.Context, caller *models.User, id int, in ProjectUpdate) (*models.ProjectView, error) {
	p, err := s.load(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	p.Name = orString(in.Name, p.Name)
	p.Description = orString(in.Description, p.Description)
	p.Ends = orTime(in.Ends, p.Ends)
	p.Completed = orBool(in.Completed, p.Completed)

	if err := s.repos.Projects.Update(ctx, *p); err != nil {
		return nil, err
	}
	return s.view(ctx, caller, p)
}

// DeleteProject removes the project with its tasks and label links.
func (s *ProjectService) DeleteProject(ctx context.Context, caller *models.User, id int) error {
	if _, err := s.load(ctx, caller, id); err != nil {
		return err
	}
	return s.repos.Projects.Delete(ctx, id)
}

func (s *ProjectService) AttachProjectLabels(ctx context.Context, caller *models.User, id int, labelIDs []int) (*models.ProjectView, error) {
	p, err := s.load(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	if len(labelIDs) == 0 {
		return nil, fmt.Errorf("%w: labels must not be empty", ErrValidation)
	}
	if err := s.assoc.AttachAll(ctx, repository.ProjectLabels, p.ID, labelIDs); err != nil {
		return nil, err
	}
	return s.view(ctx, caller, p)
}

func (s *ProjectService) DetachProjectLabel(ctx context.Context, caller *models.User, id, labelID int) error {
	return s.assoc.Detach(ctx, caller, repository.ProjectLabels, id, labelID)
}

func (s *ProjectService) load(ctx context.Context, caller *models.User, id int) (*models.Project, error) {
	p, err := s.repos.Projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: project %d", ErrNotFound, id)
	}
	if err := authorize(OwnerAccess(caller, p.UserID)); err != nil {
		return nil, err
	}
	return p, nil
}

// view resolves nested data. Only owners get this far, so the creator is
// the caller.
func (s *ProjectService) view(ctx context.Context, owner *models.User, p *models.Project) (*models.ProjectView, error) {
	tasks, err := s.repos.Tasks.ListByProject(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	labels, err := s.assoc.Summaries(ctx, repository.ProjectLabels, p.ID)
	if err != nil {
		return nil, err
	}
	v := &models.ProjectView{
		Project: *p,
		Creator: owner.Summary(),
		Tasks:   make([]models.TaskSummary, 0, len(tasks)),
		Labels:  labels,
	}
	for i := range tasks {
		v.Tasks = append(v.Tasks, tasks[i].Summary())
	}
	return v, nil
}
