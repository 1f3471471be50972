package service

import (
	"context"
	"fmt"
	"strings"

	"taskmanager/internal/models"
	"taskmanager/internal/repository"
)

type LabelService struct {
	repo repository.LabelRepo
}

func NewLabelService(repo repository.LabelRepo) *LabelService {
	return &LabelService{repo: repo}
}

func (s *LabelService) CreateLabel(ctx context.Context, caller *models.User, in LabelInput) (*models.Label, error) {
	if in.Owner != caller.ID {
		return nil, ErrForbidden
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	l := models.Label{Name: in.Name, Color: in.Color, UserID: caller.ID}
	id, err := s.repo.Create(ctx, l)
	if err != nil {
		return nil, err
	}
	l.ID = id
	return &l, nil
}

func (s *LabelService) GetLabel(ctx context.Context, caller *models.User, id int) (*models.Label, error) {
	return s.load(ctx, caller, id)
}

func (s *LabelService) ListLabels(ctx context.Context, caller *models.User) ([]models.Label, error) {
	return s.repo.ListByUser(ctx, caller.ID)
}

func (s *LabelService) UpdateLabel(ctx context.Context, caller *models.User, id int, in LabelUpdate) (*models.Label, error) {
	l, err := s.load(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	l.Name = orString(in.Name, l.Name)
	l.Color = orString(in.Color, l.Color)
	if err := s.repo.Update(ctx, *l); err != nil {
		return nil, err
	}
	return l, nil
}

// DeleteLabel removes the label and its links; tagged projects and tasks stay.
func (s *LabelService) DeleteLabel(ctx context.Context, caller *models.User, id int) error {
	if _, err := s.load(ctx, caller, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *LabelService) load(ctx context.Context, caller *models.User, id int) (*models.Label, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, fmt.Errorf("%w: label %d", ErrNotFound, id)
	}
	if err := authorize(OwnerAccess(caller, l.UserID)); err != nil {
		return nil, err
	}
	return l, nil
}
