package service

import (
	"context"
	"fmt"

	"taskmanager/internal/logger"
	"taskmanager/internal/models"
	"taskmanager/internal/repository"
)

// AssociationManager maintains label links for projects and tasks. Cascades
// on delete live in the repositories' delete transactions.
type AssociationManager struct {
	repo repository.AssociationRepo
	log  *logger.Logger
}

func NewAssociationManager(repo repository.AssociationRepo, log *logger.Logger) *AssociationManager {
	return &AssociationManager{repo: repo, log: log}
}

// Attach links labelID to parentID. Unknown labels and existing links are
// silently skipped.
func (m *AssociationManager) Attach(ctx context.Context, t repository.JoinTable, parentID, labelID int) error {
	created, err := m.repo.Link(ctx, t, parentID, labelID)
	if err != nil {
		return err
	}
	if !created {
		m.log.Debugw("label_attach_skipped", "table", t.String(), "parent_id", parentID, "label_id", labelID, "reason", "unknown label or already linked")
	}
	return nil
}

// AttachAll attaches each label in order, one commit per link.
func (m *AssociationManager) AttachAll(ctx context.Context, t repository.JoinTable, parentID int, labelIDs []int) error {
	for _, labelID := range labelIDs {
		if err := m.Attach(ctx, t, parentID, labelID); err != nil {
			return fmt.Errorf("attach label %d: %w", labelID, err)
		}
	}
	return nil
}

// Detach removes one link. The caller must own the parent.
func (m *AssociationManager) Detach(ctx context.Context, caller *models.User, t repository.JoinTable, parentID, labelID int) error {
	owner, found, err := m.repo.ParentOwner(ctx, t, parentID)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: parent %d", ErrNotFound, parentID)
	}
	if err := authorize(OwnerAccess(caller, owner)); err != nil {
		return err
	}
	removed, err := m.repo.Unlink(ctx, t, parentID, labelID)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("%w: label %d is not attached", ErrNotFound, labelID)
	}
	return nil
}

// Summaries returns the labels linked to parentID.
func (m *AssociationManager) Summaries(ctx context.Context, t repository.JoinTable, parentID int) ([]models.LabelSummary, error) {
	labels, err := m.repo.Labels(ctx, t, parentID)
	if err != nil {
		return nil, err
	}
	out := make([]models.LabelSummary, 0, len(labels))
	for i := range labels {
		out = append(out, labels[i].Summary())
	}
	return out, nil
}
