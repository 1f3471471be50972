package repository

import (
	"context"
	"database/sql"
	"fmt"

	"taskmanager/internal/models"
)

type UserRepo interface {
	Create(ctx context.Context, u models.User) (int, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
	GetByIDAndEmail(ctx context.Context, id int, email string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailOrUsernameTaken(ctx context.Context, email, username string, excludeID int) (bool, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, u models.User) error
	SetActivated(ctx context.Context, id int) error
	Delete(ctx context.Context, id int) error
}

type ProjectRepo interface {
	Create(ctx context.Context, p models.Project) (int, error)
	GetByID(ctx context.Context, id int) (*models.Project, error)
	ListByUser(ctx context.Context, userID int) ([]models.Project, error)
	Update(ctx context.Context, p models.Project) error
	Delete(ctx context.Context, id int) error
}

type TaskRepo interface {
	Create(ctx context.Context, t models.Task) (int, error)
	GetByID(ctx context.Context, id int) (*models.Task, error)
	ListByUser(ctx context.Context, userID int) ([]models.Task, error)
	ListByProject(ctx context.Context, projectID int) ([]models.Task, error)
	Update(ctx context.Context, t models.Task) error
	Delete(ctx context.Context, id int) error
}

type LabelRepo interface {
	Create(ctx context.Context, l models.Label) (int, error)
	GetByID(ctx context.Context, id int) (*models.Label, error)
	ListByUser(ctx context.Context, userID int) ([]models.Label, error)
	Update(ctx context.Context, l models.Label) error
	Delete(ctx context.Context, id int) error
}

// AssociationRepo stores label links for projects and tasks.
type AssociationRepo interface {
	ParentOwner(ctx context.Context, t JoinTable, parentID int) (ownerID int, found bool, err error)
	Link(ctx context.Context, t JoinTable, parentID, labelID int) (bool, error)
	Unlink(ctx context.Context, t JoinTable, parentID, labelID int) (bool, error)
	Labels(ctx context.Context, t JoinTable, parentID int) ([]models.Label, error)
}

type Repository struct {
	Users        UserRepo
	Projects     ProjectRepo
	Tasks        TaskRepo
	Labels       LabelRepo
	Associations AssociationRepo
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:        NewUserSQLite(db),
		Projects:     NewProjectSQLite(db),
		Tasks:        NewTaskSQLite(db),
		Labels:       NewLabelSQLite(db),
		Associations: NewAssociationSQLite(db),
	}
}

// execer is satisfied by *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// withTx runs fn in a transaction, committing only if fn succeeds.
func withTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
