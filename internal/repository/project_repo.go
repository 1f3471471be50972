package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"taskmanager/internal/models"
)

type ProjectSQLite struct {
	db *sql.DB
}

func NewProjectSQLite(db *sql.DB) *ProjectSQLite {
	return &ProjectSQLite{db: db}
}

var _ ProjectRepo = (*ProjectSQLite)(nil)

const projectColumns = `id, name, description, user_id, created, ends, completed`

const (
	insertProjectSQL = `INSERT INTO projects (name, description, user_id, created, ends, completed)
		VALUES (?, ?, ?, ?, ?, ?)`
	selectProjectByIDSQL    = `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`
	selectProjectsByUserSQL = `SELECT ` + projectColumns + ` FROM projects WHERE user_id = ? ORDER BY id`
	updateProjectSQL        = `UPDATE projects SET name = ?, description = ?, ends = ?, completed = ? WHERE id = ?`

	projectTaskIDsSQL     = `SELECT id FROM tasks WHERE project_id = ?`
	deleteProjectTasksSQL = `DELETE FROM tasks WHERE project_id = ?`
	deleteProjectSQL      = `DELETE FROM projects WHERE id = ?`
	singleIDQuery         = `?`
)

func scanProject(row rowScanner) (*models.Project, error) {
	var p models.Project
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.UserID, &p.Created, &p.Ends, &p.Completed); err != nil {
		return nil, err
	}
	p.Created = p.Created.UTC()
	p.Ends = p.Ends.UTC()
	return &p, nil
}

// Create inserts the project; a zero Created is stamped with the current time.
func (r *ProjectSQLite) Create(ctx context.Context, p models.Project) (int, error) {
	created := p.Created
	if created.IsZero() {
		created = time.Now()
	}
	res, err := r.db.ExecContext(ctx, insertProjectSQL,
		p.Name, p.Description, p.UserID, created.UTC(), p.Ends.UTC(), p.Completed,
	)
	if err != nil {
		return 0, fmt.Errorf("insert project %q: %w", p.Name, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for project %q: %w", p.Name, err)
	}
	return int(lastID), nil
}

// GetByID returns (nil, nil) if the project does not exist.
func (r *ProjectSQLite) GetByID(ctx context.Context, id int) (*models.Project, error) {
	p, err := scanProject(r.db.QueryRowContext(ctx, selectProjectByIDSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select project %d: %w", id, err)
	}
	return p, nil
}

func (r *ProjectSQLite) ListByUser(ctx context.Context, userID int) ([]models.Project, error) {
	rows, err := r.db.QueryContext(ctx, selectProjectsByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var out []models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}
	return out, nil
}

// Update never touches user_id: ownership is fixed at creation.
func (r *ProjectSQLite) Update(ctx context.Context, p models.Project) error {
	if _, err := r.db.ExecContext(ctx, updateProjectSQL, p.Name, p.Description, p.Ends.UTC(), p.Completed, p.ID); err != nil {
		return fmt.Errorf("update project %d: %w", p.ID, err)
	}
	return nil
}

// Delete removes the project, its tasks and all label links of both.
func (r *ProjectSQLite) Delete(ctx context.Context, id int) error {
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := cascadeParentLinks(ctx, tx, TaskLabels, projectTaskIDsSQL, id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, deleteProjectTasksSQL, id); err != nil {
			return fmt.Errorf("delete tasks: %w", err)
		}
		if err := cascadeParentLinks(ctx, tx, ProjectLabels, singleIDQuery, id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, deleteProjectSQL, id); err != nil {
			return fmt.Errorf("delete project: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete project %d: %w", id, err)
	}
	return nil
}
