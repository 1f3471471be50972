package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"taskmanager/internal/models"
)

type TaskSQLite struct {
	db *sql.DB
}

func NewTaskSQLite(db *sql.DB) *TaskSQLite {
	return &TaskSQLite{db: db}
}

var _ TaskRepo = (*TaskSQLite)(nil)

const taskColumns = `id, name, description, user_id, project_id, due, completed`

const (
	insertTaskSQL = `INSERT INTO tasks (name, description, user_id, project_id, due, completed)
		VALUES (?, ?, ?, ?, ?, ?)`
	selectTaskByIDSQL       = `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	selectTasksByUserSQL    = `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = ? ORDER BY id`
	selectTasksByProjectSQL = `SELECT ` + taskColumns + ` FROM tasks WHERE project_id = ? ORDER BY id`
	updateTaskSQL           = `UPDATE tasks SET name = ?, description = ?, due = ?, completed = ? WHERE id = ?`
	deleteTaskSQL           = `DELETE FROM tasks WHERE id = ?`
)

func scanTask(row rowScanner) (*models.Task, error) {
	var (
		t   models.Task
		due sql.NullTime
	)
	if err := row.Scan(&t.ID, &t.Name, &t.Description, &t.UserID, &t.ProjectID, &due, &t.Completed); err != nil {
		return nil, err
	}
	if due.Valid {
		d := due.Time.UTC()
		t.Due = &d
	}
	return &t, nil
}

// nullableDue maps a nil due date to SQL NULL.
func nullableDue(due *time.Time) any {
	if due == nil {
		return nil
	}
	return due.UTC()
}

func (r *TaskSQLite) Create(ctx context.Context, t models.Task) (int, error) {
	res, err := r.db.ExecContext(ctx, insertTaskSQL,
		t.Name, t.Description, t.UserID, t.ProjectID, nullableDue(t.Due), t.Completed,
	)
	if err != nil {
		return 0, fmt.Errorf("insert task %q: %w", t.Name, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for task %q: %w", t.Name, err)
	}
	return int(lastID), nil
}

// GetByID returns (nil, nil) if the task does not exist.
func (r *TaskSQLite) GetByID(ctx context.Context, id int) (*models.Task, error) {
	t, err := scanTask(r.db.QueryRowContext(ctx, selectTaskByIDSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select task %d: %w", id, err)
	}
	return t, nil
}

func (r *TaskSQLite) ListByUser(ctx context.Context, userID int) ([]models.Task, error) {
	return r.list(ctx, selectTasksByUserSQL, userID)
}

func (r *TaskSQLite) ListByProject(ctx context.Context, projectID int) ([]models.Task, error) {
	return r.list(ctx, selectTasksByProjectSQL, projectID)
}

func (r *TaskSQLite) list(ctx context.Context, query string, arg int) ([]models.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var out []models.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		out = append(out, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return out, nil
}

// Update never touches user_id or project_id.
func (r *TaskSQLite) Update(ctx context.Context, t models.Task) error {
	if _, err := r.db.ExecContext(ctx, updateTaskSQL, t.Name, t.Description, nullableDue(t.Due), t.Completed, t.ID); err != nil {
		return fmt.Errorf("update task %d: %w", t.ID, err)
	}
	return nil
}

// Delete removes the task and its label links.
func (r *TaskSQLite) Delete(ctx context.Context, id int) error {
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := cascadeParentLinks(ctx, tx, TaskLabels, singleIDQuery, id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, deleteTaskSQL, id); err != nil {
			return fmt.Errorf("delete task: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}
	return nil
}
