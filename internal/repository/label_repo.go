package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"taskmanager/internal/models"
)

type LabelSQLite struct {
	db *sql.DB
}

func NewLabelSQLite(db *sql.DB) *LabelSQLite {
	return &LabelSQLite{db: db}
}

var _ LabelRepo = (*LabelSQLite)(nil)

const (
	insertLabelSQL        = `INSERT INTO labels (name, color, user_id) VALUES (?, ?, ?)`
	selectLabelByIDSQL    = `SELECT id, name, color, user_id FROM labels WHERE id = ?`
	selectLabelsByUserSQL = `SELECT id, name, color, user_id FROM labels WHERE user_id = ? ORDER BY name, id`
	updateLabelSQL        = `UPDATE labels SET name = ?, color = ? WHERE id = ?`
	deleteLabelSQL        = `DELETE FROM labels WHERE id = ?`
)

func (r *LabelSQLite) Create(ctx context.Context, l models.Label) (int, error) {
	res, err := r.db.ExecContext(ctx, insertLabelSQL, l.Name, l.Color, l.UserID)
	if err != nil {
		return 0, fmt.Errorf("insert label %q: %w", l.Name, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for label %q: %w", l.Name, err)
	}
	return int(lastID), nil
}

// GetByID returns (nil, nil) if the label does not exist.
func (r *LabelSQLite) GetByID(ctx context.Context, id int) (*models.Label, error) {
	var l models.Label
	err := r.db.QueryRowContext(ctx, selectLabelByIDSQL, id).Scan(&l.ID, &l.Name, &l.Color, &l.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select label %d: %w", id, err)
	}
	return &l, nil
}

func (r *LabelSQLite) ListByUser(ctx context.Context, userID int) ([]models.Label, error) {
	rows, err := r.db.QueryContext(ctx, selectLabelsByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list labels: %w", err)
	}
	defer rows.Close()

	var out []models.Label
	for rows.Next() {
		var l models.Label
		if err := rows.Scan(&l.ID, &l.Name, &l.Color, &l.UserID); err != nil {
			return nil, fmt.Errorf("scan label: %w", err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate labels: %w", err)
	}
	return out, nil
}

func (r *LabelSQLite) Update(ctx context.Context, l models.Label) error {
	if _, err := r.db.ExecContext(ctx, updateLabelSQL, l.Name, l.Color, l.ID); err != nil {
		return fmt.Errorf("update label %d: %w", l.ID, err)
	}
	return nil
}

// Delete removes the label and every project/task link to it.
func (r *LabelSQLite) Delete(ctx context.Context, id int) error {
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := cascadeLabelLinks(ctx, tx, singleIDQuery, id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, deleteLabelSQL, id); err != nil {
			return fmt.Errorf("delete label: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete label %d: %w", id, err)
	}
	return nil
}
