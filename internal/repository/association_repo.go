package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"taskmanager/internal/models"
)

// JoinTable identifies one of the label link tables. Values are fixed below;
// the identifiers are interpolated into SQL, never taken from input.
type JoinTable struct {
	name        string
	parentTable string
	parentCol   string
}

var (
	ProjectLabels = JoinTable{name: "project_labels", parentTable: "projects", parentCol: "project_id"}
	TaskLabels    = JoinTable{name: "task_labels", parentTable: "tasks", parentCol: "task_id"}
)

func (t JoinTable) String() string { return t.name }

func (t JoinTable) parentOwnerSQL() string {
	return fmt.Sprintf(`SELECT user_id FROM %s WHERE id = ?`, t.parentTable)
}

// linkSQL inserts nothing when the label does not exist, so a concurrent
// label delete cannot turn an attach into a foreign key failure.
func (t JoinTable) linkSQL() string {
	return fmt.Sprintf(`INSERT OR IGNORE INTO %s (%s, label_id) SELECT ?, id FROM labels WHERE id = ?`, t.name, t.parentCol)
}

func (t JoinTable) unlinkSQL() string {
	return fmt.Sprintf(`DELETE FROM %s WHERE %s = ? AND label_id = ?`, t.name, t.parentCol)
}

func (t JoinTable) labelsSQL() string {
	return fmt.Sprintf(`SELECT l.id, l.name, l.color, l.user_id FROM labels l
		INNER JOIN %s j ON l.id = j.label_id
		WHERE j.%s = ?
		ORDER BY l.name, l.id`, t.name, t.parentCol)
}

func (t JoinTable) cascadeParentSQL(parentQuery string) string {
	return fmt.Sprintf(`DELETE FROM %s WHERE %s IN (%s)`, t.name, t.parentCol, parentQuery)
}

func (t JoinTable) cascadeLabelSQL(labelQuery string) string {
	return fmt.Sprintf(`DELETE FROM %s WHERE label_id IN (%s)`, t.name, labelQuery)
}

type AssociationSQLite struct {
	db *sql.DB
}

func NewAssociationSQLite(db *sql.DB) *AssociationSQLite {
	return &AssociationSQLite{db: db}
}

var _ AssociationRepo = (*AssociationSQLite)(nil)

// ParentOwner returns the owning user of the project or task behind t.
func (r *AssociationSQLite) ParentOwner(ctx context.Context, t JoinTable, parentID int) (int, bool, error) {
	var owner int
	err := r.db.QueryRowContext(ctx, t.parentOwnerSQL(), parentID).Scan(&owner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("select %s owner: %w", t.parentTable, err)
	}
	return owner, true, nil
}

// Link inserts the pair unless it already exists or labelID names no label.
// The returned bool reports whether a row was created.
func (r *AssociationSQLite) Link(ctx context.Context, t JoinTable, parentID, labelID int) (bool, error) {
	res, err := r.db.ExecContext(ctx, t.linkSQL(), parentID, labelID, labelID)
	if err != nil {
		return false, fmt.Errorf("link %s %d/%d: %w", t, parentID, labelID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("link %s rows affected: %w", t, err)
	}
	return n > 0, nil
}

// Unlink removes the pair. The returned bool is false if no such row existed.
func (r *AssociationSQLite) Unlink(ctx context.Context, t JoinTable, parentID, labelID int) (bool, error) {
	res, err := r.db.ExecContext(ctx, t.unlinkSQL(), parentID, labelID)
	if err != nil {
		return false, fmt.Errorf("unlink %s %d/%d: %w", t, parentID, labelID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("unlink %s rows affected: %w", t, err)
	}
	return n > 0, nil
}

// Labels lists the labels linked to parentID, ordered by name.
func (r *AssociationSQLite) Labels(ctx context.Context, t JoinTable, parentID int) ([]models.Label, error) {
	rows, err := r.db.QueryContext(ctx, t.labelsSQL(), parentID)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", t, err)
	}
	defer rows.Close()

	var out []models.Label
	for rows.Next() {
		var l models.Label
		if err := rows.Scan(&l.ID, &l.Name, &l.Color, &l.UserID); err != nil {
			return nil, fmt.Errorf("scan %s: %w", t, err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", t, err)
	}
	return out, nil
}

// cascadeParentLinks deletes the links of every parent selected by
// parentQuery. It runs inside the parent's delete transaction.
func cascadeParentLinks(ctx context.Context, ex execer, t JoinTable, parentQuery string, args ...any) error {
	if _, err := ex.ExecContext(ctx, t.cascadeParentSQL(parentQuery), args...); err != nil {
		return fmt.Errorf("cascade %s: %w", t, err)
	}
	return nil
}

// cascadeLabelLinks deletes project and task links to every label selected
// by labelQuery. The projects and tasks themselves are untouched.
func cascadeLabelLinks(ctx context.Context, ex execer, labelQuery string, args ...any) error {
	for _, t := range []JoinTable{ProjectLabels, TaskLabels} {
		if _, err := ex.ExecContext(ctx, t.cascadeLabelSQL(labelQuery), args...); err != nil {
			return fmt.Errorf("cascade %s by label: %w", t, err)
		}
	}
	return nil
}
