package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"taskmanager/internal/models"
)

type UserSQLite struct {
	db *sql.DB
}

func NewUserSQLite(db *sql.DB) *UserSQLite {
	return &UserSQLite{db: db}
}

var _ UserRepo = (*UserSQLite)(nil)

const userColumns = `id, name, username, email, password_hash, avatar, profile, is_admin, activated, suspended`

const (
	insertUserSQL = `INSERT INTO users (name, username, email, password_hash, avatar, profile, is_admin, activated, suspended)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	selectUserByIDSQL         = `SELECT ` + userColumns + ` FROM users WHERE id = ?`
	selectUserByIDAndEmailSQL = `SELECT ` + userColumns + ` FROM users WHERE id = ? AND email = ?`
	selectUserByEmailSQL      = `SELECT ` + userColumns + ` FROM users WHERE email = ?`
	selectUsersSQL            = `SELECT ` + userColumns + ` FROM users ORDER BY id`
	countTakenSQL             = `SELECT COUNT(*) FROM users WHERE (email = ? OR username = ?) AND id <> ?`
	updateUserSQL             = `UPDATE users SET name = ?, username = ?, email = ?, avatar = ?, profile = ? WHERE id = ?`
	activateUserSQL           = `UPDATE users SET activated = 1 WHERE id = ?`
)

// User deletion walks every dependent table, grandchildren first.
const (
	userProjectIDsSQL = `SELECT id FROM projects WHERE user_id = ?`
	userTaskIDsSQL    = `SELECT id FROM tasks WHERE user_id = ? OR project_id IN (SELECT id FROM projects WHERE user_id = ?)`
	userLabelIDsSQL   = `SELECT id FROM labels WHERE user_id = ?`

	deleteUserTasksSQL    = `DELETE FROM tasks WHERE user_id = ? OR project_id IN (SELECT id FROM projects WHERE user_id = ?)`
	deleteUserProjectsSQL = `DELETE FROM projects WHERE user_id = ?`
	deleteUserLabelsSQL   = `DELETE FROM labels WHERE user_id = ?`
	deleteUserSQL         = `DELETE FROM users WHERE id = ?`
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*models.User, error) {
	var u models.User
	if err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.Avatar,
		&u.Profile,
		&u.IsAdmin,
		&u.Activated,
		&u.Suspended,
	); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user and returns its ID. A taken email or username
// yields an error wrapping ErrDuplicate.
func (r *UserSQLite) Create(ctx context.Context, u models.User) (int, error) {
	res, err := r.db.ExecContext(ctx, insertUserSQL,
		u.Name, u.Username, u.Email, u.PasswordHash, u.Avatar, u.Profile,
		u.IsAdmin, u.Activated, u.Suspended,
	)
	if err != nil {
		return 0, fmt.Errorf("insert user %q: %w", u.Email, mapConstraint(err))
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for user %q: %w", u.Email, err)
	}
	return int(lastID), nil
}

// GetByID returns (nil, nil) if the user does not exist.
func (r *UserSQLite) GetByID(ctx context.Context, id int) (*models.User, error) {
	return r.getOne(ctx, selectUserByIDSQL, id)
}

// GetByIDAndEmail matches both columns so that a token issued before an
// email change no longer resolves.
func (r *UserSQLite) GetByIDAndEmail(ctx context.Context, id int, email string) (*models.User, error) {
	return r.getOne(ctx, selectUserByIDAndEmailSQL, id, email)
}

func (r *UserSQLite) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, selectUserByEmailSQL, email)
}

func (r *UserSQLite) getOne(ctx context.Context, query string, args ...any) (*models.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user: %w", err)
	}
	return u, nil
}

// EmailOrUsernameTaken reports whether another user (id != excludeID) holds
// either value. It is advisory; the UNIQUE columns are authoritative.
func (r *UserSQLite) EmailOrUsernameTaken(ctx context.Context, email, username string, excludeID int) (bool, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, countTakenSQL, email, username, excludeID).Scan(&n); err != nil {
		return false, fmt.Errorf("check email/username: %w", err)
	}
	return n > 0, nil
}

func (r *UserSQLite) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, selectUsersSQL)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var out []models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return out, nil
}

// Update writes the mutable profile columns.
func (r *UserSQLite) Update(ctx context.Context, u models.User) error {
	if _, err := r.db.ExecContext(ctx, updateUserSQL, u.Name, u.Username, u.Email, u.Avatar, u.Profile, u.ID); err != nil {
		return fmt.Errorf("update user %d: %w", u.ID, mapConstraint(err))
	}
	return nil
}

func (r *UserSQLite) SetActivated(ctx context.Context, id int) error {
	if _, err := r.db.ExecContext(ctx, activateUserSQL, id); err != nil {
		return fmt.Errorf("activate user %d: %w", id, err)
	}
	return nil
}

// Delete removes the user together with everything the user owns.
func (r *UserSQLite) Delete(ctx context.Context, id int) error {
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := cascadeParentLinks(ctx, tx, TaskLabels, userTaskIDsSQL, id, id); err != nil {
			return err
		}
		if err := cascadeLabelLinks(ctx, tx, userLabelIDsSQL, id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, deleteUserTasksSQL, id, id); err != nil {
			return fmt.Errorf("delete tasks: %w", err)
		}
		if err := cascadeParentLinks(ctx, tx, ProjectLabels, userProjectIDsSQL, id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, deleteUserProjectsSQL, id); err != nil {
			return fmt.Errorf("delete projects: %w", err)
		}
		if _, err := tx.ExecContext(ctx, deleteUserLabelsSQL, id); err != nil {
			return fmt.Errorf("delete labels: %w", err)
		}
		if _, err := tx.ExecContext(ctx, deleteUserSQL, id); err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	return nil
}
