package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"
	"testing"

	"taskmanager/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	cleanup := func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	}
	return db, mock, cleanup
}

var userRowColumns = []string{"id", "name", "username", "email", "password_hash", "avatar", "profile", "is_admin", "activated", "suspended"}

func TestUserSQLite_Create(t *testing.T) {
	u := models.User{Name: "Alice", Username: "alice", Email: "alice@x.com", PasswordHash: "h", Avatar: "a"}

	tests := []struct {
		name           string
		mockExpect     func(sqlmock.Sqlmock)
		wantID         int
		errContainsStr string
	}{
		{
			name: "success",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
					WithArgs("Alice", "alice", "alice@x.com", "h", "a", "", false, false, false).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
			wantID: 1,
		},
		{
			name: "exec error",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
					WillReturnError(errors.New("db exec failed"))
			},
			errContainsStr: "insert user",
		},
		{
			name: "last insert id error",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
					WillReturnResult(sqlmock.NewErrorResult(errors.New("no last id")))
			},
			errContainsStr: "get last insert id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, cleanup := newMockDB(t)
			defer cleanup()
			tt.mockExpect(mock)

			id, err := NewUserSQLite(db).Create(context.Background(), u)
			if tt.errContainsStr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.errContainsStr) {
					t.Fatalf("expected error containing %q, got %v", tt.errContainsStr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id != tt.wantID {
				t.Fatalf("id = %d, want %d", id, tt.wantID)
			}
		})
	}
}

func TestUserSQLite_GetByIDAndEmail(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock, cleanup := newMockDB(t)
		defer cleanup()
		mock.ExpectQuery(regexp.QuoteMeta(selectUserByIDAndEmailSQL)).
			WithArgs(7, "alice@x.com").
			WillReturnRows(sqlmock.NewRows(userRowColumns).
				AddRow(7, "Alice", "alice", "alice@x.com", "h", "a", "", true, false, false))

		u, err := NewUserSQLite(db).GetByIDAndEmail(context.Background(), 7, "alice@x.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u == nil || u.ID != 7 || !u.IsAdmin || u.PasswordHash != "h" {
			t.Fatalf("unexpected user: %+v", u)
		}
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, cleanup := newMockDB(t)
		defer cleanup()
		mock.ExpectQuery(regexp.QuoteMeta(selectUserByIDAndEmailSQL)).
			WithArgs(7, "old@x.com").
			WillReturnError(sql.ErrNoRows)

		u, err := NewUserSQLite(db).GetByIDAndEmail(context.Background(), 7, "old@x.com")
		if err != nil || u != nil {
			t.Fatalf("expected (nil, nil), got (%+v, %v)", u, err)
		}
	})

	t.Run("query error", func(t *testing.T) {
		db, mock, cleanup := newMockDB(t)
		defer cleanup()
		mock.ExpectQuery(regexp.QuoteMeta(selectUserByIDAndEmailSQL)).
			WillReturnError(errors.New("db query failed"))

		_, err := NewUserSQLite(db).GetByIDAndEmail(context.Background(), 7, "a@x.com")
		if err == nil || !strings.Contains(err.Error(), "select user") {
			t.Fatalf("expected wrapped error, got %v", err)
		}
	})
}

func TestUserSQLite_EmailOrUsernameTaken(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	mock.ExpectQuery(regexp.QuoteMeta(countTakenSQL)).
		WithArgs("a@x.com", "alice", 3).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(1))

	taken, err := NewUserSQLite(db).EmailOrUsernameTaken(context.Background(), "a@x.com", "alice", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !taken {
		t.Fatal("expected taken=true")
	}
}

func TestUserSQLite_Delete_CascadeOrder(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(TaskLabels.cascadeParentSQL(userTaskIDsSQL))).
		WithArgs(4, 4).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta(ProjectLabels.cascadeLabelSQL(userLabelIDsSQL))).
		WithArgs(4).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(TaskLabels.cascadeLabelSQL(userLabelIDsSQL))).
		WithArgs(4).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(deleteUserTasksSQL)).
		WithArgs(4, 4).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta(ProjectLabels.cascadeParentSQL(userProjectIDsSQL))).
		WithArgs(4).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(deleteUserProjectsSQL)).
		WithArgs(4).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(deleteUserLabelsSQL)).
		WithArgs(4).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta(deleteUserSQL)).
		WithArgs(4).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := NewUserSQLite(db).Delete(context.Background(), 4); err != nil {
		t.Fatalf("Delete: %v", err)
	}
}

func TestUserSQLite_Delete_RollsBackOnError(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(TaskLabels.cascadeParentSQL(userTaskIDsSQL))).
		WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	err := NewUserSQLite(db).Delete(context.Background(), 4)
	if err == nil || !strings.Contains(err.Error(), "cascade task_labels") {
		t.Fatalf("expected cascade error, got %v", err)
	}
}
