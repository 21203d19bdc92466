package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
)

const ownerID = "4f6f16a0-9af5-4e55-9c45-1f5051cf2fbc"

func newMockDB(t *testing.T) (*PresetRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewPresetRepo(db), mock
}

func TestDeletePresetCascade(t *testing.T) {
	repo, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id FROM presets WHERE id = ?")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(ownerID))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM preset_exercises WHERE preset_id = ?")).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE workouts SET preset_id = NULL WHERE preset_id = ?")).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM presets WHERE id = ?")).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.DeleteByIDAndUser(context.Background(), 7, ownerID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	// Join rows must go and workouts must be detached before the preset row;
	// a partial cascade means expectations were left unmet.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("cascade incomplete: %v", err)
	}
}

func TestDeletePresetForeignOwner(t *testing.T) {
	repo, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id FROM presets WHERE id = ?")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow("someone-else"))
	mock.ExpectRollback()

	err := repo.DeleteByIDAndUser(context.Background(), 7, ownerID)
	if !errors.Is(err, ErrPresetNotFound) {
		t.Fatalf("err = %v, want ErrPresetNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestDeletePresetMissing(t *testing.T) {
	repo, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id FROM presets WHERE id = ?")).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))
	mock.ExpectRollback()

	if err := repo.DeleteByIDAndUser(context.Background(), 99, ownerID); !errors.Is(err, ErrPresetNotFound) {
		t.Fatalf("err = %v, want ErrPresetNotFound", err)
	}
}

func TestListByUserScopesOwner(t *testing.T) {
	repo, mock := newMockDB(t)

	// The owner id is part of the SQL predicate, not a post-hoc filter.
	mock.ExpectQuery(regexp.QuoteMeta("FROM presets WHERE user_id = ?")).
		WithArgs(ownerID).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "user_id", "name", "description", "created_at", "updated_at"},
		).AddRow(int64(1), ownerID, "Push Day", nil, sampleTime(), sampleTime()))

	items, err := repo.ListByUser(context.Background(), ownerID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 || items[0].UserID != ownerID {
		t.Fatalf("items = %+v", items)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestGetByIDAndUserForeignReadsAsMissing(t *testing.T) {
	repo, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM presets WHERE id = ? AND user_id = ?")).
		WithArgs(int64(5), ownerID).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "user_id", "name", "description", "created_at", "updated_at"},
		))

	if _, err := repo.GetByIDAndUser(context.Background(), 5, ownerID); !errors.Is(err, ErrPresetNotFound) {
		t.Fatalf("err = %v, want ErrPresetNotFound", err)
	}
}
