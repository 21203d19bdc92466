package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"

	"github.com/avelez/workout-tracker/internal/model"
)

func TestCreateExerciseDuplicateName(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewExerciseRepo(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO exercises (name, description, type) VALUES (?, ?, ?)")).
		WithArgs("Deadlift", nil, "back").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'Deadlift'"})

	err = repo.Create(context.Background(), &model.Exercise{Name: "Deadlift", Type: model.TypeBack})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestGetExerciseByIDMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewExerciseRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, description, type FROM exercises WHERE id = ?")).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "type"}))

	if _, err := repo.GetByID(context.Background(), 404); !errors.Is(err, ErrExerciseNotFound) {
		t.Fatalf("err = %v, want ErrExerciseNotFound", err)
	}
}
