// This file defines repository methods for the global exercise catalog.
// Exercises are reference data: the seed process writes them, users only
// read them, and no ownership filter applies.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/avelez/workout-tracker/internal/model"
)

// ErrExerciseNotFound is returned when an exercise cannot be found in the DB.
var ErrExerciseNotFound = errors.New("exercise not found")

// ExerciseRepo encapsulates all database queries related to exercises.
type ExerciseRepo struct {
	db *sql.DB
}

// NewExerciseRepo constructs an ExerciseRepo with the provided DB handle.
func NewExerciseRepo(db *sql.DB) *ExerciseRepo {
	return &ExerciseRepo{db: db}
}

// Create inserts a catalog exercise.  Only the seed process calls this; the
// HTTP surface never mutates the catalog.  Names are unique, so re-seeding an
// existing exercise surfaces as ErrConflict.  On success the ID field is
// populated with the auto-generated value.
func (r *ExerciseRepo) Create(ctx context.Context, e *model.Exercise) error {
	const q = "INSERT INTO exercises (name, description, type) VALUES (?, ?, ?)"
	res, err := r.db.ExecContext(ctx, q, e.Name, e.Description, e.Type)
	if err != nil {
		if mysqlErrIs(err, mysqlErrDuplicate) {
			return ErrConflict
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	e.ID = uint64(id)
	return nil
}

// GetByID fetches a single exercise.  It returns ErrExerciseNotFound if no
// row is found.
func (r *ExerciseRepo) GetByID(ctx context.Context, id uint64) (*model.Exercise, error) {
	const q = "SELECT id, name, description, type FROM exercises WHERE id = ?"
	var (
		e    model.Exercise
		desc sql.NullString
	)
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&e.ID, &e.Name, &desc, &e.Type); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	if desc.Valid {
		e.Description = &desc.String
	}
	return &e, nil
}

// ListByType returns all exercises of one muscle group ordered by id.  An
// unknown type value yields an empty list, but handlers validate the enum
// before calling so that callers get a 400 rather than silence.
func (r *ExerciseRepo) ListByType(ctx context.Context, t model.ExerciseType) ([]*model.Exercise, error) {
	const q = "SELECT id, name, description, type FROM exercises WHERE type = ? ORDER BY id"
	return r.list(ctx, q, string(t))
}

// ListAll returns the entire catalog ordered by id.
func (r *ExerciseRepo) ListAll(ctx context.Context) ([]*model.Exercise, error) {
	const q = "SELECT id, name, description, type FROM exercises ORDER BY id"
	return r.list(ctx, q)
}

func (r *ExerciseRepo) list(ctx context.Context, q string, args ...any) ([]*model.Exercise, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.Exercise{}
	for rows.Next() {
		var (
			e    model.Exercise
			desc sql.NullString
		)
		if err := rows.Scan(&e.ID, &e.Name, &desc, &e.Type); err != nil {
			return nil, err
		}
		if desc.Valid {
			e.Description = &desc.String
		}
		out = append(out, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
