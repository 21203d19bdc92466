// This file defines repository methods for workouts: dated workout
// instances shown on the calendar. workout_date is a DATE column; it travels
// through the API as a YYYY-MM-DD string and never picks up a time
// component.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/avelez/workout-tracker/internal/model"
)

// ErrWorkoutNotFound is returned when a workout does not exist or does not
// belong to the caller.
var ErrWorkoutNotFound = errors.New("workout not found")

const dateLayout = "2006-01-02"

// WorkoutRepo encapsulates all database queries related to workouts.
type WorkoutRepo struct {
	db *sql.DB
}

// NewWorkoutRepo constructs a WorkoutRepo with the provided DB handle.
func NewWorkoutRepo(db *sql.DB) *WorkoutRepo {
	return &WorkoutRepo{db: db}
}

// Create inserts a new workout.  PresetID may be nil (a blank workout); when
// set, the handler has already verified the preset belongs to the same user.
// A stale preset reference surfaces as ErrConflict.  The created_at default
// is read back so callers receive a fully populated record.
func (r *WorkoutRepo) Create(ctx context.Context, w *model.Workout) error {
	const qInsert = "INSERT INTO workouts (user_id, workout_date, preset_id) VALUES (?, ?, ?)"
	res, err := r.db.ExecContext(ctx, qInsert, w.UserID, w.WorkoutDate, w.PresetID)
	if err != nil {
		if mysqlErrIs(err, mysqlErrFKFailure) {
			return ErrConflict
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	w.ID = uint64(id)

	const qSelect = "SELECT created_at FROM workouts WHERE id = ?"
	return r.db.QueryRowContext(ctx, qSelect, w.ID).Scan(&w.CreatedAt)
}

// GetByIDAndUser fetches a workout by id but only if it belongs to the given
// user; otherwise ErrWorkoutNotFound.
func (r *WorkoutRepo) GetByIDAndUser(ctx context.Context, id uint64, userID string) (*model.Workout, error) {
	const q = `SELECT id, user_id, workout_date, created_at, preset_id
	           FROM workouts WHERE id = ? AND user_id = ?`
	w, err := scanWorkout(r.db.QueryRowContext(ctx, q, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return w, nil
}

// ListByUserBetween returns the user's workouts with workout_date in
// [from, to], both bounds inclusive, ordered by date then id.  The calendar
// view calls this once per displayed month.
func (r *WorkoutRepo) ListByUserBetween(ctx context.Context, userID, from, to string) ([]*model.Workout, error) {
	const q = `SELECT id, user_id, workout_date, created_at, preset_id
	           FROM workouts
	           WHERE user_id = ? AND workout_date BETWEEN ? AND ?
	           ORDER BY workout_date, id`
	rows, err := r.db.QueryContext(ctx, q, userID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.Workout{}
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListDatesBetween returns the distinct calendar dates in [from, to] on
// which the user has at least one workout, ascending.  This feeds the streak
// computation, which requires sorted distinct dates.
func (r *WorkoutRepo) ListDatesBetween(ctx context.Context, userID, from, to string) ([]time.Time, error) {
	const q = `SELECT DISTINCT workout_date
	           FROM workouts
	           WHERE user_id = ? AND workout_date BETWEEN ? AND ?
	           ORDER BY workout_date`
	rows, err := r.db.QueryContext(ctx, q, userID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteByIDAndUser removes a workout owned by the given user.  Logs stand
// alone per (user, exercise, date), so no dependent rows exist and a single
// statement suffices.  ErrWorkoutNotFound when nothing was deleted.
func (r *WorkoutRepo) DeleteByIDAndUser(ctx context.Context, id uint64, userID string) error {
	const q = "DELETE FROM workouts WHERE id = ? AND user_id = ?"
	res, err := r.db.ExecContext(ctx, q, id, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

func scanWorkout(s scanner) (*model.Workout, error) {
	var (
		w        model.Workout
		date     time.Time
		presetID sql.NullInt64
	)
	if err := s.Scan(&w.ID, &w.UserID, &date, &w.CreatedAt, &presetID); err != nil {
		return nil, err
	}
	w.WorkoutDate = date.Format(dateLayout)
	if presetID.Valid {
		pid := uint64(presetID.Int64)
		w.PresetID = &pid
	}
	return &w, nil
}
