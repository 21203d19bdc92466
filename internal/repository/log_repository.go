// This file defines repository methods for workout logs: per-exercise
// performance entries (weight/reps/sets/notes). Logs are the most frequently
// written rows in the system; edits are last-writer-wins with no version
// column.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/avelez/workout-tracker/internal/model"
)

// ErrLogNotFound is returned when a log entry does not exist or does not
// belong to the caller.
var ErrLogNotFound = errors.New("log not found")

// LogRepo encapsulates all database queries related to workout logs.
type LogRepo struct {
	db *sql.DB
}

// NewLogRepo constructs a LogRepo with the provided DB handle.
func NewLogRepo(db *sql.DB) *LogRepo {
	return &LogRepo{db: db}
}

// Insert writes a new log entry.  A reference to a nonexistent exercise
// surfaces as ErrConflict.  The logged_at default is read back so callers
// receive a fully populated record.
func (r *LogRepo) Insert(ctx context.Context, l *model.WorkoutLog) error {
	const qInsert = `INSERT INTO workout_logs (user_id, exercise_id, weight, reps, sets, notes)
	                 VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert, l.UserID, l.ExerciseID, l.Weight, l.Reps, l.Sets, l.Notes)
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
	l.ID = uint64(id)

	const qSelect = "SELECT logged_at FROM workout_logs WHERE id = ?"
	return r.db.QueryRowContext(ctx, qSelect, l.ID).Scan(&l.LoggedAt)
}

// Update edits a log entry in place.  Only non-nil fields change; anything
// the caller leaves nil keeps its stored value.  The SET clause is built
// dynamically so a partial edit never clobbers the other columns.  The
// updated row is returned.  ErrLogNotFound covers both a missing row and a
// row owned by someone else.
func (r *LogRepo) Update(ctx context.Context, id uint64, userID string, weight, reps, sets *int, notes *string) (*model.WorkoutLog, error) {
	if q, args, ok := buildLogUpdate(id, userID, weight, reps, sets, notes); ok {
		if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
			return nil, err
		}
	}
	// RowsAffected is 0 both for a missing row and for an edit that changes
	// nothing, so the fetch below is also the existence check.
	return r.GetByIDAndUser(ctx, id, userID)
}

// buildLogUpdate assembles the partial UPDATE for an edit.  Only non-nil
// fields enter the SET clause; the owner id is always part of the predicate.
// ok is false when every field is nil and no statement should run.
func buildLogUpdate(id uint64, userID string, weight, reps, sets *int, notes *string) (string, []any, bool) {
	set := []string{}
	args := []any{}
	if weight != nil {
		set = append(set, "weight = ?")
		args = append(args, *weight)
	}
	if reps != nil {
		set = append(set, "reps = ?")
		args = append(args, *reps)
	}
	if sets != nil {
		set = append(set, "sets = ?")
		args = append(args, *sets)
	}
	if notes != nil {
		set = append(set, "notes = ?")
		args = append(args, *notes)
	}
	if len(set) == 0 {
		return "", nil, false
	}
	q := "UPDATE workout_logs SET " + strings.Join(set, ", ") + " WHERE id = ? AND user_id = ?"
	args = append(args, id, userID)
	return q, args, true
}

// GetByIDAndUser fetches a log entry by id but only if it belongs to the
// given user; otherwise ErrLogNotFound.
func (r *LogRepo) GetByIDAndUser(ctx context.Context, id uint64, userID string) (*model.WorkoutLog, error) {
	const q = `SELECT id, user_id, exercise_id, logged_at, weight, reps, sets, notes
	           FROM workout_logs WHERE id = ? AND user_id = ?`
	l, err := scanLog(r.db.QueryRowContext(ctx, q, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrLogNotFound
		}
		return nil, err
	}
	return l, nil
}

// ListByUserAndExercise returns the user's log history for one exercise,
// newest first.  The exercise history page renders this directly.
func (r *LogRepo) ListByUserAndExercise(ctx context.Context, userID string, exerciseID uint64) ([]*model.WorkoutLog, error) {
	const q = `SELECT id, user_id, exercise_id, logged_at, weight, reps, sets, notes
	           FROM workout_logs
	           WHERE user_id = ? AND exercise_id = ?
	           ORDER BY logged_at DESC, id DESC`
	return r.list(ctx, q, userID, exerciseID)
}

// ListRecentByUser returns the user's most recent log entries across all
// exercises, newest first, capped at limit.
func (r *LogRepo) ListRecentByUser(ctx context.Context, userID string, limit int) ([]*model.WorkoutLog, error) {
	const q = `SELECT id, user_id, exercise_id, logged_at, weight, reps, sets, notes
	           FROM workout_logs
	           WHERE user_id = ?
	           ORDER BY logged_at DESC, id DESC
	           LIMIT ?`
	return r.list(ctx, q, userID, limit)
}

func (r *LogRepo) list(ctx context.Context, q string, args ...any) ([]*model.WorkoutLog, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.WorkoutLog{}
	for rows.Next() {
		l, err := scanLog(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanLog(s scanner) (*model.WorkoutLog, error) {
	var (
		l                  model.WorkoutLog
		weight, reps, sets sql.NullInt64
		notes              sql.NullString
	)
	if err := s.Scan(&l.ID, &l.UserID, &l.ExerciseID, &l.LoggedAt, &weight, &reps, &sets, &notes); err != nil {
		return nil, err
	}
	if weight.Valid {
		v := int(weight.Int64)
		l.Weight = &v
	}
	if reps.Valid {
		v := int(reps.Int64)
		l.Reps = &v
	}
	if sets.Valid {
		v := int(sets.Int64)
		l.Sets = &v
	}
	if notes.Valid {
		l.Notes = &notes.String
	}
	return &l, nil
}
