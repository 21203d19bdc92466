// This file defines repository methods for presets and their exercise
// entries. A preset is a reusable workout template owned by a single user;
// every read and write here carries the owner id in its SQL predicate so a
// foreign preset is indistinguishable from a missing one.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/avelez/workout-tracker/internal/model"
)

// ErrPresetNotFound is returned when a preset does not exist or does not
// belong to the caller.
var ErrPresetNotFound = errors.New("preset not found")

// PresetRepo encapsulates all database queries related to presets.
type PresetRepo struct {
	db *sql.DB
}

// NewPresetRepo constructs a PresetRepo with the provided DB handle.
func NewPresetRepo(db *sql.DB) *PresetRepo {
	return &PresetRepo{db: db}
}

// Create inserts a new preset.  On success the preset's ID field is
// populated and a follow-up SELECT fills the timestamp defaults so callers
// receive a fully populated record.
func (r *PresetRepo) Create(ctx context.Context, p *model.Preset) error {
	const qInsert = "INSERT INTO presets (user_id, name, description) VALUES (?, ?, ?)"
	res, err := r.db.ExecContext(ctx, qInsert, p.UserID, p.Name, p.Description)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)

	const qSelect = "SELECT created_at, updated_at FROM presets WHERE id = ?"
	return r.db.QueryRowContext(ctx, qSelect, p.ID).Scan(&p.CreatedAt, &p.UpdatedAt)
}

// ListByUser returns all presets owned by userID ordered by id.
func (r *PresetRepo) ListByUser(ctx context.Context, userID string) ([]*model.Preset, error) {
	const q = `SELECT id, user_id, name, description, created_at, updated_at
	           FROM presets WHERE user_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.Preset{}
	for rows.Next() {
		p, err := scanPreset(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByIDAndUser fetches a preset by id but only if it belongs to the given
// user.  If the preset doesn't exist or is owned by someone else,
// ErrPresetNotFound is returned.
func (r *PresetRepo) GetByIDAndUser(ctx context.Context, id uint64, userID string) (*model.Preset, error) {
	const q = `SELECT id, user_id, name, description, created_at, updated_at
	           FROM presets WHERE id = ? AND user_id = ?`
	p, err := scanPreset(r.db.QueryRowContext(ctx, q, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPresetNotFound
		}
		return nil, err
	}
	return p, nil
}

// GetWithExercises returns the preset together with its joined exercise
// entries, ordered by join-row id (insertion order).  The ownership check is
// part of the preset lookup, so a foreign preset id yields
// ErrPresetNotFound before any join runs.
func (r *PresetRepo) GetWithExercises(ctx context.Context, id uint64, userID string) (*model.PresetWithExercises, error) {
	p, err := r.GetByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	const q = `SELECT pe.id, e.id, e.name, e.description, e.type
	           FROM preset_exercises pe
	           JOIN exercises e ON e.id = pe.exercise_id
	           WHERE pe.preset_id = ?
	           ORDER BY pe.id`
	rows, err := r.db.QueryContext(ctx, q, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := &model.PresetWithExercises{Preset: *p, Exercises: []model.PresetEntry{}}
	for rows.Next() {
		var (
			entry model.PresetEntry
			desc  sql.NullString
		)
		if err := rows.Scan(&entry.ID, &entry.Exercise.ID, &entry.Exercise.Name, &desc, &entry.Exercise.Type); err != nil {
			return nil, err
		}
		if desc.Valid {
			entry.Exercise.Description = &desc.String
		}
		out.Exercises = append(out.Exercises, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// AddExercise inserts a join row linking an exercise into a preset.  The
// caller must have verified preset ownership first.  Duplicate pairs are
// allowed.  A reference to a nonexistent exercise surfaces as ErrConflict.
func (r *PresetRepo) AddExercise(ctx context.Context, presetID, exerciseID uint64) (*model.PresetExercise, error) {
	const q = "INSERT INTO preset_exercises (preset_id, exercise_id) VALUES (?, ?)"
	res, err := r.db.ExecContext(ctx, q, presetID, exerciseID)
	if err != nil {
		if mysqlErrIs(err, mysqlErrFKFailure) {
			return nil, ErrConflict
		}
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &model.PresetExercise{ID: uint64(id), PresetID: presetID, ExerciseID: exerciseID}, nil
}

// RemoveExercise deletes one join row.  The preset id is part of the
// predicate so an entry can only be removed through its own preset.
// Deleting a row that is already gone is a no-op, not an error.
func (r *PresetRepo) RemoveExercise(ctx context.Context, id, presetID uint64) error {
	const q = "DELETE FROM preset_exercises WHERE id = ? AND preset_id = ?"
	_, err := r.db.ExecContext(ctx, q, id, presetID)
	return err
}

// DeleteByIDAndUser removes a preset and all dependent records provided it
// belongs to the given user.  The cascade runs inside a transaction: join
// rows are deleted, workouts that were instantiated from the preset keep
// their history with preset_id set to NULL, then the preset row goes.
// A missing or foreign preset yields ErrPresetNotFound.
func (r *PresetRepo) DeleteByIDAndUser(ctx context.Context, id uint64, userID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			_ = tx.Commit()
		}
	}()

	// Verify existence and ownership inside the transaction
	var owner string
	if err = tx.QueryRowContext(ctx, "SELECT user_id FROM presets WHERE id = ?", id).Scan(&owner); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrPresetNotFound
		}
		return err
	}
	if owner != userID {
		err = ErrPresetNotFound
		return err
	}
	if _, err = tx.ExecContext(ctx, "DELETE FROM preset_exercises WHERE preset_id = ?", id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, "UPDATE workouts SET preset_id = NULL WHERE preset_id = ?", id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, "DELETE FROM presets WHERE id = ?", id); err != nil {
		return err
	}
	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanPreset(s scanner) (*model.Preset, error) {
	var (
		p    model.Preset
		desc sql.NullString
	)
	if err := s.Scan(&p.ID, &p.UserID, &p.Name, &desc, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	if desc.Valid {
		p.Description = &desc.String
	}
	return &p, nil
}
