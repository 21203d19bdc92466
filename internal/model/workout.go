package model

import "time"

// Workout is a single dated workout instance, optionally instantiated from a
// preset.  WorkoutDate is a pure calendar date (the day the workout is for);
// CreatedAt records when the row was written and the two are unrelated.
type Workout struct {
    ID          uint64    `json:"id"`           // workouts.id
    UserID      string    `json:"user_id"`      // workouts.user_id
    WorkoutDate string    `json:"workout_date"` // workouts.workout_date as YYYY-MM-DD
    CreatedAt   time.Time `json:"created_at"`   // workouts.created_at
    PresetID    *uint64   `json:"preset_id"`    // workouts.preset_id (null for blank workouts)
}
