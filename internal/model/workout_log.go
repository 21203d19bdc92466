package model

import "time"

// WorkoutLog is one recorded performance entry for one exercise: how much
// weight, how many reps and sets, an optional note.  Logs attach directly to
// (user, exercise, timestamp) and not to a workout row.
//
// Weight, Reps and Sets are pointers because a user may log any subset of
// them; nil means "not recorded", which is distinct from zero.
type WorkoutLog struct {
    ID         uint64    `json:"id"`          // workout_logs.id
    UserID     string    `json:"user_id"`     // workout_logs.user_id
    ExerciseID uint64    `json:"exercise_id"` // workout_logs.exercise_id
    LoggedAt   time.Time `json:"logged_at"`   // workout_logs.logged_at
    Weight     *int      `json:"weight"`      // workout_logs.weight (nullable)
    Reps       *int      `json:"reps"`        // workout_logs.reps (nullable)
    Sets       *int      `json:"sets"`        // workout_logs.sets (nullable)
    Notes      *string   `json:"notes"`       // workout_logs.notes (nullable)
}
