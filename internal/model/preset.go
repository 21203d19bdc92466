package model

import "time"

// Preset is a named, reusable template listing which exercises make up a
// workout plan.  Presets belong to exactly one user and are never shared.
//
// Fields:
//  ID          – primary key identifier.
//  UserID      – owner UUID issued by the identity provider.
//  Name        – required display name (e.g. "Leg Day").
//  Description – optional free-text description.
//  CreatedAt   – timestamp of creation.
//  UpdatedAt   – timestamp of last update.
type Preset struct {
    ID          uint64    `json:"id"`          // presets.id
    UserID      string    `json:"user_id"`     // presets.user_id
    Name        string    `json:"name"`        // presets.name
    Description *string   `json:"description"` // presets.description (nullable)
    CreatedAt   time.Time `json:"created_at"`  // presets.created_at
    UpdatedAt   time.Time `json:"updated_at"`  // presets.updated_at
}

// PresetExercise links one exercise into one preset.  The same
// (preset, exercise) pair may appear more than once; the original schema
// enforces no uniqueness and supersets rely on that.
type PresetExercise struct {
    ID         uint64 `json:"id"`          // preset_exercises.id
    PresetID   uint64 `json:"preset_id"`   // preset_exercises.preset_id
    ExerciseID uint64 `json:"exercise_id"` // preset_exercises.exercise_id
}

// PresetEntry is one joined row of a preset's exercise list: the join row id
// (needed to remove the entry) together with the full exercise.
type PresetEntry struct {
    ID       uint64   `json:"id"` // preset_exercises.id
    Exercise Exercise `json:"exercise"`
}

// PresetWithExercises is the aggregate returned when a single preset is
// opened: the preset plus its joined exercise entries.  Exercises is never
// nil so an empty preset serializes as [].
type PresetWithExercises struct {
    Preset
    Exercises []PresetEntry `json:"exercises"`
}
