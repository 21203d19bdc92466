// Package queue defines message payloads exchanged over the message broker.
package queue

// Queue names shared by the publisher and the consumer.
const (
	WorkoutCreatedQueue = "workout.created"
	LogRecordedQueue    = "log.recorded"
)

// WorkoutCreatedEvent is published when a user schedules a workout on the
// calendar. It carries enough for downstream consumers (activity feeds,
// reminders, analytics) without querying the primary database.
type WorkoutCreatedEvent struct {
	WorkoutID   uint64  `json:"workout_id"`
	UserID      string  `json:"user_id"`
	WorkoutDate string  `json:"workout_date"`
	PresetID    *uint64 `json:"preset_id,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

// LogRecordedEvent is published when a performance entry is written or
// edited. Nil metric fields mean the user did not record them.
type LogRecordedEvent struct {
	LogID      uint64 `json:"log_id"`
	UserID     string `json:"user_id"`
	ExerciseID uint64 `json:"exercise_id"`
	Weight     *int   `json:"weight,omitempty"`
	Reps       *int   `json:"reps,omitempty"`
	Sets       *int   `json:"sets,omitempty"`
	Updated    bool   `json:"updated"`
	RecordedAt string `json:"recorded_at"`
}
