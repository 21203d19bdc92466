package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing
	"github.com/redis/go-redis/v9"

	"github.com/avelez/workout-tracker/internal/config"
	"github.com/avelez/workout-tracker/internal/handler"
	"github.com/avelez/workout-tracker/internal/middleware"
)

// Handlers groups the domain handlers the API exposes.
type Handlers struct {
	Exercises *handler.ExerciseHandler
	Presets   *handler.PresetHandler
	Workouts  *handler.WorkoutHandler
	Logs      *handler.LogHandler
}

// RegisterRoutes registers routes that do not require authentication.
// Currently that is only the health check used by load balancers.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAPI registers every /v1 endpoint behind JWT authentication, the
// rate limiter and the response cache.  The limiter runs after JWTAuth so
// its per-user key strategies see the authenticated user; the cache runs
// last so hits are still rate limited.
func RegisterAPI(e *echo.Echo, cfg config.Config, h Handlers, rdb *redis.Client) {
	v1 := e.Group("/v1")
	v1.Use(middleware.JWTAuth(cfg.JWTSecret))
	v1.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	v1.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))

	// Exercise catalog: global reference data, read-only over HTTP.  The
	// catalog itself is written by the seed process, never by users.
	v1.GET("/exercises", h.Exercises.ListExercises)
	v1.GET("/exercises/:id", h.Exercises.GetExercise)
	// Per-exercise log history for the authenticated user.
	v1.GET("/exercises/:id/logs", h.Logs.ListExerciseLogs)

	// Presets: reusable workout templates owned by the caller.
	v1.GET("/presets", h.Presets.ListPresets)
	v1.POST("/presets", h.Presets.CreatePreset)
	v1.GET("/presets/:id", h.Presets.GetPreset)
	v1.DELETE("/presets/:id", h.Presets.DeletePreset)
	v1.POST("/presets/:id/exercises", h.Presets.AddPresetExercise)
	v1.DELETE("/presets/:id/exercises/:entryID", h.Presets.RemovePresetExercise)

	// Workout calendar.
	v1.GET("/workouts", h.Workouts.ListWorkouts)
	v1.GET("/workouts/streaks", h.Workouts.GetStreaks)
	v1.GET("/workouts/:id", h.Workouts.GetWorkout)
	v1.POST("/workouts", h.Workouts.CreateWorkout)
	v1.DELETE("/workouts/:id", h.Workouts.DeleteWorkout)

	// Performance logs.
	v1.POST("/logs", h.Logs.UpsertLog)
	v1.GET("/logs/recent", h.Logs.RecentLogs)
}
