package handler // handler package contains workout log handlers

import (
    "context"
    "errors"
    "net/http"
    "strconv"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/avelez/workout-tracker/internal/model"
    "github.com/avelez/workout-tracker/internal/queue"
    "github.com/avelez/workout-tracker/internal/repository"
    queue_publisher "github.com/avelez/workout-tracker/internal/service"
)

// LogHandler bundles the repositories backing performance logging.
type LogHandler struct {
    Logs      *repository.LogRepo      // Logs provides log persistence
    Exercises *repository.ExerciseRepo // Exercises validates exercise references on insert
}

// NewLogHandler constructs a LogHandler and panics if any dependency is nil.
func NewLogHandler(logs *repository.LogRepo, exercises *repository.ExerciseRepo) *LogHandler {
    if logs == nil || exercises == nil {
        panic("nil repository passed to NewLogHandler")
    }
    return &LogHandler{Logs: logs, Exercises: exercises}
}

// UpsertLog handles POST /v1/logs.  Without an id a new entry is inserted;
// with an id the existing entry is edited in place and only the provided
// fields change.  Negative or implausibly large metrics are rejected before
// any write.  Concurrent edits are last-writer-wins.
func (h *LogHandler) UpsertLog(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    var body struct {
        ID         *uint64 `json:"id"`          // present -> update in place
        ExerciseID uint64  `json:"exercise_id"` // required on insert
        Weight     *int    `json:"weight"`
        Reps       *int    `json:"reps"`
        Sets       *int    `json:"sets"`
        Notes      *string `json:"notes"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    for _, m := range []struct {
        name string
        v    *int
        max  int
    }{
        {"weight", body.Weight, maxWeight},
        {"reps", body.Reps, maxReps},
        {"sets", body.Sets, maxSets},
    } {
        if err := validateMetric(m.name, m.v, m.max); err != nil {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
        }
    }
    if err := validateText("notes", body.Notes, maxTextLen); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
    }

    ctx := c.Request().Context()

    if body.ID != nil {
        updated, err := h.Logs.Update(ctx, *body.ID, userID, body.Weight, body.Reps, body.Sets, body.Notes)
        if err != nil {
            if errors.Is(err, repository.ErrLogNotFound) {
                return c.JSON(http.StatusNotFound, echo.Map{"error": "log not found"})
            }
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
        }
        publishLogRecorded(updated, true)
        return c.JSON(http.StatusOK, updated)
    }

    if body.ExerciseID == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "exercise_id is required"})
    }
    l := &model.WorkoutLog{
        UserID:     userID,
        ExerciseID: body.ExerciseID,
        Weight:     body.Weight,
        Reps:       body.Reps,
        Sets:       body.Sets,
        Notes:      body.Notes,
    }
    if err := h.Logs.Insert(ctx, l); err != nil {
        if errors.Is(err, repository.ErrConflict) {
            return c.JSON(http.StatusConflict, echo.Map{"error": "exercise does not exist"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not record log"})
    }
    publishLogRecorded(l, false)
    return c.JSON(http.StatusCreated, l)
}

// ListExerciseLogs handles GET /v1/exercises/:id/logs and returns the
// caller's history for that exercise, newest first.  The exercise must
// exist; an unknown id is a 404 rather than an empty history.
func (h *LogHandler) ListExerciseLogs(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    exerciseID, err := parseID(c, "id")
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    ctx := c.Request().Context()
    if _, err := h.Exercises.GetByID(ctx, exerciseID); err != nil {
        if errors.Is(err, repository.ErrExerciseNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "exercise not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
    }
    items, err := h.Logs.ListByUserAndExercise(ctx, userID, exerciseID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// RecentLogs handles GET /v1/logs/recent?limit= and returns the caller's
// latest entries across all exercises, default 10, capped at 100.
func (h *LogHandler) RecentLogs(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    limit := 10
    if raw := c.QueryParam("limit"); raw != "" {
        n, err := strconv.Atoi(raw)
        if err != nil || n < 1 {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid limit"})
        }
        if n > 100 {
            n = 100
        }
        limit = n
    }
    items, err := h.Logs.ListRecentByUser(c.Request().Context(), userID, limit)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items})
}

func publishLogRecorded(l *model.WorkoutLog, updated bool) {
    _ = queue_publisher.PublishLogRecorded(context.Background(), queue.LogRecordedEvent{
        LogID:      l.ID,
        UserID:     l.UserID,
        ExerciseID: l.ExerciseID,
        Weight:     l.Weight,
        Reps:       l.Reps,
        Sets:       l.Sets,
        Updated:    updated,
        RecordedAt: l.LoggedAt.UTC().Format(time.RFC3339),
    })
}
