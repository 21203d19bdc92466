package handler // handler package contains workout calendar handlers

import (
    "context"
    "errors"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/avelez/workout-tracker/internal/model"
    "github.com/avelez/workout-tracker/internal/queue"
    "github.com/avelez/workout-tracker/internal/repository"
    queue_publisher "github.com/avelez/workout-tracker/internal/service"
    "github.com/avelez/workout-tracker/internal/streak"
)

// WorkoutHandler bundles the repositories backing the calendar view.
type WorkoutHandler struct {
    Workouts *repository.WorkoutRepo // Workouts provides workout persistence
    Presets  *repository.PresetRepo  // Presets verifies ownership of preset references
}

// NewWorkoutHandler constructs a WorkoutHandler and panics if any dependency is nil.
func NewWorkoutHandler(workouts *repository.WorkoutRepo, presets *repository.PresetRepo) *WorkoutHandler {
    if workouts == nil || presets == nil {
        panic("nil repository passed to NewWorkoutHandler")
    }
    return &WorkoutHandler{Workouts: workouts, Presets: presets}
}

// ListWorkouts handles GET /v1/workouts?from=&to= and returns the user's
// workouts inside the inclusive date range, the query the calendar issues
// once per displayed month.
func (h *WorkoutHandler) ListWorkouts(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    from, to, err := parseDateRange(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
    }
    items, err := h.Workouts.ListByUserBetween(c.Request().Context(), userID, from, to)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetStreaks handles GET /v1/workouts/streaks?from=&to= and returns the
// consecutive-day streak length for each workout date in the range.  Only
// dates inside the requested window contribute, so a run reaching back into
// the previous month restarts at the window edge.
func (h *WorkoutHandler) GetStreaks(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    from, to, err := parseDateRange(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
    }
    dates, err := h.Workouts.ListDatesBetween(c.Request().Context(), userID, from, to)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
    }
    return c.JSON(http.StatusOK, echo.Map{"streaks": streak.Lengths(dates)})
}

// GetWorkout handles GET /v1/workouts/:id and returns one workout together
// with the exercise entries of its preset, so the detail view renders in a
// single request.  A blank workout carries an empty exercise list.
func (h *WorkoutHandler) GetWorkout(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    id, err := parseID(c, "id")
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    ctx := c.Request().Context()
    w, err := h.Workouts.GetByIDAndUser(ctx, id, userID)
    if err != nil {
        if errors.Is(err, repository.ErrWorkoutNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "workout not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
    }
    exercises := []model.PresetEntry{}
    if w.PresetID != nil {
        p, err := h.Presets.GetWithExercises(ctx, *w.PresetID, userID)
        switch {
        case err == nil:
            exercises = p.Exercises
        case errors.Is(err, repository.ErrPresetNotFound):
            // The preset was deleted after the workout was read; the
            // cascade nulls preset_id, so the list simply reads empty.
        default:
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
        }
    }
    return c.JSON(http.StatusOK, echo.Map{"workout": w, "exercises": exercises})
}

// CreateWorkout handles POST /v1/workouts.  The date is required; preset_id
// is optional (a blank workout) and, when present, must reference a preset
// the caller owns; a foreign preset reads as 404 just like a missing one.
func (h *WorkoutHandler) CreateWorkout(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    var body struct {
        WorkoutDate string  `json:"workout_date"` // YYYY-MM-DD, the day the workout is for
        PresetID    *uint64 `json:"preset_id"`    // optional preset to instantiate from
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if _, err := time.Parse(dateLayout, body.WorkoutDate); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "workout_date must be YYYY-MM-DD"})
    }
    ctx := c.Request().Context()
    if body.PresetID != nil {
        if _, err := h.Presets.GetByIDAndUser(ctx, *body.PresetID, userID); err != nil {
            if errors.Is(err, repository.ErrPresetNotFound) {
                return c.JSON(http.StatusNotFound, echo.Map{"error": "preset not found"})
            }
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
        }
    }
    w := &model.Workout{
        UserID:      userID,
        WorkoutDate: body.WorkoutDate,
        PresetID:    body.PresetID,
    }
    if err := h.Workouts.Create(ctx, w); err != nil {
        if errors.Is(err, repository.ErrConflict) {
            return c.JSON(http.StatusConflict, echo.Map{"error": "preset does not exist"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create workout"})
    }

    // Best-effort event; the workout is already committed.
    _ = queue_publisher.PublishWorkoutCreated(context.Background(), queue.WorkoutCreatedEvent{
        WorkoutID:   w.ID,
        UserID:      w.UserID,
        WorkoutDate: w.WorkoutDate,
        PresetID:    w.PresetID,
        CreatedAt:   w.CreatedAt.UTC().Format(time.RFC3339),
    })

    return c.JSON(http.StatusCreated, w)
}

// DeleteWorkout handles DELETE /v1/workouts/:id.
func (h *WorkoutHandler) DeleteWorkout(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    id, err := parseID(c, "id")
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    if err := h.Workouts.DeleteByIDAndUser(c.Request().Context(), id, userID); err != nil {
        if errors.Is(err, repository.ErrWorkoutNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "workout not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
    }
    return c.NoContent(http.StatusNoContent)
}
