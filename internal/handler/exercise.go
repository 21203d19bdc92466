package handler // handler package contains exercise catalog handlers

import (
    "errors"
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/avelez/workout-tracker/internal/model"
    "github.com/avelez/workout-tracker/internal/repository"
)

// ExerciseHandler serves the global exercise catalog.  The catalog is
// reference data shared by all users; listing carries no ownership filter.
type ExerciseHandler struct {
    Exercises *repository.ExerciseRepo
}

// NewExerciseHandler constructs an ExerciseHandler and panics if the
// repository is nil.
func NewExerciseHandler(exercises *repository.ExerciseRepo) *ExerciseHandler {
    if exercises == nil {
        panic("nil repository passed to NewExerciseHandler")
    }
    return &ExerciseHandler{Exercises: exercises}
}

// ListExercises handles GET /v1/exercises.  An optional ?type= parameter
// filters by muscle group; a value outside the enum is a 400, while a valid
// type with no matches returns an empty list.
func (h *ExerciseHandler) ListExercises(c echo.Context) error {
    raw := strings.TrimSpace(c.QueryParam("type"))
    if raw == "" {
        items, err := h.Exercises.ListAll(c.Request().Context())
        if err != nil {
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
        }
        return c.JSON(http.StatusOK, echo.Map{"items": items})
    }

    t := model.ExerciseType(strings.ToLower(raw))
    if !t.Valid() {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown exercise type"})
    }
    items, err := h.Exercises.ListByType(c.Request().Context(), t)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetExercise handles GET /v1/exercises/:id.
func (h *ExerciseHandler) GetExercise(c echo.Context) error {
    id, err := parseID(c, "id")
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    e, err := h.Exercises.GetByID(c.Request().Context(), id)
    if err != nil {
        if errors.Is(err, repository.ErrExerciseNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "exercise not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
    }
    return c.JSON(http.StatusOK, e)
}
