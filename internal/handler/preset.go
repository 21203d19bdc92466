package handler // handler package contains preset handlers

import (
    "errors"    // errors matches repository sentinels
    "net/http"  // http provides status code constants
    "strings"   // strings offers trimming utilities

    "github.com/labstack/echo/v4" // echo is the web framework used for handlers

    "github.com/avelez/workout-tracker/internal/model"      // model holds entity structs
    "github.com/avelez/workout-tracker/internal/repository" // repository holds the data access layer
)

// PresetHandler bundles the repositories needed to manage workout presets.
type PresetHandler struct {
    Presets *repository.PresetRepo // Presets provides preset persistence
}

// NewPresetHandler constructs a PresetHandler and panics if the repository is nil.
func NewPresetHandler(presets *repository.PresetRepo) *PresetHandler {
    if presets == nil {
        panic("nil repository passed to NewPresetHandler")
    }
    return &PresetHandler{Presets: presets}
}

// CreatePreset handles POST /v1/presets and creates a new preset for the
// authenticated user.  Name is required after trimming; description is optional.
func (h *PresetHandler) CreatePreset(c echo.Context) error {
    userID, err := getUserID(c) // extract the owner from context
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    var body struct {
        Name        string  `json:"name"`        // Name is the only required field
        Description *string `json:"description"` // Description is optional
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    name := strings.TrimSpace(body.Name)
    if name == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
    }
    if err := validateText("name", &name, maxTextLen); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
    }
    if err := validateText("description", body.Description, maxTextLen); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
    }
    preset := &model.Preset{
        UserID:      userID,
        Name:        name,
        Description: body.Description,
    }
    if err := h.Presets.Create(c.Request().Context(), preset); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create preset"})
    }
    return c.JSON(http.StatusCreated, preset)
}

// ListPresets handles GET /v1/presets and returns all presets owned by the
// authenticated user.
func (h *PresetHandler) ListPresets(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    items, err := h.Presets.ListByUser(c.Request().Context(), userID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetPreset handles GET /v1/presets/:id and returns the preset together with
// its exercise entries.  A preset owned by another user reads as 404 so the
// existence of foreign presets is never revealed.
func (h *PresetHandler) GetPreset(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    id, err := parseID(c, "id")
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    p, err := h.Presets.GetWithExercises(c.Request().Context(), id, userID)
    if err != nil {
        if errors.Is(err, repository.ErrPresetNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "preset not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
    }
    return c.JSON(http.StatusOK, p)
}

// DeletePreset handles DELETE /v1/presets/:id.  The repository cascade
// removes the preset's exercise entries and detaches workouts in one
// transaction; a partial delete never survives.
func (h *PresetHandler) DeletePreset(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    id, err := parseID(c, "id")
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    if err := h.Presets.DeleteByIDAndUser(c.Request().Context(), id, userID); err != nil {
        if errors.Is(err, repository.ErrPresetNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "preset not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
    }
    return c.NoContent(http.StatusNoContent)
}

// AddPresetExercise handles POST /v1/presets/:id/exercises and links an
// exercise into the preset.  Ownership of the preset is verified first; the
// exercise reference is enforced by the foreign key and surfaces as 409.
func (h *PresetHandler) AddPresetExercise(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    presetID, err := parseID(c, "id")
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    var body struct {
        ExerciseID uint64 `json:"exercise_id"`
    }
    if err := c.Bind(&body); err != nil || body.ExerciseID == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "exercise_id is required"})
    }
    ctx := c.Request().Context()
    if _, err := h.Presets.GetByIDAndUser(ctx, presetID, userID); err != nil {
        if errors.Is(err, repository.ErrPresetNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "preset not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
    }
    entry, err := h.Presets.AddExercise(ctx, presetID, body.ExerciseID)
    if err != nil {
        if errors.Is(err, repository.ErrConflict) {
            return c.JSON(http.StatusConflict, echo.Map{"error": "exercise does not exist"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not add exercise"})
    }
    return c.JSON(http.StatusCreated, entry)
}

// RemovePresetExercise handles DELETE /v1/presets/:id/exercises/:entryID.
// Removing an entry that is already gone is a no-op success.
func (h *PresetHandler) RemovePresetExercise(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    presetID, err := parseID(c, "id")
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    entryID, err := parseID(c, "entryID")
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid entry id"})
    }
    ctx := c.Request().Context()
    if _, err := h.Presets.GetByIDAndUser(ctx, presetID, userID); err != nil {
        if errors.Is(err, repository.ErrPresetNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "preset not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
    }
    if err := h.Presets.RemoveExercise(ctx, entryID, presetID); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not remove exercise"})
    }
    return c.NoContent(http.StatusNoContent)
}
