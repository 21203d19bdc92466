package handler

import (
	"net/http"
	"testing"

	"github.com/avelez/workout-tracker/internal/repository"
)

func newWorkoutTestHandler() *WorkoutHandler {
	return NewWorkoutHandler(repository.NewWorkoutRepo(nil), repository.NewPresetRepo(nil))
}

func TestListWorkoutsBadRange(t *testing.T) {
	h := newWorkoutTestHandler()

	cases := []struct {
		name   string
		target string
	}{
		{"missing params", "/v1/workouts"},
		{"bad from", "/v1/workouts?from=01-01-2024&to=2024-01-31"},
		{"bad to", "/v1/workouts?from=2024-01-01&to=January"},
		{"inverted range", "/v1/workouts?from=2024-02-01&to=2024-01-01"},
	}
	for _, tc := range cases {
		c, rec := newTestCtx(http.MethodGet, tc.target, "", true)
		if err := h.ListWorkouts(c); err != nil {
			t.Fatalf("%s: handler error: %v", tc.name, err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", tc.name, rec.Code)
		}
	}
}

func TestGetStreaksUnauthenticated(t *testing.T) {
	h := newWorkoutTestHandler()
	c, rec := newTestCtx(http.MethodGet, "/v1/workouts/streaks?from=2024-01-01&to=2024-01-31", "", false)

	if err := h.GetStreaks(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestCreateWorkoutBadDate(t *testing.T) {
	h := newWorkoutTestHandler()

	for _, body := range []string{`{}`, `{"workout_date":"2024/01/15"}`, `{"workout_date":"15-01-2024"}`} {
		c, rec := newTestCtx(http.MethodPost, "/v1/workouts", body, true)
		if err := h.CreateWorkout(c); err != nil {
			t.Fatalf("body %s: handler error: %v", body, err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, rec.Code)
		}
	}
}

func TestGetWorkoutInvalidID(t *testing.T) {
	h := newWorkoutTestHandler()
	c, rec := newTestCtx(http.MethodGet, "/v1/workouts/abc", "", true)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	if err := h.GetWorkout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestGetWorkoutUnauthenticated(t *testing.T) {
	h := newWorkoutTestHandler()
	c, rec := newTestCtx(http.MethodGet, "/v1/workouts/1", "", false)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.GetWorkout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestDeleteWorkoutInvalidID(t *testing.T) {
	h := newWorkoutTestHandler()
	c, rec := newTestCtx(http.MethodDelete, "/v1/workouts/zero", "", true)
	c.SetParamNames("id")
	c.SetParamValues("zero")

	if err := h.DeleteWorkout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestParseDateRange(t *testing.T) {
	c, _ := newTestCtx(http.MethodGet, "/v1/workouts?from=2024-01-01&to=2024-01-31", "", true)
	from, to, err := parseDateRange(c)
	if err != nil {
		t.Fatalf("valid range rejected: %v", err)
	}
	if from != "2024-01-01" || to != "2024-01-31" {
		t.Errorf("got %s..%s", from, to)
	}

	// Same day is a valid one-day window.
	c, _ = newTestCtx(http.MethodGet, "/v1/workouts?from=2024-01-15&to=2024-01-15", "", true)
	if _, _, err := parseDateRange(c); err != nil {
		t.Errorf("single-day range rejected: %v", err)
	}
}
