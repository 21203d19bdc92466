package handler

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/avelez/workout-tracker/internal/repository"
)

func newLogTestHandler() *LogHandler {
	return NewLogHandler(repository.NewLogRepo(nil), repository.NewExerciseRepo(nil))
}

func TestUpsertLogRejectsBadMetrics(t *testing.T) {
	h := newLogTestHandler()

	cases := []struct {
		name string
		body string
	}{
		{"negative weight", `{"exercise_id":1,"weight":-5}`},
		{"negative reps", `{"exercise_id":1,"reps":-1}`},
		{"negative sets", `{"exercise_id":1,"sets":-3}`},
		{"absurd weight", fmt.Sprintf(`{"exercise_id":1,"weight":%d}`, maxWeight+1)},
		{"absurd reps", fmt.Sprintf(`{"exercise_id":1,"reps":%d}`, maxReps+1)},
		{"absurd sets", fmt.Sprintf(`{"exercise_id":1,"sets":%d}`, maxSets+1)},
	}
	for _, tc := range cases {
		c, rec := newTestCtx(http.MethodPost, "/v1/logs", tc.body, true)
		if err := h.UpsertLog(c); err != nil {
			t.Fatalf("%s: handler error: %v", tc.name, err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", tc.name, rec.Code)
		}
	}
}

func TestUpsertLogOversizedNotes(t *testing.T) {
	h := newLogTestHandler()
	long := strings.Repeat("n", maxTextLen+1)
	c, rec := newTestCtx(http.MethodPost, "/v1/logs", `{"exercise_id":1,"notes":"`+long+`"}`, true)

	if err := h.UpsertLog(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestUpsertLogInsertRequiresExerciseID(t *testing.T) {
	h := newLogTestHandler()
	c, rec := newTestCtx(http.MethodPost, "/v1/logs", `{"weight":100,"reps":8}`, true)

	if err := h.UpsertLog(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestUpsertLogUnauthenticated(t *testing.T) {
	h := newLogTestHandler()
	c, rec := newTestCtx(http.MethodPost, "/v1/logs", `{"exercise_id":1,"weight":100}`, false)

	if err := h.UpsertLog(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestRecentLogsInvalidLimit(t *testing.T) {
	h := newLogTestHandler()

	for _, limit := range []string{"0", "-1", "abc"} {
		c, rec := newTestCtx(http.MethodGet, "/v1/logs/recent?limit="+limit, "", true)
		if err := h.RecentLogs(c); err != nil {
			t.Fatalf("limit %s: handler error: %v", limit, err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Errorf("limit %s: status = %d, want 400", limit, rec.Code)
		}
	}
}

func TestValidateMetric(t *testing.T) {
	neg := -1
	zero := 0
	high := maxReps + 1
	edge := maxReps

	if err := validateMetric("reps", nil, maxReps); err != nil {
		t.Errorf("nil metric: %v", err)
	}
	if err := validateMetric("reps", &zero, maxReps); err != nil {
		t.Errorf("zero metric: %v", err)
	}
	if err := validateMetric("reps", &edge, maxReps); err != nil {
		t.Errorf("max metric: %v", err)
	}
	if err := validateMetric("reps", &neg, maxReps); err == nil {
		t.Error("negative metric accepted")
	}
	if err := validateMetric("reps", &high, maxReps); err == nil {
		t.Error("over-max metric accepted")
	}
}
