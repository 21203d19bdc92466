package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/avelez/workout-tracker/internal/middleware"
	"github.com/avelez/workout-tracker/internal/repository"
)

const testUserID = "4f6f16a0-9af5-4e55-9c45-1f5051cf2fbc"

// newTestCtx builds an echo context for handler tests. Validation paths
// return before any repository call, so a repo over a nil *sql.DB is safe.
func newTestCtx(method, target, body string, authed bool) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if authed {
		c.Set(middleware.UserIDKey, testUserID)
	}
	return c, rec
}

func newPresetTestHandler() *PresetHandler {
	return NewPresetHandler(repository.NewPresetRepo(nil))
}

func TestCreatePresetUnauthenticated(t *testing.T) {
	h := newPresetTestHandler()
	c, rec := newTestCtx(http.MethodPost, "/v1/presets", `{"name":"Push Day"}`, false)

	if err := h.CreatePreset(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestCreatePresetEmptyName(t *testing.T) {
	h := newPresetTestHandler()

	for _, body := range []string{`{}`, `{"name":""}`, `{"name":"   "}`} {
		c, rec := newTestCtx(http.MethodPost, "/v1/presets", body, true)
		if err := h.CreatePreset(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, rec.Code)
		}
	}
}

func TestCreatePresetOversizedText(t *testing.T) {
	h := newPresetTestHandler()
	long := strings.Repeat("x", maxTextLen+1)

	for _, body := range []string{
		`{"name":"` + long + `"}`,
		`{"name":"Push Day","description":"` + long + `"}`,
	} {
		c, rec := newTestCtx(http.MethodPost, "/v1/presets", body, true)
		if err := h.CreatePreset(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	}
}

func TestGetPresetInvalidID(t *testing.T) {
	h := newPresetTestHandler()
	c, rec := newTestCtx(http.MethodGet, "/v1/presets/abc", "", true)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	if err := h.GetPreset(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestAddPresetExerciseMissingExerciseID(t *testing.T) {
	h := newPresetTestHandler()
	c, rec := newTestCtx(http.MethodPost, "/v1/presets/1/exercises", `{}`, true)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.AddPresetExercise(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestDeletePresetUnauthenticated(t *testing.T) {
	h := newPresetTestHandler()
	c, rec := newTestCtx(http.MethodDelete, "/v1/presets/1", "", false)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.DeletePreset(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}
