package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-station/internal/display"
	"github.com/i474232898/weather-station/internal/store"
	"github.com/i474232898/weather-station/internal/weather"
)

func newTestApp(t *testing.T, attach bool) (*fiber.App, *store.MemoryStore) {
	t.Helper()
	app := fiber.New()

	st := store.NewMemoryStore()
	st.Set(weather.TempOut, "72.5")
	st.Set(weather.HumOut, "40")

	var holder display.Holder
	if attach {
		screen := display.NewScreen()
		screen.DataPanel().ChangeDisplay(weather.TempOut, "72.5")
		holder.Attach(screen)
	}

	RegisterRoutes(app, st, &holder)
	return app, st
}

func get(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return resp
}

func TestListReadings(t *testing.T) {
	app, _ := newTestApp(t, true)

	resp := get(t, app, "/api/v1/readings")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}

	var body struct {
		Readings []store.Entry `json:"readings"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(body.Readings) != 2 || body.Readings[0].Key != weather.TempOut || body.Readings[1].Value != "40" {
		t.Fatalf("unexpected readings: %+v", body.Readings)
	}
}

func TestGetReading(t *testing.T) {
	app, _ := newTestApp(t, true)

	resp := get(t, app, "/api/v1/readings/Temp%20out")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	var entry store.Entry
	if err := json.NewDecoder(resp.Body).Decode(&entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.Key != weather.TempOut || entry.Value != "72.5" {
		t.Fatalf("unexpected entry: %+v", entry)
	}

	// Absent reading.
	resp = get(t, app, "/api/v1/readings/Rain")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, resp.StatusCode)
	}

	// Name too long.
	resp = get(t, app, "/api/v1/readings/"+strings.Repeat("x", 65))
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
}

func TestDisplayState(t *testing.T) {
	app, _ := newTestApp(t, true)

	resp := get(t, app, "/api/v1/display")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	var state display.State
	if err := json.NewDecoder(resp.Body).Decode(&state); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(state.Data) != 1 || state.Data[0].Unit != "°F" {
		t.Fatalf("unexpected display state: %+v", state)
	}
}

func TestDisplayNotReady(t *testing.T) {
	app, _ := newTestApp(t, false)

	resp := get(t, app, "/api/v1/display")
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected status %d, got %d", http.StatusServiceUnavailable, resp.StatusCode)
	}
}
