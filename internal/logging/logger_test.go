package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/i474232898/weather-station/internal/config"
)

func TestNewProdWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.AppConfig{AppEnv: "prod", LogLevel: slog.LevelInfo, StationNumber: "3"}

	logger := New(&buf, cfg, "weather-station")
	logger.Debug("hidden")
	logger.Info("pass complete", "records", 3)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 log line, got %d: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", lines[0], err)
	}
	for key, want := range map[string]any{
		"msg":     "pass complete",
		"app":     "weather-station",
		"env":     "prod",
		"station": "3",
		"records": float64(3),
	} {
		if entry[key] != want {
			t.Errorf("%s = %v, want %v", key, entry[key], want)
		}
	}
}

func TestNewDevWritesText(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.AppConfig{AppEnv: "dev", LogLevel: slog.LevelDebug}

	New(&buf, cfg, "weather-station").Debug("sensor started", "sensor", "Barometer")

	out := buf.String()
	if !strings.Contains(out, "sensor started") || !strings.Contains(out, "Barometer") {
		t.Fatalf("expected message and attribute in output, got %q", out)
	}
	if strings.HasPrefix(strings.TrimSpace(out), "{") {
		t.Fatalf("expected text output in dev, got %q", out)
	}
}
