package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type AppConfig struct {
	AppEnv   string `validate:"oneof=dev prod"`
	LogLevel slog.Level

	Port string `validate:"required,numeric"`

	// SnapshotPath is the file shared by the publisher and the receiver.
	SnapshotPath string `validate:"required"`

	SensorInterval  time.Duration `validate:"gt=0"`
	PublishInterval time.Duration `validate:"gt=0"`
	ReceiveInterval time.Duration `validate:"gt=0"`

	StationNumber   string `validate:"required,max=32"`
	RainGraphPoints int    `validate:"gte=0,lte=1000"` // 0 disables the rain graph

	// RandomSeed seeds the sensors; 0 means time-based.
	RandomSeed int64
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	cfg := &AppConfig{}

	cfg.AppEnv = strings.TrimSpace(getenvDefault("APP_ENV", "dev"))

	level, err := parseLogLevel(getenvDefault("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	cfg.Port = strings.TrimSpace(getenvDefault("PORT", "8080"))
	cfg.SnapshotPath = getenvDefault("SNAPSHOT_PATH", "data.ser")

	// All loops default to the 3 second cadence of the station.
	if cfg.SensorInterval, err = getenvDuration("SENSOR_INTERVAL", "3s"); err != nil {
		return nil, err
	}
	if cfg.PublishInterval, err = getenvDuration("PUBLISH_INTERVAL", "3s"); err != nil {
		return nil, err
	}
	if cfg.ReceiveInterval, err = getenvDuration("RECEIVE_INTERVAL", "3s"); err != nil {
		return nil, err
	}

	cfg.StationNumber = strings.TrimSpace(getenvDefault("STATION_NUMBER", "1"))
	cfg.RainGraphPoints = getenvInt("RAIN_GRAPH_POINTS", 12)

	seed, err := strconv.ParseInt(getenvDefault("RANDOM_SEED", "0"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid RANDOM_SEED: %w", err)
	}
	cfg.RandomSeed = seed

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q (allowed: debug, info, warn, error)", s)
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getenvDefault(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
