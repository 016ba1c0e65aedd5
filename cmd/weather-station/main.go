package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	httpapi "github.com/i474232898/weather-station/internal/api/http"
	"github.com/i474232898/weather-station/internal/config"
	"github.com/i474232898/weather-station/internal/dispatch"
	"github.com/i474232898/weather-station/internal/display"
	"github.com/i474232898/weather-station/internal/logging"
	"github.com/i474232898/weather-station/internal/receiver"
	"github.com/i474232898/weather-station/internal/scheduler"
	"github.com/i474232898/weather-station/internal/snapshot"
	"github.com/i474232898/weather-station/internal/store"
	"github.com/i474232898/weather-station/internal/weather"
	"github.com/i474232898/weather-station/internal/weather/sensors"
)

const appName = "weather-station"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.New(os.Stdout, cfg, appName)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Simulated sensors, each with its own random source.
	seed := cfg.RandomSeed
	nextRand := func() sensors.Rand {
		if seed == 0 {
			return sensors.NewRand(0)
		}
		seed++
		return sensors.NewRand(seed)
	}
	stationSensors := []weather.Sensor{
		sensors.NewTemperature(sensors.Indoor, nextRand()),
		sensors.NewTemperature(sensors.Outdoor, nextRand()),
		sensors.NewHumidity(sensors.Indoor, nextRand()),
		sensors.NewHumidity(sensors.Outdoor, nextRand()),
		sensors.NewBarometer(nextRand()),
		sensors.NewWind(nextRand()),
		sensors.NewRain(nextRand(), cfg.SensorInterval),
		sensors.NewSolar(nextRand()),
	}

	// The snapshot file is the handoff between the publisher and the receiver.
	snapFile := snapshot.NewFile(cfg.SnapshotPath)
	service := weather.NewService(snapFile, stationSensors, weather.ServiceConfig{
		Station:         cfg.StationNumber,
		RainGraphPoints: cfg.RainGraphPoints,
	}, logger)

	// Shared store, read by the dispatcher and the HTTP API.
	dataStore := store.NewMemoryStore()

	// The display is built asynchronously; the dispatcher skips passes until it is attached.
	var holder display.Holder
	dataStore.Subscribe(dispatch.New(dispatch.FromHolder(&holder), logger))
	go func() {
		holder.Attach(display.NewScreen())
		logger.Info("display ready")
	}()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		service.RunSensors(ctx, func(ctx context.Context, s weather.Sensor) {
			sensors.Run(ctx, s, cfg.SensorInterval)
		})
	}()

	recv := receiver.New(snapFile, dataStore, logger)
	sched := scheduler.New(service, recv, cfg.PublishInterval, cfg.ReceiveInterval, logger)
	if err := sched.Start(ctx); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               appName,
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	app.Use(fiberlogger.New())
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": appName,
		})
	})

	httpapi.RegisterRoutes(app, dataStore, &holder)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("fiber server stopped", "error", err)
		}
	}()
	slog.Info("weather station running", "port", cfg.Port, "snapshot", snapFile.Path())

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		slog.Error("error during shutdown", "error", err)
	}
	sched.Stop()
	wg.Wait()
}
