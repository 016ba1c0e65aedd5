package weather

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/i474232898/weather-station/internal/common"
)

// ServiceConfig holds the station-level settings used when building snapshots.
type ServiceConfig struct {
	Station         string
	RainGraphPoints int // samples kept for the rain graph (0 = no graph)
}

// Service orchestrates the simulated sensors and publishes their snapshot.
// It is the only writer of the snapshot.
type Service struct {
	writer  SnapshotWriter
	sensors []Sensor
	cfg     ServiceConfig
	logger  *slog.Logger

	mu          sync.Mutex
	rainHistory []float64
}

// NewService creates a new Service.
func NewService(writer SnapshotWriter, sensors []Sensor, cfg ServiceConfig, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		writer:  writer,
		sensors: sensors,
		cfg:     cfg,
		logger:  logger.With("component", "publisher"),
	}
}

// Sensors returns the sensors owned by the service.
func (s *Service) Sensors() []Sensor {
	return s.sensors
}

// Snapshot reads every sensor once and aggregates the result.
func (s *Service) Snapshot() Snapshot {
	var readings []Reading
	for _, sensor := range s.sensors {
		readings = append(readings, sensor.Readings()...)
	}

	s.mu.Lock()
	if rate, ok := lookupValue(readings, RainRate); ok && s.cfg.RainGraphPoints > 0 {
		s.rainHistory = append(s.rainHistory, common.Round2(rate))
		if over := len(s.rainHistory) - s.cfg.RainGraphPoints; over > 0 {
			s.rainHistory = s.rainHistory[over:]
		}
	}
	history := append([]float64(nil), s.rainHistory...)
	s.mu.Unlock()

	return AggregateReadings(s.cfg.Station, readings, history)
}

// Publish builds a snapshot and hands it to the writer.
func (s *Service) Publish(ctx context.Context) error {
	if s.writer == nil {
		return fmt.Errorf("no snapshot writer configured")
	}
	if len(s.sensors) == 0 {
		s.logger.Warn("no sensors configured; publishing station number only")
	}

	snapshot := s.Snapshot()
	if err := s.writer.WriteSnapshot(ctx, snapshot); err != nil {
		return fmt.Errorf("publish snapshot: %w", err)
	}
	s.logger.Debug("snapshot published", "records", len(snapshot))
	return nil
}

// RunSensors starts run for every sensor on its own goroutine and blocks
// until all of them have returned. run is expected to stop when ctx is done.
func (s *Service) RunSensors(ctx context.Context, run func(context.Context, Sensor)) {
	var wg sync.WaitGroup
	for _, sensor := range s.sensors {
		sensor := sensor
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.logger.Debug("sensor started", "sensor", sensor.Name())
			run(ctx, sensor)
			s.logger.Debug("sensor stopped", "sensor", sensor.Name())
		}()
	}
	wg.Wait()
}
