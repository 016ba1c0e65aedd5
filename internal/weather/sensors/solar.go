package sensors

import (
	"sync"

	"github.com/i474232898/weather-station/internal/common"
	"github.com/i474232898/weather-station/internal/weather"
)

// Nominal solar radiation range in watts. Only the initial draw honours it.
const (
	solarMinWatts = 0
	solarMaxWatts = 1800
)

// Solar simulates a solar radiation sensor.
type Solar struct {
	mu    sync.Mutex
	rng   Rand
	watts float64
}

// NewSolar creates a solar sensor with an initial value in [0, 1801).
func NewSolar(rng Rand) *Solar {
	w := float64(rng.Intn(solarMaxWatts-solarMinWatts+1)+solarMinWatts) + rng.Float64()
	return &Solar{rng: rng, watts: common.Round2(w)}
}

func (s *Solar) Name() string {
	return "Solar Radiation Sensor"
}

func (s *Solar) Produce() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return common.FormatValue(s.watts)
}

func (s *Solar) Readings() []weather.Reading {
	return []weather.Reading{{Name: weather.SolarRadiation, Value: s.Produce()}}
}

// Advance moves the value by a delta in [-19, +22). The result is not clamped
// back into [0, 1800], so the value drifts over long runs.
func (s *Solar) Advance() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watts += offset(s.rng, -19, 21) + s.rng.Float64()
	s.watts = common.Round2(s.watts)
}
