package sensors

import (
	"math"
	"sync"

	"github.com/i474232898/weather-station/internal/common"
	"github.com/i474232898/weather-station/internal/weather"
)

// Compass points, clockwise from north. The names double as icon asset names.
var compassPoints = [...]string{
	"North", "NorthEast", "East", "SouthEast",
	"South", "SouthWest", "West", "NorthWest",
}

// Wind simulates an anemometer and wind vane.
type Wind struct {
	mu      sync.Mutex
	rng     Rand
	speed   float64 // mph
	heading float64 // degrees, [0, 360)
}

func NewWind(rng Rand) *Wind {
	speed := offset(rng, 0, 20) + jitter(rng)
	heading := offset(rng, 0, 359)
	return &Wind{
		rng:     rng,
		speed:   common.Round2(common.Clamp(speed, 0, 200)),
		heading: heading,
	}
}

func (w *Wind) Name() string {
	return "Anemometer"
}

func (w *Wind) Produce() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return common.FormatValue(w.speed)
}

// Direction returns the compass point the wind is blowing from.
func (w *Wind) Direction() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return CompassPoint(w.heading)
}

func (w *Wind) Readings() []weather.Reading {
	w.mu.Lock()
	defer w.mu.Unlock()
	return []weather.Reading{
		{Name: weather.WindSpeed, Value: common.FormatValue(w.speed)},
		{Name: weather.WindDirection, Value: CompassPoint(w.heading)},
	}
}

func (w *Wind) Advance() {
	w.mu.Lock()
	defer w.mu.Unlock()
	v := w.speed + offset(w.rng, -2, 2) + jitter(w.rng)
	w.speed = common.Round2(common.Clamp(v, 0, 200))
	w.heading = math.Mod(w.heading+offset(w.rng, -45, 45)+360, 360)
}

// CompassPoint maps a heading in degrees onto one of eight compass points.
func CompassPoint(heading float64) string {
	h := math.Mod(math.Mod(heading, 360)+360, 360)
	return compassPoints[int(math.Mod(h+22.5, 360)/45)]
}
