package sensors

import (
	"sync"

	"github.com/i474232898/weather-station/internal/common"
	"github.com/i474232898/weather-station/internal/weather"
)

// Pressure trends reported alongside the barometric pressure.
const (
	TrendRising  = "Rising"
	TrendFalling = "Falling"
	TrendSteady  = "Steady"
)

// Changes smaller than this (inHg) are reported as steady.
const trendDeadBand = 0.01

// Barometer simulates a barometric pressure sensor in inHg.
type Barometer struct {
	mu       sync.Mutex
	rng      Rand
	pressure float64
	trend    string
}

func NewBarometer(rng Rand) *Barometer {
	v := 29 + offset(rng, 0, 150)/100
	return &Barometer{rng: rng, pressure: common.Round2(v), trend: TrendSteady}
}

func (b *Barometer) Name() string {
	return "Barometer"
}

func (b *Barometer) Produce() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return common.FormatValue(b.pressure)
}

// Trend returns the direction of the last change.
func (b *Barometer) Trend() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.trend
}

func (b *Barometer) Readings() []weather.Reading {
	b.mu.Lock()
	defer b.mu.Unlock()
	return []weather.Reading{
		{Name: weather.BaroPressure, Value: common.FormatValue(b.pressure)},
		{Name: weather.BaroTrend, Value: b.trend},
	}
}

func (b *Barometer) Advance() {
	b.mu.Lock()
	defer b.mu.Unlock()
	prev := b.pressure
	v := b.pressure + (offset(b.rng, -2, 2)+jitter(b.rng))/100
	b.pressure = common.Round2(common.Clamp(v, 28, 31))

	switch diff := b.pressure - prev; {
	case diff >= trendDeadBand:
		b.trend = TrendRising
	case diff <= -trendDeadBand:
		b.trend = TrendFalling
	default:
		b.trend = TrendSteady
	}
}
