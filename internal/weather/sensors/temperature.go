package sensors

import (
	"sync"

	"github.com/i474232898/weather-station/internal/common"
	"github.com/i474232898/weather-station/internal/weather"
)

// Placement tells whether a sensor reports the inside or outside value.
type Placement int

const (
	Indoor Placement = iota
	Outdoor
)

// Temperature simulates a thermometer in °F.
type Temperature struct {
	mu        sync.Mutex
	rng       Rand
	placement Placement
	degrees   float64
}

// NewTemperature creates a thermometer starting in a range typical for its placement.
func NewTemperature(placement Placement, rng Rand) *Temperature {
	var v float64
	if placement == Indoor {
		v = 65 + offset(rng, 0, 10)
	} else {
		v = 40 + offset(rng, 0, 50)
	}
	v += jitter(rng)
	return &Temperature{rng: rng, placement: placement, degrees: common.Round2(v)}
}

func (t *Temperature) Name() string {
	if t.placement == Indoor {
		return "Inside Temperature Sensor"
	}
	return "Outside Temperature Sensor"
}

func (t *Temperature) Produce() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return common.FormatValue(t.degrees)
}

func (t *Temperature) Readings() []weather.Reading {
	name := weather.TempOut
	if t.placement == Indoor {
		name = weather.TempIn
	}
	return []weather.Reading{{Name: name, Value: t.Produce()}}
}

func (t *Temperature) Advance() {
	t.mu.Lock()
	defer t.mu.Unlock()
	v := t.degrees + offset(t.rng, -1, 1) + jitter(t.rng)
	t.degrees = common.Round2(common.Clamp(v, -40, 140))
}
