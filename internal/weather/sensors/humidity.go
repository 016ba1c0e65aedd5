package sensors

import (
	"sync"

	"github.com/i474232898/weather-station/internal/common"
	"github.com/i474232898/weather-station/internal/weather"
)

// Humidity simulates a relative humidity sensor (%).
type Humidity struct {
	mu        sync.Mutex
	rng       Rand
	placement Placement
	percent   float64
}

func NewHumidity(placement Placement, rng Rand) *Humidity {
	var v float64
	if placement == Indoor {
		v = 30 + offset(rng, 0, 30)
	} else {
		v = 20 + offset(rng, 0, 70)
	}
	v += jitter(rng)
	return &Humidity{rng: rng, placement: placement, percent: common.Round2(common.Clamp(v, 0, 100))}
}

func (h *Humidity) Name() string {
	if h.placement == Indoor {
		return "Inside Humidity Sensor"
	}
	return "Outside Humidity Sensor"
}

func (h *Humidity) Produce() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return common.FormatValue(h.percent)
}

func (h *Humidity) Readings() []weather.Reading {
	name := weather.HumOut
	if h.placement == Indoor {
		name = weather.HumIn
	}
	return []weather.Reading{{Name: name, Value: h.Produce()}}
}

func (h *Humidity) Advance() {
	h.mu.Lock()
	defer h.mu.Unlock()
	v := h.percent + offset(h.rng, -2, 2) + jitter(h.rng)
	h.percent = common.Round2(common.Clamp(v, 0, 100))
}
