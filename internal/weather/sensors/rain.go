package sensors

import (
	"sync"
	"time"

	"github.com/i474232898/weather-station/internal/common"
	"github.com/i474232898/weather-station/internal/weather"
)

const maxRainRate = 10.0 // in/hr

// Rain simulates a tipping-bucket rain gauge. The rate (in/hr) walks and
// the total (in) accumulates rate over one tick per Advance.
type Rain struct {
	mu    sync.Mutex
	rng   Rand
	tick  time.Duration
	rate  float64
	total float64
}

// NewRain creates a dry rain gauge. tick is the time covered by one Advance.
func NewRain(rng Rand, tick time.Duration) *Rain {
	if tick <= 0 {
		tick = DefaultInterval
	}
	return &Rain{rng: rng, tick: tick}
}

func (r *Rain) Name() string {
	return "Rain Gauge"
}

func (r *Rain) Produce() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return common.FormatValue(common.Round2(r.total))
}

func (r *Rain) Readings() []weather.Reading {
	r.mu.Lock()
	defer r.mu.Unlock()
	return []weather.Reading{
		{Name: weather.Rain, Value: common.FormatValue(common.Round2(r.total))},
		{Name: weather.RainRate, Value: common.FormatValue(r.rate)},
	}
}

func (r *Rain) Advance() {
	r.mu.Lock()
	defer r.mu.Unlock()
	v := r.rate + (offset(r.rng, -2, 2)+jitter(r.rng))/10
	r.rate = common.Round2(common.Clamp(v, 0, maxRainRate))
	// total is kept unrounded so that small rates still accumulate.
	r.total += r.rate * r.tick.Hours()
}
