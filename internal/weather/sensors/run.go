package sensors

import (
	"context"
	"time"

	"github.com/i474232898/weather-station/internal/weather"
)

// Run advances s, waits one interval, and repeats until ctx is cancelled.
func Run(ctx context.Context, s weather.Sensor, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if ctx.Err() != nil {
			return
		}
		s.Advance()

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
