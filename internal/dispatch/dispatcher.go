// Package dispatch routes store contents to display widgets after every
// receiver pass.
package dispatch

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/i474232898/weather-station/internal/display"
	"github.com/i474232898/weather-station/internal/store"
	"github.com/i474232898/weather-station/internal/weather"
)

var (
	// ErrDisplayNotReady is returned while the display is still being built.
	ErrDisplayNotReady = errors.New("display not ready")
	// ErrWidgetFault is returned when a widget panicked during a pass.
	ErrWidgetFault = errors.New("widget fault")
)

// Display is the set of widgets the dispatcher writes to.
type Display interface {
	DataPanel() display.Widget
	WindCompass() display.Widget
	GraphPanel() display.Widget
	WeatherPanel() display.ConditionWidget
	MessagePanel() display.ConditionWidget
}

// DisplayFunc returns the current display, or false while none is available.
type DisplayFunc func() (Display, bool)

// FromHolder adapts a display.Holder to a DisplayFunc.
func FromHolder(h *display.Holder) DisplayFunc {
	return func() (Display, bool) {
		s := h.Screen()
		if s == nil {
			return nil, false
		}
		return s, true
	}
}

type route func(Display) display.Widget

func dataPanel(d Display) display.Widget   { return d.DataPanel() }
func windCompass(d Display) display.Widget { return d.WindCompass() }
func graphPanel(d Display) display.Widget  { return d.GraphPanel() }

// routes maps every recognized reading name to its widget.
var routes = map[string]route{
	weather.TempIn:        dataPanel,
	weather.TempOut:       dataPanel,
	weather.BaroPressure:  dataPanel,
	weather.BaroTrend:     dataPanel,
	weather.StationNumber: dataPanel,
	weather.Rain:          dataPanel,
	weather.RainRate:      dataPanel,
	weather.HumIn:         dataPanel,
	weather.HumOut:        dataPanel,
	weather.WindChill:     dataPanel,
	weather.WindDirection: windCompass,
	weather.WindSpeed:     windCompass,
	weather.RainGraph:     graphPanel,
}

// Recognized reports whether name is routed to a widget.
func Recognized(name string) bool {
	_, ok := routes[name]
	return ok
}

// Dispatcher is the store observer that updates the display.
type Dispatcher struct {
	current DisplayFunc
	logger  *slog.Logger
}

func New(current DisplayFunc, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{current: current, logger: logger.With("component", "dispatcher")}
}

// Update implements store.Observer.
func (d *Dispatcher) Update(s *store.MemoryStore) {
	err := d.Dispatch(s)
	switch {
	case err == nil:
	case errors.Is(err, ErrDisplayNotReady):
		d.logger.Debug("display is still being built; skipping pass")
	default:
		d.logger.Warn("dispatch abandoned", "error", err)
	}
}

// Dispatch routes every entry of s to its widget, then sends the outdoor
// temperature, humidity and rain rate to the condition widgets. The condition
// widgets are updated on every pass, with empty strings for absent readings.
// A widget panic abandons the pass; widgets updated before it keep their state.
func (d *Dispatcher) Dispatch(s *store.MemoryStore) (err error) {
	disp, ok := d.current()
	if !ok || disp == nil {
		return ErrDisplayNotReady
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrWidgetFault, r)
		}
	}()

	for _, e := range s.Entries() {
		if r, ok := routes[e.Key]; ok {
			r(disp).ChangeDisplay(e.Key, e.Value)
		}
	}

	temp, _ := s.Get(weather.TempOut)
	hum, _ := s.Get(weather.HumOut)
	rate, _ := s.Get(weather.RainRate)

	disp.WeatherPanel().ChangeConditions(temp, hum, rate)
	disp.MessagePanel().ChangeConditions(temp, hum, rate)
	return nil
}
