package display

import (
	"go.uber.org/atomic"

	"github.com/i474232898/weather-station/internal/weather"
)

// Screen groups the widgets of the dashboard.
type Screen struct {
	data    *DataPanel
	compass *WindCompass
	graph   *GraphPanel
	icon    *WeatherPanel
	message *MessagePanel
}

// NewScreen builds all widgets in their initial state.
func NewScreen() *Screen {
	return &Screen{
		data:    &DataPanel{},
		compass: NewWindCompass(),
		graph:   &GraphPanel{},
		icon:    &WeatherPanel{},
		message: &MessagePanel{},
	}
}

func (s *Screen) DataPanel() Widget             { return s.data }
func (s *Screen) WindCompass() Widget           { return s.compass }
func (s *Screen) GraphPanel() Widget            { return s.graph }
func (s *Screen) WeatherPanel() ConditionWidget { return s.icon }
func (s *Screen) MessagePanel() ConditionWidget { return s.message }

// State is a point-in-time copy of everything the screen shows.
type State struct {
	Data      []PanelValue      `json:"data"`
	Compass   CompassState      `json:"compass"`
	RainGraph []float64         `json:"rainGraph"`
	Condition weather.Condition `json:"condition"`
	Icon      string            `json:"icon"`
	Message   string            `json:"message"`
}

func (s *Screen) State() State {
	return State{
		Data:      s.data.Values(),
		Compass:   s.compass.State(),
		RainGraph: s.graph.Points(),
		Condition: s.icon.Condition(),
		Icon:      s.icon.Icon(),
		Message:   s.message.Message(),
	}
}

// Holder publishes a Screen once its construction has finished. Until then
// Screen returns nil.
type Holder struct {
	screen atomic.Pointer[Screen]
}

func (h *Holder) Attach(s *Screen) {
	h.screen.Store(s)
}

func (h *Holder) Screen() *Screen {
	return h.screen.Load()
}

// State returns the current screen state, or false while no screen is attached.
func (h *Holder) State() (State, bool) {
	s := h.Screen()
	if s == nil {
		return State{}, false
	}
	return s.State(), true
}
