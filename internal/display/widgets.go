package display

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/i474232898/weather-station/internal/common"
	"github.com/i474232898/weather-station/internal/weather"
)

// Widget accepts a single reading.
type Widget interface {
	ChangeDisplay(name, value string)
}

// ConditionWidget accepts the outdoor temperature, humidity and rain rate.
type ConditionWidget interface {
	ChangeConditions(temp, humidity, rainRate string)
}

// iconPath returns the asset path for an icon name.
func iconPath(name string) string {
	return "icons/" + name + ".png"
}

// PanelValue is one line of the data panel.
type PanelValue struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Unit  string `json:"unit,omitempty"`
}

// DataPanel shows plain readings as text.
type DataPanel struct {
	mu     sync.RWMutex
	values []PanelValue
}

func (p *DataPanel) ChangeDisplay(name, value string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	v := PanelValue{Name: name, Value: value, Unit: unitFor(name)}
	for i := range p.values {
		if p.values[i].Name == name {
			p.values[i] = v
			return
		}
	}
	p.values = append(p.values, v)
}

// Values returns the panel lines in the order they first appeared.
func (p *DataPanel) Values() []PanelValue {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]PanelValue(nil), p.values...)
}

func unitFor(name string) string {
	switch {
	case name == weather.RainRate:
		return "in/hr"
	case name == weather.Rain:
		return "in"
	case name == weather.BaroPressure:
		return "inHg"
	case common.HasAny(name, "Temp", "chill"):
		return "°F"
	case common.HasAny(name, "Hum"):
		return "%"
	default:
		return ""
	}
}

// CompassState is what the wind compass shows.
type CompassState struct {
	Direction string `json:"direction"`
	Icon      string `json:"icon"`
	Speed     int64  `json:"speed"`
}

// WindCompass shows the wind direction as an icon and the speed as a whole number.
type WindCompass struct {
	mu    sync.RWMutex
	state CompassState
}

func NewWindCompass() *WindCompass {
	return &WindCompass{state: CompassState{Direction: "North", Icon: iconPath("North")}}
}

func (c *WindCompass) ChangeDisplay(name, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch name {
	case weather.WindDirection:
		if value = strings.TrimSpace(value); value != "" {
			c.state.Direction = value
			c.state.Icon = iconPath(value)
		}
	case weather.WindSpeed:
		if v, ok := common.ParseValue(value); ok {
			c.state.Speed = int64(math.Round(v))
		}
	}
}

func (c *WindCompass) State() CompassState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// GraphPanel plots the recent rain rate series.
type GraphPanel struct {
	mu     sync.RWMutex
	points []float64
}

func (g *GraphPanel) ChangeDisplay(name, value string) {
	if name != weather.RainGraph {
		return
	}

	var points []float64
	for _, p := range strings.Split(value, ",") {
		if v, ok := common.ParseValue(p); ok {
			points = append(points, v)
		}
	}

	g.mu.Lock()
	g.points = points
	g.mu.Unlock()
}

func (g *GraphPanel) Points() []float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return append([]float64(nil), g.points...)
}

// WeatherPanel picks the icon for the current condition.
type WeatherPanel struct {
	mu        sync.RWMutex
	condition weather.Condition
}

func (w *WeatherPanel) ChangeConditions(temp, humidity, rainRate string) {
	c := weather.Classify(temp, humidity, rainRate)
	w.mu.Lock()
	w.condition = c
	w.mu.Unlock()
}

func (w *WeatherPanel) Condition() weather.Condition {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.condition == "" {
		return weather.ConditionUnknown
	}
	return w.condition
}

func (w *WeatherPanel) Icon() string {
	return iconPath(string(w.Condition()))
}

var headlines = map[weather.Condition]string{
	weather.ConditionUnknown: "Waiting for station data.",
	weather.ConditionClear:   "Clear skies.",
	weather.ConditionCloudy:  "Cloudy and humid.",
	weather.ConditionMist:    "Misty, visibility may be reduced.",
	weather.ConditionRain:    "Rain is falling.",
	weather.ConditionSnow:    "Snow is falling.",
	weather.ConditionStorm:   "Heavy rain, stay indoors.",
}

// MessagePanel shows a sentence describing the current weather.
type MessagePanel struct {
	mu      sync.RWMutex
	message string
}

func (m *MessagePanel) ChangeConditions(temp, humidity, rainRate string) {
	msg := headlines[weather.Classify(temp, humidity, rainRate)]
	if t, ok := common.ParseValue(temp); ok {
		msg += fmt.Sprintf(" It is %s°F outside", common.FormatValue(common.Round2(t)))
		if h, ok := common.ParseValue(humidity); ok {
			msg += fmt.Sprintf(" with %s%% humidity", common.FormatValue(common.Round2(h)))
		}
		msg += "."
	}

	m.mu.Lock()
	m.message = msg
	m.mu.Unlock()
}

func (m *MessagePanel) Message() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.message == "" {
		return headlines[weather.ConditionUnknown]
	}
	return m.message
}
