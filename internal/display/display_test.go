package display

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/i474232898/weather-station/internal/weather"
)

func TestDataPanelKeepsFirstSeenOrder(t *testing.T) {
	p := &DataPanel{}
	p.ChangeDisplay(weather.TempOut, "72.5")
	p.ChangeDisplay(weather.RainRate, "0.1")
	p.ChangeDisplay(weather.StationNumber, "3")
	p.ChangeDisplay(weather.TempOut, "73")

	want := []PanelValue{
		{Name: weather.TempOut, Value: "73", Unit: "°F"},
		{Name: weather.RainRate, Value: "0.1", Unit: "in/hr"},
		{Name: weather.StationNumber, Value: "3"},
	}
	if diff := cmp.Diff(want, p.Values()); diff != "" {
		t.Fatalf("panel values mismatch (-want +got):\n%s", diff)
	}
}

func TestUnitFor(t *testing.T) {
	tests := map[string]string{
		weather.TempIn:       "°F",
		weather.WindChill:    "°F",
		weather.HumOut:       "%",
		weather.Rain:         "in",
		weather.RainRate:     "in/hr",
		weather.BaroPressure: "inHg",
		weather.BaroTrend:    "",
	}
	for name, want := range tests {
		if got := unitFor(name); got != want {
			t.Errorf("unitFor(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestWindCompass(t *testing.T) {
	c := NewWindCompass()
	if got := c.State().Icon; got != "icons/North.png" {
		t.Fatalf("expected initial icon icons/North.png, got %q", got)
	}

	c.ChangeDisplay(weather.WindDirection, "SouthWest")
	c.ChangeDisplay(weather.WindSpeed, "12.5")
	want := CompassState{Direction: "SouthWest", Icon: "icons/SouthWest.png", Speed: 13}
	if got := c.State(); got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}

	// Bad input keeps the previous state.
	c.ChangeDisplay(weather.WindSpeed, "fast")
	c.ChangeDisplay(weather.WindDirection, "")
	if got := c.State(); got != want {
		t.Fatalf("expected state to be unchanged, got %+v", got)
	}
}

func TestGraphPanelSkipsBadPoints(t *testing.T) {
	g := &GraphPanel{}
	g.ChangeDisplay(weather.RainGraph, "0,0.25,x,1.5")
	if diff := cmp.Diff([]float64{0, 0.25, 1.5}, g.Points()); diff != "" {
		t.Fatalf("points mismatch (-want +got):\n%s", diff)
	}

	g.ChangeDisplay(weather.Rain, "9")
	if len(g.Points()) != 3 {
		t.Fatal("expected readings other than the rain graph to be ignored")
	}
}

func TestConditionWidgets(t *testing.T) {
	w := &WeatherPanel{}
	m := &MessagePanel{}

	if w.Condition() != weather.ConditionUnknown || m.Message() != headlines[weather.ConditionUnknown] {
		t.Fatal("expected unknown condition before the first update")
	}

	w.ChangeConditions("72.5", "40", "0.0")
	m.ChangeConditions("72.5", "40", "0.0")

	if w.Condition() != weather.ConditionClear || w.Icon() != "icons/clear.png" {
		t.Fatalf("expected clear icon, got %q (%s)", w.Condition(), w.Icon())
	}
	if want := "Clear skies. It is 72.5°F outside with 40% humidity."; m.Message() != want {
		t.Fatalf("expected %q, got %q", want, m.Message())
	}

	// Missing values must not panic.
	w.ChangeConditions("", "", "")
	m.ChangeConditions("", "", "")
	if w.Condition() != weather.ConditionUnknown {
		t.Fatalf("expected unknown condition, got %q", w.Condition())
	}
	if strings.Contains(m.Message(), "°F") {
		t.Fatalf("expected no temperature in message, got %q", m.Message())
	}
}

func TestHolder(t *testing.T) {
	var h Holder
	if _, ok := h.State(); ok {
		t.Fatal("expected no state before a screen is attached")
	}

	s := NewScreen()
	s.DataPanel().ChangeDisplay(weather.HumIn, "35")
	h.Attach(s)

	state, ok := h.State()
	if !ok {
		t.Fatal("expected state after attach")
	}
	if len(state.Data) != 1 || state.Data[0].Value != "35" {
		t.Fatalf("expected data panel with Hum in, got %+v", state.Data)
	}
	if state.Compass.Icon != "icons/North.png" || state.Icon != "icons/unknown.png" {
		t.Fatalf("expected initial icons, got %+v", state)
	}
}
