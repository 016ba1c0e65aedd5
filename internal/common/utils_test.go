package common

import "testing"

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: 72.456, want: 72.46},
		{in: 72.454, want: 72.45},
		{in: 0, want: 0},
		{in: -3.14159, want: -3.14},
	}

	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormatValue(t *testing.T) {
	if got := FormatValue(72.5); got != "72.5" {
		t.Fatalf("expected 72.5, got %q", got)
	}
	if got := FormatValue(40); got != "40" {
		t.Fatalf("expected 40, got %q", got)
	}
}

func TestParseValue(t *testing.T) {
	if v, ok := ParseValue(" 12.25 "); !ok || v != 12.25 {
		t.Fatalf("expected 12.25, got %v (ok=%v)", v, ok)
	}
	for _, in := range []string{"", "abc", "NaN", "Inf"} {
		if _, ok := ParseValue(in); ok {
			t.Errorf("ParseValue(%q) ok = true, want false", in)
		}
	}
}

func TestHasAny(t *testing.T) {
	if !HasAny("Wind speed", "speed", "gust") {
		t.Fatal("expected match")
	}
	if HasAny("Rain", "Temp", "Hum") {
		t.Fatal("expected no match")
	}
}
