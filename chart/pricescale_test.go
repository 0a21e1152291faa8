package chart

import (
	"math"
	"testing"
)

func points(values ...float64) []SeriesPoint {
	out := make([]SeriesPoint, len(values))
	for i, v := range values {
		out[i] = SeriesPoint{Time: int64(i), Value: v}
	}
	return out
}

func TestPriceScaleFit(t *testing.T) {
	tests := []struct {
		name     string
		mode     PriceScaleMode
		values   []float64
		min, max float64
	}{
		{"linear", ModeNormal, []float64{20, 10, 30}, 10, 30},
		{"log skips non-positive", ModeLogarithmic, []float64{-5, 0, 10, 1000}, 10, 1000},
		{"flat line", ModeNormal, []float64{5, 5}, 4.75, 5.25},
		{"empty linear", ModeNormal, nil, 0, 1},
		{"empty log", ModeLogarithmic, []float64{0}, 1, 10},
		{"skips NaN", ModeNormal, []float64{math.NaN(), 2, 4}, 2, 4},
	}

	for _, tt := range tests {
		p := NewPriceScale()
		p.Mode = tt.mode
		p.Fit(points(tt.values...))
		if math.Abs(p.Min-tt.min) > 1e-9 || math.Abs(p.Max-tt.max) > 1e-9 {
			t.Errorf("%s: Fit() = [%v, %v], want [%v, %v]", tt.name, p.Min, p.Max, tt.min, tt.max)
		}
	}
}

func TestPriceScalePosition(t *testing.T) {
	lin := &PriceScale{Mode: ModeNormal, Min: 10, Max: 30}
	if got, ok := lin.Position(20); !ok || got != 0.5 {
		t.Errorf("linear Position(20) = %v, %v, want 0.5", got, ok)
	}
	if got := lin.ValueAt(0.25); got != 15 {
		t.Errorf("linear ValueAt(0.25) = %v, want 15", got)
	}

	log := &PriceScale{Mode: ModeLogarithmic, Min: 1, Max: 100}
	if got, ok := log.Position(10); !ok || math.Abs(got-0.5) > 1e-9 {
		t.Errorf("log Position(10) = %v, %v, want 0.5", got, ok)
	}
	if got := log.ValueAt(0.5); math.Abs(got-10) > 1e-9 {
		t.Errorf("log ValueAt(0.5) = %v, want 10", got)
	}
	if _, ok := log.Position(0); ok {
		t.Error("log Position(0) reported ok")
	}

	ticks := lin.Ticks(3)
	if len(ticks) != 3 || ticks[0] != 10 || ticks[1] != 20 || ticks[2] != 30 {
		t.Errorf("Ticks(3) = %v, want [10 20 30]", ticks)
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{12.5, "12.50"},
		{1234.5, "1,234.50"},
		{123456, "123,456.00"},
		{1234567.891, "1,234,567.89"},
		{-2500, "-2,500.00"},
		{0.5, "0.5000"},
		{0.001234, "0.00123400"},
	}
	for _, tt := range tests {
		if got := FormatPrice(tt.in); got != tt.want {
			t.Errorf("FormatPrice(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatVolume(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{999, "999"},
		{2500, "2.50K"},
		{1.5e6, "1.50M"},
		{9.87e9, "9.87B"},
	}
	for _, tt := range tests {
		if got := FormatVolume(tt.in); got != tt.want {
			t.Errorf("FormatVolume(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScaleModeString(t *testing.T) {
	if ModeNormal.String() != "LIN" || ModeLogarithmic.String() != "LOG" {
		t.Errorf("mode strings = %q, %q", ModeNormal, ModeLogarithmic)
	}
}
