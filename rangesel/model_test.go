package rangesel

import "testing"

func TestModelSetClamps(t *testing.T) {
	tests := []struct {
		value float64
		want  float64
	}{
		{-10, 0},
		{0, 0},
		{123.5, 123.5},
		{928, 928},
		{2000, 928},
	}

	for _, tt := range tests {
		m := NewModel(testTrack)
		m.Set(BoundLeft, tt.value)
		m.Set(BoundRight, tt.value)
		if m.Left() != tt.want || m.Right() != tt.want {
			t.Errorf("Set(%v) stored %v/%v, want %v", tt.value, m.Left(), m.Right(), tt.want)
		}
	}
}

func TestModelWidthAndReset(t *testing.T) {
	m := NewModel(testTrack)
	if m.Width() != testTrack {
		t.Errorf("new model Width() = %v, want %v", m.Width(), testTrack)
	}

	m.SetState(RangeState{LeftInset: 100, RightInset: 28})
	if m.Width() != 800 {
		t.Errorf("Width() = %v, want 800", m.Width())
	}

	m.Reset()
	if m.State() != (RangeState{}) {
		t.Errorf("after Reset State() = %+v, want zero", m.State())
	}
}
