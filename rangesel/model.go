// Package rangesel maps a minimap range selector between pixel insets and the
// logical (index based) visible range of the main chart.
package rangesel

// Bound identifies one edge of the selector window
type Bound int

const (
	BoundLeft Bound = iota
	BoundRight
)

// RangeState holds the selector's insets from the track edges, in pixels
type RangeState struct {
	LeftInset  float64
	RightInset float64
}

// Model stores the selector insets for a fixed-width track
type Model struct {
	trackWidth float64
	state      RangeState
}

// NewModel creates a model with the selector spanning the whole track
func NewModel(trackWidth float64) *Model {
	return &Model{trackWidth: trackWidth}
}

// TrackWidth returns the track width in pixels
func (m *Model) TrackWidth() float64 {
	return m.trackWidth
}

// Left returns the left inset
func (m *Model) Left() float64 {
	return m.state.LeftInset
}

// Right returns the right inset
func (m *Model) Right() float64 {
	return m.state.RightInset
}

// State returns both insets
func (m *Model) State() RangeState {
	return m.state
}

// Width returns the selector window width
func (m *Model) Width() float64 {
	return m.trackWidth - m.state.LeftInset - m.state.RightInset
}

// Set clamps value into [0, trackWidth] and stores it as the given inset
func (m *Model) Set(b Bound, value float64) {
	v := clamp(value, 0, m.trackWidth)
	if b == BoundLeft {
		m.state.LeftInset = v
	} else {
		m.state.RightInset = v
	}
}

// SetState stores both insets, clamping each one
func (m *Model) SetState(s RangeState) {
	m.Set(BoundLeft, s.LeftInset)
	m.Set(BoundRight, s.RightInset)
}

// Reset spans the selector over the whole track
func (m *Model) Reset() {
	m.state = RangeState{}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
