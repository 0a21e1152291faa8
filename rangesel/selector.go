package rangesel

import (
	"github.com/cornish/pricescope/logger"
)

// Selector owns the range model and drag handler of one minimap and keeps
// them in step with the main chart's visible range
type Selector struct {
	model   *Model
	handler *Handler
	log     *logger.Logger
}

// NewSelector creates a selector for a track of the given pixel width
func NewSelector(trackWidth float64, viewport Viewport, log *logger.Logger) *Selector {
	model := NewModel(trackWidth)
	return &Selector{
		model:   model,
		handler: NewHandler(model, viewport, log),
		log:     log,
	}
}

// Model returns the range model
func (s *Selector) Model() *Model {
	return s.model
}

// Handler returns the drag handler
func (s *Selector) Handler() *Handler {
	return s.handler
}

// SetPointCount is called whenever a new data set replaces the old one
func (s *Selector) SetPointCount(n int) {
	s.handler.SetPointCount(n)
	s.model.Reset()
}

// HitTest returns the drag mode for a press at track pixel x. Presses within
// grip pixels of an edge grab that handle; anything else moves the window.
func (s *Selector) HitTest(x, grip float64) DragMode {
	if !finite(x) {
		return DragNone
	}
	left := s.model.Left()
	right := s.model.TrackWidth() - s.model.Right()
	dl := abs(x - left)
	dr := abs(x - right)
	switch {
	case dl <= grip && dl <= dr:
		return DragLeft
	case dr <= grip:
		return DragRight
	default:
		return DragMove
	}
}

// SyncFromLogical positions the selector from the main chart's visible range.
// Ignored while a drag is in progress so the pointer keeps control.
func (s *Selector) SyncFromLogical(r LogicalRange) bool {
	if s.handler.Active() {
		return false
	}
	conv, ok := s.handler.Converter()
	if !ok {
		return false
	}
	state, err := conv.ToPixels(r.From, r.To)
	if err != nil {
		s.log.Debug("sync skipped for %s: %v", r, err)
		return false
	}
	if state == s.model.State() {
		return false
	}
	s.model.SetState(state)
	return true
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
