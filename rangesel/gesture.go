package rangesel

import (
	"github.com/cornish/pricescope/logger"
)

// DragMode is the part of the selector being dragged
type DragMode int

const (
	DragNone DragMode = iota
	DragLeft
	DragRight
	DragMove
)

func (d DragMode) String() string {
	switch d {
	case DragLeft:
		return "left"
	case DragRight:
		return "right"
	case DragMove:
		return "move"
	default:
		return "none"
	}
}

// DragSession lives from pointer down to pointer up or leave
type DragSession struct {
	Mode      DragMode
	OriginX   float64 // last pointer x seen, valid when HasOrigin
	HasOrigin bool
}

// Viewport receives committed ranges. chart.TimeScale implements it.
type Viewport interface {
	SetVisibleLogicalRange(r LogicalRange)
}

// Handler turns pointer gestures on the minimap into selector updates and
// commits the result to a viewport on release
type Handler struct {
	model    *Model
	viewport Viewport
	conv     Converter
	hasData  bool
	maxPPP   float64
	session  DragSession
	log      *logger.Logger
}

// NewHandler creates a handler for the given model. viewport may be nil.
func NewHandler(model *Model, viewport Viewport, log *logger.Logger) *Handler {
	return &Handler{
		model:    model,
		viewport: viewport,
		maxPPP:   DefaultMaxPointPerPixel,
		log:      log,
	}
}

// SetMaxPointPerPixel changes the density cap
func (h *Handler) SetMaxPointPerPixel(v float64) {
	if v > 0 {
		h.maxPPP = v
		h.conv = h.conv.WithMaxPointPerPixel(v)
	}
}

// SetPointCount rebuilds the converter for a new data set
func (h *Handler) SetPointCount(n int) {
	conv, err := NewConverter(h.model.TrackWidth(), n)
	if err != nil {
		h.hasData = false
		h.log.Debug("converter unavailable: %v", err)
		return
	}
	h.conv = conv.WithMaxPointPerPixel(h.maxPPP)
	h.hasData = true
}

// Converter returns the current converter and whether data is loaded
func (h *Handler) Converter() (Converter, bool) {
	return h.conv, h.hasData
}

// Session returns a copy of the current drag session
func (h *Handler) Session() DragSession {
	return h.session
}

// Active reports whether a drag is in progress
func (h *Handler) Active() bool {
	return h.session.Mode != DragNone
}

// PointerDown starts a session. A press while a session is active is ignored,
// so a handle press that also reaches the track keeps the handle mode.
func (h *Handler) PointerDown(mode DragMode) bool {
	if mode == DragNone || h.Active() {
		return false
	}
	h.session = DragSession{Mode: mode}
	return true
}

// PointerMove feeds a pointer position. Returns true if the insets changed.
func (h *Handler) PointerMove(pageX float64) bool {
	if !h.Active() || !finite(pageX) {
		return false
	}
	movementX := 0.0
	if h.session.HasOrigin {
		movementX = pageX - h.session.OriginX
	}
	h.session.OriginX = pageX
	h.session.HasOrigin = true
	return h.Drag(movementX)
}

// Drag applies one movement step to the active session
func (h *Handler) Drag(movementX float64) bool {
	mode := h.session.Mode
	if mode == DragNone || movementX == 0 || !finite(movementX) {
		return false
	}

	if mode == DragMove {
		return h.shift(movementX)
	}

	// Growing past the density cap slides the window instead of resizing it
	width := h.model.Width()
	newWidth := width + movementX
	if mode == DragLeft {
		newWidth = width - movementX
	}
	if newWidth > width && newWidth > h.maxWindowWidth() {
		return h.shift(movementX)
	}

	before := h.model.State()
	track := h.model.TrackWidth()
	if mode == DragLeft {
		h.model.Set(BoundLeft, h.model.Left()+movementX)
	} else {
		h.model.Set(BoundRight, h.model.Right()-movementX)
	}

	// Handles crossed: pin the other inset and hand control to it
	if h.model.Left()+h.model.Right() > track {
		if mode == DragLeft {
			h.model.Set(BoundRight, track-h.model.Left())
			h.session.Mode = DragRight
		} else {
			h.model.Set(BoundLeft, track-h.model.Right())
			h.session.Mode = DragLeft
		}
		h.log.Debug("handles crossed, %s -> %s", mode, h.session.Mode)
	}

	return h.model.State() != before
}

// shift moves the whole window by dx without resizing it. Steps that would
// push an edge out of the track are rejected. The width never changes, so the
// density cap does not apply.
func (h *Handler) shift(dx float64) bool {
	track := h.model.TrackWidth()
	left := h.model.Left() + dx
	right := h.model.Right() - dx
	if left < 0 || right < 0 || left > track || right > track {
		return false
	}
	h.model.Set(BoundLeft, left)
	h.model.Set(BoundRight, right)
	return true
}

func (h *Handler) maxWindowWidth() float64 {
	if !h.hasData {
		return h.model.TrackWidth()
	}
	return h.conv.MaxWindowWidth()
}

// PointerUp ends the session and commits the selector to the viewport.
// Returns the committed range, or false when nothing was committed.
func (h *Handler) PointerUp() (LogicalRange, bool) {
	if !h.Active() {
		return LogicalRange{}, false
	}
	h.session = DragSession{}

	if !h.hasData {
		return LogicalRange{}, false
	}
	r, err := h.conv.ToLogical(h.model.Left(), h.model.Right())
	if err != nil {
		h.log.Warning("commit skipped: %v", err)
		return LogicalRange{}, false
	}
	if h.viewport != nil {
		h.viewport.SetVisibleLogicalRange(r)
	}
	return r, true
}

// Cancel ends the session without committing. The model keeps the
// dragged insets until the next sync.
func (h *Handler) Cancel() {
	h.session = DragSession{}
}

// PointerLeave behaves like PointerUp
func (h *Handler) PointerLeave() (LogicalRange, bool) {
	return h.PointerUp()
}
