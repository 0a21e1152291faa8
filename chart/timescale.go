// Package chart renders price series into terminal cells and owns the
// visible logical range of the main chart.
package chart

import (
	"math"

	"github.com/cornish/pricescope/logger"
	"github.com/cornish/pricescope/rangesel"
)

// MinVisiblePoints is the narrowest range zooming can reach
const MinVisiblePoints = 2.0

// Viewport is the visible range of a chart, addressed in fractional point
// indices. Subscribers are told about every change.
type Viewport interface {
	SetVisibleLogicalRange(r rangesel.LogicalRange)
	VisibleLogicalRange() rangesel.LogicalRange
	SubscribeVisibleLogicalRangeChange(fn func(rangesel.LogicalRange)) (unsubscribe func())
}

type subscription struct {
	id int
	fn func(rangesel.LogicalRange)
}

// TimeScale is the horizontal axis of the main chart
type TimeScale struct {
	pointCount int
	visible    rangesel.LogicalRange
	subs       []subscription
	nextID     int
	notifying  bool
	log        *logger.Logger
}

// NewTimeScale creates an empty time scale
func NewTimeScale(log *logger.Logger) *TimeScale {
	return &TimeScale{log: log}
}

// PointCount returns the number of points the scale spans
func (ts *TimeScale) PointCount() int {
	return ts.pointCount
}

// SetPointCount is called when a new data set is loaded. The whole set
// becomes visible.
func (ts *TimeScale) SetPointCount(n int) {
	if n < 0 {
		n = 0
	}
	ts.pointCount = n
	ts.apply(rangesel.LogicalRange{From: 0, To: float64(n)}, true)
}

// VisibleLogicalRange returns the current range
func (ts *TimeScale) VisibleLogicalRange() rangesel.LogicalRange {
	return ts.visible
}

// SetVisibleLogicalRange clamps r into the data and makes it visible.
// Non-finite or inverted ranges are ignored.
func (ts *TimeScale) SetVisibleLogicalRange(r rangesel.LogicalRange) {
	if err := r.Validate(); err != nil {
		ts.log.Warning("ignoring visible range: %v", err)
		return
	}
	ts.apply(ts.clamp(r), false)
}

// SubscribeVisibleLogicalRangeChange registers fn for range changes
func (ts *TimeScale) SubscribeVisibleLogicalRangeChange(fn func(rangesel.LogicalRange)) func() {
	ts.nextID++
	id := ts.nextID
	ts.subs = append(ts.subs, subscription{id: id, fn: fn})
	return func() {
		for i, s := range ts.subs {
			if s.id == id {
				ts.subs = append(ts.subs[:i], ts.subs[i+1:]...)
				return
			}
		}
	}
}

// FitContent shows every point
func (ts *TimeScale) FitContent() {
	ts.SetVisibleLogicalRange(rangesel.LogicalRange{From: 0, To: float64(ts.pointCount)})
}

// ZoomIn halves the visible width around its center
func (ts *TimeScale) ZoomIn() {
	ts.Zoom(0.5)
}

// ZoomOut doubles the visible width around its center
func (ts *TimeScale) ZoomOut() {
	ts.Zoom(2)
}

// Zoom scales the visible width by factor, keeping the center fixed
func (ts *TimeScale) Zoom(factor float64) {
	if ts.pointCount == 0 || !(factor > 0) {
		return
	}
	center := (ts.visible.From + ts.visible.To) / 2
	half := ts.visible.Width() * factor / 2
	ts.SetVisibleLogicalRange(rangesel.LogicalRange{From: center - half, To: center + half})
}

// ScrollBy moves the visible range by points, keeping its width
func (ts *TimeScale) ScrollBy(points float64) {
	if ts.pointCount == 0 || points == 0 {
		return
	}
	n := float64(ts.pointCount)
	w := ts.visible.Width()
	from := math.Max(0, math.Min(ts.visible.From+points, n-w))
	ts.SetVisibleLogicalRange(rangesel.LogicalRange{From: from, To: from + w})
}

// IndexAt returns the point index under a fractional x position in [0, 1]
// across the plot
func (ts *TimeScale) IndexAt(frac float64) (int, bool) {
	if ts.pointCount == 0 || frac < 0 || frac > 1 {
		return 0, false
	}
	i := int(math.Floor(ts.visible.From + frac*ts.visible.Width()))
	last := min(int(math.Ceil(ts.visible.To)), ts.pointCount) - 1
	if i > last {
		i = last
	}
	if i < 0 {
		i = 0
	}
	return i, true
}

// VisibleIndices returns the first and one-past-last whole points that
// intersect the visible range
func (ts *TimeScale) VisibleIndices() (int, int) {
	from := int(math.Floor(ts.visible.From))
	to := int(math.Ceil(ts.visible.To))
	if from < 0 {
		from = 0
	}
	if to > ts.pointCount {
		to = ts.pointCount
	}
	if to < from {
		to = from
	}
	return from, to
}

func (ts *TimeScale) clamp(r rangesel.LogicalRange) rangesel.LogicalRange {
	n := float64(ts.pointCount)
	minWidth := math.Min(MinVisiblePoints, n)
	if r.Width() < minWidth {
		center := (r.From + r.To) / 2
		r.From = center - minWidth/2
		r.To = center + minWidth/2
	}
	// Shift back inside before cutting so the width survives where possible
	if r.From < 0 {
		r.To -= r.From
		r.From = 0
	}
	if r.To > n {
		r.From -= r.To - n
		r.To = n
	}
	r.From = math.Max(0, r.From)
	r.To = math.Min(n, r.To)
	return r
}

// apply stores r and notifies subscribers. A change raised by a subscriber
// while notifying is stored without another broadcast.
func (ts *TimeScale) apply(r rangesel.LogicalRange, force bool) {
	if r == ts.visible && !force {
		return
	}
	ts.visible = r
	if ts.notifying {
		return
	}
	ts.notifying = true
	defer func() { ts.notifying = false }()
	subs := make([]subscription, len(ts.subs))
	copy(subs, ts.subs)
	for _, s := range subs {
		s.fn(r)
	}
}
