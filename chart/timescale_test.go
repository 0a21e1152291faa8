package chart

import (
	"math"
	"testing"

	"github.com/cornish/pricescope/rangesel"
)

func lr(from, to float64) rangesel.LogicalRange {
	return rangesel.LogicalRange{From: from, To: to}
}

func closeTo(a, b rangesel.LogicalRange) bool {
	return math.Abs(a.From-b.From) < 1e-9 && math.Abs(a.To-b.To) < 1e-9
}

func TestTimeScaleSetPointCount(t *testing.T) {
	ts := NewTimeScale(nil)
	var got []rangesel.LogicalRange
	ts.SubscribeVisibleLogicalRangeChange(func(r rangesel.LogicalRange) { got = append(got, r) })

	ts.SetPointCount(100)
	if ts.VisibleLogicalRange() != lr(0, 100) {
		t.Errorf("VisibleLogicalRange() = %s, want 0..100", ts.VisibleLogicalRange())
	}
	// Reloading the same size still notifies so the selector resets
	ts.SetPointCount(100)
	if len(got) != 2 {
		t.Errorf("got %d notifications, want 2", len(got))
	}
}

func TestTimeScaleClamp(t *testing.T) {
	tests := []struct {
		name string
		in   rangesel.LogicalRange
		want rangesel.LogicalRange
	}{
		{"inside", lr(10, 20), lr(10, 20)},
		{"past the end keeps width", lr(90, 110), lr(80, 100)},
		{"before the start keeps width", lr(-5, 5), lr(0, 10)},
		{"wider than data", lr(-50, 150), lr(0, 100)},
		{"narrower than minimum", lr(50, 50.5), lr(49.25, 51.25)},
	}

	for _, tt := range tests {
		ts := NewTimeScale(nil)
		ts.SetPointCount(100)
		ts.SetVisibleLogicalRange(tt.in)
		if got := ts.VisibleLogicalRange(); !closeTo(got, tt.want) {
			t.Errorf("%s: SetVisibleLogicalRange(%s) -> %s, want %s", tt.name, tt.in, got, tt.want)
		}
	}
}

func TestTimeScaleRejectsInvalidRange(t *testing.T) {
	ts := NewTimeScale(nil)
	ts.SetPointCount(100)
	ts.SetVisibleLogicalRange(lr(30, 40))
	calls := 0
	ts.SubscribeVisibleLogicalRangeChange(func(rangesel.LogicalRange) { calls++ })

	for _, r := range []rangesel.LogicalRange{
		lr(20, 10),
		lr(math.NaN(), 20),
		lr(10, math.Inf(1)),
		lr(math.Inf(-1), 10),
	} {
		ts.SetVisibleLogicalRange(r)
		if got := ts.VisibleLogicalRange(); got != lr(30, 40) {
			t.Errorf("SetVisibleLogicalRange(%s) moved the range to %s", r, got)
		}
	}
	if calls != 0 {
		t.Errorf("got %d notifications for invalid ranges, want 0", calls)
	}
}

func TestTimeScaleNotifiesOncePerChange(t *testing.T) {
	ts := NewTimeScale(nil)
	ts.SetPointCount(100)
	calls := 0
	ts.SubscribeVisibleLogicalRangeChange(func(rangesel.LogicalRange) { calls++ })

	ts.SetVisibleLogicalRange(lr(10, 20))
	ts.SetVisibleLogicalRange(lr(10, 20))
	ts.SetVisibleLogicalRange(lr(math.NaN(), 20))
	if calls != 1 {
		t.Errorf("got %d notifications, want 1", calls)
	}
}

func TestTimeScaleReentrantSet(t *testing.T) {
	ts := NewTimeScale(nil)
	ts.SetPointCount(100)
	var seen []rangesel.LogicalRange
	ts.SubscribeVisibleLogicalRangeChange(func(r rangesel.LogicalRange) {
		seen = append(seen, r)
		// A subscriber adjusting the range must not loop back into itself
		ts.SetVisibleLogicalRange(lr(r.From+1, r.To+1))
	})

	ts.SetVisibleLogicalRange(lr(10, 20))
	if len(seen) != 1 {
		t.Fatalf("got %d notifications, want 1", len(seen))
	}
	if got := ts.VisibleLogicalRange(); got != lr(11, 21) {
		t.Errorf("VisibleLogicalRange() = %s, want the stored 11..21", got)
	}
}

func TestTimeScaleUnsubscribe(t *testing.T) {
	ts := NewTimeScale(nil)
	ts.SetPointCount(10)
	a, b := 0, 0
	unsubA := ts.SubscribeVisibleLogicalRangeChange(func(rangesel.LogicalRange) { a++ })
	ts.SubscribeVisibleLogicalRangeChange(func(rangesel.LogicalRange) { b++ })

	unsubA()
	unsubA()
	ts.SetVisibleLogicalRange(lr(2, 6))
	if a != 0 || b != 1 {
		t.Errorf("calls after unsubscribe = %d, %d, want 0, 1", a, b)
	}
}

func TestTimeScaleZoomAndScroll(t *testing.T) {
	ts := NewTimeScale(nil)
	ts.SetPointCount(100)

	ts.ZoomIn()
	if got := ts.VisibleLogicalRange(); got != lr(25, 75) {
		t.Errorf("ZoomIn() -> %s, want 25..75", got)
	}
	ts.ScrollBy(10)
	if got := ts.VisibleLogicalRange(); got != lr(35, 85) {
		t.Errorf("ScrollBy(10) -> %s, want 35..85", got)
	}
	ts.ScrollBy(1000)
	if got := ts.VisibleLogicalRange(); got != lr(50, 100) {
		t.Errorf("ScrollBy(1000) -> %s, want 50..100", got)
	}
	ts.ScrollBy(-1000)
	if got := ts.VisibleLogicalRange(); got != lr(0, 50) {
		t.Errorf("ScrollBy(-1000) -> %s, want 0..50", got)
	}
	ts.ZoomOut()
	ts.ZoomOut()
	if got := ts.VisibleLogicalRange(); got != lr(0, 100) {
		t.Errorf("ZoomOut() twice -> %s, want 0..100", got)
	}

	for i := 0; i < 20; i++ {
		ts.ZoomIn()
	}
	if w := ts.VisibleLogicalRange().Width(); math.Abs(w-MinVisiblePoints) > 1e-9 {
		t.Errorf("width after zooming in = %v, want %v", w, MinVisiblePoints)
	}

	ts.SetVisibleLogicalRange(lr(10, 20))
	ts.FitContent()
	if got := ts.VisibleLogicalRange(); got != lr(0, 100) {
		t.Errorf("FitContent() -> %s, want 0..100", got)
	}
}

func TestTimeScaleIndexAt(t *testing.T) {
	ts := NewTimeScale(nil)
	if _, ok := ts.IndexAt(0.5); ok {
		t.Error("IndexAt() on an empty scale reported ok")
	}

	ts.SetPointCount(10)
	ts.SetVisibleLogicalRange(lr(2, 6))
	tests := []struct {
		frac float64
		want int
		ok   bool
	}{
		{0, 2, true},
		{0.3, 3, true},
		{0.99, 5, true},
		{1, 5, true},
		{-0.1, 0, false},
		{1.1, 0, false},
	}
	for _, tt := range tests {
		got, ok := ts.IndexAt(tt.frac)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("IndexAt(%v) = %d, %v, want %d, %v", tt.frac, got, ok, tt.want, tt.ok)
		}
	}

	from, to := ts.VisibleIndices()
	if from != 2 || to != 6 {
		t.Errorf("VisibleIndices() = %d, %d, want 2, 6", from, to)
	}
}
