package ui

import (
	"math"

	"github.com/cornish/pricescope/rangesel"
)

// TrackScale maps between minimap columns and selector track pixels. The
// track keeps its configured pixel width whatever the terminal size.
type TrackScale struct {
	Cols       int
	TrackWidth float64
}

// PixelsPerColumn returns the track pixels covered by one column
func (t TrackScale) PixelsPerColumn() float64 {
	if t.Cols <= 0 {
		return 0
	}
	return t.TrackWidth / float64(t.Cols)
}

// PixelAt returns the track pixel at the center of a column, clamped to the track
func (t TrackScale) PixelAt(col int) float64 {
	if t.Cols <= 0 {
		return 0
	}
	px := (float64(col) + 0.5) * t.PixelsPerColumn()
	return math.Max(0, math.Min(px, t.TrackWidth))
}

// ColumnAt returns the column containing a track pixel, in [0, Cols]
func (t TrackScale) ColumnAt(px float64) int {
	ppc := t.PixelsPerColumn()
	if ppc <= 0 || math.IsNaN(px) {
		return 0
	}
	col := int(math.Floor(px/ppc + 1e-9))
	if col < 0 {
		return 0
	}
	if col > t.Cols {
		return t.Cols
	}
	return col
}

// Window returns the first and one-past-last columns covered by the selector
func (t TrackScale) Window(state rangesel.RangeState) (int, int) {
	start := t.ColumnAt(state.LeftInset)
	end := t.ColumnAt(t.TrackWidth - state.RightInset)
	if start >= t.Cols && t.Cols > 0 {
		start = t.Cols - 1
	}
	// A collapsed window still shows as one column
	if end <= start {
		end = start + 1
	}
	return start, end
}

// SelectorOverlay shades the minimap outside the selected window and draws
// the drag handles on its edges
type SelectorOverlay struct {
	styles Styles
	box    BoxChars
}

// NewSelectorOverlay creates an overlay with the given styles and glyphs
func NewSelectorOverlay(styles Styles, box BoxChars) *SelectorOverlay {
	return &SelectorOverlay{styles: styles, box: box}
}

// SetStyles updates the styles for runtime theme changes
func (o *SelectorOverlay) SetStyles(styles Styles) {
	o.styles = styles
}

// Apply draws the selector onto a minimap grid. active highlights the
// handles while a drag is in progress.
func (o *SelectorOverlay) Apply(g *Grid, scale TrackScale, state rangesel.RangeState, active bool) {
	if g == nil || g.Width() == 0 {
		return
	}
	colors := o.styles.Theme.Chart
	start, end := scale.Window(state)

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if x < start || x >= end {
				g.SetFg(x, y, colors.SelectorDim)
				continue
			}
			g.SetBg(x, y, colors.SelectorBg)
		}
	}

	handleColor := colors.Handle
	if active {
		handleColor = colors.Crosshair
	}
	for y := 0; y < g.Height(); y++ {
		for _, x := range []int{start, end - 1} {
			if !g.In(x, y) {
				continue
			}
			g.SetCell(x, y, Cell{Ch: o.box.Handle, Fg: handleColor, Bg: colors.SelectorBg, Bold: active})
		}
	}
}
