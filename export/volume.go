package export

import (
	"github.com/wcharczuk/go-chart/v2"
)

// volumeBars draws one filled bar per point from the bottom of the canvas.
// It sits first in the series list so the price lines are drawn over it.
type volumeBars struct {
	Name    string
	XValues []float64
	YValues []float64
	Style   chart.Style
}

var _ chart.Series = volumeBars{}

// GetName implements chart.Series
func (v volumeBars) GetName() string { return v.Name }

// GetYAxis implements chart.Series
func (v volumeBars) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }

// GetStyle implements chart.Series
func (v volumeBars) GetStyle() chart.Style { return v.Style }

// Validate implements chart.Series
func (v volumeBars) Validate() error {
	if len(v.XValues) != len(v.YValues) {
		return ErrVolumeMismatch
	}
	return nil
}

// Render implements chart.Series
func (v volumeBars) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, _ chart.Style) {
	n := len(v.XValues)
	if n == 0 {
		return
	}
	// Leave a one pixel gap between bars when there is room for it
	w := max(1, canvasBox.Width()/n-1)
	r.SetFillColor(v.Style.FillColor)
	r.SetStrokeColor(v.Style.FillColor)
	r.SetStrokeWidth(0)
	for i, x := range v.XValues {
		top := canvasBox.Bottom - yrange.Translate(v.YValues[i])
		if top >= canvasBox.Bottom {
			continue
		}
		top = max(top, canvasBox.Top)
		left := canvasBox.Left + xrange.Translate(x) - w/2
		right := min(left+w, canvasBox.Right)
		left = max(left, canvasBox.Left)
		r.MoveTo(left, top)
		r.LineTo(right, top)
		r.LineTo(right, canvasBox.Bottom)
		r.LineTo(left, canvasBox.Bottom)
		r.Close()
		r.Fill()
	}
}
