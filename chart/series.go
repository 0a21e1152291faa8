package chart

import (
	"github.com/cornish/pricescope/market"
)

// SeriesPoint is one value of a series at a unix time
type SeriesPoint struct {
	Time  int64
	Value float64
}

// LineSeries is a price line drawn against one price scale
type LineSeries struct {
	Title string
	Color string
	Scale *PriceScale
	data  []SeriesPoint
}

// NewLineSeries creates an empty line series with its own price scale
func NewLineSeries(title, color string) *LineSeries {
	return &LineSeries{Title: title, Color: color, Scale: NewPriceScale()}
}

// SetData replaces the series data
func (s *LineSeries) SetData(data []SeriesPoint) {
	s.data = data
}

// Data returns the series data
func (s *LineSeries) Data() []SeriesPoint {
	return s.data
}

// HistogramSeries is drawn as bars rising from the bottom of the plot,
// occupying the part of the plot below MarginTop
type HistogramSeries struct {
	Title     string
	Color     string
	MarginTop float64
	data      []SeriesPoint
}

// NewHistogramSeries creates an empty histogram using the bottom 15% of the plot
func NewHistogramSeries(title, color string) *HistogramSeries {
	return &HistogramSeries{Title: title, Color: color, MarginTop: 0.85}
}

// SetData replaces the series data
func (s *HistogramSeries) SetData(data []SeriesPoint) {
	s.data = data
}

// Data returns the series data
func (s *HistogramSeries) Data() []SeriesPoint {
	return s.data
}

// Split reshapes loaded points into the price, volume and secondary series
func Split(points []market.DataPoint) (price, volume, secondary []SeriesPoint) {
	price = make([]SeriesPoint, len(points))
	volume = make([]SeriesPoint, len(points))
	secondary = make([]SeriesPoint, len(points))
	for i, p := range points {
		price[i] = SeriesPoint{Time: p.Time, Value: p.Value}
		volume[i] = SeriesPoint{Time: p.Time, Value: p.Volume}
		secondary[i] = SeriesPoint{Time: p.Time, Value: p.SecondaryValue}
	}
	return price, volume, secondary
}

// Reduce keeps every odd-indexed point. The minimap draws the reduced series.
func Reduce(points []SeriesPoint) []SeriesPoint {
	out := make([]SeriesPoint, 0, len(points)/2)
	for i := 1; i < len(points); i += 2 {
		out = append(out, points[i])
	}
	return out
}
