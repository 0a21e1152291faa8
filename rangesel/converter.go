package rangesel

import (
	"errors"
	"fmt"
	"math"
)

// DefaultMaxPointPerPixel caps how many points the main chart may draw per pixel.
// 1000 pixels can display at most 1770 points.
const DefaultMaxPointPerPixel = 1770.0 / 1000.0

var (
	// ErrNoPoints is returned when there is no data to map onto
	ErrNoPoints = errors.New("rangesel: no data points")
	// ErrInvalidTrack is returned for a non-positive track width
	ErrInvalidTrack = errors.New("rangesel: track width must be positive")
	// ErrInvalidRange is returned for non-finite or inverted inputs
	ErrInvalidRange = errors.New("rangesel: invalid range")
)

// LogicalRange is a viewport expressed in fractional data point indices
type LogicalRange struct {
	From float64
	To   float64
}

// Width returns the number of points covered by the range
func (r LogicalRange) Width() float64 {
	return r.To - r.From
}

// Validate returns ErrInvalidRange when either end is non-finite or From > To
func (r LogicalRange) Validate() error {
	if !finite(r.From) || !finite(r.To) || r.From > r.To {
		return fmt.Errorf("%w: %v..%v", ErrInvalidRange, r.From, r.To)
	}
	return nil
}

func (r LogicalRange) String() string {
	return fmt.Sprintf("%.2f..%.2f", r.From, r.To)
}

// Converter maps between selector insets and logical ranges for one
// track width and point count
type Converter struct {
	trackWidth       float64
	pointCount       int
	maxPointPerPixel float64
}

// NewConverter returns a converter, or an error when either dimension is unusable
func NewConverter(trackWidth float64, pointCount int) (Converter, error) {
	if !(trackWidth > 0) || math.IsInf(trackWidth, 0) {
		return Converter{}, ErrInvalidTrack
	}
	if pointCount <= 0 {
		return Converter{}, ErrNoPoints
	}
	return Converter{
		trackWidth:       trackWidth,
		pointCount:       pointCount,
		maxPointPerPixel: DefaultMaxPointPerPixel,
	}, nil
}

// WithMaxPointPerPixel returns a copy using a different density cap
func (c Converter) WithMaxPointPerPixel(v float64) Converter {
	if v > 0 && !math.IsInf(v, 0) {
		c.maxPointPerPixel = v
	}
	return c
}

// PointCount returns the number of points the converter maps onto
func (c Converter) PointCount() int {
	return c.pointCount
}

// PixelsPerPoint returns the track pixels occupied by a single data point
func (c Converter) PixelsPerPoint() float64 {
	return c.trackWidth / float64(c.pointCount)
}

// Density returns the points per main chart pixel shown by a window px wide.
// The main chart is drawn over the same width as the track.
func (c Converter) Density(px float64) float64 {
	return px / c.PixelsPerPoint() / c.trackWidth
}

// MaxWindowWidth returns the widest selector window that keeps the main
// chart within the density cap
func (c Converter) MaxWindowWidth() float64 {
	return c.maxPointPerPixel * c.trackWidth * c.trackWidth / float64(c.pointCount)
}

// ToLogical converts selector insets into a logical range clamped to [0, pointCount]
func (c Converter) ToLogical(left, right float64) (LogicalRange, error) {
	if c.pointCount <= 0 {
		return LogicalRange{}, ErrNoPoints
	}
	if !finite(left) || !finite(right) || left < 0 || right < 0 || left+right > c.trackWidth+epsilon {
		return LogicalRange{}, fmt.Errorf("%w: insets %v, %v", ErrInvalidRange, left, right)
	}
	ppp := c.PixelsPerPoint()
	n := float64(c.pointCount)
	from := clamp(left/ppp, 0, n)
	to := clamp(n-right/ppp, 0, n)
	return LogicalRange{From: from, To: to}, nil
}

// ToPixels converts a logical range into selector insets clamped to [0, trackWidth]
func (c Converter) ToPixels(from, to float64) (RangeState, error) {
	if c.pointCount <= 0 {
		return RangeState{}, ErrNoPoints
	}
	if err := (LogicalRange{From: from, To: to}).Validate(); err != nil {
		return RangeState{}, err
	}
	ppp := c.PixelsPerPoint()
	return RangeState{
		LeftInset:  clamp(ppp*from, 0, c.trackWidth),
		RightInset: clamp(c.trackWidth-ppp*to, 0, c.trackWidth),
	}, nil
}

// epsilon absorbs rounding when insets were derived from a logical range
const epsilon = 1e-9

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
