package chart

import (
	"fmt"
	"math"
	"strings"
)

// PriceScaleMode selects linear or logarithmic price mapping
type PriceScaleMode int

const (
	ModeNormal PriceScaleMode = iota
	ModeLogarithmic
)

func (m PriceScaleMode) String() string {
	if m == ModeLogarithmic {
		return "LOG"
	}
	return "LIN"
}

// PriceScale maps values to vertical positions
type PriceScale struct {
	Mode PriceScaleMode
	Min  float64
	Max  float64
}

// NewPriceScale creates a linear scale over [0, 1]
func NewPriceScale() *PriceScale {
	return &PriceScale{Min: 0, Max: 1}
}

// Fit sets the bounds to the extent of values. Values that the current mode
// cannot show (non-positive in log mode, non-finite) are skipped.
func (p *PriceScale) Fit(values []SeriesPoint) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if !p.valid(v.Value) {
			continue
		}
		lo = math.Min(lo, v.Value)
		hi = math.Max(hi, v.Value)
	}
	if math.IsInf(lo, 1) {
		p.Min, p.Max = 0, 1
		if p.Mode == ModeLogarithmic {
			p.Min = 1
			p.Max = 10
		}
		return
	}
	if lo == hi {
		// A flat line sits in the middle of the plot
		pad := math.Abs(lo) * 0.05
		if pad == 0 {
			pad = 1
		}
		lo -= pad
		hi += pad
		if p.Mode == ModeLogarithmic && lo <= 0 {
			lo = hi / 2
		}
	}
	p.Min, p.Max = lo, hi
}

func (p *PriceScale) valid(v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	return p.Mode != ModeLogarithmic || v > 0
}

func (p *PriceScale) transform(v float64) float64 {
	if p.Mode == ModeLogarithmic {
		return math.Log10(v)
	}
	return v
}

// Position returns v as a fraction of the scale height from the bottom (0)
// to the top (1). ok is false when v cannot be shown in this mode.
func (p *PriceScale) Position(v float64) (float64, bool) {
	if !p.valid(v) {
		return 0, false
	}
	lo, hi := p.transform(p.Min), p.transform(p.Max)
	if hi == lo {
		return 0.5, true
	}
	return (p.transform(v) - lo) / (hi - lo), true
}

// ValueAt is the inverse of Position
func (p *PriceScale) ValueAt(frac float64) float64 {
	lo, hi := p.transform(p.Min), p.transform(p.Max)
	v := lo + frac*(hi-lo)
	if p.Mode == ModeLogarithmic {
		return math.Pow(10, v)
	}
	return v
}

// Ticks returns n values evenly spaced in screen space from bottom to top
func (p *PriceScale) Ticks(n int) []float64 {
	if n < 2 {
		return []float64{p.ValueAt(0.5)}
	}
	ticks := make([]float64, n)
	for i := range ticks {
		ticks[i] = p.ValueAt(float64(i) / float64(n-1))
	}
	return ticks
}

// FormatPrice formats a price for axis labels and the tooltip, with more
// decimals for small values
func FormatPrice(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1000:
		return groupThousands(fmt.Sprintf("%.2f", v))
	case abs >= 1:
		return fmt.Sprintf("%.2f", v)
	case abs >= 0.01:
		return fmt.Sprintf("%.4f", v)
	case abs == 0:
		return "0.00"
	default:
		return fmt.Sprintf("%.8f", v)
	}
}

// FormatVolume abbreviates large values with K, M or B
func FormatVolume(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1e9:
		return fmt.Sprintf("%.2fB", v/1e9)
	case abs >= 1e6:
		return fmt.Sprintf("%.2fM", v/1e6)
	case abs >= 1e3:
		return fmt.Sprintf("%.2fK", v/1e3)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}

// groupThousands inserts commas into the integer part of a formatted number
func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	var sb strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(r)
	}
	return sign + sb.String() + frac
}
