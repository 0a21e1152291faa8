package chart

import (
	"fmt"
	"strings"
	"time"

	"github.com/cornish/pricescope/config"
	"github.com/cornish/pricescope/market"
	"github.com/cornish/pricescope/ui"
)

// Date and time layouts of the crosshair readout
const (
	ReadoutDateLayout = "Mon. Jan 02, 2006"
	ReadoutTimeLayout = "15:04:05 UTC-07:00"
)

// Readout describes the point under the crosshair
type Readout struct {
	Index int
	Point market.DataPoint
	Date  string
	Time  string
}

// NewReadout builds the readout for points[i] in the given zone
func NewReadout(points []market.DataPoint, i int, loc *time.Location) (Readout, bool) {
	if i < 0 || i >= len(points) {
		return Readout{}, false
	}
	if loc == nil {
		loc = time.Local
	}
	p := points[i]
	t := time.Unix(p.Time, 0).In(loc)
	return Readout{
		Index: i,
		Point: p,
		Date:  t.Format(ReadoutDateLayout),
		Time:  t.Format(ReadoutTimeLayout),
	}, true
}

// Rows returns the tooltip rows for the readout
func (r Readout) Rows(colors config.ChartColors, secondary string) []ui.TooltipRow {
	return []ui.TooltipRow{
		{Color: colors.Price, Label: "Price:", Value: "$" + FormatPrice(r.Point.Value)},
		{Color: colors.Secondary, Label: fmt.Sprintf("Price (%s):", secondary), Value: "$" + FormatPrice(r.Point.SecondaryValue)},
		{Color: colors.Volume, Label: "Volume:", Value: "$" + FormatVolume(r.Point.Volume)},
	}
}

// String formats the readout as plain text for the clipboard
func (r Readout) String(asset, secondary string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s %s\n", asset, r.Date, r.Time)
	fmt.Fprintf(&sb, "Price: $%s\n", FormatPrice(r.Point.Value))
	fmt.Fprintf(&sb, "Price (%s): $%s\n", secondary, FormatPrice(r.Point.SecondaryValue))
	fmt.Fprintf(&sb, "Volume: $%s", FormatVolume(r.Point.Volume))
	return sb.String()
}

// Summary describes the points in [from, to) as plain text
func Summary(points []market.DataPoint, from, to int, asset string, loc *time.Location) string {
	if from < 0 {
		from = 0
	}
	if to > len(points) {
		to = len(points)
	}
	if to <= from {
		return fmt.Sprintf("%s: no data", asset)
	}
	if loc == nil {
		loc = time.Local
	}
	first, last := points[from], points[to-1]
	lo, hi := first.Value, first.Value
	volume := 0.0
	for _, p := range points[from:to] {
		lo = min(lo, p.Value)
		hi = max(hi, p.Value)
		volume += p.Volume
	}
	change := 0.0
	if first.Value != 0 {
		change = (last.Value - first.Value) / first.Value * 100
	}
	return fmt.Sprintf("%s %s to %s: open $%s close $%s (%+.2f%%) low $%s high $%s volume $%s, %d points",
		asset,
		time.Unix(first.Time, 0).In(loc).Format(time.DateTime),
		time.Unix(last.Time, 0).In(loc).Format(time.DateTime),
		FormatPrice(first.Value), FormatPrice(last.Value), change,
		FormatPrice(lo), FormatPrice(hi), FormatVolume(volume), to-from)
}
