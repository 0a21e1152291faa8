// Package market loads chart points for one asset from the CoinMarketCap
// data API and reshapes them into an ascending series.
package market

import (
	"fmt"
	"strings"
	"time"
)

// DataPoint is one sample of the chart. Points are ascending by Time and
// never modified after a load.
type DataPoint struct {
	Time           int64 // unix seconds
	Value          float64
	Volume         float64
	SecondaryValue float64
}

// Timestamp returns the point time in UTC
func (p DataPoint) Timestamp() time.Time {
	return time.Unix(p.Time, 0).UTC()
}

// TimeRange selects how much history the API returns
type TimeRange string

const (
	Range1D  TimeRange = "1D"
	Range1M  TimeRange = "1M"
	Range3M  TimeRange = "3M"
	Range1Y  TimeRange = "1Y"
	RangeYTD TimeRange = "YTD"
	RangeAll TimeRange = "ALL"
)

// Ranges lists the selectable ranges in menu order
var Ranges = []TimeRange{Range1D, Range1M, Range3M, Range1Y, RangeYTD, RangeAll}

// ParseRange accepts a range name case-insensitively
func ParseRange(s string) (TimeRange, error) {
	up := TimeRange(strings.ToUpper(strings.TrimSpace(s)))
	for _, r := range Ranges {
		if r == up {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown time range %q (want one of 1D, 1M, 3M, 1Y, YTD, ALL)", s)
}

// Index returns the position of r in Ranges, or -1
func (r TimeRange) Index() int {
	for i, v := range Ranges {
		if v == r {
			return i
		}
	}
	return -1
}

func (r TimeRange) String() string {
	return string(r)
}
