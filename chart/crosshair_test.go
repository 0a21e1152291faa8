package chart

import (
	"strings"
	"testing"
	"time"

	"github.com/cornish/pricescope/config"
	"github.com/cornish/pricescope/market"
)

func TestNewReadout(t *testing.T) {
	pts := []market.DataPoint{
		{Time: testStart, Value: 1234.5, Volume: 9.87e9, SecondaryValue: 0.0321},
	}

	r, ok := NewReadout(pts, 0, time.UTC)
	if !ok {
		t.Fatal("NewReadout() not ok")
	}
	if r.Date != "Fri. Jan 01, 2021" {
		t.Errorf("Date = %q, want %q", r.Date, "Fri. Jan 01, 2021")
	}
	if r.Time != "00:00:00 UTC+00:00" {
		t.Errorf("Time = %q, want %q", r.Time, "00:00:00 UTC+00:00")
	}

	rows := r.Rows(config.DefaultTheme().Chart, "BTC")
	want := []struct{ label, value string }{
		{"Price:", "$1,234.50"},
		{"Price (BTC):", "$0.0321"},
		{"Volume:", "$9.87B"},
	}
	for i, w := range want {
		if rows[i].Label != w.label || rows[i].Value != w.value {
			t.Errorf("row %d = %q %q, want %q %q", i, rows[i].Label, rows[i].Value, w.label, w.value)
		}
	}

	text := r.String("ETH", "BTC")
	if !strings.HasPrefix(text, "ETH Fri. Jan 01, 2021") || !strings.Contains(text, "Volume: $9.87B") {
		t.Errorf("String() = %q", text)
	}

	if _, ok := NewReadout(pts, 1, nil); ok {
		t.Error("NewReadout() out of range reported ok")
	}
}

func TestSummary(t *testing.T) {
	pts := []market.DataPoint{
		{Time: testStart, Value: 100, Volume: 1000},
		{Time: testStart + 60, Value: 90, Volume: 1000},
		{Time: testStart + 120, Value: 110, Volume: 1000},
	}

	got := Summary(pts, 0, 3, "ETH", time.UTC)
	for _, want := range []string{"ETH 2021-01-01 00:00:00", "(+10.00%)", "low $90.00", "high $110.00", "volume $3.00K", "3 points"} {
		if !strings.Contains(got, want) {
			t.Errorf("Summary() = %q, missing %q", got, want)
		}
	}

	if got := Summary(pts, 2, 2, "ETH", nil); got != "ETH: no data" {
		t.Errorf("empty Summary() = %q", got)
	}
}
