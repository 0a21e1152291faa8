package export

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cornish/pricescope/config"
	"github.com/cornish/pricescope/market"
)

func testPoints(n int) []market.DataPoint {
	out := make([]market.DataPoint, n)
	for i := range out {
		out[i] = market.DataPoint{
			Time:           1609459200 + int64(i)*3600,
			Value:          2000 + float64(i%7)*15,
			Volume:         1e9 + float64(i)*1e7,
			SecondaryValue: 30000 - float64(i)*10,
		}
	}
	return out
}

func testOptions() Options {
	return Options{
		Width:     640,
		Height:    320,
		Asset:     "ETH",
		Secondary: "BTC",
		Watermark: "pricescope",
		Location:  time.UTC,
	}
}

func TestRenderProducesPNGOfRequestedSize(t *testing.T) {
	for _, logScale := range []bool{false, true} {
		opts := testOptions()
		opts.LogScale = logScale
		img, err := Render(testPoints(48), opts)
		if err != nil {
			t.Fatalf("Render(log=%v) error: %v", logScale, err)
		}

		var buf bytes.Buffer
		if err := Encode(&buf, img); err != nil {
			t.Fatalf("Encode() error: %v", err)
		}
		cfg, err := png.DecodeConfig(&buf)
		if err != nil {
			t.Fatalf("output is not a PNG: %v", err)
		}
		if cfg.Width != 640 || cfg.Height != 320 {
			t.Errorf("PNG size = %dx%d, want 640x320", cfg.Width, cfg.Height)
		}
	}
}

func TestRenderDrawsWatermark(t *testing.T) {
	opts := testOptions()
	opts.Watermark = ""
	plain, err := Render(testPoints(48), opts)
	if err != nil {
		t.Fatal(err)
	}
	marked, err := Render(testPoints(48), testOptions())
	if err != nil {
		t.Fatal(err)
	}

	changed := 0
	for y := WatermarkY; y < WatermarkY+13; y++ {
		for x := WatermarkX; x < WatermarkX+7*len("pricescope"); x++ {
			if plain.At(x, y) != marked.At(x, y) {
				changed++
			}
		}
	}
	if changed == 0 {
		t.Error("watermark did not change any pixel in its box")
	}
}

func TestRenderDrawsVolumeBars(t *testing.T) {
	countVolume := func(points []market.DataPoint) int {
		img, err := Render(points, testOptions())
		if err != nil {
			t.Fatal(err)
		}
		want := color.RGBAModel.Convert(volumeColor)
		n := 0
		b := img.Bounds()
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				if color.RGBAModel.Convert(img.At(x, y)) == want {
					n++
				}
			}
		}
		return n
	}

	quiet := testPoints(48)
	for i := range quiet {
		quiet[i].Volume = 0
	}
	if n := countVolume(quiet); n > 10 {
		t.Errorf("zero volume drew %d volume pixels", n)
	}
	// 48 bars, each several pixels wide and tall
	if n := countVolume(testPoints(48)); n < 1000 {
		t.Errorf("volume bars cover %d pixels, want at least 1000", n)
	}
}

func TestVolumeBarsValidate(t *testing.T) {
	bars := volumeBars{XValues: []float64{1, 2}, YValues: []float64{1}}
	if err := bars.Validate(); !errors.Is(err, ErrVolumeMismatch) {
		t.Errorf("Validate() = %v, want ErrVolumeMismatch", err)
	}
}

func TestRenderErrors(t *testing.T) {
	if _, err := Render(testPoints(1), testOptions()); !errors.Is(err, ErrNotEnoughPoints) {
		t.Errorf("Render(1 point) error = %v, want ErrNotEnoughPoints", err)
	}
	opts := testOptions()
	opts.Width = 0
	if _, err := Render(testPoints(10), opts); err == nil {
		t.Error("Render() with zero width succeeded")
	}
}

func TestFilename(t *testing.T) {
	now := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
	tests := []struct {
		asset string
		r     market.TimeRange
		want  string
	}{
		{"ETH", market.Range1M, "eth-1m-20240309-140507.png"},
		{" BTC ", market.RangeYTD, "btc-ytd-20240309-140507.png"},
		{"", market.RangeAll, "chart-all-20240309-140507.png"},
	}
	for _, tt := range tests {
		if got := Filename(tt.asset, tt.r, now); got != tt.want {
			t.Errorf("Filename(%q, %s) = %q, want %q", tt.asset, tt.r, got, tt.want)
		}
	}
}

func TestSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	now := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)

	path, err := Save(dir, testPoints(24), market.Range1D, testOptions(), now)
	if err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if filepath.Base(path) != "eth-1d-20240309-140507.png" {
		t.Errorf("Save() path = %q", path)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("saved file missing: %v", err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Errorf("saved file is not a PNG: %v", err)
	}
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	opts := OptionsFromConfig(cfg, true)
	if opts.Width != cfg.Export.Width || opts.Height != cfg.Export.Height {
		t.Errorf("size = %dx%d, want %dx%d", opts.Width, opts.Height, cfg.Export.Width, cfg.Export.Height)
	}
	if opts.Asset != cfg.API.AssetSymbol || !opts.LogScale {
		t.Errorf("options = %+v", opts)
	}
	if !strings.EqualFold(opts.Watermark, cfg.Export.Watermark) {
		t.Errorf("watermark = %q, want %q", opts.Watermark, cfg.Export.Watermark)
	}
}
