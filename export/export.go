// Package export renders the visible part of the chart to a PNG screenshot.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cornish/pricescope/config"
	"github.com/cornish/pricescope/market"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ErrNotEnoughPoints is returned when fewer than two points are visible
var ErrNotEnoughPoints = errors.New("export: need at least two points")

// ErrVolumeMismatch is returned when volume bars have unequal x and y counts
var ErrVolumeMismatch = errors.New("export: volume x and y counts differ")

// Watermark position from the top-left corner of the image
const (
	WatermarkX = 80
	WatermarkY = 20
)

// volumeShare is the fraction of the plot height used by volume
const volumeShare = 0.15

// Screenshots always use the light web palette on a white background
var (
	priceColor     = drawing.ColorFromHex("16c784")
	secondaryColor = drawing.ColorFromHex("FFBB1F")
	volumeColor    = drawing.ColorFromHex("CFD6E4")
	axisColor      = drawing.ColorFromHex("808A9D")
	watermarkColor = color.RGBA{R: 0xA6, G: 0xB0, B: 0xC3, A: 0xFF}
)

// Options controls a screenshot
type Options struct {
	Width     int
	Height    int
	Asset     string
	Secondary string
	Watermark string
	LogScale  bool
	Location  *time.Location
}

// OptionsFromConfig builds options from the export and API config
func OptionsFromConfig(cfg *config.Config, logScale bool) Options {
	return Options{
		Width:     cfg.Export.Width,
		Height:    cfg.Export.Height,
		Asset:     cfg.API.AssetSymbol,
		Secondary: cfg.API.SecondarySymbol,
		Watermark: cfg.Export.Watermark,
		LogScale:  logScale,
	}
}

// Render draws points onto a white image with the watermark in the top-left
func Render(points []market.DataPoint, opts Options) (image.Image, error) {
	if len(points) < 2 {
		return nil, ErrNotEnoughPoints
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("export: invalid size %dx%d", opts.Width, opts.Height)
	}
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}

	n := len(points)
	times := make([]time.Time, n)
	xs := make([]float64, n)
	price := make([]float64, n)
	secondary := make([]float64, n)
	volume := make([]float64, n)
	for i, p := range points {
		times[i] = time.Unix(p.Time, 0).In(loc)
		xs[i] = chart.TimeToFloat64(times[i])
		price[i] = scaleValue(p.Value, opts.LogScale)
		secondary[i] = scaleValue(p.SecondaryValue, opts.LogScale)
		volume[i] = p.Volume
	}

	priceRange := extent(price)
	secondaryRange := extent(secondary)

	// Volume bars share the left axis, squeezed into the bottom of its range
	maxVol := 0.0
	for _, v := range volume {
		maxVol = math.Max(maxVol, v)
	}
	span := priceRange.Max - priceRange.Min
	for i, v := range volume {
		frac := 0.0
		if maxVol > 0 {
			frac = v / maxVol
		}
		volume[i] = priceRange.Min + frac*volumeShare*span
	}

	formatter := priceFormatter(opts.LogScale)
	graph := chart.Chart{
		Width:  opts.Width,
		Height: opts.Height,
		Background: chart.Style{
			FillColor: drawing.ColorWhite,
			Padding:   chart.Box{Top: 44, Left: 10, Right: 10, Bottom: 10},
		},
		Canvas: chart.Style{
			FillColor: drawing.ColorWhite,
		},
		XAxis: chart.XAxis{
			Style:          chart.Style{FontColor: axisColor, FontSize: 8},
			ValueFormatter: chart.TimeValueFormatterWithFormat(timeLayout(points)),
		},
		YAxis: chart.YAxis{
			Name:           opts.Asset,
			Style:          chart.Style{FontColor: priceColor, FontSize: 8},
			Range:          priceRange,
			ValueFormatter: formatter,
		},
		YAxisSecondary: chart.YAxis{
			Name:           opts.Secondary,
			Style:          chart.Style{FontColor: secondaryColor, FontSize: 8},
			Range:          secondaryRange,
			ValueFormatter: formatter,
		},
		Series: []chart.Series{
			volumeBars{
				Name:    "Volume",
				XValues: xs,
				YValues: volume,
				Style:   chart.Style{FillColor: volumeColor},
			},
			chart.TimeSeries{
				Name:    opts.Secondary,
				XValues: times,
				YValues: secondary,
				YAxis:   chart.YAxisSecondary,
				Style:   chart.Style{StrokeColor: secondaryColor, StrokeWidth: 2},
			},
			chart.TimeSeries{
				Name:    opts.Asset,
				XValues: times,
				YValues: price,
				Style:   chart.Style{StrokeColor: priceColor, StrokeWidth: 2},
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("export: render chart: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("export: decode chart: %w", err)
	}
	return drawWatermark(img, opts.Watermark), nil
}

// drawWatermark writes text with its top-left corner at (WatermarkX, WatermarkY)
func drawWatermark(img image.Image, text string) image.Image {
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)
	if strings.TrimSpace(text) == "" {
		return rgba
	}
	face := basicfont.Face7x13
	dr := &font.Drawer{
		Dst:  rgba,
		Src:  image.NewUniform(watermarkColor),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(b.Min.X + WatermarkX),
			Y: fixed.I(b.Min.Y+WatermarkY) + face.Metrics().Ascent,
		},
	}
	dr.DrawString(text)
	return rgba
}

// Encode writes img as PNG
func Encode(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// Filename returns "<asset>-<range>-<timestamp>.png"
func Filename(asset string, r market.TimeRange, now time.Time) string {
	asset = strings.ToLower(strings.TrimSpace(asset))
	if asset == "" {
		asset = "chart"
	}
	return fmt.Sprintf("%s-%s-%s.png", asset, strings.ToLower(r.String()), now.Format("20060102-150405"))
}

// Save renders points and writes the PNG into dir, creating it if needed.
// Returns the path written.
func Save(dir string, points []market.DataPoint, r market.TimeRange, opts Options, now time.Time) (string, error) {
	img, err := Render(points, opts)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("export: create %s: %w", dir, err)
	}
	path := filepath.Join(dir, Filename(opts.Asset, r, now))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("export: %w", err)
	}
	if err := Encode(f, img); err != nil {
		f.Close()
		return "", fmt.Errorf("export: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("export: close %s: %w", path, err)
	}
	return path, nil
}

// scaleValue maps values onto a log10 axis when requested. Values a log
// axis cannot show are pinned to its floor.
func scaleValue(v float64, logScale bool) float64 {
	if !logScale {
		return v
	}
	if v <= 0 {
		return 0
	}
	return math.Log10(v)
}

func priceFormatter(logScale bool) chart.ValueFormatter {
	return func(v interface{}) string {
		f, ok := v.(float64)
		if !ok {
			return ""
		}
		if logScale {
			f = math.Pow(10, f)
		}
		return formatAxis(f)
	}
}

func formatAxis(v float64) string {
	switch a := math.Abs(v); {
	case a >= 100:
		return fmt.Sprintf("%.0f", v)
	case a >= 1:
		return fmt.Sprintf("%.2f", v)
	default:
		return fmt.Sprintf("%.4f", v)
	}
}

// extent returns the padded range of values
func extent(values []float64) *chart.ContinuousRange {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if math.IsInf(lo, 1) {
		return &chart.ContinuousRange{Min: 0, Max: 1}
	}
	pad := (hi - lo) * 0.05
	if pad == 0 {
		pad = math.Max(math.Abs(lo)*0.05, 1)
	}
	return &chart.ContinuousRange{Min: lo - pad, Max: hi + pad}
}

func timeLayout(points []market.DataPoint) string {
	span := points[len(points)-1].Time - points[0].Time
	switch {
	case span <= 2*24*60*60:
		return "15:04"
	case span <= 365*24*60*60:
		return "Jan 02"
	default:
		return "Jan 2006"
	}
}
