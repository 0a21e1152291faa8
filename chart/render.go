package chart

import (
	"math"
	"time"

	"github.com/cornish/pricescope/config"
	"github.com/cornish/pricescope/ui"
)

// Layout is the geometry of the last render, in cells
type Layout struct {
	Width  int
	Height int
	PlotX  int // first plot column, after the left axis
	PlotW  int
	PlotH  int // rows above the time axis
}

// Contains reports whether the cell (x, y) is inside the plot
func (l Layout) Contains(x, y int) bool {
	return x >= l.PlotX && x < l.PlotX+l.PlotW && y >= 0 && y < l.PlotH
}

// Renderer draws the main chart: price and secondary lines on their own
// scales, volume bars along the bottom, price axes on both sides and a time
// axis below
type Renderer struct {
	Price     *LineSeries
	Secondary *LineSeries
	Volume    *HistogramSeries

	scale     *TimeScale
	colors    config.ChartColors
	box       ui.BoxChars
	ascii     bool
	loc       *time.Location
	crosshair int // plot column, -1 when hidden
	layout    Layout
}

// NewRenderer creates a renderer drawing the range held by scale
func NewRenderer(scale *TimeScale, colors config.ChartColors, box ui.BoxChars, ascii bool) *Renderer {
	return &Renderer{
		Price:     NewLineSeries("Price", colors.Price),
		Secondary: NewLineSeries("Secondary", colors.Secondary),
		Volume:    NewHistogramSeries("Volume", colors.Volume),
		scale:     scale,
		colors:    colors,
		box:       box,
		ascii:     ascii,
		loc:       time.Local,
		crosshair: -1,
	}
}

// SetData loads the three series from one point set
func (r *Renderer) SetData(price, volume, secondary []SeriesPoint) {
	r.Price.SetData(price)
	r.Volume.SetData(volume)
	r.Secondary.SetData(secondary)
}

// SetMode switches both price scales between linear and logarithmic
func (r *Renderer) SetMode(mode PriceScaleMode) {
	r.Price.Scale.Mode = mode
	r.Secondary.Scale.Mode = mode
}

// Mode returns the price scale mode
func (r *Renderer) Mode() PriceScaleMode {
	return r.Price.Scale.Mode
}

// SetColors applies theme colors
func (r *Renderer) SetColors(colors config.ChartColors) {
	r.colors = colors
	r.Price.Color = colors.Price
	r.Secondary.Color = colors.Secondary
	r.Volume.Color = colors.Volume
}

// SetLocation sets the zone used for time labels
func (r *Renderer) SetLocation(loc *time.Location) {
	if loc != nil {
		r.loc = loc
	}
}

// SetCrosshair shows the crosshair at a plot column
func (r *Renderer) SetCrosshair(col int) {
	r.crosshair = col
}

// HideCrosshair removes the crosshair
func (r *Renderer) HideCrosshair() {
	r.crosshair = -1
}

// Layout returns the geometry of the last render
func (r *Renderer) Layout() Layout {
	return r.layout
}

// IndexAtColumn returns the point under grid column x of the last render
func (r *Renderer) IndexAtColumn(x int) (int, bool) {
	l := r.layout
	if l.PlotW <= 0 || x < l.PlotX || x >= l.PlotX+l.PlotW {
		return 0, false
	}
	frac := (float64(x-l.PlotX) + 0.5) / float64(l.PlotW)
	return r.scale.IndexAt(frac)
}

// ColumnOfIndex returns the plot column (relative to PlotX) where point i is drawn
func (r *Renderer) ColumnOfIndex(i int) int {
	vis := r.scale.VisibleLogicalRange()
	if vis.Width() <= 0 || r.layout.PlotW <= 0 {
		return -1
	}
	return int(math.Floor((float64(i) + 0.5 - vis.From) / vis.Width() * float64(r.layout.PlotW)))
}

// Render draws the chart into a width x height grid
func (r *Renderer) Render(width, height int) *ui.Grid {
	g := ui.NewGrid(width, height)
	r.layout = Layout{Width: width, Height: height}
	if width < 4 || height < 2 {
		return g
	}

	n := len(r.Price.Data())
	if n == 0 || r.scale.PointCount() == 0 {
		msg := "No data"
		g.Text((width-len(msg))/2, height/2, msg, r.colors.Axis)
		return g
	}

	from, to := r.scale.VisibleIndices()
	to = min(to, n)
	from = min(from, to)
	r.Price.Scale.Fit(r.Price.Data()[from:to])
	r.Secondary.Scale.Fit(r.Secondary.Data()[from:to])

	plotH := height - 1
	rows := tickRows(plotH)
	left := make([]string, len(rows))
	right := make([]string, len(rows))
	leftW, rightW := 0, 0
	for i, y := range rows {
		frac := rowFrac(y, plotH)
		left[i] = FormatPrice(r.Price.Scale.ValueAt(frac))
		right[i] = FormatPrice(r.Secondary.Scale.ValueAt(frac))
		leftW = max(leftW, len(left[i])+1)
		rightW = max(rightW, len(right[i])+1)
	}
	// Drop the axes rather than squeeze the plot to nothing
	if width-leftW-rightW < width/2 {
		leftW, rightW = 0, 0
	}

	r.layout = Layout{
		Width:  width,
		Height: height,
		PlotX:  leftW,
		PlotW:  width - leftW - rightW,
		PlotH:  plotH,
	}
	l := r.layout

	r.drawGrid(g, rows)
	r.drawVolume(g, from, to)
	r.drawLines(g, from, to, n)
	r.drawCrosshair(g)

	for i, y := range rows {
		if leftW > 0 {
			g.Text(leftW-1-len(left[i]), y, left[i], r.colors.Price)
		}
		if rightW > 0 {
			g.Text(l.PlotX+l.PlotW+1, y, right[i], r.colors.Secondary)
		}
	}
	r.drawTimeAxis(g, from, to)
	return g
}

// tickRows returns the rows that carry price labels and grid lines
func tickRows(plotH int) []int {
	var rows []int
	for y := 0; y < plotH; y += 4 {
		rows = append(rows, y)
	}
	return rows
}

// rowFrac returns the scale position at the center of row y
func rowFrac(y, plotH int) float64 {
	dotH := plotH * 4
	if dotH <= 1 {
		return 0.5
	}
	f := 1 - (float64(4*y)+1.5)/float64(dotH-1)
	return math.Max(0, math.Min(1, f))
}

func (r *Renderer) drawGrid(g *ui.Grid, rows []int) {
	l := r.layout
	ch := []rune(r.box.Horizontal)[0]
	if !r.ascii {
		ch = '┈'
	}
	for _, y := range rows {
		for x := l.PlotX; x < l.PlotX+l.PlotW; x++ {
			g.Set(x, y, ch, r.colors.Grid)
		}
	}
}

func (r *Renderer) drawVolume(g *ui.Grid, from, to int) {
	l := r.layout
	data := r.Volume.Data()
	if to > len(data) {
		to = len(data)
	}
	volRows := int(math.Round(float64(l.PlotH) * (1 - r.Volume.MarginTop)))
	if volRows < 1 {
		volRows = 1
	}

	cols := make([]float64, l.PlotW)
	maxVol := 0.0
	for i := from; i < to; i++ {
		col := r.ColumnOfIndex(i)
		if col < 0 || col >= l.PlotW {
			continue
		}
		v := data[i].Value
		if v > cols[col] {
			cols[col] = v
		}
		maxVol = math.Max(maxVol, v)
	}
	if maxVol <= 0 {
		return
	}

	for col, v := range cols {
		eighths := int(math.Round(v / maxVol * float64(volRows*8)))
		for k := 0; k < volRows && eighths > k*8; k++ {
			fill := min(eighths-k*8, 8)
			g.Set(l.PlotX+col, l.PlotH-1-k, r.box.Bar(float64(fill)/8), r.Volume.Color)
		}
	}
}

func (r *Renderer) drawLines(g *ui.Grid, from, to, n int) {
	l := r.layout
	canvas := ui.NewBraille(g, l.PlotX, 0, l.PlotW, l.PlotH, r.ascii)
	vis := r.scale.VisibleLogicalRange()
	// One extra point on each side keeps the line running to the plot edges
	lo := max(0, from-1)
	hi := min(n, to+1)
	r.drawLine(canvas, r.Secondary, lo, hi, vis.From, vis.Width())
	r.drawLine(canvas, r.Price, lo, hi, vis.From, vis.Width())
	canvas.Flush()
}

func (r *Renderer) drawLine(canvas *ui.Braille, s *LineSeries, lo, hi int, from, width float64) {
	data := s.Data()
	if hi > len(data) || width <= 0 {
		return
	}
	dotW, dotH := canvas.DotWidth(), canvas.DotHeight()
	havePrev := false
	var px, py int
	for i := lo; i < hi; i++ {
		pos, ok := s.Scale.Position(data[i].Value)
		if !ok {
			havePrev = false
			continue
		}
		x := int(math.Floor((float64(i) + 0.5 - from) / width * float64(dotW)))
		y := int(math.Round((1 - pos) * float64(dotH-1)))
		if havePrev {
			canvas.Line(px, py, x, y, s.Color)
		} else {
			canvas.Set(x, y, s.Color)
		}
		px, py, havePrev = x, y, true
	}
}

func (r *Renderer) drawCrosshair(g *ui.Grid) {
	l := r.layout
	if r.crosshair < 0 || r.crosshair >= l.PlotW {
		return
	}
	x := l.PlotX + r.crosshair
	for y := 0; y < l.PlotH; y++ {
		if c := g.At(x, y); c.Ch == ' ' || c.Fg == r.colors.Grid {
			g.Set(x, y, r.box.Crosshair, r.colors.Crosshair)
		}
	}
}

func (r *Renderer) drawTimeAxis(g *ui.Grid, from, to int) {
	l := r.layout
	data := r.Price.Data()
	if to <= from || to > len(data) {
		return
	}
	span := data[to-1].Time - data[from].Time
	layout := timeLabelLayout(span)
	step := len(layout) + 4

	for x := l.PlotX; x+len(layout) <= l.PlotX+l.PlotW; x += step {
		i, ok := r.IndexAtColumn(x)
		if !ok {
			continue
		}
		g.Set(x, l.PlotH, r.box.AxisTick, r.colors.Axis)
		g.Text(x+1, l.PlotH, time.Unix(data[i].Time, 0).In(r.loc).Format(layout), r.colors.Axis)
	}
}

// timeLabelLayout picks a label format for a visible span in seconds
func timeLabelLayout(span int64) string {
	const day = 24 * 60 * 60
	switch {
	case span <= 2*day:
		return "15:04"
	case span <= 180*day:
		return "Jan 02"
	default:
		return "Jan '06"
	}
}
