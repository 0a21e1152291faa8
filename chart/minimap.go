package chart

import (
	"math"
	"time"

	"github.com/cornish/pricescope/config"
	"github.com/cornish/pricescope/ui"
)

// MinimapRenderer draws the whole data set as a thin overview line. Only
// every other point is drawn.
type MinimapRenderer struct {
	Series *LineSeries
	colors config.ChartColors
	box    ui.BoxChars
	ascii  bool
	loc    *time.Location
}

// NewMinimapRenderer creates an empty minimap renderer
func NewMinimapRenderer(colors config.ChartColors, box ui.BoxChars, ascii bool) *MinimapRenderer {
	return &MinimapRenderer{
		Series: NewLineSeries("Overview", colors.Minimap),
		colors: colors,
		box:    box,
		ascii:  ascii,
		loc:    time.Local,
	}
}

// SetData loads the full price series; it is reduced before drawing
func (m *MinimapRenderer) SetData(price []SeriesPoint) {
	m.Series.SetData(Reduce(price))
	m.Series.Scale.Fit(m.Series.Data())
}

// SetColors applies theme colors
func (m *MinimapRenderer) SetColors(colors config.ChartColors) {
	m.colors = colors
	m.Series.Color = colors.Minimap
}

// SetLocation sets the zone used for time labels
func (m *MinimapRenderer) SetLocation(loc *time.Location) {
	if loc != nil {
		m.loc = loc
	}
}

// Render draws the overview into a width x height grid. With three or more
// rows the bottom row carries time labels and vertical grid lines mark them.
func (m *MinimapRenderer) Render(width, height int) *ui.Grid {
	g := ui.NewGrid(width, height)
	data := m.Series.Data()
	if width <= 0 || height <= 0 || len(data) == 0 {
		return g
	}

	plotH := height
	labels := height >= 3
	if labels {
		plotH = height - 1
		m.drawTimeAxis(g, plotH)
	}

	canvas := ui.NewBraille(g, 0, 0, width, plotH, m.ascii)
	dotW, dotH := canvas.DotWidth(), canvas.DotHeight()
	havePrev := false
	var px, py int
	for j, p := range data {
		pos, ok := m.Series.Scale.Position(p.Value)
		if !ok {
			havePrev = false
			continue
		}
		x := int(math.Floor((float64(j) + 0.5) / float64(len(data)) * float64(dotW)))
		y := int(math.Round((1 - pos) * float64(dotH-1)))
		if havePrev {
			canvas.Line(px, py, x, y, m.Series.Color)
		} else {
			canvas.Set(x, y, m.Series.Color)
		}
		px, py, havePrev = x, y, true
	}
	canvas.Flush()
	return g
}

func (m *MinimapRenderer) drawTimeAxis(g *ui.Grid, plotH int) {
	data := m.Series.Data()
	width := g.Width()
	layout := timeLabelLayout(data[len(data)-1].Time - data[0].Time)
	step := len(layout) + 6
	vert := []rune(m.box.Vertical)[0]

	for x := step / 2; x+len(layout) < width; x += step {
		j := int(float64(x) / float64(width) * float64(len(data)))
		if j >= len(data) {
			break
		}
		for y := 0; y < plotH; y++ {
			g.Set(x, y, vert, m.colors.Grid)
		}
		g.Text(x, plotH, time.Unix(data[j].Time, 0).In(m.loc).Format(layout), m.colors.Axis)
	}
}
