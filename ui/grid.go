package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Cell is one terminal cell. Ch 0 marks the right half of a wide rune.
type Cell struct {
	Ch   rune
	Fg   string
	Bg   string
	Bold bool
}

// Grid is a fixed-size block of cells that charts and overlays draw into
// before it is serialized to ANSI lines
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid creates a grid filled with spaces
func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	g := &Grid{width: width, height: height, cells: make([]Cell, width*height)}
	for i := range g.cells {
		g.cells[i].Ch = ' '
	}
	return g
}

// Width returns the grid width in cells
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in cells
func (g *Grid) Height() int { return g.height }

// In reports whether (x, y) lies inside the grid
func (g *Grid) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

// At returns the cell at (x, y), or a blank cell outside the grid
func (g *Grid) At(x, y int) Cell {
	if !g.In(x, y) {
		return Cell{Ch: ' '}
	}
	return g.cells[y*g.width+x]
}

// Set writes a rune with a foreground color, keeping the background
func (g *Grid) Set(x, y int, ch rune, fg string) {
	if !g.In(x, y) {
		return
	}
	c := &g.cells[y*g.width+x]
	c.Ch = ch
	c.Fg = fg
}

// SetCell replaces a cell entirely
func (g *Grid) SetCell(x, y int, cell Cell) {
	if g.In(x, y) {
		g.cells[y*g.width+x] = cell
	}
}

// SetFg recolors a cell without changing its rune
func (g *Grid) SetFg(x, y int, fg string) {
	if g.In(x, y) {
		g.cells[y*g.width+x].Fg = fg
	}
}

// SetBg sets the background of a cell
func (g *Grid) SetBg(x, y int, bg string) {
	if g.In(x, y) {
		g.cells[y*g.width+x].Bg = bg
	}
}

// Text writes s starting at (x, y) and returns the number of cells used.
// Text is clipped at the right edge; wide runes that do not fit are dropped.
func (g *Grid) Text(x, y int, s, fg string) int {
	if y < 0 || y >= g.height {
		return 0
	}
	used := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+used+w > g.width {
			break
		}
		if x+used >= 0 {
			g.Set(x+used, y, r, fg)
			if w == 2 {
				g.Set(x+used+1, y, 0, fg)
			}
		}
		used += w
	}
	return used
}

// Plain returns row y without colors
func (g *Grid) Plain(y int) string {
	if y < 0 || y >= g.height {
		return ""
	}
	var sb strings.Builder
	for x := 0; x < g.width; x++ {
		if ch := g.cells[y*g.width+x].Ch; ch != 0 {
			sb.WriteRune(ch)
		}
	}
	return sb.String()
}

// Lines serializes the grid to one ANSI string per row. Escape codes are only
// emitted when the style changes and every row ends with a reset.
func (g *Grid) Lines() []string {
	lines := make([]string, g.height)
	for y := 0; y < g.height; y++ {
		var sb strings.Builder
		var cur Cell
		styled := false
		for x := 0; x < g.width; x++ {
			c := g.cells[y*g.width+x]
			if c.Ch == 0 {
				continue
			}
			if !styled || c.Fg != cur.Fg || c.Bg != cur.Bg || c.Bold != cur.Bold {
				sb.WriteString("\033[0m")
				if c.Bg != "" {
					sb.WriteString(ColorToANSIBg(c.Bg))
				}
				if c.Fg != "" {
					sb.WriteString(ColorToANSIFg(c.Fg))
				}
				if c.Bold {
					sb.WriteString("\033[1m")
				}
				cur = c
				styled = true
			}
			sb.WriteRune(c.Ch)
		}
		sb.WriteString("\033[0m")
		lines[y] = sb.String()
	}
	return lines
}

// String joins Lines with newlines
func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}
