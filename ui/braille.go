package ui

// brailleBits maps a dot inside a cell (row 0-3, column 0-1) to its bit.
// Braille dots are numbered:
// 1 4
// 2 5
// 3 6
// 7 8
var brailleBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Braille is a dot canvas over a rectangle of a grid. Each cell holds a
// 2x4 dot matrix, so a 10x3 cell area is 20x12 dots.
type Braille struct {
	grid   *Grid
	x0, y0 int
	cols   int
	rows   int
	masks  []uint8
	colors []string
	ascii  bool
}

// NewBraille creates a canvas over cols x rows cells starting at (x0, y0).
// In ascii mode every lit cell is drawn as '*'.
func NewBraille(g *Grid, x0, y0, cols, rows int, ascii bool) *Braille {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	return &Braille{
		grid:   g,
		x0:     x0,
		y0:     y0,
		cols:   cols,
		rows:   rows,
		masks:  make([]uint8, cols*rows),
		colors: make([]string, cols*rows),
		ascii:  ascii,
	}
}

// DotWidth returns the canvas width in dots
func (b *Braille) DotWidth() int { return b.cols * 2 }

// DotHeight returns the canvas height in dots
func (b *Braille) DotHeight() int { return b.rows * 4 }

// Set lights one dot. The last color set in a cell wins.
func (b *Braille) Set(dx, dy int, color string) {
	if dx < 0 || dy < 0 || dx >= b.DotWidth() || dy >= b.DotHeight() {
		return
	}
	i := (dy/4)*b.cols + dx/2
	b.masks[i] |= brailleBits[dy%4][dx%2]
	b.colors[i] = color
}

// Line draws a straight line between two dots (Bresenham)
func (b *Braille) Line(x0, y0, x1, y1 int, color string) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		b.Set(x0, y0, color)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Flush writes every lit cell into the grid
func (b *Braille) Flush() {
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			i := row*b.cols + col
			if b.masks[i] == 0 {
				continue
			}
			ch := rune(0x2800) + rune(b.masks[i])
			if b.ascii {
				ch = '*'
			}
			b.grid.Set(b.x0+col, b.y0+row, ch, b.colors[i])
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
