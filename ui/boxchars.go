package ui

// BoxChars holds the glyphs used for borders, handles and bars
type BoxChars struct {
	Horizontal  string
	Vertical    string
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
	TeeLeft     string
	TeeRight    string

	Handle    rune   // Minimap selector handle
	Crosshair rune   // Vertical crosshair line
	AxisTick  rune   // Tick on the time axis
	Bars      []rune // Volume bar heights, empty to full
}

// UnicodeBoxChars uses box drawing and block characters
var UnicodeBoxChars = BoxChars{
	Horizontal:  "─",
	Vertical:    "│",
	TopLeft:     "┌",
	TopRight:    "┐",
	BottomLeft:  "└",
	BottomRight: "┘",
	TeeLeft:     "├",
	TeeRight:    "┤",
	Handle:      '┃',
	Crosshair:   '┊',
	AxisTick:    '┬',
	Bars:        []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'},
}

// ASCIIBoxChars is used when the terminal cannot show UTF-8
var ASCIIBoxChars = BoxChars{
	Horizontal:  "-",
	Vertical:    "|",
	TopLeft:     "+",
	TopRight:    "+",
	BottomLeft:  "+",
	BottomRight: "+",
	TeeLeft:     "+",
	TeeRight:    "+",
	Handle:      '#',
	Crosshair:   ':',
	AxisTick:    '+',
	Bars:        []rune{' ', '.', '.', ':', ':', '|', '|', '#', '#'},
}

// GetBoxChars returns the glyph set for the given mode
func GetBoxChars(ascii bool) BoxChars {
	if ascii {
		return ASCIIBoxChars
	}
	return UnicodeBoxChars
}

// Bar returns the glyph for a fill fraction in [0, 1]
func (b BoxChars) Bar(frac float64) rune {
	if len(b.Bars) == 0 {
		return ' '
	}
	if frac <= 0 {
		return b.Bars[0]
	}
	if frac >= 1 {
		return b.Bars[len(b.Bars)-1]
	}
	i := int(frac*float64(len(b.Bars)-1) + 0.5)
	return b.Bars[i]
}
