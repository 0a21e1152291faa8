package ui

import (
	"strings"
	"testing"
)

func TestGridText(t *testing.T) {
	tests := []struct {
		name  string
		width int
		x     int
		text  string
		want  string
		used  int
	}{
		{"fits", 5, 1, "abc", " abc ", 3},
		{"clipped", 5, 3, "hello", "   he", 2},
		{"wide rune", 4, 0, "日x", "日x ", 3},
		{"wide rune dropped at edge", 3, 2, "日", "   ", 0},
		{"negative start", 4, -2, "abcd", "cd  ", 4},
	}

	for _, tt := range tests {
		g := NewGrid(tt.width, 1)
		used := g.Text(tt.x, 0, tt.text, "")
		if used != tt.used {
			t.Errorf("%s: Text() used %d cells, want %d", tt.name, used, tt.used)
		}
		if got := g.Plain(0); got != tt.want {
			t.Errorf("%s: Plain(0) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestGridOutOfBounds(t *testing.T) {
	g := NewGrid(3, 2)
	g.Set(-1, 0, 'x', "")
	g.Set(3, 0, 'x', "")
	g.SetBg(0, 5, "1")
	if got := g.At(10, 10); got.Ch != ' ' {
		t.Errorf("At(outside).Ch = %q, want space", got.Ch)
	}
	if g.Plain(0) != "   " || g.Plain(1) != "   " {
		t.Errorf("out of bounds writes changed the grid: %q %q", g.Plain(0), g.Plain(1))
	}
	if g.Plain(-1) != "" {
		t.Errorf("Plain(-1) = %q, want empty", g.Plain(-1))
	}
}

func TestGridLines(t *testing.T) {
	g := NewGrid(6, 2)
	g.Text(0, 0, "ab", "#16c784")
	g.Text(2, 0, "cd", "#16c784")
	g.SetBg(5, 1, "24")

	lines := g.Lines()
	if len(lines) != 2 {
		t.Fatalf("Lines() returned %d rows, want 2", len(lines))
	}
	for y, line := range lines {
		if !strings.HasSuffix(line, "\033[0m") {
			t.Errorf("row %d does not end with a reset: %q", y, line)
		}
		if got := StripANSI(line); got != g.Plain(y) {
			t.Errorf("row %d text = %q, want %q", y, got, g.Plain(y))
		}
	}

	// One color change for the run of four cells, one for the trailing blanks
	if n := strings.Count(lines[0], "\033[38;2;22;199;132m"); n != 1 {
		t.Errorf("foreground emitted %d times, want 1 for a single run", n)
	}
	if !strings.Contains(lines[1], "\033[48;5;24m") {
		t.Errorf("background missing from row 1: %q", lines[1])
	}
}

func TestBrailleDots(t *testing.T) {
	g := NewGrid(2, 1)
	b := NewBraille(g, 0, 0, 2, 1, false)

	if b.DotWidth() != 4 || b.DotHeight() != 4 {
		t.Fatalf("dot size = %dx%d, want 4x4", b.DotWidth(), b.DotHeight())
	}

	b.Set(0, 0, "1")
	b.Set(1, 3, "2")
	b.Set(2, 1, "3")
	b.Set(9, 9, "4") // ignored
	b.Flush()

	if got := g.At(0, 0); got.Ch != 0x2881 || got.Fg != "2" {
		t.Errorf("cell 0 = %U %q, want U+2881 with the last color", got.Ch, got.Fg)
	}
	if got := g.At(1, 0).Ch; got != 0x2802 {
		t.Errorf("cell 1 = %U, want U+2802", got)
	}
}

func TestBrailleLine(t *testing.T) {
	g := NewGrid(2, 1)
	b := NewBraille(g, 0, 0, 2, 1, false)
	b.Line(0, 0, 3, 0, "")
	b.Flush()

	// dots 1 and 4 in both cells
	for x := 0; x < 2; x++ {
		if got := g.At(x, 0).Ch; got != 0x2809 {
			t.Errorf("cell %d = %U, want U+2809", x, got)
		}
	}
}

func TestBrailleASCII(t *testing.T) {
	g := NewGrid(3, 1)
	b := NewBraille(g, 1, 0, 2, 1, true)
	b.Set(0, 2, "")
	b.Flush()

	if got := g.Plain(0); got != " * " {
		t.Errorf("Plain(0) = %q, want %q", got, " * ")
	}
}

func TestBoxCharsBar(t *testing.T) {
	box := UnicodeBoxChars
	tests := []struct {
		frac float64
		want rune
	}{
		{-1, ' '},
		{0, ' '},
		{0.5, '▄'},
		{1, '█'},
		{2, '█'},
	}

	for _, tt := range tests {
		if got := box.Bar(tt.frac); got != tt.want {
			t.Errorf("Bar(%v) = %q, want %q", tt.frac, got, tt.want)
		}
	}

	if got := (BoxChars{}).Bar(0.5); got != ' ' {
		t.Errorf("empty Bar() = %q, want space", got)
	}
	if GetBoxChars(true).Handle != '#' {
		t.Errorf("ascii handle = %q, want '#'", GetBoxChars(true).Handle)
	}
}
