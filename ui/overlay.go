package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// OverlayLine overlays top on base starting at column offset, keeping the
// base text on both sides. The base loses its colors on this row.
func OverlayLine(top, base string, offset int) string {
	topWidth := VisualWidth(top)
	baseText := StripANSI(base)

	var result strings.Builder

	// Prefix: base content before the overlay (or spaces if line is short)
	if offset > 0 {
		prefix := runewidth.Truncate(baseText, offset, "")
		result.WriteString(prefix)
		if pad := offset - runewidth.StringWidth(prefix); pad > 0 {
			result.WriteString(strings.Repeat(" ", pad))
		}
	}

	result.WriteString(top)
	result.WriteString("\033[0m")

	// Suffix: base content after the overlay
	suffixStart := offset + topWidth
	if runewidth.StringWidth(baseText) > suffixStart {
		result.WriteString(skipColumns(baseText, suffixStart))
	}

	return result.String()
}

// OverlayBlock overlays lines on base starting at (x, y)
func OverlayBlock(base []string, block []string, x, y int) []string {
	out := make([]string, len(base))
	copy(out, base)
	for i, line := range block {
		row := y + i
		if row < 0 || row >= len(out) {
			continue
		}
		out[row] = OverlayLine(line, out[row], x)
	}
	return out
}

// OverlayCenter overlays lines centered in a width x len(base) area
func OverlayCenter(base []string, block []string, width int) []string {
	blockWidth := 0
	for _, line := range block {
		if w := VisualWidth(line); w > blockWidth {
			blockWidth = w
		}
	}
	x := (width - blockWidth) / 2
	if x < 0 {
		x = 0
	}
	y := (len(base) - len(block)) / 2
	if y < 0 {
		y = 0
	}
	return OverlayBlock(base, block, x, y)
}

// skipColumns drops the first n display columns of a plain string
func skipColumns(s string, n int) string {
	w := 0
	for i, r := range s {
		if w >= n {
			return s[i:]
		}
		w += runewidth.RuneWidth(r)
	}
	return ""
}

// StripANSI removes ANSI escape sequences from a string
func StripANSI(s string) string {
	var result strings.Builder
	inEscape := false
	for _, r := range s {
		if r == '\033' {
			inEscape = true
			continue
		}
		if inEscape {
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
			continue
		}
		result.WriteRune(r)
	}
	return result.String()
}

// VisualWidth calculates the visible width of a string (ignoring ANSI codes)
func VisualWidth(s string) int {
	return runewidth.StringWidth(StripANSI(s))
}

// PadRight pads or truncates s to exactly width display columns
func PadRight(s string, width int) string {
	w := VisualWidth(s)
	if w > width {
		return runewidth.Truncate(StripANSI(s), width, "")
	}
	return s + strings.Repeat(" ", width-w)
}
