package ui

import (
	"strings"
)

// Scrollbar renders a vertical scrollbar for a scrolled list of lines
type Scrollbar struct {
	height int
	box    BoxChars
	styles Styles
}

// NewScrollbar creates a new scrollbar instance
func NewScrollbar(styles Styles, box BoxChars) *Scrollbar {
	return &Scrollbar{
		height: 24,
		box:    box,
		styles: styles,
	}
}

// SetHeight sets the scrollbar height
func (s *Scrollbar) SetHeight(height int) {
	if height > 0 {
		s.height = height
	}
}

// Height returns the scrollbar height
func (s *Scrollbar) Height() int {
	return s.height
}

// SetStyles updates the styles for runtime theme changes
func (s *Scrollbar) SetStyles(styles Styles) {
	s.styles = styles
}

// Thumb returns the first row and size of the thumb. start is the first
// visible line, visible the number of visible lines and total the number of
// lines in the list.
func (s *Scrollbar) Thumb(start, visible, total int) (int, int) {
	if total <= 0 {
		total = 1
	}
	if visible <= 0 {
		visible = 1
	}
	if total <= visible {
		// Everything fits - thumb fills track
		return 0, s.height
	}

	// Use int64 to avoid overflow with long lists
	size := int((int64(visible) * int64(s.height)) / int64(total))
	size = min(max(size, 1), s.height)

	maxScroll := total - visible
	start = min(max(start, 0), maxScroll)
	thumbRange := s.height - size
	if thumbRange <= 0 {
		return 0, size
	}
	pos := int((int64(start) * int64(thumbRange)) / int64(maxScroll))
	return min(max(pos, 0), s.height-size), size
}

// Render renders the scrollbar as a slice of strings, one per row
func (s *Scrollbar) Render(start, visible, total int) []string {
	if s.height <= 0 {
		return nil
	}

	theme := s.styles.Theme.UI
	trackColor := ColorToANSI(theme.DisabledFg, theme.DialogBg)
	thumbColor := ColorToANSI(theme.DialogButton, theme.DialogBg)
	thumbStart, thumbSize := s.Thumb(start, visible, total)

	result := make([]string, s.height)
	for row := range result {
		var sb strings.Builder
		if row >= thumbStart && row < thumbStart+thumbSize {
			sb.WriteString(thumbColor)
			sb.WriteRune(s.box.Handle)
		} else {
			sb.WriteString(trackColor)
			sb.WriteString(s.box.Vertical)
		}
		sb.WriteString("\033[0m")
		result[row] = sb.String()
	}
	return result
}
