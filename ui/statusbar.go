package ui

import (
	"fmt"
	"strings"
)

// StatusBar represents the bottom status bar
type StatusBar struct {
	asset       string
	timeRange   string
	logScale    bool
	loading     bool
	points      int
	visible     string // Visible range summary
	message     string // Temporary message to display
	messageType string // "info", "error", "success"
	width       int
	styles      Styles
}

// NewStatusBar creates a new status bar
func NewStatusBar(styles Styles) *StatusBar {
	return &StatusBar{
		styles: styles,
	}
}

// SetAsset sets the asset symbol shown on the left
func (s *StatusBar) SetAsset(asset string) {
	s.asset = asset
}

// SetRange sets the loaded time range label
func (s *StatusBar) SetRange(r string) {
	s.timeRange = r
}

// SetLogScale sets whether the price scale is logarithmic
func (s *StatusBar) SetLogScale(log bool) {
	s.logScale = log
}

// SetLoading marks a request in flight
func (s *StatusBar) SetLoading(loading bool) {
	s.loading = loading
}

// SetPoints sets the number of loaded points
func (s *StatusBar) SetPoints(n int) {
	s.points = n
}

// SetVisible sets the visible range summary
func (s *StatusBar) SetVisible(v string) {
	s.visible = v
}

// SetMessage sets a temporary message to display
func (s *StatusBar) SetMessage(message, msgType string) {
	s.message = message
	s.messageType = msgType
}

// ClearMessage clears the temporary message
func (s *StatusBar) ClearMessage() {
	s.message = ""
	s.messageType = ""
}

// Message returns the current message and its type
func (s *StatusBar) Message() (string, string) {
	return s.message, s.messageType
}

// SetWidth sets the width of the status bar
func (s *StatusBar) SetWidth(width int) {
	s.width = width
}

// SetStyles updates the styles for runtime theme changes
func (s *StatusBar) SetStyles(styles Styles) {
	s.styles = styles
}

// View renders the status bar
func (s *StatusBar) View() string {
	var sb strings.Builder

	// Get theme colors
	ui := s.styles.Theme.UI
	normalColor := ColorToANSI(ui.StatusFg, ui.StatusBg)
	accentColor := ColorToANSIFg(ui.StatusAccent) + "\033[1m" // Bold
	errorColor := ColorToANSIFg(ui.ErrorFg) + "\033[1m"       // Bold
	resetToNormal := ColorToANSIFg(ui.StatusFg) + "\033[22m"  // Not bold

	// Start with status bar colors
	sb.WriteString(normalColor)

	// Left side: asset and range
	left := s.asset
	if s.timeRange != "" {
		left += " " + s.timeRange
	}
	sb.WriteString(accentColor + left + resetToNormal)
	leftLen := VisualWidth(left)

	if s.loading {
		sb.WriteString(" loading...")
		leftLen += len(" loading...")
	}

	// Right side: visible range, point count, scale mode
	scale := "LIN"
	if s.logScale {
		scale = "LOG"
	}
	right := fmt.Sprintf("%s | %d pts | %s", s.visible, s.points, scale)
	if s.visible == "" {
		right = fmt.Sprintf("%d pts | %s", s.points, scale)
	}

	// Calculate spacing
	rightLen := VisualWidth(right)
	centerLen := VisualWidth(s.message)

	availableSpace := s.width - leftLen - rightLen
	if availableSpace < 0 {
		availableSpace = 0
	}

	// Center message if any
	if s.message != "" && centerLen+4 <= availableSpace {
		leftPad := (availableSpace - centerLen) / 2
		rightPad := availableSpace - centerLen - leftPad
		sb.WriteString(strings.Repeat(" ", leftPad))

		// Render message with appropriate color
		switch s.messageType {
		case "error":
			sb.WriteString(errorColor + s.message + resetToNormal)
		case "success":
			sb.WriteString(accentColor + s.message + resetToNormal)
		default:
			sb.WriteString(s.message)
		}

		sb.WriteString(strings.Repeat(" ", rightPad))
	} else {
		// No message or not enough space
		sb.WriteString(strings.Repeat(" ", availableSpace))
	}

	sb.WriteString(right)

	// Reset at end
	sb.WriteString("\033[0m")

	return sb.String()
}
