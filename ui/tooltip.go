package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TooltipRow is one labelled value in the tooltip, with an optional
// indicator color matching its series
type TooltipRow struct {
	Color string
	Label string
	Value string
}

// Tooltip renders the crosshair readout box
type Tooltip struct {
	styles Styles
	box    BoxChars
}

// NewTooltip creates a tooltip renderer
func NewTooltip(styles Styles, box BoxChars) *Tooltip {
	return &Tooltip{styles: styles, box: box}
}

// SetStyles updates the styles for runtime theme changes
func (t *Tooltip) SetStyles(styles Styles) {
	t.styles = styles
}

// Render returns the tooltip lines
func (t *Tooltip) Render(title, subtitle string, rows []TooltipRow) []string {
	indicator := "●"
	if t.box.Horizontal == "-" {
		indicator = "*"
	}

	content := []string{t.styles.TooltipTitle.Render(title)}
	if subtitle != "" {
		content = append(content, t.styles.TooltipLabel.Render(subtitle))
	}
	for _, row := range rows {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(row.Color)).Render(indicator)
		content = append(content, dot+" "+t.styles.TooltipLabel.Render(row.Label)+" "+row.Value)
	}

	style := t.styles.Tooltip
	if t.box.Horizontal == "-" {
		style = style.Border(lipgloss.ASCIIBorder())
	}
	return strings.Split(style.Render(strings.Join(content, "\n")), "\n")
}

// PlaceTooltip positions a w x h box next to the pointer at (px, py) inside an
// areaW x areaH area. The box sits right of and below the pointer, flipping
// to the other side when it would cross the right or bottom edge.
func PlaceTooltip(px, py, w, h, areaW, areaH int) (int, int) {
	const marginX, marginY = 3, 1

	x := px + marginX
	if x+w > areaW {
		x = px - marginX - w
	}
	y := py + marginY
	if y+h > areaH {
		y = py - marginY - h
	}

	if x+w > areaW {
		x = areaW - w
	}
	if y+h > areaH {
		y = areaH - h
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return x, y
}
