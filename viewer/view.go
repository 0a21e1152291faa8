package viewer

import (
	"fmt"
	"strings"

	"github.com/cornish/pricescope/chart"
	"github.com/cornish/pricescope/ui"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model
func (m *Model) View() string {
	var sb strings.Builder
	l := m.layout()

	// Menu bar
	sb.WriteString(m.menubar.View())
	sb.WriteString("\n")

	// Legend, main chart and minimap form the body
	body := []string{m.legend()}
	body = append(body, m.renderChart(l)...)
	body = append(body, m.renderMinimap(l)...)

	// If menu dropdown is open, overlay it on top of the body
	if m.menubar.IsOpen() {
		dropdownLines, offset := m.menubar.RenderDropdown()
		body = ui.OverlayBlock(body, dropdownLines, offset, 0)
	}

	switch m.mode {
	case ModeHelp:
		body = m.overlayHelpDialog(body)
	case ModeAbout:
		body = m.overlayAboutDialog(body)
	case ModeInspect:
		body = m.overlayInspector(body)
	case ModeError:
		body = m.overlayErrorDialog(body)
	case ModeConfigError:
		body = m.overlayConfigErrorDialog(body)
	}

	sb.WriteString(strings.Join(body, "\n"))
	sb.WriteString("\n")

	// Status bar
	sb.WriteString(m.statusbar.View())

	return sb.String()
}

// renderChart draws the main chart with the crosshair tooltip
func (m *Model) renderChart(l screenLayout) []string {
	if l.chartH <= 0 {
		return nil
	}
	if len(m.points) == 0 && m.loading {
		lines := make([]string, l.chartH)
		for i := range lines {
			lines[i] = strings.Repeat(" ", m.width)
		}
		msg := m.styles.Subtle.Render("Loading " + m.timeRange.String() + "...")
		return ui.OverlayCenter(lines, []string{msg}, m.width)
	}

	lines := m.chart.Render(m.width, l.chartH).Lines()
	if !m.hovering {
		return lines
	}

	readout, ok := chart.NewReadout(m.points, m.hoverIndex, m.loc)
	if !ok {
		return lines
	}
	box := m.tooltip.Render(readout.Date, readout.Time, readout.Rows(m.styles.Theme.Chart, m.config.API.SecondarySymbol))
	boxW := 0
	for _, line := range box {
		boxW = max(boxW, ui.VisualWidth(line))
	}
	cl := m.chart.Layout()
	x, y := ui.PlaceTooltip(m.hoverX, m.hoverY, boxW, len(box), m.width, cl.PlotH)
	return ui.OverlayBlock(lines, box, x, y)
}

// renderMinimap draws the overview with the selector on top
func (m *Model) renderMinimap(l screenLayout) []string {
	if l.minimapH <= 0 {
		return nil
	}
	g := m.minimap.Render(m.width, l.minimapH)
	if len(m.points) > 0 {
		m.overlay.Apply(g, m.trackScale(), m.selector.Model().State(), m.selector.Handler().Active())
	}
	return g.Lines()
}

// legend shows the series values at the crosshair, or the latest point
func (m *Model) legend() string {
	if len(m.points) == 0 {
		return ui.PadRight(m.styles.Legend.Render(" "+m.config.API.AssetSymbol), m.width)
	}
	i := len(m.points) - 1
	if m.hovering {
		i = m.hoverIndex
	}
	p := m.points[i]
	colors := m.styles.Theme.Chart
	dot := "●"
	if m.ascii {
		dot = "*"
	}
	swatch := func(color string) string {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(dot)
	}

	parts := []string{
		fmt.Sprintf("%s %s $%s", swatch(colors.Price), m.config.API.AssetSymbol, chart.FormatPrice(p.Value)),
		fmt.Sprintf("%s %s $%s", swatch(colors.Secondary), m.config.API.SecondarySymbol, chart.FormatPrice(p.SecondaryValue)),
		fmt.Sprintf("%s Vol $%s", swatch(colors.Volume), chart.FormatVolume(p.Volume)),
	}
	if h := m.selector.Handler(); h.Active() {
		drag := "drag: " + h.Session().Mode.String()
		if conv, ok := h.Converter(); ok {
			drag += fmt.Sprintf(" %.2f pts/px", conv.Density(m.selector.Model().Width()))
		}
		parts = append(parts, m.styles.Subtle.Render(drag))
	}
	return ui.PadRight(" "+strings.Join(parts, "   "), m.width)
}
