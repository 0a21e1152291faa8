package viewer

import (
	"github.com/cornish/pricescope/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// handleMouse routes mouse input to the menu, the minimap selector and the
// main chart crosshair
func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case ModeInspect:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.scrollInspector(-3)
		case tea.MouseButtonWheelDown:
			m.scrollInspector(3)
		}
		return m, nil
	case ModeHelp, ModeAbout, ModeConfigError, ModeError:
		return m, nil
	}

	l := m.layout()

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if m.inChart(msg.Y, l) {
			m.timeScale.ZoomIn()
		}
		return m, nil

	case tea.MouseButtonWheelDown:
		if m.inChart(msg.Y, l) {
			m.timeScale.ZoomOut()
		}
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		return m.handlePress(msg, l)

	case tea.MouseActionRelease:
		m.endDrag("release")

	case tea.MouseActionMotion:
		if m.selector.Handler().Active() {
			if !m.inMinimap(msg.Y, l) {
				m.endDrag("leave")
				return m, nil
			}
			m.selector.Handler().PointerMove(m.trackScale().PixelAt(msg.X))
			return m, nil
		}
		m.updateHover(msg.X, msg.Y, l)
	}

	return m, nil
}

func (m *Model) handlePress(msg tea.MouseMsg, l screenLayout) (tea.Model, tea.Cmd) {
	// Check if click is on menu bar
	if msg.Y == 0 {
		handled, action := m.menubar.HandleClick(msg.X, 0)
		if handled {
			if action != ui.ActionNone {
				m.mode = ModeNormal
				return m.executeAction(action)
			}
			if m.menubar.IsOpen() {
				m.mode = ModeMenu
			} else {
				m.mode = ModeNormal
			}
			return m, nil
		}
	}

	// Check if click is on menu dropdown
	if m.menubar.IsOpen() && msg.Y > 0 && msg.Y <= m.menubar.Height() {
		handled, action := m.menubar.HandleClick(msg.X, msg.Y)
		if handled {
			m.mode = ModeNormal
			if action != ui.ActionNone {
				return m.executeAction(action)
			}
			return m, nil
		}
	}

	// Close menu if clicking elsewhere
	if m.menubar.IsOpen() {
		m.menubar.Close()
		m.mode = ModeNormal
		return m, nil
	}

	if m.inMinimap(msg.Y, l) {
		m.beginDrag(msg.X)
	}
	return m, nil
}

// beginDrag starts a selector drag at minimap column x. The press picks the
// handle or the window, then feeds the first pointer sample.
func (m *Model) beginDrag(x int) {
	scale := m.trackScale()
	px := scale.PixelAt(x)
	mode := m.selector.HitTest(px, scale.PixelsPerColumn())
	h := m.selector.Handler()
	if !h.PointerDown(mode) {
		return
	}
	h.PointerMove(px)
	m.hovering = false
	m.chart.HideCrosshair()
	m.log.Debug("drag %s started at px %.1f", mode, px)
}

// endDrag finishes a drag, committing the selector to the main chart. The
// chart may clamp the commit to the range it already shows, which raises no
// change, so the selector is always resynced.
func (m *Model) endDrag(reason string) {
	h := m.selector.Handler()
	if !h.Active() {
		return
	}
	r, ok := h.PointerUp()
	if ok {
		m.log.Debug("drag %s committed %s", reason, r)
	}
	m.syncPending = true
}

// cancelDrag drops a drag and restores the selector from the main chart
func (m *Model) cancelDrag() {
	m.selector.Handler().Cancel()
	m.syncPending = true
}

// updateHover moves the crosshair to the point under (x, y)
func (m *Model) updateHover(x, y int, l screenLayout) {
	cy := y - l.chartY
	cl := m.chart.Layout()
	if len(m.points) == 0 || !cl.Contains(x, cy) || m.menubar.IsOpen() {
		m.hovering = false
		m.chart.HideCrosshair()
		return
	}
	i, ok := m.chart.IndexAtColumn(x)
	if !ok {
		m.hovering = false
		m.chart.HideCrosshair()
		return
	}
	m.hovering = true
	m.hoverIndex = i
	m.hoverX = x
	m.hoverY = cy

	// The crosshair snaps to the point it reports
	col := m.chart.ColumnOfIndex(i)
	if col < 0 || col >= cl.PlotW {
		col = x - cl.PlotX
	}
	m.chart.SetCrosshair(col)
}

func (m *Model) inChart(y int, l screenLayout) bool {
	return y >= l.chartY && y < l.chartY+l.chartH
}

func (m *Model) inMinimap(y int, l screenLayout) bool {
	return y >= l.minimapY && y < l.minimapY+l.minimapH
}
