package viewer

import (
	"github.com/cornish/pricescope/market"
	"github.com/cornish/pricescope/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// keyActions maps keybinding action names to menu actions
var keyActions = map[string]ui.MenuAction{
	"screenshot":  ui.ActionScreenshot,
	"copy":        ui.ActionCopy,
	"inspect":     ui.ActionInspect,
	"reload":      ui.ActionReload,
	"quit":        ui.ActionExit,
	"range_1d":    ui.ActionRange1D,
	"range_1m":    ui.ActionRange1M,
	"range_3m":    ui.ActionRange3M,
	"range_1y":    ui.ActionRange1Y,
	"range_ytd":   ui.ActionRangeYTD,
	"range_all":   ui.ActionRangeAll,
	"toggle_log":  ui.ActionToggleLog,
	"zoom_in":     ui.ActionZoomIn,
	"zoom_out":    ui.ActionZoomOut,
	"pan_left":    ui.ActionPanLeft,
	"pan_right":   ui.ActionPanRight,
	"fit":         ui.ActionFit,
	"cycle_theme": ui.ActionCycleTheme,
	"help":        ui.ActionHelp,
}

// panFraction is the share of the visible width moved per pan step
const panFraction = 0.1

// handleKey handles keyboard input
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case ModeMenu:
		return m.handleMenuKey(msg)
	case ModeInspect:
		return m.handleInspectKey(msg)
	case ModeError:
		return m.handleErrorKey(msg)
	case ModeHelp, ModeAbout, ModeConfigError:
		// Any key dismisses
		m.mode = ModeNormal
		return m, nil
	}

	// Clear status message on any key
	m.statusbar.ClearMessage()

	keyStr := msg.String()
	switch keyStr {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		// Abandon a drag without committing it
		if m.selector.Handler().Active() {
			m.cancelDrag()
		}
		return m, nil
	case "alt+f":
		return m.openMenu(0)
	case "alt+r":
		return m.openMenu(1)
	case "alt+v":
		return m.openMenu(2)
	case "alt+h":
		return m.openMenu(3)
	}

	action := m.keys.ActionForKey(keyStr)
	if action == "menu" {
		return m.openMenu(0)
	}
	if menuAction, ok := keyActions[action]; ok {
		return m.executeAction(menuAction)
	}
	return m, nil
}

func (m *Model) openMenu(index int) (tea.Model, tea.Cmd) {
	m.menubar.OpenMenu(index)
	m.mode = ModeMenu
	return m, nil
}

func (m *Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.menubar.Close()
		m.mode = ModeNormal

	case tea.KeyEnter:
		action := m.menubar.Select()
		m.mode = ModeNormal
		return m.executeAction(action)

	case tea.KeyUp:
		m.menubar.MoveItem(-1)

	case tea.KeyDown:
		m.menubar.MoveItem(1)

	case tea.KeyLeft:
		m.menubar.MoveMenu(-1)

	case tea.KeyRight:
		m.menubar.MoveMenu(1)

	case tea.KeyRunes:
		// Handle hotkey letter press
		if len(msg.Runes) == 1 {
			action := m.menubar.SelectByHotKey(msg.Runes[0])
			if action != ui.ActionNone {
				m.mode = ModeNormal
				return m.executeAction(action)
			}
		}
	}

	return m, nil
}

// handleInspectKey scrolls the data inspector
func (m *Model) handleInspectKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	page := max(1, m.inspectHeight()-1)
	switch msg.String() {
	case "esc", "q", "enter":
		m.mode = ModeNormal
		m.inspectLines = nil
	case "up", "k":
		m.scrollInspector(-1)
	case "down", "j":
		m.scrollInspector(1)
	case "pgup":
		m.scrollInspector(-page)
	case "pgdown", " ":
		m.scrollInspector(page)
	case "home", "g":
		m.inspectScroll = 0
	case "end", "G":
		m.scrollInspector(len(m.inspectLines))
	}
	return m, nil
}

// handleErrorKey handles the load error dialog: enter retries, esc dismisses
func (m *Model) handleErrorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		return m, m.retry()
	case tea.KeyEsc:
		m.mode = ModeNormal
		m.loadErr = nil
		m.statusbar.SetMessage("Load failed", "error")
	case tea.KeyRunes:
		if string(msg.Runes) == "q" {
			return m, tea.Quit
		}
	}
	return m, nil
}

// executeAction executes a menu action
func (m *Model) executeAction(action ui.MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case ui.ActionScreenshot:
		return m, m.screenshot()
	case ui.ActionCopy:
		m.copyReadout()
	case ui.ActionInspect:
		m.showInspector()
	case ui.ActionReload:
		return m, m.switchRange(m.timeRange)
	case ui.ActionExit:
		return m, tea.Quit
	case ui.ActionRange1D, ui.ActionRange1M, ui.ActionRange3M,
		ui.ActionRange1Y, ui.ActionRangeYTD, ui.ActionRangeAll:
		for i, a := range ui.RangeActions {
			if a == action {
				return m, m.switchRange(market.Ranges[i])
			}
		}
	case ui.ActionToggleLog:
		m.toggleLog()
	case ui.ActionZoomIn:
		m.timeScale.ZoomIn()
	case ui.ActionZoomOut:
		m.timeScale.ZoomOut()
	case ui.ActionPanLeft:
		m.timeScale.ScrollBy(-m.panStep())
	case ui.ActionPanRight:
		m.timeScale.ScrollBy(m.panStep())
	case ui.ActionFit:
		m.timeScale.FitContent()
	case ui.ActionCycleTheme:
		m.cycleTheme()
	case ui.ActionHelp:
		m.mode = ModeHelp
	case ui.ActionAbout:
		m.mode = ModeAbout
	}
	return m, nil
}

// panStep returns how many points one pan step moves, at least one
func (m *Model) panStep() float64 {
	return max(1, m.timeScale.VisibleLogicalRange().Width()*panFraction)
}
