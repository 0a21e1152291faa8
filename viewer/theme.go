package viewer

import (
	"slices"

	"github.com/cornish/pricescope/config"
	"github.com/cornish/pricescope/ui"
)

// themeNames lists the built-in themes followed by the user's own
func themeNames() []string {
	names := config.ThemeNames()
	for _, name := range config.ListUserThemes() {
		if !slices.Contains(names, name) {
			names = append(names, name)
		}
	}
	return names
}

// cycleTheme switches to the next theme and saves the choice
func (m *Model) cycleTheme() {
	current := m.config.Theme.Name
	if current == "" {
		current = "default"
	}
	names := themeNames()
	next := names[0]
	if i := slices.Index(names, current); i >= 0 {
		next = names[(i+1)%len(names)]
	}
	m.applyTheme(config.LoadTheme(next))
	m.config.Theme.Name = next

	if m.configPath == "" {
		m.statusbar.SetMessage("Theme: "+next, "info")
		return
	}
	if err := m.config.SaveFile(m.configPath); err != nil {
		m.log.Warning("save theme: %v", err)
		m.statusbar.SetMessage("Theme: "+next+" (not saved: "+err.Error()+")", "error")
		return
	}
	m.statusbar.SetMessage("Theme: "+next, "success")
}

// applyTheme recolors every component
func (m *Model) applyTheme(theme config.Theme) {
	styles := ui.NewStyles(theme)
	m.styles = styles
	m.menubar.SetStyles(styles)
	m.statusbar.SetStyles(styles)
	m.overlay.SetStyles(styles)
	m.tooltip.SetStyles(styles)
	m.scrollbar.SetStyles(styles)
	m.chart.SetColors(theme.Chart)
	m.minimap.SetColors(theme.Chart)
	m.highlighter.SetColors(syntaxColors(theme))
	m.log.Debug("theme %s applied", theme.Name)
}
