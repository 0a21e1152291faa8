package viewer

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cornish/pricescope/config"
	"github.com/cornish/pricescope/market"
	"github.com/cornish/pricescope/ui"
)

// overlayHelpDialog lists the current keybindings in two columns
func (m *Model) overlayHelpDialog(body []string) []string {
	const colWidth = 30
	db := m.NewDialogBuilder(2*colWidth + 6)

	var entries []string
	for _, action := range config.AllActions() {
		binding := m.keys.GetBinding(action)
		entries = append(entries, fmt.Sprintf("%-13s %s", binding.DisplayString(), config.ActionNames[action]))
	}
	half := (len(entries) + 1) / 2

	db.AddTitleBorder(" Keyboard Shortcuts ")
	db.AddEmptyLine()
	sep := " " + db.box.Vertical + " "
	for i := 0; i < half; i++ {
		left := entries[i]
		right := ""
		if i+half < len(entries) {
			right = entries[i+half]
		}
		db.AddText(" " + ui.PadRight(left, colWidth) + sep + ui.PadRight(right, colWidth))
	}
	db.AddEmptyLine()
	db.AddCenteredText("MOUSE: drag the minimap window or its edges")
	db.AddCenteredText("hover for the crosshair, wheel to zoom")
	db.AddCenteredText("MENUS: F10 or Alt+F/R/V/H")
	db.AddEmptyLine()
	db.AddCenteredText("Press any key to continue...")
	db.AddBottomBorder()

	return db.Overlay(body, m.width)
}

// overlayAboutDialog shows the version and data source
func (m *Model) overlayAboutDialog(body []string) []string {
	db := m.NewDialogBuilder(52)
	db.AddTitleBorder(" About ")
	db.AddEmptyLine()
	db.AddCenteredText("pricescope")
	db.AddCenteredText("A price chart for the terminal")
	db.AddEmptyLine()
	db.AddCenteredText("Version " + Version)
	db.AddCenteredText(fmt.Sprintf("%s with %s reference prices", m.config.API.AssetSymbol, m.config.API.SecondarySymbol))
	db.AddCenteredText(m.config.API.BaseURL)
	db.AddEmptyLine()
	db.AddCenteredText("Press any key to continue...")
	db.AddBottomBorder()
	return db.Overlay(body, m.width)
}

// overlayErrorDialog shows a failed load with the retry choice
func (m *Model) overlayErrorDialog(body []string) []string {
	db := m.NewDialogBuilder(60)
	db.AddTitleBorder(" Load Failed ")
	db.AddEmptyLine()
	if m.loadErr != nil {
		db.AddErrorText(" " + loadErrorTitle(m.loadErr))
		db.AddEmptyLine()
		db.AddWrappedText(m.loadErr.Error())
	}
	db.AddEmptyLine()
	db.AddSeparator()
	db.AddCenteredText("Enter: retry   Esc: dismiss   Q: quit")
	db.AddBottomBorder()
	return db.Overlay(body, m.width)
}

// loadErrorTitle describes the kind of load failure
func loadErrorTitle(err error) string {
	var loadErr *market.LoadError
	if !errors.As(err, &loadErr) {
		return "Could not load chart data"
	}
	switch loadErr.Kind {
	case market.KindNetwork:
		return "Network error loading " + loadErr.Range.String()
	case market.KindStatus:
		return "Server error loading " + loadErr.Range.String()
	case market.KindAPI:
		return "The API rejected the request for " + loadErr.Range.String()
	default:
		return "Unexpected response for " + loadErr.Range.String()
	}
}

// overlayConfigErrorDialog reports a config file that failed to parse
func (m *Model) overlayConfigErrorDialog(body []string) []string {
	db := m.NewDialogBuilder(64)
	db.AddTitleBorder(" Config Error ")
	db.AddEmptyLine()
	db.AddErrorText(" Could not read " + m.configErrorPath)
	db.AddEmptyLine()
	db.AddWrappedText(m.configErrorMsg)
	db.AddEmptyLine()
	db.AddCenteredText("Using default settings.")
	db.AddCenteredText("Press any key to continue...")
	db.AddBottomBorder()
	return db.Overlay(body, m.width)
}

// inspectPoint is the JSON shape of one point in the data inspector
type inspectPoint struct {
	Index     int     `json:"index"`
	Time      int64   `json:"time"`
	Date      string  `json:"date"`
	Price     float64 `json:"price"`
	Volume    float64 `json:"volume"`
	Secondary float64 `json:"secondary_price"`
}

// showInspector opens the data inspector on the visible points
func (m *Model) showInspector() {
	if len(m.points) == 0 {
		m.statusbar.SetMessage("No data loaded", "error")
		return
	}
	from, to := m.timeScale.VisibleIndices()
	to = min(to, len(m.points))
	visible := make([]inspectPoint, 0, to-from)
	for i := from; i < to; i++ {
		p := m.points[i]
		visible = append(visible, inspectPoint{
			Index:     i,
			Time:      p.Time,
			Date:      p.Timestamp().In(m.loc).Format("2006-01-02 15:04:05"),
			Price:     p.Value,
			Volume:    p.Volume,
			Secondary: p.SecondaryValue,
		})
	}
	doc := struct {
		Asset     string         `json:"asset"`
		Secondary string         `json:"secondary"`
		Range     string         `json:"range"`
		Points    []inspectPoint `json:"points"`
	}{
		Asset:     m.config.API.AssetSymbol,
		Secondary: m.config.API.SecondarySymbol,
		Range:     m.timeRange.String(),
		Points:    visible,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		m.statusbar.SetMessage("Error: "+err.Error(), "error")
		return
	}
	m.inspectLines = m.highlighter.Lines(string(data))
	m.inspectScroll = 0
	m.mode = ModeInspect
}

// inspectHeight returns the number of JSON lines the inspector shows
func (m *Model) inspectHeight() int {
	l := m.layout()
	// Body rows minus the dialog borders and footer
	return max(1, 1+l.chartH+l.minimapH-4)
}

func (m *Model) scrollInspector(delta int) {
	maxScroll := max(0, len(m.inspectLines)-m.inspectHeight())
	m.inspectScroll = min(max(0, m.inspectScroll+delta), maxScroll)
}

// overlayInspector shows the visible points as highlighted JSON
func (m *Model) overlayInspector(body []string) []string {
	db := m.NewDialogBuilder(m.width - 4)
	h := m.inspectHeight()
	end := min(len(m.inspectLines), m.inspectScroll+h)

	m.scrollbar.SetHeight(h)
	bar := m.scrollbar.Render(m.inspectScroll, h, len(m.inspectLines))

	db.AddTitleBorder(fmt.Sprintf(" Data: %d-%d of %d lines ", m.inspectScroll+1, end, len(m.inspectLines)))
	for row := 0; row < h; row++ {
		line := ""
		if i := m.inspectScroll + row; i < end {
			line = " " + m.inspectLines[i]
		}
		db.AddScrolledText(line, bar[row])
	}
	db.AddSeparator()
	db.AddCenteredText("Up/Down PgUp/PgDn scroll   Esc: close")
	db.AddBottomBorder()
	return db.Overlay(body, m.width)
}
