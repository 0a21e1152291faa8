package viewer

import (
	"context"
	"errors"
	"fmt"

	"github.com/cornish/pricescope/chart"
	"github.com/cornish/pricescope/export"
	"github.com/cornish/pricescope/market"
	"github.com/cornish/pricescope/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// dataLoadedMsg delivers the result of one load
type dataLoadedMsg struct {
	seq    uint64
	rng    market.TimeRange
	result *market.Result
	err    error
}

// syncMsg fires one frame after the visible range changed
type syncMsg struct{}

// exportDoneMsg reports a finished screenshot
type exportDoneMsg struct {
	path string
	err  error
}

// loadRange starts loading r. Only the response of the latest call is applied.
func (m *Model) loadRange(r market.TimeRange) tea.Cmd {
	seq := m.loader.Begin()
	m.loading = true
	m.statusbar.SetLoading(true)
	m.log.Info("loading %s (seq %d)", r, seq)

	loader := m.loader
	return func() tea.Msg {
		result, err := loader.Load(context.Background(), r)
		return dataLoadedMsg{seq: seq, rng: r, result: result, err: err}
	}
}

// switchRange marks r as selected and loads it
func (m *Model) switchRange(r market.TimeRange) tea.Cmd {
	m.statusbar.SetRange(r.String())
	for i, action := range ui.RangeActions {
		m.menubar.SetChecked(action, market.Ranges[i] == r)
	}
	return m.loadRange(r)
}

func (m *Model) handleLoaded(msg dataLoadedMsg) (tea.Model, tea.Cmd) {
	if !m.loader.Latest(msg.seq) {
		m.log.Debug("dropping stale %s response (seq %d)", msg.rng, msg.seq)
		return m, nil
	}
	m.loading = false
	m.statusbar.SetLoading(false)

	if msg.err != nil {
		m.log.Error("%v", msg.err)
		m.loadErr = msg.err
		m.failedRange = msg.rng
		m.mode = ModeError
		m.statusbar.SetRange(m.timeRange.String())
		m.updateMenuState()
		return m, nil
	}

	m.setData(msg.rng, msg.result.Points)
	m.log.Info("loaded %d points for %s", len(msg.result.Points), msg.rng)
	return m, nil
}

// setData replaces the chart data. Both charts and the selector start from
// the full range.
func (m *Model) setData(r market.TimeRange, points []market.DataPoint) {
	m.timeRange = r
	m.points = points
	m.loadErr = nil
	m.hovering = false
	m.chart.HideCrosshair()

	price, volume, secondary := chart.Split(points)
	m.chart.SetData(price, volume, secondary)
	m.minimap.SetData(price)
	m.selector.SetPointCount(len(points))
	m.timeScale.SetPointCount(len(points))

	m.statusbar.SetRange(r.String())
	m.statusbar.SetPoints(len(points))
	m.updateVisibleStatus()
	m.updateMenuState()
}

// retry reloads the range whose load failed
func (m *Model) retry() tea.Cmd {
	r := m.failedRange
	if r == "" {
		r = m.timeRange
	}
	m.loadErr = nil
	m.mode = ModeNormal
	return m.switchRange(r)
}

// screenshot exports the visible points as a PNG in the background
func (m *Model) screenshot() tea.Cmd {
	from, to := m.timeScale.VisibleIndices()
	to = min(to, len(m.points))
	if to-from < 2 {
		m.statusbar.SetMessage("Nothing to export", "error")
		return nil
	}
	points := m.points[from:to]
	opts := export.OptionsFromConfig(m.config, m.chart.Mode() == chart.ModeLogarithmic)
	opts.Location = m.loc
	dir := m.config.ExportDir()
	r := m.timeRange
	now := m.now()

	m.statusbar.SetMessage("Saving screenshot...", "info")
	return func() tea.Msg {
		path, err := export.Save(dir, points, r, opts, now)
		return exportDoneMsg{path: path, err: err}
	}
}

func (m *Model) handleExportDone(msg exportDoneMsg) {
	if msg.err != nil {
		m.log.Error("screenshot: %v", msg.err)
		if errors.Is(msg.err, export.ErrNotEnoughPoints) {
			m.statusbar.SetMessage("Nothing to export", "error")
			return
		}
		m.statusbar.SetMessage("Error: "+msg.err.Error(), "error")
		return
	}
	m.log.Info("screenshot saved to %s", msg.path)
	m.statusbar.SetMessage(fmt.Sprintf("Saved: %s", msg.path), "success")
}

// copyReadout copies the crosshair readout, or a summary of the visible
// range when the pointer is not over the chart
func (m *Model) copyReadout() {
	if len(m.points) == 0 {
		m.statusbar.SetMessage("Nothing to copy", "error")
		return
	}
	asset := m.config.API.AssetSymbol
	var text string
	if r, ok := chart.NewReadout(m.points, m.hoverIndex, m.loc); ok && m.hovering {
		text = r.String(asset, m.config.API.SecondarySymbol)
	} else {
		from, to := m.timeScale.VisibleIndices()
		text = chart.Summary(m.points, from, to, asset, m.loc)
	}

	method, err := m.clipboard.Copy(text)
	if err != nil {
		m.log.Warning("copy via %s: %v", method, err)
		m.statusbar.SetMessage("Copy failed: "+err.Error(), "error")
		return
	}
	m.statusbar.SetMessage("Copied to "+string(method), "success")
}
