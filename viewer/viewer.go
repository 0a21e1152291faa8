// Package viewer is the Bubble Tea model of the price chart: the main chart,
// the minimap with its range selector, the menus and the dialogs.
package viewer

import (
	"os"
	"time"

	"github.com/cornish/pricescope/chart"
	"github.com/cornish/pricescope/clipboard"
	"github.com/cornish/pricescope/config"
	"github.com/cornish/pricescope/logger"
	"github.com/cornish/pricescope/market"
	"github.com/cornish/pricescope/rangesel"
	"github.com/cornish/pricescope/syntax"
	"github.com/cornish/pricescope/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// Version is shown in the About dialog and by --version
const Version = "0.1.0"

// Mode represents the viewer mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeMenu
	ModeHelp
	ModeAbout
	ModeInspect
	ModeError
	ModeConfigError
)

// Options carries the collaborators of a Model. Zero values get defaults.
type Options struct {
	Fetcher     market.Fetcher
	Clipboard   *clipboard.Clipboard
	Logger      *logger.Logger
	Keybindings *config.KeybindingsConfig
	Location    *time.Location
	Range       market.TimeRange // Overrides the configured default range
	LogScale    bool             // Forces a logarithmic price scale
	ASCII       *bool            // Overrides ascii_mode from the config
	ConfigPath  string           // Where theme changes are saved, empty to not save
	Now         func() time.Time
}

// Model is the main Bubbletea model for the chart viewer
type Model struct {
	// Chart components
	timeScale   *chart.TimeScale
	chart       *chart.Renderer
	minimap     *chart.MinimapRenderer
	selector    *rangesel.Selector
	unsubscribe func()

	// UI components
	menubar   *ui.MenuBar
	statusbar *ui.StatusBar
	overlay   *ui.SelectorOverlay
	tooltip   *ui.Tooltip
	scrollbar *ui.Scrollbar
	styles    ui.Styles
	box       ui.BoxChars
	ascii     bool

	// Services
	loader      *market.Loader
	clipboard   *clipboard.Clipboard
	highlighter *syntax.Highlighter
	keys        *config.KeybindingsConfig
	log         *logger.Logger
	loc         *time.Location
	now         func() time.Time

	// State
	mode   Mode
	width  int
	height int

	// Data of the last applied load
	timeRange market.TimeRange
	points    []market.DataPoint
	loading   bool

	// Load error dialog
	loadErr     error
	failedRange market.TimeRange

	// Selector sync runs one frame after the time scale changes
	syncPending   bool
	syncScheduled bool

	// Crosshair state
	hovering   bool
	hoverIndex int
	hoverX     int
	hoverY     int

	// Inspector state
	inspectLines  []string
	inspectScroll int

	// Config error dialog
	configErrorPath string
	configErrorMsg  string

	// Configuration
	config     *config.Config
	configPath string
}

// New creates a viewer for the given configuration
func New(cfg *config.Config, opts Options) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}
	keys := opts.Keybindings
	if keys == nil {
		keys = config.DefaultKeybindings()
	}
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	fetcher := opts.Fetcher
	if fetcher == nil {
		fetcher = market.NewClient(cfg.API.BaseURL, cfg.API.AssetID, cfg.API.Timeout())
	}
	clip := opts.Clipboard
	if clip == nil {
		clip = clipboard.New(os.Stdout)
	}

	asciiOverride := cfg.Chart.AsciiMode
	if opts.ASCII != nil {
		asciiOverride = opts.ASCII
	}
	ascii := config.GetCapabilities().ShouldUseASCII(asciiOverride)
	box := ui.GetBoxChars(ascii)
	theme := cfg.Theme.GetResolved()
	styles := ui.NewStyles(theme)
	colors := theme.Chart

	timeScale := chart.NewTimeScale(log.Named("timescale"))
	selector := rangesel.NewSelector(cfg.Chart.TrackWidth, timeScale, log.Named("selector"))
	selector.Handler().SetMaxPointPerPixel(cfg.Chart.MaxPointPerPixel)

	highlighter := syntax.New()
	highlighter.SetColors(syntaxColors(theme))

	m := &Model{
		timeScale:   timeScale,
		chart:       chart.NewRenderer(timeScale, colors, box, ascii),
		minimap:     chart.NewMinimapRenderer(colors, box, ascii),
		selector:    selector,
		menubar:     ui.NewMenuBar(styles),
		statusbar:   ui.NewStatusBar(styles),
		overlay:     ui.NewSelectorOverlay(styles, box),
		tooltip:     ui.NewTooltip(styles, box),
		scrollbar:   ui.NewScrollbar(styles, box),
		styles:      styles,
		box:         box,
		ascii:       ascii,
		loader:      market.NewLoader(fetcher, cfg.API.Timeout()),
		clipboard:   clip,
		highlighter: highlighter,
		keys:        keys,
		log:         log,
		loc:         loc,
		now:         now,
		mode:        ModeNormal,
		width:       80,
		height:      24,
		config:      cfg,
		configPath:  opts.ConfigPath,
	}
	m.chart.SetLocation(loc)
	m.minimap.SetLocation(loc)

	m.timeRange = market.RangeAll
	if r, err := market.ParseRange(cfg.Chart.DefaultRange); err == nil {
		m.timeRange = r
	} else {
		log.Warning("default range: %v", err)
	}
	if opts.Range != "" {
		m.timeRange = opts.Range
	}

	if cfg.Chart.LogScale || opts.LogScale {
		m.setLogScale(true)
	}

	// Main chart range changes reach the minimap one frame later
	m.unsubscribe = timeScale.SubscribeVisibleLogicalRangeChange(func(rangesel.LogicalRange) {
		m.syncPending = true
	})

	m.statusbar.SetAsset(cfg.API.AssetSymbol)
	m.statusbar.SetRange(m.timeRange.String())
	m.updateMenuState()

	return m
}

// SetConfigError shows the config error dialog on startup
func (m *Model) SetConfigError(path, msg string) {
	m.configErrorPath = path
	m.configErrorMsg = msg
	m.mode = ModeConfigError
}

// Close detaches the viewer from the time scale
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.EnableMouseAllMotion,
		m.loadRange(m.timeRange),
	)
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.update(msg)
	if m.syncPending && !m.syncScheduled {
		m.syncScheduled = true
		cmd = tea.Batch(cmd, syncTick())
	}
	return m, cmd
}

func (m *Model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.menubar.SetWidth(msg.Width)
		m.statusbar.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case dataLoadedMsg:
		return m.handleLoaded(msg)

	case syncMsg:
		m.syncSelector()
		return m, nil

	case exportDoneMsg:
		m.handleExportDone(msg)
		return m, nil
	}

	return m, nil
}

// screenLayout is the row split of the terminal
type screenLayout struct {
	chartY   int
	chartH   int
	minimapY int
	minimapH int
	statusY  int
}

// minimapRows converts the configured pixel height into terminal rows
func (m *Model) minimapRows() int {
	rows := (m.config.Chart.MinimapHeight + 7) / 15
	if rows < 3 {
		rows = 3
	}
	return rows
}

// layout splits the screen into menu, legend, chart, minimap and status rows
func (m *Model) layout() screenLayout {
	minimapH := m.minimapRows()
	// Menu bar, legend and status bar take one row each
	chartH := m.height - 3 - minimapH
	if chartH < 2 {
		minimapH = max(1, minimapH+chartH-2)
		chartH = max(0, m.height-3-minimapH)
	}
	return screenLayout{
		chartY:   2,
		chartH:   chartH,
		minimapY: 2 + chartH,
		minimapH: minimapH,
		statusY:  2 + chartH + minimapH,
	}
}

// trackScale maps minimap columns onto the fixed-width selector track
func (m *Model) trackScale() ui.TrackScale {
	return ui.TrackScale{Cols: m.width, TrackWidth: m.config.Chart.TrackWidth}
}

// setLogScale switches the main chart price scale
func (m *Model) setLogScale(log bool) {
	mode := chart.ModeNormal
	if log {
		mode = chart.ModeLogarithmic
	}
	m.chart.SetMode(mode)
	m.statusbar.SetLogScale(log)
	m.menubar.SetChecked(ui.ActionToggleLog, log)
}

// toggleLog toggles the logarithmic price scale
func (m *Model) toggleLog() {
	log := m.chart.Mode() != chart.ModeLogarithmic
	m.setLogScale(log)
	if log {
		m.statusbar.SetMessage("Logarithmic price scale", "info")
	} else {
		m.statusbar.SetMessage("Linear price scale", "info")
	}
}

// updateMenuState syncs the menu checkmarks and disabled items with the data
func (m *Model) updateMenuState() {
	for i, action := range ui.RangeActions {
		m.menubar.SetChecked(action, market.Ranges[i] == m.timeRange)
	}
	empty := len(m.points) == 0
	m.menubar.SetItemDisabled(ui.ActionScreenshot, len(m.points) < 2)
	m.menubar.SetItemDisabled(ui.ActionCopy, empty)
	m.menubar.SetItemDisabled(ui.ActionInspect, empty)
}

// syncSelector positions the selector from the main chart's visible range
func (m *Model) syncSelector() {
	m.syncScheduled = false
	if !m.syncPending {
		return
	}
	m.syncPending = false
	r := m.timeScale.VisibleLogicalRange()
	if m.selector.SyncFromLogical(r) {
		m.log.Debug("selector synced to %s", r)
	}
	m.updateVisibleStatus()
}

// updateVisibleStatus shows the dates of the visible range in the status bar
func (m *Model) updateVisibleStatus() {
	from, to := m.timeScale.VisibleIndices()
	if to <= from || to > len(m.points) {
		m.statusbar.SetVisible("")
		return
	}
	layout := "2006-01-02"
	if m.points[to-1].Time-m.points[from].Time <= 2*24*60*60 {
		layout = "01-02 15:04"
	}
	first := time.Unix(m.points[from].Time, 0).In(m.loc).Format(layout)
	last := time.Unix(m.points[to-1].Time, 0).In(m.loc).Format(layout)
	m.statusbar.SetVisible(first + ".." + last)
}

func syncTick() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return syncMsg{}
	})
}

// frameInterval stands in for one animation frame
const frameInterval = time.Second / 60

// syntaxColors picks the inspector colors out of a theme
func syntaxColors(theme config.Theme) syntax.SyntaxColors {
	return syntax.SyntaxColors{
		Keyword:  theme.Syntax.Keyword,
		String:   theme.Syntax.String,
		Comment:  theme.Syntax.Comment,
		Number:   theme.Syntax.Number,
		Operator: theme.Syntax.Operator,
		Function: theme.Syntax.Function,
		Error:    theme.UI.ErrorFg,
	}
}
