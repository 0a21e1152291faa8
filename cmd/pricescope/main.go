package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/cornish/pricescope/config"
	"github.com/cornish/pricescope/logger"
	"github.com/cornish/pricescope/market"
	"github.com/cornish/pricescope/ui"
	"github.com/cornish/pricescope/viewer"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	// Parse command line arguments
	args := os.Args[1:]
	var rangeArg, debugFile string
	asciiMode := false
	logScale := false

	// Handle flags
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "--version", "-v":
			fmt.Printf("pricescope %s\n", viewer.Version)
			os.Exit(0)
		case "--help", "-h":
			printHelp()
			os.Exit(0)
		case "--ascii":
			asciiMode = true
		case "--log":
			logScale = true
		case "--range", "-r", "--debug":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "%s needs a value\n", arg)
				os.Exit(2)
			}
			i++
			if arg == "--debug" {
				debugFile = args[i]
			} else {
				rangeArg = args[i]
			}
		default:
			fmt.Fprintf(os.Stderr, "Unknown option: %s\n", arg)
			printHelp()
			os.Exit(2)
		}
	}

	var r market.TimeRange
	if rangeArg != "" {
		var err error
		if r, err = market.ParseRange(rangeArg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
	}

	log := logger.Discard()
	if debugFile != "" {
		f, err := tea.LogToFile(debugFile, "pricescope")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening debug log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log = logger.New(f, "pricescope")
	}

	// Detect terminal capabilities early
	config.InitCapabilities()
	caps := config.GetCapabilities()

	// Load configuration
	cfg, configErr := config.Load()
	if err := cfg.ApplyEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg.Normalize()
	ui.UseTrueColor = caps.ShouldUseTrueColor(cfg.Chart.TrueColor)
	log.Info("color mode %s, api %s", caps.ColorMode, cfg.API.BaseURL)

	opts := viewer.Options{
		Logger:      log,
		Keybindings: config.LoadKeybindings(),
		Range:       r,
		LogScale:    logScale,
	}
	// Theme changes are saved unless the file failed to parse
	if path, err := config.ConfigPath(); err == nil && configErr == nil {
		opts.ConfigPath = path
	}
	// Command-line --ascii overrides config
	if asciiMode {
		t := true
		opts.ASCII = &t
	}

	m := viewer.New(cfg, opts)
	defer m.Close()

	// If config had parse errors, show error dialog on startup
	var loadErr *config.ConfigLoadError
	if errors.As(configErr, &loadErr) {
		m.SetConfigError(loadErr.FilePath, loadErr.Err.Error())
	}

	// Create and run the Bubbletea program
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running pricescope: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("Pricescope - A Price Chart for the Terminal")
	fmt.Println()
	fmt.Println("Usage: pricescope [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -h, --help         Show this help message")
	fmt.Println("  -v, --version      Show version information")
	fmt.Printf("  -r, --range RANGE  Initial range (%s)\n", rangeList())
	fmt.Println("  --log              Start with a logarithmic price scale")
	fmt.Println("  --ascii            Use ASCII characters for the chart and dialogs")
	fmt.Println("  --debug FILE       Write a debug log to FILE")
	fmt.Println()
	fmt.Println("Environment:")
	fmt.Println("  " + config.EnvAPIBase + "    API base URL")
	fmt.Println("  " + config.EnvAssetID + "    Asset id to chart")
	fmt.Println("  " + config.EnvExportDir + "  Screenshot directory")
	fmt.Println()
	fmt.Println("Keyboard Shortcuts:")
	fmt.Println("  1-6            Switch range")
	fmt.Println("  +/-            Zoom in/out")
	fmt.Println("  Left/Right     Pan")
	fmt.Println("  F / Home       Fit all points")
	fmt.Println("  L              Toggle log scale")
	fmt.Println("  T              Next theme")
	fmt.Println("  S              Save screenshot")
	fmt.Println("  C              Copy readout")
	fmt.Println("  R              Inspect data")
	fmt.Println("  F10            Open menu")
	fmt.Println("  F1             Show help")
	fmt.Println("  Q              Quit")
	fmt.Println()
	fmt.Println("Mouse:")
	fmt.Println("  Drag minimap   Move or resize the visible window")
	fmt.Println("  Hover          Show crosshair values")
	fmt.Println("  Scroll         Zoom the chart")
}

func rangeList() string {
	names := make([]string, len(market.Ranges))
	for i, r := range market.Ranges {
		names[i] = r.String()
	}
	return strings.Join(names, ", ")
}
