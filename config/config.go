package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// configDirName is the directory under the user config dir
const configDirName = "pricescope"

// Config holds the viewer configuration
type Config struct {
	Chart  ChartConfig  `toml:"chart"`
	API    APIConfig    `toml:"api"`
	Export ExportConfig `toml:"export"`
	Theme  ThemeConfig  `toml:"theme"`
}

// ChartConfig holds the chart and minimap settings
type ChartConfig struct {
	TrackWidth       float64 `toml:"track_width"`         // Minimap track width in pixels
	MinimapHeight    int     `toml:"minimap_height"`      // Minimap height in pixels
	MaxPointPerPixel float64 `toml:"max_point_per_pixel"` // Density cap for the main chart
	DefaultRange     string  `toml:"default_range"`       // 1D, 1M, 3M, 1Y, YTD or ALL
	LogScale         bool    `toml:"log_scale"`           // Start with a logarithmic price scale
	TrueColor        *bool   `toml:"true_color"`          // nil = auto, false = force 256-color
	AsciiMode        *bool   `toml:"ascii_mode"`          // nil = auto-detect, true/false = override
}

// APIConfig holds the data source settings
type APIConfig struct {
	BaseURL         string `toml:"base_url"`
	AssetID         int    `toml:"asset_id"`
	AssetSymbol     string `toml:"asset_symbol"`     // Label for the main series
	SecondarySymbol string `toml:"secondary_symbol"` // Label for the reference series
	TimeoutSeconds  int    `toml:"timeout_seconds"`
}

// Timeout returns the request timeout
func (a APIConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// ExportConfig holds screenshot settings
type ExportConfig struct {
	Dir       string `toml:"dir"`       // Where screenshots are written, ~ is expanded
	Watermark string `toml:"watermark"` // Empty disables the watermark
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
}

// ThemeConfig holds the theme reference in the main config
// Just references a theme by name - the actual colors come from theme files
type ThemeConfig struct {
	Name string `toml:"name"` // Theme name (built-in or from themes/ directory)
}

// Defaults that mirror the web widget this viewer is modelled on
const (
	DefaultTrackWidth       = 928
	DefaultMinimapHeight    = 60
	DefaultMaxPointPerPixel = 1.77
	DefaultTimeoutSeconds   = 30
)

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Chart: ChartConfig{
			TrackWidth:       DefaultTrackWidth,
			MinimapHeight:    DefaultMinimapHeight,
			MaxPointPerPixel: DefaultMaxPointPerPixel,
			DefaultRange:     "ALL",
		},
		API: APIConfig{
			BaseURL:         "https://api.coinmarketcap.com",
			AssetID:         1027,
			AssetSymbol:     "ETH",
			SecondarySymbol: "BTC",
			TimeoutSeconds:  DefaultTimeoutSeconds,
		},
		Export: ExportConfig{
			Dir:       "~/Pictures/pricescope",
			Watermark: "pricescope",
			Width:     DefaultTrackWidth,
			Height:    400,
		},
		Theme: ThemeConfig{
			Name: "default",
		},
	}
}

// Normalize replaces unusable values with defaults
func (c *Config) Normalize() {
	def := DefaultConfig()
	if !(c.Chart.TrackWidth > 0) {
		c.Chart.TrackWidth = def.Chart.TrackWidth
	}
	if c.Chart.MinimapHeight <= 0 {
		c.Chart.MinimapHeight = def.Chart.MinimapHeight
	}
	if !(c.Chart.MaxPointPerPixel > 0) {
		c.Chart.MaxPointPerPixel = def.Chart.MaxPointPerPixel
	}
	if c.Chart.DefaultRange == "" {
		c.Chart.DefaultRange = def.Chart.DefaultRange
	}
	if c.API.BaseURL == "" {
		c.API.BaseURL = def.API.BaseURL
	}
	if c.API.AssetID <= 0 {
		c.API.AssetID = def.API.AssetID
	}
	if c.API.AssetSymbol == "" {
		c.API.AssetSymbol = def.API.AssetSymbol
	}
	if c.API.SecondarySymbol == "" {
		c.API.SecondarySymbol = def.API.SecondarySymbol
	}
	if c.API.TimeoutSeconds <= 0 {
		c.API.TimeoutSeconds = def.API.TimeoutSeconds
	}
	if c.Export.Dir == "" {
		c.Export.Dir = def.Export.Dir
	}
	if c.Export.Width <= 0 {
		c.Export.Width = def.Export.Width
	}
	if c.Export.Height <= 0 {
		c.Export.Height = def.Export.Height
	}
	if c.Theme.Name == "" {
		c.Theme.Name = def.Theme.Name
	}
}

// ExportDir returns the export directory with ~ expanded
func (c *Config) ExportDir() string {
	dir := c.Export.Dir
	if dir == "~" || strings.HasPrefix(dir, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, strings.TrimPrefix(dir, "~"))
		}
	}
	return dir
}

func userConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, configDirName), nil
}

// ConfigPath returns the path to the config file
func ConfigPath() (string, error) {
	dir, err := userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ThemesDir returns the path to the user themes directory
func ThemesDir() (string, error) {
	dir, err := userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "themes"), nil
}

// ConfigLoadError holds details about a config loading error
type ConfigLoadError struct {
	FilePath string
	Err      error
}

func (e *ConfigLoadError) Error() string {
	return e.Err.Error()
}

func (e *ConfigLoadError) Unwrap() error {
	return e.Err
}

// Load reads the configuration from disk
// Returns default config if file doesn't exist
// Returns ConfigLoadError if file exists but has parse errors
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil // Return defaults on error
	}
	return LoadFile(path)
}

// LoadFile reads the configuration from a specific file
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil // Return defaults if no config file
	}

	// Parse the config file
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return DefaultConfig(), &ConfigLoadError{FilePath: path, Err: err}
	}

	cfg.Normalize()
	return cfg, nil
}

// SaveFile writes the configuration to a specific file
func (c *Config) SaveFile(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	// Create/overwrite the file
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	// Write header comment
	f.WriteString("# pricescope configuration\n\n")

	// Encode config as TOML
	encoder := toml.NewEncoder(f)
	return encoder.Encode(c)
}

// GetResolved loads and returns the complete theme
func (t *ThemeConfig) GetResolved() Theme {
	return LoadTheme(t.Name)
}
