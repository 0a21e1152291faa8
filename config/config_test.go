package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Chart.TrackWidth != 928 {
		t.Errorf("TrackWidth = %v, want 928", cfg.Chart.TrackWidth)
	}
	if cfg.Chart.MinimapHeight != 60 {
		t.Errorf("MinimapHeight = %d, want 60", cfg.Chart.MinimapHeight)
	}
	if cfg.Chart.MaxPointPerPixel != 1.77 {
		t.Errorf("MaxPointPerPixel = %v, want 1.77", cfg.Chart.MaxPointPerPixel)
	}
	if cfg.Chart.DefaultRange != "ALL" {
		t.Errorf("DefaultRange = %q, want ALL", cfg.Chart.DefaultRange)
	}
	if cfg.API.AssetID != 1027 {
		t.Errorf("AssetID = %d, want 1027", cfg.API.AssetID)
	}
	if cfg.API.Timeout() != 30*time.Second {
		t.Errorf("Timeout() = %v, want 30s", cfg.API.Timeout())
	}
	if cfg.Theme.Name != "default" {
		t.Errorf("Theme.Name = %q, want 'default'", cfg.Theme.Name)
	}
	if cfg.Chart.TrueColor != nil || cfg.Chart.AsciiMode != nil {
		t.Error("TrueColor and AsciiMode should default to auto-detect")
	}
}

func TestNormalize(t *testing.T) {
	cfg := &Config{}
	cfg.Chart.TrackWidth = -5
	cfg.API.AssetID = 52
	cfg.Normalize()

	def := DefaultConfig()
	if cfg.Chart.TrackWidth != def.Chart.TrackWidth {
		t.Errorf("TrackWidth = %v, want %v", cfg.Chart.TrackWidth, def.Chart.TrackWidth)
	}
	if cfg.Chart.MaxPointPerPixel != def.Chart.MaxPointPerPixel {
		t.Errorf("MaxPointPerPixel = %v, want %v", cfg.Chart.MaxPointPerPixel, def.Chart.MaxPointPerPixel)
	}
	if cfg.API.AssetID != 52 {
		t.Errorf("AssetID = %d, want 52 to be kept", cfg.API.AssetID)
	}
	if cfg.API.BaseURL != def.API.BaseURL {
		t.Errorf("BaseURL = %q, want %q", cfg.API.BaseURL, def.API.BaseURL)
	}
	if cfg.Export.Width != def.Export.Width || cfg.Export.Height != def.Export.Height {
		t.Errorf("Export size = %dx%d, want defaults", cfg.Export.Width, cfg.Export.Height)
	}
}

func TestLoadFileMissing(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if cfg.Chart.TrackWidth != DefaultTrackWidth {
		t.Errorf("TrackWidth = %v, want default", cfg.Chart.TrackWidth)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[chart]
track_width = 500
default_range = "1Y"
log_scale = true

[api]
asset_id = 1
asset_symbol = "BTC"
secondary_symbol = "ETH"
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if cfg.Chart.TrackWidth != 500 {
		t.Errorf("TrackWidth = %v, want 500", cfg.Chart.TrackWidth)
	}
	if cfg.Chart.DefaultRange != "1Y" || !cfg.Chart.LogScale {
		t.Errorf("chart = %+v", cfg.Chart)
	}
	if cfg.API.AssetID != 1 || cfg.API.AssetSymbol != "BTC" {
		t.Errorf("api = %+v", cfg.API)
	}
	// Unset keys keep their defaults
	if cfg.Chart.MinimapHeight != DefaultMinimapHeight {
		t.Errorf("MinimapHeight = %d, want default", cfg.Chart.MinimapHeight)
	}
}

func TestLoadFileParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[chart\ntrack_width = "), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err == nil {
		t.Fatal("LoadFile() should fail on invalid TOML")
	}
	var loadErr *ConfigLoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("error %T is not a *ConfigLoadError", err)
	}
	if loadErr.FilePath != path {
		t.Errorf("FilePath = %q, want %q", loadErr.FilePath, path)
	}
	if cfg == nil || cfg.Chart.TrackWidth != DefaultTrackWidth {
		t.Error("LoadFile() should return defaults alongside the error")
	}
}

func TestSaveFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := DefaultConfig()
	cfg.Chart.DefaultRange = "3M"
	cfg.Export.Watermark = ""
	ascii := true
	cfg.Chart.AsciiMode = &ascii

	if err := cfg.SaveFile(path); err != nil {
		t.Fatalf("SaveFile() error: %v", err)
	}
	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if loaded.Chart.DefaultRange != "3M" {
		t.Errorf("DefaultRange = %q, want 3M", loaded.Chart.DefaultRange)
	}
	if loaded.Chart.AsciiMode == nil || !*loaded.Chart.AsciiMode {
		t.Error("AsciiMode override was not saved")
	}
}

func TestApplyEnv(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	data := "PRICESCOPE_API_BASE=http://file.example\nPRICESCOPE_ASSET_ID=5426\n"
	if err := os.WriteFile(envFile, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvAPIBase, "http://env.example")
	t.Setenv(EnvAssetID, "")
	t.Setenv(EnvExportDir, "/tmp/shots")

	cfg := DefaultConfig()
	if err := cfg.ApplyEnv(envFile); err != nil {
		t.Fatalf("ApplyEnv() error: %v", err)
	}
	if cfg.API.BaseURL != "http://env.example" {
		t.Errorf("BaseURL = %q, environment should win over .env", cfg.API.BaseURL)
	}
	if cfg.API.AssetID != 5426 {
		t.Errorf("AssetID = %d, want 5426 from .env", cfg.API.AssetID)
	}
	if cfg.Export.Dir != "/tmp/shots" {
		t.Errorf("Export.Dir = %q, want /tmp/shots", cfg.Export.Dir)
	}
}

func TestApplyEnvMissingFile(t *testing.T) {
	t.Setenv(EnvAPIBase, "")
	t.Setenv(EnvAssetID, "")
	t.Setenv(EnvExportDir, "")

	cfg := DefaultConfig()
	if err := cfg.ApplyEnv(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Fatalf("ApplyEnv() error for missing file: %v", err)
	}
	if cfg.API.BaseURL != DefaultConfig().API.BaseURL {
		t.Errorf("BaseURL changed to %q", cfg.API.BaseURL)
	}
}

func TestApplyEnvInvalidAssetID(t *testing.T) {
	t.Setenv(EnvAssetID, "eth")

	cfg := DefaultConfig()
	if err := cfg.ApplyEnv(""); err == nil {
		t.Error("ApplyEnv() should reject a non-numeric asset id")
	}
	if cfg.API.AssetID != 1027 {
		t.Errorf("AssetID = %d, want unchanged 1027", cfg.API.AssetID)
	}
}

func TestExportDir(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	cfg := DefaultConfig()
	cfg.Export.Dir = "~/shots"
	if got, want := cfg.ExportDir(), filepath.Join(home, "shots"); got != want {
		t.Errorf("ExportDir() = %q, want %q", got, want)
	}

	cfg.Export.Dir = "/var/tmp"
	if got := cfg.ExportDir(); got != "/var/tmp" {
		t.Errorf("ExportDir() = %q, want /var/tmp", got)
	}
}

func TestConfigLoadError(t *testing.T) {
	err := &ConfigLoadError{
		FilePath: "/path/to/config.toml",
		Err:      os.ErrNotExist,
	}

	if err.Error() != os.ErrNotExist.Error() {
		t.Errorf("ConfigLoadError.Error() = %q, want %q", err.Error(), os.ErrNotExist.Error())
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Error("ConfigLoadError should unwrap to its cause")
	}
}

func TestConfigPath(t *testing.T) {
	path, err := ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath() error: %v", err)
	}

	if !filepath.IsAbs(path) {
		t.Errorf("ConfigPath() = %q, want absolute path", path)
	}

	if filepath.Base(path) != "config.toml" {
		t.Errorf("ConfigPath() base = %q, want 'config.toml'", filepath.Base(path))
	}

	if !strings.Contains(path, "pricescope") {
		t.Errorf("ConfigPath() = %q, should contain 'pricescope'", path)
	}
}

func TestThemesDir(t *testing.T) {
	dir, err := ThemesDir()
	if err != nil {
		t.Fatalf("ThemesDir() error: %v", err)
	}

	if !filepath.IsAbs(dir) {
		t.Errorf("ThemesDir() = %q, want absolute path", dir)
	}

	if filepath.Base(dir) != "themes" {
		t.Errorf("ThemesDir() base = %q, want 'themes'", filepath.Base(dir))
	}
}

func TestKeybindings(t *testing.T) {
	kb := DefaultKeybindings()

	tests := []struct {
		key  string
		want string
	}{
		{"1", "range_1d"},
		{"6", "range_all"},
		{"s", "screenshot"},
		{"ctrl+s", "screenshot"},
		{"L", "toggle_log"},
		{"=", "zoom_in"},
		{"home", "fit"},
		{"x", ""},
	}
	for _, tt := range tests {
		if got := kb.ActionForKey(tt.key); got != tt.want {
			t.Errorf("ActionForKey(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}

	if conflicts := kb.FindConflicts(); len(conflicts) != 0 {
		t.Errorf("default keybindings conflict: %v", conflicts)
	}

	if got := kb.GetBinding("help").DisplayString(); got != "F1 / ?" {
		t.Errorf("help DisplayString() = %q, want 'F1 / ?'", got)
	}
	if got := kb.GetBinding("pan_left").DisplayString(); got != "←" {
		t.Errorf("pan_left DisplayString() = %q, want '←'", got)
	}
	if got := kb.GetBinding("unknown").DisplayString(); got != "(none)" {
		t.Errorf("unknown DisplayString() = %q, want '(none)'", got)
	}

	kb.SetBinding("fit", KeyBinding{Primary: "s"})
	if conflicts := kb.FindConflicts(); len(conflicts["s"]) != 2 {
		t.Errorf("FindConflicts()[s] = %v, want screenshot and fit", conflicts["s"])
	}
}

func TestLoadKeybindingsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keybindings.toml")
	data := "[toggle_log]\nprimary = \"g\"\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	kb := LoadKeybindingsFile(path)
	if got := kb.ActionForKey("g"); got != "toggle_log" {
		t.Errorf("ActionForKey(g) = %q, want toggle_log", got)
	}
	if got := kb.ActionForKey("1"); got != "range_1d" {
		t.Errorf("unset bindings should keep defaults, ActionForKey(1) = %q", got)
	}
}

func TestLoadThemeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mine.toml")
	data := "name = \"mine\"\n\n[chart]\nprice = \"#00FF00\"\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	theme, err := LoadThemeFile(path)
	if err != nil {
		t.Fatalf("LoadThemeFile() error: %v", err)
	}
	def := DefaultTheme()
	if theme.Chart.Price != "#00FF00" {
		t.Errorf("Chart.Price = %q, want #00FF00", theme.Chart.Price)
	}
	if theme.Chart.Grid != def.Chart.Grid {
		t.Errorf("Chart.Grid = %q, want default %q", theme.Chart.Grid, def.Chart.Grid)
	}
	if theme.UI.MenuBg != def.UI.MenuBg {
		t.Errorf("UI.MenuBg = %q, want default %q", theme.UI.MenuBg, def.UI.MenuBg)
	}

	if _, err := LoadThemeFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("LoadThemeFile() should fail for a missing file")
	}
}

func TestBuiltinThemes(t *testing.T) {
	for _, name := range ThemeNames() {
		theme, ok := builtinThemes[name]
		if !ok {
			t.Errorf("theme %q listed but not built in", name)
			continue
		}
		if theme.Chart.Price == "" || theme.Chart.Grid == "" {
			t.Errorf("theme %q is missing chart colors", name)
		}
	}
	if got := LoadTheme("no-such-theme").Name; got != DefaultTheme().Name {
		t.Errorf("LoadTheme(unknown).Name = %q, want default", got)
	}
}
