package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// KeyBinding represents a single action's key bindings
type KeyBinding struct {
	Primary   string `toml:"primary"`
	Alternate string `toml:"alternate,omitempty"`
}

// KeybindingsConfig holds all configurable keybindings
type KeybindingsConfig struct {
	// File operations
	Screenshot KeyBinding `toml:"screenshot"`
	Copy       KeyBinding `toml:"copy"`
	Inspect    KeyBinding `toml:"inspect"`
	Reload     KeyBinding `toml:"reload"`
	Quit       KeyBinding `toml:"quit"`

	// Time ranges
	Range1D  KeyBinding `toml:"range_1d"`
	Range1M  KeyBinding `toml:"range_1m"`
	Range3M  KeyBinding `toml:"range_3m"`
	Range1Y  KeyBinding `toml:"range_1y"`
	RangeYTD KeyBinding `toml:"range_ytd"`
	RangeAll KeyBinding `toml:"range_all"`

	// View
	ToggleLog KeyBinding `toml:"toggle_log"`
	ZoomIn    KeyBinding `toml:"zoom_in"`
	ZoomOut   KeyBinding `toml:"zoom_out"`
	PanLeft   KeyBinding `toml:"pan_left"`
	PanRight  KeyBinding `toml:"pan_right"`
	Fit       KeyBinding `toml:"fit"`
	Theme     KeyBinding `toml:"cycle_theme"`

	// Help
	Help KeyBinding `toml:"help"`
	Menu KeyBinding `toml:"menu"`
}

// DefaultKeybindings returns the default keybinding configuration
func DefaultKeybindings() *KeybindingsConfig {
	return &KeybindingsConfig{
		Screenshot: KeyBinding{Primary: "s", Alternate: "ctrl+s"},
		Copy:       KeyBinding{Primary: "c"},
		Inspect:    KeyBinding{Primary: "r"},
		Reload:     KeyBinding{Primary: "ctrl+r"},
		Quit:       KeyBinding{Primary: "q", Alternate: "ctrl+q"},

		Range1D:  KeyBinding{Primary: "1"},
		Range1M:  KeyBinding{Primary: "2"},
		Range3M:  KeyBinding{Primary: "3"},
		Range1Y:  KeyBinding{Primary: "4"},
		RangeYTD: KeyBinding{Primary: "5"},
		RangeAll: KeyBinding{Primary: "6"},

		ToggleLog: KeyBinding{Primary: "l"},
		ZoomIn:    KeyBinding{Primary: "+", Alternate: "="},
		ZoomOut:   KeyBinding{Primary: "-"},
		PanLeft:   KeyBinding{Primary: "left"},
		PanRight:  KeyBinding{Primary: "right"},
		Fit:       KeyBinding{Primary: "f", Alternate: "home"},
		Theme:     KeyBinding{Primary: "t"},

		Help: KeyBinding{Primary: "f1", Alternate: "?"},
		Menu: KeyBinding{Primary: "f10"},
	}
}

// ActionNames maps action names for display
var ActionNames = map[string]string{
	"screenshot":  "Save Screenshot",
	"copy":        "Copy Readout",
	"inspect":     "Inspect Data",
	"reload":      "Reload",
	"quit":        "Quit",
	"range_1d":    "1 Day",
	"range_1m":    "1 Month",
	"range_3m":    "3 Months",
	"range_1y":    "1 Year",
	"range_ytd":   "Year to Date",
	"range_all":   "All Time",
	"toggle_log":  "Log Scale",
	"zoom_in":     "Zoom In",
	"zoom_out":    "Zoom Out",
	"pan_left":    "Pan Left",
	"pan_right":   "Pan Right",
	"fit":         "Fit Content",
	"cycle_theme": "Next Theme",
	"help":        "Help",
	"menu":        "Menu",
}

// KeybindingsPath returns the path to the keybindings file
func KeybindingsPath() (string, error) {
	dir, err := userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "keybindings.toml"), nil
}

// LoadKeybindings loads keybindings from disk, returning defaults if not found
func LoadKeybindings() *KeybindingsConfig {
	path, err := KeybindingsPath()
	if err != nil {
		return DefaultKeybindings()
	}
	return LoadKeybindingsFile(path)
}

// LoadKeybindingsFile loads keybindings from a file; unset actions keep defaults
func LoadKeybindingsFile(path string) *KeybindingsConfig {
	kb := DefaultKeybindings()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return kb
	}

	if _, err := toml.DecodeFile(path, kb); err != nil {
		return DefaultKeybindings()
	}

	return kb
}

// bindings returns pointers to every binding keyed by action name
func (kb *KeybindingsConfig) bindings() map[string]*KeyBinding {
	return map[string]*KeyBinding{
		"screenshot":  &kb.Screenshot,
		"copy":        &kb.Copy,
		"inspect":     &kb.Inspect,
		"reload":      &kb.Reload,
		"quit":        &kb.Quit,
		"range_1d":    &kb.Range1D,
		"range_1m":    &kb.Range1M,
		"range_3m":    &kb.Range3M,
		"range_1y":    &kb.Range1Y,
		"range_ytd":   &kb.RangeYTD,
		"range_all":   &kb.RangeAll,
		"toggle_log":  &kb.ToggleLog,
		"zoom_in":     &kb.ZoomIn,
		"zoom_out":    &kb.ZoomOut,
		"pan_left":    &kb.PanLeft,
		"pan_right":   &kb.PanRight,
		"fit":         &kb.Fit,
		"cycle_theme": &kb.Theme,
		"help":        &kb.Help,
		"menu":        &kb.Menu,
	}
}

// GetBinding returns the KeyBinding for a given action name
func (kb *KeybindingsConfig) GetBinding(action string) KeyBinding {
	if b, ok := kb.bindings()[action]; ok {
		return *b
	}
	return KeyBinding{}
}

// SetBinding sets the KeyBinding for a given action name
func (kb *KeybindingsConfig) SetBinding(action string, binding KeyBinding) {
	if b, ok := kb.bindings()[action]; ok {
		*b = binding
	}
}

// AllActions returns a list of all action names in display order
func AllActions() []string {
	return []string{
		"screenshot", "copy", "inspect", "reload", "quit",
		"range_1d", "range_1m", "range_3m", "range_1y", "range_ytd", "range_all",
		"toggle_log", "zoom_in", "zoom_out", "pan_left", "pan_right", "fit", "cycle_theme",
		"help", "menu",
	}
}

// ActionForKey returns the first action bound to key, or ""
func (kb *KeybindingsConfig) ActionForKey(key string) string {
	for _, action := range AllActions() {
		if kb.GetBinding(action).Matches(key) {
			return action
		}
	}
	return ""
}

// Matches checks if a key string matches this binding (primary or alternate)
func (b KeyBinding) Matches(key string) bool {
	key = strings.ToLower(key)
	return (b.Primary != "" && strings.ToLower(b.Primary) == key) ||
		(b.Alternate != "" && strings.ToLower(b.Alternate) == key)
}

// DisplayString returns a human-readable string for the binding
func (b KeyBinding) DisplayString() string {
	if b.Primary == "" && b.Alternate == "" {
		return "(none)"
	}
	if b.Alternate == "" {
		return FormatKeyForDisplay(b.Primary)
	}
	return FormatKeyForDisplay(b.Primary) + " / " + FormatKeyForDisplay(b.Alternate)
}

// FormatKeyForDisplay converts a key string to a more readable format
func FormatKeyForDisplay(key string) string {
	if key == "" {
		return ""
	}
	switch key {
	case "left":
		return "←"
	case "right":
		return "→"
	case "home":
		return "Home"
	}
	// Capitalize modifiers
	key = strings.ReplaceAll(key, "ctrl+", "Ctrl+")
	key = strings.ReplaceAll(key, "alt+", "Alt+")
	key = strings.ReplaceAll(key, "shift+", "Shift+")
	// F-keys
	if len(key) >= 2 && key[0] == 'f' && key[1] >= '1' && key[1] <= '9' {
		key = "F" + key[1:]
	}
	return key
}

// FindConflicts checks for key conflicts and returns a map of conflicting actions
func (kb *KeybindingsConfig) FindConflicts() map[string][]string {
	conflicts := make(map[string][]string)
	keyToActions := make(map[string][]string)

	for _, action := range AllActions() {
		binding := kb.GetBinding(action)
		if binding.Primary != "" {
			key := strings.ToLower(binding.Primary)
			keyToActions[key] = append(keyToActions[key], action)
		}
		if binding.Alternate != "" {
			key := strings.ToLower(binding.Alternate)
			keyToActions[key] = append(keyToActions[key], action)
		}
	}

	for key, actions := range keyToActions {
		if len(actions) > 1 {
			conflicts[key] = actions
		}
	}

	return conflicts
}
