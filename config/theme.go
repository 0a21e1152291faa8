package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Theme holds complete color theme settings
// This is the format for theme TOML files in ~/.config/pricescope/themes/
type Theme struct {
	// Metadata
	Name        string `toml:"name"`
	Description string `toml:"description"`
	Author      string `toml:"author"`

	// UI Colors
	UI UIColors `toml:"ui"`

	// Chart colors
	Chart ChartColors `toml:"chart"`

	// Syntax highlighting colors for the data inspector
	Syntax SyntaxColors `toml:"syntax"`
}

// UIColors holds UI color settings
type UIColors struct {
	MenuBg          string `toml:"menu_bg"`
	MenuFg          string `toml:"menu_fg"`
	MenuHighlightBg string `toml:"menu_highlight_bg"`
	MenuHighlightFg string `toml:"menu_highlight_fg"`
	StatusBg        string `toml:"status_bg"`
	StatusFg        string `toml:"status_fg"`
	StatusAccent    string `toml:"status_accent"`
	ErrorFg         string `toml:"error_fg"`
	DisabledFg      string `toml:"disabled_fg"`
	// Dialog colors
	DialogBg       string `toml:"dialog_bg"`
	DialogFg       string `toml:"dialog_fg"`
	DialogBorder   string `toml:"dialog_border"`
	DialogTitle    string `toml:"dialog_title"`
	DialogButton   string `toml:"dialog_button"`
	DialogButtonFg string `toml:"dialog_button_fg"`
}

// ChartColors holds series and axis colors
type ChartColors struct {
	Price       string `toml:"price"`
	Secondary   string `toml:"secondary"`
	Volume      string `toml:"volume"`
	Minimap     string `toml:"minimap"`
	Axis        string `toml:"axis"`
	Crosshair   string `toml:"crosshair"`
	SelectorBg  string `toml:"selector_bg"`  // Inside the minimap window
	SelectorDim string `toml:"selector_dim"` // Minimap outside the window
	Handle      string `toml:"handle"`
	Grid        string `toml:"grid"`
}

// SyntaxColors holds syntax highlighting color settings
type SyntaxColors struct {
	Keyword  string `toml:"keyword"`
	String   string `toml:"string"`
	Comment  string `toml:"comment"`
	Number   string `toml:"number"`
	Operator string `toml:"operator"`
	Function string `toml:"function"` // Object keys
}

// chart colors shared by the built-in themes
var webChartColors = ChartColors{
	Price:       "#16c784",
	Secondary:   "#FFBB1F",
	Volume:      "#CFD6E4",
	Minimap:     "#4878FF",
	Axis:        "#808A9D",
	Crosshair:   "#A6B0C3",
	SelectorBg:  "236",
	SelectorDim: "240",
	Handle:      "#A6B0C3",
	Grid:        "238",
}

// Built-in themes
var builtinThemes = map[string]Theme{
	"default": {
		Name:        "default",
		Description: "Dark terminal with the exchange's series colors",
		Author:      "pricescope",
		UI: UIColors{
			MenuBg:          "236", // Dark gray
			MenuFg:          "252", // Light gray
			MenuHighlightBg: "24",  // Dark cyan
			MenuHighlightFg: "15",  // Bright white
			StatusBg:        "236", // Dark gray
			StatusFg:        "252", // Light gray
			StatusAccent:    "43",  // Teal
			ErrorFg:         "203", // Soft red
			DisabledFg:      "240", // Medium gray
			DialogBg:        "238", // Darker gray
			DialogFg:        "252", // Light gray
			DialogBorder:    "245", // Medium gray
			DialogTitle:     "43",  // Teal
			DialogButton:    "24",  // Dark cyan
			DialogButtonFg:  "15",  // White
		},
		Chart: webChartColors,
		Syntax: SyntaxColors{
			Keyword:  "176", // Purple
			String:   "114", // Green
			Comment:  "245", // Gray
			Number:   "215", // Orange
			Operator: "80",  // Cyan
			Function: "75",  // Light blue
		},
	},
	"classic": {
		Name:        "classic",
		Description: "Blue DOS style with cyan highlights",
		Author:      "pricescope",
		UI: UIColors{
			MenuBg:          "4",  // Dark blue
			MenuFg:          "15", // Bright white
			MenuHighlightBg: "6",  // Cyan
			MenuHighlightFg: "16", // True black
			StatusBg:        "4",  // Dark blue
			StatusFg:        "15", // Bright white
			StatusAccent:    "14", // Bright cyan
			ErrorFg:         "9",  // Bright red
			DisabledFg:      "8",  // Gray
			DialogBg:        "7",  // Light gray
			DialogFg:        "0",  // Black
			DialogBorder:    "0",  // Black
			DialogTitle:     "4",  // Blue
			DialogButton:    "2",  // Green
			DialogButtonFg:  "15", // White
		},
		Chart: ChartColors{
			Price:       "10", // Bright green
			Secondary:   "11", // Bright yellow
			Volume:      "7",  // Light gray
			Minimap:     "12", // Bright blue
			Axis:        "7",  // Light gray
			Crosshair:   "14", // Bright cyan
			SelectorBg:  "4",  // Dark blue
			SelectorDim: "8",  // Gray
			Handle:      "15", // White
			Grid:        "8",  // Gray
		},
		Syntax: SyntaxColors{
			Keyword:  "14", // Bright cyan
			String:   "10", // Bright green
			Comment:  "8",  // Gray
			Number:   "11", // Bright yellow
			Operator: "13", // Bright magenta
			Function: "12", // Bright blue
		},
	},
	"light": {
		Name:        "light",
		Description: "Light theme matching the web widget",
		Author:      "pricescope",
		UI: UIColors{
			MenuBg:          "254", // Light gray
			MenuFg:          "235", // Dark gray
			MenuHighlightBg: "32",  // Blue
			MenuHighlightFg: "15",  // White
			StatusBg:        "254", // Light gray
			StatusFg:        "235", // Dark gray
			StatusAccent:    "26",  // Blue
			ErrorFg:         "160", // Red
			DisabledFg:      "249", // Medium gray
			DialogBg:        "255", // White
			DialogFg:        "235", // Dark gray
			DialogBorder:    "240", // Gray
			DialogTitle:     "26",  // Blue
			DialogButton:    "32",  // Blue
			DialogButtonFg:  "15",  // White
		},
		Chart: ChartColors{
			Price:       "#16c784",
			Secondary:   "#FFBB1F",
			Volume:      "#A6B0C3",
			Minimap:     "#4878FF",
			Axis:        "#808A9D",
			Crosshair:   "#808A9D",
			SelectorBg:  "#EFF2F5",
			SelectorDim: "250",
			Handle:      "#808A9D",
			Grid:        "#EFF2F5",
		},
		Syntax: SyntaxColors{
			Keyword:  "26",  // Blue
			String:   "28",  // Green
			Comment:  "245", // Gray
			Number:   "166", // Orange
			Operator: "90",  // Magenta
			Function: "26",  // Blue
		},
	},
	"monokai": {
		Name:        "monokai",
		Description: "Monokai-inspired dark theme",
		Author:      "pricescope",
		UI: UIColors{
			MenuBg:          "235", // Dark background
			MenuFg:          "231", // White
			MenuHighlightBg: "208", // Orange
			MenuHighlightFg: "16",  // Black
			StatusBg:        "235", // Dark background
			StatusFg:        "231", // White
			StatusAccent:    "208", // Orange
			ErrorFg:         "197", // Pink-red
			DisabledFg:      "59",  // Gray
			DialogBg:        "237", // Slightly lighter bg
			DialogFg:        "231", // White
			DialogBorder:    "208", // Orange
			DialogTitle:     "208", // Orange
			DialogButton:    "64",  // Olive green
			DialogButtonFg:  "231", // White
		},
		Chart: ChartColors{
			Price:       "148", // Green
			Secondary:   "208", // Orange
			Volume:      "59",  // Gray
			Minimap:     "81",  // Light blue
			Axis:        "245", // Gray
			Crosshair:   "197", // Pink-red
			SelectorBg:  "237", // Slightly lighter bg
			SelectorDim: "59",  // Gray
			Handle:      "231", // White
			Grid:        "236", // Dark gray
		},
		Syntax: SyntaxColors{
			Keyword:  "197", // Pink-red
			String:   "186", // Yellow
			Comment:  "59",  // Gray
			Number:   "141", // Purple
			Operator: "197", // Pink-red
			Function: "81",  // Light blue
		},
	},
}

// DefaultTheme returns the default theme
func DefaultTheme() Theme {
	return builtinThemes["default"]
}

// LoadTheme loads a theme by name
// Checks user themes directory first, then falls back to built-in themes
func LoadTheme(name string) Theme {
	if name == "" {
		return DefaultTheme()
	}

	// Try loading from user themes directory
	theme, err := loadUserTheme(name)
	if err == nil {
		return theme
	}

	// Fall back to built-in theme
	if builtin, ok := builtinThemes[name]; ok {
		return builtin
	}

	// Default if not found
	return DefaultTheme()
}

// loadUserTheme attempts to load a theme from the user's themes directory
func loadUserTheme(name string) (Theme, error) {
	themesDir, err := ThemesDir()
	if err != nil {
		return Theme{}, err
	}
	return LoadThemeFile(filepath.Join(themesDir, name+".toml"))
}

// LoadThemeFile decodes a theme file and fills missing colors from the default
func LoadThemeFile(path string) (Theme, error) {
	if _, err := os.Stat(path); err != nil {
		return Theme{}, err
	}

	var theme Theme
	if _, err := toml.DecodeFile(path, &theme); err != nil {
		return Theme{}, err
	}

	// Merge with default theme to fill in any missing values
	return mergeWithDefault(theme), nil
}

// mergeWithDefault fills in any missing theme values with defaults
func mergeWithDefault(theme Theme) Theme {
	def := DefaultTheme()

	fill(&theme.Name, def.Name)

	// UI colors
	u, du := &theme.UI, def.UI
	fill(&u.MenuBg, du.MenuBg)
	fill(&u.MenuFg, du.MenuFg)
	fill(&u.MenuHighlightBg, du.MenuHighlightBg)
	fill(&u.MenuHighlightFg, du.MenuHighlightFg)
	fill(&u.StatusBg, du.StatusBg)
	fill(&u.StatusFg, du.StatusFg)
	fill(&u.StatusAccent, du.StatusAccent)
	fill(&u.ErrorFg, du.ErrorFg)
	fill(&u.DisabledFg, du.DisabledFg)
	fill(&u.DialogBg, du.DialogBg)
	fill(&u.DialogFg, du.DialogFg)
	fill(&u.DialogBorder, du.DialogBorder)
	fill(&u.DialogTitle, du.DialogTitle)
	fill(&u.DialogButton, du.DialogButton)
	fill(&u.DialogButtonFg, du.DialogButtonFg)

	// Chart colors
	c, dc := &theme.Chart, def.Chart
	fill(&c.Price, dc.Price)
	fill(&c.Secondary, dc.Secondary)
	fill(&c.Volume, dc.Volume)
	fill(&c.Minimap, dc.Minimap)
	fill(&c.Axis, dc.Axis)
	fill(&c.Crosshair, dc.Crosshair)
	fill(&c.SelectorBg, dc.SelectorBg)
	fill(&c.SelectorDim, dc.SelectorDim)
	fill(&c.Handle, dc.Handle)
	fill(&c.Grid, dc.Grid)

	// Syntax colors
	s, ds := &theme.Syntax, def.Syntax
	fill(&s.Keyword, ds.Keyword)
	fill(&s.String, ds.String)
	fill(&s.Comment, ds.Comment)
	fill(&s.Number, ds.Number)
	fill(&s.Operator, ds.Operator)
	fill(&s.Function, ds.Function)

	return theme
}

func fill(dst *string, def string) {
	if *dst == "" {
		*dst = def
	}
}

// ThemeNames returns the list of built-in theme names
func ThemeNames() []string {
	return []string{"default", "classic", "light", "monokai"}
}

// ListUserThemes returns a list of user-defined theme names
func ListUserThemes() []string {
	themesDir, err := ThemesDir()
	if err != nil {
		return nil
	}

	entries, err := os.ReadDir(themesDir)
	if err != nil {
		return nil
	}

	var themes []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if filepath.Ext(name) == ".toml" {
			themes = append(themes, name[:len(name)-5]) // Remove .toml extension
		}
	}
	return themes
}
