package viewer

import (
	"strings"

	"github.com/cornish/pricescope/ui"

	"github.com/mattn/go-runewidth"
)

// DialogBuilder helps construct consistent dialogs
type DialogBuilder struct {
	box        ui.BoxChars
	width      int      // Total box width including borders
	innerWidth int      // Width inside borders
	lines      []string // Built dialog lines
	themeUI    *themeColors
}

// themeColors holds the resolved theme color escape codes
type themeColors struct {
	dialogStyle      string // Base dialog fg/bg
	selectedStyle    string // Selected item fg/bg
	errorStyle       string // Error text
	dialogResetStyle string // Reset to dialog colors after a highlight
	resetStyle       string // Full reset
}

// NewDialogBuilder creates a new dialog builder
func (m *Model) NewDialogBuilder(width int) *DialogBuilder {
	themeUI := m.styles.Theme.UI
	if width > m.width {
		width = m.width
	}
	if width < 4 {
		width = 4
	}
	return &DialogBuilder{
		box:        m.box,
		width:      width,
		innerWidth: width - 2,
		lines:      make([]string, 0),
		themeUI: &themeColors{
			dialogStyle:      ui.ColorToANSI(themeUI.DialogFg, themeUI.DialogBg),
			selectedStyle:    ui.ColorToANSI(themeUI.DialogButtonFg, themeUI.DialogButton),
			errorStyle:       ui.ColorToANSI(themeUI.ErrorFg, themeUI.DialogBg),
			dialogResetStyle: ui.ColorToANSI(themeUI.DialogFg, themeUI.DialogBg),
			resetStyle:       "\033[0m",
		},
	}
}

// AddTitleBorder adds the top border with an embedded title
func (db *DialogBuilder) AddTitleBorder(title string) {
	title = runewidth.Truncate(title, db.innerWidth, "")
	titlePadLeft := (db.innerWidth - runewidth.StringWidth(title)) / 2
	titlePadRight := db.innerWidth - runewidth.StringWidth(title) - titlePadLeft
	line := db.box.TopLeft +
		strings.Repeat(db.box.Horizontal, titlePadLeft) +
		title +
		strings.Repeat(db.box.Horizontal, titlePadRight) +
		db.box.TopRight
	db.lines = append(db.lines, line)
}

// AddBottomBorder adds the bottom border
func (db *DialogBuilder) AddBottomBorder() {
	db.lines = append(db.lines, db.box.BottomLeft+strings.Repeat(db.box.Horizontal, db.innerWidth)+db.box.BottomRight)
}

// AddEmptyLine adds an empty line with borders
func (db *DialogBuilder) AddEmptyLine() {
	db.lines = append(db.lines, db.box.Vertical+strings.Repeat(" ", db.innerWidth)+db.box.Vertical)
}

// AddText adds a line of text (left-aligned, padded)
func (db *DialogBuilder) AddText(text string) {
	db.lines = append(db.lines, db.box.Vertical+db.PadText(text)+db.box.Vertical)
}

// AddWrappedText adds text broken into lines at word boundaries
func (db *DialogBuilder) AddWrappedText(text string) {
	for _, line := range wrapWords(text, db.innerWidth-2) {
		db.AddText(" " + line)
	}
}

// AddErrorText adds a line of text in the theme's error color
func (db *DialogBuilder) AddErrorText(text string) {
	db.lines = append(db.lines, db.box.Vertical+db.themeUI.errorStyle+db.PadText(text)+db.themeUI.dialogResetStyle+db.box.Vertical)
}

// AddStyledText adds a line that already carries ANSI colors. It is padded
// by display width and the dialog colors are restored after it.
func (db *DialogBuilder) AddStyledText(text string) {
	db.lines = append(db.lines, db.box.Vertical+ui.PadRight(text, db.innerWidth)+db.themeUI.resetStyle+db.themeUI.dialogStyle+db.box.Vertical)
}

// AddScrolledText adds a styled line with a scrollbar cell at its right edge
func (db *DialogBuilder) AddScrolledText(text, bar string) {
	db.lines = append(db.lines, db.box.Vertical+ui.PadRight(text, db.innerWidth-1)+db.themeUI.resetStyle+bar+db.themeUI.dialogStyle+db.box.Vertical)
}

// AddCenteredText adds a line of centered text
func (db *DialogBuilder) AddCenteredText(text string) {
	db.lines = append(db.lines, db.box.Vertical+db.CenterText(text)+db.box.Vertical)
}

// AddSelectableItem adds an item that can be selected (highlighted when selected)
func (db *DialogBuilder) AddSelectableItem(text string, isSelected bool) {
	var line string
	if isSelected {
		line = db.box.Vertical + db.themeUI.selectedStyle + db.PadText(text) + db.themeUI.dialogResetStyle + db.box.Vertical
	} else {
		line = db.box.Vertical + db.PadText(text) + db.box.Vertical
	}
	db.lines = append(db.lines, line)
}

// AddSeparator adds a horizontal separator line
func (db *DialogBuilder) AddSeparator() {
	db.lines = append(db.lines, db.box.TeeLeft+strings.Repeat(db.box.Horizontal, db.innerWidth)+db.box.TeeRight)
}

// PadText pads text to innerWidth (left-aligned)
func (db *DialogBuilder) PadText(s string) string {
	sw := runewidth.StringWidth(s)
	if sw > db.innerWidth {
		return runewidth.Truncate(s, db.innerWidth, "")
	}
	return s + strings.Repeat(" ", db.innerWidth-sw)
}

// CenterText centers text within innerWidth
func (db *DialogBuilder) CenterText(s string) string {
	sw := runewidth.StringWidth(s)
	if sw >= db.innerWidth {
		return runewidth.Truncate(s, db.innerWidth, "")
	}
	padLeft := (db.innerWidth - sw) / 2
	padRight := db.innerWidth - sw - padLeft
	return strings.Repeat(" ", padLeft) + s + strings.Repeat(" ", padRight)
}

// Height returns the current height of the dialog
func (db *DialogBuilder) Height() int {
	return len(db.lines)
}

// InnerWidth returns the inner width (for external calculations)
func (db *DialogBuilder) InnerWidth() int {
	return db.innerWidth
}

// Lines returns the built dialog lines
func (db *DialogBuilder) Lines() []string {
	return db.lines
}

// Overlay renders the dialog centered on the body lines
func (db *DialogBuilder) Overlay(body []string, bodyWidth int) []string {
	styled := make([]string, len(db.lines))
	for i, line := range db.lines {
		styled[i] = db.themeUI.dialogStyle + line + db.themeUI.resetStyle
	}
	return ui.OverlayCenter(body, styled, bodyWidth)
}

// wrapWords breaks text into lines of at most width columns
func wrapWords(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		line := ""
		for _, word := range strings.Fields(para) {
			for runewidth.StringWidth(word) > width {
				if line != "" {
					lines = append(lines, line)
					line = ""
				}
				head := runewidth.Truncate(word, width, "")
				if head == "" {
					break
				}
				lines = append(lines, head)
				word = word[len(head):]
			}
			switch {
			case line == "":
				line = word
			case runewidth.StringWidth(line)+1+runewidth.StringWidth(word) <= width:
				line += " " + word
			default:
				lines = append(lines, line)
				line = word
			}
		}
		lines = append(lines, line)
	}
	return lines
}
