package ui

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
)

// MenuAction represents an action triggered by a menu item
type MenuAction int

const (
	ActionNone MenuAction = iota
	// File menu
	ActionScreenshot
	ActionCopy
	ActionInspect
	ActionReload
	ActionExit
	// Range menu
	ActionRange1D
	ActionRange1M
	ActionRange3M
	ActionRange1Y
	ActionRangeYTD
	ActionRangeAll
	// View menu
	ActionToggleLog
	ActionZoomIn
	ActionZoomOut
	ActionPanLeft
	ActionPanRight
	ActionFit
	ActionCycleTheme
	// Help menu
	ActionHelp
	ActionAbout
)

// RangeActions lists the Range menu actions in the order of market.Ranges
var RangeActions = []MenuAction{
	ActionRange1D, ActionRange1M, ActionRange3M, ActionRange1Y, ActionRangeYTD, ActionRangeAll,
}

// MenuItem represents a single menu option
type MenuItem struct {
	Label    string
	Shortcut string     // Keyboard shortcut displayed (e.g., "S")
	HotKey   rune       // Single letter hotkey when menu is open (e.g., 'S')
	Action   MenuAction
	Disabled bool
}

// Menu represents a dropdown menu
type Menu struct {
	Label string
	Items []MenuItem
}

// MenuBar represents the top menu bar
type MenuBar struct {
	menus      []Menu
	activeMenu int  // -1 if no menu is open
	activeItem int  // Index of highlighted item in open menu
	isOpen     bool // Whether a dropdown is open
	width      int
	styles     Styles
}

// NewMenuBar creates a new menu bar with default menus
func NewMenuBar(styles Styles) *MenuBar {
	return &MenuBar{
		menus: []Menu{
			{
				Label: "File",
				Items: []MenuItem{
					{Label: "Screenshot", Shortcut: "S", HotKey: 'S', Action: ActionScreenshot},
					{Label: "Copy Readout", Shortcut: "C", HotKey: 'C', Action: ActionCopy},
					{Label: "Inspect Data", Shortcut: "R", HotKey: 'I', Action: ActionInspect},
					{Label: "Reload", Shortcut: "Ctrl+R", HotKey: 'L', Action: ActionReload},
					{Label: "Exit", Shortcut: "Q", HotKey: 'X', Action: ActionExit},
				},
			},
			{
				Label: "Range",
				Items: []MenuItem{
					{Label: "( ) 1 Day", Shortcut: "1", HotKey: 'D', Action: ActionRange1D},
					{Label: "( ) 1 Month", Shortcut: "2", HotKey: 'M', Action: ActionRange1M},
					{Label: "( ) 3 Months", Shortcut: "3", HotKey: '3', Action: ActionRange3M},
					{Label: "( ) 1 Year", Shortcut: "4", HotKey: 'Y', Action: ActionRange1Y},
					{Label: "( ) Year to Date", Shortcut: "5", HotKey: 'T', Action: ActionRangeYTD},
					{Label: "(*) All Time", Shortcut: "6", HotKey: 'A', Action: ActionRangeAll},
				},
			},
			{
				Label: "View",
				Items: []MenuItem{
					{Label: "[ ] Log Scale", Shortcut: "L", HotKey: 'L', Action: ActionToggleLog},
					{Label: "Zoom In", Shortcut: "+", HotKey: 'I', Action: ActionZoomIn},
					{Label: "Zoom Out", Shortcut: "-", HotKey: 'O', Action: ActionZoomOut},
					{Label: "Pan Left", Shortcut: "Left", HotKey: 'P', Action: ActionPanLeft},
					{Label: "Pan Right", Shortcut: "Right", HotKey: 'R', Action: ActionPanRight},
					{Label: "Fit Content", Shortcut: "F", HotKey: 'F', Action: ActionFit},
					{Label: "Next Theme", Shortcut: "T", HotKey: 'T', Action: ActionCycleTheme},
				},
			},
			{
				Label: "Help",
				Items: []MenuItem{
					{Label: "Help", Shortcut: "F1", HotKey: 'H', Action: ActionHelp},
					{Label: "About", Shortcut: "", HotKey: 'A', Action: ActionAbout},
				},
			},
		},
		activeMenu: -1,
		activeItem: 0,
		isOpen:     false,
		styles:     styles,
	}
}

// SetWidth sets the width of the menu bar
func (m *MenuBar) SetWidth(width int) {
	m.width = width
}

// IsOpen returns true if a menu dropdown is open
func (m *MenuBar) IsOpen() bool {
	return m.isOpen
}

// current returns the open menu, or nil when none is
func (m *MenuBar) current() *Menu {
	if !m.isOpen || m.activeMenu < 0 || m.activeMenu >= len(m.menus) {
		return nil
	}
	return &m.menus[m.activeMenu]
}

// OpenMenu opens the menu at the given index
func (m *MenuBar) OpenMenu(index int) {
	if index < 0 || index >= len(m.menus) {
		return
	}
	m.activeMenu, m.activeItem, m.isOpen = index, 0, true
}

// Close closes any open menu
func (m *MenuBar) Close() {
	m.activeMenu, m.activeItem, m.isOpen = -1, 0, false
}

// wrap returns i+delta folded into [0, n)
func wrap(i, delta, n int) int {
	return ((i+delta)%n + n) % n
}

// MoveMenu opens the menu delta places to the right, wrapping at either end
func (m *MenuBar) MoveMenu(delta int) {
	if m.current() == nil {
		return
	}
	m.activeMenu = wrap(m.activeMenu, delta, len(m.menus))
	m.activeItem = 0
}

// MoveItem highlights the item delta rows below the current one
func (m *MenuBar) MoveItem(delta int) {
	menu := m.current()
	if menu == nil || len(menu.Items) == 0 {
		return
	}
	m.activeItem = wrap(m.activeItem, delta, len(menu.Items))
}

// choose closes the menu and returns the action of item i of the open menu.
// Disabled items leave the menu open.
func (m *MenuBar) choose(i int) MenuAction {
	menu := m.current()
	if menu == nil || i < 0 || i >= len(menu.Items) || menu.Items[i].Disabled {
		return ActionNone
	}
	action := menu.Items[i].Action
	m.Close()
	return action
}

// Select returns the action of the highlighted item and closes the menu
func (m *MenuBar) Select() MenuAction {
	return m.choose(m.activeItem)
}

// SelectByHotKey picks the enabled item whose hotkey matches key, ignoring case
func (m *MenuBar) SelectByHotKey(key rune) MenuAction {
	menu := m.current()
	if menu == nil {
		return ActionNone
	}
	key = unicode.ToUpper(key)
	for i, item := range menu.Items {
		if !item.Disabled && unicode.ToUpper(item.HotKey) == key {
			return m.choose(i)
		}
	}
	return ActionNone
}

// Height returns the rows taken by the bar plus the bordered dropdown
func (m *MenuBar) Height() int {
	if menu := m.current(); menu != nil {
		return 3 + len(menu.Items)
	}
	return 1
}

// item returns the menu item bound to action, or nil
func (m *MenuBar) item(action MenuAction) *MenuItem {
	for i := range m.menus {
		for j := range m.menus[i].Items {
			if m.menus[i].Items[j].Action == action {
				return &m.menus[i].Items[j]
			}
		}
	}
	return nil
}

// SetItemDisabled sets the disabled state of a menu item by action
func (m *MenuBar) SetItemDisabled(action MenuAction, disabled bool) {
	if item := m.item(action); item != nil {
		item.Disabled = disabled
	}
}

// SetChecked updates the "[x]" / "(*)" marker of a toggle or radio item
func (m *MenuBar) SetChecked(action MenuAction, checked bool) {
	item := m.item(action)
	if item == nil || len(item.Label) < 4 {
		return
	}
	mark := " "
	if checked {
		mark = "*"
		if item.Label[0] == '[' {
			mark = "x"
		}
	}
	item.Label = item.Label[:1] + mark + item.Label[2:]
}

// SetStyles updates the styles for runtime theme changes
func (m *MenuBar) SetStyles(styles Styles) {
	m.styles = styles
}

// titleWidth is the width of a menu title on the bar, two columns of padding each side
func titleWidth(menu Menu) int {
	return VisualWidth(menu.Label) + 4
}

// menuAt returns the index of the menu title covering column x, or -1
func (m *MenuBar) menuAt(x int) int {
	left := 0
	for i, menu := range m.menus {
		w := titleWidth(menu)
		if x >= left && x < left+w {
			return i
		}
		left += w
	}
	return -1
}

// HandleClick handles a click at column x, row y. Row 0 is the bar, the
// dropdown items start at row 2 below its top border.
func (m *MenuBar) HandleClick(x, y int) (bool, MenuAction) {
	if y == 0 {
		switch i := m.menuAt(x); {
		case i < 0 || (m.isOpen && i == m.activeMenu):
			m.Close()
		default:
			m.OpenMenu(i)
		}
		return true, ActionNone
	}

	menu := m.current()
	row := y - 2
	if menu == nil || row < 0 || row >= len(menu.Items) {
		return false, ActionNone
	}
	m.activeItem = row
	return true, m.Select()
}

// underline marks the first occurrence of c in s, ignoring case, with the
// terminal underline attribute
func underline(s string, c rune) string {
	if c == 0 {
		return s
	}
	c = unicode.ToUpper(c)
	for i, r := range s {
		if unicode.ToUpper(r) == c {
			end := i + len(string(r))
			return s[:i] + "\033[4m" + s[i:end] + "\033[24m" + s[end:]
		}
	}
	return s
}

// View renders the bar row. Titles have their first letter underlined and
// the open menu is highlighted.
func (m *MenuBar) View() string {
	ui := m.styles.Theme.UI
	normal := ColorToANSI(ui.MenuFg, ui.MenuBg)
	highlight := ColorToANSI(ui.MenuHighlightFg, ui.MenuHighlightBg)

	var sb strings.Builder
	sb.WriteString(normal)
	used := 0
	for i, menu := range m.menus {
		title := "  " + underline(menu.Label, []rune(menu.Label)[0]) + "  "
		if m.isOpen && i == m.activeMenu {
			title = highlight + title + normal
		}
		sb.WriteString(title)
		used += titleWidth(menu)
	}
	if used < m.width {
		sb.WriteString(strings.Repeat(" ", m.width-used))
	}
	sb.WriteString("\033[0m")
	return sb.String()
}

// RenderDropdown renders the open menu as bordered lines for overlaying,
// along with the column they start at
func (m *MenuBar) RenderDropdown() ([]string, int) {
	menu := m.current()
	if menu == nil {
		return nil, 0
	}
	offset := 0
	for _, left := range m.menus[:m.activeMenu] {
		offset += titleWidth(left)
	}

	inner := 0
	for _, item := range menu.Items {
		w := VisualWidth(item.Label)
		if item.Shortcut != "" {
			w += 2 + VisualWidth(item.Shortcut)
		}
		inner = max(inner, w)
	}

	rows := make([]string, 0, len(menu.Items))
	for i, item := range menu.Items {
		style := m.styles.MenuOption
		switch {
		case item.Disabled:
			style = m.styles.MenuOptionDisabled
		case i == m.activeItem:
			style = m.styles.MenuOptionActive
		}
		gap := inner - VisualWidth(item.Label) - VisualWidth(item.Shortcut)
		line := underline(item.Label, item.HotKey) + strings.Repeat(" ", gap) + item.Shortcut
		rows = append(rows, style.Render(line))
	}

	box := m.styles.MenuDropdown.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	return strings.Split(box, "\n"), offset
}
