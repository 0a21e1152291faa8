// Package syntax colors JSON documents for the raw data inspector.
package syntax

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// SyntaxColors holds the color settings for syntax highlighting
type SyntaxColors struct {
	Keyword  string
	String   string
	Comment  string
	Number   string
	Operator string
	Function string // Object keys
	Error    string
}

// DefaultSyntaxColors returns the default syntax color settings
func DefaultSyntaxColors() SyntaxColors {
	return SyntaxColors{
		Keyword:  "14", // Bright cyan
		String:   "10", // Bright green
		Comment:  "8",  // Gray
		Number:   "11", // Bright yellow
		Operator: "13", // Bright magenta
		Function: "12", // Bright blue
		Error:    "9",  // Bright red
	}
}

const reset = "\033[0m"

// Highlighter provides syntax highlighting for JSON text
type Highlighter struct {
	lexer   chroma.Lexer
	enabled bool
	colors  SyntaxColors
}

// New creates a JSON highlighter
func New() *Highlighter {
	h := &Highlighter{
		enabled: true,
		colors:  DefaultSyntaxColors(),
	}
	if l := lexers.Get("json"); l != nil {
		h.lexer = chroma.Coalesce(l)
	}
	return h
}

// SetEnabled enables or disables syntax highlighting
func (h *Highlighter) SetEnabled(enabled bool) {
	h.enabled = enabled
}

// Enabled returns whether highlighting is enabled
func (h *Highlighter) Enabled() bool {
	return h.enabled
}

// SetColors sets the syntax highlighting colors
func (h *Highlighter) SetColors(colors SyntaxColors) {
	h.colors = colors
}

// Lines tokenises text and returns it split into lines with ANSI colors.
// Every colored token is closed with a reset so lines can be cut freely.
// Returns the plain lines when highlighting is disabled or fails.
func (h *Highlighter) Lines(text string) []string {
	plain := strings.Split(text, "\n")
	if !h.enabled || h.lexer == nil {
		return plain
	}

	iterator, err := h.lexer.Tokenise(nil, text)
	if err != nil {
		return plain
	}

	var lines []string
	var sb strings.Builder
	for _, token := range iterator.Tokens() {
		color := h.tokenColor(token.Type)
		parts := strings.Split(token.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				lines = append(lines, sb.String())
				sb.Reset()
			}
			if part == "" {
				continue
			}
			if color == "" {
				sb.WriteString(part)
				continue
			}
			sb.WriteString(color)
			sb.WriteString(part)
			sb.WriteString(reset)
		}
	}
	lines = append(lines, sb.String())

	// The lexer may add a trailing newline the input did not have
	if len(lines) > len(plain) && lines[len(lines)-1] == "" {
		lines = lines[:len(plain)]
	}
	return lines
}

// colorToANSI converts a theme color string to an ANSI foreground escape sequence
func colorToANSI(color string) string {
	if strings.HasPrefix(color, "#") {
		r, g, b := parseHexColor(color)
		return fmt.Sprintf("\033[38;2;%d;%d;%dm", r, g, b)
	}
	n, err := strconv.Atoi(color)
	if err != nil {
		return "\033[37m" // Default to white on error
	}
	if n < 16 {
		if n < 8 {
			return fmt.Sprintf("\033[%dm", 30+n)
		}
		return fmt.Sprintf("\033[%dm", 90+(n-8))
	}
	return fmt.Sprintf("\033[38;5;%dm", n)
}

// parseHexColor parses #RGB or #RRGGBB to r, g, b values
func parseHexColor(hex string) (int, int, int) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		r, _ := strconv.ParseInt(hex[0:2], 16, 32)
		g, _ := strconv.ParseInt(hex[2:4], 16, 32)
		b, _ := strconv.ParseInt(hex[4:6], 16, 32)
		return int(r), int(g), int(b)
	}
	return 255, 255, 255 // Default to white on error
}

// tokenColor returns the ANSI color code for a token type
func (h *Highlighter) tokenColor(t chroma.TokenType) string {
	switch {
	// Object keys
	case t == chroma.NameTag:
		return colorToANSI(h.colors.Function)

	// true, false, null
	case t.InCategory(chroma.Keyword):
		return colorToANSI(h.colors.Keyword)

	case t.InSubCategory(chroma.String):
		return colorToANSI(h.colors.String)

	case t.InSubCategory(chroma.Number):
		return colorToANSI(h.colors.Number)

	case t.InCategory(chroma.Comment):
		return colorToANSI(h.colors.Comment)

	case t == chroma.Punctuation, t.InCategory(chroma.Operator):
		return colorToANSI(h.colors.Operator)

	case t == chroma.Error:
		return colorToANSI(h.colors.Error)

	default:
		return "" // Default terminal color
	}
}
