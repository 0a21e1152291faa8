package syntax

import (
	"regexp"
	"strings"
	"testing"
)

var ansi = regexp.MustCompile("\033\\[[0-9;]*m")

func TestLinesPreservesText(t *testing.T) {
	src := "{\n  \"time\": 1700000000,\n  \"ok\": true,\n  \"name\": \"eth\"\n}"
	h := New()
	lines := h.Lines(src)

	want := strings.Split(src, "\n")
	if len(lines) != len(want) {
		t.Fatalf("Lines() returned %d lines, want %d", len(lines), len(want))
	}
	for i := range want {
		if got := ansi.ReplaceAllString(lines[i], ""); got != want[i] {
			t.Errorf("line %d = %q, want %q", i, got, want[i])
		}
	}
	if !strings.Contains(strings.Join(lines, ""), "\033[") {
		t.Error("Lines() should emit color codes when enabled")
	}
}

func TestLinesDisabled(t *testing.T) {
	h := New()
	h.SetEnabled(false)
	lines := h.Lines("[1,\n2]")
	if len(lines) != 2 || lines[0] != "[1," || lines[1] != "2]" {
		t.Errorf("Lines() disabled = %q, want plain split", lines)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		r, g, b int
	}{
		{"#16c784", 0x16, 0xc7, 0x84},
		{"#fff", 255, 255, 255},
		{"#abc", 0xaa, 0xbb, 0xcc},
		{"bogus", 255, 255, 255},
	}
	for _, tt := range tests {
		r, g, b := parseHexColor(tt.in)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("parseHexColor(%q) = %d,%d,%d; want %d,%d,%d", tt.in, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}
