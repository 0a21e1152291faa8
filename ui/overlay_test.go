package ui

import (
	"strings"
	"testing"
)

func TestOverlayLine(t *testing.T) {
	tests := []struct {
		name   string
		top    string
		base   string
		offset int
		want   string
	}{
		{"middle", "XY", "abcdef", 2, "abXYef"},
		{"start", "XY", "abcdef", 0, "XYcdef"},
		{"past end of base", "X", "ab", 4, "ab  X"},
		{"colored base", "X", "\033[31mabc\033[0m", 1, "aXc"},
		{"wide runes in base", "X", "日本語", 2, "日X語"},
	}

	for _, tt := range tests {
		got := StripANSI(OverlayLine(tt.top, tt.base, tt.offset))
		if got != tt.want {
			t.Errorf("%s: OverlayLine() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestOverlayCenter(t *testing.T) {
	base := make([]string, 5)
	for i := range base {
		base[i] = strings.Repeat(".", 10)
	}
	out := OverlayCenter(base, []string{"ab"}, 10)

	if got := StripANSI(out[2]); got != "....ab...." {
		t.Errorf("center row = %q, want %q", got, "....ab....")
	}
	if out[0] != base[0] {
		t.Errorf("untouched row changed: %q", out[0])
	}
}

func TestOverlayBlockClipsRows(t *testing.T) {
	base := []string{"aaa", "bbb"}
	out := OverlayBlock(base, []string{"X", "Y", "Z"}, 1, 1)

	if len(out) != 2 {
		t.Fatalf("OverlayBlock() returned %d rows, want 2", len(out))
	}
	if got := StripANSI(out[1]); got != "bXb" {
		t.Errorf("row 1 = %q, want %q", got, "bXb")
	}
	if base[1] != "bbb" {
		t.Errorf("base was modified: %q", base[1])
	}
}

func TestPadRightAndWidth(t *testing.T) {
	if got := VisualWidth("\033[31mab\033[0m"); got != 2 {
		t.Errorf("VisualWidth() = %d, want 2", got)
	}
	if got := PadRight("abc", 5); got != "abc  " {
		t.Errorf("PadRight(abc, 5) = %q", got)
	}
	if got := PadRight("abcdef", 3); got != "abc" {
		t.Errorf("PadRight(abcdef, 3) = %q", got)
	}
}
