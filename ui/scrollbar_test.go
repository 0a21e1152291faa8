package ui

import (
	"strings"
	"testing"
)

func TestScrollbarThumb(t *testing.T) {
	tests := []struct {
		name                  string
		start, visible, total int
		wantPos, wantSize     int
	}{
		{"everything fits", 0, 10, 5, 0, 10},
		{"top", 0, 10, 100, 0, 1},
		{"middle", 45, 10, 100, 4, 1},
		{"bottom", 90, 10, 100, 9, 1},
		{"past the end", 500, 10, 100, 9, 1},
		{"half visible", 10, 20, 40, 2, 5},
	}

	s := NewScrollbar(DefaultStyles(), UnicodeBoxChars)
	s.SetHeight(10)
	for _, tt := range tests {
		pos, size := s.Thumb(tt.start, tt.visible, tt.total)
		if pos != tt.wantPos || size != tt.wantSize {
			t.Errorf("%s: Thumb() = (%d, %d), want (%d, %d)", tt.name, pos, size, tt.wantPos, tt.wantSize)
		}
	}
}

func TestScrollbarRender(t *testing.T) {
	s := NewScrollbar(DefaultStyles(), ASCIIBoxChars)
	s.SetHeight(4)

	rows := s.Render(0, 2, 8)
	if len(rows) != 4 {
		t.Fatalf("Render() returned %d rows, want 4", len(rows))
	}
	var got strings.Builder
	for _, row := range rows {
		got.WriteString(StripANSI(row))
	}
	if got.String() != "#|||" {
		t.Errorf("Render() = %q, want %q", got.String(), "#|||")
	}
}
