package contract

import (
	"testing"
	"unicode/utf8"
)

// FuzzTruncateCell fuzzes the TruncateCell function with random values and widths.
func FuzzTruncateCell(f *testing.F) {
	seeds := []struct {
		value string
		width int
	}{
		{"Canal St", 20},
		{"Streeter Dr & Grand Ave", 12},
		{"", 0},
		{"abc", -1},
		{"Čiurlionio g. & Mindaugo g.", 10},
		{"x", 4},
	}
	for _, seed := range seeds {
		f.Add(seed.value, seed.width)
	}

	f.Fuzz(func(t *testing.T, value string, width int) {
		got := TruncateCell(value, width)
		if utf8.ValidString(value) && !utf8.ValidString(got) {
			t.Errorf("TruncateCell(%q, %d) produced invalid UTF-8 %q", value, width, got)
		}
		if width > 3 && len([]rune(got)) > width {
			t.Errorf("TruncateCell(%q, %d) exceeded width: %q", value, width, got)
		}
	})
}
