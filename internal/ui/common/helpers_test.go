package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		s     string
		width int
		want  string
	}{
		{"empty string", "", 3, "   "},
		{"single rune gets leading space", "A", 8, " A      "},
		{"single digit row number", "0", 3, " 0 "},
		{"double digit row number", "10", 3, "10 "},
		{"card face", "♥ K", 8, "♥ K     "},
		{"glyph counts as one rune", "♦ 6", 8, "♦ 6     "},
		{"exact width", "SA", 2, "SA"},
		{"wider than width stays intact", "O (24)", 4, "O (24)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Pad(tt.s, tt.width))
		})
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"zero", 0, "00:00:00"},
		{"seconds only", 29 * time.Second, "00:00:29"},
		{"minutes and seconds", 64 * time.Second, "00:01:04"},
		{"hours", 3750 * time.Second, "01:02:30"},
		{"sub-second truncates", 1500 * time.Millisecond, "00:00:01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, FormatDuration(tt.d))
		})
	}
}
