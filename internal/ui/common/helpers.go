// Package common provides shared utilities for the UI.
package common

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Pad widens s to width for the monospace board grid. Single-rune
// strings get a leading space first, so row numbers and column letters
// line up with the wider card faces.
func Pad(s string, width int) string {
	if utf8.RuneCountInString(s) == 1 {
		s = " " + s
	}
	if padding := width - utf8.RuneCountInString(s); padding > 0 {
		return s + strings.Repeat(" ", padding)
	}
	return s
}

// FormatDuration renders d as HH:MM:SS, truncated to whole seconds.
func FormatDuration(d time.Duration) string {
	total := int64(d.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, total/60%60, total%60)
}
