// Package strings holds small text helpers shared by the CLI renderers.
package strings

import (
	"strings"
	"unicode/utf8"
)

// DescriptionWidth is the column width used for descriptions in table output.
const DescriptionWidth = 60

// ellipsis marks truncated text.
const ellipsis = "..."

// SingleLine collapses every run of whitespace, newlines included, into one space.
func SingleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Truncate returns SingleLine(s) cut to at most width runes, ending in "..."
// when anything was removed. Widths below 4 are raised to 4.
func Truncate(s string, width int) string {
	width = max(width, len(ellipsis)+1)

	s = SingleLine(s)
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-len(ellipsis)]) + ellipsis
}
