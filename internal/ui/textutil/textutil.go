// Package textutil fits plain and styled text into terminal columns.
package textutil

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis marks text cut short by Truncate and FitStyled.
const TruncateEllipsis = "…"

// Truncate shortens plain text to at most maxWidth columns, ending in an
// ellipsis when anything was removed.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= runewidth.StringWidth(TruncateEllipsis) {
		return TruncateEllipsis
	}
	return runewidth.Truncate(s, maxWidth, TruncateEllipsis)
}

// FitStyled truncates or pads a styled line so it occupies exactly width
// columns. Escape sequences do not count toward the width.
func FitStyled(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := lipgloss.Width(s)
	if w > width {
		return ansi.Truncate(s, width, TruncateEllipsis)
	}
	return s + strings.Repeat(" ", width-w)
}
