package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// canvas composes overlapping styled blocks into a fixed-size frame.
type canvas struct {
	width int
	lines []string
}

func newCanvas(width, height int) *canvas {
	c := &canvas{width: max(0, width), lines: make([]string, max(0, height))}
	blank := strings.Repeat(" ", c.width)
	for i := range c.lines {
		c.lines[i] = blank
	}
	return c
}

// place draws block with its top-left cell at (x, y). Parts outside the
// canvas are clipped; later blocks cover earlier ones.
func (c *canvas) place(x, y int, block string) {
	for i, line := range strings.Split(block, "\n") {
		row := y + i
		if row < 0 || row >= len(c.lines) {
			continue
		}
		start := x
		if start < 0 {
			line = ansi.TruncateLeft(line, -start, "")
			start = 0
		}
		if start >= c.width {
			continue
		}
		line = ansi.Truncate(line, c.width-start, "")
		w := ansi.StringWidth(line)
		if w == 0 {
			continue
		}
		base := c.lines[row]
		c.lines[row] = ansi.Truncate(base, start, "") + ansi.ResetStyle +
			line + ansi.ResetStyle + ansi.TruncateLeft(base, start+w, "")
	}
}

func (c *canvas) String() string {
	return strings.Join(c.lines, "\n")
}
