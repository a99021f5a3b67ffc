package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestCanvas_PlaceOverwrites(t *testing.T) {
	c := newCanvas(6, 2)
	c.place(1, 0, "abc")
	c.place(2, 1, "xy")
	c.place(3, 0, "Z")

	lines := plainLines(c)
	assert.Equal(t, " abZ  ", lines[0])
	assert.Equal(t, "  xy  ", lines[1])
}

func TestCanvas_Clips(t *testing.T) {
	c := newCanvas(4, 2)
	c.place(-2, 0, "abcdef")
	c.place(3, 1, "xyz")
	c.place(0, 5, "never")
	c.place(9, 0, "never")

	lines := plainLines(c)
	assert.Equal(t, "cdef", lines[0])
	assert.Equal(t, "   x", lines[1])
}

func TestCanvas_StyledBlockKeepsWidth(t *testing.T) {
	c := newCanvas(10, 3)
	c.place(2, 0, Styles.Panel.Width(2).Height(1).Render("hi"))
	for _, l := range c.lines {
		assert.Equal(t, 10, lipgloss.Width(l))
	}
	assert.Contains(t, ansi.Strip(c.String()), "hi")
}

func plainLines(c *canvas) []string {
	out := make([]string, len(c.lines))
	for i, l := range c.lines {
		out[i] = ansi.Strip(l)
	}
	return out
}
