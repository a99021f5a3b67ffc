package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "33"  // Blue - for free-form panels
	ColorHandle    = "255" // White - for the resize handle
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorPanel     = "245" // Mid gray - for grid panel borders
	ColorKey       = "205" // Magenta - for key names in help
)

// Styles contains shared style definitions used across views.
var Styles = struct {
	Title lipgloss.Style // Bold accent color - for the header

	// Panel styles
	Panel         lipgloss.Style // Grid-mode panel
	PanelSelected lipgloss.Style // Free-form panel
	Handle        lipgloss.Style // Resize handle glyph

	// Text styles
	Muted  lipgloss.Style // Dimmed text (muted color)
	Status lipgloss.Style // Status bar mode indicator
	Key    lipgloss.Style // Key names in help
	Box    lipgloss.Style // Overlay box
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Panel: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorPanel)).
		Foreground(lipgloss.Color(ColorText)).
		Align(lipgloss.Center, lipgloss.Center),
	PanelSelected: lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Handle: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHandle)).
		Background(lipgloss.Color(ColorHighlight)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Status: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Key: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorKey)).
		Bold(true),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1),
}
