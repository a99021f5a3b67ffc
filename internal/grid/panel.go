package grid

import "fmt"

// PanelID identifies a panel for its whole lifetime.
type PanelID int

// Mode is the rendering mode of a panel.
type Mode int

const (
	ModeGrid Mode = iota
	ModeFreeForm
)

func (m Mode) String() string {
	switch m {
	case ModeGrid:
		return "Grid"
	case ModeFreeForm:
		return "FreeForm"
	default:
		return "Unknown"
	}
}

// Point is a pointer position in pixels.
type Point struct {
	X, Y float64
}

// Rect is a pixel rectangle. For panels it is relative to the container's
// top-left corner; for measurements it is in screen pixels.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Translate returns r shifted by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

func (r Rect) String() string {
	return fmt.Sprintf("%.0f,%.0f %.0fx%.0f", r.X, r.Y, r.Width, r.Height)
}

// Placement is a panel's position on the grid. Column and Row are 1-indexed.
type Placement struct {
	Column     int
	Row        int
	ColumnSpan int
	RowSpan    int
}

// Valid reports whether p fits a grid with the given column count.
func (p Placement) Valid(columns int) bool {
	return p.Column >= 1 &&
		p.Row >= 1 &&
		p.ColumnSpan >= 1 &&
		p.RowSpan >= 1 &&
		p.Column+p.ColumnSpan-1 <= columns
}

func (p Placement) String() string {
	return fmt.Sprintf("col %d/span %d, row %d/span %d", p.Column, p.ColumnSpan, p.Row, p.RowSpan)
}

// Panel is a box on the surface.
type Panel struct {
	ID        PanelID
	Label     string
	Placement Placement

	// Selected is true while the panel is in free-form mode. Rect is non-nil
	// exactly when Selected is true.
	Selected bool
	Rect     *Rect
}

// Mode returns the panel's current rendering mode.
func (p Panel) Mode() Mode {
	if p.Selected && p.Rect != nil {
		return ModeFreeForm
	}
	return ModeGrid
}

// clone returns a copy of p that does not share its Rect.
func (p Panel) clone() Panel {
	if p.Rect != nil {
		r := *p.Rect
		p.Rect = &r
	}
	return p
}
