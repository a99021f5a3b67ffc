package ui

import (
	"math"

	"panelgrid/internal/config"
	"panelgrid/internal/grid"
	"panelgrid/internal/surface"
)

// Rows reserved above and below the container.
const (
	headerRows = 1
	footerRows = 2
)

// cellRect is a rectangle in terminal cells; X1/Y1 are exclusive.
type cellRect struct {
	X0, Y0, X1, Y1 int
}

func (r cellRect) Width() int  { return r.X1 - r.X0 }
func (r cellRect) Height() int { return r.Y1 - r.Y0 }

func (r cellRect) contains(x, y int) bool {
	return x >= r.X0 && x < r.X1 && y >= r.Y0 && y < r.Y1
}

// handle returns the bottom-right cell, which is the resize handle of a
// free-form panel.
func (r cellRect) handle() (int, int) {
	return r.X1 - 1, r.Y1 - 1
}

// screen maps terminal cells onto virtual pixels and measures the container
// and panels for the surface engine.
type screen struct {
	width, height int // terminal size in cells; zero until the first resize
	cell          config.Cell
	engine        *surface.Engine
}

var (
	_ surface.ContainerMeasurer = (*screen)(nil)
	_ surface.PanelMeasurer     = (*screen)(nil)
)

func (s *screen) resize(width, height int) {
	s.width, s.height = width, height
}

// containerCells returns the container's area in cells.
func (s *screen) containerCells() cellRect {
	h := max(0, s.height-headerRows-footerRows)
	return cellRect{X0: 0, Y0: headerRows, X1: s.width, Y1: headerRows + h}
}

// MeasureContainer implements surface.ContainerMeasurer.
func (s *screen) MeasureContainer() (grid.Rect, bool) {
	c := s.containerCells()
	if c.Width() <= 0 || c.Height() <= 0 {
		return grid.Rect{}, false
	}
	return s.toPixels(c), true
}

// MeasurePanel implements surface.PanelMeasurer. It reports the panel's
// exact pixel geometry; rounding to cells happens only when drawing, so a
// select followed by a snap leaves a grid panel where it was.
func (s *screen) MeasurePanel(id grid.PanelID) (grid.Rect, bool) {
	if s.engine == nil {
		return grid.Rect{}, false
	}
	if _, ok := s.MeasureContainer(); !ok {
		return grid.Rect{}, false
	}
	for _, p := range s.engine.Panels() {
		if p.ID == id {
			return s.panelPixels(p), true
		}
	}
	return grid.Rect{}, false
}

// panelPixels returns p's rectangle in screen pixels.
func (s *screen) panelPixels(p grid.Panel) grid.Rect {
	r := s.engine.GridRect(p.Placement)
	if p.Mode() == grid.ModeFreeForm {
		r = *p.Rect
	}
	c := s.containerCells()
	return r.Translate(float64(c.X0)*s.cell.Width, float64(c.Y0)*s.cell.Height)
}

// panelCells returns where p is drawn, in screen cells.
func (s *screen) panelCells(p grid.Panel) cellRect {
	return s.toCells(s.panelPixels(p))
}

// pointer converts a terminal cell to a screen-pixel point.
func (s *screen) pointer(x, y int) grid.Point {
	return grid.Point{X: float64(x) * s.cell.Width, Y: float64(y) * s.cell.Height}
}

func (s *screen) toPixels(c cellRect) grid.Rect {
	return grid.Rect{
		X:      float64(c.X0) * s.cell.Width,
		Y:      float64(c.Y0) * s.cell.Height,
		Width:  float64(c.Width()) * s.cell.Width,
		Height: float64(c.Height()) * s.cell.Height,
	}
}

func (s *screen) toCells(r grid.Rect) cellRect {
	c := cellRect{
		X0: roundCell(r.X / s.cell.Width),
		Y0: roundCell(r.Y / s.cell.Height),
		X1: roundCell((r.X + r.Width) / s.cell.Width),
		Y1: roundCell((r.Y + r.Height) / s.cell.Height),
	}
	// Keep room for a border on both sides.
	c.X1 = max(c.X1, c.X0+2)
	c.Y1 = max(c.Y1, c.Y0+2)
	return c
}

// hitTest classifies a pointer-down at cell (x, y). Free-form panels are on
// top; grid panels later in the list are drawn over earlier ones.
func (s *screen) hitTest(x, y int, panels []grid.Panel) surface.Target {
	for _, p := range panels {
		if p.Mode() != grid.ModeFreeForm {
			continue
		}
		r := s.panelCells(p)
		if !r.contains(x, y) {
			continue
		}
		if hx, hy := r.handle(); x == hx && y == hy {
			return surface.Target{Kind: surface.TargetResize, PanelID: p.ID}
		}
		return surface.Target{Kind: surface.TargetBody, PanelID: p.ID}
	}
	for i := len(panels) - 1; i >= 0; i-- {
		p := panels[i]
		if p.Mode() == grid.ModeGrid && s.panelCells(p).contains(x, y) {
			return surface.Target{Kind: surface.TargetBody, PanelID: p.ID}
		}
	}
	return surface.Target{Kind: surface.TargetOutside}
}

func roundCell(v float64) int {
	return int(math.Floor(v + 0.5))
}
