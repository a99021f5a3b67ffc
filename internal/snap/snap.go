// Package snap quantizes free-form panel rectangles back onto the grid.
package snap

import (
	"math"

	"panelgrid/internal/grid"
)

// Engine snaps rectangles for a fixed column width.
type Engine struct {
	Columns   int
	RowHeight float64
	ColWidth  float64
}

// New returns an engine for a container of the given pixel width.
func New(cfg grid.Config, containerWidth float64) Engine {
	e := Engine{Columns: cfg.Columns, RowHeight: cfg.RowHeight}
	if cfg.Columns > 0 {
		e.ColWidth = containerWidth / float64(cfg.Columns)
	}
	return e
}

// Ready reports whether the engine has a usable column width.
func (e Engine) Ready() bool {
	return e.ColWidth > 0 && e.RowHeight > 0 && e.Columns > 0
}

// Snap returns the nearest grid placement for r. Column is clamped into the
// grid first, then the span is clamped to fit from that column.
func (e Engine) Snap(r grid.Rect) grid.Placement {
	col := round(r.X/e.ColWidth) + 1
	colSpan := max(1, round(r.Width/e.ColWidth))

	col = clamp(col, 1, e.Columns)
	colSpan = clamp(colSpan, 1, e.Columns-col+1)

	return grid.Placement{
		Column:     col,
		Row:        max(1, round(r.Y/e.RowHeight)+1),
		ColumnSpan: colSpan,
		RowSpan:    max(1, round(r.Height/e.RowHeight)),
	}
}

// Commit snaps every free-form panel in m. When the engine is not ready the
// whole commit is skipped and m is left untouched. Returns the number of
// panels snapped and whether the commit ran.
func (e Engine) Commit(m *grid.Model) (int, bool) {
	if !e.Ready() {
		return 0, false
	}
	return m.CommitSelected(e), true
}

// Rect returns the pixel rectangle a placement occupies, relative to the
// container. It is the inverse of Snap for grid-aligned rectangles.
func (e Engine) Rect(p grid.Placement) grid.Rect {
	return grid.Rect{
		X:      float64(p.Column-1) * e.ColWidth,
		Y:      float64(p.Row-1) * e.RowHeight,
		Width:  float64(p.ColumnSpan) * e.ColWidth,
		Height: float64(p.RowSpan) * e.RowHeight,
	}
}

// round rounds half toward positive infinity, so round(-0.5) == 0.
func round(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	f := math.Floor(v + 0.5)
	switch {
	case f > math.MaxInt32:
		return math.MaxInt32
	case f < math.MinInt32:
		return math.MinInt32
	}
	return int(f)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
