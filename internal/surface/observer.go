package surface

import (
	"panelgrid/internal/drag"
	"panelgrid/internal/grid"
)

// Observer is notified after each engine state change.
type Observer interface {
	PanelSelected(p grid.Panel)
	DragStarted(s drag.Session)
	DragEnded(s drag.Session, final grid.Rect, canceled bool)
	Committed(snapped int, colWidth float64)
	CommitSkipped()
}

// NopObserver ignores every notification.
type NopObserver struct{}

func (NopObserver) PanelSelected(grid.Panel)                {}
func (NopObserver) DragStarted(drag.Session)                {}
func (NopObserver) DragEnded(drag.Session, grid.Rect, bool) {}
func (NopObserver) Committed(int, float64)                  {}
func (NopObserver) CommitSkipped()                          {}
