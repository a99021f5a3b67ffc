package ui

import "panelgrid/internal/grid"

// FocusManager rotates keyboard selection across panels.
type FocusManager struct {
	Current grid.PanelID   // Panel selected most recently
	Order   []grid.PanelID // Tab order
}

// Next advances focus to the next panel in order.
// Returns false when there are no panels.
func (f *FocusManager) Next() (grid.PanelID, bool) {
	return f.step(1)
}

// Prev moves focus to the previous panel in order.
func (f *FocusManager) Prev() (grid.PanelID, bool) {
	return f.step(-1)
}

func (f *FocusManager) step(dir int) (grid.PanelID, bool) {
	if len(f.Order) == 0 {
		return 0, false
	}
	idx := -1
	for i, id := range f.Order {
		if id == f.Current {
			idx = i
			break
		}
	}
	if idx == -1 && dir < 0 {
		idx = 0
	}
	next := (idx + dir + len(f.Order)) % len(f.Order)
	f.Current = f.Order[next]
	return f.Current, true
}

// SetFocus sets focus to the given panel ID.
// Returns true if the ID exists in order.
func (f *FocusManager) SetFocus(id grid.PanelID) bool {
	for _, o := range f.Order {
		if o == id {
			f.Current = id
			return true
		}
	}
	return false
}
