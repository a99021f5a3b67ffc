package grid

import "fmt"

// Snapper converts a free-form rectangle into a grid placement.
type Snapper interface {
	Snap(r Rect) Placement
}

// Model owns the panel collection. It is not safe for concurrent use; all
// calls are expected from the single event loop.
type Model struct {
	cfg    Config
	panels []Panel
	index  map[PanelID]int
}

// NewModel creates a model from seed panels. Seeds must have unique IDs and
// valid placements; any selection state on them is dropped.
func NewModel(cfg Config, seed []Panel) (*Model, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("grid config: %w", err)
	}
	m := &Model{
		cfg:    cfg,
		panels: make([]Panel, 0, len(seed)),
		index:  make(map[PanelID]int, len(seed)),
	}
	for _, p := range seed {
		if _, dup := m.index[p.ID]; dup {
			return nil, fmt.Errorf("panel %d: duplicate id", p.ID)
		}
		if !p.Placement.Valid(cfg.Columns) {
			return nil, fmt.Errorf("panel %d: invalid placement (%s) for %d columns", p.ID, p.Placement, cfg.Columns)
		}
		p.Selected = false
		p.Rect = nil
		m.index[p.ID] = len(m.panels)
		m.panels = append(m.panels, p)
	}
	return m, nil
}

// Config returns the model's geometry configuration.
func (m *Model) Config() Config {
	return m.cfg
}

// Panels returns a copy of every panel in insertion order.
func (m *Model) Panels() []Panel {
	out := make([]Panel, len(m.panels))
	for i, p := range m.panels {
		out[i] = p.clone()
	}
	return out
}

// Panel returns a copy of the panel with the given id.
func (m *Model) Panel(id PanelID) (Panel, bool) {
	i, ok := m.index[id]
	if !ok {
		return Panel{}, false
	}
	return m.panels[i].clone(), true
}

// Selected returns the panel currently in free-form mode, if any.
func (m *Model) Selected() (Panel, bool) {
	for _, p := range m.panels {
		if p.Mode() == ModeFreeForm {
			return p.clone(), true
		}
	}
	return Panel{}, false
}

// SelectPanel puts id into free-form mode with rect as its geometry and drops
// every other panel out of free-form mode without snapping it. Returns false,
// leaving the model untouched, when id is unknown.
func (m *Model) SelectPanel(id PanelID, rect Rect) bool {
	if _, ok := m.index[id]; !ok {
		return false
	}
	for i := range m.panels {
		p := &m.panels[i]
		if p.ID != id {
			p.Selected = false
			p.Rect = nil
			continue
		}
		r := rect
		p.Selected = true
		p.Rect = &r
	}
	return true
}

// DeselectAll leaves free-form mode on every panel. Placements are unchanged.
func (m *Model) DeselectAll() {
	for i := range m.panels {
		m.panels[i].Selected = false
		m.panels[i].Rect = nil
	}
}

// SetRect replaces the free-form geometry of id. It is a no-op for panels
// that are unknown or in grid mode.
func (m *Model) SetRect(id PanelID, rect Rect) bool {
	i, ok := m.index[id]
	if !ok || m.panels[i].Mode() != ModeFreeForm {
		return false
	}
	r := rect
	m.panels[i].Rect = &r
	return true
}

// CommitSelected snaps every free-form panel with s and returns every panel
// to grid mode. A placement that s produces outside the grid is discarded and
// the panel keeps its previous placement. Returns the number of panels whose
// placement was written.
func (m *Model) CommitSelected(s Snapper) int {
	n := 0
	for i := range m.panels {
		p := &m.panels[i]
		if p.Mode() == ModeFreeForm {
			if pl := s.Snap(*p.Rect); pl.Valid(m.cfg.Columns) {
				p.Placement = pl
				n++
			}
		}
		p.Selected = false
		p.Rect = nil
	}
	return n
}
