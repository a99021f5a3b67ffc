// Package surface composes the layout model, drag controller and snap engine
// behind the commands a front-end invokes.
package surface

import (
	"log"

	"panelgrid/internal/drag"
	"panelgrid/internal/grid"
	"panelgrid/internal/snap"
)

// ContainerMeasurer reports the container's screen-pixel rectangle.
type ContainerMeasurer interface {
	MeasureContainer() (grid.Rect, bool)
}

// PanelMeasurer reports a panel's rendered screen-pixel rectangle.
type PanelMeasurer interface {
	MeasurePanel(id grid.PanelID) (grid.Rect, bool)
}

// TargetKind classifies what a pointer-down landed on.
type TargetKind int

const (
	TargetOutside TargetKind = iota
	TargetBody
	TargetResize
)

func (k TargetKind) String() string {
	switch k {
	case TargetOutside:
		return "outside"
	case TargetBody:
		return "body"
	case TargetResize:
		return "resize"
	default:
		return "unknown"
	}
}

// Target is a classified pointer-down location. PanelID is ignored for
// TargetOutside.
type Target struct {
	Kind    TargetKind
	PanelID grid.PanelID
}

// Deps are the external collaborators of an Engine. Observer and Subscriber
// may be nil.
type Deps struct {
	Container  ContainerMeasurer
	Panels     PanelMeasurer
	Subscriber drag.Subscriber
	Observer   Observer
}

// Engine is the single entry point for mutating a panel surface.
type Engine struct {
	model *grid.Model
	drag  *drag.Controller
	deps  Deps
	obs   Observer

	container     grid.Rect
	haveContainer bool
}

// New creates an engine over model. The container is measured once here and
// afterwards only on RefreshContainer.
func New(model *grid.Model, deps Deps) *Engine {
	obs := deps.Observer
	if obs == nil {
		obs = NopObserver{}
	}
	e := &Engine{
		model: model,
		drag:  drag.NewController(model, model.Config().MinSize, deps.Subscriber),
		deps:  deps,
		obs:   obs,
	}
	e.RefreshContainer()
	return e
}

// RefreshContainer re-measures and caches the container geometry.
func (e *Engine) RefreshContainer() {
	if e.deps.Container == nil {
		return
	}
	r, ok := e.deps.Container.MeasureContainer()
	e.container, e.haveContainer = r, ok
	if ok {
		log.Printf("surface: container %s, column width %.1f", r, e.ColumnWidth())
	}
}

// Container returns the cached container geometry.
func (e *Engine) Container() (grid.Rect, bool) {
	return e.container, e.haveContainer
}

// ColumnWidth returns the pixel width of one column, or 0 when the container
// has not been measured.
func (e *Engine) ColumnWidth() float64 {
	return e.snapper().ColWidth
}

// Config returns the grid configuration.
func (e *Engine) Config() grid.Config {
	return e.model.Config()
}

// Panels returns a snapshot of every panel.
func (e *Engine) Panels() []grid.Panel {
	return e.model.Panels()
}

// Selected returns the panel in free-form mode, if any.
func (e *Engine) Selected() (grid.Panel, bool) {
	return e.model.Selected()
}

// Dragging reports whether a drag session is active.
func (e *Engine) Dragging() bool {
	return e.drag.Active()
}

// Session returns the active drag session.
func (e *Engine) Session() (drag.Session, bool) {
	return e.drag.Session()
}

// GridRect returns the container-relative pixel rectangle of a placement
// under the cached container geometry.
func (e *Engine) GridRect(p grid.Placement) grid.Rect {
	return e.snapper().Rect(p)
}

// SnapPreview returns the placement the free-form panel id would commit to
// under the cached container geometry.
func (e *Engine) SnapPreview(id grid.PanelID) (grid.Placement, bool) {
	p, ok := e.model.Panel(id)
	s := e.snapper()
	if !ok || p.Mode() != grid.ModeFreeForm || !s.Ready() {
		return grid.Placement{}, false
	}
	return s.Snap(*p.Rect), true
}

// SelectPanel moves id into free-form mode, seeded with its measured
// rectangle. It is ignored while dragging or when either the container or
// the panel cannot be measured.
func (e *Engine) SelectPanel(id grid.PanelID) {
	if e.drag.Active() || e.deps.Container == nil || e.deps.Panels == nil {
		return
	}
	if _, ok := e.model.Panel(id); !ok {
		return
	}
	container, ok := e.deps.Container.MeasureContainer()
	if !ok {
		return
	}
	r, ok := e.deps.Panels.MeasurePanel(id)
	if !ok {
		return
	}
	if cur, ok := e.model.Selected(); ok && cur.ID != id && e.model.Config().SnapOnReselect {
		e.CommitAllSelected()
	}
	rect := r.Translate(-container.X, -container.Y)
	if e.model.SelectPanel(id, rect) {
		log.Printf("surface: select panel %d at %s", id, rect)
		p, _ := e.model.Panel(id)
		e.obs.PanelSelected(p)
	}
}

// CommitAllSelected snaps every free-form panel back onto the grid. An active
// drag is ended first. Nothing changes when the column width is unknown.
func (e *Engine) CommitAllSelected() {
	if e.drag.Active() {
		e.PointerUp(grid.Point{})
	}
	s := e.snapper()
	n, ran := s.Commit(e.model)
	if !ran {
		log.Printf("surface: commit skipped, container not measured")
		e.obs.CommitSkipped()
		return
	}
	log.Printf("surface: committed %d panel(s), column width %.1f", n, s.ColWidth)
	e.obs.Committed(n, s.ColWidth)
}

// CancelDrag aborts an active drag and restores the panel's start rectangle.
func (e *Engine) CancelDrag() {
	s, ok := e.drag.Cancel()
	if !ok {
		return
	}
	log.Printf("surface: %s of panel %d canceled", s.Kind, s.PanelID)
	e.obs.DragEnded(s, s.StartRect, true)
}

// PointerDown routes a classified pointer-down. A second pointer-down while a
// drag is active is ignored.
func (e *Engine) PointerDown(p grid.Point, target Target) {
	if e.drag.Active() {
		return
	}
	switch target.Kind {
	case TargetOutside:
		e.CommitAllSelected()
	case TargetBody:
		if cur, ok := e.model.Panel(target.PanelID); ok && cur.Mode() == grid.ModeFreeForm {
			e.beginDrag(target.PanelID, drag.KindMove, p)
			return
		}
		e.SelectPanel(target.PanelID)
	case TargetResize:
		e.beginDrag(target.PanelID, drag.KindResize, p)
	}
}

// PointerMove updates the dragged panel, if any.
func (e *Engine) PointerMove(p grid.Point) {
	e.drag.Move(p)
}

// PointerUp ends the active drag without snapping.
func (e *Engine) PointerUp(grid.Point) {
	s, ok := e.drag.End()
	if !ok {
		return
	}
	final := s.StartRect
	if p, ok := e.model.Panel(s.PanelID); ok && p.Rect != nil {
		final = *p.Rect
	}
	log.Printf("surface: %s of panel %d ended at %s", s.Kind, s.PanelID, final)
	e.obs.DragEnded(s, final, false)
}

func (e *Engine) beginDrag(id grid.PanelID, kind drag.Kind, p grid.Point) {
	if !e.drag.Begin(id, kind, p) {
		return
	}
	s, _ := e.drag.Session()
	log.Printf("surface: %s of panel %d started from %s", kind, id, s.StartRect)
	e.obs.DragStarted(s)
}

func (e *Engine) snapper() snap.Engine {
	if !e.haveContainer {
		return snap.Engine{Columns: e.model.Config().Columns, RowHeight: e.model.Config().RowHeight}
	}
	return snap.New(e.model.Config(), e.container.Width)
}
