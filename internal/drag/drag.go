// Package drag implements the pointer drag state machine for free-form panels.
package drag

import (
	"math"

	"panelgrid/internal/grid"
)

// Kind is the operation a drag session performs.
type Kind int

const (
	KindMove Kind = iota
	KindResize
)

func (k Kind) String() string {
	switch k {
	case KindMove:
		return "move"
	case KindResize:
		return "resize"
	default:
		return "unknown"
	}
}

// Session is the frozen start state of one pointer gesture.
type Session struct {
	PanelID      grid.PanelID
	Kind         Kind
	StartPointer grid.Point
	StartRect    grid.Rect
}

// Apply returns the panel rectangle for the given pointer position. The
// result depends only on the session and pointer, never on earlier frames.
func (s Session) Apply(pointer grid.Point, minSize float64) grid.Rect {
	dx := pointer.X - s.StartPointer.X
	dy := pointer.Y - s.StartPointer.Y
	r := s.StartRect
	switch s.Kind {
	case KindMove:
		r.X += dx
		r.Y += dy
	case KindResize:
		r.Width = math.Max(minSize, r.Width+dx)
		r.Height = math.Max(minSize, r.Height+dy)
	}
	return r
}

// Subscription is a pointer motion/release subscription held for the
// lifetime of one session.
type Subscription interface {
	Release()
}

// Subscriber hands out pointer subscriptions.
type Subscriber interface {
	Subscribe() Subscription
}

// Store is the slice of the layout model the controller needs.
type Store interface {
	Panel(id grid.PanelID) (grid.Panel, bool)
	SetRect(id grid.PanelID, rect grid.Rect) bool
}

// Controller tracks at most one active Session.
type Controller struct {
	store   Store
	minSize float64
	subs    Subscriber

	session *Session
	sub     Subscription
}

// NewController creates an idle controller. subs may be nil when the host
// routes pointer events unconditionally.
func NewController(store Store, minSize float64, subs Subscriber) *Controller {
	return &Controller{store: store, minSize: minSize, subs: subs}
}

// Active reports whether a session is in progress.
func (c *Controller) Active() bool {
	return c.session != nil
}

// Session returns a copy of the active session.
func (c *Controller) Session() (Session, bool) {
	if c.session == nil {
		return Session{}, false
	}
	return *c.session, true
}

// Begin starts a session on id. It is ignored when a session is already
// active or the panel has no free-form geometry.
func (c *Controller) Begin(id grid.PanelID, kind Kind, pointer grid.Point) bool {
	if c.session != nil {
		return false
	}
	p, ok := c.store.Panel(id)
	if !ok || p.Mode() != grid.ModeFreeForm {
		return false
	}
	c.session = &Session{
		PanelID:      id,
		Kind:         kind,
		StartPointer: pointer,
		StartRect:    *p.Rect,
	}
	if c.subs != nil {
		c.sub = c.subs.Subscribe()
	}
	return true
}

// Move applies the pointer position to the dragged panel.
func (c *Controller) Move(pointer grid.Point) bool {
	if c.session == nil {
		return false
	}
	return c.store.SetRect(c.session.PanelID, c.session.Apply(pointer, c.minSize))
}

// End finishes the session. The panel keeps the rectangle from the last Move.
func (c *Controller) End() (Session, bool) {
	if c.session == nil {
		return Session{}, false
	}
	s := *c.session
	c.finish()
	return s, true
}

// Cancel aborts the session and restores the panel's start rectangle.
func (c *Controller) Cancel() (Session, bool) {
	if c.session == nil {
		return Session{}, false
	}
	s := *c.session
	c.store.SetRect(s.PanelID, s.StartRect)
	c.finish()
	return s, true
}

func (c *Controller) finish() {
	c.session = nil
	if c.sub != nil {
		c.sub.Release()
		c.sub = nil
	}
}
