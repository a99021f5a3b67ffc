package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"panelgrid/internal/drag"
)

// motionTracker implements drag.Subscriber. While a drag holds a
// subscription the terminal reports all mouse motion and motion events are
// routed to the engine; on release it drops back to cell-motion reporting.
type motionTracker struct {
	active  bool
	pending []tea.Cmd
}

var _ drag.Subscriber = (*motionTracker)(nil)

// Subscribe implements drag.Subscriber.
func (m *motionTracker) Subscribe() drag.Subscription {
	m.active = true
	m.pending = append(m.pending, tea.EnableMouseAllMotion)
	return &motionSubscription{tracker: m}
}

// drain returns the queued terminal mode changes in order.
func (m *motionTracker) drain() tea.Cmd {
	if len(m.pending) == 0 {
		return nil
	}
	cmds := m.pending
	m.pending = nil
	return tea.Sequence(cmds...)
}

type motionSubscription struct {
	tracker  *motionTracker
	released bool
}

// Release implements drag.Subscription.
func (s *motionSubscription) Release() {
	if s.released {
		return
	}
	s.released = true
	s.tracker.active = false
	s.tracker.pending = append(s.tracker.pending, tea.EnableMouseCellMotion)
}
