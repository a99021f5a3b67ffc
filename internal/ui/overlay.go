package ui

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// View is an Elm-style component hosted in an overlay.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// Overlay is a popup drawn centered over the surface. While one is open the
// surface receives no pointer input.
type Overlay struct {
	View    View
	Dismiss []string // keys that close it
}

func (o Overlay) dismissedBy(key string) bool {
	return slices.Contains(o.Dismiss, key)
}

// OverlayStack holds open overlays; only the top one receives keys.
type OverlayStack struct {
	stack []Overlay
}

// Push opens o above any current overlay.
func (s *OverlayStack) Push(o Overlay) {
	s.stack = append(s.stack, o)
}

// Pop closes the top overlay.
func (s *OverlayStack) Pop() (Overlay, bool) {
	top, ok := s.Peek()
	if ok {
		s.stack = s.stack[:len(s.stack)-1]
	}
	return top, ok
}

// Peek returns the top overlay.
func (s *OverlayStack) Peek() (Overlay, bool) {
	if len(s.stack) == 0 {
		return Overlay{}, false
	}
	return s.stack[len(s.stack)-1], true
}

// Len returns the number of open overlays.
func (s *OverlayStack) Len() int {
	return len(s.stack)
}

// HandleKey closes the top overlay on one of its dismiss keys and otherwise
// forwards msg to it. It reports false when no overlay is open.
func (s *OverlayStack) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if len(s.stack) == 0 {
		return nil, false
	}
	top := &s.stack[len(s.stack)-1]
	if top.dismissedBy(msg.String()) {
		s.Pop()
		return nil, true
	}
	v, cmd := top.View.Update(msg)
	top.View = v
	return cmd, true
}

// draw centers the top overlay on frame.
func (s *OverlayStack) draw(frame *canvas) {
	top, ok := s.Peek()
	if !ok {
		return
	}
	box := top.View.View()
	w, h := lipgloss.Size(box)
	frame.place(max(0, (frame.width-w)/2), max(0, (len(frame.lines)-h)/2), box)
}
