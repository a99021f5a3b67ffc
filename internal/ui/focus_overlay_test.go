package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"panelgrid/internal/grid"
)

func TestFocusManager_Cycle(t *testing.T) {
	f := &FocusManager{Order: []grid.PanelID{4, 7, 9}}

	for _, want := range []grid.PanelID{4, 7, 9, 4} {
		if got, ok := f.Next(); !ok || got != want {
			t.Errorf("Next() = %d, %v; want %d", got, ok, want)
		}
	}
	if got, _ := f.Prev(); got != 9 {
		t.Errorf("Prev() from 4 = %d, want 9", got)
	}
}

func TestFocusManager_PrevFromNothing(t *testing.T) {
	f := &FocusManager{Order: []grid.PanelID{4, 7, 9}}
	if got, _ := f.Prev(); got != 9 {
		t.Errorf("Prev() with no focus = %d, want last panel", got)
	}
}

func TestFocusManager_Empty(t *testing.T) {
	f := &FocusManager{}
	if _, ok := f.Next(); ok {
		t.Error("Next() on empty order should fail")
	}
	if f.SetFocus(1) {
		t.Error("SetFocus on unknown id should fail")
	}
}

// staticView records the messages it receives.
type staticView struct{ got []tea.Msg }

func (v *staticView) Init() tea.Cmd { return nil }
func (v *staticView) Update(msg tea.Msg) (View, tea.Cmd) {
	v.got = append(v.got, msg)
	return v, nil
}
func (v *staticView) View() string { return "static" }

func TestOverlayStack(t *testing.T) {
	var s OverlayStack
	if _, ok := s.Peek(); ok {
		t.Fatal("empty stack should have no top")
	}
	if _, ok := s.HandleKey(keyMsg("x")); ok {
		t.Error("HandleKey on empty stack should report false")
	}

	v := &staticView{}
	s.Push(Overlay{View: v, Dismiss: []string{"esc", "?"}})
	if _, ok := s.HandleKey(keyMsg("x")); !ok || len(v.got) != 1 {
		t.Errorf("overlay received %d messages, want 1", len(v.got))
	}
	if s.Len() != 1 {
		t.Fatalf("non-dismiss key closed the overlay")
	}
	s.HandleKey(keyMsg("?"))
	if s.Len() != 0 {
		t.Errorf("dismiss key left %d overlays", s.Len())
	}
	if _, ok := s.Pop(); ok {
		t.Error("Pop on empty stack should report false")
	}
}

func TestOverlayStack_DrawCentered(t *testing.T) {
	var s OverlayStack
	s.Push(Overlay{View: &staticView{}})
	frame := newCanvas(10, 3)
	s.draw(frame)
	if got := plainLines(frame)[1]; got != "  static  " {
		t.Errorf("overlay not centered: %q", got)
	}
}
