package ui

// AppMode is the interaction mode of the surface, derived from engine state.
type AppMode int

const (
	ModeGrid AppMode = iota
	ModeFreeForm
	ModeDragging
)

func (m AppMode) String() string {
	switch m {
	case ModeGrid:
		return "Grid"
	case ModeFreeForm:
		return "FreeForm"
	case ModeDragging:
		return "Dragging"
	default:
		return "Unknown"
	}
}
