// Package ui is the terminal front end of the panel surface, built on Bubble Tea.
//
// Pieces:
//   - AppModel: root model; routes mouse and key messages into surface.Engine
//   - screen: maps terminal cells to virtual pixels, measures and hit-tests panels
//   - canvas: composes overlapping styled blocks into one frame
//   - KeybindRegistry/KeyHandler: single keys plus SPC leader sequences
//   - FocusManager: tab order for keyboard selection
//   - Overlay: popup views (help) with dismiss keys
package ui
