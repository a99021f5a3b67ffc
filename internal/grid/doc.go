// Package grid holds the layout model for a fixed-column panel surface.
//
// A panel is either in grid mode (Placement is authoritative) or in free-form
// mode (Rect is authoritative and Placement is frozen until the next snap).
// Model is the single writer for the panel collection; drag and snap code
// mutate panels only through its methods.
package grid
