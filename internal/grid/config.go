package grid

import "fmt"

const (
	DefaultColumns   = 10
	DefaultRowHeight = 80
	DefaultMinSize   = 40
)

// Config is the geometry contract shared by the model, drag and snap code.
type Config struct {
	Columns   int     // number of grid columns
	RowHeight float64 // pixels per grid row
	MinSize   float64 // floor for free-form width and height while resizing

	// SnapOnReselect snaps a free-form panel when another panel is selected
	// instead of discarding its rectangle.
	SnapOnReselect bool
}

// DefaultConfig returns the 10 column, 80px row, 40px floor configuration.
func DefaultConfig() Config {
	return Config{
		Columns:   DefaultColumns,
		RowHeight: DefaultRowHeight,
		MinSize:   DefaultMinSize,
	}
}

// Validate reports the first field that cannot drive a layout.
func (c Config) Validate() error {
	if c.Columns < 1 {
		return fmt.Errorf("columns must be >= 1, got %d", c.Columns)
	}
	if c.RowHeight <= 0 {
		return fmt.Errorf("row height must be > 0, got %g", c.RowHeight)
	}
	if c.MinSize <= 0 {
		return fmt.Errorf("min size must be > 0, got %g", c.MinSize)
	}
	return nil
}
