// Package config loads panelgrid settings from defaults, an optional YAML
// layout file, environment variables and command-line flags, in that order.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"panelgrid/internal/grid"
)

const (
	// LayoutEnv names a YAML layout file to load when --layout is not given.
	LayoutEnv    = "PANELGRID_LAYOUT"
	ColumnsEnv   = "PANELGRID_COLUMNS"
	RowHeightEnv = "PANELGRID_ROW_HEIGHT"
	MinSizeEnv   = "PANELGRID_MIN_SIZE"

	// Terminal cells are mapped onto this many virtual pixels by default.
	DefaultCellWidth  = 10
	DefaultCellHeight = 20
)

// Cell is the pixel size of one terminal cell.
type Cell struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Config is the resolved program configuration.
type Config struct {
	Grid   grid.Config
	Cell   Cell
	Panels []grid.Panel
}

// PanelSpec is the YAML form of a seed panel.
type PanelSpec struct {
	ID         int    `yaml:"id"`
	Label      string `yaml:"label,omitempty"`
	Column     int    `yaml:"column"`
	Row        int    `yaml:"row"`
	ColumnSpan int    `yaml:"column_span"`
	RowSpan    int    `yaml:"row_span"`
}

// File is the YAML layout file. Zero-valued fields keep their defaults.
type File struct {
	Columns        int         `yaml:"columns,omitempty"`
	RowHeight      float64     `yaml:"row_height,omitempty"`
	MinSize        float64     `yaml:"min_size,omitempty"`
	SnapOnReselect *bool       `yaml:"snap_on_reselect,omitempty"`
	Cell           *Cell       `yaml:"cell,omitempty"`
	Panels         []PanelSpec `yaml:"panels,omitempty"`
}

// Default returns the built-in configuration: a 10 column grid seeded with
// three boxes.
func Default() Config {
	return Config{
		Grid: grid.DefaultConfig(),
		Cell: Cell{Width: DefaultCellWidth, Height: DefaultCellHeight},
		Panels: []grid.Panel{
			{ID: 1, Label: "Box 1", Placement: grid.Placement{Column: 1, Row: 1, ColumnSpan: 3, RowSpan: 2}},
			{ID: 2, Label: "Box 2", Placement: grid.Placement{Column: 4, Row: 1, ColumnSpan: 2, RowSpan: 1}},
			{ID: 3, Label: "Box 3", Placement: grid.Placement{Column: 7, Row: 2, ColumnSpan: 4, RowSpan: 2}},
		},
	}
}

// Overrides are flag values; nil fields were not set on the command line.
type Overrides struct {
	Layout         string
	Columns        *int
	RowHeight      *float64
	MinSize        *float64
	SnapOnReselect *bool
}

// Load resolves the configuration. getenv is usually os.Getenv.
func Load(o Overrides, getenv func(string) string) (Config, error) {
	cfg := Default()

	path := o.Layout
	if path == "" {
		path = getenv(LayoutEnv)
	}
	if path != "" {
		f, err := ReadFile(path)
		if err != nil {
			return Config{}, err
		}
		f.apply(&cfg)
	}

	if err := applyEnv(&cfg, getenv); err != nil {
		return Config{}, err
	}

	if o.Columns != nil {
		cfg.Grid.Columns = *o.Columns
	}
	if o.RowHeight != nil {
		cfg.Grid.RowHeight = *o.RowHeight
	}
	if o.MinSize != nil {
		cfg.Grid.MinSize = *o.MinSize
	}
	if o.SnapOnReselect != nil {
		cfg.Grid.SnapOnReselect = *o.SnapOnReselect
	}

	if err := cfg.Validate(); err != nil {
		if path != "" {
			return Config{}, fmt.Errorf("layout %s: %w", path, err)
		}
		return Config{}, err
	}
	return cfg, nil
}

// ReadFile parses a YAML layout file.
func ReadFile(path string) (File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return File{}, fmt.Errorf("open layout: %w", err)
	}
	defer fh.Close()
	return Decode(fh)
}

// Decode parses a YAML layout document. Unknown keys are rejected.
func Decode(r io.Reader) (File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("decode layout: %w", err)
	}
	return f, nil
}

func (f File) apply(cfg *Config) {
	if f.Columns != 0 {
		cfg.Grid.Columns = f.Columns
	}
	if f.RowHeight != 0 {
		cfg.Grid.RowHeight = f.RowHeight
	}
	if f.MinSize != 0 {
		cfg.Grid.MinSize = f.MinSize
	}
	if f.SnapOnReselect != nil {
		cfg.Grid.SnapOnReselect = *f.SnapOnReselect
	}
	if f.Cell != nil {
		cfg.Cell = *f.Cell
	}
	if len(f.Panels) > 0 {
		cfg.Panels = make([]grid.Panel, 0, len(f.Panels))
		for _, s := range f.Panels {
			cfg.Panels = append(cfg.Panels, s.Panel())
		}
	}
}

// Panel converts the entry to a grid panel. A missing label becomes "Box <id>".
func (s PanelSpec) Panel() grid.Panel {
	label := s.Label
	if label == "" {
		label = fmt.Sprintf("Box %d", s.ID)
	}
	return grid.Panel{
		ID:    grid.PanelID(s.ID),
		Label: label,
		Placement: grid.Placement{
			Column:     s.Column,
			Row:        s.Row,
			ColumnSpan: s.ColumnSpan,
			RowSpan:    s.RowSpan,
		},
	}
}

func applyEnv(cfg *Config, getenv func(string) string) error {
	if v := getenv(ColumnsEnv); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", ColumnsEnv, err)
		}
		cfg.Grid.Columns = n
	}
	if v := getenv(RowHeightEnv); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", RowHeightEnv, err)
		}
		cfg.Grid.RowHeight = f
	}
	if v := getenv(MinSizeEnv); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", MinSizeEnv, err)
		}
		cfg.Grid.MinSize = f
	}
	return nil
}

// Validate checks the grid contract, the cell size and the seed panels.
func (c Config) Validate() error {
	if err := c.Grid.Validate(); err != nil {
		return fmt.Errorf("grid: %w", err)
	}
	if c.Cell.Width <= 0 || c.Cell.Height <= 0 {
		return fmt.Errorf("cell size must be positive, got %gx%g", c.Cell.Width, c.Cell.Height)
	}
	if _, err := grid.NewModel(c.Grid, c.Panels); err != nil {
		return fmt.Errorf("panels: %w", err)
	}
	return nil
}

// Snapshot converts panels back to their YAML form, for printing the final
// layout.
func Snapshot(panels []grid.Panel) []PanelSpec {
	out := make([]PanelSpec, 0, len(panels))
	for _, p := range panels {
		out = append(out, PanelSpec{
			ID:         int(p.ID),
			Label:      p.Label,
			Column:     p.Placement.Column,
			Row:        p.Placement.Row,
			ColumnSpan: p.Placement.ColumnSpan,
			RowSpan:    p.Placement.RowSpan,
		})
	}
	return out
}

// WriteSnapshot writes panels as a YAML layout document to w.
func WriteSnapshot(w io.Writer, panels []grid.Panel) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(File{Panels: Snapshot(panels)}); err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	return enc.Close()
}
