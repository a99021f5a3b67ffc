package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel"

	"panelgrid/internal/config"
	"panelgrid/internal/trace"
	"panelgrid/internal/ui"
)

// debugEnv enables the debug log. "1" writes to debug.log; any other value
// is used as the log path.
const debugEnv = "PANELGRID_DEBUG"

// options holds the parsed command line.
type options struct {
	overrides config.Overrides
	print     bool
}

func parseFlags() options {
	var (
		opts      options
		columns   int
		rowHeight float64
		minSize   float64
		reselect  bool
	)
	flag.StringVar(&opts.overrides.Layout, "layout", "", "YAML layout file (default $"+config.LayoutEnv+")")
	flag.IntVar(&columns, "columns", 0, "number of grid columns")
	flag.Float64Var(&rowHeight, "row-height", 0, "grid row height in pixels")
	flag.Float64Var(&minSize, "min-size", 0, "smallest width and height a resize may produce, in pixels")
	flag.BoolVar(&reselect, "snap-on-reselect", false, "snap the previous panel when another one is selected")
	flag.BoolVar(&opts.print, "print", false, "print the final layout as YAML on exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: panelgrid [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Arrange boxes on a column grid. Click a box to move or resize it freely,\n")
		fmt.Fprintf(os.Stderr, "click empty space or press s to snap it back onto the grid.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	// Only flags given on the command line override the file and environment.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "columns":
			opts.overrides.Columns = &columns
		case "row-height":
			opts.overrides.RowHeight = &rowHeight
		case "min-size":
			opts.overrides.MinSize = &minSize
		case "snap-on-reselect":
			opts.overrides.SnapOnReselect = &reselect
		}
	})
	return opts
}

func run(opts options) error {
	cfg, err := config.Load(opts.overrides, os.Getenv)
	if err != nil {
		return err
	}

	if path := os.Getenv(debugEnv); path != "" {
		if path == "1" {
			path = "debug.log"
		}
		f, err := tea.LogToFile(path, "panelgrid")
		if err != nil {
			return fmt.Errorf("debug log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	tp, err := trace.NewOTLPProvider(context.Background(), os.Getenv)
	if err != nil {
		return err
	}
	if tp != nil {
		otel.SetTracerProvider(tp)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tp.Shutdown(ctx); err != nil {
				log.Printf("tracing shutdown: %v", err)
			}
		}()
	}

	app, err := ui.NewAppModel(cfg, trace.NewRecorder(nil, 0))
	if err != nil {
		return err
	}
	p := tea.NewProgram(app.AsTeaModel(), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return err
	}
	if opts.print {
		return config.WriteSnapshot(os.Stdout, app.Engine.Panels())
	}
	return nil
}

func main() {
	if err := run(parseFlags()); err != nil {
		fmt.Fprintf(os.Stderr, "panelgrid: %v\n", err)
		os.Exit(1)
	}
}
