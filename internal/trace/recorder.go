// Package trace records panel gestures as OpenTelemetry spans and keeps a
// short ring of recent gestures for display.
package trace

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"

	"panelgrid/internal/drag"
	"panelgrid/internal/grid"
	"panelgrid/internal/surface"
)

// InstrumentationName is the tracer name used for gesture spans.
const InstrumentationName = "panelgrid/surface"

var _ surface.Observer = (*Recorder)(nil)

// Recorder turns surface notifications into spans.
type Recorder struct {
	mu        sync.Mutex
	tracer    oteltrace.Tracer
	now       func() time.Time
	recent    []Span // oldest first
	maxRecent int
	drag      oteltrace.Span // open span of the active drag, if any
	dragStart time.Time
}

// NewRecorder creates a recorder. A nil tracer uses the global provider.
func NewRecorder(tracer oteltrace.Tracer, maxRecent int) *Recorder {
	if tracer == nil {
		tracer = otel.Tracer(InstrumentationName)
	}
	if maxRecent <= 0 {
		maxRecent = 10
	}
	return &Recorder{
		tracer:    tracer,
		now:       time.Now,
		recent:    make([]Span, 0, maxRecent),
		maxRecent: maxRecent,
	}
}

// Recent returns the recorded spans, newest first.
func (r *Recorder) Recent() []Span {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Span, len(r.recent))
	for i, s := range r.recent {
		out[len(r.recent)-1-i] = s
	}
	return out
}

// Last returns the most recent span.
func (r *Recorder) Last() (Span, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.recent) == 0 {
		return Span{}, false
	}
	return r.recent[len(r.recent)-1], true
}

// PanelSelected implements surface.Observer.
func (r *Recorder) PanelSelected(p grid.Panel) {
	attrs := []attribute.KeyValue{panelAttr(p.ID)}
	if p.Rect != nil {
		attrs = append(attrs, rectAttrs("panelgrid.rect", *p.Rect)...)
	}
	r.instant(SpanSelect, attrs)
}

// DragStarted implements surface.Observer.
func (r *Recorder) DragStarted(s drag.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.drag != nil {
		r.drag.End()
	}
	r.dragStart = r.now()
	attrs := append([]attribute.KeyValue{
		panelAttr(s.PanelID),
		attribute.String("panelgrid.drag.kind", s.Kind.String()),
	}, rectAttrs("panelgrid.drag.start", s.StartRect)...)
	_, r.drag = r.tracer.Start(context.Background(), string(dragName(s.Kind)),
		oteltrace.WithTimestamp(r.dragStart),
		oteltrace.WithAttributes(attrs...),
	)
}

// DragEnded implements surface.Observer.
func (r *Recorder) DragEnded(s drag.Session, final grid.Rect, canceled bool) {
	r.mu.Lock()
	span, start := r.drag, r.dragStart
	r.drag = nil
	r.mu.Unlock()

	end := r.now()
	if span == nil {
		// Observer attached mid-drag.
		start = end
		_, span = r.tracer.Start(context.Background(), string(dragName(s.Kind)),
			oteltrace.WithTimestamp(start),
			oteltrace.WithAttributes(panelAttr(s.PanelID), attribute.String("panelgrid.drag.kind", s.Kind.String())),
		)
	}
	attrs := append([]attribute.KeyValue{attribute.Bool("panelgrid.drag.canceled", canceled)},
		rectAttrs("panelgrid.drag.final", final)...)
	span.SetAttributes(attrs...)
	span.End(oteltrace.WithTimestamp(end))

	all := append([]attribute.KeyValue{
		panelAttr(s.PanelID),
		attribute.String("panelgrid.drag.kind", s.Kind.String()),
	}, attrs...)
	r.record(span, dragName(s.Kind), start, end.Sub(start), all)
}

// Committed implements surface.Observer.
func (r *Recorder) Committed(snapped int, colWidth float64) {
	r.instant(SpanCommit, []attribute.KeyValue{
		attribute.Int("panelgrid.commit.snapped", snapped),
		attribute.Float64("panelgrid.column_width", colWidth),
	})
}

// CommitSkipped implements surface.Observer.
func (r *Recorder) CommitSkipped() {
	r.instant(SpanCommit, []attribute.KeyValue{attribute.Bool("panelgrid.commit.skipped", true)})
}

func (r *Recorder) instant(name SpanName, attrs []attribute.KeyValue) {
	at := r.now()
	_, span := r.tracer.Start(context.Background(), string(name),
		oteltrace.WithTimestamp(at),
		oteltrace.WithAttributes(attrs...),
	)
	span.End(oteltrace.WithTimestamp(at))
	r.record(span, name, at, 0, attrs)
}

func (r *Recorder) record(span oteltrace.Span, name SpanName, start time.Time, d time.Duration, attrs []attribute.KeyValue) {
	sc := span.SpanContext()
	s := Span{
		TraceID:    sc.TraceID().String(),
		SpanID:     sc.SpanID().String(),
		Name:       name,
		StartTime:  start,
		Duration:   d,
		Attributes: make(map[string]string, len(attrs)),
	}
	if !sc.IsValid() {
		s.TraceID, s.SpanID = NewTraceID(), NewSpanID()
	}
	for _, kv := range attrs {
		s.Attributes[string(kv.Key)] = kv.Value.Emit()
	}

	r.mu.Lock()
	if len(r.recent) == r.maxRecent {
		r.recent = append(r.recent[:0], r.recent[1:]...)
	}
	r.recent = append(r.recent, s)
	r.mu.Unlock()
}

// Summary renders a one-line description of s for a status bar.
func (s Span) Summary() string {
	var b strings.Builder
	b.WriteString(string(s.Name))
	if id, ok := s.Attributes["panelgrid.panel.id"]; ok {
		b.WriteString(" #" + id)
	}
	switch s.Name {
	case SpanDragMove, SpanDragResize:
		if s.Attributes["panelgrid.drag.canceled"] == "true" {
			b.WriteString(" canceled")
		}
		fmt.Fprintf(&b, " %s", s.Duration.Round(time.Millisecond))
	case SpanCommit:
		if s.Attributes["panelgrid.commit.skipped"] == "true" {
			b.WriteString(" skipped")
		} else if n, ok := s.Attributes["panelgrid.commit.snapped"]; ok {
			b.WriteString(" " + n + " snapped")
		}
	}
	return b.String()
}

func dragName(k drag.Kind) SpanName {
	if k == drag.KindResize {
		return SpanDragResize
	}
	return SpanDragMove
}

func panelAttr(id grid.PanelID) attribute.KeyValue {
	return attribute.String("panelgrid.panel.id", strconv.Itoa(int(id)))
}

func rectAttrs(prefix string, r grid.Rect) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Float64(prefix+".x", r.X),
		attribute.Float64(prefix+".y", r.Y),
		attribute.Float64(prefix+".width", r.Width),
		attribute.Float64(prefix+".height", r.Height),
	}
}
