package trace

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// SpanName identifies the kind of gesture a span records.
type SpanName string

const (
	SpanSelect     SpanName = "select"      // Panel entered free-form mode
	SpanDragMove   SpanName = "drag.move"   // Move drag, begin to end
	SpanDragResize SpanName = "drag.resize" // Resize drag, begin to end
	SpanCommit     SpanName = "commit"      // Snap of all free-form panels
)

// Span is a completed gesture span as kept in the recent ring.
type Span struct {
	TraceID    string
	SpanID     string
	Name       SpanName
	StartTime  time.Time
	Duration   time.Duration
	Attributes map[string]string
}

// NewTraceID generates a random 16-byte trace ID as hex string (32 characters)
func NewTraceID() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// NewSpanID generates a random 8-byte span ID as hex string (16 characters)
func NewSpanID() string {
	b := make([]byte, 8)
	rand.Read(b)
	return hex.EncodeToString(b)
}
