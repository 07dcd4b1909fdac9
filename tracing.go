package intentsdk

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"sync"
	"time"
)

// ──────────────────────────────────────────────
// Tracing — lightweight spans around routing decisions
// ──────────────────────────────────────────────

// SpanKind labels what a span measured.
type SpanKind string

const (
	SpanKindRoute    SpanKind = "route"
	SpanKindProvider SpanKind = "provider"
)

// RouteSpan records one routed message for observability.
type RouteSpan struct {
	SpanID     string                 `json:"span_id"`
	Name       string                 `json:"name"`
	Kind       SpanKind               `json:"kind"`
	StartTime  time.Time              `json:"start_time"`
	EndTime    time.Time              `json:"end_time,omitempty"`
	Attributes map[string]interface{} `json:"attributes,omitempty"`
	Status     string                 `json:"status"`
	mu         sync.Mutex
}

// DurationMs returns the span duration in milliseconds.
func (s *RouteSpan) DurationMs() float64 {
	end := s.EndTime
	if end.IsZero() {
		end = time.Now()
	}
	return float64(end.Sub(s.StartTime).Microseconds()) / 1000.0
}

// SetAttribute sets a key-value attribute on the span.
func (s *RouteSpan) SetAttribute(key string, value interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Attributes == nil {
		s.Attributes = make(map[string]interface{})
	}
	s.Attributes[key] = value
}

// SpanExporter receives finished spans.
type SpanExporter interface {
	Export(span *RouteSpan)
}

// NullSpanExporter discards all spans.
type NullSpanExporter struct{}

func (e *NullSpanExporter) Export(span *RouteSpan) {}

// ConsoleSpanExporter prints spans to log.
type ConsoleSpanExporter struct{}

func (e *ConsoleSpanExporter) Export(span *RouteSpan) {
	log.Printf("[Trace] %s %s | %s | %.1fms | %v",
		span.Kind, span.Name, span.Status, span.DurationMs(), span.Attributes)
}

// CallbackSpanExporter calls a function for each span.
type CallbackSpanExporter struct {
	Fn func(span *RouteSpan)
}

func (e *CallbackSpanExporter) Export(span *RouteSpan) {
	e.Fn(span)
}

// Tracer creates and finishes route spans.
type Tracer struct {
	exporter SpanExporter
	enabled  bool
}

// NewTracer creates a tracer. A nil exporter discards spans.
func NewTracer(exporter SpanExporter, enabled bool) *Tracer {
	if exporter == nil {
		exporter = &NullSpanExporter{}
	}
	return &Tracer{exporter: exporter, enabled: enabled}
}

// StartSpan begins a span.
func (t *Tracer) StartSpan(name string, kind SpanKind) *RouteSpan {
	if !t.enabled {
		return &RouteSpan{Name: name, Kind: kind, Status: "ok"}
	}
	return &RouteSpan{
		SpanID:    randomHex(6),
		Name:      name,
		Kind:      kind,
		StartTime: time.Now(),
		Status:    "running",
	}
}

// EndSpan finishes a span and exports it.
func (t *Tracer) EndSpan(span *RouteSpan, status string) {
	if !t.enabled {
		return
	}
	span.mu.Lock()
	span.EndTime = time.Now()
	span.Status = status
	span.mu.Unlock()
	t.exporter.Export(span)
}

func randomHex(n int) string {
	b := make([]byte, n)
	rand.Read(b)
	return hex.EncodeToString(b)
}
