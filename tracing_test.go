package intentsdk

import "testing"

// ══════════════════════════════════════════════
// Tracer tests
// ══════════════════════════════════════════════

func TestTracer_ExportsFinishedSpans(t *testing.T) {
	var got *RouteSpan
	tracer := NewTracer(&CallbackSpanExporter{Fn: func(s *RouteSpan) { got = s }}, true)

	span := tracer.StartSpan("route_message", SpanKindRoute)
	span.SetAttribute("decision", "chat")
	tracer.EndSpan(span, "ok")

	if got == nil {
		t.Fatal("expected span export")
	}
	if got.SpanID == "" {
		t.Fatal("expected a span id")
	}
	if got.Status != "ok" || got.Kind != SpanKindRoute {
		t.Fatalf("unexpected span %+v", got)
	}
	if got.DurationMs() < 0 {
		t.Fatalf("negative duration %.2f", got.DurationMs())
	}
}

func TestTracer_DisabledDropsSpans(t *testing.T) {
	exports := 0
	tracer := NewTracer(&CallbackSpanExporter{Fn: func(*RouteSpan) { exports++ }}, false)

	span := tracer.StartSpan("route_message", SpanKindRoute)
	tracer.EndSpan(span, "ok")

	if exports != 0 {
		t.Fatalf("disabled tracer must not export, got %d", exports)
	}
}
