package persona

import "testing"

// ══════════════════════════════════════════════
// Registry tests
// ══════════════════════════════════════════════

func TestDetect_FirstMatchWins(t *testing.T) {
	r := DefaultRegistry()

	// Matches both credit ("dispute") and developer ("code"); the first
	// declared persona wins, reproducibly.
	msg := "help me dispute this charge-off, also review my code"
	for i := 0; i < 5; i++ {
		if p := r.Detect(msg); p.ID != "credit" {
			t.Fatalf("run %d: expected credit, got %s", i, p.ID)
		}
	}
}

func TestDetect_FallbackWhenNoMatch(t *testing.T) {
	r := DefaultRegistry()

	for _, msg := range []string{"good morning!", "", "tell me a story"} {
		p := r.Detect(msg)
		if p.ID != "default" {
			t.Fatalf("%q: expected default persona, got %s", msg, p.ID)
		}
		if !p.IsDefault() {
			t.Fatal("fallback must have an empty keyword set")
		}
	}
}

func TestDetect_CaseInsensitive(t *testing.T) {
	r := DefaultRegistry()

	if p := r.Detect("My MORTGAGE payment went up"); p.ID != "realtor" {
		t.Fatalf("expected realtor, got %s", p.ID)
	}
}

func TestNewRegistry_KeywordCasing(t *testing.T) {
	// Keywords are normalized at construction; mixed-case entries must
	// still match the lowercased message.
	r := NewRegistry(Persona{ID: "credit", Keywords: []string{"DISPUTE"}})

	if p := r.Detect("help me dispute this charge"); p.ID != "credit" {
		t.Fatalf("uppercase keyword should still match, got %s", p.ID)
	}
}

func TestDetect_CustomOrder(t *testing.T) {
	dev := Persona{ID: "developer", Keywords: []string{"code"}}
	credit := Persona{ID: "credit", Keywords: []string{"dispute"}}
	r := NewRegistry(dev, credit)

	if p := r.Detect("dispute this code"); p.ID != "developer" {
		t.Fatalf("declaration order must decide ties, got %s", p.ID)
	}
}

func TestNewRegistry_CustomFallback(t *testing.T) {
	fallback := Persona{ID: "muse", DisplayName: "Muse"}
	r := NewRegistry(fallback, Persona{ID: "credit", Keywords: []string{"credit"}})

	if r.Len() != 1 {
		t.Fatalf("fallback must not join the scan list, got %d", r.Len())
	}
	if p := r.Detect("hello there"); p.ID != "muse" {
		t.Fatalf("expected custom fallback, got %s", p.ID)
	}
}

func TestGet(t *testing.T) {
	r := DefaultRegistry()

	if p, ok := r.Get("realtor"); !ok || p.DisplayName == "" {
		t.Fatalf("expected realtor persona, got %+v ok=%v", p, ok)
	}
	if p, ok := r.Get("default"); !ok || !p.IsDefault() {
		t.Fatalf("expected fallback via Get, got %+v ok=%v", p, ok)
	}
	if _, ok := r.Get("nope"); ok {
		t.Fatal("unknown id must not resolve")
	}
}

func TestList_EndsWithFallback(t *testing.T) {
	r := DefaultRegistry()

	list := r.List()
	if len(list) != r.Len()+1 {
		t.Fatalf("expected %d entries, got %d", r.Len()+1, len(list))
	}
	if last := list[len(list)-1]; !last.IsDefault() {
		t.Fatalf("expected fallback last, got %s", last.ID)
	}
}

func TestDefaultPersonas_HavePrompts(t *testing.T) {
	for _, p := range DefaultPersonas() {
		if p.SystemPrompt == "" {
			t.Fatalf("persona %s is missing a system prompt", p.ID)
		}
		if len(p.Keywords) == 0 {
			t.Fatalf("persona %s is missing keywords", p.ID)
		}
	}
}
