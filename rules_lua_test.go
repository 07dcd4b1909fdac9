package intentsdk

import "testing"

// ══════════════════════════════════════════════
// RuleEngine tests
// ══════════════════════════════════════════════

const allowAllScript = `
function check(message)
    return "allow", ""
end`

func TestRuleEngine_AddRuleValidation(t *testing.T) {
	e := NewRuleEngine()

	if err := e.AddRule("bad_syntax", `function check(`); err == nil {
		t.Fatal("expected syntax error")
	}
	if err := e.AddRule("no_check", `x = 1`); err == nil {
		t.Fatal("expected missing-check error")
	}
	if err := e.AddRule("ok", allowAllScript); err != nil {
		t.Fatalf("valid rule rejected: %v", err)
	}
	if e.Count() != 1 {
		t.Fatalf("expected 1 registered rule, got %d", e.Count())
	}
}

func TestRuleEngine_AllowReturnsNilVerdict(t *testing.T) {
	e := NewRuleEngine()
	if err := e.AddRule("allow_all", allowAllScript); err != nil {
		t.Fatalf("add rule: %v", err)
	}

	verdict, err := e.Evaluate("anything at all")
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if verdict != nil {
		t.Fatalf("expected nil verdict, got %+v", verdict)
	}
}

func TestRuleEngine_VerdictCarriesRuleAndReason(t *testing.T) {
	e := NewRuleEngine()
	script := `
function check(message)
    return "veto_generation", "quota exhausted"
end`
	if err := e.AddRule("quota", script); err != nil {
		t.Fatalf("add rule: %v", err)
	}

	verdict, err := e.Evaluate("draw me a dragon")
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if verdict == nil {
		t.Fatal("expected a verdict")
	}
	if verdict.Rule != "quota" || verdict.Action != RuleActionVetoGeneration || verdict.Reason != "quota exhausted" {
		t.Fatalf("unexpected verdict %+v", verdict)
	}
}

func TestRuleEngine_FirstNonAllowWins(t *testing.T) {
	e := NewRuleEngine()
	if err := e.AddRule("first", `
function check(message)
    return "force_chat", "first"
end`); err != nil {
		t.Fatalf("add rule: %v", err)
	}
	if err := e.AddRule("second", `
function check(message)
    return "force_image", "second"
end`); err != nil {
		t.Fatalf("add rule: %v", err)
	}

	verdict, err := e.Evaluate("hello")
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if verdict == nil || verdict.Rule != "first" {
		t.Fatalf("expected first rule to win, got %+v", verdict)
	}
}

func TestRuleEngine_RuntimeErrorSurfaces(t *testing.T) {
	e := NewRuleEngine()
	if err := e.AddRule("boom", `
function check(message)
    error("boom")
end`); err != nil {
		t.Fatalf("add rule: %v", err)
	}

	if _, err := e.Evaluate("hello"); err == nil {
		t.Fatal("expected runtime error to surface")
	}
}
