package intentsdk

import "strings"

// ──────────────────────────────────────────────
// Negative Guard Filter — hard veto for explanatory phrasing
// ──────────────────────────────────────────────

// DefaultGuardPhrases returns sentence starters that mark explanatory
// requests. Messages opening with one of these must never route to a
// generation pipeline, whatever they contain later in the sentence.
func DefaultGuardPhrases() []string {
	return []string{
		"explain", "describe", "tell me about", "write", "summarize",
		"list", "compare", "analyze", "why is", "how does",
	}
}

// NegativeGuard vetoes generation intent before any scoring happens.
// The check is prefix-only on purpose: "Why is this image blurry?" is
// guarded, while a message that merely mentions "explain" mid-sentence
// is not.
type NegativeGuard struct {
	phrases []string
}

// NewNegativeGuard creates a guard. With no phrases it uses the defaults.
// Phrases are lowercased so mixed-case entries match the normalized input.
func NewNegativeGuard(phrases ...string) *NegativeGuard {
	if len(phrases) == 0 {
		phrases = DefaultGuardPhrases()
	}
	lowered := make([]string, len(phrases))
	for i, p := range phrases {
		lowered[i] = strings.ToLower(p)
	}
	return &NegativeGuard{phrases: lowered}
}

// Guarded reports whether the message opens with a veto phrase.
func (g *NegativeGuard) Guarded(message string) bool {
	_, hit := g.Hit(message)
	return hit
}

// Hit returns the veto phrase the message starts with, if any.
func (g *NegativeGuard) Hit(message string) (string, bool) {
	text := strings.ToLower(strings.TrimSpace(message))
	for _, phrase := range g.phrases {
		if strings.HasPrefix(text, phrase) {
			return phrase, true
		}
	}
	return "", false
}

// Count returns the number of registered veto phrases.
func (g *NegativeGuard) Count() int {
	return len(g.phrases)
}
