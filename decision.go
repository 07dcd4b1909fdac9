package intentsdk

// ──────────────────────────────────────────────
// IntentDecision — the tagged routing decision
// ──────────────────────────────────────────────

// DecisionType discriminates routing decisions.
type DecisionType string

const (
	DecisionImage DecisionType = "image"
	DecisionVideo DecisionType = "video"
	DecisionChat  DecisionType = "chat"
	DecisionNone  DecisionType = "none"
)

// IntentDecision is the routing decision for one user message. Constructed
// fresh per message, never mutated, never persisted by the classifiers
// themselves.
type IntentDecision struct {
	Type          DecisionType `json:"type"`
	Confidence    float64      `json:"confidence,omitempty"`
	RefinedPrompt string       `json:"refined_prompt,omitempty"`
	Tool          string       `json:"tool,omitempty"`
}

// ImageDecision builds an image-generation decision.
func ImageDecision(confidence float64, refinedPrompt string) IntentDecision {
	return IntentDecision{
		Type:          DecisionImage,
		Confidence:    clamp01(confidence),
		RefinedPrompt: refinedPrompt,
	}
}

// VideoDecision builds a cinematic-video decision.
func VideoDecision() IntentDecision {
	return IntentDecision{Type: DecisionVideo, Tool: ToolGenerateVideo}
}

// ChatDecision builds a plain-chat decision. Chat confidence is the
// complement of the strongest rejected generation-intent score.
func ChatDecision(confidence float64) IntentDecision {
	return IntentDecision{Type: DecisionChat, Confidence: clamp01(confidence)}
}

// NoneDecision builds an empty decision.
func NoneDecision() IntentDecision {
	return IntentDecision{Type: DecisionNone}
}
