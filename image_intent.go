package intentsdk

import (
	"strings"
	"unicode/utf8"
)

// ──────────────────────────────────────────────
// Image-Intent Classifier — guard → length → command prefix → scoring
// ──────────────────────────────────────────────

// ImageClassification is the decision for one message. The classifier is
// total: every string input yields a well-formed value, never an error.
type ImageClassification struct {
	IsImage       bool     `json:"is_image"`
	Confidence    float64  `json:"confidence"`
	RefinedPrompt string   `json:"refined_prompt"`
	Guarded       bool     `json:"guarded,omitempty"`
	Signals       []Signal `json:"signals,omitempty"`
}

// ImageClassifierConfig tunes the classifier. Zero values use defaults.
type ImageClassifierConfig struct {
	// Threshold on the normalized [0,1] confidence scale.
	Threshold float64
	// MinLength is the minimum trimmed rune count to consider at all.
	MinLength int
	// CommandConfidence is assigned when an explicit routing prefix
	// ("/image", "img:", ...) is present.
	CommandConfidence float64

	GuardPhrases []string
	Scorer       ScorerConfig
}

// DefaultImageClassifierConfig returns the consolidated production tuning.
func DefaultImageClassifierConfig() ImageClassifierConfig {
	return ImageClassifierConfig{
		Threshold:         0.55,
		MinLength:         3,
		CommandConfidence: 0.95,
		GuardPhrases:      DefaultGuardPhrases(),
		Scorer:            DefaultScorerConfig(),
	}
}

// commandPrefixes are routing-syntax markers, longest first so "/imagine"
// wins over "/image" and "/img".
var commandPrefixes = []string{"/imagine", "/image", "/img", "image:", "img:"}

// ImageIntentClassifier decides whether a chat message is requesting image
// generation. False negatives are the preferred failure mode: misrouting a
// plain chat turn into a paid generation call is the costlier error.
type ImageIntentClassifier struct {
	cfg    ImageClassifierConfig
	guard  *NegativeGuard
	scorer *SignalScorer
}

// NewImageIntentClassifier creates a classifier with the given config.
func NewImageIntentClassifier(cfg ImageClassifierConfig) *ImageIntentClassifier {
	def := DefaultImageClassifierConfig()
	if cfg.Threshold == 0 {
		cfg.Threshold = def.Threshold
	}
	if cfg.MinLength == 0 {
		cfg.MinLength = def.MinLength
	}
	if cfg.CommandConfidence == 0 {
		cfg.CommandConfidence = def.CommandConfidence
	}
	return &ImageIntentClassifier{
		cfg:    cfg,
		guard:  NewNegativeGuard(cfg.GuardPhrases...),
		scorer: NewSignalScorer(cfg.Scorer),
	}
}

// Classify decides image intent for one message.
func (c *ImageIntentClassifier) Classify(message string) ImageClassification {
	trimmed := strings.TrimSpace(message)
	lower := strings.ToLower(trimmed)

	// Explanatory phrasing is a hard veto, applied before scoring.
	if c.guard.Guarded(lower) {
		return ImageClassification{Guarded: true, RefinedPrompt: trimmed}
	}

	if utf8.RuneCountInString(trimmed) < c.cfg.MinLength {
		return ImageClassification{RefinedPrompt: trimmed}
	}

	// Explicit routing syntax short-circuits scoring.
	for _, prefix := range commandPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return ImageClassification{
				IsImage:       true,
				Confidence:    c.cfg.CommandConfidence,
				RefinedPrompt: RefinePrompt(trimmed),
			}
		}
	}

	score := c.scorer.Score(lower)
	return ImageClassification{
		IsImage:       score.Confidence >= c.cfg.Threshold,
		Confidence:    score.Confidence,
		RefinedPrompt: trimmed,
		Signals:       score.Signals,
	}
}

// RefinePrompt strips routing syntax (slash commands, "image:" prefixes)
// from a message so only the actual prompt is forwarded to a generation
// provider. The raw message is never sent with routing markers attached.
func RefinePrompt(message string) string {
	trimmed := strings.TrimSpace(message)
	lower := strings.ToLower(trimmed)
	for _, prefix := range commandPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return strings.TrimSpace(trimmed[len(prefix):])
		}
	}
	return trimmed
}
