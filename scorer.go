package intentsdk

import (
	"strings"
	"unicode/utf8"
)

// ──────────────────────────────────────────────
// Signal Scorer — weighted per-category scoring with structural bonuses
// ──────────────────────────────────────────────

// Signal records a single scoring contribution, for tracing and tuning.
type Signal struct {
	Category string  `json:"category"`
	Phrase   string  `json:"phrase,omitempty"`
	Weight   float64 `json:"weight"`
}

// ScoreResult is the output of one scoring pass.
type ScoreResult struct {
	Raw        float64  `json:"raw"`
	Confidence float64  `json:"confidence"` // Raw normalized to [0,1]
	Signals    []Signal `json:"signals,omitempty"`
}

// ScorerConfig tunes a SignalScorer. Missing lexicons, word gate, and
// ceiling fall back to defaults; the bonuses are taken as-is, so zero
// disables a structural bonus.
type ScorerConfig struct {
	Lexicons []Lexicon

	// ShortMessageBonus is added when the message has at most
	// ShortMessageMaxLen runes. Image prompts tend to be short.
	ShortMessageBonus  float64
	ShortMessageMaxLen int

	// ClauseBonus is added when the message contains a comma, modeling
	// the comma-delimited descriptor lists typical of image prompts.
	ClauseBonus float64

	// MaxRawScore is the normalization ceiling: confidence = raw/max,
	// clamped to 1.
	MaxRawScore float64
}

// DefaultScorerConfig returns the consolidated image-intent scale.
func DefaultScorerConfig() ScorerConfig {
	return ScorerConfig{
		Lexicons:           DefaultImageLexicons(),
		ShortMessageBonus:  0.3,
		ShortMessageMaxLen: 80,
		ClauseBonus:        0.2,
		MaxRawScore:        2.0,
	}
}

// SignalScorer accumulates category weights over a message. Each category
// counts at most once so a category with many synonyms cannot dominate one
// with few but strong ones.
type SignalScorer struct {
	cfg ScorerConfig
}

// NewSignalScorer creates a scorer.
func NewSignalScorer(cfg ScorerConfig) *SignalScorer {
	def := DefaultScorerConfig()
	if cfg.Lexicons == nil {
		cfg.Lexicons = def.Lexicons
	}
	if cfg.ShortMessageMaxLen == 0 {
		cfg.ShortMessageMaxLen = def.ShortMessageMaxLen
	}
	if cfg.MaxRawScore == 0 {
		cfg.MaxRawScore = def.MaxRawScore
	}
	// Phrases are compared against lowercased input; normalize them so
	// operator-supplied mixed-case entries still match.
	cfg.Lexicons = lowercaseLexicons(cfg.Lexicons)
	return &SignalScorer{cfg: cfg}
}

func lowercaseLexicons(lexicons []Lexicon) []Lexicon {
	out := make([]Lexicon, len(lexicons))
	for i, lex := range lexicons {
		phrases := make([]string, len(lex.Phrases))
		for j, p := range lex.Phrases {
			phrases[j] = strings.ToLower(p)
		}
		lex.Phrases = phrases
		out[i] = lex
	}
	return out
}

// Score computes the weighted signal score for a message. The input is
// lowercased and trimmed internally, so callers may pass raw user text.
func (s *SignalScorer) Score(message string) ScoreResult {
	text := strings.ToLower(strings.TrimSpace(message))
	if text == "" {
		return ScoreResult{}
	}
	tokens := strings.Fields(text)

	var result ScoreResult
	for _, lex := range s.cfg.Lexicons {
		// One hit per category, not per phrase.
		if phrase, ok := lex.Matches(text, tokens); ok {
			result.Raw += lex.Weight
			result.Signals = append(result.Signals, Signal{
				Category: lex.Name,
				Phrase:   phrase,
				Weight:   lex.Weight,
			})
		}
	}

	// Structural bonuses, outside the lexicon loop. A zero bonus is
	// disabled and leaves no signal.
	if s.cfg.ShortMessageBonus > 0 && utf8.RuneCountInString(text) <= s.cfg.ShortMessageMaxLen {
		result.Raw += s.cfg.ShortMessageBonus
		result.Signals = append(result.Signals, Signal{
			Category: "short_message",
			Weight:   s.cfg.ShortMessageBonus,
		})
	}
	if s.cfg.ClauseBonus > 0 && strings.Contains(text, ",") {
		result.Raw += s.cfg.ClauseBonus
		result.Signals = append(result.Signals, Signal{
			Category: "descriptive_clauses",
			Weight:   s.cfg.ClauseBonus,
		})
	}

	result.Confidence = clamp01(result.Raw / s.cfg.MaxRawScore)
	return result
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
