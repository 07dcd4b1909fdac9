package intentsdk

import "strings"

// ──────────────────────────────────────────────
// Lexicon Tables — static trigger-phrase sets per signal category
// ──────────────────────────────────────────────

// MatchMode controls how a lexicon's phrases are compared against input.
type MatchMode int

const (
	// MatchSubstring matches a phrase anywhere in the text.
	MatchSubstring MatchMode = iota
	// MatchPrefix matches a phrase only at the start of the text.
	MatchPrefix
	// MatchToken matches a phrase against whole whitespace-split tokens.
	MatchToken
)

// Lexicon is a named category of lowercase trigger phrases sharing one
// weight. Weight is category-level: a category contributes its weight at
// most once per message, no matter how many of its phrases match.
type Lexicon struct {
	Name    string
	Mode    MatchMode
	Weight  float64
	Phrases []string

	// MaxWords gates the category on total message word count.
	// 0 means no gate. Used by the short-command token category.
	MaxWords int
}

// Matches reports whether any phrase in the lexicon hits the given text.
// text must already be lowercased and trimmed; tokens is text split on
// whitespace. Returns the matching phrase for signal reporting.
func (l Lexicon) Matches(text string, tokens []string) (string, bool) {
	if l.MaxWords > 0 && len(tokens) > l.MaxWords {
		return "", false
	}
	for _, phrase := range l.Phrases {
		switch l.Mode {
		case MatchPrefix:
			if strings.HasPrefix(text, phrase) {
				return phrase, true
			}
		case MatchToken:
			for _, tok := range tokens {
				if tok == phrase {
					return phrase, true
				}
			}
		default:
			if strings.Contains(text, phrase) {
				return phrase, true
			}
		}
	}
	return "", false
}

// DefaultImageLexicons returns the built-in signal categories for the
// image-intent classifier. Weights are tuned so that a single explicit
// trigger or a short command clears the 0.55 decision threshold on the
// normalized scale, while casual or stylistic phrasing alone does not.
func DefaultImageLexicons() []Lexicon {
	return []Lexicon{
		{
			Name:   "explicit",
			Mode:   MatchSubstring,
			Weight: 1.4,
			Phrases: []string{
				"create an image", "create a picture", "create a photo",
				"generate an image", "generate a picture", "generate a photo",
				"make an image", "make a picture", "make me an image",
				"draw me", "draw a", "draw an", "draw us",
				"picture of", "photo of", "image of", "painting of",
			},
		},
		{
			// Lower weight (0.7) — with the short-message bonus this
			// normalizes to 0.5, below threshold: needs a descriptor
			// clause or a second category to trigger.
			Name:   "casual",
			Mode:   MatchSubstring,
			Weight: 0.7,
			Phrases: []string{
				"show me", "let me see", "can i see", "i want to see",
				"what would it look like", "what does it look like",
			},
		},
		{
			Name:   "style",
			Mode:   MatchSubstring,
			Weight: 0.6,
			Phrases: []string{
				"concept art", "cinematic", "photorealistic", "digital art",
				"oil painting", "watercolor", "illustration", "anime style",
				"pixel art", "vaporwave", "4k", "8k", "ultra detailed",
			},
		},
		{
			Name:   "implicit",
			Mode:   MatchSubstring,
			Weight: 0.7,
			Phrases: []string{
				"imagine", "visualize", "picture this", "envision",
			},
		},
		{
			// Whole-token quick commands, only for very short messages.
			Name:     "command",
			Mode:     MatchToken,
			Weight:   1.2,
			MaxWords: 3,
			Phrases: []string{
				"pic", "img", "draw", "render", "sketch", "paint",
			},
		},
	}
}

// DefaultVideoKeywords returns the coarse vocabulary for the cinematic
// video pre-filter. Substring match anywhere, case-insensitive.
func DefaultVideoKeywords() []string {
	return []string{"video", "cinematic", "movie", "scene", "cutscene", "reel", "short"}
}
