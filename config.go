package intentsdk

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/velora-labs/companion-intent-go/persona"
)

// ──────────────────────────────────────────────
// Config file — operator-tunable weights, vocabularies, personas
// ──────────────────────────────────────────────

// FileConfig is the on-disk TOML shape. Every field is optional; missing
// sections fall back to the built-in defaults. The [[persona]] array order
// is the documented detection tie-break order.
type FileConfig struct {
	Image    imageFileConfig   `toml:"image"`
	Guard    guardFileConfig   `toml:"guard"`
	Video    videoFileConfig   `toml:"video"`
	Personas []persona.Persona `toml:"persona"`
}

type imageFileConfig struct {
	Threshold          float64             `toml:"threshold"`
	MinLength          int                 `toml:"min_length"`
	CommandConfidence  float64             `toml:"command_confidence"`
	MaxRawScore        float64             `toml:"max_raw_score"`
	// Pointers so an explicit 0.0 in the file disables a bonus instead
	// of being read as "not set".
	ShortMessageBonus  *float64            `toml:"short_message_bonus"`
	ShortMessageMaxLen int                 `toml:"short_message_max_len"`
	ClauseBonus        *float64            `toml:"clause_bonus"`
	Lexicons           []lexiconFileConfig `toml:"lexicon"`
}

type lexiconFileConfig struct {
	Name     string   `toml:"name"`
	Mode     string   `toml:"mode"` // substring | prefix | token
	Weight   float64  `toml:"weight"`
	MaxWords int      `toml:"max_words"`
	Phrases  []string `toml:"phrases"`
}

type guardFileConfig struct {
	Phrases []string `toml:"phrases"`
}

type videoFileConfig struct {
	Keywords []string `toml:"keywords"`
}

// LoadConfigFile reads a TOML config and returns the router config plus
// the persona registry built from it. Sections left out of the file keep
// their defaults.
func LoadConfigFile(path string) (RouterConfig, *persona.Registry, error) {
	var fc FileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return RouterConfig{}, nil, fmt.Errorf("load config %s: %w", path, err)
	}
	cfg, err := fc.RouterConfig()
	if err != nil {
		return RouterConfig{}, nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, persona.NewRegistry(fc.Personas...), nil
}

// RouterConfig converts the file shape into a RouterConfig.
func (fc FileConfig) RouterConfig() (RouterConfig, error) {
	cfg := DefaultRouterConfig()

	img := &cfg.Image
	if fc.Image.Threshold > 0 {
		img.Threshold = fc.Image.Threshold
	}
	if fc.Image.MinLength > 0 {
		img.MinLength = fc.Image.MinLength
	}
	if fc.Image.CommandConfidence > 0 {
		img.CommandConfidence = fc.Image.CommandConfidence
	}
	if fc.Image.MaxRawScore > 0 {
		img.Scorer.MaxRawScore = fc.Image.MaxRawScore
	}
	if fc.Image.ShortMessageBonus != nil {
		img.Scorer.ShortMessageBonus = *fc.Image.ShortMessageBonus
	}
	if fc.Image.ShortMessageMaxLen > 0 {
		img.Scorer.ShortMessageMaxLen = fc.Image.ShortMessageMaxLen
	}
	if fc.Image.ClauseBonus != nil {
		img.Scorer.ClauseBonus = *fc.Image.ClauseBonus
	}
	if len(fc.Image.Lexicons) > 0 {
		lexicons := make([]Lexicon, 0, len(fc.Image.Lexicons))
		for _, lf := range fc.Image.Lexicons {
			mode, err := parseMatchMode(lf.Mode)
			if err != nil {
				return RouterConfig{}, fmt.Errorf("lexicon %q: %w", lf.Name, err)
			}
			lexicons = append(lexicons, Lexicon{
				Name:     lf.Name,
				Mode:     mode,
				Weight:   lf.Weight,
				MaxWords: lf.MaxWords,
				Phrases:  lf.Phrases,
			})
		}
		img.Scorer.Lexicons = lexicons
	}
	if len(fc.Guard.Phrases) > 0 {
		img.GuardPhrases = fc.Guard.Phrases
	}
	if len(fc.Video.Keywords) > 0 {
		cfg.VideoKeywords = fc.Video.Keywords
	}
	return cfg, nil
}

func parseMatchMode(mode string) (MatchMode, error) {
	switch mode {
	case "", "substring":
		return MatchSubstring, nil
	case "prefix":
		return MatchPrefix, nil
	case "token":
		return MatchToken, nil
	default:
		return MatchSubstring, fmt.Errorf("unknown match mode %q", mode)
	}
}
