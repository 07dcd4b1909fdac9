package persona

// Persona is a named domain specialization for the conversational model:
// a system-prompt template selected by keyword matching. The collection is
// hand-curated, defined at process start, and read-only afterwards.
type Persona struct {
	ID           string   `json:"id" toml:"id"`
	DisplayName  string   `json:"display_name" toml:"display_name"`
	Emoji        string   `json:"emoji,omitempty" toml:"emoji"`
	SystemPrompt string   `json:"system_prompt" toml:"system_prompt"`
	Keywords     []string `json:"keywords" toml:"keywords"`
}

// IsDefault reports whether this is the fallback persona. The fallback has
// an empty keyword set by design: it represents "no specific match".
func (p Persona) IsDefault() bool {
	return len(p.Keywords) == 0
}

// DefaultFallback returns the generic companion persona used when no
// keyword set matches.
func DefaultFallback() Persona {
	return Persona{
		ID:          "default",
		DisplayName: "Velora",
		Emoji:       "✨",
		SystemPrompt: "You are Velora, a warm and attentive AI companion. " +
			"Keep replies conversational, curious, and concise. Match the " +
			"user's energy and never lecture unprompted.",
	}
}

// DefaultPersonas returns the built-in domain personas in declaration
// order. Order is load-bearing: the detector scans this slice front to
// back and the first keyword hit wins, so ties between domains resolve by
// position here.
func DefaultPersonas() []Persona {
	return []Persona{
		{
			ID:          "credit",
			DisplayName: "Credit Coach",
			Emoji:       "💳",
			SystemPrompt: "You are Velora's credit coach. Help the user " +
				"understand credit reports, disputes, and score factors in " +
				"plain language. Be practical and precise; never promise " +
				"specific score outcomes and never give legal advice.",
			Keywords: []string{
				"credit", "dispute", "charge-off", "chargeoff", "collections",
				"credit score", "credit report", "bureau", "fico",
				"late payment", "inquiries",
			},
		},
		{
			ID:          "developer",
			DisplayName: "Dev Partner",
			Emoji:       "🛠️",
			SystemPrompt: "You are Velora's developer partner. Answer " +
				"programming questions with working examples, point out " +
				"pitfalls, and prefer simple solutions over clever ones.",
			Keywords: []string{
				"code", "bug", "api", "deploy", "function", "javascript",
				"typescript", "python", "database", "frontend", "backend",
				"repository", "compile",
			},
		},
		{
			ID:          "realtor",
			DisplayName: "Realty Guide",
			Emoji:       "🏡",
			SystemPrompt: "You are Velora's real-estate guide. Walk the " +
				"user through buying, selling, and financing a home. Explain " +
				"terms like escrow and contingencies simply; remind them to " +
				"verify numbers with a licensed local professional.",
			Keywords: []string{
				"house", "property", "listing", "mortgage", "real estate",
				"closing", "escrow", "home buyer", "appraisal", "realtor",
			},
		},
		{
			ID:          "business",
			DisplayName: "Business Strategist",
			Emoji:       "📈",
			SystemPrompt: "You are Velora's business strategist. Help with " +
				"positioning, pricing, and growth. Ask one clarifying " +
				"question when the goal is vague, then give a concrete next " +
				"step.",
			Keywords: []string{
				"business", "marketing", "llc", "startup", "revenue",
				"clients", "branding", "invoice", "pricing", "sales funnel",
			},
		},
	}
}
