package persona

import "strings"

// Registry holds personas in a fixed, deterministic declaration order.
// Storage is a slice on purpose: detection is first-match-wins, so the
// tie-break between domains is the declaration order and an unordered map
// would make it nondeterministic.
type Registry struct {
	personas []Persona
	fallback Persona
}

// NewRegistry builds a registry from an ordered persona list. Any persona
// with an empty keyword set is treated as the fallback and skipped during
// scanning; when none is supplied, DefaultFallback is used. With no
// personas at all, the built-in set is installed. Keywords are lowercased
// so mixed-case entries match the normalized message.
func NewRegistry(personas ...Persona) *Registry {
	if len(personas) == 0 {
		personas = DefaultPersonas()
	}
	r := &Registry{fallback: DefaultFallback()}
	for _, p := range personas {
		if p.IsDefault() {
			r.fallback = p
			continue
		}
		kws := make([]string, len(p.Keywords))
		for i, kw := range p.Keywords {
			kws[i] = strings.ToLower(kw)
		}
		p.Keywords = kws
		r.personas = append(r.personas, p)
	}
	return r
}

// DefaultRegistry returns the registry with the built-in personas.
func DefaultRegistry() *Registry {
	return NewRegistry()
}

// Detect selects the persona for a message: ordered linear scan, first
// keyword hit wins, fallback when nothing matches. Detection runs fresh
// per message; it is not sticky across a conversation.
func (r *Registry) Detect(message string) Persona {
	lower := strings.ToLower(message)
	for _, p := range r.personas {
		for _, kw := range p.Keywords {
			if strings.Contains(lower, kw) {
				return p
			}
		}
	}
	return r.fallback
}

// Get returns a persona by ID, including the fallback.
func (r *Registry) Get(id string) (Persona, bool) {
	if id == r.fallback.ID {
		return r.fallback, true
	}
	for _, p := range r.personas {
		if p.ID == id {
			return p, true
		}
	}
	return Persona{}, false
}

// Fallback returns the default persona.
func (r *Registry) Fallback() Persona {
	return r.fallback
}

// List returns the scan-ordered personas followed by the fallback.
func (r *Registry) List() []Persona {
	out := make([]Persona, 0, len(r.personas)+1)
	out = append(out, r.personas...)
	out = append(out, r.fallback)
	return out
}

// Len returns the number of keyword-matched personas, excluding the
// fallback.
func (r *Registry) Len() int {
	return len(r.personas)
}
