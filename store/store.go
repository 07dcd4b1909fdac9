// Package store persists routing decisions per chat session. It is the
// Go-side analog of the product's row-persistence collaborator: simple
// insert/select semantics, no query language.
package store

import (
	"context"
	"sync"
	"time"
)

// Record is one persisted routing decision.
type Record struct {
	Type          string    `json:"type"`
	Confidence    float64   `json:"confidence,omitempty"`
	RefinedPrompt string    `json:"refined_prompt,omitempty"`
	Tool          string    `json:"tool,omitempty"`
	PersonaID     string    `json:"persona_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// DecisionLog is the pluggable persistence backend. Implementations must
// keep per-session insertion order.
type DecisionLog interface {
	// Append stores one record at the end of the session's log.
	Append(ctx context.Context, sessionID string, rec Record) error

	// Recent returns up to limit records from the end of the log, in
	// chronological order. limit <= 0 means all.
	Recent(ctx context.Context, sessionID string, limit int) ([]Record, error)

	// Clear removes the session's log.
	Clear(ctx context.Context, sessionID string) error
}

// InMemoryDecisionLog is a thread-safe in-memory DecisionLog for
// development and tests. Data is lost on restart.
type InMemoryDecisionLog struct {
	mu       sync.RWMutex
	sessions map[string][]Record
	maxLen   int
}

// NewInMemoryDecisionLog creates an in-memory log keeping at most maxLen
// records per session (0 = unbounded).
func NewInMemoryDecisionLog(maxLen int) *InMemoryDecisionLog {
	return &InMemoryDecisionLog{
		sessions: make(map[string][]Record),
		maxLen:   maxLen,
	}
}

func (l *InMemoryDecisionLog) Append(_ context.Context, sessionID string, rec Record) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	recs := append(l.sessions[sessionID], rec)
	if l.maxLen > 0 && len(recs) > l.maxLen {
		recs = recs[len(recs)-l.maxLen:]
	}
	l.sessions[sessionID] = recs
	return nil
}

func (l *InMemoryDecisionLog) Recent(_ context.Context, sessionID string, limit int) ([]Record, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	recs := l.sessions[sessionID]
	if limit > 0 && len(recs) > limit {
		recs = recs[len(recs)-limit:]
	}
	out := make([]Record, len(recs))
	copy(out, recs)
	return out, nil
}

func (l *InMemoryDecisionLog) Clear(_ context.Context, sessionID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.sessions, sessionID)
	return nil
}
