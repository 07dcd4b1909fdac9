package intentsdk

import "go.uber.org/atomic"

// ──────────────────────────────────────────────
// Router Stats — lock-free routing counters
// ──────────────────────────────────────────────

// RouterStats counts routing outcomes. Safe for concurrent use.
type RouterStats struct {
	image       atomic.Int64
	video       atomic.Int64
	chat        atomic.Int64
	guardVetoes atomic.Int64
	ruleVetoes  atomic.Int64
}

// NewRouterStats creates a zeroed counter set.
func NewRouterStats() *RouterStats {
	return &RouterStats{}
}

// StatsSnapshot is a point-in-time copy of the counters.
type StatsSnapshot struct {
	Image       int64 `json:"image"`
	Video       int64 `json:"video"`
	Chat        int64 `json:"chat"`
	GuardVetoes int64 `json:"guard_vetoes"`
	RuleVetoes  int64 `json:"rule_vetoes"`
	Total       int64 `json:"total"`
}

func (s *RouterStats) record(decision IntentDecision) {
	switch decision.Type {
	case DecisionImage:
		s.image.Inc()
	case DecisionVideo:
		s.video.Inc()
	default:
		s.chat.Inc()
	}
}

func (s *RouterStats) recordGuardVeto() { s.guardVetoes.Inc() }
func (s *RouterStats) recordRuleVeto()  { s.ruleVetoes.Inc() }

// Snapshot returns the current counter values.
func (s *RouterStats) Snapshot() StatsSnapshot {
	img, vid, chat := s.image.Load(), s.video.Load(), s.chat.Load()
	return StatsSnapshot{
		Image:       img,
		Video:       vid,
		Chat:        chat,
		GuardVetoes: s.guardVetoes.Load(),
		RuleVetoes:  s.ruleVetoes.Load(),
		Total:       img + vid + chat,
	}
}
