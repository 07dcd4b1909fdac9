package intentsdk

import (
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"
)

// ──────────────────────────────────────────────
// Rule Engine — operator-supplied Lua routing hooks
// ──────────────────────────────────────────────

// Rule actions. An empty string or "allow" lets routing proceed normally.
const (
	RuleActionAllow          = "allow"
	RuleActionVetoGeneration = "veto_generation"
	RuleActionForceImage     = "force_image"
	RuleActionForceVideo     = "force_video"
	RuleActionForceChat      = "force_chat"
)

// RuleVerdict is the outcome of evaluating the rule chain.
type RuleVerdict struct {
	Rule   string `json:"rule"`
	Action string `json:"action"`
	Reason string `json:"reason,omitempty"`
}

type luaRule struct {
	name   string
	script string
}

// RuleEngine evaluates named Lua scripts against each message before the
// built-in classifiers run. Each script must define:
//
//	function check(message)
//	    return action, reason
//	end
//
// where action is one of the RuleAction constants. Rules run in
// registration order; the first non-allow verdict wins. A fresh Lua state
// is created per evaluation, so the engine is safe for concurrent use.
type RuleEngine struct {
	mu    sync.RWMutex
	rules []luaRule
}

// NewRuleEngine creates an empty rule engine.
func NewRuleEngine() *RuleEngine {
	return &RuleEngine{}
}

// AddRule compiles and registers a rule. The script must define a global
// check function.
func (e *RuleEngine) AddRule(name, script string) error {
	L := lua.NewState()
	defer L.Close()
	if err := L.DoString(script); err != nil {
		return fmt.Errorf("rule %q: %w", name, err)
	}
	if _, ok := L.GetGlobal("check").(*lua.LFunction); !ok {
		return fmt.Errorf("rule %q: script does not define check(message)", name)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.rules = append(e.rules, luaRule{name: name, script: script})
	return nil
}

// Count returns the number of registered rules.
func (e *RuleEngine) Count() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.rules)
}

// Evaluate runs the rule chain. Returns nil when every rule allows.
func (e *RuleEngine) Evaluate(message string) (*RuleVerdict, error) {
	e.mu.RLock()
	rules := make([]luaRule, len(e.rules))
	copy(rules, e.rules)
	e.mu.RUnlock()

	for _, rule := range rules {
		verdict, err := evalRule(rule, message)
		if err != nil {
			return nil, err
		}
		if verdict != nil {
			return verdict, nil
		}
	}
	return nil, nil
}

func evalRule(rule luaRule, message string) (*RuleVerdict, error) {
	L := lua.NewState()
	defer L.Close()

	if err := L.DoString(rule.script); err != nil {
		return nil, fmt.Errorf("rule %q: %w", rule.name, err)
	}
	fn, ok := L.GetGlobal("check").(*lua.LFunction)
	if !ok {
		return nil, fmt.Errorf("rule %q: script does not define check(message)", rule.name)
	}
	if err := L.CallByParam(lua.P{
		Fn:      fn,
		NRet:    2,
		Protect: true,
	}, lua.LString(message)); err != nil {
		return nil, fmt.Errorf("rule %q: %w", rule.name, err)
	}

	reason := lua.LVAsString(L.Get(-1))
	action := lua.LVAsString(L.Get(-2))
	L.Pop(2)

	if action == "" || action == RuleActionAllow {
		return nil, nil
	}
	return &RuleVerdict{Rule: rule.name, Action: action, Reason: reason}, nil
}
