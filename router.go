package intentsdk

import "log"

// ──────────────────────────────────────────────
// Intent Router — arbitration over the classifiers
// ──────────────────────────────────────────────

// RouterConfig wires an IntentRouter. Zero values take defaults; Rules,
// Stats, and Tracer are optional.
type RouterConfig struct {
	Image         ImageClassifierConfig
	VideoKeywords []string

	Rules  *RuleEngine
	Stats  *RouterStats
	Tracer *Tracer
}

// DefaultRouterConfig returns the production defaults with no optional
// extensions attached.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		Image: DefaultImageClassifierConfig(),
	}
}

// IntentRouter turns one user message into an IntentDecision. Image intent
// is checked first and short-circuits; video is a cheap fallback test;
// everything else is chat, with chat confidence defined as the complement
// of the rejected image confidence.
//
// Routing is total: Route never fails, whatever the input string.
type IntentRouter struct {
	image  *ImageIntentClassifier
	video  *VideoIntentDetector
	rules  *RuleEngine
	stats  *RouterStats
	tracer *Tracer
}

// NewIntentRouter creates a router from config.
func NewIntentRouter(cfg RouterConfig) *IntentRouter {
	return &IntentRouter{
		image:  NewImageIntentClassifier(cfg.Image),
		video:  NewVideoIntentDetector(cfg.VideoKeywords...),
		rules:  cfg.Rules,
		stats:  cfg.Stats,
		tracer: cfg.Tracer,
	}
}

// Route decides how one message should be handled.
func (r *IntentRouter) Route(message string) IntentDecision {
	var span *RouteSpan
	if r.tracer != nil {
		span = r.tracer.StartSpan("route_message", SpanKindRoute)
	}

	decision := r.route(message)

	if r.stats != nil {
		r.stats.record(decision)
	}
	if r.tracer != nil {
		span.SetAttribute("decision", string(decision.Type))
		span.SetAttribute("confidence", decision.Confidence)
		r.tracer.EndSpan(span, "ok")
	}
	return decision
}

func (r *IntentRouter) route(message string) IntentDecision {
	// Operator rules run before the built-in classifiers. Rule errors
	// must never break routing; a broken script is logged and skipped.
	if r.rules != nil && r.rules.Count() > 0 {
		verdict, err := r.rules.Evaluate(message)
		if err != nil {
			log.Printf("[intent] rule evaluation failed: %v", err)
		} else if verdict != nil {
			if d, ok := r.applyVerdict(verdict, message); ok {
				return d
			}
		}
	}

	img := r.image.Classify(message)
	if img.Guarded && r.stats != nil {
		r.stats.recordGuardVeto()
	}
	if img.IsImage {
		return ImageDecision(img.Confidence, img.RefinedPrompt)
	}

	if v := r.video.Detect(message); v.Type == VideoIntentCinematic {
		return VideoDecision()
	}

	// Chat-ness is the complement of how strongly image intent scored.
	return ChatDecision(1 - img.Confidence)
}

func (r *IntentRouter) applyVerdict(verdict *RuleVerdict, message string) (IntentDecision, bool) {
	switch verdict.Action {
	case RuleActionVetoGeneration:
		if r.stats != nil {
			r.stats.recordRuleVeto()
		}
		return ChatDecision(1), true
	case RuleActionForceImage:
		return ImageDecision(DefaultImageClassifierConfig().CommandConfidence, RefinePrompt(message)), true
	case RuleActionForceVideo:
		return VideoDecision(), true
	case RuleActionForceChat:
		return ChatDecision(1), true
	}
	// Unknown action: ignore the verdict and route normally.
	log.Printf("[intent] rule %q returned unknown action %q", verdict.Rule, verdict.Action)
	return IntentDecision{}, false
}
