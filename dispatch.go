package intentsdk

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/velora-labs/companion-intent-go/persona"
	"github.com/velora-labs/companion-intent-go/store"
)

// ──────────────────────────────────────────────
// Dispatcher — routes a message and invokes the matching collaborator
// ──────────────────────────────────────────────

// ChatModel is the conversational collaborator. The system prompt comes
// from persona detection.
type ChatModel interface {
	Reply(ctx context.Context, systemPrompt, message string) (string, error)
}

// ImageGenerator is the image-generation collaborator. It receives the
// refined prompt, never the raw message with routing syntax attached.
type ImageGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// VideoGenerator is the video-generation collaborator.
type VideoGenerator interface {
	Generate(ctx context.Context, prompt, tool string) (string, error)
}

// ProviderError reports a downstream collaborator failure. A provider
// failure after a correct classification is a provider fault, not a
// misclassification, and is surfaced as this type.
type ProviderError struct {
	Provider  string
	Code      string
	Message   string
	Retryable bool
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s provider: %s — %s", e.Provider, e.Code, e.Message)
}

// TurnResult is the outcome of one handled message.
type TurnResult struct {
	Decision IntentDecision  `json:"decision"`
	Persona  persona.Persona `json:"persona"`
	Output   string          `json:"output"`
}

// DispatcherConfig wires a Dispatcher. Router and Personas default when
// nil; collaborators and the decision log are optional.
type DispatcherConfig struct {
	Router   *IntentRouter
	Personas *persona.Registry

	Chat  ChatModel
	Image ImageGenerator
	Video VideoGenerator

	Log    store.DecisionLog
	Tracer *Tracer
}

// Dispatcher is the caller-side glue around the router: classify, pick a
// persona, call the matching collaborator, record the decision.
type Dispatcher struct {
	router   *IntentRouter
	personas *persona.Registry
	chat     ChatModel
	image    ImageGenerator
	video    VideoGenerator
	dlog     store.DecisionLog
	tracer   *Tracer
}

// NewDispatcher creates a dispatcher.
func NewDispatcher(cfg DispatcherConfig) *Dispatcher {
	if cfg.Router == nil {
		cfg.Router = NewIntentRouter(DefaultRouterConfig())
	}
	if cfg.Personas == nil {
		cfg.Personas = persona.DefaultRegistry()
	}
	return &Dispatcher{
		router:   cfg.Router,
		personas: cfg.Personas,
		chat:     cfg.Chat,
		image:    cfg.Image,
		video:    cfg.Video,
		dlog:     cfg.Log,
		tracer:   cfg.Tracer,
	}
}

// HandleMessage routes one message and invokes the matching collaborator.
// Classification always completes before any provider call is issued, and
// its result stands even when the provider later fails.
func (d *Dispatcher) HandleMessage(ctx context.Context, sessionID, message string) (*TurnResult, error) {
	decision := d.router.Route(message)

	// Persona detection always runs: even generation requests get a
	// chat-style acknowledgment flow around them.
	p := d.personas.Detect(message)

	d.record(ctx, sessionID, decision, p)

	result := &TurnResult{Decision: decision, Persona: p}
	var err error
	switch decision.Type {
	case DecisionImage:
		result.Output, err = d.generateImage(ctx, decision.RefinedPrompt)
	case DecisionVideo:
		result.Output, err = d.generateVideo(ctx, message, decision.Tool)
	default:
		result.Output, err = d.reply(ctx, p.SystemPrompt, message)
	}
	if err != nil {
		return result, err
	}
	return result, nil
}

func (d *Dispatcher) reply(ctx context.Context, systemPrompt, message string) (string, error) {
	if d.chat == nil {
		return "", notConfigured("chat")
	}
	out, err := d.chat.Reply(ctx, systemPrompt, message)
	if err != nil {
		return "", d.wrapProviderErr("chat", err)
	}
	return out, nil
}

func (d *Dispatcher) generateImage(ctx context.Context, prompt string) (string, error) {
	if d.image == nil {
		return "", notConfigured("image")
	}
	span := d.startProviderSpan("image_generate")
	out, err := d.image.Generate(ctx, prompt)
	d.endProviderSpan(span, err)
	if err != nil {
		return "", d.wrapProviderErr("image", err)
	}
	return out, nil
}

func (d *Dispatcher) generateVideo(ctx context.Context, message, tool string) (string, error) {
	if d.video == nil {
		return "", notConfigured("video")
	}
	span := d.startProviderSpan("video_generate")
	out, err := d.video.Generate(ctx, RefinePrompt(message), tool)
	d.endProviderSpan(span, err)
	if err != nil {
		return "", d.wrapProviderErr("video", err)
	}
	return out, nil
}

func (d *Dispatcher) record(ctx context.Context, sessionID string, decision IntentDecision, p persona.Persona) {
	if d.dlog == nil {
		return
	}
	rec := store.Record{
		Type:          string(decision.Type),
		Confidence:    decision.Confidence,
		RefinedPrompt: decision.RefinedPrompt,
		Tool:          decision.Tool,
		PersonaID:     p.ID,
		CreatedAt:     time.Now().UTC(),
	}
	// Persistence failures must not break the turn.
	if err := d.dlog.Append(ctx, sessionID, rec); err != nil {
		log.Printf("[intent] decision log append failed: %v", err)
	}
}

func (d *Dispatcher) startProviderSpan(name string) *RouteSpan {
	if d.tracer == nil {
		return nil
	}
	return d.tracer.StartSpan(name, SpanKindProvider)
}

func (d *Dispatcher) endProviderSpan(span *RouteSpan, err error) {
	if d.tracer == nil || span == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
		span.SetAttribute("error", err.Error())
	}
	d.tracer.EndSpan(span, status)
}

func (d *Dispatcher) wrapProviderErr(provider string, err error) error {
	if pe, ok := err.(*ProviderError); ok {
		return pe
	}
	return &ProviderError{
		Provider: provider,
		Code:     "provider_error",
		Message:  err.Error(),
	}
}

func notConfigured(provider string) error {
	return &ProviderError{
		Provider: provider,
		Code:     "not_configured",
		Message:  "no " + provider + " collaborator configured",
	}
}
