package advisor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/goccy/go-json"

	"github.com/gabrielc1317/mdc-pathfinder/internal/catalog"
	"github.com/gabrielc1317/mdc-pathfinder/internal/llm"
	"github.com/gabrielc1317/mdc-pathfinder/internal/recommend"
)

// MaxTurns bounds the tool-calling exchange. The loop never runs more model
// turns than this regardless of what the model asks for.
const MaxTurns = 6

// DefaultTimeout bounds one full advising exchange end to end.
const DefaultTimeout = 45 * time.Second

// Origin values recorded in the response debug block.
const (
	OriginAI       = "ai"
	OriginFallback = "fallback"
)

// State names the phases of one advising exchange. States only appear in
// logs; callers see the origin tag on the response.
type State string

const (
	StateSessionStarted State = "SESSION_STARTED"
	StateAwaitingTurn   State = "AWAITING_TURN"
	StateToolDispatch   State = "TOOL_DISPATCH"
	StateFinalText      State = "FINAL_TEXT"
	StateValidated      State = "VALIDATED"
	StateRejected       State = "REJECTED"
	StateFallback       State = "FALLBACK"
)

// Options configures the orchestrator. Zero values fall back to defaults.
type Options struct {
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

// Orchestrator runs the AI-assisted advising path. It drives a bounded
// tool-calling exchange with the model, validates every recommendation in the
// final answer against the catalog, and falls back to the deterministic
// recommender whenever anything goes wrong. The caller always gets a usable
// response; the AI path can only improve on the fallback, never replace it
// with garbage.
type Orchestrator struct {
	provider   llm.Provider
	dispatcher *Dispatcher
	fallback   *recommend.Recommender
	store      *catalog.Store
	logger     *slog.Logger
	opts       Options
}

// NewOrchestrator creates an orchestrator. A nil provider is legal and routes
// every request straight to the deterministic path.
func NewOrchestrator(provider llm.Provider, store *catalog.Store, opts Options, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	return &Orchestrator{
		provider:   provider,
		dispatcher: NewDispatcher(store, logger),
		fallback:   recommend.NewRecommender(store, logger),
		store:      store,
		logger:     logger,
		opts:       opts,
	}
}

// aiAnswer is the JSON shape the model is instructed to emit.
type aiAnswer struct {
	Recommendations    []recommend.Recommendation `json:"recommendations"`
	AdvisingDisclaimer string                     `json:"advising_disclaimer"`
}

// Recommend runs one advising exchange for the request. On any failure of the
// AI path the deterministic recommender answers instead, tagged with the
// fallback origin.
func (o *Orchestrator) Recommend(ctx context.Context, req recommend.Request) recommend.Response {
	if o.provider == nil {
		o.logger.Info("no model provider configured", "state", StateFallback)
		return o.fallbackResponse(req)
	}

	ctx, cancel := context.WithTimeout(ctx, o.opts.Timeout)
	defer cancel()

	o.logger.Debug("advising session started", "state", StateSessionStarted, "goal_id", req.GoalID)

	final, ok := o.runExchange(ctx, req)
	if !ok {
		return o.fallbackResponse(req)
	}

	answer, err := llm.ExtractJSONAs[aiAnswer](final)
	if err != nil {
		o.logger.Warn("final answer is not parseable JSON", "state", StateRejected, "error", err)
		return o.fallbackResponse(req)
	}

	recs := o.validateRecommendations(answer.Recommendations)
	if len(recs) == 0 {
		o.logger.Warn("no recommendation survived catalog validation", "state", StateRejected)
		return o.fallbackResponse(req)
	}
	if len(recs) > recommend.MaxRecommendations {
		recs = recs[:recommend.MaxRecommendations]
	}

	disclaimer := answer.AdvisingDisclaimer
	if disclaimer == "" {
		disclaimer = recommend.DefaultDisclaimer
	}

	o.logger.Debug("advising session validated", "state", StateValidated, "recommendations", len(recs))

	return recommend.Response{
		Recommendations:    recs,
		AdvisingDisclaimer: disclaimer,
		Debug:              &recommend.DebugInfo{Origin: OriginAI},
	}
}

// runExchange drives the tool-calling loop until the model produces final
// text, the turn budget runs out, or a turn fails. The unknown-tool case ends
// the loop and proceeds with whatever text the model already produced.
func (o *Orchestrator) runExchange(ctx context.Context, req recommend.Request) (string, bool) {
	payload, err := json.Marshal(req)
	if err != nil {
		o.logger.Error("failed to encode request payload", "error", err)
		return "", false
	}

	messages := []llm.Message{
		llm.NewSystemMessage(systemPrompt),
		llm.NewUserMessage(fmt.Sprintf(userPromptFmt, string(payload))),
	}
	tools := o.dispatcher.ToolDefs()

	for turn := 1; turn <= MaxTurns; turn++ {
		o.logger.Debug("awaiting model turn", "state", StateAwaitingTurn, "turn", turn)

		resp, err := o.provider.CompleteWithTools(ctx, llm.CompletionRequest{
			Model:       o.opts.Model,
			Messages:    messages,
			Temperature: o.opts.Temperature,
			MaxTokens:   o.opts.MaxTokens,
		}, tools)
		if err != nil {
			o.logger.Warn("model turn failed", "state", StateFallback, "turn", turn, "error", err)
			return "", false
		}

		if !resp.HasToolCalls() {
			o.logger.Debug("model produced final text", "state", StateFinalText, "turn", turn)
			return resp.Message.Content, true
		}

		messages = append(messages, resp.Message)
		for _, call := range resp.Message.ToolCalls {
			o.logger.Debug("dispatching tool call", "state", StateToolDispatch, "tool", call.Name, "turn", turn)

			result, err := o.dispatcher.Dispatch(call)
			if err != nil {
				o.logger.Warn("exchange ended on unknown tool", "state", StateFinalText, "tool", call.Name)
				return resp.Message.Content, true
			}
			messages = append(messages, llm.NewToolResultMessage(result.ToolCallID, result.Content))
		}
	}

	o.logger.Warn("model exchange exceeded turn budget", "state", StateFallback, "max_turns", MaxTurns)
	return "", false
}

// validateRecommendations keeps only recommendations whose program id names a
// valid catalog program. Bad entries are dropped, never repaired.
func (o *Orchestrator) validateRecommendations(recs []recommend.Recommendation) []recommend.Recommendation {
	kept := make([]recommend.Recommendation, 0, len(recs))
	for _, rec := range recs {
		if _, ok := o.store.ValidProgramByID(rec.Program.ID); !ok {
			o.logger.Warn("dropping recommendation for unknown program", "program_id", rec.Program.ID)
			continue
		}
		kept = append(kept, rec)
	}
	return kept
}

func (o *Orchestrator) fallbackResponse(req recommend.Request) recommend.Response {
	resp := o.fallback.Recommend(req)
	resp.Debug = &recommend.DebugInfo{Origin: OriginFallback}
	return resp
}
