package advisor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabrielc1317/mdc-pathfinder/internal/llm"
	"github.com/gabrielc1317/mdc-pathfinder/internal/llm/providers"
	"github.com/gabrielc1317/mdc-pathfinder/internal/recommend"
)

const validAnswer = `{
	"recommendations": [
		{
			"score": 5,
			"program": {"id": 101, "name": "Computer Programming and Analysis", "award_level": "AA", "total_credits": 60, "url": "https://example.edu/101"},
			"remaining_credits": 30,
			"estimated_terms": 2,
			"estimated_cost": {"tuition": 3000, "fees": 400, "books": 200, "total": 3600},
			"why_this": "Strong fit for software development."
		}
	],
	"advising_disclaimer": "Confirm details with an advisor."
}`

func newTestOrchestrator(p llm.Provider) *Orchestrator {
	return NewOrchestrator(p, fixtureStore(), Options{Model: "mock-model"}, nil)
}

func searchCall(id string) llm.ToolCall {
	return llm.ToolCall{ID: id, Type: "function", Name: ToolSearchPrograms, Arguments: `{"goalId":1}`}
}

func TestRecommend_NilProviderFallsBack(t *testing.T) {
	o := newTestOrchestrator(nil)
	req := recommend.Request{GoalID: 1, EarnedCredits: 30, PreferOnline: true}

	resp := o.Recommend(context.Background(), req)

	require.NotNil(t, resp.Debug)
	assert.Equal(t, OriginFallback, resp.Debug.Origin)

	want := recommend.NewRecommender(fixtureStore(), nil).Recommend(req)
	assert.Equal(t, want.Recommendations, resp.Recommendations)
	assert.Equal(t, want.AdvisingDisclaimer, resp.AdvisingDisclaimer)
}

func TestRecommend_ToolExchangeProducesAIAnswer(t *testing.T) {
	p := providers.NewMockProvider(
		providers.ToolCallTurn(searchCall("call_1")),
		providers.TextTurn(validAnswer),
	)
	o := newTestOrchestrator(p)

	resp := o.Recommend(context.Background(), recommend.Request{GoalID: 1, EarnedCredits: 30})

	require.NotNil(t, resp.Debug)
	assert.Equal(t, OriginAI, resp.Debug.Origin)
	require.Len(t, resp.Recommendations, 1)
	assert.Equal(t, 101, resp.Recommendations[0].Program.ID)
	assert.Equal(t, "Confirm details with an advisor.", resp.AdvisingDisclaimer)

	// The second model turn must have seen the dispatched tool result.
	calls := p.Calls()
	require.Len(t, calls, 2)
	messages := calls[1].Request.Messages
	require.GreaterOrEqual(t, len(messages), 4)
	assert.Equal(t, llm.RoleAssistant, messages[2].Role)
	assert.Equal(t, llm.RoleTool, messages[3].Role)
	assert.Equal(t, "call_1", messages[3].ToolCallID)
	assert.Contains(t, messages[3].Content, `"candidates"`)
}

func TestRecommend_FencedFinalAnswer(t *testing.T) {
	p := providers.NewMockProvider(
		providers.TextTurn("Here you go:\n```json\n" + validAnswer + "\n```"),
	)
	o := newTestOrchestrator(p)

	resp := o.Recommend(context.Background(), recommend.Request{GoalID: 1})

	require.NotNil(t, resp.Debug)
	assert.Equal(t, OriginAI, resp.Debug.Origin)
	require.Len(t, resp.Recommendations, 1)
}

func TestRecommend_UnknownProgramIDDropped(t *testing.T) {
	answer := `{"recommendations": [
		{"score": 9, "program": {"id": 999999, "name": "Imaginary Degree"}, "why_this": "hallucinated"},
		{"score": 5, "program": {"id": 101, "name": "Computer Programming and Analysis"}, "why_this": "real"}
	]}`
	p := providers.NewMockProvider(providers.TextTurn(answer))
	o := newTestOrchestrator(p)

	resp := o.Recommend(context.Background(), recommend.Request{GoalID: 1})

	require.NotNil(t, resp.Debug)
	assert.Equal(t, OriginAI, resp.Debug.Origin)
	require.Len(t, resp.Recommendations, 1)
	assert.Equal(t, 101, resp.Recommendations[0].Program.ID)
}

func TestRecommend_InvalidCatalogRowDropped(t *testing.T) {
	// Program 900 exists in the catalog but fails the validity filter, so the
	// ground-truth check must reject it the same as a made-up id.
	answer := `{"recommendations": [{"score": 5, "program": {"id": 900}, "why_this": "noise row"}]}`
	p := providers.NewMockProvider(providers.TextTurn(answer))
	o := newTestOrchestrator(p)
	req := recommend.Request{GoalID: 1, EarnedCredits: 30}

	resp := o.Recommend(context.Background(), req)

	require.NotNil(t, resp.Debug)
	assert.Equal(t, OriginFallback, resp.Debug.Origin)

	want := recommend.NewRecommender(fixtureStore(), nil).Recommend(req)
	assert.Equal(t, want.Recommendations, resp.Recommendations)
}

func TestRecommend_UnparseableAnswerFallsBack(t *testing.T) {
	p := providers.NewMockProvider(providers.TextTurn("I think the nursing program is nice."))
	o := newTestOrchestrator(p)

	resp := o.Recommend(context.Background(), recommend.Request{GoalID: 1})

	require.NotNil(t, resp.Debug)
	assert.Equal(t, OriginFallback, resp.Debug.Origin)
	assert.NotEmpty(t, resp.Recommendations)
}

func TestRecommend_TurnBudgetExhaustedFallsBack(t *testing.T) {
	turns := make([]providers.MockTurn, 0, MaxTurns+1)
	for i := 0; i <= MaxTurns; i++ {
		turns = append(turns, providers.ToolCallTurn(searchCall("call_n")))
	}
	p := providers.NewMockProvider(turns...)
	o := newTestOrchestrator(p)

	resp := o.Recommend(context.Background(), recommend.Request{GoalID: 1})

	require.NotNil(t, resp.Debug)
	assert.Equal(t, OriginFallback, resp.Debug.Origin)
	assert.Len(t, p.Calls(), MaxTurns)
}

func TestRecommend_ProviderErrorFallsBack(t *testing.T) {
	p := providers.NewMockProvider(providers.ErrorTurn(llm.NewRateLimitError("mock")))
	o := newTestOrchestrator(p)

	resp := o.Recommend(context.Background(), recommend.Request{GoalID: 1})

	require.NotNil(t, resp.Debug)
	assert.Equal(t, OriginFallback, resp.Debug.Origin)
	assert.NotEmpty(t, resp.Recommendations)
}

func TestRecommend_UnknownToolEndsExchange(t *testing.T) {
	p := providers.NewMockProvider(
		providers.ToolCallTurn(llm.ToolCall{ID: "call_1", Name: "launchMissiles", Arguments: `{}`}),
	)
	o := newTestOrchestrator(p)

	resp := o.Recommend(context.Background(), recommend.Request{GoalID: 1})

	// The assistant turn carried no text, so the exchange ends and the
	// deterministic path answers.
	require.NotNil(t, resp.Debug)
	assert.Equal(t, OriginFallback, resp.Debug.Origin)
	assert.Len(t, p.Calls(), 1)
}

func TestRecommend_MissingDisclaimerGetsDefault(t *testing.T) {
	answer := `{"recommendations": [{"score": 5, "program": {"id": 101}, "why_this": "fit"}]}`
	p := providers.NewMockProvider(providers.TextTurn(answer))
	o := newTestOrchestrator(p)

	resp := o.Recommend(context.Background(), recommend.Request{GoalID: 1})

	require.NotNil(t, resp.Debug)
	assert.Equal(t, OriginAI, resp.Debug.Origin)
	assert.Equal(t, recommend.DefaultDisclaimer, resp.AdvisingDisclaimer)
}

func TestRecommend_CapsAIRecommendations(t *testing.T) {
	answer := `{"recommendations": [
		{"score": 9, "program": {"id": 103}},
		{"score": 5, "program": {"id": 101}},
		{"score": 4, "program": {"id": 104}},
		{"score": 2, "program": {"id": 102}}
	]}`
	p := providers.NewMockProvider(providers.TextTurn(answer))
	o := newTestOrchestrator(p)

	resp := o.Recommend(context.Background(), recommend.Request{GoalID: 2})

	require.NotNil(t, resp.Debug)
	assert.Equal(t, OriginAI, resp.Debug.Origin)
	assert.Len(t, resp.Recommendations, recommend.MaxRecommendations)
	assert.Equal(t, 103, resp.Recommendations[0].Program.ID)
}

func TestRecommend_CanceledContextFallsBack(t *testing.T) {
	p := providers.NewMockProvider(providers.TextTurn(validAnswer))
	o := newTestOrchestrator(p)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp := o.Recommend(ctx, recommend.Request{GoalID: 1})

	require.NotNil(t, resp.Debug)
	assert.Equal(t, OriginFallback, resp.Debug.Origin)
	assert.NotEmpty(t, resp.Recommendations)
}

func TestRecommend_TimeoutOptionDefaults(t *testing.T) {
	o := NewOrchestrator(nil, fixtureStore(), Options{}, nil)
	assert.Equal(t, DefaultTimeout, o.opts.Timeout)

	o = NewOrchestrator(nil, fixtureStore(), Options{Timeout: time.Second}, nil)
	assert.Equal(t, time.Second, o.opts.Timeout)
}
