package providers

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/gabrielc1317/mdc-pathfinder/internal/llm"
)

// MockTurn scripts one reply from the mock provider: either a message or an
// error for that turn of the exchange.
type MockTurn struct {
	Message llm.Message
	Err     error
}

// TextTurn scripts a plain assistant text reply.
func TextTurn(content string) MockTurn {
	return MockTurn{Message: llm.NewAssistantMessage(content)}
}

// ToolCallTurn scripts an assistant reply requesting the given tool calls.
func ToolCallTurn(calls ...llm.ToolCall) MockTurn {
	return MockTurn{Message: llm.Message{Role: llm.RoleAssistant, ToolCalls: calls}}
}

// ErrorTurn scripts a provider failure.
func ErrorTurn(err error) MockTurn {
	return MockTurn{Err: err}
}

// MockCall records one request the mock provider received.
type MockCall struct {
	Request llm.CompletionRequest
	Tools   []llm.ToolDef
}

// MockProvider implements llm.Provider for testing with a scripted exchange.
type MockProvider struct {
	mu    sync.Mutex
	turns []MockTurn
	next  int
	calls []MockCall
}

// NewMockProvider creates a mock provider that replays the given turns in order.
func NewMockProvider(turns ...MockTurn) *MockProvider {
	return &MockProvider{turns: turns}
}

// Name returns the provider name.
func (p *MockProvider) Name() string {
	return "mock"
}

// Complete replays the next scripted turn.
func (p *MockProvider) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	return p.CompleteWithTools(ctx, req, nil)
}

// CompleteWithTools replays the next scripted turn, recording the request.
func (p *MockProvider) CompleteWithTools(ctx context.Context, req llm.CompletionRequest, tools []llm.ToolDef) (*llm.CompletionResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, llm.TranslateError("mock", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.calls = append(p.calls, MockCall{Request: req, Tools: tools})

	if p.next >= len(p.turns) {
		return nil, llm.NewCompletionError("mock provider exhausted its scripted turns", nil)
	}
	turn := p.turns[p.next]
	p.next++

	if turn.Err != nil {
		return nil, turn.Err
	}

	finishReason := llm.FinishReasonStop
	if len(turn.Message.ToolCalls) > 0 {
		finishReason = llm.FinishReasonToolCalls
	}

	return &llm.CompletionResponse{
		ID:           uuid.New().String(),
		Model:        req.Model,
		Message:      turn.Message,
		FinishReason: finishReason,
	}, nil
}

// Calls returns all recorded calls.
func (p *MockProvider) Calls() []MockCall {
	p.mu.Lock()
	defer p.mu.Unlock()

	calls := make([]MockCall, len(p.calls))
	copy(calls, p.calls)
	return calls
}

// Reset rewinds the script and clears recorded calls.
func (p *MockProvider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.next = 0
	p.calls = nil
}

var _ llm.Provider = (*MockProvider)(nil)
