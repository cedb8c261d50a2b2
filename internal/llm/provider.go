package llm

import "context"

// Provider is the unified abstraction over LLM backends (Google Gemini,
// Anthropic Claude, OpenAI). Implementations must be safe for concurrent use.
type Provider interface {
	// Name returns the provider name (e.g., "google", "anthropic")
	Name() string

	// Complete sends a completion request and blocks for the full response.
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)

	// CompleteWithTools sends a completion request with tool definitions.
	// The model may answer with text, tool calls, or both.
	CompleteWithTools(ctx context.Context, req CompletionRequest, tools []ToolDef) (*CompletionResponse, error)
}
