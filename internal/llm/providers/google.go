package providers

import (
	"context"
	"os"

	"github.com/tmc/langchaingo/llms/googleai"

	"github.com/gabrielc1317/mdc-pathfinder/internal/llm"
)

// GoogleProvider implements llm.Provider for Google's Gemini models.
type GoogleProvider struct {
	client *googleai.GoogleAI
	config llm.ProviderConfig
}

// NewGoogleProvider creates a new Google provider. The API key comes from the
// config or falls back to GOOGLE_API_KEY.
func NewGoogleProvider(cfg llm.ProviderConfig) (*GoogleProvider, error) {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GOOGLE_API_KEY")
	}
	if apiKey == "" {
		return nil, llm.NewAuthError("google", nil)
	}

	opts := []googleai.Option{
		googleai.WithAPIKey(apiKey),
	}
	if cfg.DefaultModel != "" {
		opts = append(opts, googleai.WithDefaultModel(cfg.DefaultModel))
	}

	client, err := googleai.New(context.Background(), opts...)
	if err != nil {
		return nil, llm.TranslateError("google", err)
	}

	return &GoogleProvider{client: client, config: cfg}, nil
}

// Name returns the provider name.
func (p *GoogleProvider) Name() string {
	return "google"
}

// Complete sends a completion request.
func (p *GoogleProvider) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	resp, err := p.client.GenerateContent(ctx, toLangchainMessages(req.Messages), buildCallOptions(req)...)
	if err != nil {
		return nil, llm.TranslateError("google", err)
	}
	return fromLangchainResponse(resp, req.Model), nil
}

// CompleteWithTools sends a completion request with tool definitions.
func (p *GoogleProvider) CompleteWithTools(ctx context.Context, req llm.CompletionRequest, tools []llm.ToolDef) (*llm.CompletionResponse, error) {
	resp, err := p.client.GenerateContent(ctx, toLangchainMessages(req.Messages), buildCallOptionsWithTools(req, tools)...)
	if err != nil {
		return nil, llm.TranslateError("google", err)
	}
	return fromLangchainResponse(resp, req.Model), nil
}
