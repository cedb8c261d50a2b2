package providers

import (
	"fmt"

	"github.com/gabrielc1317/mdc-pathfinder/internal/llm"
	"github.com/gabrielc1317/mdc-pathfinder/internal/types"
)

// NewProvider creates an LLM provider from the configuration.
func NewProvider(cfg llm.ProviderConfig) (llm.Provider, error) {
	switch cfg.Type {
	case llm.ProviderGoogle:
		return NewGoogleProvider(cfg)

	case llm.ProviderAnthropic:
		return NewAnthropicProvider(cfg)

	case llm.ProviderOpenAI:
		return NewOpenAIProvider(cfg)

	case llm.ProviderMock:
		return NewMockProvider(TextTurn(`{"recommendations": []}`)), nil

	default:
		return nil, types.NewError(types.CONFIG_VALIDATION_FAILED,
			fmt.Sprintf("unknown provider type: %s", cfg.Type))
	}
}
