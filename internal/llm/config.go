package llm

import (
	"fmt"

	"github.com/gabrielc1317/mdc-pathfinder/internal/types"
)

// ProviderType identifies an LLM backend.
type ProviderType string

const (
	ProviderGoogle    ProviderType = "google"
	ProviderAnthropic ProviderType = "anthropic"
	ProviderOpenAI    ProviderType = "openai"
	ProviderMock      ProviderType = "mock"
)

// ProviderConfig configures a single LLM backend. APIKey may be empty here;
// providers fall back to their conventional environment variable, and the
// advisor treats a missing credential as a signal to skip the AI path.
type ProviderConfig struct {
	Type         ProviderType `mapstructure:"type" yaml:"type"`
	APIKey       string       `mapstructure:"api_key" yaml:"api_key"`
	DefaultModel string       `mapstructure:"default_model" yaml:"default_model"`
	Temperature  float64      `mapstructure:"temperature" yaml:"temperature"`
	MaxTokens    int          `mapstructure:"max_tokens" yaml:"max_tokens"`
}

// Validate performs validation on the ProviderConfig.
func (p ProviderConfig) Validate() error {
	switch p.Type {
	case ProviderGoogle, ProviderAnthropic, ProviderOpenAI, ProviderMock:
	case "":
		return types.NewError(types.CONFIG_VALIDATION_FAILED, "provider type cannot be empty")
	default:
		return types.NewError(types.CONFIG_VALIDATION_FAILED,
			fmt.Sprintf("invalid provider type '%s', must be one of: google, anthropic, openai, mock", p.Type))
	}

	if p.Temperature < 0 || p.Temperature > 2 {
		return types.NewError(types.CONFIG_VALIDATION_FAILED, "temperature must be between 0 and 2")
	}
	if p.MaxTokens < 0 {
		return types.NewError(types.CONFIG_VALIDATION_FAILED, "max_tokens must be non-negative")
	}

	return nil
}
