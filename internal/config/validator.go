package config

import (
	"fmt"

	"github.com/gabrielc1317/mdc-pathfinder/internal/types"
)

// Validator checks a loaded configuration for consistency.
type Validator interface {
	Validate(cfg *Config) error
}

type defaultValidator struct{}

// NewValidator creates the standard configuration validator.
func NewValidator() Validator {
	return defaultValidator{}
}

var validLogLevels = map[string]struct{}{
	"debug": {}, "info": {}, "warn": {}, "error": {},
}

var validLogFormats = map[string]struct{}{
	"text": {}, "json": {},
}

func (defaultValidator) Validate(cfg *Config) error {
	if cfg == nil {
		return types.NewError(types.CONFIG_VALIDATION_FAILED, "configuration is nil")
	}

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return types.NewError(types.CONFIG_VALIDATION_FAILED,
			fmt.Sprintf("server port out of range: %d", cfg.Server.Port))
	}

	if cfg.Catalog.DataDir == "" {
		return types.NewError(types.CONFIG_VALIDATION_FAILED, "catalog data_dir must not be empty")
	}

	if cfg.Advisor.Timeout <= 0 {
		return types.NewError(types.CONFIG_VALIDATION_FAILED, "advisor timeout must be positive")
	}

	if cfg.LLM.Type != "" {
		if err := cfg.LLM.Validate(); err != nil {
			return err
		}
	}

	if _, ok := validLogLevels[cfg.Logging.Level]; !ok {
		return types.NewError(types.CONFIG_VALIDATION_FAILED,
			fmt.Sprintf("unknown log level: %s", cfg.Logging.Level))
	}
	if _, ok := validLogFormats[cfg.Logging.Format]; !ok {
		return types.NewError(types.CONFIG_VALIDATION_FAILED,
			fmt.Sprintf("unknown log format: %s", cfg.Logging.Format))
	}

	return nil
}
