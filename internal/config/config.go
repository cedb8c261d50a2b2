package config

import (
	"time"

	"github.com/gabrielc1317/mdc-pathfinder/internal/llm"
)

// Config is the root application configuration.
type Config struct {
	Server  ServerConfig       `mapstructure:"server" yaml:"server"`
	Catalog CatalogConfig      `mapstructure:"catalog" yaml:"catalog"`
	LLM     llm.ProviderConfig `mapstructure:"llm" yaml:"llm"`
	Advisor AdvisorConfig      `mapstructure:"advisor" yaml:"advisor"`
	Logging LoggingConfig      `mapstructure:"logging" yaml:"logging"`
}

// ServerConfig controls the HTTP API listener.
type ServerConfig struct {
	Host         string        `mapstructure:"host" yaml:"host"`
	Port         int           `mapstructure:"port" yaml:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout" yaml:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout" yaml:"write_timeout"`
}

// CatalogConfig locates the seed data the catalog store loads at startup.
type CatalogConfig struct {
	DataDir string `mapstructure:"data_dir" yaml:"data_dir"`
}

// AdvisorConfig tunes the AI advising exchange.
type AdvisorConfig struct {
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// LoggingConfig controls structured logging output.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// DefaultConfig returns the configuration used when no config file exists.
// The LLM section defaults to no API key, which routes every request to the
// deterministic path.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         8000,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 60 * time.Second,
		},
		Catalog: CatalogConfig{
			DataDir: "data",
		},
		LLM: llm.ProviderConfig{
			Type:         llm.ProviderGoogle,
			DefaultModel: "gemini-1.5-flash",
			Temperature:  0.2,
			MaxTokens:    2048,
		},
		Advisor: AdvisorConfig{
			Timeout: 45 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
