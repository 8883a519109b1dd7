// Package config loads switchboard configuration from an optional YAML
// file and the process environment. The loader owns all defaulting: by
// the time a Config exists, every field is concrete.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/adwhq/switchboard/internal/config/envutil"
	"github.com/adwhq/switchboard/internal/provider"
	"github.com/adwhq/switchboard/internal/validation"
)

// Config holds all switchboard configuration.
type Config struct {
	Providers ProvidersConfig `yaml:"providers"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ProvidersConfig holds the settings for both supported backends.
type ProvidersConfig struct {
	Anthropic ProviderSettings `yaml:"anthropic"`
	OpenAI    ProviderSettings `yaml:"openai"`
}

// ProviderSettings holds per-provider settings.
type ProviderSettings struct {
	Enabled      bool   `yaml:"enabled"`
	APIKey       string `yaml:"api_key"`
	DefaultModel string `yaml:"default_model"`
	BaseURL      string `yaml:"base_url"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load loads configuration from file and environment variables.
// Precedence, lowest to highest: built-in defaults, YAML file, environment.
func Load() (*Config, error) {
	cfg := defaultConfig()

	configPath := os.Getenv("SWITCHBOARD_CONFIG")
	if configPath == "" {
		configPath = "configs/switchboard.yaml"
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// File doesn't exist - continue with defaults
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	// Resolve ENV=/FILE=/${VAR} references in file-sourced keys
	if err := cfg.resolveSecrets(); err != nil {
		return nil, fmt.Errorf("failed to resolve secrets: %w", err)
	}

	// Override with environment variables
	cfg.applyEnvOverrides()

	// Validate
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns configuration with sensible defaults. Anthropic
// is enabled when unset, keeping deployments that predate the flag
// working; OpenAI is opt-in.
func defaultConfig() *Config {
	return &Config{
		Providers: ProvidersConfig{
			Anthropic: ProviderSettings{
				Enabled:      true,
				DefaultModel: "claude-sonnet-4-20250514",
			},
			OpenAI: ProviderSettings{
				Enabled:      false,
				DefaultModel: "gpt-4o",
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// applyEnvOverrides applies environment variable overrides. The enabled
// flag and API key variable names are the contract shared with the rest
// of the ADW tooling, so they carry no prefix.
func (c *Config) applyEnvOverrides() {
	c.Providers.Anthropic.Enabled = envutil.GetBoolEnv("ANTHROPIC_ENABLED", c.Providers.Anthropic.Enabled)
	c.Providers.OpenAI.Enabled = envutil.GetBoolEnv("OPENAI_ENABLED", c.Providers.OpenAI.Enabled)

	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		c.Providers.Anthropic.APIKey = key
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		c.Providers.OpenAI.APIKey = key
	}

	if url := os.Getenv("ANTHROPIC_BASE_URL"); url != "" {
		c.Providers.Anthropic.BaseURL = url
	}
	if url := os.Getenv("OPENAI_BASE_URL"); url != "" {
		c.Providers.OpenAI.BaseURL = url
	}

	c.Logging.Level = envutil.GetStringEnv("SWITCHBOARD_LOG_LEVEL", c.Logging.Level)
	c.Logging.Format = envutil.GetStringEnv("SWITCHBOARD_LOG_FORMAT", c.Logging.Format)
}

// validate checks configuration validity.
func (c *Config) validate() error {
	if url := c.Providers.Anthropic.BaseURL; url != "" {
		if err := validation.ValidateProviderURL(url); err != nil {
			return fmt.Errorf("anthropic base_url: %w", err)
		}
	}
	if url := c.Providers.OpenAI.BaseURL; url != "" {
		if err := validation.ValidateProviderURL(url); err != nil {
			return fmt.Errorf("openai base_url: %w", err)
		}
	}
	return nil
}

// ResolverSnapshot builds the immutable resolver input from the loaded
// configuration. Key presence is a syntactic check only; an empty or
// whitespace key counts as absent.
func (c *Config) ResolverSnapshot() provider.ResolverConfig {
	return provider.ResolverConfig{
		AnthropicEnabled:    c.Providers.Anthropic.Enabled,
		OpenAIEnabled:       c.Providers.OpenAI.Enabled,
		AnthropicKeyPresent: provider.KeyPresent(c.Providers.Anthropic.APIKey),
		OpenAIKeyPresent:    provider.KeyPresent(c.Providers.OpenAI.APIKey),
	}
}

// ClientConfig converts provider settings into the client construction
// config.
func (p ProviderSettings) ClientConfig() provider.ClientConfig {
	return provider.ClientConfig{
		APIKey:  p.APIKey,
		Model:   p.DefaultModel,
		BaseURL: p.BaseURL,
	}
}
