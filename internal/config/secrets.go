package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// resolveSecrets resolves API key references in file-sourced settings.
func (c *Config) resolveSecrets() error {
	resolved, err := loadSecret(c.Providers.Anthropic.APIKey)
	if err != nil {
		return fmt.Errorf("anthropic api_key: %w", err)
	}
	c.Providers.Anthropic.APIKey = resolved

	resolved, err = loadSecret(c.Providers.OpenAI.APIKey)
	if err != nil {
		return fmt.Errorf("openai api_key: %w", err)
	}
	c.Providers.OpenAI.APIKey = resolved

	return nil
}

// loadSecret resolves a secret value from ENV=, FILE=, or inline. An
// unset environment reference resolves to empty rather than failing the
// load: a missing key is a routine condition the resolver reports, not a
// startup crash.
func loadSecret(value string) (string, error) {
	if value == "" {
		return "", nil
	}

	// Handle ENV= prefix
	if strings.HasPrefix(value, "ENV=") {
		envVar := strings.TrimPrefix(value, "ENV=")
		v := os.Getenv(envVar)
		if v == "" {
			slog.Debug("referenced environment variable not set", "variable", envVar)
		}
		return v, nil
	}

	// Handle FILE= prefix
	if strings.HasPrefix(value, "FILE=") {
		path := strings.TrimSpace(strings.TrimPrefix(value, "FILE="))
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", path, err)
		}
		return strings.TrimSpace(string(data)), nil
	}

	// Handle ${VAR} expansion
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		varName := value[2 : len(value)-1]
		v := os.Getenv(varName)
		if v == "" {
			slog.Debug("referenced environment variable not set", "variable", varName)
		}
		return v, nil
	}

	// Return as-is (inline value)
	return value, nil
}
