// Package health validates the switchboard configuration and provider
// connectivity, producing a structured report for operators.
package health

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/adwhq/switchboard/internal/config"
	"github.com/adwhq/switchboard/internal/provider"
)

// CheckResult is the outcome of an individual check.
type CheckResult struct {
	Name    string         `json:"name"`
	Success bool           `json:"success"`
	Error   string         `json:"error,omitempty"`
	Warning string         `json:"warning,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// Report aggregates all check results.
type Report struct {
	Healthy   bool          `json:"healthy"`
	RunID     string        `json:"run_id"`
	Timestamp time.Time     `json:"timestamp"`
	Checks    []CheckResult `json:"checks"`
	Warnings  []string      `json:"warnings,omitempty"`
	Errors    []string      `json:"errors,omitempty"`
}

// Checker runs health checks against the loaded configuration.
type Checker struct {
	cfg      *config.Config
	registry *provider.Registry
}

// NewChecker creates a health checker.
func NewChecker(cfg *config.Config, registry *provider.Registry) *Checker {
	return &Checker{cfg: cfg, registry: registry}
}

// Run executes all checks and returns the aggregate report. Any check
// that fails outright makes the report unhealthy. An unreachable
// Anthropic backend is a warning rather than a failure (the workflow may
// still fall back); an unreachable enabled OpenAI backend is an error.
func (c *Checker) Run(ctx context.Context) Report {
	report := Report{
		Healthy:   true,
		RunID:     uuid.NewString(),
		Timestamp: time.Now(),
	}

	snapshot := c.cfg.ResolverSnapshot()

	env := c.checkEnvironment(snapshot)
	report.Checks = append(report.Checks, env)
	if !env.Success {
		report.Healthy = false
		report.Errors = append(report.Errors, env.Error)
	}

	anthropicCheck := c.checkConnectivity(ctx, provider.NameAnthropic,
		snapshot.AnthropicEnabled, snapshot.AnthropicKeyPresent)
	report.Checks = append(report.Checks, anthropicCheck)
	if anthropicCheck.Warning != "" {
		report.Warnings = append(report.Warnings, anthropicCheck.Warning)
	}
	if !anthropicCheck.Success {
		report.Healthy = false
		report.Errors = append(report.Errors, anthropicCheck.Error)
	}

	openaiCheck := c.checkConnectivity(ctx, provider.NameOpenAI,
		snapshot.OpenAIEnabled, snapshot.OpenAIKeyPresent)
	report.Checks = append(report.Checks, openaiCheck)
	if !openaiCheck.Success {
		report.Healthy = false
		report.Errors = append(report.Errors, openaiCheck.Error)
	}

	return report
}

// checkEnvironment validates the provider flags and keys and resolves
// the active provider.
func (c *Checker) checkEnvironment(snapshot provider.ResolverConfig) CheckResult {
	res := provider.Resolve(snapshot)

	result := CheckResult{
		Name:    "environment",
		Success: true,
		Details: map[string]any{
			"anthropic_enabled": snapshot.AnthropicEnabled,
			"openai_enabled":    snapshot.OpenAIEnabled,
			"anthropic_key_set": snapshot.AnthropicKeyPresent,
			"openai_key_set":    snapshot.OpenAIKeyPresent,
		},
	}

	var missing []string
	if snapshot.AnthropicEnabled && !snapshot.AnthropicKeyPresent {
		missing = append(missing, "ANTHROPIC_API_KEY is required when ANTHROPIC_ENABLED=true")
	}
	if snapshot.OpenAIEnabled && !snapshot.OpenAIKeyPresent {
		missing = append(missing, "OPENAI_API_KEY is required when OPENAI_ENABLED=true")
	}

	if res.Configured() {
		result.Details["active_provider"] = string(res.Provider)
	} else {
		missing = append(missing, fmt.Sprintf("no LLM provider configured (%s)", res.Diagnostic))
	}

	if len(missing) > 0 {
		result.Success = false
		result.Details["missing"] = missing
		result.Error = missing[0]
		if len(missing) > 1 {
			result.Error = fmt.Sprintf("%s (and %d more)", missing[0], len(missing)-1)
		}
	}

	return result
}

// checkConnectivity pings a provider's backend when the provider is
// enabled and keyed. Disabled providers pass with a note; Anthropic
// failures are reported as warnings, OpenAI failures as errors.
func (c *Checker) checkConnectivity(ctx context.Context, name provider.Name, enabled, keyPresent bool) CheckResult {
	result := CheckResult{
		Name:    string(name),
		Success: true,
		Details: map[string]any{"enabled": enabled},
	}

	if !enabled {
		result.Details["reason"] = "provider disabled, check skipped"
		return result
	}
	if !keyPresent {
		// Already reported by the environment check; no point dialing.
		result.Details["reason"] = "API key missing, check skipped"
		return result
	}

	p, ok := c.registry.Get(name)
	if !ok {
		result.Success = false
		result.Error = fmt.Sprintf("provider %s is not registered", name)
		return result
	}

	if err := p.Ping(ctx); err != nil {
		if name == provider.NameAnthropic {
			result.Warning = err.Error()
		} else {
			result.Success = false
			result.Error = err.Error()
		}
		return result
	}

	result.Details["api_connected"] = true
	return result
}
