package provider

import (
	"context"
	"strings"
)

// Provider is the uniform prompt-execution contract implemented by each
// backend client. The resolver decides which Provider serves a request;
// the Provider owns everything past that point, including semantic
// credential validity (an invalid key surfaces here at call time, never
// at resolution time).
type Provider interface {
	// Name returns the provider identifier.
	Name() Name

	// PromptCompletion sends a single prompt and returns the completion.
	PromptCompletion(ctx context.Context, params PromptParams) (PromptResult, error)

	// Ping performs a lightweight connectivity check against the backend.
	Ping(ctx context.Context) error
}

// PromptParams contains the parameters for a single prompt completion.
type PromptParams struct {
	// Prompt is the user prompt text.
	Prompt string

	// SystemPrompt is the optional system instruction.
	SystemPrompt string

	// Model overrides the client's configured model.
	Model string

	// MaxTokens caps the response length. Zero means the client default.
	MaxTokens int

	// Temperature overrides the sampling temperature.
	Temperature *float64

	// RequestID for tracing.
	RequestID string
}

// PromptResult contains the completion returned by a provider.
type PromptResult struct {
	// Text is the completion text.
	Text string

	// Model is the actual model used.
	Model string

	// Usage contains token usage metrics.
	Usage *Usage
}

// Usage contains token usage metrics.
type Usage struct {
	InputTokens  int64
	OutputTokens int64
	TotalTokens  int64
}

// ClientConfig carries per-provider credentials and defaults, resolved by
// the configuration loader before client construction.
type ClientConfig struct {
	APIKey          string
	Model           string
	BaseURL         string
	Temperature     *float64
	MaxOutputTokens *int
}

// KeyPresent reports whether an API key value is syntactically present.
// An empty or whitespace-only value counts as absent; no validity check
// is performed here.
func KeyPresent(value string) bool {
	return strings.TrimSpace(value) != ""
}
