// Package agent executes prompts against whichever provider the resolver
// selects, translating model names when the workflow falls back to OpenAI.
package agent

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/adwhq/switchboard/internal/provider"
)

// PromptRequest describes a single prompt execution. Model names are
// Claude-style; when resolution selects OpenAI the executor maps them to
// the equivalent OpenAI model.
type PromptRequest struct {
	Prompt       string
	Model        string
	SystemPrompt string
	MaxTokens    int
	Temperature  *float64
}

// PromptResponse is the completed execution.
type PromptResponse struct {
	Output    string
	Provider  provider.Name
	Model     string
	RequestID string
	Usage     *provider.Usage
}

// Executor routes prompt executions through the resolved provider.
type Executor struct {
	registry *provider.Registry
	snapshot provider.ResolverConfig
}

// NewExecutor creates an executor over the given registry and
// configuration snapshot.
func NewExecutor(registry *provider.Registry, snapshot provider.ResolverConfig) *Executor {
	return &Executor{registry: registry, snapshot: snapshot}
}

// Execute resolves the provider once, translates the model name if
// needed, and runs the prompt. An unconfigured snapshot fails with the
// resolver's diagnostic.
func (e *Executor) Execute(ctx context.Context, req PromptRequest) (PromptResponse, error) {
	res := provider.Resolve(e.snapshot)
	p, err := e.registry.ForResolution(res)
	if err != nil {
		return PromptResponse{}, err
	}

	model := req.Model
	if res.Provider == provider.NameOpenAI && model != "" {
		model = provider.OpenAIModelFor(model)
	}

	requestID := uuid.NewString()
	slog.Info("executing prompt",
		"request_id", requestID,
		"provider", string(res.Provider),
		"model", model)

	result, err := p.PromptCompletion(ctx, provider.PromptParams{
		Prompt:       req.Prompt,
		SystemPrompt: req.SystemPrompt,
		Model:        model,
		MaxTokens:    req.MaxTokens,
		Temperature:  req.Temperature,
		RequestID:    requestID,
	})
	if err != nil {
		slog.Error("prompt execution failed",
			"request_id", requestID,
			"provider", string(res.Provider),
			"error", err)
		return PromptResponse{}, err
	}

	return PromptResponse{
		Output:    result.Text,
		Provider:  res.Provider,
		Model:     result.Model,
		RequestID: requestID,
		Usage:     result.Usage,
	}, nil
}
