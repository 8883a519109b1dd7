package agent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/adwhq/switchboard/internal/provider"
)

type fakeProvider struct {
	name       provider.Name
	lastParams provider.PromptParams
	result     provider.PromptResult
	err        error
}

func (f *fakeProvider) Name() provider.Name { return f.name }

func (f *fakeProvider) PromptCompletion(ctx context.Context, params provider.PromptParams) (provider.PromptResult, error) {
	f.lastParams = params
	return f.result, f.err
}

func (f *fakeProvider) Ping(ctx context.Context) error { return nil }

func TestExecuteRoutesToAnthropic(t *testing.T) {
	anthropicClient := &fakeProvider{
		name:   provider.NameAnthropic,
		result: provider.PromptResult{Text: "done", Model: "claude-sonnet-4-20250514"},
	}
	registry := provider.NewRegistry(anthropicClient, &fakeProvider{name: provider.NameOpenAI})
	snapshot := provider.ResolverConfig{
		AnthropicEnabled:    true,
		AnthropicKeyPresent: true,
		OpenAIEnabled:       true,
		OpenAIKeyPresent:    true,
	}

	resp, err := NewExecutor(registry, snapshot).Execute(context.Background(), PromptRequest{
		Prompt: "hello",
		Model:  "sonnet",
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if resp.Provider != provider.NameAnthropic {
		t.Errorf("provider = %s, want anthropic", resp.Provider)
	}
	if resp.Output != "done" {
		t.Errorf("output = %q, want done", resp.Output)
	}
	if resp.RequestID == "" {
		t.Error("expected a request ID")
	}
	// Claude-style model names pass through unchanged to Anthropic.
	if anthropicClient.lastParams.Model != "sonnet" {
		t.Errorf("model sent = %q, want sonnet", anthropicClient.lastParams.Model)
	}
}

func TestExecuteMapsModelOnFallback(t *testing.T) {
	openaiClient := &fakeProvider{
		name:   provider.NameOpenAI,
		result: provider.PromptResult{Text: "done", Model: "gpt-4o-mini"},
	}
	registry := provider.NewRegistry(openaiClient)
	snapshot := provider.ResolverConfig{
		AnthropicEnabled: true, // enabled but keyless: falls through
		OpenAIEnabled:    true,
		OpenAIKeyPresent: true,
	}

	resp, err := NewExecutor(registry, snapshot).Execute(context.Background(), PromptRequest{
		Prompt: "hello",
		Model:  "haiku",
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if resp.Provider != provider.NameOpenAI {
		t.Errorf("provider = %s, want openai", resp.Provider)
	}
	if openaiClient.lastParams.Model != "gpt-4o-mini" {
		t.Errorf("model sent = %q, want gpt-4o-mini", openaiClient.lastParams.Model)
	}
}

func TestExecuteEmptyModelNotMapped(t *testing.T) {
	openaiClient := &fakeProvider{name: provider.NameOpenAI}
	registry := provider.NewRegistry(openaiClient)
	snapshot := provider.ResolverConfig{OpenAIEnabled: true, OpenAIKeyPresent: true}

	_, err := NewExecutor(registry, snapshot).Execute(context.Background(), PromptRequest{Prompt: "hello"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	// An empty model means "client default"; mapping must not invent one.
	if openaiClient.lastParams.Model != "" {
		t.Errorf("model sent = %q, want empty", openaiClient.lastParams.Model)
	}
}

func TestExecuteUnconfigured(t *testing.T) {
	registry := provider.NewRegistry()
	snapshot := provider.ResolverConfig{}

	_, err := NewExecutor(registry, snapshot).Execute(context.Background(), PromptRequest{Prompt: "hello"})
	if err == nil {
		t.Fatal("expected error for unconfigured snapshot")
	}
	if !strings.Contains(err.Error(), "no LLM provider configured") {
		t.Errorf("error = %v, want unconfigured diagnostic", err)
	}
	for _, fragment := range []string{"anthropic", "openai", "enabled=", "key="} {
		if !strings.Contains(err.Error(), fragment) {
			t.Errorf("error %v should contain %q", err, fragment)
		}
	}
}

func TestExecutePropagatesProviderError(t *testing.T) {
	anthropicClient := &fakeProvider{
		name: provider.NameAnthropic,
		err:  errors.New("overloaded"),
	}
	registry := provider.NewRegistry(anthropicClient)
	snapshot := provider.ResolverConfig{AnthropicEnabled: true, AnthropicKeyPresent: true}

	_, err := NewExecutor(registry, snapshot).Execute(context.Background(), PromptRequest{Prompt: "hello"})
	if err == nil || !strings.Contains(err.Error(), "overloaded") {
		t.Errorf("err = %v, want provider error passed through", err)
	}
}
