package hooks

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/adwhq/switchboard/internal/agent"
	"github.com/adwhq/switchboard/internal/provider"
)

type fakeProvider struct {
	name   provider.Name
	result provider.PromptResult
	err    error
}

func (f *fakeProvider) Name() provider.Name { return f.name }

func (f *fakeProvider) PromptCompletion(ctx context.Context, params provider.PromptParams) (provider.PromptResult, error) {
	return f.result, f.err
}

func (f *fakeProvider) Ping(ctx context.Context) error { return nil }

func configuredRunner(p *fakeProvider) *Runner {
	registry := provider.NewRegistry(p)
	snapshot := provider.ResolverConfig{AnthropicEnabled: true, AnthropicKeyPresent: true}
	return NewRunner(agent.NewExecutor(registry, snapshot))
}

func unconfiguredRunner() *Runner {
	return NewRunner(agent.NewExecutor(provider.NewRegistry(), provider.ResolverConfig{}))
}

func TestPrompt(t *testing.T) {
	runner := configuredRunner(&fakeProvider{
		name:   provider.NameAnthropic,
		result: provider.PromptResult{Text: "answer"},
	})

	out, err := runner.Prompt(context.Background(), "question")
	if err != nil {
		t.Fatalf("Prompt: %v", err)
	}
	if out != "answer" {
		t.Errorf("out = %q, want answer", out)
	}
}

func TestPromptUnconfiguredIsFatal(t *testing.T) {
	_, err := unconfiguredRunner().Prompt(context.Background(), "question")
	if err == nil {
		t.Fatal("expected error from unconfigured runner")
	}
	if !strings.Contains(err.Error(), "no LLM provider configured") {
		t.Errorf("err = %v, want unconfigured diagnostic", err)
	}
}

func TestPromptProviderErrorIsFatal(t *testing.T) {
	runner := configuredRunner(&fakeProvider{
		name: provider.NameAnthropic,
		err:  errors.New("overloaded"),
	})

	_, err := runner.Prompt(context.Background(), "question")
	if err == nil {
		t.Fatal("expected provider error to propagate")
	}
}

func TestCompletionMessage(t *testing.T) {
	runner := configuredRunner(&fakeProvider{
		name:   provider.NameAnthropic,
		result: provider.PromptResult{Text: "  All done!  "},
	})

	msg, ok := runner.CompletionMessage(context.Background())
	if !ok {
		t.Fatal("expected a completion message")
	}
	if msg != "All done!" {
		t.Errorf("msg = %q, want trimmed text", msg)
	}
}

func TestCompletionMessageUnconfiguredSkips(t *testing.T) {
	msg, ok := unconfiguredRunner().CompletionMessage(context.Background())
	if ok {
		t.Errorf("expected skip, got message %q", msg)
	}
}

func TestCompletionMessageProviderErrorSkips(t *testing.T) {
	runner := configuredRunner(&fakeProvider{
		name: provider.NameAnthropic,
		err:  errors.New("timeout"),
	})

	msg, ok := runner.CompletionMessage(context.Background())
	if ok {
		t.Errorf("expected skip on provider error, got %q", msg)
	}
}

func TestCompletionMessageEmptyResponseSkips(t *testing.T) {
	runner := configuredRunner(&fakeProvider{
		name:   provider.NameAnthropic,
		result: provider.PromptResult{Text: "   "},
	})

	if msg, ok := runner.CompletionMessage(context.Background()); ok {
		t.Errorf("expected skip on empty response, got %q", msg)
	}
}
