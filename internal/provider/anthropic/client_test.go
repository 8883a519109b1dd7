package anthropic

import (
	"context"
	"testing"

	anthropic "github.com/anthropics/anthropic-sdk-go"

	"github.com/adwhq/switchboard/internal/provider"
)

func TestName(t *testing.T) {
	c := NewClient(provider.ClientConfig{})
	if c.Name() != provider.NameAnthropic {
		t.Errorf("Name() = %s, want %s", c.Name(), provider.NameAnthropic)
	}
}

func TestPromptCompletion_MissingAPIKey(t *testing.T) {
	c := NewClient(provider.ClientConfig{APIKey: "  "})

	_, err := c.PromptCompletion(context.Background(), provider.PromptParams{Prompt: "hi"})
	if err == nil {
		t.Fatal("expected error for missing API key")
	}
}

func TestPromptCompletion_EmptyPrompt(t *testing.T) {
	c := NewClient(provider.ClientConfig{APIKey: "sk-ant-test"})

	_, err := c.PromptCompletion(context.Background(), provider.PromptParams{Prompt: "   "})
	if err == nil {
		t.Fatal("expected error for empty prompt")
	}
}

func TestPromptCompletion_InvalidBaseURL(t *testing.T) {
	c := NewClient(provider.ClientConfig{
		APIKey:  "sk-ant-test",
		BaseURL: "file:///etc/passwd",
	})

	_, err := c.PromptCompletion(context.Background(), provider.PromptParams{Prompt: "hi"})
	if err == nil {
		t.Fatal("expected error for unsafe base URL")
	}
}

func TestPing_MissingAPIKey(t *testing.T) {
	c := NewClient(provider.ClientConfig{})

	if err := c.Ping(context.Background()); err == nil {
		t.Fatal("expected error for missing API key")
	}
}

func TestExtractText_Nil(t *testing.T) {
	if got := extractText(nil); got != "" {
		t.Fatalf("extractText(nil) = %q, want empty", got)
	}
}

func TestExtractText_EmptyContent(t *testing.T) {
	msg := &anthropic.Message{Content: []anthropic.ContentBlockUnion{}}
	if got := extractText(msg); got != "" {
		t.Fatalf("extractText(empty) = %q, want empty", got)
	}
}
