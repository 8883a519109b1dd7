// Package openai provides the OpenAI prompt-execution client using the
// Chat Completions API.
package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/adwhq/switchboard/internal/provider"
	"github.com/adwhq/switchboard/internal/retry"
	"github.com/adwhq/switchboard/internal/validation"
)

const (
	defaultModel     = "gpt-4o"
	defaultMaxTokens = 4096
)

// Client implements the provider.Provider interface using OpenAI's Chat
// Completions API.
type Client struct {
	cfg   provider.ClientConfig
	debug bool
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithDebugLogging enables verbose OpenAI payload logging.
func WithDebugLogging(enabled bool) ClientOption {
	return func(c *Client) {
		c.debug = enabled
	}
}

// NewClient creates a new OpenAI provider client.
func NewClient(cfg provider.ClientConfig, opts ...ClientOption) *Client {
	c := &Client{cfg: cfg}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Name returns the provider identifier.
func (c *Client) Name() provider.Name {
	return provider.NameOpenAI
}

// sdkClient builds the underlying SDK client, validating any base URL
// override first.
func (c *Client) sdkClient() (openai.Client, error) {
	opts := []option.RequestOption{
		option.WithAPIKey(c.cfg.APIKey),
	}
	if c.cfg.BaseURL != "" {
		if err := validation.ValidateProviderURL(c.cfg.BaseURL); err != nil {
			return openai.Client{}, fmt.Errorf("invalid base URL: %w", err)
		}
		opts = append(opts, option.WithBaseURL(c.cfg.BaseURL))
	}
	return openai.NewClient(opts...), nil
}

// PromptCompletion implements provider.Provider using OpenAI's Chat
// Completions API.
func (c *Client) PromptCompletion(ctx context.Context, params provider.PromptParams) (provider.PromptResult, error) {
	if strings.TrimSpace(c.cfg.APIKey) == "" {
		return provider.PromptResult{}, errors.New("OpenAI API key is required")
	}
	if strings.TrimSpace(params.Prompt) == "" {
		return provider.PromptResult{}, errors.New("prompt is required")
	}

	model := provider.SelectModel(c.cfg.Model, defaultModel, params.Model)

	ctx, cancel := retry.EnsureTimeout(ctx, retry.RequestTimeout)
	defer cancel()

	client, err := c.sdkClient()
	if err != nil {
		return provider.PromptResult{}, fmt.Errorf("client setup: %w", err)
	}

	maxTokens := int64(defaultMaxTokens)
	if params.MaxTokens > 0 {
		maxTokens = int64(params.MaxTokens)
	} else if c.cfg.MaxOutputTokens != nil {
		maxTokens = int64(*c.cfg.MaxOutputTokens)
	}

	messages := []openai.ChatCompletionMessageParamUnion{
		openai.UserMessage(strings.TrimSpace(params.Prompt)),
	}
	if params.SystemPrompt != "" {
		messages = append([]openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(params.SystemPrompt),
		}, messages...)
	}

	req := openai.ChatCompletionNewParams{
		Model:     openai.ChatModel(model),
		MaxTokens: openai.Int(maxTokens),
		Messages:  messages,
	}

	if params.Temperature != nil {
		req.Temperature = openai.Float(*params.Temperature)
	} else if c.cfg.Temperature != nil {
		req.Temperature = openai.Float(*c.cfg.Temperature)
	}

	if c.debug {
		slog.Debug("openai request",
			"model", model,
			"max_tokens", maxTokens,
			"request_id", params.RequestID,
		)
	}

	// Execute with retry
	var lastErr error
	for attempt := 1; attempt <= retry.MaxAttempts; attempt++ {
		slog.Info("openai request",
			"attempt", attempt,
			"model", model,
			"request_id", params.RequestID,
		)

		reqCtx, reqCancel := context.WithTimeout(ctx, retry.RequestTimeout)
		resp, err := client.Chat.Completions.New(reqCtx, req)
		reqCancel()

		if err != nil {
			// Check if parent context is still valid
			if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
				lastErr = fmt.Errorf("openai request timeout: %w", err)
				slog.Warn("openai timeout, retrying", "attempt", attempt)
				if attempt < retry.MaxAttempts {
					retry.SleepWithBackoff(ctx, attempt)
					continue
				}
				return provider.PromptResult{}, lastErr
			}

			lastErr = fmt.Errorf("openai error: %w", err)
			if !retry.IsRetryable(err) {
				return provider.PromptResult{}, lastErr
			}

			slog.Warn("openai retryable error", "attempt", attempt, "error", err)
			if attempt < retry.MaxAttempts {
				retry.SleepWithBackoff(ctx, attempt)
				continue
			}
			return provider.PromptResult{}, lastErr
		}

		text := extractText(resp)
		if text == "" {
			lastErr = errors.New("openai returned empty response")
			if attempt < retry.MaxAttempts {
				retry.SleepWithBackoff(ctx, attempt)
			}
			continue
		}

		usage := &provider.Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}

		slog.Info("openai request completed",
			"model", model,
			"tokens_in", usage.InputTokens,
			"tokens_out", usage.OutputTokens,
		)

		return provider.PromptResult{
			Text:  text,
			Model: model,
			Usage: usage,
		}, nil
	}

	return provider.PromptResult{}, lastErr
}

// Ping checks connectivity by listing available models, matching what an
// operator would verify with a bare API call.
func (c *Client) Ping(ctx context.Context) error {
	if strings.TrimSpace(c.cfg.APIKey) == "" {
		return errors.New("OpenAI API key is required")
	}

	client, err := c.sdkClient()
	if err != nil {
		return fmt.Errorf("client setup: %w", err)
	}

	ctx, cancel := retry.EnsureTimeout(ctx, retry.PingTimeout)
	defer cancel()

	if _, err := client.Models.List(ctx); err != nil {
		return fmt.Errorf("openai connectivity check: %w", err)
	}
	return nil
}

// extractText returns the first choice's message content.
func extractText(resp *openai.ChatCompletion) string {
	if resp == nil || len(resp.Choices) == 0 {
		return ""
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content)
}
