// Package anthropic provides the Anthropic prompt-execution client.
package anthropic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/adwhq/switchboard/internal/provider"
	"github.com/adwhq/switchboard/internal/retry"
	"github.com/adwhq/switchboard/internal/validation"
)

const (
	defaultModel     = "claude-sonnet-4-20250514"
	defaultMaxTokens = 4096
)

// Client implements the provider.Provider interface using Anthropic's
// Messages API.
type Client struct {
	cfg   provider.ClientConfig
	debug bool
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithDebugLogging enables verbose Anthropic payload logging.
func WithDebugLogging(enabled bool) ClientOption {
	return func(c *Client) {
		c.debug = enabled
	}
}

// NewClient creates a new Anthropic provider client.
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
	return provider.NameAnthropic
}

// sdkClient builds the underlying SDK client, validating any base URL
// override first.
func (c *Client) sdkClient() (anthropic.Client, error) {
	opts := []option.RequestOption{
		option.WithAPIKey(c.cfg.APIKey),
	}
	if c.cfg.BaseURL != "" {
		if err := validation.ValidateProviderURL(c.cfg.BaseURL); err != nil {
			return anthropic.Client{}, fmt.Errorf("invalid base URL: %w", err)
		}
		opts = append(opts, option.WithBaseURL(c.cfg.BaseURL))
	}
	return anthropic.NewClient(opts...), nil
}

// PromptCompletion implements provider.Provider using Anthropic's
// Messages API.
func (c *Client) PromptCompletion(ctx context.Context, params provider.PromptParams) (provider.PromptResult, error) {
	if strings.TrimSpace(c.cfg.APIKey) == "" {
		return provider.PromptResult{}, errors.New("Anthropic API key is required")
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

	reqParams := anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(strings.TrimSpace(params.Prompt))),
		},
	}

	if params.SystemPrompt != "" {
		reqParams.System = []anthropic.TextBlockParam{
			{Text: params.SystemPrompt},
		}
	}

	if params.Temperature != nil {
		reqParams.Temperature = anthropic.Float(*params.Temperature)
	} else if c.cfg.Temperature != nil {
		reqParams.Temperature = anthropic.Float(*c.cfg.Temperature)
	}

	if c.debug {
		slog.Debug("anthropic request",
			"model", model,
			"max_tokens", maxTokens,
			"request_id", params.RequestID,
		)
	}

	// Execute with retry
	var lastErr error
	for attempt := 1; attempt <= retry.MaxAttempts; attempt++ {
		slog.Info("anthropic request",
			"attempt", attempt,
			"model", model,
			"request_id", params.RequestID,
		)

		reqCtx, reqCancel := context.WithTimeout(ctx, retry.RequestTimeout)
		resp, err := client.Messages.New(reqCtx, reqParams)
		reqCancel()

		if err != nil {
			// Check if parent context is still valid
			if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
				lastErr = fmt.Errorf("anthropic request timeout: %w", err)
				slog.Warn("anthropic timeout, retrying", "attempt", attempt)
				if attempt < retry.MaxAttempts {
					retry.SleepWithBackoff(ctx, attempt)
					continue
				}
				return provider.PromptResult{}, lastErr
			}

			lastErr = fmt.Errorf("anthropic error: %w", err)
			if !retry.IsRetryable(err) {
				return provider.PromptResult{}, lastErr
			}

			slog.Warn("anthropic retryable error", "attempt", attempt, "error", err)
			if attempt < retry.MaxAttempts {
				retry.SleepWithBackoff(ctx, attempt)
				continue
			}
			return provider.PromptResult{}, lastErr
		}

		text := extractText(resp)
		if text == "" {
			lastErr = errors.New("anthropic returned empty response")
			if attempt < retry.MaxAttempts {
				retry.SleepWithBackoff(ctx, attempt)
			}
			continue
		}

		usage := &provider.Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.InputTokens + resp.Usage.OutputTokens,
		}

		slog.Info("anthropic request completed",
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

// Ping checks connectivity by listing available models.
func (c *Client) Ping(ctx context.Context) error {
	if strings.TrimSpace(c.cfg.APIKey) == "" {
		return errors.New("Anthropic API key is required")
	}

	client, err := c.sdkClient()
	if err != nil {
		return fmt.Errorf("client setup: %w", err)
	}

	ctx, cancel := retry.EnsureTimeout(ctx, retry.PingTimeout)
	defer cancel()

	if _, err := client.Models.List(ctx, anthropic.ModelListParams{}); err != nil {
		return fmt.Errorf("anthropic connectivity check: %w", err)
	}
	return nil
}

// extractText joins the text blocks of a response.
func extractText(resp *anthropic.Message) string {
	if resp == nil {
		return ""
	}

	var parts []string
	for _, block := range resp.Content {
		if block.Type == "text" {
			parts = append(parts, block.Text)
		}
	}
	return strings.TrimSpace(strings.Join(parts, "\n"))
}
