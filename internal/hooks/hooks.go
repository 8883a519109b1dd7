// Package hooks implements the workflow lifecycle hooks. A prompt hook
// sits on the critical path and fails hard when no provider is
// configured; the completion-message hook is decorative and degrades to
// a silent skip.
package hooks

import (
	"context"
	"log/slog"
	"strings"

	"github.com/adwhq/switchboard/internal/agent"
)

const completionPrompt = "Write a single short friendly sentence announcing that the " +
	"automated workflow run finished successfully. Output only the sentence."

// completionMaxTokens keeps the decorative notice cheap.
const completionMaxTokens = 100

// Runner executes lifecycle hooks through the prompt executor.
type Runner struct {
	executor *agent.Executor
}

// NewRunner creates a hook runner.
func NewRunner(executor *agent.Executor) *Runner {
	return &Runner{executor: executor}
}

// Prompt runs a workflow prompt hook. This hook gates real work, so an
// unconfigured provider or an execution failure is returned to the
// caller as a fatal error.
func (r *Runner) Prompt(ctx context.Context, text string) (string, error) {
	resp, err := r.executor.Execute(ctx, agent.PromptRequest{Prompt: text})
	if err != nil {
		return "", err
	}
	return resp.Output, nil
}

// CompletionMessage generates the end-of-run notice. It never fails the
// workflow: when no provider is configured or the request errors, it
// logs and reports ok=false so the caller can skip the notice.
func (r *Runner) CompletionMessage(ctx context.Context) (string, bool) {
	resp, err := r.executor.Execute(ctx, agent.PromptRequest{
		Prompt:    completionPrompt,
		MaxTokens: completionMaxTokens,
	})
	if err != nil {
		slog.Warn("skipping completion message", "error", err)
		return "", false
	}
	message := strings.TrimSpace(resp.Output)
	if message == "" {
		slog.Warn("skipping completion message", "error", "empty response")
		return "", false
	}
	return message, true
}
