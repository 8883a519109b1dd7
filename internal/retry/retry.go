// Package retry provides shared retry utilities for the provider clients.
package retry

import (
	"context"
	"time"
)

// Defaults shared by both provider clients.
const (
	// MaxAttempts is the number of attempts before giving up.
	MaxAttempts = 3

	// RequestTimeout bounds a single prompt-completion request.
	RequestTimeout = 2 * time.Minute

	// PingTimeout bounds a connectivity check.
	PingTimeout = 30 * time.Second

	// BackoffBase is the base duration for exponential backoff.
	BackoffBase = 250 * time.Millisecond
)

// SleepWithBackoff sleeps with exponential backoff, returning early when
// the context is done. The delay is BackoffBase * 2^(attempt-1).
func SleepWithBackoff(ctx context.Context, attempt int) {
	delay := BackoffBase * time.Duration(1<<uint(attempt-1))
	select {
	case <-ctx.Done():
	case <-time.After(delay):
	}
}

// EnsureTimeout returns a context with the given timeout if none exists.
// If the context already carries a deadline it is returned unchanged with
// a noop cancel.
func EnsureTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}
