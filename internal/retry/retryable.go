package retry

import (
	"context"
	"errors"
	"strings"
)

// IsRetryable checks if an error should trigger a retry attempt. It
// classifies the common failure shapes of the Anthropic and OpenAI APIs:
// context cancellation, authentication and invalid-request errors are
// final; rate limits, server errors and network issues are retryable.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	errStr := strings.ToLower(err.Error())

	// Authentication/authorization errors. An invalid key is a
	// configuration problem, retrying cannot fix it.
	authPatterns := []string{
		"401", "403",
		"invalid_api_key", "authentication", "permission",
		"unauthorized", "unauthenticated", "not_found_error", "permission_denied",
	}
	for _, p := range authPatterns {
		if strings.Contains(errStr, p) {
			return false
		}
	}

	// Invalid request errors.
	invalidPatterns := []string{
		"400", "422",
		"invalid_request", "invalid_argument", "malformed", "validation",
	}
	for _, p := range invalidPatterns {
		if strings.Contains(errStr, p) {
			return false
		}
	}

	// Rate limits, server errors, network issues. 529 is Anthropic's
	// overloaded status.
	retryablePatterns := []string{
		"429", "500", "502", "503", "504", "529",
		"rate", "overloaded", "server_error",
		"connection", "timeout", "temporary", "eof",
		"tls handshake", "no such host", "api_connection",
	}
	for _, p := range retryablePatterns {
		if strings.Contains(errStr, p) {
			return true
		}
	}

	return false
}
