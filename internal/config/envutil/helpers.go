// Package envutil provides typed environment variable helpers with
// default fallbacks.
package envutil

import (
	"log/slog"
	"os"
	"strings"
)

// GetStringEnv reads a string environment variable with a default fallback.
func GetStringEnv(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultValue
}

// GetBoolEnv reads a boolean environment variable with a default fallback.
// Accepts: "true", "1" (true), "false", "0" (false), case-insensitive.
// Logs a warning if the value is invalid.
func GetBoolEnv(key string, defaultValue bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}

	switch strings.ToLower(val) {
	case "true", "1":
		return true
	case "false", "0":
		return false
	default:
		slog.Warn("invalid boolean value for environment variable",
			"key", key,
			"value", val,
			"default", defaultValue)
		return defaultValue
	}
}
