package provider

import "strings"

// SelectModel returns the model to use based on priority:
// 1. Override model (if non-empty after trimming)
// 2. Configured model (if non-empty)
// 3. Default model
func SelectModel(configModel, defaultModel, overrideModel string) string {
	if override := strings.TrimSpace(overrideModel); override != "" {
		return override
	}
	if configModel != "" {
		return configModel
	}
	return defaultModel
}

// openAIEquivalents maps Claude model identifiers (abstract names and full
// model IDs) to the OpenAI model used when resolution falls back to OpenAI.
var openAIEquivalents = map[string]string{
	// Abstract names
	"sonnet": "gpt-4o",
	"opus":   "gpt-4o",
	"haiku":  "gpt-4o-mini",
	// Full Claude model IDs
	"claude-3-5-sonnet-20241022": "gpt-4o",
	"claude-3-5-haiku-20241022":  "gpt-4o-mini",
	"claude-3-opus-20240229":     "gpt-4o",
	"claude-sonnet-4-20250514":   "gpt-4o",
	"claude-opus-4-5-20251101":   "gpt-4o",
}

// OpenAIModelFor returns the OpenAI equivalent for a Claude model name.
// Unknown models map to the general-purpose default.
func OpenAIModelFor(claudeModel string) string {
	if m, ok := openAIEquivalents[claudeModel]; ok {
		return m
	}
	return "gpt-4o"
}
