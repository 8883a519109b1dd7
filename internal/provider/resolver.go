package provider

import "fmt"

// ResolverConfig is a read-only snapshot of provider configuration taken
// once per resolution. The configuration loader applies the defaulting
// rule (Anthropic enabled unless explicitly disabled, OpenAI disabled
// unless explicitly enabled) before constructing one, so every field here
// is concrete and Resolve performs no implicit defaulting.
type ResolverConfig struct {
	AnthropicEnabled    bool
	OpenAIEnabled       bool
	AnthropicKeyPresent bool
	OpenAIKeyPresent    bool
}

// Resolution is the outcome of provider resolution: either a chosen
// provider, or no usable provider plus a diagnostic describing the state
// of every flag and key so callers can render an actionable error.
type Resolution struct {
	Provider   Name
	Diagnostic string
}

// Configured reports whether a provider was selected.
func (r Resolution) Configured() bool {
	return r.Provider != ""
}

// Resolve picks the LLM backend for the given snapshot.
//
// Priority is fixed and total: Anthropic wins whenever it is enabled and
// keyed, OpenAI serves as the fallback. A provider that is enabled but
// missing its key is not eligible; it contributes to the diagnostic only.
// Resolve is a pure function of its input and never fails. An
// unconfigured outcome is a routine condition every caller must handle,
// not an error.
func Resolve(cfg ResolverConfig) Resolution {
	if cfg.AnthropicEnabled && cfg.AnthropicKeyPresent {
		return Resolution{Provider: NameAnthropic}
	}
	if cfg.OpenAIEnabled && cfg.OpenAIKeyPresent {
		return Resolution{Provider: NameOpenAI}
	}
	return Resolution{Diagnostic: diagnostic(cfg)}
}

// diagnostic enumerates the enabled/key state of both providers.
func diagnostic(cfg ResolverConfig) string {
	return fmt.Sprintf("anthropic: enabled=%t, key=%s; openai: enabled=%t, key=%s",
		cfg.AnthropicEnabled, keyState(cfg.AnthropicKeyPresent),
		cfg.OpenAIEnabled, keyState(cfg.OpenAIKeyPresent))
}

func keyState(present bool) string {
	if present {
		return "present"
	}
	return "missing"
}
