package provider

// Name identifies an LLM backend. Values are produced by Resolve; callers
// treat them as opaque identifiers.
type Name string

// The two supported backends.
const (
	NameAnthropic Name = "anthropic"
	NameOpenAI    Name = "openai"
)
