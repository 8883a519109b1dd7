package provider

import "fmt"

// Registry holds the constructed provider clients keyed by name. It is
// populated once at startup and read-only afterwards, so it is safe for
// concurrent use.
type Registry struct {
	providers map[Name]Provider
}

// NewRegistry creates a registry from the given clients. Nil entries are
// skipped.
func NewRegistry(providers ...Provider) *Registry {
	m := make(map[Name]Provider, len(providers))
	for _, p := range providers {
		if p != nil {
			m[p.Name()] = p
		}
	}
	return &Registry{providers: m}
}

// Get returns the client registered under name.
func (r *Registry) Get(name Name) (Provider, bool) {
	p, ok := r.providers[name]
	return p, ok
}

// ForResolution returns the client selected by a resolution. An
// unconfigured resolution yields an error carrying the diagnostic so the
// caller can report which flags and keys were missing.
func (r *Registry) ForResolution(res Resolution) (Provider, error) {
	if !res.Configured() {
		return nil, fmt.Errorf("no LLM provider configured: %s", res.Diagnostic)
	}
	p, ok := r.providers[res.Provider]
	if !ok {
		return nil, fmt.Errorf("provider %s is not registered", res.Provider)
	}
	return p, nil
}
