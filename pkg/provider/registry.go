package provider

import (
	"fmt"

	"github.com/weiche-dev/weiche/pkg/api"
)

// Endpoints holds the paths of the vendor's API surface, relative to the
// base URL (which includes any version segment, e.g. ".../v1").
type Endpoints struct {
	Chat       string
	Embeddings string
	Models     string
}

// Entry describes one registered provider: where its backend lives, which
// environment variable holds its credential, and how to build its adapter.
type Entry struct {
	// Name is the routing prefix callers use, e.g. "nvidia".
	Name string

	// BaseURL is the vendor's default API root.
	BaseURL string

	// CredentialEnv is the environment variable consulted when no explicit
	// API key accompanies a call, e.g. "NVIDIA_API_KEY".
	CredentialEnv string

	// Endpoints lists the supported paths. An empty path means the
	// operation is unsupported.
	Endpoints Endpoints

	// New builds the adapter for this provider.
	New func(opts Options) (Provider, error)
}

// Registry maps provider names to entries. It is populated once at startup
// and read-only afterwards, so concurrent Lookup calls need no locking.
type Registry struct {
	entries map[string]Entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// Register adds an entry. Registration happens during initialization, before
// any lookups; duplicate or incomplete entries are programmer errors.
func (r *Registry) Register(e Entry) error {
	if e.Name == "" {
		return fmt.Errorf("registry: entry name is required")
	}
	if e.New == nil {
		return fmt.Errorf("registry: entry %q has no factory", e.Name)
	}
	if _, exists := r.entries[e.Name]; exists {
		return fmt.Errorf("registry: provider %q already registered", e.Name)
	}
	r.entries[e.Name] = e
	return nil
}

// Lookup resolves a provider name to its entry. Unknown providers fail with
// an invalid-request error, matching the rewriter's rejection of unprefixed
// model strings.
func (r *Registry) Lookup(name string) (Entry, error) {
	e, ok := r.entries[name]
	if !ok {
		err := api.NewInvalidRequestError(0, fmt.Sprintf("unknown LLM provider %q", name))
		err.Provider = name
		return Entry{}, err
	}
	return e, nil
}

// Names returns the registered provider names, for diagnostics.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	return names
}
