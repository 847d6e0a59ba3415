// Package credential resolves the API key for an outbound provider call.
//
// Resolution order: an explicit caller-supplied key wins; otherwise the
// provider's environment-scoped variable (e.g. NVIDIA_API_KEY); if neither
// is set the call fails with an authentication error before any network I/O
// happens. A request must never leave the process without a credential.
package credential

import (
	"fmt"
	"os"

	"github.com/weiche-dev/weiche/pkg/api"
)

// Source records where a credential came from.
type Source string

const (
	SourceExplicit    Source = "explicit"
	SourceEnvironment Source = "environment"
	SourceNone        Source = "none"
)

// Credential is an opaque secret plus its origin.
type Credential struct {
	Key    string
	Source Source
}

// Resolve determines the API key for a call to the named provider. envVar is
// the provider-specific environment variable consulted when no explicit key
// is given.
func Resolve(provider, explicitKey, envVar string) (Credential, error) {
	if explicitKey != "" {
		return Credential{Key: explicitKey, Source: SourceExplicit}, nil
	}
	if envVar != "" {
		if key := os.Getenv(envVar); key != "" {
			return Credential{Key: key, Source: SourceEnvironment}, nil
		}
	}
	err := api.NewAuthenticationError(0, fmt.Sprintf(
		"missing credential for provider %q: pass an API key or set %s", provider, envVar))
	err.Provider = provider
	return Credential{Source: SourceNone}, err
}
