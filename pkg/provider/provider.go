package provider

import (
	"context"
	"time"

	"github.com/weiche-dev/weiche/pkg/api"
)

// Provider abstracts an LLM inference backend. Adapters translate canonical
// requests to their vendor's wire format, perform the HTTP call, and
// normalize the vendor's response (or error) back into canonical shapes.
//
// Implementations must be safe for concurrent use by multiple goroutines.
type Provider interface {
	// Name returns the provider identifier (e.g., "nvidia", "openai").
	Name() string

	// Capabilities returns what this provider supports.
	Capabilities() Capabilities

	// Complete performs a non-streaming chat completion. req.Model must
	// already be the vendor model id, with no routing prefix.
	Complete(ctx context.Context, req *api.ChatRequest) (*api.ChatResponse, error)

	// Embed produces embeddings for the request input.
	Embed(ctx context.Context, req *api.EmbeddingRequest) (*api.EmbeddingResponse, error)

	// ListModels returns available models from the backend. apiKey is the
	// resolved credential for the call.
	ListModels(ctx context.Context, apiKey string) ([]api.ModelInfo, error)

	// Close releases provider resources (HTTP clients, connections).
	Close() error
}

// Capabilities declares which operations a backend supports. The router
// rejects unsupported operations before any network I/O.
type Capabilities struct {
	Chat         bool
	Embeddings   bool
	ModelListing bool
}

// Options carries the per-provider settings an adapter factory receives.
// Zero-value fields fall back to the registry entry's defaults.
type Options struct {
	// BaseURL overrides the provider's default endpoint, e.g. for a
	// self-hosted or proxied deployment.
	BaseURL string

	// APIKey is the default credential; a per-request explicit key or the
	// provider's environment variable may supersede it at call time.
	APIKey string

	// Timeout bounds each HTTP request. Zero means the adapter default.
	Timeout time.Duration

	// Endpoints overrides the adapter's default API paths, e.g. for
	// backends mounted behind a path-rewriting proxy.
	Endpoints Endpoints
}
