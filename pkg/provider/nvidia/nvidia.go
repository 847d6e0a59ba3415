// Package nvidia implements the Provider interface for NVIDIA NIM.
// NIM exposes an OpenAI-compatible API at integrate.api.nvidia.com, so this
// adapter delegates all HTTP communication to the shared openaicompat.Client.
// Embedding models accept the NIM-specific input_type parameter, which the
// shared translation already carries through.
package nvidia

import (
	"context"

	"github.com/weiche-dev/weiche/pkg/api"
	"github.com/weiche-dev/weiche/pkg/provider"
	"github.com/weiche-dev/weiche/pkg/provider/openaicompat"
)

const (
	// ProviderName is the routing prefix for this provider.
	ProviderName = "nvidia"

	// DefaultBaseURL is the NVIDIA NIM API endpoint.
	DefaultBaseURL = "https://integrate.api.nvidia.com/v1"

	// CredentialEnv is the environment variable holding the API key.
	CredentialEnv = "NVIDIA_API_KEY"
)

// Provider adapts NVIDIA NIM to the provider.Provider interface.
type Provider struct {
	client *openaicompat.Client
	caps   provider.Capabilities
}

var _ provider.Provider = (*Provider)(nil)

// New creates a NVIDIA NIM adapter. Zero-value options fall back to the
// public NIM endpoint and openaicompat.DefaultTimeout.
func New(opts provider.Options) (provider.Provider, error) {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client := openaicompat.NewClient(baseURL, opts.APIKey, opts.Timeout)
	if opts.Endpoints != (provider.Endpoints{}) {
		client.Endpoints = opts.Endpoints
	}

	return &Provider{
		client: client,
		caps: provider.Capabilities{
			Chat:         true,
			Embeddings:   true,
			ModelListing: true,
		},
	}, nil
}

// Name returns the provider identifier.
func (p *Provider) Name() string {
	return ProviderName
}

// Capabilities returns what this provider supports.
func (p *Provider) Capabilities() provider.Capabilities {
	return p.caps
}

// Complete performs a non-streaming chat completion.
func (p *Provider) Complete(ctx context.Context, req *api.ChatRequest) (*api.ChatResponse, error) {
	return p.client.Complete(ctx, req)
}

// Embed produces embeddings via the NIM embeddings endpoint.
func (p *Provider) Embed(ctx context.Context, req *api.EmbeddingRequest) (*api.EmbeddingResponse, error) {
	return p.client.Embed(ctx, req)
}

// ListModels returns the NIM model catalog.
func (p *Provider) ListModels(ctx context.Context, apiKey string) ([]api.ModelInfo, error) {
	return p.client.ListModels(ctx, apiKey)
}

// Close releases provider resources.
func (p *Provider) Close() error {
	return p.client.Close()
}
