// Package openai implements the Provider interface for the OpenAI API.
// The OpenAI endpoints are the reference for the openaicompat wire format,
// so the adapter is a thin delegation to the shared client.
package openai

import (
	"context"

	"github.com/weiche-dev/weiche/pkg/api"
	"github.com/weiche-dev/weiche/pkg/provider"
	"github.com/weiche-dev/weiche/pkg/provider/openaicompat"
)

const (
	// ProviderName is the routing prefix for this provider.
	ProviderName = "openai"

	// DefaultBaseURL is the OpenAI API endpoint.
	DefaultBaseURL = "https://api.openai.com/v1"

	// CredentialEnv is the environment variable holding the API key.
	CredentialEnv = "OPENAI_API_KEY"
)

// Provider adapts the OpenAI API to the provider.Provider interface.
type Provider struct {
	client *openaicompat.Client
	caps   provider.Capabilities
}

var _ provider.Provider = (*Provider)(nil)

// New creates an OpenAI adapter.
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

// Embed produces embeddings via the embeddings endpoint.
func (p *Provider) Embed(ctx context.Context, req *api.EmbeddingRequest) (*api.EmbeddingResponse, error) {
	return p.client.Embed(ctx, req)
}

// ListModels returns the available models.
func (p *Provider) ListModels(ctx context.Context, apiKey string) ([]api.ModelInfo, error) {
	return p.client.ListModels(ctx, apiKey)
}

// Close releases provider resources.
func (p *Provider) Close() error {
	return p.client.Close()
}
