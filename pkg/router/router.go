// Package router dispatches canonical requests to provider adapters.
//
// A call flows through the translation core in a fixed order: the caller's
// provider-prefixed model string is rewritten into (provider, vendor model),
// the registry supplies the provider's endpoint and credential source, the
// credential is resolved (failing before any network I/O when absent), and
// the adapter transforms, invokes, and normalizes the call. Each call is an
// independent, stateless unit of work; the Router holds only read-only state
// after construction and is safe for unbounded concurrent use.
package router

import (
	"context"
	"fmt"
	"time"

	"github.com/weiche-dev/weiche/pkg/api"
	"github.com/weiche-dev/weiche/pkg/config"
	"github.com/weiche-dev/weiche/pkg/credential"
	"github.com/weiche-dev/weiche/pkg/debug"
	"github.com/weiche-dev/weiche/pkg/modelid"
	"github.com/weiche-dev/weiche/pkg/observability"
	"github.com/weiche-dev/weiche/pkg/provider"
	"github.com/weiche-dev/weiche/pkg/provider/nvidia"
	"github.com/weiche-dev/weiche/pkg/provider/openai"
	"github.com/weiche-dev/weiche/pkg/provider/openaicompat"
)

// DefaultRegistry returns a registry populated with the built-in providers.
func DefaultRegistry() *provider.Registry {
	reg := provider.NewRegistry()
	defaultEndpoints := provider.Endpoints{
		Chat:       openaicompat.DefaultChatPath,
		Embeddings: openaicompat.DefaultEmbeddingsPath,
		Models:     openaicompat.DefaultModelsPath,
	}

	entries := []provider.Entry{
		{
			Name:          nvidia.ProviderName,
			BaseURL:       nvidia.DefaultBaseURL,
			CredentialEnv: nvidia.CredentialEnv,
			Endpoints:     defaultEndpoints,
			New:           nvidia.New,
		},
		{
			Name:          openai.ProviderName,
			BaseURL:       openai.DefaultBaseURL,
			CredentialEnv: openai.CredentialEnv,
			Endpoints:     defaultEndpoints,
			New:           openai.New,
		},
	}
	for _, e := range entries {
		// Registration of compiled-in entries cannot collide.
		if err := reg.Register(e); err != nil {
			panic(err)
		}
	}
	return reg
}

// Router routes canonical requests to the adapter selected by the model's
// provider prefix.
type Router struct {
	registry  *provider.Registry
	providers map[string]provider.Provider

	// keys holds the configured default credential per provider
	// (config api_key). A per-request explicit key wins over it; it wins
	// over the provider's environment variable.
	keys map[string]string
}

// New creates a Router with the built-in provider registry.
func New(cfg *config.Config) (*Router, error) {
	return NewWithRegistry(cfg, DefaultRegistry())
}

// NewWithRegistry creates a Router over an explicit registry. All adapters
// are constructed here; the provider map is never mutated afterwards.
func NewWithRegistry(cfg *config.Config, reg *provider.Registry) (*Router, error) {
	if cfg == nil {
		defaults := config.Defaults()
		cfg = &defaults
	}

	// Reject config entries that reference nothing in the registry early,
	// instead of silently ignoring a typo until call time.
	for name := range cfg.Providers {
		if _, err := reg.Lookup(name); err != nil {
			return nil, fmt.Errorf("config references unknown provider %q", name)
		}
	}

	providers := make(map[string]provider.Provider)
	keys := make(map[string]string)
	for _, name := range reg.Names() {
		entry, err := reg.Lookup(name)
		if err != nil {
			return nil, err
		}

		opts := provider.Options{
			BaseURL:   entry.BaseURL,
			Timeout:   cfg.Client.Timeout,
			Endpoints: entry.Endpoints,
		}
		if pc, ok := cfg.Providers[name]; ok {
			if pc.BaseURL != "" {
				opts.BaseURL = pc.BaseURL
			}
			if pc.APIKey != "" {
				opts.APIKey = pc.APIKey
				keys[name] = pc.APIKey
			}
			if pc.Timeout != 0 {
				opts.Timeout = pc.Timeout
			}
		}

		p, err := entry.New(opts)
		if err != nil {
			return nil, fmt.Errorf("initialize provider %q: %w", name, err)
		}
		providers[name] = p
		debug.Log("router", "provider initialized", "provider", name, "base_url", opts.BaseURL)
	}

	return &Router{registry: reg, providers: providers, keys: keys}, nil
}

// resolveCredential applies the credential precedence for one call: a
// per-request explicit key, then the configured default key, then the
// provider's environment variable. Failure happens before any network I/O.
func (r *Router) resolveCredential(entry provider.Entry, explicitKey string) (credential.Credential, error) {
	if explicitKey == "" {
		explicitKey = r.keys[entry.Name]
	}
	return credential.Resolve(entry.Name, explicitKey, entry.CredentialEnv)
}

// Complete dispatches a chat completion. req.Model carries the routing
// prefix ("nvidia/databricks/dbrx-instruct"); only the vendor model id goes
// on the wire.
func (r *Router) Complete(ctx context.Context, req *api.ChatRequest) (*api.ChatResponse, error) {
	p, entry, id, err := r.route(req.Model, func(c provider.Capabilities) bool { return c.Chat }, "chat")
	if err != nil {
		return nil, err
	}

	cred, err := r.resolveCredential(entry, req.APIKey)
	if err != nil {
		return nil, err
	}

	reqCopy := *req
	reqCopy.Model = id.VendorModel
	reqCopy.APIKey = cred.Key

	start := time.Now()
	resp, err := p.Complete(ctx, &reqCopy)
	r.observe(entry.Name, "chat", start, err)
	if err != nil {
		return nil, tagProvider(err, entry.Name)
	}

	if resp.Usage != nil {
		observability.ProviderTokensTotal.WithLabelValues(entry.Name, resp.Model, "input").Add(float64(resp.Usage.PromptTokens))
		observability.ProviderTokensTotal.WithLabelValues(entry.Name, resp.Model, "output").Add(float64(resp.Usage.CompletionTokens))
	}
	return resp, nil
}

// Embedding dispatches an embedding request.
func (r *Router) Embedding(ctx context.Context, req *api.EmbeddingRequest) (*api.EmbeddingResponse, error) {
	p, entry, id, err := r.route(req.Model, func(c provider.Capabilities) bool { return c.Embeddings }, "embedding")
	if err != nil {
		return nil, err
	}

	cred, err := r.resolveCredential(entry, req.APIKey)
	if err != nil {
		return nil, err
	}

	reqCopy := *req
	reqCopy.Model = id.VendorModel
	reqCopy.APIKey = cred.Key

	start := time.Now()
	resp, err := p.Embed(ctx, &reqCopy)
	r.observe(entry.Name, "embedding", start, err)
	if err != nil {
		return nil, tagProvider(err, entry.Name)
	}

	observability.ProviderTokensTotal.WithLabelValues(entry.Name, resp.Model, "input").Add(float64(resp.Usage.PromptTokens))
	return resp, nil
}

// ListModels returns the model catalog of the named provider. The listing
// endpoint requires a credential like every other operation; resolution
// failure surfaces before any network I/O.
func (r *Router) ListModels(ctx context.Context, providerName string) ([]api.ModelInfo, error) {
	entry, err := r.registry.Lookup(providerName)
	if err != nil {
		return nil, err
	}
	p := r.providers[entry.Name]
	if !p.Capabilities().ModelListing {
		return nil, api.NewInvalidRequestError(0, fmt.Sprintf("provider %q does not support model listing", entry.Name))
	}

	cred, err := r.resolveCredential(entry, "")
	if err != nil {
		return nil, err
	}

	start := time.Now()
	models, err := p.ListModels(ctx, cred.Key)
	r.observe(entry.Name, "models", start, err)
	if err != nil {
		return nil, tagProvider(err, entry.Name)
	}
	return models, nil
}

// Providers returns the registered provider names.
func (r *Router) Providers() []string {
	return r.registry.Names()
}

// Close releases all adapter resources.
func (r *Router) Close() error {
	var firstErr error
	for _, p := range r.providers {
		if err := p.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// route rewrites the caller model string, resolves the registry entry, and
// gates on the adapter's capabilities. All failures here happen before any
// credential lookup or network I/O.
func (r *Router) route(model string, supported func(provider.Capabilities) bool, operation string) (provider.Provider, provider.Entry, modelid.ProviderModelID, error) {
	id, err := modelid.Split(model)
	if err != nil {
		return nil, provider.Entry{}, modelid.ProviderModelID{}, err
	}

	entry, err := r.registry.Lookup(id.Provider)
	if err != nil {
		return nil, provider.Entry{}, modelid.ProviderModelID{}, err
	}

	p := r.providers[entry.Name]
	if !supported(p.Capabilities()) {
		apiErr := api.NewInvalidRequestError(0, fmt.Sprintf("provider %q does not support %s", entry.Name, operation))
		apiErr.Provider = entry.Name
		return nil, provider.Entry{}, modelid.ProviderModelID{}, apiErr
	}

	debug.Log("router", "routed model", "model", model, "provider", id.Provider, "vendor_model", id.VendorModel, "operation", operation)
	return p, entry, id, nil
}

// observe records call metrics.
func (r *Router) observe(providerName, operation string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
		if apiErr := api.AsAPIError(err); apiErr != nil {
			observability.ProviderErrorsTotal.WithLabelValues(providerName, string(apiErr.Type)).Inc()
		} else {
			observability.ProviderErrorsTotal.WithLabelValues(providerName, string(api.ErrorTypeUnknown)).Inc()
		}
	}
	observability.ProviderRequestsTotal.WithLabelValues(providerName, operation, status).Inc()
	observability.ProviderLatency.WithLabelValues(providerName, operation).Observe(time.Since(start).Seconds())
}

// tagProvider stamps the provider name onto a canonical error for
// diagnostics; other error types pass through untouched.
func tagProvider(err error, providerName string) error {
	if apiErr := api.AsAPIError(err); apiErr != nil && apiErr.Provider == "" {
		apiErr.Provider = providerName
	}
	return err
}
