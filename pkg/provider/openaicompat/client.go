package openaicompat

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/weiche-dev/weiche/pkg/api"
	"github.com/weiche-dev/weiche/pkg/debug"
	"github.com/weiche-dev/weiche/pkg/provider"
)

// Default endpoint paths for OpenAI-compatible backends, relative to a base
// URL that already carries its version segment (e.g. ".../v1").
const (
	DefaultChatPath       = "/chat/completions"
	DefaultEmbeddingsPath = "/embeddings"
	DefaultModelsPath     = "/models"
)

// DefaultTimeout bounds a request when the adapter does not set one.
const DefaultTimeout = 120 * time.Second

// Client performs HTTP requests against an OpenAI-compatible backend. It is
// the transport invoker of the translation core: it attaches the resolved
// credential as a bearer header, performs exactly one attempt per call (no
// retries), and delegates all error classification to MapHTTPError and
// MapNetworkError.
//
// Provider adapters embed this Client and delegate their Complete/Embed/
// ListModels calls to it.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string

	// Endpoints holds the paths appended to the base URL. Defaults to the
	// standard OpenAI-compatible layout.
	Endpoints provider.Endpoints

	// ModelMapper is an optional function that transforms the model name
	// before sending it to the backend. If nil, the model name is used as-is.
	ModelMapper func(string) string
}

// NewClient creates a new Client for an OpenAI-compatible backend. apiKey is
// the default credential; a per-request key on the canonical request takes
// priority at call time.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	// Normalize: remove trailing slash from base URL.
	baseURL = strings.TrimRight(baseURL, "/")

	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		apiKey:  apiKey,
		Endpoints: provider.Endpoints{
			Chat:       DefaultChatPath,
			Embeddings: DefaultEmbeddingsPath,
			Models:     DefaultModelsPath,
		},
	}
}

// Complete performs a non-streaming call against the chat completions
// endpoint. req.Model must already be the vendor model id.
func (c *Client) Complete(ctx context.Context, req *api.ChatRequest) (*api.ChatResponse, error) {
	reqCopy := *req
	if c.ModelMapper != nil {
		reqCopy.Model = c.ModelMapper(reqCopy.Model)
	}

	chatReq := TranslateChat(&reqCopy)

	var chatResp ChatCompletionResponse
	if err := c.post(ctx, c.Endpoints.Chat, req.APIKey, chatReq, &chatResp); err != nil {
		return nil, err
	}

	return NormalizeChat(&chatResp), nil
}

// Embed performs a call against the embeddings endpoint.
func (c *Client) Embed(ctx context.Context, req *api.EmbeddingRequest) (*api.EmbeddingResponse, error) {
	reqCopy := *req
	if c.ModelMapper != nil {
		reqCopy.Model = c.ModelMapper(reqCopy.Model)
	}

	embReq := TranslateEmbedding(&reqCopy)

	var embResp EmbeddingResponse
	if err := c.post(ctx, c.Endpoints.Embeddings, req.APIKey, embReq, &embResp); err != nil {
		return nil, err
	}

	return NormalizeEmbedding(&embResp), nil
}

// ListModels queries the models listing endpoint. apiKey takes priority
// over the client's default credential, as in post.
func (c *Client) ListModels(ctx context.Context, apiKey string) ([]api.ModelInfo, error) {
	url := c.baseURL + c.Endpoints.Models
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, api.NewServerError(0, "failed to create HTTP request: "+err.Error())
	}
	c.setAuth(httpReq, apiKey)

	debug.Log("providers", "listing models", "url", url)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, MapNetworkError(err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return nil, MapHTTPError(httpResp)
	}

	var modelsResp ModelsResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&modelsResp); err != nil {
		return nil, api.NewInvalidRequestError(httpResp.StatusCode, "malformed models response: "+err.Error())
	}

	return NormalizeModels(&modelsResp), nil
}

// Close releases client resources.
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

// post marshals body, POSTs it to baseURL+path with a bearer credential, and
// decodes a 2xx response into out. Non-2xx statuses and transport failures
// come back as canonical APIErrors; a 2xx body that does not parse is an
// invalid-request failure carrying the decode error.
func (c *Client) post(ctx context.Context, path, apiKey string, body, out any) error {
	if path == "" {
		return api.NewInvalidRequestError(0, "operation not supported by this backend")
	}

	data, err := json.Marshal(body)
	if err != nil {
		return api.NewServerError(0, "failed to marshal request: "+err.Error())
	}

	url := c.baseURL + path
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return api.NewServerError(0, "failed to create HTTP request: "+err.Error())
	}

	httpReq.Header.Set("Content-Type", "application/json")
	c.setAuth(httpReq, apiKey)

	debug.Log("providers", "sending request", "method", http.MethodPost, "url", url, "body", debug.Truncate(string(data), 512))
	debug.Trace("providers", "request body", "body", string(data))

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return MapNetworkError(err)
	}
	defer httpResp.Body.Close()

	debug.Log("providers", "received response", "url", url, "status", httpResp.StatusCode)

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return MapHTTPError(httpResp)
	}

	if err := json.NewDecoder(httpResp.Body).Decode(out); err != nil {
		return api.NewInvalidRequestError(httpResp.StatusCode, "malformed backend response: "+err.Error())
	}

	return nil
}

// setAuth attaches the bearer credential, preferring the per-request key.
func (c *Client) setAuth(req *http.Request, apiKey string) {
	key := apiKey
	if key == "" {
		key = c.apiKey
	}
	if key != "" {
		req.Header.Set("Authorization", "Bearer "+key)
	}
}
