package api

// Message is a single entry in a chat conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the canonical chat completion request. Optional sampling
// parameters are pointers: a nil parameter is omitted from the wire body,
// never defaulted.
type ChatRequest struct {
	// Model is the provider-prefixed identifier, e.g.
	// "nvidia/databricks/dbrx-instruct". The segment before the first "/"
	// selects the provider; the remainder is sent to the vendor verbatim.
	Model string `json:"model"`

	Messages []Message `json:"messages"`

	Temperature      *float64 `json:"temperature,omitempty"`
	TopP             *float64 `json:"top_p,omitempty"`
	MaxTokens        *int     `json:"max_tokens,omitempty"`
	PresencePenalty  *float64 `json:"presence_penalty,omitempty"`
	FrequencyPenalty *float64 `json:"frequency_penalty,omitempty"`
	Stop             []string `json:"stop,omitempty"`
	User             string   `json:"user,omitempty"`

	// APIKey overrides the environment-scoped credential for this call.
	// Never serialized.
	APIKey string `json:"-"`
}

// Choice is one completion alternative in a chat response.
type Choice struct {
	Index        int     `json:"index"`
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason,omitempty"`
}

// ChatResponse is the canonical chat completion result.
type ChatResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object,omitempty"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   *Usage   `json:"usage,omitempty"`
}

// EmbeddingRequest is the canonical embedding request. Input holds a single
// text (string) or a batch ([]string).
type EmbeddingRequest struct {
	// Model is the provider-prefixed identifier, e.g.
	// "nvidia/nv-embedqa-e5-v5".
	Model string `json:"model"`

	Input any `json:"input"`

	// InputType distinguishes passage vs. query embeddings on vendors that
	// support asymmetric models.
	InputType      string `json:"input_type,omitempty"`
	EncodingFormat string `json:"encoding_format,omitempty"`
	Dimensions     *int   `json:"dimensions,omitempty"`

	// APIKey overrides the environment-scoped credential for this call.
	// Never serialized.
	APIKey string `json:"-"`
}

// Embedding is a single vector in an embedding response, ordered by Index.
type Embedding struct {
	Object    string    `json:"object,omitempty"`
	Embedding []float64 `json:"embedding"`
	Index     int       `json:"index"`
}

// EmbeddingResponse is the canonical embedding result.
type EmbeddingResponse struct {
	Object string      `json:"object,omitempty"`
	Model  string      `json:"model"`
	Data   []Embedding `json:"data"`
	Usage  Usage       `json:"usage"`
}

// Usage holds token accounting as reported by the vendor.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ModelInfo describes one model from a provider's models listing.
type ModelInfo struct {
	ID      string `json:"id"`
	Object  string `json:"object,omitempty"`
	Created int64  `json:"created,omitempty"`
	OwnedBy string `json:"owned_by,omitempty"`
}
