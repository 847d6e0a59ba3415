package openaicompat

// Wire types for OpenAI-compatible backends. Field presence matters: every
// optional parameter is a pointer with omitempty so that parameters absent
// from the canonical request never appear on the wire, and the body carries
// no keys beyond what the vendor contract names.

// ChatCompletionRequest is the request body for the chat completions endpoint.
type ChatCompletionRequest struct {
	Messages         []ChatMessage `json:"messages"`
	Model            string        `json:"model"`
	Temperature      *float64      `json:"temperature,omitempty"`
	TopP             *float64      `json:"top_p,omitempty"`
	MaxTokens        *int          `json:"max_tokens,omitempty"`
	PresencePenalty  *float64      `json:"presence_penalty,omitempty"`
	FrequencyPenalty *float64      `json:"frequency_penalty,omitempty"`
	Stop             []string      `json:"stop,omitempty"`
	User             string        `json:"user,omitempty"`
}

// ChatMessage represents a message in the chat completions format.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatCompletionResponse is the non-streaming chat completions response.
type ChatCompletionResponse struct {
	ID      string       `json:"id"`
	Object  string       `json:"object"`
	Created int64        `json:"created"`
	Model   string       `json:"model"`
	Choices []ChatChoice `json:"choices"`
	Usage   *ChatUsage   `json:"usage,omitempty"`
}

// ChatChoice represents one completion choice.
type ChatChoice struct {
	Index        int         `json:"index"`
	Message      ChatMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

// ChatUsage holds token usage as reported by the backend.
type ChatUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// EmbeddingRequest is the request body for the embeddings endpoint. Input
// holds a single string or a []string batch.
type EmbeddingRequest struct {
	Input          any    `json:"input"`
	Model          string `json:"model"`
	InputType      string `json:"input_type,omitempty"`
	EncodingFormat string `json:"encoding_format,omitempty"`
	Dimensions     *int   `json:"dimensions,omitempty"`
}

// EmbeddingResponse is the response from the embeddings endpoint.
type EmbeddingResponse struct {
	Object string           `json:"object"`
	Model  string           `json:"model"`
	Data   []EmbeddingDatum `json:"data"`
	Usage  ChatUsage        `json:"usage"`
}

// EmbeddingDatum is one vector entry in an embeddings response.
type EmbeddingDatum struct {
	Object    string    `json:"object,omitempty"`
	Embedding []float64 `json:"embedding"`
	Index     int       `json:"index"`
}

// ErrorResponse is the error format returned by OpenAI-compatible backends.
type ErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    any    `json:"code"`
	} `json:"error"`
}

// ModelsResponse is the response from the models listing endpoint.
type ModelsResponse struct {
	Object string  `json:"object"`
	Data   []Model `json:"data"`
}

// Model represents a model in the models listing.
type Model struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Created int64  `json:"created"`
	OwnedBy string `json:"owned_by"`
}
