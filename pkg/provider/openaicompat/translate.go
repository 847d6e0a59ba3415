package openaicompat

import (
	"github.com/weiche-dev/weiche/pkg/api"
)

// TranslateChat converts a canonical ChatRequest into the wire body for the
// chat completions endpoint. Optional parameters present on the request are
// copied verbatim under their canonical names; absent parameters stay off
// the wire. req.Model must already be the vendor model id.
func TranslateChat(req *api.ChatRequest) ChatCompletionRequest {
	cr := ChatCompletionRequest{
		Model:            req.Model,
		Temperature:      req.Temperature,
		TopP:             req.TopP,
		MaxTokens:        req.MaxTokens,
		PresencePenalty:  req.PresencePenalty,
		FrequencyPenalty: req.FrequencyPenalty,
		Stop:             req.Stop,
		User:             req.User,
	}

	// Messages keep their order; only role and content cross the wire.
	cr.Messages = make([]ChatMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		cr.Messages = append(cr.Messages, ChatMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	return cr
}

// TranslateEmbedding converts a canonical EmbeddingRequest into the wire
// body for the embeddings endpoint.
func TranslateEmbedding(req *api.EmbeddingRequest) EmbeddingRequest {
	return EmbeddingRequest{
		Input:          req.Input,
		Model:          req.Model,
		InputType:      req.InputType,
		EncodingFormat: req.EncodingFormat,
		Dimensions:     req.Dimensions,
	}
}
