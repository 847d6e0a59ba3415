package openaicompat

import (
	"github.com/weiche-dev/weiche/pkg/api"
)

// NormalizeChat converts a backend chat completions response into the
// canonical shape. The mapping is a pure value transformation: normalizing
// the same payload twice yields identical results.
func NormalizeChat(resp *ChatCompletionResponse) *api.ChatResponse {
	out := &api.ChatResponse{
		ID:      resp.ID,
		Object:  resp.Object,
		Created: resp.Created,
		Model:   resp.Model,
	}

	out.Choices = make([]api.Choice, 0, len(resp.Choices))
	for _, c := range resp.Choices {
		out.Choices = append(out.Choices, api.Choice{
			Index: c.Index,
			Message: api.Message{
				Role:    c.Message.Role,
				Content: c.Message.Content,
			},
			FinishReason: c.FinishReason,
		})
	}

	if resp.Usage != nil {
		out.Usage = &api.Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		}
	}

	return out
}

// NormalizeEmbedding converts a backend embeddings response into the
// canonical shape, preserving entry order and indexes.
func NormalizeEmbedding(resp *EmbeddingResponse) *api.EmbeddingResponse {
	out := &api.EmbeddingResponse{
		Object: resp.Object,
		Model:  resp.Model,
		Usage: api.Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}

	out.Data = make([]api.Embedding, 0, len(resp.Data))
	for _, d := range resp.Data {
		out.Data = append(out.Data, api.Embedding{
			Object:    d.Object,
			Embedding: d.Embedding,
			Index:     d.Index,
		})
	}

	return out
}

// NormalizeModels converts a backend models listing into canonical
// ModelInfo entries.
func NormalizeModels(resp *ModelsResponse) []api.ModelInfo {
	models := make([]api.ModelInfo, 0, len(resp.Data))
	for _, m := range resp.Data {
		models = append(models, api.ModelInfo{
			ID:      m.ID,
			Object:  m.Object,
			Created: m.Created,
			OwnedBy: m.OwnedBy,
		})
	}
	return models
}
