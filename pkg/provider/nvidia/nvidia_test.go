package nvidia

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/weiche-dev/weiche/pkg/api"
	"github.com/weiche-dev/weiche/pkg/provider"
	"github.com/weiche-dev/weiche/pkg/provider/openaicompat"
)

func TestProvider_Name(t *testing.T) {
	p, err := New(provider.Options{BaseURL: "http://localhost:1"})
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}
	defer p.Close()

	if p.Name() != "nvidia" {
		t.Errorf("expected name %q, got %q", "nvidia", p.Name())
	}
}

func TestProvider_Capabilities(t *testing.T) {
	p, err := New(provider.Options{BaseURL: "http://localhost:1"})
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}
	defer p.Close()

	caps := p.Capabilities()
	if !caps.Chat {
		t.Error("expected chat to be supported")
	}
	if !caps.Embeddings {
		t.Error("expected embeddings to be supported")
	}
	if !caps.ModelListing {
		t.Error("expected model listing to be supported")
	}
}

func TestProvider_Complete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("expected path /chat/completions, got %s", r.URL.Path)
		}
		resp := openaicompat.ChatCompletionResponse{
			ID:    "cmpl-nim-1",
			Model: "databricks/dbrx-instruct",
			Choices: []openaicompat.ChatChoice{
				{Message: openaicompat.ChatMessage{Role: "assistant", Content: "Hello from NIM"}, FinishReason: "stop"},
			},
			Usage: &openaicompat.ChatUsage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	p, err := New(provider.Options{BaseURL: srv.URL, APIKey: "nim-key"})
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}
	defer p.Close()

	resp, err := p.Complete(context.Background(), &api.ChatRequest{
		Model:    "databricks/dbrx-instruct",
		Messages: []api.Message{{Role: "user", Content: "Hi"}},
	})
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if resp.Choices[0].Message.Content != "Hello from NIM" {
		t.Errorf("content = %q", resp.Choices[0].Message.Content)
	}
	if resp.Model != "databricks/dbrx-instruct" {
		t.Errorf("model = %q", resp.Model)
	}
}

func TestProvider_Embed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/embeddings" {
			t.Errorf("expected path /embeddings, got %s", r.URL.Path)
		}
		resp := openaicompat.EmbeddingResponse{
			Object: "list",
			Model:  "nv-embedqa-e5-v5",
			Data:   []openaicompat.EmbeddingDatum{{Embedding: []float64{0.1, 0.2, 0.3}, Index: 0}},
			Usage:  openaicompat.ChatUsage{PromptTokens: 10, TotalTokens: 10},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	p, err := New(provider.Options{BaseURL: srv.URL, APIKey: "nim-key"})
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}
	defer p.Close()

	resp, err := p.Embed(context.Background(), &api.EmbeddingRequest{
		Model:     "nv-embedqa-e5-v5",
		Input:     "What is the meaning of life?",
		InputType: "passage",
	})
	if err != nil {
		t.Fatalf("Embed failed: %v", err)
	}
	if len(resp.Data) != 1 {
		t.Fatalf("got %d embeddings, want 1", len(resp.Data))
	}
}

func TestProvider_DefaultBaseURL(t *testing.T) {
	if DefaultBaseURL != "https://integrate.api.nvidia.com/v1" {
		t.Errorf("DefaultBaseURL = %q", DefaultBaseURL)
	}
	if CredentialEnv != "NVIDIA_API_KEY" {
		t.Errorf("CredentialEnv = %q", CredentialEnv)
	}
}
