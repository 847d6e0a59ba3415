package openai

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

	if p.Name() != "openai" {
		t.Errorf("expected name %q, got %q", "openai", p.Name())
	}
}

func TestProvider_Complete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := openaicompat.ChatCompletionResponse{
			ID:    "chatcmpl-1",
			Model: "gpt-4o",
			Choices: []openaicompat.ChatChoice{
				{Message: openaicompat.ChatMessage{Role: "assistant", Content: "Hello"}, FinishReason: "stop"},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	p, err := New(provider.Options{BaseURL: srv.URL, APIKey: "sk-test"})
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}
	defer p.Close()

	resp, err := p.Complete(context.Background(), &api.ChatRequest{
		Model:    "gpt-4o",
		Messages: []api.Message{{Role: "user", Content: "Hi"}},
	})
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if resp.Choices[0].Message.Content != "Hello" {
		t.Errorf("content = %q", resp.Choices[0].Message.Content)
	}
}

func TestProvider_Defaults(t *testing.T) {
	if DefaultBaseURL != "https://api.openai.com/v1" {
		t.Errorf("DefaultBaseURL = %q", DefaultBaseURL)
	}
	if CredentialEnv != "OPENAI_API_KEY" {
		t.Errorf("CredentialEnv = %q", CredentialEnv)
	}
}
