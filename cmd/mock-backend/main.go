// Command mock-backend runs a deterministic OpenAI-compatible server for
// trying the router without a vendor account. Point a provider at it:
//
//	WEICHE_NVIDIA_BASE_URL=http://localhost:9090/v1 \
//	NVIDIA_API_KEY=dummy weiche -model nvidia/databricks/dbrx-instruct "hi"
//
// Configuration:
//
//	MOCK_PORT - Listen port (default: 9090)
package main

import (
	"context"
	"encoding/json"
	"hash/fnv"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/weiche-dev/weiche/pkg/provider/openaicompat"
)

func main() {
	port := os.Getenv("MOCK_PORT")
	if port == "" {
		port = "9090"
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/chat/completions", handleChatCompletions)
	mux.HandleFunc("POST /v1/embeddings", handleEmbeddings)
	mux.HandleFunc("GET /v1/models", handleModels)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok\n"))
	})

	srv := &http.Server{Addr: ":" + port, Handler: requireBearer(mux)}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("mock backend starting", "port", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("mock backend failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("mock backend shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	srv.Shutdown(shutdownCtx)
}

// requireBearer rejects requests without an Authorization header, mirroring
// how real vendor endpoints fail so credential plumbing can be exercised.
func requireBearer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/healthz" {
			next.ServeHTTP(w, r)
			return
		}
		if r.Header.Get("Authorization") == "" {
			writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func handleChatCompletions(w http.ResponseWriter, r *http.Request) {
	var req openaicompat.ChatCompletionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Model == "" || len(req.Messages) == 0 {
		writeError(w, http.StatusBadRequest, "model and messages are required")
		return
	}

	last := req.Messages[len(req.Messages)-1].Content
	writeJSON(w, openaicompat.ChatCompletionResponse{
		ID:      "cmpl-mock",
		Object:  "chat.completion",
		Created: time.Now().Unix(),
		Model:   req.Model,
		Choices: []openaicompat.ChatChoice{
			{
				Message:      openaicompat.ChatMessage{Role: "assistant", Content: "Echo: " + last},
				FinishReason: "stop",
			},
		},
		Usage: &openaicompat.ChatUsage{
			PromptTokens:     len(last) / 4,
			CompletionTokens: len(last)/4 + 2,
			TotalTokens:      len(last)/2 + 2,
		},
	})
}

func handleEmbeddings(w http.ResponseWriter, r *http.Request) {
	var req openaicompat.EmbeddingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Model == "" || req.Input == nil {
		writeError(w, http.StatusBadRequest, "model and input are required")
		return
	}

	inputs := []string{}
	switch v := req.Input.(type) {
	case string:
		inputs = append(inputs, v)
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				inputs = append(inputs, s)
			}
		}
	}
	if len(inputs) == 0 {
		writeError(w, http.StatusBadRequest, "input must be a string or string array")
		return
	}

	data := make([]openaicompat.EmbeddingDatum, len(inputs))
	for i, s := range inputs {
		data[i] = openaicompat.EmbeddingDatum{
			Object:    "embedding",
			Embedding: deterministicVector(s, 8),
			Index:     i,
		}
	}
	writeJSON(w, openaicompat.EmbeddingResponse{
		Object: "list",
		Model:  req.Model,
		Data:   data,
		Usage:  openaicompat.ChatUsage{PromptTokens: len(inputs) * 4, TotalTokens: len(inputs) * 4},
	})
}

func handleModels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, openaicompat.ModelsResponse{
		Object: "list",
		Data: []openaicompat.Model{
			{ID: "databricks/dbrx-instruct", Object: "model", Created: 1735790403, OwnedBy: "mock"},
			{ID: "nvidia/nv-embedqa-e5-v5", Object: "model", Created: 1735790403, OwnedBy: "mock"},
		},
	})
}

// deterministicVector derives a stable pseudo-embedding from the input so
// repeated runs produce identical output.
func deterministicVector(s string, dims int) []float64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	seed := h.Sum64()

	vec := make([]float64, dims)
	for i := range vec {
		seed = seed*6364136223846793005 + 1442695040888963407
		vec[i] = float64(int64(seed>>33))/float64(1<<31) - 1
	}
	return vec
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	var body openaicompat.ErrorResponse
	body.Error.Message = msg
	body.Error.Type = "invalid_request_error"
	if status == http.StatusUnauthorized {
		body.Error.Type = "authentication_error"
	}
	json.NewEncoder(w).Encode(body)
}
