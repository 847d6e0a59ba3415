// Command weiche sends a one-shot request through the provider router.
//
// Usage:
//
//	weiche -model nvidia/databricks/dbrx-instruct "What is the capital of France?"
//	weiche -embed -model nvidia/nvidia/nv-embedqa-e5-v5 -input-type passage "some text"
//	weiche -list nvidia
//
// Configuration is loaded from weiche.yaml (or WEICHE_CONFIG) with WEICHE_*
// environment overrides. The provider credential comes from -api-key, or the
// vendor's own environment variable (NVIDIA_API_KEY, OPENAI_API_KEY, ...).
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/weiche-dev/weiche/pkg/api"
	"github.com/weiche-dev/weiche/pkg/config"
	"github.com/weiche-dev/weiche/pkg/debug"
	"github.com/weiche-dev/weiche/pkg/router"
)

func main() {
	if err := run(); err != nil {
		slog.Error("request failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath = flag.String("config", "", "path to config file")
		model      = flag.String("model", "", "provider-prefixed model id, e.g. nvidia/databricks/dbrx-instruct")
		apiKey     = flag.String("api-key", "", "explicit provider credential (overrides environment)")
		embed      = flag.Bool("embed", false, "send an embedding request instead of a chat completion")
		inputType  = flag.String("input-type", "", "embedding input type, e.g. passage or query")
		listModels = flag.String("list", "", "list the models of the named provider and exit")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	debug.Init(cfg.Debug.Categories, cfg.Debug.LogLevel)

	r, err := router.New(cfg)
	if err != nil {
		return err
	}
	defer r.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *listModels != "" {
		models, err := r.ListModels(ctx, *listModels)
		if err != nil {
			return err
		}
		return printJSON(models)
	}

	if *model == "" {
		return fmt.Errorf("-model is required (available providers: %s)", strings.Join(r.Providers(), ", "))
	}
	prompt := strings.Join(flag.Args(), " ")
	if prompt == "" {
		return fmt.Errorf("no prompt given")
	}

	if *embed {
		resp, err := r.Embedding(ctx, &api.EmbeddingRequest{
			Model:     *model,
			Input:     prompt,
			InputType: *inputType,
			APIKey:    *apiKey,
		})
		if err != nil {
			return err
		}
		return printJSON(resp)
	}

	resp, err := r.Complete(ctx, &api.ChatRequest{
		Model:    *model,
		Messages: []api.Message{{Role: "user", Content: prompt}},
		APIKey:   *apiKey,
	})
	if err != nil {
		return err
	}
	return printJSON(resp)
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
