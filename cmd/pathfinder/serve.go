package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/gabrielc1317/mdc-pathfinder/internal/advisor"
	"github.com/gabrielc1317/mdc-pathfinder/internal/llm"
	"github.com/gabrielc1317/mdc-pathfinder/internal/llm/providers"
	"github.com/gabrielc1317/mdc-pathfinder/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the recommendation HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, logger, store, err := loadApp()
	if err != nil {
		return err
	}

	// A provider that fails to construct (usually a missing API key) is not
	// fatal: the AI endpoint degrades to the deterministic path.
	var provider llm.Provider
	if p, err := providers.NewProvider(cfg.LLM); err != nil {
		logger.Warn("model provider unavailable, AI advising disabled", "error", err)
	} else {
		provider = p
	}

	orch := advisor.NewOrchestrator(provider, store, advisor.Options{
		Model:       cfg.LLM.DefaultModel,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
		Timeout:     cfg.Advisor.Timeout,
	}, logger)

	srv := server.New(cfg.Server, store, orch, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-cmd.Context().Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
