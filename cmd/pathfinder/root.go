package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gabrielc1317/mdc-pathfinder/internal/catalog"
	"github.com/gabrielc1317/mdc-pathfinder/internal/config"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "pathfinder",
	Short: "Pathfinder - academic program recommendations for MDC",
	Long: `Pathfinder matches students to Miami Dade College degree and
certificate programs based on career goals, earned credits, and delivery
preferences. Recommendations come from a deterministic scoring pipeline,
optionally enhanced by an AI advising assistant that is always validated
against the catalog.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with signal handling.
func Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "config.yaml", "Path to configuration file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(goalsCmd)
	rootCmd.AddCommand(programsCmd)
}

// loadApp loads configuration, builds the logger, and loads the catalog.
// Every subcommand starts here.
func loadApp() (*config.Config, *slog.Logger, *catalog.Store, error) {
	cfg, err := config.NewLoader(config.NewValidator()).LoadWithDefaults(configFile)
	if err != nil {
		return nil, nil, nil, err
	}

	logger := config.NewLogger(cfg.Logging, os.Stderr)

	store, err := catalog.Load(cfg.Catalog.DataDir, logger)
	if err != nil {
		return nil, nil, nil, err
	}

	return cfg, logger, store, nil
}
