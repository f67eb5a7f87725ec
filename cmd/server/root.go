package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/yukikurage/family-task-api/internal/config"
	"github.com/yukikurage/family-task-api/internal/database"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:           "family-task-api",
	Short:         "Family task tracker API",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")
}

// bootstrap loads configuration and opens the database pool shared by
// every subcommand.
func bootstrap() (*config.Config, *slog.Logger, *database.DatabasePool, error) {
	if err := config.LoadDotEnv(envFile); err != nil {
		slog.Info("env file not loaded, using environment variables", "file", envFile)
	}

	cfg := config.Load()
	log := cfg.NewLogger()
	slog.SetDefault(log)

	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	pool, err := database.NewDatabasePool(database.PoolConfigFromConfig(cfg, log))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return cfg, log, pool, nil
}
