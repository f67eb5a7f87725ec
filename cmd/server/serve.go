package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/yukikurage/family-task-api/internal/database"
	"github.com/yukikurage/family-task-api/internal/server"
)

var skipMigrate bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, pool, err := bootstrap()
		if err != nil {
			return err
		}
		defer pool.Close()

		if !skipMigrate {
			if err := database.Migrate(pool.DB, log); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return server.New(cfg, pool, log).Run(ctx)
	},
}

func init() {
	serveCmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "do not run migrations on startup")
	rootCmd.AddCommand(serveCmd)

	// Running the binary without a subcommand serves.
	rootCmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "do not run migrations on startup")
	rootCmd.RunE = serveCmd.RunE
}
