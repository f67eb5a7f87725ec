package main

import (
	"github.com/spf13/cobra"
	"github.com/yukikurage/family-task-api/internal/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, log, pool, err := bootstrap()
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := database.Migrate(pool.DB, log); err != nil {
			return err
		}

		log.Info("migrations complete", "stats", pool.Stats())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
