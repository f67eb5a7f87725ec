package database

import (
	"fmt"
	"log/slog"

	"github.com/yukikurage/family-task-api/internal/models"
	"gorm.io/gorm"
)

// Migrate creates or updates the users and tasks tables.
func Migrate(db *gorm.DB, log *slog.Logger) error {
	if log == nil {
		log = slog.Default()
	}

	log.Info("running database migrations")
	if err := db.AutoMigrate(&models.User{}, &models.Task{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := AddIndexes(db, log); err != nil {
		return fmt.Errorf("failed to add indexes: %w", err)
	}

	log.Info("database migrations completed")
	return nil
}

// AddIndexes makes sure the lookup indexes used by signup, login and task
// listing exist. Unique indexes on username and email are the authoritative
// duplicate-account guard.
func AddIndexes(db *gorm.DB, log *slog.Logger) error {
	indexes := []struct {
		model any
		name  string
	}{
		{&models.User{}, "idx_users_username"},
		{&models.User{}, "idx_users_email"},
		{&models.User{}, "idx_users_workspace_code"},
		{&models.Task{}, "idx_tasks_workspace_due"},
	}

	migrator := db.Migrator()
	for _, idx := range indexes {
		if migrator.HasIndex(idx.model, idx.name) {
			log.Debug("index already exists, skipping", "index", idx.name)
			continue
		}

		if err := migrator.CreateIndex(idx.model, idx.name); err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
		log.Info("created index", "index", idx.name)
	}

	return nil
}
