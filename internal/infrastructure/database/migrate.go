package database

import (
	"fmt"

	"github.com/logmycode/logmycode/internal/domain/models"
)

// RunMigrations creates or updates the four application tables. The schema
// is small enough that gorm's AutoMigrate covers it; uniqueness constraints
// live on the models and are the sole concurrency-safety mechanism for the
// upsert paths.
func (d *Database) RunMigrations() error {
	d.log.Info("Running database migrations...")

	// uuid primary keys use gen_random_uuid()
	if err := d.db.Exec(`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`).Error; err != nil {
		return fmt.Errorf("failed to enable pgcrypto: %w", err)
	}

	if err := d.db.AutoMigrate(
		&models.User{},
		&models.Repo{},
		&models.Commit{},
		&models.DailySummary{},
	); err != nil {
		return fmt.Errorf("auto-migrate failed: %w", err)
	}

	d.log.Info("Database migrations completed")
	return nil
}
