package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/airis-ai/airis-billing/internal/models"
)

// Migrate creates or updates the snapshot tables. AutoMigrate only
// adds columns and indexes; snapshot rows are immutable copies of API
// records, so no data backfill is ever required.
func Migrate(conn *gorm.DB) error {
	if conn == nil {
		return fmt.Errorf("db: nil connection")
	}
	if errMigrate := conn.AutoMigrate(
		&models.RateCard{},
		&models.LedgerEntry{},
		&models.UsageEvent{},
	); errMigrate != nil {
		return fmt.Errorf("db: migrate: %w", errMigrate)
	}
	return nil
}
