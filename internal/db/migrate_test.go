package db

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/airis-ai/airis-billing/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, errOpen := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if errOpen != nil {
		t.Fatalf("open sqlite: %v", errOpen)
	}
	return conn
}

func TestMigrateCreatesSnapshotTables(t *testing.T) {
	conn := openTestDB(t)

	if errMigrate := Migrate(conn); errMigrate != nil {
		t.Fatalf("migrate: %v", errMigrate)
	}

	for _, table := range []string{"billing_rate_cards", "billing_ledger_entries", "billing_usage_events"} {
		if !conn.Migrator().HasTable(table) {
			t.Fatalf("missing table %s", table)
		}
	}
	for _, column := range []string{"model_id", "modality", "unit", "raw_cost_per_unit_kopeks", "is_active", "created_at"} {
		if !conn.Migrator().HasColumn("billing_rate_cards", column) {
			t.Fatalf("billing_rate_cards missing column %s", column)
		}
	}
}

func TestMigrateIsIdempotentAndRoundTrips(t *testing.T) {
	conn := openTestDB(t)

	if errMigrate := Migrate(conn); errMigrate != nil {
		t.Fatalf("first migrate: %v", errMigrate)
	}
	if errMigrate := Migrate(conn); errMigrate != nil {
		t.Fatalf("second migrate: %v", errMigrate)
	}

	card := models.RateCard{
		ID:                   "rc-1",
		ModelID:              "gpt-4o",
		Modality:             models.ModalityText,
		Unit:                 models.UnitTokenIn,
		RawCostPerUnitKopeks: 3,
		Version:              "2026-08",
		IsActive:             true,
		CreatedAt:            1756600000,
	}
	if errCreate := conn.Create(&card).Error; errCreate != nil {
		t.Fatalf("create rate card: %v", errCreate)
	}

	var loaded models.RateCard
	if errFind := conn.First(&loaded, "id = ?", "rc-1").Error; errFind != nil {
		t.Fatalf("load rate card: %v", errFind)
	}
	if loaded.CreatedAt != 1756600000 || loaded.RawCostPerUnitKopeks != 3 {
		t.Fatalf("round-trip mismatch: %+v", loaded)
	}
}
