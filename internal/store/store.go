// Package store mirrors billing API records into a local snapshot
// database so balance history and pricing audits stay inspectable
// offline. Snapshot rows are immutable copies keyed by the API
// identifiers; re-syncing the same record is a no-op overwrite.
package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbutil "github.com/airis-ai/airis-billing/internal/db"
	"github.com/airis-ai/airis-billing/internal/models"
)

// Store reads and writes the local billing snapshot.
type Store struct {
	db *gorm.DB
}

// NewStore constructs a Store backed by GORM.
func NewStore(db *gorm.DB) *Store { return &Store{db: db} }

// SaveRateCards upserts rate card records by primary key.
func (s *Store) SaveRateCards(ctx context.Context, cards []models.RateCard) error {
	if len(cards) == 0 {
		return nil
	}
	errCreate := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&cards).Error
	if errCreate != nil {
		return fmt.Errorf("store: save rate cards: %w", errCreate)
	}
	return nil
}

// SaveLedgerEntries upserts ledger entries by primary key.
func (s *Store) SaveLedgerEntries(ctx context.Context, entries []models.LedgerEntry) error {
	if len(entries) == 0 {
		return nil
	}
	errCreate := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&entries).Error
	if errCreate != nil {
		return fmt.Errorf("store: save ledger entries: %w", errCreate)
	}
	return nil
}

// SaveUsageEvents upserts usage events by primary key.
func (s *Store) SaveUsageEvents(ctx context.Context, events []models.UsageEvent) error {
	if len(events) == 0 {
		return nil
	}
	errCreate := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&events).Error
	if errCreate != nil {
		return fmt.Errorf("store: save usage events: %w", errCreate)
	}
	return nil
}

// RecentLedgerEntries returns up to limit ledger entries, newest
// first, matching the merge order of the history timeline.
func (s *Store) RecentLedgerEntries(ctx context.Context, limit int) ([]models.LedgerEntry, error) {
	var entries []models.LedgerEntry
	errFind := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	if errFind != nil {
		return nil, fmt.Errorf("store: load ledger entries: %w", errFind)
	}
	return entries, nil
}

// RecentUsageEvents returns up to limit usage events, newest first.
func (s *Store) RecentUsageEvents(ctx context.Context, limit int) ([]models.UsageEvent, error) {
	var events []models.UsageEvent
	errFind := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&events).Error
	if errFind != nil {
		return nil, fmt.Errorf("store: load usage events: %w", errFind)
	}
	return events, nil
}

// RateCards returns every snapshotted rate card record. The full
// history is needed because effective-rate resolution folds over all
// records per key, not just the latest.
func (s *Store) RateCards(ctx context.Context) ([]models.RateCard, error) {
	var cards []models.RateCard
	if errFind := s.db.WithContext(ctx).Find(&cards).Error; errFind != nil {
		return nil, fmt.Errorf("store: load rate cards: %w", errFind)
	}
	return cards, nil
}

// SearchRateCardsByModel returns rate cards whose model id contains
// pattern, case-insensitively on either dialect.
func (s *Store) SearchRateCardsByModel(ctx context.Context, pattern string) ([]models.RateCard, error) {
	conn := s.db.WithContext(ctx)
	like := dbutil.CaseInsensitiveLikeExpr(conn, "model_id")
	value := dbutil.NormalizeLikePattern(conn, "%"+pattern+"%")

	var cards []models.RateCard
	if errFind := conn.Where(like, value).Find(&cards).Error; errFind != nil {
		return nil, fmt.Errorf("store: search rate cards: %w", errFind)
	}
	return cards, nil
}
