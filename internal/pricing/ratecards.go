// Package pricing resolves versioned rate-card histories into the
// currently effective price per (model, modality, unit) key and maps
// raw per-unit costs into the user-facing display units used by the
// pricing audit table.
package pricing

import (
	"github.com/airis-ai/airis-billing/internal/models"
)

// RateCardKey builds the index key for a modality/unit pair.
func RateCardKey(modality, unit string) string {
	return modality + ":" + unit
}

// EffectiveRateIndex maps model_id -> "modality:unit" -> the effective
// rate card for that key.
type EffectiveRateIndex map[string]map[string]models.RateCard

// BuildEffectiveRateIndex folds a rate-card history into the effective
// record per key. The incoming record displaces the current winner iff
// there is no winner yet, the incoming record is active while the
// winner is not, or both share an activity status and the incoming
// created_at is greater or equal. Inactive records never displace an
// active winner, so the fold is commutative: any permutation of the
// same records resolves to the same index.
func BuildEffectiveRateIndex(rateCards []models.RateCard) EffectiveRateIndex {
	index := make(EffectiveRateIndex)
	for _, entry := range rateCards {
		key := RateCardKey(entry.Modality, entry.Unit)
		modelEntries := index[entry.ModelID]
		if modelEntries == nil {
			modelEntries = make(map[string]models.RateCard)
			index[entry.ModelID] = modelEntries
		}

		existing, ok := modelEntries[key]
		switch {
		case !ok:
			modelEntries[key] = entry
		case entry.IsActive && !existing.IsActive:
			modelEntries[key] = entry
		case entry.IsActive == existing.IsActive && entry.CreatedAt >= existing.CreatedAt:
			modelEntries[key] = entry
		}
	}
	return index
}

// latestActive returns the effective record for a key only when it is
// active; inactive winners stay hidden from display.
func latestActive(modelEntries map[string]models.RateCard, modality, unit string) *models.RateCard {
	if modelEntries == nil {
		return nil
	}
	entry, ok := modelEntries[RateCardKey(modality, unit)]
	if !ok || !entry.IsActive {
		return nil
	}
	return &entry
}
