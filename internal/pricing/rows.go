package pricing

import (
	"sort"
	"strings"

	"github.com/airis-ai/airis-billing/internal/models"
)

// ModelStatus marks whether a model has any pricing history yet.
type ModelStatus string

// Model statuses for the audit table.
const (
	// ModelStatusNew means no rate card exists for the model at all.
	ModelStatusNew ModelStatus = "new"
	// ModelStatusConfigured means at least one rate card exists.
	ModelStatusConfigured ModelStatus = "configured"
)

// modalityOrder is the canonical column order of the audit table.
var modalityOrder = []string{
	models.ModalityText,
	models.ModalityImage,
	models.ModalityTTS,
	models.ModalitySTT,
}

// ModelOption is a selectable model as served by the catalog.
type ModelOption struct {
	ID         string `json:"id"`
	Name       string `json:"name,omitempty"`
	IsActive   *bool  `json:"is_active,omitempty"`
	LeadMagnet bool   `json:"lead_magnet,omitempty"`
}

// ModelRow is an audit-table row: the model plus its pricing status
// and the modalities it has active rate cards for.
type ModelRow struct {
	ModelOption
	Status     ModelStatus `json:"status"`
	Modalities []string    `json:"modalities"`
}

// DisplayName returns the row label used for sorting and rendering.
func (m ModelOption) DisplayName() string {
	if m.Name != "" {
		return m.Name
	}
	return m.ID
}

// BuildModelRows joins catalog models with their rate-card history
// into audit-table rows. A model counts as configured when any rate
// card exists for it, active or not; its modality badges only reflect
// active cards. Rows come back sorted by display name.
func BuildModelRows(options []ModelOption, rateCards []models.RateCard) []ModelRow {
	configured := make(map[string]struct{})
	activeModalities := make(map[string]map[string]struct{})

	for _, entry := range rateCards {
		configured[entry.ModelID] = struct{}{}
		if !entry.IsActive {
			continue
		}
		switch entry.Modality {
		case models.ModalityText, models.ModalityImage, models.ModalityTTS, models.ModalitySTT:
		default:
			continue
		}
		set := activeModalities[entry.ModelID]
		if set == nil {
			set = make(map[string]struct{})
			activeModalities[entry.ModelID] = set
		}
		set[entry.Modality] = struct{}{}
	}

	rows := make([]ModelRow, 0, len(options))
	for _, option := range options {
		status := ModelStatusNew
		if _, ok := configured[option.ID]; ok {
			status = ModelStatusConfigured
		}

		modalities := make([]string, 0, len(modalityOrder))
		for _, modality := range modalityOrder {
			if _, ok := activeModalities[option.ID][modality]; ok {
				modalities = append(modalities, modality)
			}
		}

		rows = append(rows, ModelRow{
			ModelOption: option,
			Status:      status,
			Modalities:  modalities,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return strings.ToLower(rows[i].DisplayName()) < strings.ToLower(rows[j].DisplayName())
	})
	return rows
}
