// Package wallet validates and normalizes admin-initiated wallet
// mutations and provides display helpers over wallet balances.
package wallet

import (
	"strings"

	"github.com/google/uuid"

	"github.com/airis-ai/airis-billing/internal/models"
)

// AdjustmentInput is the transient admin form state for a balance
// adjustment. Deltas are signed kopeks applied to each balance
// component; nothing here is persisted by this layer.
type AdjustmentInput struct {
	DeltaTopupKopeks    int64
	DeltaIncludedKopeks int64
	Reason              string
	IdempotencyKey      string
	ReferenceID         string
}

// Validation messages are display strings rendered directly in the
// admin form, not system errors.
const (
	msgBothDeltasZero = "At least one balance delta must be non-zero"
	msgReasonRequired = "Reason is required"
)

// ValidateAdjustment checks an adjustment before submission and
// returns a display message, or the empty string when the input is
// valid. Delta integrality is enforced by the field types.
func ValidateAdjustment(input AdjustmentInput) string {
	if input.DeltaTopupKopeks == 0 && input.DeltaIncludedKopeks == 0 {
		return msgBothDeltasZero
	}
	if strings.TrimSpace(input.Reason) == "" {
		return msgReasonRequired
	}
	return ""
}

// BuildAdjustmentRequest normalizes a validated input into the API
// payload. The reason is trimmed; optional keys stay omitted unless
// provided, since the billing API applies partial-update semantics.
func BuildAdjustmentRequest(input AdjustmentInput) models.AdjustWalletRequest {
	return models.AdjustWalletRequest{
		DeltaTopupKopeks:    input.DeltaTopupKopeks,
		DeltaIncludedKopeks: input.DeltaIncludedKopeks,
		Reason:              strings.TrimSpace(input.Reason),
		IdempotencyKey:      input.IdempotencyKey,
		ReferenceID:         input.ReferenceID,
	}
}

// NewIdempotencyKey mints a dedup key for a retry-safe adjustment.
func NewIdempotencyKey() string {
	return "adj-" + uuid.NewString()
}
