package models

import "gorm.io/datatypes"

// Ledger entry types recorded by the wallet ledger.
const (
	// LedgerTypeTopup credits the top-up balance after a payment.
	LedgerTypeTopup = "topup"
	// LedgerTypeCharge debits a wallet for metered consumption.
	LedgerTypeCharge = "charge"
	// LedgerTypeRefund returns a previously charged amount.
	LedgerTypeRefund = "refund"
	// LedgerTypeAdjustment is an admin-initiated balance correction.
	LedgerTypeAdjustment = "adjustment"
	// LedgerTypeSubscriptionCredit grants included credit from a plan.
	LedgerTypeSubscriptionCredit = "subscription_credit"
)

// LedgerEntry is one immutable financial movement on a wallet.
// Entries are append-only and strictly time-ordered per wallet.
type LedgerEntry struct {
	ID       string `gorm:"primaryKey" json:"id"`           // Entry identifier.
	UserID   string `gorm:"not null;index" json:"user_id"`  // Wallet owner.
	WalletID string `gorm:"not null;index" json:"wallet_id"` // Wallet identifier.
	Currency string `gorm:"not null" json:"currency"`       // ISO currency code.

	Type         string `gorm:"not null;index" json:"type"`   // topup, charge, refund, adjustment, ...
	AmountKopeks int64  `gorm:"not null" json:"amount_kopeks"` // Signed movement amount.

	BalanceIncludedAfter int64 `gorm:"not null" json:"balance_included_after"` // Included balance after this entry.
	BalanceTopupAfter    int64 `gorm:"not null" json:"balance_topup_after"`    // Top-up balance after this entry.

	ReferenceID    string `json:"reference_id,omitempty"`    // Related object identifier.
	ReferenceType  string `json:"reference_type,omitempty"`  // Related object kind (payment, usage_event, ...).
	IdempotencyKey string `json:"idempotency_key,omitempty"` // Dedup key for retried mutations.

	MetadataJSON datatypes.JSON `gorm:"type:jsonb" json:"metadata_json,omitempty"` // Free-form entry metadata.

	CreatedAt int64 `gorm:"not null;index" json:"created_at"` // Unix seconds.
}

// TableName keeps the table aligned with the billing API schema.
func (LedgerEntry) TableName() string { return "billing_ledger_entries" }
