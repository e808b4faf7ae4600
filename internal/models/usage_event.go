package models

import "gorm.io/datatypes"

// Billing sources attached to usage events.
const (
	// BillingSourcePAYG marks pay-as-you-go consumption charged to the wallet.
	BillingSourcePAYG = "payg"
	// BillingSourceLeadMagnet marks free quota-limited consumption with no
	// monetary charge behind it.
	BillingSourceLeadMagnet = "lead_magnet"
)

// UsageEvent is one immutable record of metered consumption. A usage
// event may or may not have produced a corresponding ledger charge.
type UsageEvent struct {
	ID       string `gorm:"primaryKey" json:"id"`           // Event identifier.
	UserID   string `gorm:"not null;index" json:"user_id"`  // Consuming user.
	WalletID string `gorm:"not null;index" json:"wallet_id"` // Wallet the event was billed against.

	RequestID string `gorm:"not null" json:"request_id"` // Upstream request identifier.
	ChatID    string `json:"chat_id,omitempty"`          // Originating chat, when known.
	MessageID string `json:"message_id,omitempty"`       // Originating message, when known.

	ModelID  string `gorm:"not null;index" json:"model_id"` // Consumed model.
	Modality string `gorm:"not null" json:"modality"`       // text, image, tts or stt.
	Provider string `json:"provider,omitempty"`             // Upstream provider, when known.

	MeasuredUnitsJSON datatypes.JSON `gorm:"type:jsonb" json:"measured_units_json,omitempty"` // Raw measured units per unit kind.
	PromptTokens      *int64         `json:"prompt_tokens,omitempty"`                         // Input tokens, for text modality.
	CompletionTokens  *int64         `json:"completion_tokens,omitempty"`                     // Output tokens, for text modality.

	CostRawKopeks     int64 `gorm:"not null;default:0" json:"cost_raw_kopeks"`     // Cost at raw rate-card prices.
	CostChargedKopeks int64 `gorm:"not null;default:0" json:"cost_charged_kopeks"` // Cost actually charged to the wallet.

	BillingSource string `gorm:"not null;index" json:"billing_source"` // payg or lead_magnet.

	PricingVersion    string `json:"pricing_version,omitempty"`      // Rate-card version used for pricing.
	PricingRateCardID string `json:"pricing_rate_card_id,omitempty"` // Winning rate card, when recorded.

	CreatedAt int64 `gorm:"not null;index" json:"created_at"` // Unix seconds.
}

// TableName keeps the table aligned with the billing API schema.
func (UsageEvent) TableName() string { return "billing_usage_events" }
