package models

// Modality identifiers used by rate cards and usage events.
const (
	// ModalityText covers token-metered chat/completion traffic.
	ModalityText = "text"
	// ModalityImage covers per-image generation.
	ModalityImage = "image"
	// ModalityTTS covers per-character speech synthesis.
	ModalityTTS = "tts"
	// ModalitySTT covers per-second speech recognition.
	ModalitySTT = "stt"
)

// Billing units used by rate cards.
const (
	// UnitTokenIn prices input tokens (stored per 1k tokens).
	UnitTokenIn = "token_in"
	// UnitTokenOut prices output tokens (stored per 1k tokens).
	UnitTokenOut = "token_out"
	// UnitImage1024 prices a single 1024px image.
	UnitImage1024 = "image_1024"
	// UnitTTSChar prices a single synthesized character.
	UnitTTSChar = "tts_char"
	// UnitSTTSecond prices a single transcribed second.
	UnitSTTSecond = "stt_second"
)

// RateCard is one immutable versioned price record for a
// (model, modality, unit) key. A price change is a new record,
// never an in-place edit; records sharing a key form a history.
type RateCard struct {
	ID string `gorm:"primaryKey" json:"id"` // Record identifier.

	ModelID  string `gorm:"not null;index" json:"model_id"` // Priced model.
	Modality string `gorm:"not null" json:"modality"`       // text, image, tts or stt.
	Unit     string `gorm:"not null" json:"unit"`           // Billing unit for the modality.

	RawCostPerUnitKopeks int64 `gorm:"not null;default:0" json:"raw_cost_per_unit_kopeks"` // Raw per-unit cost in kopeks.

	Version   string `gorm:"not null" json:"version"`            // Pricing version label.
	Provider  string `json:"provider,omitempty"`                 // Upstream provider, when known.
	ModelTier string `json:"model_tier,omitempty"`               // Tier marker, when known.
	IsDefault bool   `gorm:"not null;default:false" json:"is_default"` // Default-card flag.
	IsActive  bool   `gorm:"not null;default:true" json:"is_active"`   // Active flag; inactive records never win over active ones.

	CreatedAt int64 `gorm:"not null;index" json:"created_at"` // Unix seconds.
}

// TableName keeps the table aligned with the billing API schema.
func (RateCard) TableName() string { return "billing_rate_cards" }
