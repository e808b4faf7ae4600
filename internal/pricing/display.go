package pricing

import "github.com/airis-ai/airis-billing/internal/models"

// ModelRateDisplay carries user-facing prices in integer kopeks, one
// field per display unit. A nil field means no active effective record
// exists for that key; it is never serialized as zero.
//
// Unit conventions:
//   - text token rates are stored per 1k tokens and pass through
//   - tts rates are stored per char, displayed per 1k chars
//   - stt rates are stored per second, displayed per minute
//   - image rates are stored per image (image_1024)
type ModelRateDisplay struct {
	TextIn1000Tokens  *int64 `json:"text_in_1000_tokens,omitempty"`
	TextOut1000Tokens *int64 `json:"text_out_1000_tokens,omitempty"`
	Image1024         *int64 `json:"image_1024,omitempty"`
	TTS1000Chars      *int64 `json:"tts_1000_chars,omitempty"`
	STTMinute         *int64 `json:"stt_minute,omitempty"`
}

// normalizeKopeks clamps a raw cost into a displayable kopek value.
// Negative costs are malformed input and collapse to zero.
func normalizeKopeks(value int64) int64 {
	if value < 0 {
		return 0
	}
	return value
}

// BuildModelRateDisplayIndex maps resolved rate cards into display
// prices per model. Only active effective records surface; keys with
// no active record leave their field nil.
func BuildModelRateDisplayIndex(index EffectiveRateIndex) map[string]ModelRateDisplay {
	result := make(map[string]ModelRateDisplay, len(index))

	for modelID, modelEntries := range index {
		var display ModelRateDisplay

		if textIn := latestActive(modelEntries, models.ModalityText, models.UnitTokenIn); textIn != nil {
			kopeks := normalizeKopeks(textIn.RawCostPerUnitKopeks)
			display.TextIn1000Tokens = &kopeks
		}
		if textOut := latestActive(modelEntries, models.ModalityText, models.UnitTokenOut); textOut != nil {
			kopeks := normalizeKopeks(textOut.RawCostPerUnitKopeks)
			display.TextOut1000Tokens = &kopeks
		}
		if image := latestActive(modelEntries, models.ModalityImage, models.UnitImage1024); image != nil {
			kopeks := normalizeKopeks(image.RawCostPerUnitKopeks)
			display.Image1024 = &kopeks
		}
		if tts := latestActive(modelEntries, models.ModalityTTS, models.UnitTTSChar); tts != nil {
			kopeks := normalizeKopeks(tts.RawCostPerUnitKopeks) * 1000
			display.TTS1000Chars = &kopeks
		}
		if stt := latestActive(modelEntries, models.ModalitySTT, models.UnitSTTSecond); stt != nil {
			kopeks := normalizeKopeks(stt.RawCostPerUnitKopeks) * 60
			display.STTMinute = &kopeks
		}

		result[modelID] = display
	}

	return result
}
