package pricing

// PricingFocus selects which modality group the audit table inspects.
type PricingFocus string

// Focus values for the pricing audit table.
const (
	FocusText  PricingFocus = "text"
	FocusImage PricingFocus = "image"
	FocusAudio PricingFocus = "audio"
	FocusAll   PricingFocus = "all"
)

// Completeness classifies how fully a model is priced for a focus.
type Completeness string

// Completeness states, ordered missing < partial < ok.
const (
	CompletenessMissing Completeness = "missing"
	CompletenessPartial Completeness = "partial"
	CompletenessOK      Completeness = "ok"
)

// SortDirection orders present values; missing values always sort last
// regardless of direction.
type SortDirection string

// Sort directions.
const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// PricingSortKey identifies a sortable audit-table column.
type PricingSortKey string

// Sort keys for the audit table.
const (
	SortKeyModel   PricingSortKey = "model"
	SortKeyStatus  PricingSortKey = "status"
	SortKeyLead    PricingSortKey = "lead"
	SortKeyTextIn  PricingSortKey = "text_in"
	SortKeyTextOut PricingSortKey = "text_out"
	SortKeyImage   PricingSortKey = "image"
	SortKeyTTS     PricingSortKey = "tts"
	SortKeySTT     PricingSortKey = "stt"
)

// CompletenessForFocus classifies a model's pricing for a focus.
// The all focus never flags anything; text and audio distinguish a
// partial state when exactly one of their two rates is present; image
// has a single rate and therefore no partial state.
func CompletenessForFocus(rates *ModelRateDisplay, focus PricingFocus) Completeness {
	if rates == nil {
		return CompletenessMissing
	}
	if focus == FocusAll {
		return CompletenessOK
	}

	switch focus {
	case FocusText:
		hasIn := rates.TextIn1000Tokens != nil
		hasOut := rates.TextOut1000Tokens != nil
		if hasIn && hasOut {
			return CompletenessOK
		}
		if hasIn || hasOut {
			return CompletenessPartial
		}
		return CompletenessMissing
	case FocusImage:
		if rates.Image1024 != nil {
			return CompletenessOK
		}
		return CompletenessMissing
	case FocusAudio:
		hasTTS := rates.TTS1000Chars != nil
		hasSTT := rates.STTMinute != nil
		if hasTTS && hasSTT {
			return CompletenessOK
		}
		if hasTTS || hasSTT {
			return CompletenessPartial
		}
		return CompletenessMissing
	}

	return CompletenessMissing
}

// HasZeroPriceForFocus reports whether any rate relevant to the focus
// is exactly zero. A zero price is a real business signal (likely
// misconfiguration) and is distinct from a missing rate.
func HasZeroPriceForFocus(rates *ModelRateDisplay, focus PricingFocus) bool {
	if rates == nil || focus == FocusAll {
		return false
	}

	isZero := func(v *int64) bool { return v != nil && *v == 0 }

	switch focus {
	case FocusText:
		return isZero(rates.TextIn1000Tokens) || isZero(rates.TextOut1000Tokens)
	case FocusImage:
		return isZero(rates.Image1024)
	case FocusAudio:
		return isZero(rates.TTS1000Chars) || isZero(rates.STTMinute)
	}
	return false
}

// IsPriceSortKey reports whether a sort key addresses a price column.
func IsPriceSortKey(key PricingSortKey) bool {
	switch key {
	case SortKeyTextIn, SortKeyTextOut, SortKeyImage, SortKeyTTS, SortKeySTT:
		return true
	}
	return false
}

// PriceSortValue maps a sort key to the model's display price for that
// column, or nil when the model has no such rate.
func PriceSortValue(displayRates map[string]ModelRateDisplay, modelID string, key PricingSortKey) *int64 {
	rates, ok := displayRates[modelID]
	if !ok {
		return nil
	}

	switch key {
	case SortKeyTextIn:
		return rates.TextIn1000Tokens
	case SortKeyTextOut:
		return rates.TextOut1000Tokens
	case SortKeyImage:
		return rates.Image1024
	case SortKeyTTS:
		return rates.TTS1000Chars
	case SortKeySTT:
		return rates.STTMinute
	}
	return nil
}

// CompareNullableMissingLast orders two nullable prices. Missing
// values sort after present values in both directions; present values
// compare numerically, flipped by direction.
func CompareNullableMissingLast(left, right *int64, direction SortDirection) int {
	if left == nil && right == nil {
		return 0
	}
	if left == nil {
		return 1
	}
	if right == nil {
		return -1
	}

	delta := 0
	switch {
	case *left < *right:
		delta = -1
	case *left > *right:
		delta = 1
	}
	if direction == SortDesc {
		return -delta
	}
	return delta
}

// DefaultSortForFocus returns the initial sort for a focus: the focus's
// primary price column ascending, or model name for the all focus.
func DefaultSortForFocus(focus PricingFocus) (PricingSortKey, SortDirection) {
	switch focus {
	case FocusText:
		return SortKeyTextIn, SortAsc
	case FocusImage:
		return SortKeyImage, SortAsc
	case FocusAudio:
		return SortKeyTTS, SortAsc
	}
	return SortKeyModel, SortAsc
}
