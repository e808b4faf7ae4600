// Package billingblock decodes billing-blocked error payloads coming
// off realtime channels. The channel is not guaranteed to deliver a
// uniformly typed payload, so decoding walks a layered fallback chain
// and fails closed with nil instead of returning an error.
package billingblock

import (
	"encoding/json"
	"math"
	"regexp"
	"strings"
)

// Code identifies why the billing API blocked a request.
type Code string

// Recognized billing-blocked error codes.
const (
	CodeInsufficientFunds    Code = "insufficient_funds"
	CodeDailyCapExceeded     Code = "daily_cap_exceeded"
	CodeMaxReplyCostExceeded Code = "max_reply_cost_exceeded"
)

// InsufficientFunds carries the block context for an empty wallet.
// Every field is optional on the wire; missing or malformed values
// decode to nil.
type InsufficientFunds struct {
	AvailableKopeks    *int64  `json:"available_kopeks"`
	RequiredKopeks     *int64  `json:"required_kopeks"`
	Currency           *string `json:"currency"`
	AutoTopupStatus    *string `json:"auto_topup_status"`
	AutoTopupPaymentID *string `json:"auto_topup_payment_id"`
	Message            *string `json:"message"`
}

// DailyCapExceeded carries the block context for a spent daily cap.
type DailyCapExceeded struct {
	DailyCapKopeks   *int64 `json:"daily_cap_kopeks"`
	DailySpentKopeks *int64 `json:"daily_spent_kopeks"`
	DailyResetAt     *int64 `json:"daily_reset_at"` // Unix seconds.
	RequiredKopeks   *int64 `json:"required_kopeks"`
}

// MaxReplyCostExceeded carries the block context for a reply that
// would exceed the configured per-reply spend limit.
type MaxReplyCostExceeded struct {
	MaxReplyCostKopeks *int64 `json:"max_reply_cost_kopeks"`
	RequiredKopeks     *int64 `json:"required_kopeks"`
}

// Detail is a decoded billing-blocked payload. Exactly one of the
// shape fields matching Code is non-nil.
type Detail struct {
	Code                 Code
	InsufficientFunds    *InsufficientFunds
	DailyCapExceeded     *DailyCapExceeded
	MaxReplyCostExceeded *MaxReplyCostExceeded
}

// RequiredKopeks returns the required amount shared by all shapes,
// or nil when the payload did not carry one.
func (d *Detail) RequiredKopeks() *int64 {
	switch d.Code {
	case CodeInsufficientFunds:
		return d.InsufficientFunds.RequiredKopeks
	case CodeDailyCapExceeded:
		return d.DailyCapExceeded.RequiredKopeks
	case CodeMaxReplyCostExceeded:
		return d.MaxReplyCostExceeded.RequiredKopeks
	}
	return nil
}

// DecodeDetail decodes a payload already shaped as a billing-blocked
// object. It returns nil for anything it does not recognize.
func DecodeDetail(value any) *Detail {
	obj, ok := asObject(value)
	if !ok {
		return nil
	}
	code, _ := obj["error"].(string)
	switch Code(code) {
	case CodeInsufficientFunds:
		return &Detail{
			Code: CodeInsufficientFunds,
			InsufficientFunds: &InsufficientFunds{
				AvailableKopeks:    decodeNumber(obj["available_kopeks"]),
				RequiredKopeks:     decodeNumber(obj["required_kopeks"]),
				Currency:           decodeString(obj["currency"]),
				AutoTopupStatus:    decodeString(obj["auto_topup_status"]),
				AutoTopupPaymentID: decodeString(obj["auto_topup_payment_id"]),
				Message:            decodeString(obj["message"]),
			},
		}
	case CodeDailyCapExceeded:
		return &Detail{
			Code: CodeDailyCapExceeded,
			DailyCapExceeded: &DailyCapExceeded{
				DailyCapKopeks:   decodeNumber(obj["daily_cap_kopeks"]),
				DailySpentKopeks: decodeNumber(obj["daily_spent_kopeks"]),
				DailyResetAt:     decodeNumber(obj["daily_reset_at"]),
				RequiredKopeks:   decodeNumber(obj["required_kopeks"]),
			},
		}
	case CodeMaxReplyCostExceeded:
		return &Detail{
			Code: CodeMaxReplyCostExceeded,
			MaxReplyCostExceeded: &MaxReplyCostExceeded{
				MaxReplyCostKopeks: decodeNumber(obj["max_reply_cost_kopeks"]),
				RequiredKopeks:     decodeNumber(obj["required_kopeks"]),
			},
		}
	}
	return nil
}

// Decode decodes a billing-blocked payload from any of the wire
// shapes the realtime channel produces: a typed object, an envelope
// with a detail or content field, or a stringified backend exception
// with a trailing Python-repr dict. It returns nil when no shape
// matches; it never returns an error.
func Decode(value any) *Detail {
	if direct := DecodeDetail(value); direct != nil {
		return direct
	}
	if obj, ok := asObject(value); ok {
		if fromDetail := DecodeDetail(obj["detail"]); fromDetail != nil {
			return fromDetail
		}
		content := obj["content"]
		if fromContent := DecodeDetail(content); fromContent != nil {
			return fromContent
		}
		if text, ok := content.(string); ok {
			return DecodeDetail(decodeReprTail(text))
		}
	}
	if text, ok := value.(string); ok {
		return DecodeDetail(decodeReprTail(text))
	}
	return nil
}

// DecodeRaw decodes a billing-blocked payload from a raw response
// body. The body is unmarshalled as JSON first, so a FastAPI-style
// {"detail": {...}} envelope decodes through the object chain instead
// of being mistaken for a stringified exception. A body that is not
// valid JSON decodes to nil.
func DecodeRaw(body []byte) *Detail {
	var value any
	if err := json.Unmarshal(body, &value); err != nil {
		return nil
	}
	return Decode(value)
}

func asObject(value any) (map[string]any, bool) {
	obj, ok := value.(map[string]any)
	return obj, ok
}

// decodeNumber accepts the numeric types a JSON decoder or caller may
// hand over. Non-finite floats decode to nil.
func decodeNumber(value any) *int64 {
	switch v := value.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil
		}
		n := int64(v)
		return &n
	case json.Number:
		n, errParse := v.Int64()
		if errParse != nil {
			return nil
		}
		return &n
	case int:
		n := int64(v)
		return &n
	case int64:
		return &v
	}
	return nil
}

func decodeString(value any) *string {
	s, ok := value.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

var (
	reprNone  = regexp.MustCompile(`\bNone\b`)
	reprTrue  = regexp.MustCompile(`\bTrue\b`)
	reprFalse = regexp.MustCompile(`\bFalse\b`)
)

// decodeReprTail extracts a trailing {...} from a stringified backend
// exception ("402: {'error': ...}") and rewrites the restricted
// Python-dict repr into JSON. The rewrite is deliberately narrow;
// anything it cannot parse decodes to nil.
func decodeReprTail(text string) any {
	idx := strings.Index(text, "{")
	if idx < 0 {
		return nil
	}
	tail := strings.TrimSpace(text[idx:])
	if !strings.HasSuffix(tail, "}") {
		return nil
	}
	tail = reprNone.ReplaceAllString(tail, "null")
	tail = reprTrue.ReplaceAllString(tail, "true")
	tail = reprFalse.ReplaceAllString(tail, "false")
	tail = strings.ReplaceAll(tail, "'", `"`)

	var parsed any
	if errParse := json.Unmarshal([]byte(tail), &parsed); errParse != nil {
		return nil
	}
	return parsed
}
