package billingblock

import (
	"encoding/json"
	"testing"
)

func mustObject(t *testing.T, raw string) map[string]any {
	t.Helper()
	var obj map[string]any
	if errParse := json.Unmarshal([]byte(raw), &obj); errParse != nil {
		t.Fatalf("failed to parse fixture: %v", errParse)
	}
	return obj
}

func TestDecodeDirectObject(t *testing.T) {
	detail := Decode(mustObject(t, `{
		"error": "insufficient_funds",
		"available_kopeks": 150,
		"required_kopeks": 700,
		"currency": "RUB",
		"auto_topup_status": "pending",
		"message": "not enough funds"
	}`))
	if detail == nil || detail.Code != CodeInsufficientFunds {
		t.Fatalf("expected insufficient_funds detail, got %+v", detail)
	}
	funds := detail.InsufficientFunds
	if funds.AvailableKopeks == nil || *funds.AvailableKopeks != 150 {
		t.Fatalf("available_kopeks = %v", funds.AvailableKopeks)
	}
	if funds.RequiredKopeks == nil || *funds.RequiredKopeks != 700 {
		t.Fatalf("required_kopeks = %v", funds.RequiredKopeks)
	}
	if funds.Currency == nil || *funds.Currency != "RUB" {
		t.Fatalf("currency = %v", funds.Currency)
	}
	if funds.AutoTopupStatus == nil || *funds.AutoTopupStatus != "pending" {
		t.Fatalf("auto_topup_status = %v", funds.AutoTopupStatus)
	}
	if funds.AutoTopupPaymentID != nil {
		t.Fatalf("absent auto_topup_payment_id must decode to nil")
	}
}

func TestDecodeStringifiedException(t *testing.T) {
	detail := Decode("402: {'error': 'insufficient_funds', 'available_kopeks': 0, 'required_kopeks': 7, 'currency': 'RUB'}")
	if detail == nil || detail.Code != CodeInsufficientFunds {
		t.Fatalf("expected insufficient_funds detail, got %+v", detail)
	}
	funds := detail.InsufficientFunds
	if funds.AvailableKopeks == nil || *funds.AvailableKopeks != 0 {
		t.Fatalf("available_kopeks = %v", funds.AvailableKopeks)
	}
	if funds.RequiredKopeks == nil || *funds.RequiredKopeks != 7 {
		t.Fatalf("required_kopeks = %v", funds.RequiredKopeks)
	}
	if funds.Currency == nil || *funds.Currency != "RUB" {
		t.Fatalf("currency = %v", funds.Currency)
	}
	if funds.Message != nil || funds.AutoTopupStatus != nil {
		t.Fatalf("absent optional fields must decode to nil: %+v", funds)
	}
}

func TestDecodeReprKeywords(t *testing.T) {
	detail := Decode("402: {'error': 'insufficient_funds', 'available_kopeks': None, 'required_kopeks': 7, 'currency': None}")
	if detail == nil || detail.Code != CodeInsufficientFunds {
		t.Fatalf("expected detail, got %+v", detail)
	}
	if detail.InsufficientFunds.AvailableKopeks != nil {
		t.Fatalf("None must decode to nil")
	}
	if detail.InsufficientFunds.RequiredKopeks == nil || *detail.InsufficientFunds.RequiredKopeks != 7 {
		t.Fatalf("required_kopeks = %v", detail.InsufficientFunds.RequiredKopeks)
	}
}

func TestDecodeDetailEnvelope(t *testing.T) {
	detail := Decode(mustObject(t, `{
		"content": "billing blocked",
		"detail": {
			"error": "daily_cap_exceeded",
			"daily_cap_kopeks": 50000,
			"daily_spent_kopeks": 49800,
			"daily_reset_at": 1756684800,
			"required_kopeks": 300
		}
	}`))
	if detail == nil || detail.Code != CodeDailyCapExceeded {
		t.Fatalf("expected daily_cap_exceeded detail, got %+v", detail)
	}
	cap := detail.DailyCapExceeded
	if cap.DailyCapKopeks == nil || *cap.DailyCapKopeks != 50000 {
		t.Fatalf("daily_cap_kopeks = %v", cap.DailyCapKopeks)
	}
	if cap.DailyResetAt == nil || *cap.DailyResetAt != 1756684800 {
		t.Fatalf("daily_reset_at = %v", cap.DailyResetAt)
	}
	if req := detail.RequiredKopeks(); req == nil || *req != 300 {
		t.Fatalf("RequiredKopeks = %v", req)
	}
}

func TestDecodeContentObject(t *testing.T) {
	detail := Decode(mustObject(t, `{
		"content": {
			"error": "max_reply_cost_exceeded",
			"max_reply_cost_kopeks": 2000,
			"required_kopeks": 3500
		}
	}`))
	if detail == nil || detail.Code != CodeMaxReplyCostExceeded {
		t.Fatalf("expected max_reply_cost_exceeded detail, got %+v", detail)
	}
	if detail.MaxReplyCostExceeded.MaxReplyCostKopeks == nil || *detail.MaxReplyCostExceeded.MaxReplyCostKopeks != 2000 {
		t.Fatalf("max_reply_cost_kopeks = %v", detail.MaxReplyCostExceeded.MaxReplyCostKopeks)
	}
}

func TestDecodeContentString(t *testing.T) {
	detail := Decode(mustObject(t, `{
		"content": "402: {'error': 'max_reply_cost_exceeded', 'max_reply_cost_kopeks': 2000, 'required_kopeks': 3500}"
	}`))
	if detail == nil || detail.Code != CodeMaxReplyCostExceeded {
		t.Fatalf("expected detail from content string, got %+v", detail)
	}
}

func TestDecodeFailsClosed(t *testing.T) {
	unrecognized := []any{
		nil,
		42,
		"no payload here",
		"402: {'error': 'insufficient_funds'", // unterminated dict
		mustObject(t, `{"error": "unknown_code"}`),
		mustObject(t, `{"detail": {"error": "unknown_code"}}`),
		mustObject(t, `{"content": "402: not a dict"}`),
		[]any{"insufficient_funds"},
	}
	for _, value := range unrecognized {
		if detail := Decode(value); detail != nil {
			t.Fatalf("Decode(%v) = %+v, want nil", value, detail)
		}
	}
}

func TestDecodeCoercesMalformedFields(t *testing.T) {
	// Wrong-typed or empty fields degrade to nil without failing the
	// whole decode.
	detail := Decode(mustObject(t, `{
		"error": "insufficient_funds",
		"available_kopeks": "12",
		"required_kopeks": 7,
		"currency": "   ",
		"message": ""
	}`))
	if detail == nil {
		t.Fatalf("expected detail despite malformed fields")
	}
	funds := detail.InsufficientFunds
	if funds.AvailableKopeks != nil {
		t.Fatalf("string-typed number must decode to nil")
	}
	if funds.Currency != nil || funds.Message != nil {
		t.Fatalf("blank strings must decode to nil: %+v", funds)
	}
	if funds.RequiredKopeks == nil || *funds.RequiredKopeks != 7 {
		t.Fatalf("required_kopeks = %v", funds.RequiredKopeks)
	}
}

func TestDecodeRawDetailEnvelopeBody(t *testing.T) {
	detail := DecodeRaw([]byte(`{
		"detail": {
			"error": "insufficient_funds",
			"available_kopeks": 0,
			"required_kopeks": 7,
			"currency": "RUB"
		}
	}`))
	if detail == nil || detail.Code != CodeInsufficientFunds {
		t.Fatalf("expected insufficient_funds detail, got %+v", detail)
	}
	funds := detail.InsufficientFunds
	if funds.AvailableKopeks == nil || *funds.AvailableKopeks != 0 {
		t.Fatalf("available_kopeks = %v", funds.AvailableKopeks)
	}
	if funds.RequiredKopeks == nil || *funds.RequiredKopeks != 7 {
		t.Fatalf("required_kopeks = %v", funds.RequiredKopeks)
	}
	if funds.Currency == nil || *funds.Currency != "RUB" {
		t.Fatalf("currency = %v", funds.Currency)
	}
}

func TestDecodeRawDirectObjectBody(t *testing.T) {
	detail := DecodeRaw([]byte(`{"error": "daily_cap_exceeded", "daily_cap_kopeks": 50000, "daily_spent_kopeks": 49900}`))
	if detail == nil || detail.Code != CodeDailyCapExceeded {
		t.Fatalf("expected daily_cap_exceeded detail, got %+v", detail)
	}
	if detail.DailyCapExceeded.DailyCapKopeks == nil || *detail.DailyCapExceeded.DailyCapKopeks != 50000 {
		t.Fatalf("daily_cap_kopeks = %v", detail.DailyCapExceeded.DailyCapKopeks)
	}
}

func TestDecodeRawJSONStringBody(t *testing.T) {
	// A JSON-encoded string body still reaches the stringified-exception chain.
	body, errMarshal := json.Marshal("402: {'error': 'max_reply_cost_exceeded', 'max_reply_cost_kopeks': 300, 'required_kopeks': 450}")
	if errMarshal != nil {
		t.Fatalf("failed to marshal fixture: %v", errMarshal)
	}
	detail := DecodeRaw(body)
	if detail == nil || detail.Code != CodeMaxReplyCostExceeded {
		t.Fatalf("expected max_reply_cost_exceeded detail, got %+v", detail)
	}
}

func TestDecodeRawFailsClosed(t *testing.T) {
	for _, body := range []string{
		"",
		"upstream exploded",
		`{"detail": {"error": "insufficient_funds"`,
		`{"detail": "plain outage text"}`,
	} {
		if detail := DecodeRaw([]byte(body)); detail != nil {
			t.Fatalf("DecodeRaw(%q) = %+v, want nil", body, detail)
		}
	}
}
