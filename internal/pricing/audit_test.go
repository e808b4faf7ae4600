package pricing

import "testing"

func ptr(v int64) *int64 { return &v }

func TestCompletenessForFocus(t *testing.T) {
	full := &ModelRateDisplay{
		TextIn1000Tokens:  ptr(100),
		TextOut1000Tokens: ptr(200),
		Image1024:         ptr(4000),
		TTS1000Chars:      ptr(2000),
		STTMinute:         ptr(180),
	}
	textOnly := &ModelRateDisplay{TextIn1000Tokens: ptr(100)}
	empty := &ModelRateDisplay{}

	cases := []struct {
		name  string
		rates *ModelRateDisplay
		focus PricingFocus
		want  Completeness
	}{
		{"nil rates", nil, FocusText, CompletenessMissing},
		{"all focus always ok", empty, FocusAll, CompletenessOK},
		{"text both present", full, FocusText, CompletenessOK},
		{"text one present", textOnly, FocusText, CompletenessPartial},
		{"text none present", empty, FocusText, CompletenessMissing},
		{"image present", full, FocusImage, CompletenessOK},
		{"image absent", empty, FocusImage, CompletenessMissing},
		{"audio both present", full, FocusAudio, CompletenessOK},
		{"audio one present", &ModelRateDisplay{TTS1000Chars: ptr(2000)}, FocusAudio, CompletenessPartial},
		{"audio none present", empty, FocusAudio, CompletenessMissing},
	}
	for _, tc := range cases {
		if got := CompletenessForFocus(tc.rates, tc.focus); got != tc.want {
			t.Fatalf("%s: got %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestCompletenessMonotonicity(t *testing.T) {
	// Adding a missing rate to a partial set can only reach ok,
	// never fall back to missing.
	partial := &ModelRateDisplay{TextIn1000Tokens: ptr(100)}
	if got := CompletenessForFocus(partial, FocusText); got != CompletenessPartial {
		t.Fatalf("precondition: expected partial, got %s", got)
	}
	partial.TextOut1000Tokens = ptr(200)
	if got := CompletenessForFocus(partial, FocusText); got != CompletenessOK {
		t.Fatalf("adding the missing rate must reach ok, got %s", got)
	}

	audioPartial := &ModelRateDisplay{STTMinute: ptr(180)}
	if got := CompletenessForFocus(audioPartial, FocusAudio); got != CompletenessPartial {
		t.Fatalf("precondition: expected partial, got %s", got)
	}
	audioPartial.TTS1000Chars = ptr(2000)
	if got := CompletenessForFocus(audioPartial, FocusAudio); got != CompletenessOK {
		t.Fatalf("adding the missing rate must reach ok, got %s", got)
	}
}

func TestHasZeroPriceForFocus(t *testing.T) {
	zeroText := &ModelRateDisplay{TextIn1000Tokens: ptr(0), TextOut1000Tokens: ptr(200)}
	if !HasZeroPriceForFocus(zeroText, FocusText) {
		t.Fatalf("zero text_in must flag for text focus")
	}
	if HasZeroPriceForFocus(zeroText, FocusImage) {
		t.Fatalf("zero text rate must not flag for image focus")
	}
	if HasZeroPriceForFocus(zeroText, FocusAll) {
		t.Fatalf("all focus never flags zero prices")
	}
	if HasZeroPriceForFocus(&ModelRateDisplay{}, FocusText) {
		t.Fatalf("missing rates are not zero prices")
	}
	if HasZeroPriceForFocus(nil, FocusText) {
		t.Fatalf("nil rates are not zero prices")
	}
}

func TestCompareNullableMissingLast(t *testing.T) {
	for _, direction := range []SortDirection{SortAsc, SortDesc} {
		if got := CompareNullableMissingLast(nil, ptr(5), direction); got <= 0 {
			t.Fatalf("nil must sort after present for %s, got %d", direction, got)
		}
		if got := CompareNullableMissingLast(ptr(5), nil, direction); got >= 0 {
			t.Fatalf("present must sort before nil for %s, got %d", direction, got)
		}
		if got := CompareNullableMissingLast(nil, nil, direction); got != 0 {
			t.Fatalf("nil vs nil must compare equal, got %d", got)
		}
	}

	if got := CompareNullableMissingLast(ptr(1), ptr(2), SortAsc); got >= 0 {
		t.Fatalf("1 must sort before 2 ascending, got %d", got)
	}
	if got := CompareNullableMissingLast(ptr(1), ptr(2), SortDesc); got <= 0 {
		t.Fatalf("1 must sort after 2 descending, got %d", got)
	}
	if got := CompareNullableMissingLast(ptr(3), ptr(3), SortDesc); got != 0 {
		t.Fatalf("equal values compare equal, got %d", got)
	}
}

func TestDefaultSortForFocus(t *testing.T) {
	cases := []struct {
		focus PricingFocus
		key   PricingSortKey
	}{
		{FocusText, SortKeyTextIn},
		{FocusImage, SortKeyImage},
		{FocusAudio, SortKeyTTS},
		{FocusAll, SortKeyModel},
	}
	for _, tc := range cases {
		key, direction := DefaultSortForFocus(tc.focus)
		if key != tc.key || direction != SortAsc {
			t.Fatalf("focus %s: got (%s, %s), want (%s, asc)", tc.focus, key, direction, tc.key)
		}
	}
}

func TestPriceSortValue(t *testing.T) {
	displayRates := map[string]ModelRateDisplay{
		"m": {TextIn1000Tokens: ptr(100), STTMinute: ptr(180)},
	}
	if v := PriceSortValue(displayRates, "m", SortKeyTextIn); v == nil || *v != 100 {
		t.Fatalf("text_in sort value = %v, want 100", v)
	}
	if v := PriceSortValue(displayRates, "m", SortKeySTT); v == nil || *v != 180 {
		t.Fatalf("stt sort value = %v, want 180", v)
	}
	if v := PriceSortValue(displayRates, "m", SortKeyImage); v != nil {
		t.Fatalf("absent rate must yield nil, got %v", v)
	}
	if v := PriceSortValue(displayRates, "unknown", SortKeyTextIn); v != nil {
		t.Fatalf("unknown model must yield nil, got %v", v)
	}
	if v := PriceSortValue(displayRates, "m", SortKeyModel); v != nil {
		t.Fatalf("non-price key must yield nil, got %v", v)
	}
}
