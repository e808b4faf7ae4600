package pricing

import (
	"testing"

	"github.com/airis-ai/airis-billing/internal/models"
)

func TestBuildModelRateDisplayIndexScaling(t *testing.T) {
	cards := []models.RateCard{
		card("rc-1", "m", models.ModalityText, models.UnitTokenIn, 120, 100, true),
		card("rc-2", "m", models.ModalityText, models.UnitTokenOut, 240, 100, true),
		card("rc-3", "m", models.ModalityImage, models.UnitImage1024, 4000, 100, true),
		card("rc-4", "m", models.ModalityTTS, models.UnitTTSChar, 2, 100, true),
		card("rc-5", "m", models.ModalitySTT, models.UnitSTTSecond, 3, 100, true),
	}

	display := BuildModelRateDisplayIndex(BuildEffectiveRateIndex(cards))
	rates, ok := display["m"]
	if !ok {
		t.Fatalf("expected display rates for model m")
	}

	expect := func(name string, got *int64, want int64) {
		t.Helper()
		if got == nil {
			t.Fatalf("%s missing", name)
		}
		if *got != want {
			t.Fatalf("%s = %d, want %d", name, *got, want)
		}
	}
	expect("text_in_1000_tokens", rates.TextIn1000Tokens, 120)
	expect("text_out_1000_tokens", rates.TextOut1000Tokens, 240)
	expect("image_1024", rates.Image1024, 4000)
	expect("tts_1000_chars", rates.TTS1000Chars, 2000)
	expect("stt_minute", rates.STTMinute, 180)
}

func TestBuildModelRateDisplayIndexSkipsInactiveWinners(t *testing.T) {
	cards := []models.RateCard{
		card("rc-1", "m", models.ModalityText, models.UnitTokenIn, 100, 100, false),
	}
	display := BuildModelRateDisplayIndex(BuildEffectiveRateIndex(cards))
	if display["m"].TextIn1000Tokens != nil {
		t.Fatalf("inactive effective record must not surface a display price")
	}
}

func TestBuildModelRateDisplayIndexClampsNegativeCosts(t *testing.T) {
	cards := []models.RateCard{
		card("rc-1", "m", models.ModalityTTS, models.UnitTTSChar, -5, 100, true),
	}
	display := BuildModelRateDisplayIndex(BuildEffectiveRateIndex(cards))
	rate := display["m"].TTS1000Chars
	if rate == nil || *rate != 0 {
		t.Fatalf("negative raw cost must clamp to zero, got %v", rate)
	}
}
