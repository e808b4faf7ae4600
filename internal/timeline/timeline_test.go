package timeline

import (
	"testing"

	"github.com/airis-ai/airis-billing/internal/models"
)

func sampleHistory() ([]models.LedgerEntry, []models.UsageEvent) {
	entries := []models.LedgerEntry{
		{ID: "ledger-topup", Type: models.LedgerTypeTopup, AmountKopeks: 5000, CreatedAt: 200},
		{ID: "ledger-charge", Type: models.LedgerTypeCharge, AmountKopeks: -1200, CreatedAt: 199},
		{ID: "ledger-adjustment", Type: models.LedgerTypeAdjustment, AmountKopeks: 300, CreatedAt: 150},
	}
	events := []models.UsageEvent{
		{ID: "usage-free", ModelID: "gpt-4o-mini", BillingSource: models.BillingSourceLeadMagnet, CreatedAt: 180},
		{ID: "usage-paid", ModelID: "gpt-4o", BillingSource: models.BillingSourcePAYG, CreatedAt: 199},
	}
	return entries, events
}

func ids(events []Event) []string {
	out := make([]string, len(events))
	for i, event := range events {
		if event.Kind == KindLedger {
			out[i] = event.Ledger.ID
		} else {
			out[i] = event.Usage.ID
		}
	}
	return out
}

func TestMergeOrdersNewestFirstWithLedgerBeforeUsageOnTies(t *testing.T) {
	entries, events := sampleHistory()
	merged := Merge(entries, events)

	want := []string{"ledger-topup", "ledger-charge", "usage-paid", "usage-free", "ledger-adjustment"}
	got := ids(merged)
	if len(got) != len(want) {
		t.Fatalf("merged length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("merged order = %v, want %v", got, want)
		}
	}
}

func TestApplyFilters(t *testing.T) {
	entries, events := sampleHistory()
	merged := Merge(entries, events)

	cases := []struct {
		filter Filter
		want   []string
	}{
		{FilterAll, []string{"ledger-topup", "ledger-charge", "usage-paid", "usage-free", "ledger-adjustment"}},
		{FilterTopups, []string{"ledger-topup"}},
		{FilterPaid, []string{"ledger-charge", "ledger-adjustment"}},
		{FilterFree, []string{"usage-free"}},
	}
	for _, tc := range cases {
		got := ids(Apply(merged, tc.filter))
		if len(got) != len(tc.want) {
			t.Fatalf("filter %s: got %v, want %v", tc.filter, got, tc.want)
		}
		for i := range tc.want {
			if got[i] != tc.want[i] {
				t.Fatalf("filter %s: got %v, want %v", tc.filter, got, tc.want)
			}
		}
	}
}

func TestParseFilter(t *testing.T) {
	cases := map[string]Filter{
		"":       FilterAll,
		"all":    FilterAll,
		"paid":   FilterPaid,
		"free":   FilterFree,
		"topups": FilterTopups,
		"bogus":  FilterAll,
		"PAID":   FilterAll,
		"subscr": FilterAll,
	}
	for raw, want := range cases {
		if got := ParseFilter(raw); got != want {
			t.Fatalf("ParseFilter(%q) = %s, want %s", raw, got, want)
		}
	}
}
