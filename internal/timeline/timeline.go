// Package timeline merges wallet ledger entries and usage events into
// a single billing history view with filtering and URL-synchronized
// filter state.
package timeline

import (
	"sort"

	"github.com/airis-ai/airis-billing/internal/models"
)

// Filter selects which slice of the merged history is shown.
type Filter string

// Supported history filters.
const (
	FilterAll    Filter = "all"
	FilterPaid   Filter = "paid"
	FilterFree   Filter = "free"
	FilterTopups Filter = "topups"
)

// ParseFilter maps a raw query value to a Filter. Unknown or empty
// values fall back to FilterAll.
func ParseFilter(raw string) Filter {
	switch Filter(raw) {
	case FilterPaid, FilterFree, FilterTopups:
		return Filter(raw)
	}
	return FilterAll
}

// Kind discriminates the two event sources in a merged timeline.
type Kind string

// Event kinds.
const (
	KindLedger Kind = "ledger"
	KindUsage  Kind = "usage"
)

// Event is one item of the merged billing history. Exactly one of
// Ledger and Usage is non-nil, matching Kind.
type Event struct {
	Kind      Kind
	CreatedAt int64 // Unix seconds.
	Ledger    *models.LedgerEntry
	Usage     *models.UsageEvent
}

// Merge combines ledger entries and usage events into one sequence
// ordered by CreatedAt descending. The sort is stable and ledger
// entries are appended first, so a ledger entry precedes a usage
// event sharing its timestamp.
func Merge(entries []models.LedgerEntry, events []models.UsageEvent) []Event {
	merged := make([]Event, 0, len(entries)+len(events))
	for i := range entries {
		merged = append(merged, Event{Kind: KindLedger, CreatedAt: entries[i].CreatedAt, Ledger: &entries[i]})
	}
	for i := range events {
		merged = append(merged, Event{Kind: KindUsage, CreatedAt: events[i].CreatedAt, Usage: &events[i]})
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt > merged[j].CreatedAt
	})
	return merged
}

// Apply returns the events matching filter. Usage events never show
// under paid or topups: a usage event is either free-tier consumption
// or already represented by its ledger charge.
func Apply(events []Event, filter Filter) []Event {
	if filter == FilterAll {
		return events
	}
	filtered := make([]Event, 0, len(events))
	for _, event := range events {
		if matches(event, filter) {
			filtered = append(filtered, event)
		}
	}
	return filtered
}

func matches(event Event, filter Filter) bool {
	switch filter {
	case FilterTopups:
		return event.Kind == KindLedger && event.Ledger.Type == models.LedgerTypeTopup
	case FilterPaid:
		return event.Kind == KindLedger && event.Ledger.Type != models.LedgerTypeTopup
	case FilterFree:
		return event.Kind == KindUsage && event.Usage.BillingSource == models.BillingSourceLeadMagnet
	}
	return true
}
