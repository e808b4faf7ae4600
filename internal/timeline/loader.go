package timeline

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/airis-ai/airis-billing/internal/models"
)

const defaultFetchLimit = 100

// Source supplies the two history feeds. *api.Client satisfies it.
type Source interface {
	GetLedger(ctx context.Context, limit, skip int) ([]models.LedgerEntry, error)
	GetUsageEvents(ctx context.Context, limit, skip int, billingSource string) ([]models.UsageEvent, error)
}

// Loader fetches both history feeds and merges them.
type Loader struct {
	source Source
	limit  int
}

// NewLoader builds a Loader over source. A non-positive limit falls
// back to the default page size.
func NewLoader(source Source, limit int) *Loader {
	if limit <= 0 {
		limit = defaultFetchLimit
	}
	return &Loader{source: source, limit: limit}
}

// Load fetches ledger entries and usage events concurrently and
// returns the merged timeline. A failed source degrades to an empty
// list so the other source can still render; the failure is logged,
// not returned.
func (l *Loader) Load(ctx context.Context) []Event {
	var (
		wg      sync.WaitGroup
		entries []models.LedgerEntry
		events  []models.UsageEvent
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		fetched, errFetch := l.source.GetLedger(ctx, l.limit, 0)
		if errFetch != nil {
			log.WithError(errFetch).Warn("failed to fetch ledger entries, rendering without them")
			return
		}
		entries = fetched
	}()
	go func() {
		defer wg.Done()
		fetched, errFetch := l.source.GetUsageEvents(ctx, l.limit, 0, "")
		if errFetch != nil {
			log.WithError(errFetch).Warn("failed to fetch usage events, rendering without them")
			return
		}
		events = fetched
	}()
	wg.Wait()

	return Merge(entries, events)
}
