package main

import (
	"flag"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/airis-ai/airis-billing/internal/api"
)

func runSync(state *cliState, args []string) error {
	fs := flag.NewFlagSet("sync", flag.ContinueOnError)
	var limit int
	fs.IntVar(&limit, "limit", 500, "max ledger entries and usage events to mirror")
	if err := fs.Parse(args); err != nil {
		return err
	}

	snapshot, errOpen := state.openSnapshot()
	if errOpen != nil {
		return errOpen
	}

	ctx, cancel := state.withContext()
	defer cancel()

	cards, errCards := state.client.ListAllRateCards(ctx, api.RateCardQuery{})
	if errCards != nil {
		return errCards
	}
	if errSave := snapshot.SaveRateCards(ctx, cards); errSave != nil {
		return errSave
	}
	log.Debugf("mirrored %d rate cards", len(cards))

	entries, errLedger := state.client.GetLedger(ctx, limit, 0)
	if errLedger != nil {
		return errLedger
	}
	if errSave := snapshot.SaveLedgerEntries(ctx, entries); errSave != nil {
		return errSave
	}

	events, errUsage := state.client.GetUsageEvents(ctx, limit, 0, "")
	if errUsage != nil {
		return errUsage
	}
	if errSave := snapshot.SaveUsageEvents(ctx, events); errSave != nil {
		return errSave
	}

	fmt.Printf("synced %d rate cards, %d ledger entries, %d usage events\n",
		len(cards), len(entries), len(events))
	return nil
}
