package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/airis-ai/airis-billing/internal/money"
	"github.com/airis-ai/airis-billing/internal/timeline"
)

func runHistory(state *cliState, args []string) error {
	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	var filterRaw string
	var limit int
	var asJSON bool
	fs.StringVar(&filterRaw, "filter", "all", "filter: all|paid|free|topups")
	fs.IntVar(&limit, "limit", 100, "max entries per source")
	fs.BoolVar(&asJSON, "json", false, "print merged events as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, cancel := state.withContext()
	defer cancel()

	loader := timeline.NewLoader(state.client, limit)
	events := timeline.Apply(loader.Load(ctx), timeline.ParseFilter(filterRaw))

	if asJSON {
		return printJSON(events)
	}
	for _, event := range events {
		printEvent(event)
	}
	if len(events) == 0 {
		fmt.Println("no history for this filter")
	}
	return nil
}

func printEvent(event timeline.Event) {
	when := time.Unix(event.CreatedAt, 0).UTC().Format(time.RFC3339)
	if event.Kind == timeline.KindLedger {
		entry := event.Ledger
		fmt.Printf("%s  %-20s %10s %s\n", when, entry.Type, money.FormatKopeks(entry.AmountKopeks), entry.Currency)
		return
	}
	usage := event.Usage
	fmt.Printf("%s  usage:%-14s %10s charged (%s, %s)\n",
		when, usage.Modality, money.FormatKopeks(usage.CostChargedKopeks), usage.ModelID, usage.BillingSource)
}
