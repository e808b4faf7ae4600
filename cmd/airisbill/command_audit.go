package main

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"github.com/airis-ai/airis-billing/internal/api"
	"github.com/airis-ai/airis-billing/internal/models"
	"github.com/airis-ai/airis-billing/internal/money"
	"github.com/airis-ai/airis-billing/internal/pricing"
)

func runAudit(state *cliState, args []string) error {
	fs := flag.NewFlagSet("audit", flag.ContinueOnError)
	var focusRaw string
	var sortKeyRaw string
	var sortDirRaw string
	var search string
	var offline bool
	fs.StringVar(&focusRaw, "focus", "all", "focus: text|image|audio|all")
	fs.StringVar(&sortKeyRaw, "sort", "", "sort key: model|text_in|text_out|image|tts|stt")
	fs.StringVar(&sortDirRaw, "dir", "", "sort direction: asc|desc")
	fs.StringVar(&search, "search", "", "filter models by id substring")
	fs.BoolVar(&offline, "offline", false, "audit the local snapshot instead of the API")
	if err := fs.Parse(args); err != nil {
		return err
	}

	focus, errFocus := parseFocus(focusRaw)
	if errFocus != nil {
		return errFocus
	}

	ctx, cancel := state.withContext()
	defer cancel()

	var cards []models.RateCard
	if offline {
		snapshot, errOpen := state.openSnapshot()
		if errOpen != nil {
			return errOpen
		}
		var errLoad error
		if search != "" {
			cards, errLoad = snapshot.SearchRateCardsByModel(ctx, search)
		} else {
			cards, errLoad = snapshot.RateCards(ctx)
		}
		if errLoad != nil {
			return errLoad
		}
	} else {
		var errList error
		cards, errList = state.client.ListAllRateCards(ctx, api.RateCardQuery{ModelID: search})
		if errList != nil {
			return errList
		}
	}

	index := pricing.BuildEffectiveRateIndex(cards)
	displayRates := pricing.BuildModelRateDisplayIndex(index)
	rows := pricing.BuildModelRows(modelOptionsFromCards(cards), cards)

	sortKey, direction := pricing.DefaultSortForFocus(focus)
	if sortKeyRaw != "" {
		sortKey = pricing.PricingSortKey(sortKeyRaw)
	}
	if sortDirRaw != "" {
		direction = pricing.SortDirection(sortDirRaw)
	}
	sortRows(rows, displayRates, sortKey, direction)

	printAuditTable(rows, displayRates, focus)
	return nil
}

func parseFocus(raw string) (pricing.PricingFocus, error) {
	switch pricing.PricingFocus(raw) {
	case pricing.FocusText, pricing.FocusImage, pricing.FocusAudio, pricing.FocusAll:
		return pricing.PricingFocus(raw), nil
	}
	return "", fmt.Errorf("unknown focus: %s", raw)
}

// modelOptionsFromCards derives a model list from the pricing history
// itself. The catalog service carries richer metadata; for an audit of
// raw rate cards, the distinct priced model ids are the table rows.
func modelOptionsFromCards(cards []models.RateCard) []pricing.ModelOption {
	seen := make(map[string]struct{})
	var options []pricing.ModelOption
	for _, card := range cards {
		if _, ok := seen[card.ModelID]; ok {
			continue
		}
		seen[card.ModelID] = struct{}{}
		options = append(options, pricing.ModelOption{ID: card.ModelID})
	}
	return options
}

func sortRows(rows []pricing.ModelRow, displayRates map[string]pricing.ModelRateDisplay, key pricing.PricingSortKey, direction pricing.SortDirection) {
	if !pricing.IsPriceSortKey(key) {
		// Name sorting; BuildModelRows already returns ascending order.
		if direction == pricing.SortDesc {
			sort.SliceStable(rows, func(i, j int) bool {
				return strings.ToLower(rows[i].DisplayName()) > strings.ToLower(rows[j].DisplayName())
			})
		}
		return
	}
	sort.SliceStable(rows, func(i, j int) bool {
		left := pricing.PriceSortValue(displayRates, rows[i].ID, key)
		right := pricing.PriceSortValue(displayRates, rows[j].ID, key)
		return pricing.CompareNullableMissingLast(left, right, direction) < 0
	})
}

func printAuditTable(rows []pricing.ModelRow, displayRates map[string]pricing.ModelRateDisplay, focus pricing.PricingFocus) {
	fmt.Printf("%-36s %-11s %-12s %10s %10s %10s %10s %10s\n",
		"MODEL", "STATUS", "PRICING", "TEXT-IN", "TEXT-OUT", "IMAGE", "TTS-1K", "STT-MIN")
	for _, row := range rows {
		var rates *pricing.ModelRateDisplay
		if display, ok := displayRates[row.ID]; ok {
			rates = &display
		}
		completeness := pricing.CompletenessForFocus(rates, focus)
		marker := string(completeness)
		if pricing.HasZeroPriceForFocus(rates, focus) {
			marker += " (zero)"
		}
		fmt.Printf("%-36s %-11s %-12s %10s %10s %10s %10s %10s\n",
			row.DisplayName(), row.Status, marker,
			formatRate(rates, pricing.SortKeyTextIn),
			formatRate(rates, pricing.SortKeyTextOut),
			formatRate(rates, pricing.SortKeyImage),
			formatRate(rates, pricing.SortKeyTTS),
			formatRate(rates, pricing.SortKeySTT))
	}
}

func formatRate(rates *pricing.ModelRateDisplay, key pricing.PricingSortKey) string {
	if rates == nil {
		return "-"
	}
	var value *int64
	switch key {
	case pricing.SortKeyTextIn:
		value = rates.TextIn1000Tokens
	case pricing.SortKeyTextOut:
		value = rates.TextOut1000Tokens
	case pricing.SortKeyImage:
		value = rates.Image1024
	case pricing.SortKeyTTS:
		value = rates.TTS1000Chars
	case pricing.SortKeySTT:
		value = rates.STTMinute
	}
	if value == nil {
		return "-"
	}
	return money.FormatKopeks(*value)
}
