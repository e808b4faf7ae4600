package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/airis-ai/airis-billing/internal/money"
	"github.com/airis-ai/airis-billing/internal/wallet"
)

func runBalance(state *cliState, args []string) error {
	fs := flag.NewFlagSet("balance", flag.ContinueOnError)
	var asJSON bool
	fs.BoolVar(&asJSON, "json", false, "print the raw wallet snapshot as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, cancel := state.withContext()
	defer cancel()
	balance, err := state.client.GetBalance(ctx)
	if err != nil {
		return err
	}
	if asJSON {
		return printJSON(balance)
	}

	fmt.Printf("Balance:  %s %s\n", money.FormatKopeks(wallet.TotalBalanceKopeks(*balance)), balance.Currency)
	fmt.Printf("  top-up:   %s\n", money.FormatKopeks(balance.BalanceTopupKopeks))
	fmt.Printf("  included: %s\n", money.FormatKopeks(balance.BalanceIncludedKopeks))
	if balance.IncludedExpiresAt != nil {
		expires := time.Unix(*balance.IncludedExpiresAt, 0).UTC()
		fmt.Printf("  included expires: %s\n", expires.Format(time.RFC3339))
	}
	if remaining := wallet.DailyRemainingKopeks(*balance); remaining != nil {
		fmt.Printf("Daily cap: %s spent of %s, %s remaining\n",
			money.FormatKopeks(balance.DailySpentKopeks),
			money.FormatKopeks(*balance.DailyCapKopeks),
			money.FormatKopeks(*remaining))
	}
	if balance.MaxReplyCostKopeks != nil {
		fmt.Printf("Max reply cost: %s\n", money.FormatKopeks(*balance.MaxReplyCostKopeks))
	}
	if balance.AutoTopupEnabled {
		fmt.Printf("Auto top-up: enabled")
		if balance.AutoTopupThresholdKopeks != nil && balance.AutoTopupAmountKopeks != nil {
			fmt.Printf(" (below %s, add %s)",
				money.FormatKopeks(*balance.AutoTopupThresholdKopeks),
				money.FormatKopeks(*balance.AutoTopupAmountKopeks))
		}
		if balance.AutoTopupFailCount > 0 {
			fmt.Printf(", %d recent failures", balance.AutoTopupFailCount)
		}
		fmt.Println()
	}
	return nil
}
