package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/airis-ai/airis-billing/internal/money"
	"github.com/airis-ai/airis-billing/internal/wallet"
)

func runAdjust(state *cliState, args []string) error {
	fs := flag.NewFlagSet("adjust", flag.ContinueOnError)
	var userID string
	var topupRaw string
	var includedRaw string
	var reason string
	var referenceID string
	fs.StringVar(&userID, "user", "", "target user id")
	fs.StringVar(&topupRaw, "topup", "0", "top-up balance delta in kopeks (signed integer)")
	fs.StringVar(&includedRaw, "included", "0", "included balance delta in kopeks (signed integer)")
	fs.StringVar(&reason, "reason", "", "adjustment reason")
	fs.StringVar(&referenceID, "reference", "", "related object id (ticket, payment)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if userID == "" {
		return errors.New("adjust requires -user")
	}

	deltaTopup, errTopup := money.ParseKopeks(topupRaw)
	if errTopup != nil {
		return fmt.Errorf("invalid -topup: %w", errTopup)
	}
	deltaIncluded, errIncluded := money.ParseKopeks(includedRaw)
	if errIncluded != nil {
		return fmt.Errorf("invalid -included: %w", errIncluded)
	}

	input := wallet.AdjustmentInput{
		DeltaTopupKopeks:    deltaTopup,
		DeltaIncludedKopeks: deltaIncluded,
		Reason:              reason,
		IdempotencyKey:      wallet.NewIdempotencyKey(),
		ReferenceID:         referenceID,
	}
	if message := wallet.ValidateAdjustment(input); message != "" {
		return errors.New(message)
	}

	ctx, cancel := state.withContext()
	defer cancel()
	resp, errAdjust := state.client.AdjustUserWallet(ctx, userID, wallet.BuildAdjustmentRequest(input))
	if errAdjust != nil {
		return errAdjust
	}

	fmt.Printf("adjusted wallet of %s: entry %s, amount %s\n",
		userID, resp.LedgerEntry.ID, money.FormatKopeks(resp.LedgerEntry.AmountKopeks))
	fmt.Printf("new balance: top-up %s, included %s\n",
		money.FormatKopeks(resp.Wallet.BalanceTopupKopeks),
		money.FormatKopeks(resp.Wallet.BalanceIncludedKopeks))
	return nil
}
