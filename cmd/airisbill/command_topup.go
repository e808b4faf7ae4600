package main

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/airis-ai/airis-billing/internal/api"
	"github.com/airis-ai/airis-billing/internal/billingblock"
	"github.com/airis-ai/airis-billing/internal/models"
	"github.com/airis-ai/airis-billing/internal/money"
)

func runTopup(state *cliState, args []string) error {
	fs := flag.NewFlagSet("topup", flag.ContinueOnError)
	var amountRaw string
	var returnURL string
	fs.StringVar(&amountRaw, "amount", "", "top-up amount in rubles, e.g. 499 or 1,234.50")
	fs.StringVar(&returnURL, "return-url", "", "URL the payment provider redirects back to")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if amountRaw == "" {
		return errors.New("topup requires -amount")
	}

	amountKopeks, errParse := money.ParseAmount(amountRaw)
	if errParse != nil {
		return fmt.Errorf("invalid -amount: %w", errParse)
	}
	if amountKopeks <= 0 {
		return errors.New("topup amount must be positive")
	}

	ctx, cancel := state.withContext()
	defer cancel()
	resp, errCreate := state.client.CreateTopup(ctx, models.TopupRequest{
		AmountKopeks: amountKopeks,
		ReturnURL:    returnURL,
	})
	if errCreate != nil {
		return describeBillingError(errCreate)
	}

	fmt.Printf("payment %s created (%s)\n", resp.PaymentID, resp.Status)
	fmt.Printf("confirm at: %s\n", resp.ConfirmationURL)
	return nil
}

// describeBillingError surfaces a structured billing-blocked payload
// when the API embedded one in the error response.
func describeBillingError(err error) error {
	var reqErr *api.RequestError
	if !errors.As(err, &reqErr) {
		return err
	}
	detail := billingblock.DecodeRaw([]byte(reqErr.Body))
	if detail == nil {
		// Not JSON; try the stringified-exception fallback chain.
		detail = billingblock.Decode(reqErr.Body)
	}
	if detail == nil {
		return err
	}
	switch detail.Code {
	case billingblock.CodeInsufficientFunds:
		funds := detail.InsufficientFunds
		msg := "insufficient funds"
		if funds.AvailableKopeks != nil && funds.RequiredKopeks != nil {
			msg = fmt.Sprintf("insufficient funds: %s available, %s required",
				money.FormatKopeks(*funds.AvailableKopeks), money.FormatKopeks(*funds.RequiredKopeks))
		}
		return errors.New(msg)
	case billingblock.CodeDailyCapExceeded:
		cap := detail.DailyCapExceeded
		msg := "daily cap exceeded"
		if cap.DailyResetAt != nil {
			reset := time.Unix(*cap.DailyResetAt, 0).UTC()
			msg = fmt.Sprintf("daily cap exceeded, resets at %s", reset.Format(time.RFC3339))
		}
		return errors.New(msg)
	case billingblock.CodeMaxReplyCostExceeded:
		return errors.New("max reply cost exceeded")
	}
	return err
}
