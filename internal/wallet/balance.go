package wallet

import "github.com/airis-ai/airis-billing/internal/models"

// TotalBalanceKopeks composes the spendable balance from both wallet
// components. Top-up and included credit are tracked separately
// because they drain in different orders and expire differently.
func TotalBalanceKopeks(balance models.WalletBalance) int64 {
	return balance.BalanceTopupKopeks + balance.BalanceIncludedKopeks
}

// DailyRemainingKopeks returns how much of the daily cap is left, or
// nil when no cap is configured. Overspend past the cap (possible when
// the cap was lowered mid-day) clamps to zero.
func DailyRemainingKopeks(balance models.WalletBalance) *int64 {
	if balance.DailyCapKopeks == nil {
		return nil
	}
	remaining := *balance.DailyCapKopeks - balance.DailySpentKopeks
	if remaining < 0 {
		remaining = 0
	}
	return &remaining
}
