package models

// WalletBalance is the user-facing wallet snapshot returned by the
// billing API. Both balance components are non-negative; the daily cap
// invariant is enforced server-side and only displayed here.
type WalletBalance struct {
	BalanceTopupKopeks    int64 `json:"balance_topup_kopeks"`    // Paid (top-up) balance.
	BalanceIncludedKopeks int64 `json:"balance_included_kopeks"` // Included (subscription credit) balance.

	IncludedExpiresAt *int64 `json:"included_expires_at,omitempty"` // Unix seconds, when the included credit expires.

	MaxReplyCostKopeks *int64 `json:"max_reply_cost_kopeks,omitempty"` // Optional per-reply spend limit.
	DailyCapKopeks     *int64 `json:"daily_cap_kopeks,omitempty"`      // Optional daily spend cap.
	DailySpentKopeks   int64  `json:"daily_spent_kopeks"`              // Spend accumulated today.

	AutoTopupEnabled         bool   `json:"auto_topup_enabled"`                    // Auto top-up toggle.
	AutoTopupThresholdKopeks *int64 `json:"auto_topup_threshold_kopeks,omitempty"` // Balance threshold triggering auto top-up.
	AutoTopupAmountKopeks    *int64 `json:"auto_topup_amount_kopeks,omitempty"`    // Auto top-up amount.
	AutoTopupFailCount       int    `json:"auto_topup_fail_count"`                 // Consecutive auto top-up failures.

	Currency string `json:"currency"` // ISO currency code, normally RUB.
}
