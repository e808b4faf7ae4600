package models

// AdjustWalletRequest is the admin wallet mutation payload. Optional
// keys are omitted rather than sent as null: the billing API applies
// partial-update semantics downstream.
type AdjustWalletRequest struct {
	DeltaTopupKopeks    int64  `json:"delta_topup_kopeks"`
	DeltaIncludedKopeks int64  `json:"delta_included_kopeks"`
	Reason              string `json:"reason"`
	IdempotencyKey      string `json:"idempotency_key,omitempty"`
	ReferenceID         string `json:"reference_id,omitempty"`
}

// AdjustWalletResponse reports the applied adjustment.
type AdjustWalletResponse struct {
	Success     bool          `json:"success"`
	Wallet      WalletBalance `json:"wallet"`
	LedgerEntry LedgerEntry   `json:"ledger_entry"`
}

// TopupRequest starts a wallet top-up payment.
type TopupRequest struct {
	AmountKopeks int64  `json:"amount_kopeks"`
	ReturnURL    string `json:"return_url"`
}

// TopupResponse carries the payment confirmation hand-off.
type TopupResponse struct {
	PaymentID       string `json:"payment_id"`
	ConfirmationURL string `json:"confirmation_url"`
	Status          string `json:"status"`
}
