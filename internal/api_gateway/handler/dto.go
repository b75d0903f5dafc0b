package handler

import "github.com/payments-engine/internal/engine"

// SubmitTransactionRequest is one transaction record over HTTP. Amount is a
// decimal literal and must be present for deposits and withdrawals; dispute,
// resolve and chargeback omit it.
type SubmitTransactionRequest struct {
	Type   string `json:"type" binding:"required"`
	Client uint16 `json:"client"`
	Tx     uint32 `json:"tx"`
	Amount string `json:"amount,omitempty"`
}

// AccountResponse is one account's state in API responses, amounts rendered
// at the ledger's stored precision.
type AccountResponse struct {
	Client    uint16 `json:"client"`
	Available string `json:"available"`
	Held      string `json:"held"`
	Total     string `json:"total"`
	Locked    bool   `json:"locked"`
}

// AccountListResponse is the full report in API responses, in first-insertion
// order.
type AccountListResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// mapRowToResponse maps a report row to its API shape.
func mapRowToResponse(row engine.Row) AccountResponse {
	return AccountResponse{
		Client:    uint16(row.Client),
		Available: row.Available.String(),
		Held:      row.Held.String(),
		Total:     row.Total.String(),
		Locked:    row.Locked,
	}
}
