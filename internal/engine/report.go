package engine

import "github.com/payments-engine/internal/domain/shared"

// Row is one rendered account in the final report. Amounts carry the full
// stored precision; display formatting belongs to the encoder.
type Row struct {
	Client    shared.ClientID
	Available shared.Amount
	Held      shared.Amount
	Total     shared.Amount
	Locked    bool
}

// Report folds the ledger map into one row per account, in first-insertion
// order. It is a pure read; account order is part of observable behavior.
func (e *Engine) Report() []Row {
	e.mu.Lock()
	defer e.mu.Unlock()

	rows := make([]Row, 0, len(e.order))
	for _, id := range e.order {
		acct := e.accounts[id]
		rows = append(rows, Row{
			Client:    id,
			Available: acct.Available,
			Held:      acct.Held,
			Total:     acct.Total(),
			Locked:    acct.Locked,
		})
	}
	return rows
}

// Snapshot returns the report row for a single client, reporting false when
// the client has never been referenced.
func (e *Engine) Snapshot(id shared.ClientID) (Row, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	acct, ok := e.accounts[id]
	if !ok {
		return Row{}, false
	}
	return Row{
		Client:    id,
		Available: acct.Available,
		Held:      acct.Held,
		Total:     acct.Total(),
		Locked:    acct.Locked,
	}, true
}
