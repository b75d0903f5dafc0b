// Package engine owns the per-run ledger map and routes each incoming record
// to its account. One Engine is instantiated per run; there is no ambient
// state.
package engine

import (
	"fmt"
	"sync"

	"github.com/payments-engine/internal/domain/account"
	"github.com/payments-engine/internal/domain/shared"
)

// Engine dispatches transaction records to per-client ledgers, creating a
// ledger lazily on the first record that references its client.
//
// The internal mutex only guards the account map; mutation of an individual
// ledger is not synchronized here. Callers that apply records concurrently
// must serialize records sharing a client id (see processor.WorkerPool).
type Engine struct {
	mu       sync.Mutex
	accounts map[shared.ClientID]*account.Ledger
	order    []shared.ClientID
}

// New returns an engine with an empty ledger map.
func New() *Engine {
	return &Engine{
		accounts: make(map[shared.ClientID]*account.Ledger),
	}
}

// Apply routes one record to its account. The lock gate applies to every
// operation type: a locked account accepts no further events of any kind.
//
// A returned error is non-fatal to the stream. The record left no mutation
// behind and the caller may continue with the next one.
func (e *Engine) Apply(tx shared.Transaction) error {
	acct := e.account(tx.ClientID)

	if acct.Locked {
		return account.LockedError{Client: tx.ClientID}
	}

	switch tx.Operation {
	case shared.OperationDeposit:
		return acct.Deposit(tx)
	case shared.OperationWithdrawal:
		return acct.Withdraw(tx)
	case shared.OperationDispute:
		return acct.Dispute(tx)
	case shared.OperationResolve:
		return acct.Resolve(tx)
	case shared.OperationChargeback:
		return acct.Chargeback(tx)
	default:
		// The decoder only emits the five known operations.
		return fmt.Errorf("unroutable operation %q", tx.Operation)
	}
}

// account looks up or lazily creates the ledger for id, remembering
// first-insertion order for the report.
func (e *Engine) account(id shared.ClientID) *account.Ledger {
	e.mu.Lock()
	defer e.mu.Unlock()

	acct, ok := e.accounts[id]
	if !ok {
		acct = account.NewLedger()
		e.accounts[id] = acct
		e.order = append(e.order, id)
	}
	return acct
}
