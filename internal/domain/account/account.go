// Package account holds the per-client ledger state and the one
// state-transition method per operation type. Every method validates all of
// its preconditions before touching balances, so a rejected record never
// leaves a partial mutation behind.
package account

import (
	"github.com/payments-engine/internal/domain/shared"
)

// Ledger is one client's balance state: available and held funds, the lock
// flag, the store of referenceable deposits and withdrawals, and the set of
// transaction ids currently under dispute.
//
// A Ledger is created with zero balances on the first record that references
// its client and lives for the duration of the run. It is not internally
// synchronized; the caller must not apply two records to the same ledger
// concurrently.
type Ledger struct {
	Available shared.Amount
	Held      shared.Amount
	Locked    bool

	transactions map[shared.TransactionID]shared.Transaction
	underDispute map[shared.TransactionID]struct{}
}

// NewLedger returns an empty, unlocked ledger.
func NewLedger() *Ledger {
	return &Ledger{
		transactions: make(map[shared.TransactionID]shared.Transaction),
		underDispute: make(map[shared.TransactionID]struct{}),
	}
}

// Total is the reported balance: available plus held.
func (l *Ledger) Total() shared.Amount {
	return l.Available + l.Held
}

// HasTransaction reports whether id is recorded in the transaction store.
func (l *Ledger) HasTransaction(id shared.TransactionID) bool {
	_, ok := l.transactions[id]
	return ok
}

// IsDisputed reports whether id is currently under dispute.
func (l *Ledger) IsDisputed(id shared.TransactionID) bool {
	_, ok := l.underDispute[id]
	return ok
}

// DisputedCount returns the number of transactions currently under dispute.
func (l *Ledger) DisputedCount() int {
	return len(l.underDispute)
}

// Deposit credits available funds and records the transaction for later
// reference. The id must not have been seen before on this account.
func (l *Ledger) Deposit(tx shared.Transaction) error {
	if l.HasTransaction(tx.ID) {
		return DuplicatedTransactionError{Tx: tx.ID, Client: tx.ClientID}
	}
	if tx.Amount == nil {
		return MissingAmountError{Tx: tx.ID}
	}
	amount := *tx.Amount
	if amount.IsNegative() {
		return NegativeAmountError{}
	}

	available, ok := l.Available.CheckedAdd(amount)
	if !ok {
		return OverflowError{Tx: tx.ID}
	}

	l.Available = available
	l.transactions[tx.ID] = tx
	return nil
}

// Withdraw debits available funds and records the transaction for later
// reference. The amount must not exceed the available balance.
func (l *Ledger) Withdraw(tx shared.Transaction) error {
	if l.HasTransaction(tx.ID) {
		return DuplicatedTransactionError{Tx: tx.ID, Client: tx.ClientID}
	}
	if tx.Amount == nil {
		return MissingAmountError{Tx: tx.ID}
	}
	amount := *tx.Amount
	if amount.IsNegative() {
		return NegativeAmountError{}
	}
	if l.Available < amount {
		return InsufficientFundsError{Tx: tx.ID, Client: tx.ClientID}
	}

	available, ok := l.Available.CheckedSub(amount)
	if !ok {
		return UnderflowError{Tx: tx.ID}
	}

	l.Available = available
	l.transactions[tx.ID] = tx
	return nil
}

// Dispute opens a claim against a previously recorded transaction and places
// its amount on hold.
//
// A disputed deposit moves the amount from available to held. A disputed
// withdrawal only credits held: the withdrawn funds are presumed not
// received, so they are reinstated from limbo rather than taken from the
// current balance.
func (l *Ledger) Dispute(tx shared.Transaction) error {
	ref, ok := l.transactions[tx.ID]
	if !ok {
		return MissingTransactionError{Tx: tx.ID}
	}
	if l.IsDisputed(ref.ID) {
		return DuplicatedDisputeError{Tx: tx.ID, Ref: ref.ID, Client: tx.ClientID}
	}
	if ref.Amount == nil {
		// Only amount-bearing operations are stored, so this should not
		// happen; checked anyway.
		return MissingAmountError{Tx: tx.ID}
	}
	amount := *ref.Amount

	switch ref.Operation {
	case shared.OperationDeposit:
		// Both checked moves must pass before either applies.
		available, ok := l.Available.CheckedSub(amount)
		if !ok {
			return UnderflowError{Tx: tx.ID}
		}
		held, ok := l.Held.CheckedAdd(amount)
		if !ok {
			return OverflowError{Tx: tx.ID}
		}
		l.Available = available
		l.Held = held
	case shared.OperationWithdrawal:
		held, ok := l.Held.CheckedAdd(amount)
		if !ok {
			return OverflowError{Tx: tx.ID}
		}
		l.Held = held
	default:
		return InvalidOperationUnderDisputeError{Op: tx.Operation, Tx: tx.ID}
	}

	l.underDispute[ref.ID] = struct{}{}
	return nil
}

// Resolve releases the hold opened by a dispute back to available funds and
// returns the transaction to its normal state. Deposit- and
// withdrawal-sourced holds are released the same way.
func (l *Ledger) Resolve(tx shared.Transaction) error {
	ref, ok := l.transactions[tx.ID]
	if !ok {
		return MissingTransactionError{Tx: tx.ID}
	}
	if !l.IsDisputed(ref.ID) {
		return IncorrectResolveError{Op: tx.Operation, Tx: tx.ID}
	}
	if ref.Amount == nil {
		return MissingAmountError{Tx: tx.ID}
	}
	amount := *ref.Amount

	switch ref.Operation {
	case shared.OperationDeposit, shared.OperationWithdrawal:
		available, ok := l.Available.CheckedAdd(amount)
		if !ok {
			return OverflowError{Tx: tx.ID}
		}
		held, ok := l.Held.CheckedSub(amount)
		if !ok {
			return UnderflowError{Tx: tx.ID}
		}
		l.Available = available
		l.Held = held
	default:
		return InvalidOperationUnderDisputeError{Op: tx.Operation, Tx: tx.ID}
	}

	delete(l.underDispute, ref.ID)
	return nil
}

// Chargeback finalizes a dispute against the account: the held amount is
// withdrawn and the account is locked for good. No handler may mutate a
// locked account again.
func (l *Ledger) Chargeback(tx shared.Transaction) error {
	ref, ok := l.transactions[tx.ID]
	if !ok {
		return MissingTransactionError{Tx: tx.ID}
	}
	if !l.IsDisputed(ref.ID) {
		return IncorrectChargebackError{Op: tx.Operation, Tx: tx.ID}
	}
	if ref.Amount == nil {
		return MissingAmountError{Tx: tx.ID}
	}
	amount := *ref.Amount

	switch ref.Operation {
	case shared.OperationDeposit, shared.OperationWithdrawal:
		held, ok := l.Held.CheckedSub(amount)
		if !ok {
			return UnderflowError{Tx: tx.ID}
		}
		l.Held = held
	default:
		return InvalidOperationUnderDisputeError{Op: tx.Operation, Tx: tx.ID}
	}

	delete(l.underDispute, ref.ID)
	l.Locked = true
	return nil
}
