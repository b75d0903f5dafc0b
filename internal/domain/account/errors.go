package account

import (
	"errors"
	"fmt"

	"github.com/payments-engine/internal/domain/shared"
)

// Rejection is the closed set of non-fatal per-record processing errors.
// A rejected record leaves no mutation behind; the stream caller reports the
// rejection and continues with the next record. Code returns a stable token
// used by diagnostics (logs, dead-letter payloads).
type Rejection interface {
	error
	Code() string
}

// RejectionCode extracts the stable code from err when it is a Rejection.
func RejectionCode(err error) (string, bool) {
	var r Rejection
	if errors.As(err, &r) {
		return r.Code(), true
	}
	return "", false
}

// NegativeAmountError rejects a deposit or withdrawal carrying an amount
// below zero.
type NegativeAmountError struct{}

func (NegativeAmountError) Error() string { return "negative amount" }
func (NegativeAmountError) Code() string  { return "NEGATIVE_AMOUNT" }

// OverflowError rejects an operation whose checked addition would overflow.
type OverflowError struct {
	Tx shared.TransactionID
}

func (e OverflowError) Error() string {
	return fmt.Sprintf("value overflow detected for transaction %d", e.Tx)
}
func (OverflowError) Code() string { return "OVERFLOW" }

// UnderflowError rejects an operation whose checked subtraction would
// underflow.
type UnderflowError struct {
	Tx shared.TransactionID
}

func (e UnderflowError) Error() string {
	return fmt.Sprintf("value underflow detected for transaction %d", e.Tx)
}
func (UnderflowError) Code() string { return "UNDERFLOW" }

// DuplicatedTransactionError rejects a deposit or withdrawal whose id is
// already recorded for the account.
type DuplicatedTransactionError struct {
	Tx     shared.TransactionID
	Client shared.ClientID
}

func (e DuplicatedTransactionError) Error() string {
	return fmt.Sprintf("duplicated transaction %d for account %d", e.Tx, e.Client)
}
func (DuplicatedTransactionError) Code() string { return "DUPLICATED_TRANSACTION" }

// DuplicatedDisputeError rejects a dispute against a transaction that is
// already under dispute.
type DuplicatedDisputeError struct {
	Tx     shared.TransactionID
	Ref    shared.TransactionID
	Client shared.ClientID
}

func (e DuplicatedDisputeError) Error() string {
	return fmt.Sprintf("duplicated dispute of transaction %d by transaction %d for account %d", e.Ref, e.Tx, e.Client)
}
func (DuplicatedDisputeError) Code() string { return "DUPLICATED_DISPUTE" }

// LockedError rejects any record addressed to a locked account.
type LockedError struct {
	Client shared.ClientID
}

func (e LockedError) Error() string {
	return fmt.Sprintf("account %d is locked", e.Client)
}
func (LockedError) Code() string { return "ACCOUNT_LOCKED" }

// MissingAmountError rejects a deposit or withdrawal without an amount, or a
// dispute referencing a stored record without one.
type MissingAmountError struct {
	Tx shared.TransactionID
}

func (e MissingAmountError) Error() string {
	return fmt.Sprintf("no amount in transaction %d", e.Tx)
}
func (MissingAmountError) Code() string { return "MISSING_AMOUNT" }

// InsufficientFundsError rejects a withdrawal exceeding the available
// balance.
type InsufficientFundsError struct {
	Tx     shared.TransactionID
	Client shared.ClientID
}

func (e InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds for transaction %d; account %d", e.Tx, e.Client)
}
func (InsufficientFundsError) Code() string { return "INSUFFICIENT_FUNDS" }

// MissingTransactionError rejects a dispute, resolve or chargeback whose
// referenced transaction was never recorded for the account.
type MissingTransactionError struct {
	Tx shared.TransactionID
}

func (e MissingTransactionError) Error() string {
	return fmt.Sprintf("referenced transaction %d doesn't exist", e.Tx)
}
func (MissingTransactionError) Code() string { return "MISSING_TRANSACTION" }

// InvalidOperationUnderDisputeError rejects a dispute-lifecycle record whose
// referenced operation is neither a deposit nor a withdrawal. Only
// amount-bearing operations are ever stored, so this is a defensive branch.
type InvalidOperationUnderDisputeError struct {
	Op shared.OperationType
	Tx shared.TransactionID
}

func (e InvalidOperationUnderDisputeError) Error() string {
	return fmt.Sprintf("invalid operation %s under dispute for transaction %d", e.Op, e.Tx)
}
func (InvalidOperationUnderDisputeError) Code() string { return "INVALID_OPERATION_UNDER_DISPUTE" }

// IncorrectResolveError rejects a resolve against a transaction that is not
// currently under dispute.
type IncorrectResolveError struct {
	Op shared.OperationType
	Tx shared.TransactionID
}

func (e IncorrectResolveError) Error() string {
	return fmt.Sprintf("resolve called on not disputed operation %s for transaction %d", e.Op, e.Tx)
}
func (IncorrectResolveError) Code() string { return "INCORRECT_RESOLVE" }

// IncorrectChargebackError rejects a chargeback against a transaction that is
// not currently under dispute.
type IncorrectChargebackError struct {
	Op shared.OperationType
	Tx shared.TransactionID
}

func (e IncorrectChargebackError) Error() string {
	return fmt.Sprintf("chargeback called on not disputed operation %s for transaction %d", e.Op, e.Tx)
}
func (IncorrectChargebackError) Code() string { return "INCORRECT_CHARGEBACK" }
