// Package shared contains the types that flow between the decoder, the
// engine and the report: identifiers, operation kinds, monetary amounts and
// the transaction record itself.
package shared

import "fmt"

// ClientID identifies one account.
type ClientID uint16

// TransactionID identifies a deposit or withdrawal. Uniqueness is scoped to
// one account: two different clients may legitimately reuse the same id.
type TransactionID uint32

// OperationType defines possible transaction operations.
type OperationType string

const (
	OperationDeposit    OperationType = "deposit"
	OperationWithdrawal OperationType = "withdrawal"
	OperationDispute    OperationType = "dispute"
	OperationResolve    OperationType = "resolve"
	OperationChargeback OperationType = "chargeback"
)

// ParseOperationType maps a raw type token to an OperationType. Matching is
// case-insensitive; anything unknown is an error the decoder treats as fatal.
func ParseOperationType(raw string) (OperationType, error) {
	switch OperationType(lower(raw)) {
	case OperationDeposit:
		return OperationDeposit, nil
	case OperationWithdrawal:
		return OperationWithdrawal, nil
	case OperationDispute:
		return OperationDispute, nil
	case OperationResolve:
		return OperationResolve, nil
	case OperationChargeback:
		return OperationChargeback, nil
	default:
		return "", fmt.Errorf("unknown operation type %q", raw)
	}
}

// lower is an ASCII-only ToLower; operation tokens never carry non-ASCII.
func lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}

// Transaction is one typed input event. It is immutable once stored in an
// account's transaction store. Amount is set for deposits and withdrawals and
// nil for dispute, resolve and chargeback, which reference a stored amount
// instead of carrying one.
type Transaction struct {
	ID        TransactionID
	ClientID  ClientID
	Operation OperationType
	Amount    *Amount
}
