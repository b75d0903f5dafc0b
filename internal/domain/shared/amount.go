package shared

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Amount is a fixed-point monetary value stored in minor units with four
// fractional digits (1.0 == 10000 minor units).
type Amount int64

// amountScale is the number of fractional digits an Amount carries.
const amountScale = 4

// ErrAmountRange reports a decimal literal that does not fit the fixed-point
// representation.
var ErrAmountRange = errors.New("amount out of representable range")

// ParseAmount parses a signed decimal literal into an Amount. Digits beyond
// the fourth fractional place are truncated, not rounded. The sign is kept:
// rejecting negative amounts is the engine's job, not the decoder's.
func ParseAmount(raw string) (Amount, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, err
	}
	return NewAmountFromDecimal(d)
}

// NewAmountFromDecimal converts an arbitrary-precision decimal to the
// fixed-point representation, truncating extra fractional digits.
func NewAmountFromDecimal(d decimal.Decimal) (Amount, error) {
	units := d.Shift(amountScale).Truncate(0).BigInt()
	if !units.IsInt64() {
		return 0, ErrAmountRange
	}
	return Amount(units.Int64()), nil
}

// Decimal returns the amount as an arbitrary-precision decimal.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(int64(a), -amountScale)
}

// String renders the amount with exactly four fractional digits, the stored
// precision of the ledger.
func (a Amount) String() string {
	return a.Decimal().StringFixed(amountScale)
}

// IsNegative reports whether the amount is below zero.
func (a Amount) IsNegative() bool { return a < 0 }

// CheckedAdd returns a+b and reports false when the sum would overflow
// instead of wrapping silently.
func (a Amount) CheckedAdd(b Amount) (Amount, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}
	return sum, true
}

// CheckedSub returns a-b and reports false when the difference would
// underflow instead of wrapping silently.
func (a Amount) CheckedSub(b Amount) (Amount, bool) {
	diff := a - b
	if (b > 0 && diff > a) || (b < 0 && diff < a) {
		return 0, false
	}
	return diff, true
}
