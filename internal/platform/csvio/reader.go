// Package csvio owns the delimited wire format: decoding the incoming
// transaction stream and encoding the final account report. Any malformed
// input row is fatal to the run; per-record business rejections are the
// engine's concern, not this package's.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/payments-engine/internal/domain/shared"
)

// Reader decodes the transaction stream: header "type, client, tx, amount",
// fields trimmed of surrounding whitespace, rows tolerant of a missing
// trailing amount column.
type Reader struct {
	csv        *csv.Reader
	headerSeen bool
}

// NewReader wraps r in a stream decoder.
func NewReader(r io.Reader) *Reader {
	c := csv.NewReader(r)
	// Dispute/resolve/chargeback rows may omit the amount column entirely.
	c.FieldsPerRecord = -1
	c.TrimLeadingSpace = true
	return &Reader{csv: c}
}

// Read returns the next typed record, or io.EOF at end of stream. Any error
// other than io.EOF is fatal: the caller must abort the run without
// producing a report.
func (r *Reader) Read() (shared.Transaction, error) {
	for {
		fields, err := r.csv.Read()
		if err != nil {
			return shared.Transaction{}, err
		}
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		if !r.headerSeen {
			r.headerSeen = true
			if len(fields) > 0 && strings.EqualFold(fields[0], "type") {
				continue
			}
		}
		return decodeRecord(fields)
	}
}

func decodeRecord(fields []string) (shared.Transaction, error) {
	if len(fields) < 3 {
		return shared.Transaction{}, fmt.Errorf("malformed record: want at least 3 fields, got %d", len(fields))
	}

	op, err := shared.ParseOperationType(fields[0])
	if err != nil {
		return shared.Transaction{}, err
	}

	client, err := strconv.ParseUint(fields[1], 10, 16)
	if err != nil {
		return shared.Transaction{}, fmt.Errorf("malformed client id %q: %w", fields[1], err)
	}

	id, err := strconv.ParseUint(fields[2], 10, 32)
	if err != nil {
		return shared.Transaction{}, fmt.Errorf("malformed transaction id %q: %w", fields[2], err)
	}

	tx := shared.Transaction{
		ID:        shared.TransactionID(id),
		ClientID:  shared.ClientID(client),
		Operation: op,
	}

	if len(fields) >= 4 && fields[3] != "" {
		amount, err := shared.ParseAmount(fields[3])
		if err != nil {
			return shared.Transaction{}, fmt.Errorf("malformed amount %q: %w", fields[3], err)
		}
		tx.Amount = &amount
	}

	return tx, nil
}
