package csvio

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/payments-engine/internal/engine"
)

// reportHeader is the output contract's column order.
var reportHeader = []string{"client", "available", "held", "total", "locked"}

// WriteReport encodes the report rows, one account per row in the order
// given, amounts at the ledger's full stored precision and locked as a
// literal boolean token.
func WriteReport(w io.Writer, rows []engine.Row) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(reportHeader); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			strconv.FormatUint(uint64(row.Client), 10),
			row.Available.String(),
			row.Held.String(),
			row.Total.String(),
			strconv.FormatBool(row.Locked),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
