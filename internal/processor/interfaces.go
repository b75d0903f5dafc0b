package processor

import (
	"context"

	"github.com/payments-engine/internal/domain/shared"
)

// ProcessingService applies one transaction record to the ledger. A returned
// error is a per-record rejection, never fatal to the stream.
type ProcessingService interface {
	ProcessTransaction(ctx context.Context, tx shared.Transaction) error
}

// RejectionPublisher forwards rejected records to a diagnostic channel. The
// channel is advisory: publish failures are logged, not propagated.
type RejectionPublisher interface {
	PublishRejection(ctx context.Context, tx shared.Transaction, code, reason string) error
}
