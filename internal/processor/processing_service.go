// Package processor drives the engine: the base service applies records
// sequentially and reports rejections to the diagnostic channel; the worker
// pool decorator parallelizes across clients while keeping at most one
// writer per account.
package processor

import (
	"context"
	"log/slog"

	"github.com/payments-engine/internal/domain/account"
	"github.com/payments-engine/internal/domain/shared"
	"github.com/payments-engine/internal/engine"
)

// Service is the synchronous ProcessingService. It applies each record to
// the engine and, when the record is rejected, logs the rejection and
// forwards it to the publisher if one is configured.
type Service struct {
	engine     *engine.Engine
	rejections RejectionPublisher // nil when dead-lettering is disabled
	logger     *slog.Logger
}

// NewService wires the engine to the diagnostic channel. rejections may be
// nil.
func NewService(eng *engine.Engine, rejections RejectionPublisher, logger *slog.Logger) *Service {
	return &Service{
		engine:     eng,
		rejections: rejections,
		logger:     logger,
	}
}

// ProcessTransaction applies one record. The rejection, if any, is returned
// to the caller after being recorded; processing of the stream continues
// with the next record either way.
func (s *Service) ProcessTransaction(ctx context.Context, tx shared.Transaction) error {
	err := s.engine.Apply(tx)
	if err == nil {
		return nil
	}

	code, known := account.RejectionCode(err)
	if !known {
		code = "UNKNOWN"
	}

	s.logger.Warn("transaction rejected",
		"tx", tx.ID,
		"client", tx.ClientID,
		"operation", tx.Operation,
		"code", code,
		"error", err,
	)

	if s.rejections != nil {
		if pubErr := s.rejections.PublishRejection(ctx, tx, code, err.Error()); pubErr != nil {
			s.logger.Error("failed to publish rejected record",
				"tx", tx.ID,
				"client", tx.ClientID,
				"error", pubErr,
			)
		}
	}

	return err
}

// Report folds the current ledger state into report rows.
func (s *Service) Report() []engine.Row {
	return s.engine.Report()
}

// Snapshot returns the report row for one client.
func (s *Service) Snapshot(id shared.ClientID) (engine.Row, bool) {
	return s.engine.Snapshot(id)
}
