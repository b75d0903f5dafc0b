package processor

import (
	"context"
	"log/slog"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/payments-engine/internal/domain/shared"
	"github.com/payments-engine/internal/engine"
)

// WorkerPoolService decorates the base Service with an ants worker pool.
// Records for distinct clients may apply in parallel; records sharing a
// client id are serialized through a per-client mutex so that at most one
// writer touches an account at a time. Reads take the same locks, and a full
// report excludes all writers for the duration of the fold.
type WorkerPoolService struct {
	baseService *Service
	pool        *ants.Pool
	logger      *slog.Logger

	// world is read-held by every record application and write-held by
	// Report, so a report never observes a half-applied record.
	world sync.RWMutex

	mu          sync.Mutex
	clientLocks map[shared.ClientID]*sync.Mutex
}

// NewWorkerPoolService creates a pool of size workers around baseService.
func NewWorkerPoolService(baseService *Service, size int, logger *slog.Logger) (*WorkerPoolService, error) {
	pool, err := ants.NewPool(size)
	if err != nil {
		return nil, err
	}

	return &WorkerPoolService{
		baseService: baseService,
		pool:        pool,
		logger:      logger,
		clientLocks: make(map[shared.ClientID]*sync.Mutex),
	}, nil
}

// clientLock returns the mutex serializing records for one client, creating
// it on first use.
func (s *WorkerPoolService) clientLock(id shared.ClientID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.clientLocks[id]
	if !ok {
		lock = &sync.Mutex{}
		s.clientLocks[id] = lock
	}
	return lock
}

// ProcessTransaction submits the record to the worker pool and waits for its
// result, so the caller observes the same synchronous contract as the base
// service.
func (s *WorkerPoolService) ProcessTransaction(ctx context.Context, tx shared.Transaction) error {
	resultChan := make(chan error, 1)
	lock := s.clientLock(tx.ClientID)

	err := s.pool.Submit(func() {
		s.world.RLock()
		lock.Lock()
		result := s.baseService.ProcessTransaction(ctx, tx)
		lock.Unlock()
		s.world.RUnlock()

		resultChan <- result
	})
	if err != nil {
		s.logger.Error("failed to submit transaction to worker pool",
			"tx", tx.ID,
			"client", tx.ClientID,
			"error", err,
		)
		return err
	}

	return <-resultChan
}

// Report folds the ledger into report rows with all writers excluded.
func (s *WorkerPoolService) Report() []engine.Row {
	s.world.Lock()
	defer s.world.Unlock()
	return s.baseService.Report()
}

// Snapshot returns one client's row, serialized against that client's
// writers.
func (s *WorkerPoolService) Snapshot(id shared.ClientID) (engine.Row, bool) {
	s.world.RLock()
	defer s.world.RUnlock()

	lock := s.clientLock(id)
	lock.Lock()
	defer lock.Unlock()
	return s.baseService.Snapshot(id)
}

// Shutdown releases the worker pool.
func (s *WorkerPoolService) Shutdown() {
	s.logger.Info("shutting down worker pool", "running_workers", s.pool.Running())
	s.pool.Release()
}

// Running returns the number of currently running workers.
func (s *WorkerPoolService) Running() int {
	return s.pool.Running()
}

// Capacity returns the capacity of the worker pool.
func (s *WorkerPoolService) Capacity() int {
	return s.pool.Cap()
}
