package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/phygrid/engine/internal/adapter"
	"github.com/phygrid/engine/internal/domain"
	"github.com/phygrid/engine/internal/logger"
	"github.com/phygrid/engine/internal/store"
	"github.com/phygrid/engine/internal/store/schema"
)

// ExpirySweeperConfig holds configuration for the expiry sweeper
type ExpirySweeperConfig struct {
	Interval       time.Duration // Time to sleep between sweep cycles
	BatchSize      int           // Rows to expire per cycle per table
	WorkerPoolSize int           // Concurrent workers
}

// expirySweeper moves transfer codes and bids past their deadline into the
// expired state. Expiry is also applied lazily on read; the sweep is the
// backstop that keeps rows nobody reads from staying pending forever.
type expirySweeper struct {
	config    *ExpirySweeperConfig
	store     store.Store
	clock     adapter.Clock
	pool      pond.Pool
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewExpirySweeper creates a new expiry sweeper
func NewExpirySweeper(config *ExpirySweeperConfig, st store.Store, clock adapter.Clock) Sweeper {
	return &expirySweeper{
		config:    config,
		store:     st,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *expirySweeper) Name() string {
	return "expiry-sweeper"
}

// Start begins the sweeper's main loop
func (s *expirySweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh) // Signal that we've stopped
	}()

	logger.InfoCtx(ctx, "Starting expiry sweeper",
		zap.Duration("interval", s.config.Interval),
		zap.Int("batch_size", s.config.BatchSize),
		zap.Int("worker_pool_size", s.config.WorkerPoolSize),
	)

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Expiry sweeper stopping due to context cancellation", zap.Error(ctx.Err()))
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Expiry sweeper stop requested")
			return nil
		default:
			if err := s.runSweepCycle(ctx); err != nil {
				if !errors.Is(err, context.Canceled) {
					logger.ErrorCtx(ctx, err)
				}
			}
		}
	}
}

// Stop gracefully stops the sweeper with timeout support
func (s *expirySweeper) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "Stopping expiry sweeper")
	close(s.stopChan)

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Expiry sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Expiry sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

// runSweepCycle expires one batch of transfers and one batch of bids
func (s *expirySweeper) runSweepCycle(ctx context.Context) error {
	startTime := s.clock.Now()

	transfers, err := s.store.ListExpiredPendingTransfers(ctx, startTime, s.config.BatchSize)
	if err != nil {
		return fmt.Errorf("failed to list expired transfers: %w", err)
	}
	bids, err := s.store.ListExpiredOpenBids(ctx, startTime, s.config.BatchSize)
	if err != nil {
		return fmt.Errorf("failed to list expired bids: %w", err)
	}

	if len(transfers) == 0 && len(bids) == 0 {
		if !s.sleep(ctx, s.config.Interval) {
			return ctx.Err() // Context canceled during sleep
		}
		return nil
	}

	var expired, skipped atomic.Int32

	s.pool = pond.NewPool(
		s.config.WorkerPoolSize,
		pond.WithQueueSize(s.config.BatchSize*2),
		pond.WithContext(ctx),
	)

	for _, t := range transfers {
		s.pool.Submit(func() {
			s.expireTransfer(ctx, t, &expired, &skipped)
		})
	}
	for _, b := range bids {
		s.pool.Submit(func() {
			s.expireBid(ctx, b, &expired, &skipped)
		})
	}

	s.pool.StopAndWait()

	logger.InfoCtx(ctx, "Sweep cycle completed",
		zap.Duration("duration", s.clock.Since(startTime)),
		zap.Int("transfers", len(transfers)),
		zap.Int("bids", len(bids)),
		zap.Int32("expired", expired.Load()),
		zap.Int32("skipped", skipped.Load()),
	)

	if !s.sleep(ctx, s.config.Interval) {
		return ctx.Err() // Context canceled during sleep
	}
	return nil
}

// expireTransfer applies one conditional expiry. Losing the version race
// means a claim or cancellation got there first, which is fine.
func (s *expirySweeper) expireTransfer(ctx context.Context, t schema.TransferRequest, expired, skipped *atomic.Int32) {
	err := s.store.UpdateTransferStatus(ctx, t.ID, t.Version, schema.TransferStatusExpired)
	switch {
	case err == nil:
		expired.Add(1)
	case errors.Is(err, domain.ErrVersionConflict), errors.Is(err, domain.ErrNotFound):
		skipped.Add(1)
	default:
		logger.ErrorCtx(ctx, err, zap.String("transfer_id", t.ID.String()))
	}
}

func (s *expirySweeper) expireBid(ctx context.Context, b schema.Bid, expired, skipped *atomic.Int32) {
	err := s.store.TransitionBid(ctx, store.TransitionBidInput{
		ID:              b.ID,
		ExpectedVersion: b.Version,
		Status:          schema.BidStatusExpired,
	})
	switch {
	case err == nil:
		expired.Add(1)
	case errors.Is(err, domain.ErrVersionConflict), errors.Is(err, domain.ErrNotFound):
		skipped.Add(1)
	default:
		logger.ErrorCtx(ctx, err, zap.String("bid_id", b.ID.String()))
	}
}

// sleep sleeps for the given duration but can be interrupted by context cancellation
// Returns true if sleep completed normally, false if interrupted
func (s *expirySweeper) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-s.clock.After(duration):
		return true // Sleep completed
	case <-ctx.Done():
		return false // Interrupted by context cancellation
	case <-s.stopChan:
		return false // Interrupted by stop signal
	}
}
