package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"go.temporal.io/api/serviceerror"
	"go.uber.org/zap"

	"github.com/shopwalk/aisle-engine/internal/adapter"
	"github.com/shopwalk/aisle-engine/internal/logger"
	"github.com/shopwalk/aisle-engine/internal/providers/temporal"
	"github.com/shopwalk/aisle-engine/internal/store"
	"github.com/shopwalk/aisle-engine/internal/store/schema"
)

// LEARNING_BACKLOG_CURSOR is the cursor name of the learning backlog sweeper
const LEARNING_BACKLOG_CURSOR = "learning_backlog"

// LearningBacklogSweeperConfig holds configuration for the learning backlog sweeper
type LearningBacklogSweeperConfig struct {
	BatchSize       int           // Trips read per page
	WorkerPoolSize  int           // Concurrent workflow starts
	WorkerQueueSize int           // Pending workflow starts
	GracePeriod     time.Duration // Trips that ended more recently are left to the event pipeline
	Interval        time.Duration // Pause after a full pass over the backlog

	// Retry policy of store reads
	RetryInitialInterval time.Duration
	RetryMaxElapsedTime  time.Duration
}

// learningBacklogSweeper starts learning workflows for trips the event pipeline missed
type learningBacklogSweeper struct {
	config       *LearningBacklogSweeperConfig
	store        store.Store
	cursorStore  store.CursorStore
	clock        adapter.Clock
	orchestrator temporal.TemporalOrchestrator
	taskQueue    string
	running      atomic.Bool
	stopChan     chan struct{}
	stoppedCh    chan struct{}
}

// NewLearningBacklogSweeper creates a new learning backlog sweeper
func NewLearningBacklogSweeper(
	config *LearningBacklogSweeperConfig,
	st store.Store,
	cursorStore store.CursorStore,
	clock adapter.Clock,
	orchestrator temporal.TemporalOrchestrator,
	taskQueue string,
) Sweeper {
	if config.BatchSize <= 0 {
		config.BatchSize = 100
	}
	if config.WorkerPoolSize <= 0 {
		config.WorkerPoolSize = 10
	}
	if config.WorkerQueueSize <= 0 {
		config.WorkerQueueSize = config.BatchSize
	}
	if config.RetryInitialInterval <= 0 {
		config.RetryInitialInterval = 5 * time.Second
	}
	if config.RetryMaxElapsedTime <= 0 {
		config.RetryMaxElapsedTime = 10 * time.Minute
	}

	return &learningBacklogSweeper{
		config:       config,
		store:        st,
		cursorStore:  cursorStore,
		clock:        clock,
		orchestrator: orchestrator,
		taskQueue:    taskQueue,
		stopChan:     make(chan struct{}),
		stoppedCh:    make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *learningBacklogSweeper) Name() string {
	return "learning-backlog-sweeper"
}

// Start runs sweep cycles until the context is canceled or Stop is called
func (s *learningBacklogSweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting learning backlog sweeper",
		zap.Int("batch_size", s.config.BatchSize),
		zap.Int("worker_pool_size", s.config.WorkerPoolSize),
		zap.Duration("grace_period", s.config.GracePeriod),
		zap.Duration("interval", s.config.Interval),
	)

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Learning backlog sweeper stopping due to context cancellation", zap.Error(ctx.Err()))
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Learning backlog sweeper stop requested")
			return nil
		default:
			caughtUp, err := s.runSweepCycle(ctx)
			if err != nil && !errors.Is(err, context.Canceled) {
				logger.ErrorCtx(ctx, err)
			}
			if caughtUp || err != nil {
				s.sleep(ctx, s.config.Interval)
			}
		}
	}
}

// Stop gracefully stops the sweeper with timeout support
func (s *learningBacklogSweeper) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil
	}

	logger.InfoCtx(ctx, "Stopping learning backlog sweeper")
	close(s.stopChan)

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Learning backlog sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Learning backlog sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

// runSweepCycle starts learning for one page of the backlog.
// Returns true when the end of the backlog was reached and the cursor was reset.
func (s *learningBacklogSweeper) runSweepCycle(ctx context.Context) (bool, error) {
	startTime := s.clock.Now()

	var cursor *store.SweepCursor
	err := s.retry(ctx, "get sweep cursor", func() error {
		var err error
		cursor, err = s.cursorStore.GetSweepCursor(ctx, LEARNING_BACKLOG_CURSOR)
		return err
	})
	if err != nil {
		return false, fmt.Errorf("failed to get sweep cursor: %w", err)
	}

	filter := store.PendingLearningFilter{
		EndedBefore: startTime.Add(-s.config.GracePeriod),
		After:       cursor,
		Limit:       s.config.BatchSize,
	}

	var trips []schema.Trip
	err = s.retry(ctx, "get trips pending learning", func() error {
		var err error
		trips, err = s.store.GetTripsPendingLearning(ctx, filter)
		return err
	})
	if err != nil {
		return false, fmt.Errorf("failed to get trips pending learning: %w", err)
	}

	if len(trips) == 0 {
		if cursor != nil {
			if err := s.cursorStore.SetSweepCursor(ctx, LEARNING_BACKLOG_CURSOR, nil); err != nil {
				return false, fmt.Errorf("failed to reset sweep cursor: %w", err)
			}
		}
		logger.InfoCtx(ctx, "Learning backlog is empty, waiting for the next pass")
		return true, nil
	}

	logger.InfoCtx(ctx, "Found trips pending learning", zap.Int("count", len(trips)))

	var started, inFlight, failed atomic.Int32
	pool := pond.NewPool(
		s.config.WorkerPoolSize,
		pond.WithQueueSize(s.config.WorkerQueueSize),
		pond.WithContext(ctx),
	)
	for _, trip := range trips {
		tripID := trip.ID.String()
		pool.Submit(func() {
			_, err := temporal.StartTripLearning(ctx, s.orchestrator, s.taskQueue, tripID)
			if err != nil {
				var alreadyStarted *serviceerror.WorkflowExecutionAlreadyStarted
				if errors.As(err, &alreadyStarted) {
					inFlight.Add(1)
					return
				}
				failed.Add(1)
				logger.ErrorCtx(ctx, err, zap.String("tripID", tripID))
				return
			}
			started.Add(1)
		})
	}
	pool.StopAndWait()

	if err := ctx.Err(); err != nil {
		return false, err
	}

	last := trips[len(trips)-1]
	next := &store.SweepCursor{EndedAt: last.EndedAt, TripID: last.ID}
	if err := s.cursorStore.SetSweepCursor(ctx, LEARNING_BACKLOG_CURSOR, next); err != nil {
		return false, fmt.Errorf("failed to set sweep cursor: %w", err)
	}

	logger.InfoCtx(ctx, "Sweep cycle completed",
		zap.Duration("duration", s.clock.Since(startTime)),
		zap.Int("total", len(trips)),
		zap.Int32("started", started.Load()),
		zap.Int32("in_flight", inFlight.Load()),
		zap.Int32("failed", failed.Load()),
		zap.String("cursor", next.String()),
	)

	return len(trips) < s.config.BatchSize, nil
}

// retry runs the operation with exponential backoff until it succeeds or the retry budget is spent
func (s *learningBacklogSweeper) retry(ctx context.Context, name string, operation func() error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.config.RetryInitialInterval
	b.MaxInterval = 2 * time.Minute
	b.MaxElapsedTime = s.config.RetryMaxElapsedTime
	b.Multiplier = 2.0
	b.RandomizationFactor = 0.5

	var attemptCount int
	notifyOnError := func(err error, duration time.Duration) {
		attemptCount++
		logger.WarnCtx(ctx, "Store read failed, retrying",
			zap.String("operation", name),
			zap.Error(err),
			zap.Int("attempt", attemptCount),
			zap.Duration("next_retry_in", duration),
		)
	}

	err := backoff.RetryNotify(operation, backoff.WithContext(b, ctx), notifyOnError)
	if err != nil {
		return fmt.Errorf("failed after %d attempts: %w", attemptCount+1, err)
	}

	return nil
}

// sleep waits for the given duration unless the context is canceled or stop is requested
func (s *learningBacklogSweeper) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-s.clock.After(duration):
		return true
	case <-ctx.Done():
		return false
	case <-s.stopChan:
		return false
	}
}
