package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/guttosm/menu-service/internal/cache"
	"github.com/guttosm/menu-service/internal/logger"
	"github.com/guttosm/menu-service/internal/metrics"
)

// InvalidatorConfig holds configuration for the background invalidator.
type InvalidatorConfig struct {
	// QueueSize is the size of the task channel buffer.
	QueueSize int
	// Workers is the number of goroutines evicting keys.
	Workers int
	// MaxRetries is the number of retries after the first failed attempt.
	MaxRetries uint64
	// AttemptTimeout bounds a single eviction attempt.
	AttemptTimeout time.Duration
	// InitialBackoff is the delay before the first retry.
	InitialBackoff time.Duration
	// MaxBackoff caps the delay between retries.
	MaxBackoff time.Duration
}

// DefaultInvalidatorConfig returns sensible defaults for the invalidator.
func DefaultInvalidatorConfig() InvalidatorConfig {
	return InvalidatorConfig{
		QueueSize:      1024,
		Workers:        4,
		MaxRetries:     5,
		AttemptTimeout: 5 * time.Second,
		InitialBackoff: 50 * time.Millisecond,
		MaxBackoff:     2 * time.Second,
	}
}

// Invalidation is one unit of background eviction work.
type Invalidation struct {
	// Label names the write that produced the task, used in logs and metrics.
	Label string
	Set   InvalidationSet
}

// Evictor removes an invalidation set from the cache.
type Evictor interface {
	Invalidate(ctx context.Context, set InvalidationSet) error
}

// Dispatcher accepts invalidation work that must run after the current
// request without delaying it.
type Dispatcher interface {
	Dispatch(task Invalidation)
}

// InvalidatorStats is a snapshot of invalidator counters.
type InvalidatorStats struct {
	Queued     int64
	Overflowed int64
	Detached   int64
	Succeeded  int64
	Failed     int64
	Retried    int64
}

// Invalidator runs cache invalidation on a bounded worker pool. Dispatch never
// blocks and never drops: when the queue is full the task waits on its own
// goroutine for a free slot.
type Invalidator struct {
	evictor Evictor
	cfg     InvalidatorConfig
	taskCh  chan Invalidation

	mu       sync.RWMutex
	stopped  bool
	pending  sync.WaitGroup
	workers  sync.WaitGroup
	detached sync.WaitGroup

	queued     int64
	overflowed int64
	detachedN  int64
	succeeded  int64
	failed     int64
	retried    int64
}

// NewInvalidator starts the worker pool.
func NewInvalidator(evictor Evictor, cfg InvalidatorConfig) *Invalidator {
	defaults := DefaultInvalidatorConfig()
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = defaults.QueueSize
	}
	if cfg.Workers <= 0 {
		cfg.Workers = defaults.Workers
	}
	if cfg.AttemptTimeout <= 0 {
		cfg.AttemptTimeout = defaults.AttemptTimeout
	}
	if cfg.InitialBackoff <= 0 {
		cfg.InitialBackoff = defaults.InitialBackoff
	}
	if cfg.MaxBackoff <= 0 {
		cfg.MaxBackoff = defaults.MaxBackoff
	}

	inv := &Invalidator{
		evictor: evictor,
		cfg:     cfg,
		taskCh:  make(chan Invalidation, cfg.QueueSize),
	}

	for i := 0; i < cfg.Workers; i++ {
		inv.workers.Add(1)
		go inv.worker()
	}

	return inv
}

func (inv *Invalidator) worker() {
	defer inv.workers.Done()

	for task := range inv.taskCh {
		metrics.SetInvalidationQueueDepth(len(inv.taskCh))
		inv.run(task)
		inv.pending.Done()
	}
}

// Dispatch schedules task. After Stop the task runs on a detached goroutine
// so a write committed during shutdown still evicts its keys.
func (inv *Invalidator) Dispatch(task Invalidation) {
	if task.Set.Empty() {
		return
	}

	inv.mu.RLock()
	defer inv.mu.RUnlock()

	if inv.stopped {
		atomic.AddInt64(&inv.detachedN, 1)
		inv.detached.Add(1)
		go func() {
			defer inv.detached.Done()
			inv.run(task)
		}()
		return
	}

	inv.pending.Add(1)
	atomic.AddInt64(&inv.queued, 1)
	metrics.RecordInvalidation(task.Label, "queued", 0)

	select {
	case inv.taskCh <- task:
		metrics.SetInvalidationQueueDepth(len(inv.taskCh))
	default:
		atomic.AddInt64(&inv.overflowed, 1)
		metrics.RecordInvalidation(task.Label, "overflowed", 0)
		go func() { inv.taskCh <- task }()
	}
}

// run evicts task.Set, retrying with exponential backoff.
func (inv *Invalidator) run(task Invalidation) {
	start := time.Now()

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = inv.cfg.InitialBackoff
	b.MaxInterval = inv.cfg.MaxBackoff
	b.MaxElapsedTime = 0
	b.Reset()

	attempt := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), inv.cfg.AttemptTimeout)
		defer cancel()

		err := inv.evictor.Invalidate(ctx, task.Set)
		if errors.Is(err, cache.ErrInvalidPattern) {
			return backoff.Permanent(err)
		}
		return err
	}

	notify := func(err error, wait time.Duration) {
		atomic.AddInt64(&inv.retried, 1)
		metrics.RecordInvalidation(task.Label, "retried", 0)
		log := logger.WithComponent("invalidator")
		log.Warn().
			Err(err).
			Str("task", task.Label).
			Dur("retry_in", wait).
			Msg("Cache invalidation attempt failed")
	}

	err := backoff.RetryNotify(attempt, backoff.WithMaxRetries(b, inv.cfg.MaxRetries), notify)
	if err != nil {
		atomic.AddInt64(&inv.failed, 1)
		metrics.RecordInvalidation(task.Label, "failed", time.Since(start))
		log := logger.WithComponent("invalidator")
		log.Error().
			Err(err).
			Str("task", task.Label).
			Strs("keys", task.Set.Keys).
			Strs("patterns", task.Set.Patterns).
			Msg("Cache invalidation failed, entries may be stale until expiry")
		return
	}

	atomic.AddInt64(&inv.succeeded, 1)
	metrics.RecordInvalidation(task.Label, "succeeded", time.Since(start))
}

// Drain waits until every task accepted so far has finished or ctx is done.
func (inv *Invalidator) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		inv.pending.Wait()
		inv.detached.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop stops accepting queued work, drains accepted tasks and stops the
// workers. It is safe to call more than once.
func (inv *Invalidator) Stop(ctx context.Context) error {
	inv.mu.Lock()
	if inv.stopped {
		inv.mu.Unlock()
		return nil
	}
	inv.stopped = true
	inv.mu.Unlock()

	done := make(chan struct{})
	go func() {
		inv.pending.Wait()
		close(inv.taskCh)
		inv.workers.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stats returns current invalidator counters.
func (inv *Invalidator) Stats() InvalidatorStats {
	return InvalidatorStats{
		Queued:     atomic.LoadInt64(&inv.queued),
		Overflowed: atomic.LoadInt64(&inv.overflowed),
		Detached:   atomic.LoadInt64(&inv.detachedN),
		Succeeded:  atomic.LoadInt64(&inv.succeeded),
		Failed:     atomic.LoadInt64(&inv.failed),
		Retried:    atomic.LoadInt64(&inv.retried),
	}
}
