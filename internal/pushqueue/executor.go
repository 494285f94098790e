// Package pushqueue provides a bounded single-lane work queue that executes
// jobs strictly in submission order.
//
// The snapshot is one shared document, so remote writes must not race each
// other: a later PUT completing before an earlier one would persist stale
// state. Routing every push through one worker closes that ordering gap.
package pushqueue

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"

	syncerrors "github.com/donskikhas/tipatask-sub001/internal/errors"
)

type queuedJob struct {
	ctx context.Context
	job Job
}

// Executor runs Jobs on a single worker goroutine in FIFO order.
type Executor struct {
	cfg   Config
	queue chan queuedJob
	log   zerolog.Logger

	done   chan struct{} // closed in Stop()
	closed uint32        // 0 → running, 1 → closed

	wg sync.WaitGroup
}

// New constructs the executor and starts its worker.
func New(cfg Config, log zerolog.Logger) *Executor {
	cfg = cfg.withDefaults()

	e := &Executor{
		cfg:   cfg,
		queue: make(chan queuedJob, cfg.QueueSize),
		log:   log,
		done:  make(chan struct{}),
	}
	e.wg.Add(1)
	go e.runWorker()
	return e
}

// Submit enqueues a job.
//
//   - Returns nil on success.
//   - Returns ErrExecutorClosed if the executor is stopped.
//   - Returns a *QueueFullError if no space frees up within EnqueueTimeout.
//   - Returns ctx.Err() if the caller context is cancelled first.
func (e *Executor) Submit(ctx context.Context, job Job) error {
	if atomic.LoadUint32(&e.closed) == 1 {
		return ErrExecutorClosed
	}
	// Complementary check: done may already be closed even if we missed
	// the flag change.
	select {
	case <-e.done:
		return ErrExecutorClosed
	default:
	}

	qj := queuedJob{ctx: ctx, job: job}

	timer := time.NewTimer(e.cfg.EnqueueTimeout)
	defer timer.Stop()

	select {
	case e.queue <- qj:
		submissionsTotal.Inc()
		return nil
	case <-e.done: // Stop() may be called while waiting for space
		return ErrExecutorClosed
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		queueFullTotal.Inc()
		return &QueueFullError{Length: len(e.queue), Capacity: cap(e.queue)}
	}
}

// Barrier enqueues a no-op job and waits until it runs, guaranteeing every
// previously submitted job has completed.
func (e *Executor) Barrier(ctx context.Context) error {
	done := make(chan struct{})
	j := JobFunc(func(context.Context) error {
		close(done)
		return nil
	})
	if err := e.Submit(ctx, j); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}

// Stop signals the worker to drain its queue, waits for it to terminate,
// and returns. Idempotent and safe for concurrent use.
func (e *Executor) Stop() {
	if !atomic.CompareAndSwapUint32(&e.closed, 0, 1) {
		return // already closed
	}

	e.log.Debug().Int("pending", len(e.queue)).Msg("pushqueue stopping")
	close(e.done)
	e.wg.Wait()
	e.log.Debug().Msg("pushqueue stopped, queue drained")
}

// Close lets Executor satisfy io.Closer.
func (e *Executor) Close() error {
	e.Stop()
	return nil
}

// ------------------------- internals -------------------------

func (e *Executor) runWorker() {
	defer e.wg.Done()

	// A panicking job must not take the worker down with it.
	defer func() {
		if r := recover(); r != nil {
			e.log.Error().Interface("panic", r).Msg("pushqueue worker panic")
		}
	}()

	for {
		select {
		case qj := <-e.queue:
			e.runJob(qj)
			queueDepth.Set(float64(len(e.queue)))

		case <-e.done:
			// Drain remaining jobs, preserving FIFO, then exit.
			for {
				select {
				case qj := <-e.queue:
					e.runJob(qj)
				default:
					queueDepth.Set(0)
					return
				}
			}
		}
	}
}

func (e *Executor) runJob(qj queuedJob) {
	if qj.job == nil {
		return
	}

	// Honour the submitter's context so a cancelled job doesn't stall
	// the lane.
	select {
	case <-qj.ctx.Done():
		e.safeHandleError(qj.ctx.Err())
		return
	default:
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = e.cfg.BaseBackoff
	exp.Multiplier = 2
	exp.MaxInterval = e.cfg.MaxInterval
	exp.Reset()

	attempts := 0
	for {
		start := time.Now()
		err := qj.job.Run(qj.ctx)
		runDuration.Observe(time.Since(start).Seconds())

		if err == nil {
			return
		}
		if syncerrors.IsIrrecoverable(err) {
			e.safeHandleError(err)
			return
		}
		if attempts >= e.cfg.MaxAttempts-1 {
			e.safeHandleError(err)
			return
		}

		attempts++
		wait := exp.NextBackOff()
		select {
		case <-time.After(wait):
		case <-e.done:
			return
		case <-qj.ctx.Done():
			e.safeHandleError(qj.ctx.Err())
			return
		}
	}
}

func (e *Executor) safeHandleError(err error) {
	if err == nil || e.cfg.ErrorHandler == nil {
		return
	}
	func() {
		// Guard against panics in the user-supplied handler.
		defer func() {
			if r := recover(); r != nil {
				e.log.Error().Interface("panic", r).Msg("pushqueue error handler panic")
			}
		}()
		e.cfg.ErrorHandler(err)
	}()
}
