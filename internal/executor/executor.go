// Package executor runs asynchronous jobs on a fixed set of worker goroutines
// and lets callers block until a job's result is available.
//
// It is the Go stand-in for a "block on this future" executor: submit a job,
// get a Future back, and Wait on it.
package executor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
)

// Job is the unit of work run by the executor. The function receives the
// executor's context so it can respect forced cancellation.
type Job func(ctx context.Context) error

// Config holds executor construction parameters.
type Config struct {
	// Workers is the number of goroutines that run jobs concurrently.
	Workers int

	// QueueSize is the capacity of the internal job channel. A value of 0
	// makes Submit block until a worker is free.
	QueueSize int

	// ShutdownTimeout is the maximum time Shutdown waits for in-flight jobs
	// before cancelling them. Defaults to 30 s.
	ShutdownTimeout time.Duration

	// Logger receives debug output. If nil, output is discarded.
	Logger *log.Logger
}

func (c *Config) withDefaults() Config {
	out := *c
	if out.Workers <= 0 {
		out.Workers = 1
	}
	if out.ShutdownTimeout <= 0 {
		out.ShutdownTimeout = 30 * time.Second
	}
	if out.Logger == nil {
		out.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return out
}

// Metrics is a snapshot of executor counters.
type Metrics struct {
	Submitted int64 // jobs accepted by Submit
	Started   int64 // jobs a worker picked up
	Succeeded int64 // jobs that returned nil
	Failed    int64 // jobs that returned an error or were skipped
	Dropped   int64 // jobs rejected by Submit
}

// Future is the pending result of a submitted job.
type Future struct {
	done chan struct{}
	err  error
}

func newFuture() *Future {
	return &Future{done: make(chan struct{})}
}

func (f *Future) resolve(err error) {
	f.err = err
	close(f.done)
}

// Done returns a channel that is closed once the job has finished.
func (f *Future) Done() <-chan struct{} { return f.done }

// Wait blocks until the job finishes or ctx is done. It returns the job's
// error, or ctx.Err() if the caller stopped waiting first.
func (f *Future) Wait(ctx context.Context) error {
	select {
	case <-f.done:
		return f.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

type task struct {
	job    Job
	future *Future
}

// Executor is a fixed-size set of workers consuming submitted jobs.
//
// Lifecycle:
//
//	ex := executor.New(cfg)
//	fut, _ := ex.Submit(ctx, job)
//	err := fut.Wait(ctx)
//	ex.Shutdown()
type Executor struct {
	cfg     Config
	tasks   chan task
	wg      sync.WaitGroup
	metrics Metrics

	workerCtx     context.Context
	cancelWorkers context.CancelFunc

	once   sync.Once
	closed atomic.Bool
}

// New creates an Executor and starts its workers.
func New(cfg Config) *Executor {
	cfg = cfg.withDefaults()

	workerCtx, cancelWorkers := context.WithCancel(context.Background())

	e := &Executor{
		cfg:           cfg,
		tasks:         make(chan task, cfg.QueueSize),
		workerCtx:     workerCtx,
		cancelWorkers: cancelWorkers,
	}

	e.cfg.Logger.Debug("executor starting",
		"workers", cfg.Workers, "queue", cfg.QueueSize, "shutdownTimeout", cfg.ShutdownTimeout)

	for i := 0; i < cfg.Workers; i++ {
		e.wg.Add(1)
		go e.runWorker(i)
	}

	return e
}

// Submit enqueues job and returns its Future. It returns ErrClosed once
// Shutdown has begun. If the queue is full Submit blocks, honoring ctx.
func (e *Executor) Submit(ctx context.Context, job Job) (*Future, error) {
	if e.closed.Load() {
		atomic.AddInt64(&e.metrics.Dropped, 1)
		return nil, ErrClosed
	}

	fut := newFuture()
	select {
	case e.tasks <- task{job: job, future: fut}:
		atomic.AddInt64(&e.metrics.Submitted, 1)
		return fut, nil
	case <-ctx.Done():
		atomic.AddInt64(&e.metrics.Dropped, 1)
		return nil, fmt.Errorf("submit cancelled: %w", ctx.Err())
	}
}

// Shutdown stops accepting jobs, drains the queue and waits for workers to
// exit. If they do not finish within ShutdownTimeout their context is
// cancelled and ErrShutdownTimeout is returned. Calling it again is a no-op.
func (e *Executor) Shutdown() error {
	var shutdownErr error

	e.once.Do(func() {
		e.cfg.Logger.Debug("executor shutdown initiated")

		e.closed.Store(true)
		close(e.tasks)

		done := make(chan struct{})
		go func() {
			e.wg.Wait()
			close(done)
		}()

		select {
		case <-done:
			e.cfg.Logger.Debug("executor shutdown complete")
		case <-time.After(e.cfg.ShutdownTimeout):
			e.cfg.Logger.Warn("executor shutdown timeout elapsed, cancelling workers",
				"timeout", e.cfg.ShutdownTimeout)
			e.cancelWorkers()
			<-done
			shutdownErr = ErrShutdownTimeout
		}
		e.cancelWorkers()
	})

	return shutdownErr
}

// Metrics returns a snapshot of the executor counters.
func (e *Executor) Metrics() Metrics {
	return Metrics{
		Submitted: atomic.LoadInt64(&e.metrics.Submitted),
		Started:   atomic.LoadInt64(&e.metrics.Started),
		Succeeded: atomic.LoadInt64(&e.metrics.Succeeded),
		Failed:    atomic.LoadInt64(&e.metrics.Failed),
		Dropped:   atomic.LoadInt64(&e.metrics.Dropped),
	}
}

func (e *Executor) runWorker(id int) {
	defer e.wg.Done()
	e.cfg.Logger.Debug("worker started", "worker", id)

	for t := range e.tasks {
		if err := e.workerCtx.Err(); err != nil {
			atomic.AddInt64(&e.metrics.Failed, 1)
			t.future.resolve(err)
			continue
		}

		atomic.AddInt64(&e.metrics.Started, 1)

		err := t.job(e.workerCtx)
		if err != nil {
			atomic.AddInt64(&e.metrics.Failed, 1)
			e.cfg.Logger.Debug("job failed", "worker", id, "err", err)
		} else {
			atomic.AddInt64(&e.metrics.Succeeded, 1)
		}
		t.future.resolve(err)
	}

	e.cfg.Logger.Debug("worker exited", "worker", id)
}

// BlockOn runs job on a single-worker executor and blocks the caller until it
// completes. The executor is shut down before BlockOn returns.
func BlockOn(ctx context.Context, logger *log.Logger, job Job) error {
	ex := New(Config{Workers: 1, Logger: logger})

	fut, err := ex.Submit(ctx, job)
	if err != nil {
		return errors.Join(err, ex.Shutdown())
	}

	waitErr := fut.Wait(ctx)
	if err := ex.Shutdown(); err != nil {
		return errors.Join(waitErr, err)
	}
	return waitErr
}

// Sentinel errors returned by the executor.
var (
	ErrClosed          = errors.New("executor is closed")
	ErrShutdownTimeout = errors.New("shutdown timeout elapsed; workers were cancelled")
)
