package executor_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/marcodamonte/constructs/internal/executor"
)

// quietLogger discards debug output unless -v is set.
func quietLogger() *log.Logger {
	if testing.Verbose() {
		return log.NewWithOptions(os.Stderr, log.Options{Level: log.DebugLevel})
	}
	return log.NewWithOptions(&bytes.Buffer{}, log.Options{})
}

// ── Futures ──────────────────────────────────────────────────────────────────

// TestFutureReturnsJobError checks that Wait hands back exactly what the job
// returned.
func TestFutureReturnsJobError(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("intentional")
	ex := executor.New(executor.Config{Workers: 2, QueueSize: 2, Logger: quietLogger()})

	ok, err := ex.Submit(context.Background(), func(ctx context.Context) error { return nil })
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	bad, err := ex.Submit(context.Background(), func(ctx context.Context) error { return sentinel })
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if err := ok.Wait(context.Background()); err != nil {
		t.Errorf("ok.Wait() = %v; want nil", err)
	}
	if err := bad.Wait(context.Background()); !errors.Is(err, sentinel) {
		t.Errorf("bad.Wait() = %v; want %v", err, sentinel)
	}

	if err := ex.Shutdown(); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

// TestFutureWaitRespectsContext verifies that a caller can stop waiting on a
// job that has not finished.
func TestFutureWaitRespectsContext(t *testing.T) {
	t.Parallel()

	ex := executor.New(executor.Config{Workers: 1, Logger: quietLogger()})

	release := make(chan struct{})
	fut, err := ex.Submit(context.Background(), func(ctx context.Context) error {
		<-release
		return nil
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := fut.Wait(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Wait() = %v; want context.DeadlineExceeded", err)
	}

	close(release)
	<-fut.Done()
	if err := ex.Shutdown(); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

// ── BlockOn ──────────────────────────────────────────────────────────────────

// TestBlockOnRunsToCompletion ensures the job has fully run when BlockOn
// returns.
func TestBlockOnRunsToCompletion(t *testing.T) {
	t.Parallel()

	var ran atomic.Bool
	err := executor.BlockOn(context.Background(), quietLogger(), func(ctx context.Context) error {
		time.Sleep(10 * time.Millisecond)
		ran.Store(true)
		return nil
	})
	if err != nil {
		t.Fatalf("BlockOn() = %v; want nil", err)
	}
	if !ran.Load() {
		t.Error("job had not run when BlockOn returned")
	}
}

// TestBlockOnPropagatesError checks that the job error is returned unchanged.
func TestBlockOnPropagatesError(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("fetch failed")
	err := executor.BlockOn(context.Background(), nil, func(ctx context.Context) error {
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Errorf("BlockOn() = %v; want %v", err, sentinel)
	}
}

// ── Shutdown ─────────────────────────────────────────────────────────────────

// TestAllJobsProcessed checks that every submitted job runs before Shutdown
// returns.
func TestAllJobsProcessed(t *testing.T) {
	t.Parallel()

	const total = 50

	ex := executor.New(executor.Config{
		Workers:         5,
		QueueSize:       total,
		ShutdownTimeout: 5 * time.Second,
		Logger:          quietLogger(),
	})

	var ran int64
	for i := 0; i < total; i++ {
		if _, err := ex.Submit(context.Background(), func(ctx context.Context) error {
			atomic.AddInt64(&ran, 1)
			return nil
		}); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}

	if err := ex.Shutdown(); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
	if got := atomic.LoadInt64(&ran); got != total {
		t.Errorf("ran %d jobs; want %d", got, total)
	}
}

// TestShutdownTimeout verifies that jobs outliving the timeout are cancelled
// and ErrShutdownTimeout is returned.
func TestShutdownTimeout(t *testing.T) {
	t.Parallel()

	ex := executor.New(executor.Config{
		Workers:         2,
		QueueSize:       2,
		ShutdownTimeout: 50 * time.Millisecond,
		Logger:          quietLogger(),
	})

	var cancelled int64
	for i := 0; i < 2; i++ {
		if _, err := ex.Submit(context.Background(), func(ctx context.Context) error {
			<-ctx.Done()
			atomic.AddInt64(&cancelled, 1)
			return ctx.Err()
		}); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}

	if err := ex.Shutdown(); !errors.Is(err, executor.ErrShutdownTimeout) {
		t.Errorf("Shutdown() = %v; want ErrShutdownTimeout", err)
	}
	if got := atomic.LoadInt64(&cancelled); got == 0 {
		t.Error("expected at least one job to observe cancellation")
	}
}

// TestSubmitAfterShutdown confirms that a closed executor rejects jobs.
func TestSubmitAfterShutdown(t *testing.T) {
	t.Parallel()

	ex := executor.New(executor.Config{Workers: 1, ShutdownTimeout: time.Second, Logger: quietLogger()})
	if err := ex.Shutdown(); err != nil {
		t.Fatalf("shutdown: %v", err)
	}

	_, err := ex.Submit(context.Background(), func(ctx context.Context) error { return nil })
	if !errors.Is(err, executor.ErrClosed) {
		t.Errorf("got %v; want ErrClosed", err)
	}
	if m := ex.Metrics(); m.Dropped != 1 {
		t.Errorf("Dropped = %d; want 1", m.Dropped)
	}
}

// TestShutdownIdempotent verifies that Shutdown can be called repeatedly.
func TestShutdownIdempotent(t *testing.T) {
	t.Parallel()

	ex := executor.New(executor.Config{Workers: 2, ShutdownTimeout: time.Second, Logger: quietLogger()})
	for i := 0; i < 5; i++ {
		if err := ex.Shutdown(); err != nil {
			t.Fatalf("Shutdown call %d returned unexpected error: %v", i+1, err)
		}
	}
}

// ── Metrics ──────────────────────────────────────────────────────────────────

// TestMetrics checks the submitted/succeeded/failed tallies.
func TestMetrics(t *testing.T) {
	t.Parallel()

	const succeedN = 7
	const failN = 3
	sentinel := errors.New("intentional")

	ex := executor.New(executor.Config{
		Workers:         4,
		QueueSize:       succeedN + failN,
		ShutdownTimeout: 5 * time.Second,
		Logger:          quietLogger(),
	})

	for i := 0; i < succeedN; i++ {
		_, _ = ex.Submit(context.Background(), func(ctx context.Context) error { return nil })
	}
	for i := 0; i < failN; i++ {
		_, _ = ex.Submit(context.Background(), func(ctx context.Context) error { return sentinel })
	}

	if err := ex.Shutdown(); err != nil {
		t.Fatalf("shutdown: %v", err)
	}

	m := ex.Metrics()
	if m.Submitted != succeedN+failN {
		t.Errorf("Submitted = %d; want %d", m.Submitted, succeedN+failN)
	}
	if m.Started != succeedN+failN {
		t.Errorf("Started = %d; want %d", m.Started, succeedN+failN)
	}
	if m.Succeeded != succeedN {
		t.Errorf("Succeeded = %d; want %d", m.Succeeded, succeedN)
	}
	if m.Failed != failN {
		t.Errorf("Failed = %d; want %d", m.Failed, failN)
	}
}

// TestSubmitRespectsCallerContext verifies that Submit gives up when the
// caller's context ends while the queue is full.
func TestSubmitRespectsCallerContext(t *testing.T) {
	t.Parallel()

	ex := executor.New(executor.Config{Workers: 1, QueueSize: 0, ShutdownTimeout: time.Second, Logger: quietLogger()})

	blocker := make(chan struct{})
	if _, err := ex.Submit(context.Background(), func(ctx context.Context) error {
		<-blocker
		return nil
	}); err != nil {
		t.Fatalf("submit: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if _, err := ex.Submit(ctx, func(ctx context.Context) error { return nil }); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Submit() = %v; want context.DeadlineExceeded", err)
	}

	close(blocker)
	if err := ex.Shutdown(); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}
