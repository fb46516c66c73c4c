package looprunner

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestLoopRunsAndStops(t *testing.T) {
	var count int32
	l := New("test", func(ctx context.Context) time.Duration {
		atomic.AddInt32(&count, 1)
		return 5 * time.Millisecond
	})

	l.Start(context.Background())
	time.Sleep(50 * time.Millisecond)
	l.Stop()

	if atomic.LoadInt32(&count) == 0 {
		t.Fatalf("expected at least one iteration before Stop")
	}
	if l.State() != StateStopped {
		t.Fatalf("expected StateStopped after Stop, got %v", l.State())
	}
}

func TestLoopStopIsIdempotent(t *testing.T) {
	l := New("test", func(ctx context.Context) time.Duration { return time.Hour })
	l.Start(context.Background())
	l.Stop()
	l.Stop() // must not block or panic
}

func TestLoopStartIsIdempotentWhileRunning(t *testing.T) {
	l := New("test", func(ctx context.Context) time.Duration { return time.Hour })
	ctx := context.Background()
	l.Start(ctx)
	l.Start(ctx) // must not spawn a second goroutine or panic
	l.Stop()
}

func TestLoopStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	l := New("test", func(ctx context.Context) time.Duration { return time.Millisecond })
	l.Start(ctx)
	cancel()
	time.Sleep(20 * time.Millisecond)
	// Stop should still return promptly even though the loop already
	// exited via ctx.Done rather than stopCh.
	done := make(chan struct{})
	go func() {
		l.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Stop did not return after context cancellation")
	}
}
