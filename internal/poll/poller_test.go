package poll

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"flightdeck/internal/testutil"
)

func TestPollerFetchesImmediatelyAndRepeats(t *testing.T) {
	ctx, cancel := context.WithCancel(testutil.Context(t, 0))
	defer cancel()

	var calls atomic.Int64
	p := New(8)
	go p.Run(ctx, Source{
		Key:      "hooks",
		Interval: func() time.Duration { return 5 * time.Millisecond },
		Fetch: func(ctx context.Context) (any, error) {
			return calls.Add(1), nil
		},
	})

	first := <-p.Updates()
	if first.Key != "hooks" || first.Err != nil {
		t.Fatalf("unexpected first update: %+v", first)
	}
	if first.Snapshot != int64(1) {
		t.Fatalf("expected immediate first fetch, got %v", first.Snapshot)
	}

	second := <-p.Updates()
	if second.Snapshot != int64(2) {
		t.Fatalf("expected repeated fetch, got %v", second.Snapshot)
	}
}

func TestPollerReportsFetchErrors(t *testing.T) {
	ctx, cancel := context.WithCancel(testutil.Context(t, 0))
	defer cancel()

	bang := errors.New("backend unreachable")
	p := New(8)
	go p.Run(ctx, Source{
		Key:      "task",
		Interval: func() time.Duration { return time.Millisecond },
		Fetch: func(ctx context.Context) (any, error) {
			return nil, bang
		},
	})

	update := <-p.Updates()
	if !errors.Is(update.Err, bang) {
		t.Fatalf("expected fetch error surfaced, got %v", update.Err)
	}
	if update.Snapshot != nil {
		t.Fatalf("failed fetch must not carry a snapshot, got %v", update.Snapshot)
	}
}

func TestPollerNeverOverlapsFetchesPerSource(t *testing.T) {
	ctx, cancel := context.WithCancel(testutil.Context(t, 0))
	defer cancel()

	var inFlight atomic.Int64
	var maxSeen atomic.Int64
	p := New(64)
	go p.Run(ctx, Source{
		Key:      "hooks",
		Interval: func() time.Duration { return time.Millisecond },
		Fetch: func(ctx context.Context) (any, error) {
			n := inFlight.Add(1)
			defer inFlight.Add(-1)
			if prev := maxSeen.Load(); n > prev {
				maxSeen.Store(n)
			}
			time.Sleep(3 * time.Millisecond)
			return nil, nil
		},
	})

	for i := 0; i < 5; i++ {
		<-p.Updates()
	}
	cancel()

	if got := maxSeen.Load(); got > 1 {
		t.Fatalf("expected at most one outstanding fetch, saw %d", got)
	}
}

func TestPollerPausedSourceDoesNotFetch(t *testing.T) {
	ctx, cancel := context.WithCancel(testutil.Context(t, 0))
	defer cancel()

	var calls atomic.Int64
	p := New(8)
	go p.Run(ctx, Source{
		Key:      "session",
		Interval: func() time.Duration { return 0 },
		Fetch: func(ctx context.Context) (any, error) {
			return calls.Add(1), nil
		},
	})

	select {
	case update := <-p.Updates():
		t.Fatalf("paused source produced update: %+v", update)
	case <-time.After(50 * time.Millisecond):
	}
	if calls.Load() != 0 {
		t.Fatalf("paused source fetched %d times", calls.Load())
	}
}

func TestPollerClosesUpdatesOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	p := New(8)
	done := make(chan struct{})
	go func() {
		p.Run(ctx, Source{
			Key:      "hooks",
			Interval: func() time.Duration { return time.Millisecond },
			Fetch:    func(ctx context.Context) (any, error) { return nil, nil },
		})
		close(done)
	}()

	<-p.Updates()
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("poller did not stop after cancel")
	}
	testutil.Eventually(t, time.Second, 5*time.Millisecond, func() bool {
		_, open := <-p.Updates()
		return !open
	}, "updates channel not closed")
}
