package poll

import (
	"context"
	"sync"
	"time"
)

// Fetch retrieves a fresh snapshot for a source. The returned snapshot
// wholly replaces the previous one; no merging happens downstream.
type Fetch func(ctx context.Context) (any, error)

// IntervalFunc reports the current poll cadence for a source. Returning
// zero pauses the source; it is re-evaluated on the next check.
type IntervalFunc func() time.Duration

// Source describes one independently polled data feed.
type Source struct {
	Key      string
	Interval IntervalFunc
	Fetch    Fetch
}

// Update is the outcome of one poll cycle for a source. A failed fetch
// carries Err and no snapshot; consumers keep their prior snapshot.
type Update struct {
	Key      string
	Snapshot any
	Err      error
	At       time.Time
}

// pauseRecheck is how often a paused source re-evaluates its interval.
const pauseRecheck = time.Second

// Poller drives periodic fetches for a set of sources. Each source runs
// its own loop and awaits the previous fetch before scheduling the next,
// so at most one fetch per source is ever outstanding. Overlapping
// responses for a source therefore cannot race.
type Poller struct {
	updates chan Update
	now     func() time.Time
}

// New constructs a poller with the given update buffer.
func New(buffer int) *Poller {
	if buffer <= 0 {
		buffer = 16
	}
	return &Poller{updates: make(chan Update, buffer), now: time.Now}
}

// Updates returns the channel carrying poll outcomes.
func (p *Poller) Updates() <-chan Update {
	return p.updates
}

// Run polls all sources until the context is cancelled, then closes the
// update channel. Each source fetches once immediately and then on its
// interval.
func (p *Poller) Run(ctx context.Context, sources ...Source) {
	var wg sync.WaitGroup
	for _, src := range sources {
		wg.Add(1)
		go func(src Source) {
			defer wg.Done()
			p.runSource(ctx, src)
		}(src)
	}
	wg.Wait()
	close(p.updates)
}

// runSource is the per-source poll loop: evaluate interval, fetch, report,
// sleep. Cancellation abandons any in-flight fetch without effect.
func (p *Poller) runSource(ctx context.Context, src Source) {
	for {
		interval := pauseRecheck
		if src.Interval != nil {
			interval = src.Interval()
		}
		if interval <= 0 {
			if !sleep(ctx, pauseRecheck) {
				return
			}
			continue
		}
		snapshot, err := src.Fetch(ctx)
		if ctx.Err() != nil {
			return
		}
		update := Update{Key: src.Key, Err: err, At: p.now()}
		if err == nil {
			update.Snapshot = snapshot
		}
		select {
		case p.updates <- update:
		case <-ctx.Done():
			return
		}
		if !sleep(ctx, interval) {
			return
		}
	}
}

// sleep waits for d and reports false when the context ended first.
func sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}
