package ratelimit

import (
	"sync"
	"time"
)

// Kind identifies an outbound call class with its own spacing timer.
type Kind string

const (
	// KindAPI covers every generic API call.
	KindAPI Kind = "api"
	// KindAsset covers asset-listing calls, which callers issue in quick
	// succession (one per asset kind) and need wider spacing.
	KindAsset Kind = "asset"
)

// Limiter defines the interface for request spacing
type Limiter interface {
	// Wait blocks until at least the configured minimum interval has
	// elapsed since the last call of the given kind, then records now
	// as the new last-call time for that kind.
	Wait(kind Kind)
	// Reset clears the last-call timestamps
	Reset()
}

// IntervalLimiter enforces a minimum interval between consecutive calls
// of the same kind. State is instance-scoped so independent scrape
// sessions never throttle each other.
type IntervalLimiter struct {
	intervals map[Kind]time.Duration
	last      map[Kind]time.Time
	mu        sync.Mutex

	// Injectable for tests
	now   func() time.Time
	sleep func(time.Duration)
}

// NewIntervalLimiter creates an interval limiter with the given spacing
// per call kind.
func NewIntervalLimiter(apiInterval, assetInterval time.Duration) *IntervalLimiter {
	return &IntervalLimiter{
		intervals: map[Kind]time.Duration{
			KindAPI:   apiInterval,
			KindAsset: assetInterval,
		},
		last:  make(map[Kind]time.Time),
		now:   time.Now,
		sleep: time.Sleep,
	}
}

// Wait blocks until the minimum interval for kind has elapsed. The wait
// amount is deterministic: exactly the remainder of the interval, no jitter.
func (l *IntervalLimiter) Wait(kind Kind) {
	l.mu.Lock()
	interval, ok := l.intervals[kind]
	if !ok {
		l.mu.Unlock()
		return
	}

	var wait time.Duration
	if last, called := l.last[kind]; called {
		elapsed := l.now().Sub(last)
		if elapsed < interval {
			wait = interval - elapsed
		}
	}
	l.mu.Unlock()

	if wait > 0 {
		l.sleep(wait)
	}

	l.mu.Lock()
	l.last[kind] = l.now()
	l.mu.Unlock()
}

// Reset clears all last-call timestamps
func (l *IntervalLimiter) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.last = make(map[Kind]time.Time)
}
