package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeClock drives the limiter deterministically. Sleeping advances
// the clock instead of blocking.
type fakeClock struct {
	now   time.Time
	slept []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(d time.Duration) {
	c.slept = append(c.slept, d)
	c.now = c.now.Add(d)
}

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestLimiter(api, asset time.Duration) (*IntervalLimiter, *fakeClock) {
	clock := newFakeClock()
	limiter := NewIntervalLimiter(api, asset)
	limiter.now = clock.Now
	limiter.sleep = clock.Sleep
	return limiter, clock
}

func TestWaitFirstCallDoesNotBlock(t *testing.T) {
	limiter, clock := newTestLimiter(2*time.Second, time.Second)

	limiter.Wait(KindAPI)

	assert.Empty(t, clock.slept)
}

func TestWaitSleepsExactRemainder(t *testing.T) {
	limiter, clock := newTestLimiter(2*time.Second, time.Second)

	limiter.Wait(KindAPI)
	clock.Advance(500 * time.Millisecond)
	limiter.Wait(KindAPI)

	assert.Equal(t, []time.Duration{1500 * time.Millisecond}, clock.slept)
}

func TestWaitSkipsSleepAfterIntervalElapsed(t *testing.T) {
	limiter, clock := newTestLimiter(2*time.Second, time.Second)

	limiter.Wait(KindAPI)
	clock.Advance(3 * time.Second)
	limiter.Wait(KindAPI)

	assert.Empty(t, clock.slept)
}

func TestWaitKindsAreIndependent(t *testing.T) {
	limiter, clock := newTestLimiter(2*time.Second, time.Second)

	limiter.Wait(KindAPI)
	limiter.Wait(KindAsset)

	// The asset call right after the API call must not inherit the
	// API timestamp.
	assert.Empty(t, clock.slept)

	limiter.Wait(KindAsset)
	assert.Equal(t, []time.Duration{time.Second}, clock.slept)
}

func TestWaitUnknownKindIsNoop(t *testing.T) {
	limiter, clock := newTestLimiter(2*time.Second, time.Second)

	limiter.Wait(Kind("download"))
	limiter.Wait(Kind("download"))

	assert.Empty(t, clock.slept)
}

func TestReset(t *testing.T) {
	limiter, clock := newTestLimiter(2*time.Second, time.Second)

	limiter.Wait(KindAPI)
	limiter.Reset()
	limiter.Wait(KindAPI)

	assert.Empty(t, clock.slept)
}

func TestInstancesDoNotShareState(t *testing.T) {
	first, firstClock := newTestLimiter(2*time.Second, time.Second)
	second, secondClock := newTestLimiter(2*time.Second, time.Second)
	second.now = firstClock.Now
	second.sleep = secondClock.Sleep

	first.Wait(KindAPI)
	second.Wait(KindAPI)

	// A fresh limiter never waits on another instance's history.
	assert.Empty(t, secondClock.slept)
}
