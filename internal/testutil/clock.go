package testutil

import (
	"sync"
	"time"
)

// FixedClock provides a deterministic time source for tests.
//
// Each call to Now advances the clock by a fixed step, so records
// created in sequence get distinct, reproducible timestamps.
//
// Thread-safety: safe for concurrent use via internal mutex.
type FixedClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

// NewFixedClock creates a clock starting at base, advancing by step on
// every Now call. A zero step freezes the clock.
func NewFixedClock(base time.Time, step time.Duration) *FixedClock {
	return &FixedClock{now: base, step: step}
}

// Now returns the current clock time and advances by the step.
func (c *FixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}
