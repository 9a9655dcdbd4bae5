package kernel

import (
	"sync"
	"time"
)

// Clock supplies server-side timestamps.
type Clock interface {
	Now() time.Time
}

// MonotonicClock never hands out the same or an earlier instant twice within a
// process. Timestamps are truncated to microseconds to survive a round trip
// through a timestamptz column; when the wall clock stalls or steps back the
// previous value is advanced by one microsecond.
type MonotonicClock struct {
	mu   sync.Mutex
	last time.Time
	now  func() time.Time
}

func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{now: time.Now}
}

// NewMonotonicClockWithSource is used by tests to drive the wall clock.
func NewMonotonicClockWithSource(now func() time.Time) *MonotonicClock {
	return &MonotonicClock{now: now}
}

func (c *MonotonicClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := c.now().UTC().Truncate(time.Microsecond)
	if !t.After(c.last) {
		t = c.last.Add(time.Microsecond)
	}
	c.last = t
	return t
}
