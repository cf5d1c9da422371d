package animate

import (
	"sync"
	"time"
)

// ManualClock is a Scheduler on virtual time. Nothing fires until Advance is
// called, which makes animations fully deterministic in tests.
type ManualClock struct {
	mu     sync.Mutex
	now    time.Duration
	nextID int
	timers map[int]*manualTimer
}

type manualTimer struct {
	id     int
	period time.Duration
	next   time.Duration
	tick   func()
}

// NewManualClock returns a clock at virtual time zero.
func NewManualClock() *ManualClock {
	return &ManualClock{timers: make(map[int]*manualTimer)}
}

// Every implements Scheduler. The first tick is due one period from now.
func (c *ManualClock) Every(period time.Duration, tick func()) CancelFunc {
	if period <= 0 {
		panic("animate: ManualClock.Every needs a positive period")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	id := c.nextID
	c.timers[id] = &manualTimer{
		id:     id,
		period: period,
		next:   c.now + period,
		tick:   tick,
	}

	return func() {
		c.mu.Lock()
		delete(c.timers, id)
		c.mu.Unlock()
	}
}

// Advance moves virtual time forward by d, firing every tick that falls due
// in order. Ticks run without the clock lock held, so they may cancel timers.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	end := c.now + d
	for {
		t := c.due(end)
		if t == nil {
			break
		}
		c.now = t.next
		t.next += t.period
		tick := t.tick
		c.mu.Unlock()
		tick()
		c.mu.Lock()
	}
	c.now = end
	c.mu.Unlock()
}

// due returns the earliest timer due at or before end. Ties go to the timer
// scheduled first. Caller holds c.mu.
func (c *ManualClock) due(end time.Duration) *manualTimer {
	var best *manualTimer
	for _, t := range c.timers {
		if t.next > end {
			continue
		}
		if best == nil || t.next < best.next || (t.next == best.next && t.id < best.id) {
			best = t
		}
	}
	return best
}

// Now returns the elapsed virtual time.
func (c *ManualClock) Now() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Pending returns the number of live timers.
func (c *ManualClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}
