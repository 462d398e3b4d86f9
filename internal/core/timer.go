package core

import "time"

// Cooldown gates generation updates so that at most one happens per interval,
// however often the frame loop polls it.
type Cooldown struct {
	interval time.Duration
	last     time.Time
	now      func() time.Time
}

// NewCooldown constructs a Cooldown with the given interval. A non-positive
// interval falls back to 200ms.
func NewCooldown(interval time.Duration) *Cooldown {
	c := &Cooldown{now: time.Now}
	c.SetInterval(interval)
	c.last = c.now()
	return c
}

// SetInterval changes the cooldown. It is safe to call from the main loop.
func (c *Cooldown) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = 200 * time.Millisecond
	}
	c.interval = interval
}

// Interval returns the configured cooldown.
func (c *Cooldown) Interval() time.Duration { return c.interval }

// SetClock replaces the time source, mainly for tests.
func (c *Cooldown) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	c.now = now
	c.last = now()
}

// Restart begins a fresh interval from the current time.
func (c *Cooldown) Restart() { c.last = c.now() }

// Ready reports whether more than one interval has elapsed since the last
// successful call or Restart. A true result starts the next interval.
func (c *Cooldown) Ready() bool {
	now := c.now()
	if now.Sub(c.last) <= c.interval {
		return false
	}
	c.last = now
	return true
}
