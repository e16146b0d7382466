package engine2D

import "time"

// maxFrameDelta caps a single step after a stall such as a window drag.
const maxFrameDelta = 100 * time.Millisecond

func NewFrameClock() *FrameClock {
	now := time.Now()
	return &FrameClock{start: now, last: now}
}

// Tick returns the time since the previous Tick and since the clock started.
func (c *FrameClock) Tick() (dt, elapsed time.Duration) {
	now := time.Now()
	dt = min(now.Sub(c.last), maxFrameDelta)
	c.last = now
	return dt, now.Sub(c.start)
}
