package clock

import "time"

// Clock supplies monotonic time as an offset from some fixed origin.
type Clock interface {
	Now() time.Duration
}

type System struct {
	origin time.Time
}

func NewSystem() *System {
	return &System{origin: time.Now()}
}

// Now uses the monotonic reading carried by time.Time, so wall clock
// adjustments never produce a negative elapsed time.
func (c *System) Now() time.Duration {
	return time.Since(c.origin)
}

// Manual only moves when told to.
type Manual struct {
	now time.Duration
}

func (c *Manual) Now() time.Duration {
	return c.now
}

func (c *Manual) Advance(d time.Duration) {
	c.now += d
}

func (c *Manual) Set(d time.Duration) {
	c.now = d
}
