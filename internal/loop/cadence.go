package loop

import "time"

// Cadence schedules obstacle spawns on wall-clock time: one spawn as soon as
// it starts, then one every interval. Like time.Ticker it drops the intervals
// a slow reader misses instead of queueing them.
type Cadence struct {
	interval time.Duration
	next     time.Time
	running  bool
}

// NewCadence creates a stopped cadence.
func NewCadence(interval time.Duration) *Cadence {
	return &Cadence{interval: interval}
}

// Start arms the cadence so a spawn is due at now.
func (c *Cadence) Start(now time.Time) {
	c.next = now
	c.running = true
}

// Stop disarms the cadence until the next Start.
func (c *Cadence) Stop() {
	c.running = false
}

// Running reports whether the cadence is armed.
func (c *Cadence) Running() bool {
	return c.running
}

// Due reports whether a spawn is due at now and, if so, schedules the next one.
func (c *Cadence) Due(now time.Time) bool {
	if !c.running || now.Before(c.next) {
		return false
	}

	c.next = c.next.Add(c.interval)
	if !c.next.After(now) {
		// Missed whole intervals; resume from now
		c.next = now.Add(c.interval)
	}
	return true
}
