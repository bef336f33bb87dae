package chrono

var _ Clock = (*ManualClock)(nil)

// ManualClock is a Clock that only moves when told to, for tests.
// Not safe for concurrent use.
type ManualClock struct {
	current Moment
}

// NewManualClock creates a ManualClock reading start.
func NewManualClock(start Moment) *ManualClock {
	return &ManualClock{current: start}
}

func (c *ManualClock) Now() Moment {
	return c.current
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d Duration) {
	c.current = c.current.Add(d)
}
