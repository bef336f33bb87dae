package chrono

// Moment is a point in time, measured in milliseconds since the epoch of
// whatever Clock produced it. Moments from different Clocks do not compare
// meaningfully.
type Moment int64

// Add returns the Moment d after m.
func (m Moment) Add(d Duration) Moment {
	return m + Moment(d)
}

// Sub returns the Moment d before m.
func (m Moment) Sub(d Duration) Moment {
	return m - Moment(d)
}

// Since returns the Duration elapsed from earlier to m.
// The result is negative when earlier is after m.
func (m Moment) Since(earlier Moment) Duration {
	return Duration(m - earlier)
}

// Before reports whether m precedes other.
func (m Moment) Before(other Moment) bool {
	return m < other
}

// After reports whether m follows other.
func (m Moment) After(other Moment) bool {
	return m > other
}

// Equal reports whether m and other are the same instant.
func (m Moment) Equal(other Moment) bool {
	return m == other
}
