// Package chrono provides millisecond-resolution duration and point-in-time
// value types driven by an injected Clock, so time-dependent code stays
// testable against a controllable time source.
package chrono

// Duration is a length of time with millisecond resolution.
// Durations are ordinary integers underneath: they compare with the native
// ordering operators and may be negative.
type Duration int64

// FromMillis creates a Duration from a number of milliseconds.
func FromMillis(ms int64) Duration {
	return Duration(ms)
}

// FromSeconds creates a Duration from a number of seconds,
// truncated toward zero to whole milliseconds.
func FromSeconds(sec float64) Duration {
	return Duration(int64(sec * 1000))
}

// Millis returns the number of milliseconds d represents.
func (d Duration) Millis() int64 {
	return int64(d)
}

// Seconds returns the number of seconds d represents.
func (d Duration) Seconds() float64 {
	return float64(d) / 1000.0
}

// Add returns d + other.
func (d Duration) Add(other Duration) Duration {
	return d + other
}

// Sub returns d - other.
func (d Duration) Sub(other Duration) Duration {
	return d - other
}

// Scale returns d multiplied by coefficient.
func (d Duration) Scale(coefficient int64) Duration {
	return d * Duration(coefficient)
}
