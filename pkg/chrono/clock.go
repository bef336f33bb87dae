package chrono

import (
	"time"

	pkgRuntime "github.com/huynhanx03/go-fixedcap/pkg/runtime"
)

// Clock supplies the current Moment. Implementations must be monotonic:
// successive Now calls never go backwards.
type Clock interface {
	Now() Moment
}

// ClockFunc adapts a plain function to the Clock interface.
type ClockFunc func() Moment

func (f ClockFunc) Now() Moment { return f() }

var _ Clock = SystemClock{}

// SystemClock reads the runtime's monotonic clock.
// Its epoch is arbitrary; only differences between Moments are meaningful.
type SystemClock struct{}

func (SystemClock) Now() Moment {
	return Moment(pkgRuntime.NanoTime() / int64(time.Millisecond))
}
