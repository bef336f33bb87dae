package chrono

import (
	"sync"
	"sync/atomic"
	"time"
)

var _ Clock = (*CachedClock)(nil)

// CachedClock trades accuracy for cheap reads: Now returns a Moment that a
// background ticker advances by a fixed step, so reads are a single atomic
// load. Suitable for hot paths that tolerate step-sized staleness.
type CachedClock struct {
	now    atomic.Int64
	step   time.Duration
	ticker *time.Ticker
	done   chan struct{}
	wg     sync.WaitGroup
}

// NewCachedClock starts a CachedClock refreshed every step.
// Steps below one millisecond are rounded up to a millisecond, the
// resolution a Moment carries. Callers must Stop it when done.
func NewCachedClock(step time.Duration) *CachedClock {
	if step < time.Millisecond {
		step = time.Millisecond
	}
	c := &CachedClock{
		step:   step,
		ticker: time.NewTicker(step),
		done:   make(chan struct{}),
	}
	c.now.Store(int64(SystemClock{}.Now()))

	c.wg.Add(1)
	go c.run()

	return c
}

func (c *CachedClock) run() {
	defer c.wg.Done()

	current := c.Now()
	stepMs := FromMillis(c.step.Milliseconds())

	for {
		select {
		case <-c.ticker.C:
			current = current.Add(stepMs)
			c.now.Store(int64(current))
		case <-c.done:
			c.ticker.Stop()
			return
		}
	}
}

func (c *CachedClock) Now() Moment {
	return Moment(c.now.Load())
}

func (c *CachedClock) Stop() {
	close(c.done)
	c.wg.Wait()
}
