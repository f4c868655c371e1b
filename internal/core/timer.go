package core

import (
	"sync"
	"time"
)

// DefaultTickInterval is the simulation tick period used when none is given.
const DefaultTickInterval = 30 * time.Millisecond

// Clock delivers tick notifications at a fixed interval, independent of how
// long the consumer takes to render. Delivery is best effort: when the
// consumer falls behind and the queue is full, ticks are dropped.
type Clock struct {
	interval time.Duration
	ticks    chan time.Time

	mu      sync.Mutex
	stop    chan struct{}
	done    chan struct{}
	running bool
}

// NewClock constructs a stopped Clock. queue bounds how many undelivered ticks
// may be pending at once.
func NewClock(interval time.Duration, queue int) *Clock {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	if queue <= 0 {
		queue = 1
	}
	return &Clock{interval: interval, ticks: make(chan time.Time, queue)}
}

// Interval returns the tick period.
func (c *Clock) Interval() time.Duration { return c.interval }

// C exposes the receive side of the tick queue.
func (c *Clock) C() <-chan time.Time { return c.ticks }

// Start launches the ticking goroutine. Calling Start on a running clock is a
// no-op.
func (c *Clock) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running {
		return
	}
	c.running = true
	c.stop = make(chan struct{})
	c.done = make(chan struct{})
	go c.loop(c.stop, c.done)
}

// Stop halts the ticking goroutine and waits for it to exit. It is safe to
// call more than once.
func (c *Clock) Stop() {
	c.mu.Lock()
	if !c.running {
		c.mu.Unlock()
		return
	}
	c.running = false
	stop, done := c.stop, c.done
	c.mu.Unlock()

	close(stop)
	<-done
}

// Drain returns the number of ticks currently queued, consuming them.
func (c *Clock) Drain() int {
	n := 0
	for {
		select {
		case <-c.ticks:
			n++
		default:
			return n
		}
	}
}

func (c *Clock) loop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	t := time.NewTicker(c.interval)
	defer t.Stop()
	for {
		select {
		case <-stop:
			return
		case now := <-t.C:
			select {
			case c.ticks <- now:
			default:
			}
		}
	}
}
