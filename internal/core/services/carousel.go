package services

import (
	"sync"
	"time"
)

const DefaultCarouselInterval = 5 * time.Second

// TickerFunc starts a periodic tick and returns its channel together with a
// stop function.
type TickerFunc func(d time.Duration) (<-chan time.Time, func())

func systemTicker(d time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(d)
	return t.C, t.Stop
}

type CarouselOption func(*Carousel)

func WithTicker(fn TickerFunc) CarouselOption {
	return func(c *Carousel) {
		c.newTicker = fn
	}
}

// WithOnChange registers a callback that receives the index after every
// change. It runs outside the carousel lock.
func WithOnChange(fn func(index int)) CarouselOption {
	return func(c *Carousel) {
		c.onChange = fn
	}
}

// Carousel cycles an index over a sequence of length n and advances it on a
// timer unless paused. With n == 0 it does nothing and runs no timer.
type Carousel struct {
	interval  time.Duration
	newTicker TickerFunc
	onChange  func(index int)

	mu     sync.Mutex
	length int
	index  int
	paused bool
	closed bool
	stop   chan struct{}
}

func NewCarousel(length int, interval time.Duration, opts ...CarouselOption) *Carousel {
	if interval <= 0 {
		interval = DefaultCarouselInterval
	}

	c := &Carousel{
		interval:  interval,
		newTicker: systemTicker,
		length:    max(length, 0),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.mu.Lock()
	c.restartLocked()
	c.mu.Unlock()

	return c
}

func (c *Carousel) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.index
}

func (c *Carousel) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.length
}

func (c *Carousel) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.paused
}

// Running reports whether an auto-advance timer is active.
func (c *Carousel) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.stop != nil
}

func (c *Carousel) Next() {
	c.move(func(i, n int) int { return (i + 1) % n })
}

func (c *Carousel) Prev() {
	c.move(func(i, n int) int { return (i - 1 + n) % n })
}

// GoTo jumps to index i. Out-of-range indexes are ignored.
func (c *Carousel) GoTo(i int) {
	c.move(func(_, n int) int {
		if i < 0 || i >= n {
			return -1
		}
		return i
	})
}

func (c *Carousel) move(step func(i, n int) int) {
	c.mu.Lock()
	if c.closed || c.length == 0 {
		c.mu.Unlock()
		return
	}

	next := step(c.index, c.length)
	if next < 0 {
		c.mu.Unlock()
		return
	}

	c.index = next
	cb := c.onChange
	c.mu.Unlock()

	if cb != nil {
		cb(next)
	}
}

// Pause suspends auto-advance and keeps the current index.
func (c *Carousel) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || c.paused {
		return
	}

	c.paused = true
	c.stopLocked()
}

func (c *Carousel) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || !c.paused {
		return
	}

	c.paused = false
	c.restartLocked()
}

// SetLength swaps in a sequence of a new length. The running timer is always
// cancelled and restarted so no tick lands on the old sequence.
func (c *Carousel) SetLength(n int) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}

	c.length = max(n, 0)
	if c.index >= c.length {
		c.index = 0
	}
	c.restartLocked()
	c.mu.Unlock()
}

// Close stops the timer for good. Further calls are no-ops.
func (c *Carousel) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	c.stopLocked()
}

func (c *Carousel) stopLocked() {
	if c.stop != nil {
		close(c.stop)
		c.stop = nil
	}
}

func (c *Carousel) restartLocked() {
	c.stopLocked()

	if c.closed || c.paused || c.length == 0 {
		return
	}

	stop := make(chan struct{})
	c.stop = stop
	ticks, stopTicker := c.newTicker(c.interval)

	go func() {
		defer stopTicker()

		for {
			select {
			case <-stop:
				return
			case <-ticks:
				c.tick(stop)
			}
		}
	}()
}

func (c *Carousel) tick(stop chan struct{}) {
	c.mu.Lock()
	if c.stop != stop || c.length == 0 {
		c.mu.Unlock()
		return
	}

	c.index = (c.index + 1) % c.length
	idx := c.index
	cb := c.onChange
	c.mu.Unlock()

	if cb != nil {
		cb(idx)
	}
}
