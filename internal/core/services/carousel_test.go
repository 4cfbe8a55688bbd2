package services_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/epic_events/internal/core/services"
)

// manualTicker hands out tick channels the test drives by hand.
type manualTicker struct {
	mu      sync.Mutex
	started []chan time.Time
	stopped int
}

func (m *manualTicker) new(d time.Duration) (<-chan time.Time, func()) {
	ch := make(chan time.Time)

	m.mu.Lock()
	m.started = append(m.started, ch)
	m.mu.Unlock()

	return ch, func() {
		m.mu.Lock()
		m.stopped++
		m.mu.Unlock()
	}
}

func (m *manualTicker) starts() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.started)
}

func (m *manualTicker) latest() chan time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.started[len(m.started)-1]
}

func TestCarousel_NextWrapsAround(t *testing.T) {
	c := services.NewCarousel(4, time.Hour)
	defer c.Close()

	var got []int
	for i := 0; i < 4; i++ {
		c.Next()
		got = append(got, c.Index())
	}

	assert.Equal(t, []int{1, 2, 3, 0}, got)
}

func TestCarousel_PrevFromZero(t *testing.T) {
	c := services.NewCarousel(4, time.Hour)
	defer c.Close()

	c.Prev()

	assert.Equal(t, 3, c.Index())
}

func TestCarousel_GoTo(t *testing.T) {
	c := services.NewCarousel(4, time.Hour)
	defer c.Close()

	c.GoTo(2)
	assert.Equal(t, 2, c.Index())

	c.GoTo(9)
	assert.Equal(t, 2, c.Index())

	c.GoTo(-1)
	assert.Equal(t, 2, c.Index())
}

func TestCarousel_EmptyIsInert(t *testing.T) {
	ticker := &manualTicker{}
	changes := 0
	c := services.NewCarousel(0, time.Second, services.WithTicker(ticker.new), services.WithOnChange(func(int) { changes++ }))
	defer c.Close()

	c.Next()
	c.Prev()
	c.GoTo(0)
	c.Resume()

	assert.Equal(t, 0, c.Index())
	assert.Equal(t, 0, ticker.starts())
	assert.False(t, c.Running())
	assert.Equal(t, 0, changes)
}

func TestCarousel_AutoAdvance(t *testing.T) {
	ticker := &manualTicker{}
	changed := make(chan int, 4)
	c := services.NewCarousel(3, time.Second, services.WithTicker(ticker.new), services.WithOnChange(func(i int) { changed <- i }))
	defer c.Close()

	require.Equal(t, 1, ticker.starts())

	ticker.latest() <- time.Now()
	assert.Equal(t, 1, <-changed)

	ticker.latest() <- time.Now()
	assert.Equal(t, 2, <-changed)

	ticker.latest() <- time.Now()
	assert.Equal(t, 0, <-changed)
}

func TestCarousel_PauseKeepsIndexAndResumeRestarts(t *testing.T) {
	ticker := &manualTicker{}
	changed := make(chan int, 4)
	c := services.NewCarousel(4, time.Second, services.WithTicker(ticker.new), services.WithOnChange(func(i int) { changed <- i }))
	defer c.Close()

	ticker.latest() <- time.Now()
	<-changed

	c.Pause()
	assert.True(t, c.Paused())
	assert.False(t, c.Running())
	assert.Equal(t, 1, c.Index())

	c.Resume()
	assert.True(t, c.Running())
	assert.Equal(t, 2, ticker.starts())
	assert.Equal(t, 1, c.Index())

	ticker.latest() <- time.Now()
	assert.Equal(t, 2, <-changed)
}

func TestCarousel_SetLengthRestartsTimer(t *testing.T) {
	ticker := &manualTicker{}
	c := services.NewCarousel(5, time.Second, services.WithTicker(ticker.new))
	defer c.Close()

	c.GoTo(4)
	c.SetLength(2)

	assert.Equal(t, 0, c.Index())
	assert.Equal(t, 2, ticker.starts())

	c.SetLength(0)
	assert.False(t, c.Running())
	assert.Equal(t, 2, ticker.starts())
}

func TestCarousel_CloseStopsEverything(t *testing.T) {
	ticker := &manualTicker{}
	c := services.NewCarousel(3, time.Second, services.WithTicker(ticker.new))

	c.Close()
	c.Next()
	c.Resume()
	c.SetLength(6)

	assert.False(t, c.Running())
	assert.Equal(t, 0, c.Index())
	assert.Equal(t, 1, ticker.starts())
	assert.Eventually(t, func() bool {
		ticker.mu.Lock()
		defer ticker.mu.Unlock()
		return ticker.stopped == 1
	}, time.Second, 5*time.Millisecond)
}

func TestCarousel_RealTicker(t *testing.T) {
	c := services.NewCarousel(3, 10*time.Millisecond)
	defer c.Close()

	assert.Eventually(t, func() bool { return c.Index() != 0 }, time.Second, 5*time.Millisecond)
}
