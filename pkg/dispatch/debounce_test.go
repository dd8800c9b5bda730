package dispatch

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestDebouncerButtonWindow(t *testing.T) {
	clock := newFakeClock()
	d := NewDebouncer(clock)
	up := Press(ButtonVolumeUp)

	assert.True(t, d.Accept(up), "t=0")
	clock.Advance(100 * time.Millisecond)
	assert.False(t, d.Accept(up), "t=100ms")
	clock.Advance(150 * time.Millisecond)
	assert.True(t, d.Accept(up), "t=250ms")
}

func TestDebouncerSuppressionKeepsTimestamp(t *testing.T) {
	clock := newFakeClock()
	d := NewDebouncer(clock)
	up := Press(ButtonVolumeUp)

	assert.True(t, d.Accept(up))
	for i := 0; i < 4; i++ {
		clock.Advance(50 * time.Millisecond)
		assert.False(t, d.Accept(up))
	}
	// 201ms after the last accepted send.
	clock.Advance(time.Millisecond)
	assert.True(t, d.Accept(up), "a held key passes once per window")
}

func TestDebouncerInclusiveBound(t *testing.T) {
	clock := newFakeClock()
	d := NewDebouncer(clock)
	assert.True(t, d.Accept(Release(ButtonVolumeDown)))
	clock.Advance(ButtonDebounce)
	assert.False(t, d.Accept(Release(ButtonVolumeDown)))
}

func TestDebouncerPerCommand(t *testing.T) {
	clock := newFakeClock()
	d := NewDebouncer(clock)

	assert.True(t, d.Accept(Press(ButtonVolumeUp)))
	assert.True(t, d.Accept(Press(ButtonVolumeDown)))
	assert.True(t, d.Accept(Release(ButtonVolumeUp)))
	assert.False(t, d.Accept(Press(ButtonVolumeUp)))
}

func TestDebouncerFocus(t *testing.T) {
	clock := newFakeClock()
	d := NewDebouncer(clock)

	assert.True(t, d.Accept(Focus()))
	clock.Advance(2 * time.Second)
	assert.False(t, d.Accept(Focus()))
	clock.Advance(1500 * time.Millisecond)
	assert.True(t, d.Accept(Focus()))
}

func TestDebouncerPowerNeverSuppressed(t *testing.T) {
	clock := newFakeClock()
	d := NewDebouncer(clock)
	for i := 0; i < 3; i++ {
		assert.True(t, d.Accept(PowerOff()))
		assert.True(t, d.Accept(PowerOn()))
	}
}

func TestDebouncerReset(t *testing.T) {
	d := NewDebouncer(newFakeClock())
	assert.True(t, d.Accept(Focus()))
	d.Reset()
	assert.True(t, d.Accept(Focus()))
}

func TestNewDebouncerDefaultsClock(t *testing.T) {
	d := NewDebouncer(nil)
	assert.True(t, d.Accept(PowerOn()))
}
