package dispatch

import "time"

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// RealClock returns a Clock backed by time.Now.
func RealClock() Clock { return realClock{} }

// Debouncer remembers when each command was last sent. It is owned by the
// worker and is not safe for concurrent use.
type Debouncer struct {
	clock Clock
	last  map[Command]time.Time
}

// NewDebouncer returns a Debouncer reading time from clock. A nil clock
// means RealClock.
func NewDebouncer(clock Clock) *Debouncer {
	if clock == nil {
		clock = RealClock()
	}
	return &Debouncer{clock: clock, last: make(map[Command]time.Time)}
}

// Accept reports whether cmd should be sent now. A command is rejected when
// the same command was accepted no more than its window ago; the recorded
// time is then left alone, so a held key is let through once per window.
func (d *Debouncer) Accept(cmd Command) bool {
	now := d.clock.Now()
	if last, ok := d.last[cmd]; ok {
		if window, ok := cmd.DebounceWindow(); ok && now.Sub(last) <= window {
			return false
		}
	}
	d.last[cmd] = now
	return true
}

// Reset forgets every recorded command.
func (d *Debouncer) Reset() {
	clear(d.last)
}
