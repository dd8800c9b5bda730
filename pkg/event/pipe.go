package event

import (
	"sync"
)

// Pipe carries events from sources to Forward. It is an unbounded FIFO:
// Push never blocks and never discards, so platform hooks can deliver from
// threads that must not stall without losing a key release.
type Pipe struct {
	mu     sync.Mutex
	queue  []Event
	closed bool

	wake chan struct{}
	out  chan Event
}

// NewPipe returns an empty Pipe and starts the goroutine that feeds
// Events. The goroutine exits once the pipe is closed and drained.
func NewPipe() *Pipe {
	p := &Pipe{
		wake: make(chan struct{}, 1),
		out:  make(chan Event),
	}
	go p.pump()
	return p
}

// Push queues e. It reports false only if the pipe is closed.
func (p *Pipe) Push(e Event) bool {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return false
	}
	p.queue = append(p.queue, e)
	p.mu.Unlock()
	p.signal()
	return true
}

func (p *Pipe) signal() {
	select {
	case p.wake <- struct{}{}:
	default:
	}
}

func (p *Pipe) pump() {
	defer close(p.out)
	for {
		p.mu.Lock()
		for len(p.queue) == 0 {
			if p.closed {
				p.mu.Unlock()
				return
			}
			p.mu.Unlock()
			<-p.wake
			p.mu.Lock()
		}
		e := p.queue[0]
		p.queue[0] = Event{}
		p.queue = p.queue[1:]
		p.mu.Unlock()

		p.out <- e
	}
}

// Events returns the receive side in push order. It is closed after Close
// once every queued event has been received.
func (p *Pipe) Events() <-chan Event {
	return p.out
}

// Pending returns how many events are queued and not yet handed to a
// receiver.
func (p *Pipe) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.queue)
}

// Close stops accepting events. Events already queued can still be
// received.
func (p *Pipe) Close() {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	p.signal()
}
