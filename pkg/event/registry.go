package event

import (
	"errors"
	"sync"
)

// ErrRegistryInUse is returned when a second sink is registered.
var ErrRegistryInUse = errors.New("event registry already has a sink")

// Registry is a single-slot holder for the sink of platform hooks that are
// invoked without a context argument. Because the slot is process-wide,
// only one sink, and so only one connection, can be live at a time.
type Registry struct {
	mu   sync.RWMutex
	sink *Pipe
}

// Hooks is the registry platform hooks deliver through.
var Hooks Registry

// Register installs p as the sink. The returned func clears the slot; it
// is safe to call more than once.
func (r *Registry) Register(p *Pipe) (unregister func(), err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sink != nil {
		return nil, ErrRegistryInUse
	}
	r.sink = p
	var once sync.Once
	return func() {
		once.Do(func() {
			r.mu.Lock()
			defer r.mu.Unlock()
			if r.sink == p {
				r.sink = nil
			}
		})
	}, nil
}

// Deliver pushes e to the registered sink. It reports false when there is no
// sink or the sink is closed.
func (r *Registry) Deliver(e Event) bool {
	r.mu.RLock()
	sink := r.sink
	r.mu.RUnlock()
	if sink == nil {
		return false
	}
	return sink.Push(e)
}
