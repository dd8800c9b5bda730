package httpapi

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/owl-cec/owl/pkg/log"
)

// clientBuffer is the number of events queued per stream client before
// further events are dropped for that client.
const clientBuffer = 64

// StreamEvent is the JSON form of a capture event sent to stream clients.
type StreamEvent struct {
	Time      time.Time `json:"time"`
	Session   string    `json:"session"`
	Direction string    `json:"direction"`
	Layer     string    `json:"layer"`
	Category  string    `json:"category"`
	Port      string    `json:"port,omitempty"`
	Payload   any       `json:"payload,omitempty"`
}

func newStreamEvent(e log.Event) StreamEvent {
	s := StreamEvent{
		Time:      e.Timestamp,
		Session:   e.SessionID,
		Direction: e.Direction.String(),
		Layer:     e.Layer.String(),
		Category:  e.Category.String(),
		Port:      e.Port,
	}
	switch {
	case e.Frame != nil:
		s.Payload = e.Frame
	case e.Key != nil:
		s.Payload = e.Key
	case e.LibLog != nil:
		s.Payload = e.LibLog
	case e.Alert != nil:
		s.Payload = e.Alert
	case e.Dispatch != nil:
		s.Payload = map[string]any{
			"command": e.Dispatch.Command,
			"outcome": e.Dispatch.Outcome.String(),
			"error":   e.Dispatch.Error,
			"latency": e.Dispatch.Latency.String(),
		}
	case e.StateChange != nil:
		s.Payload = map[string]any{
			"entity":    e.StateChange.Entity.String(),
			"old_state": e.StateChange.OldState,
			"new_state": e.StateChange.NewState,
			"reason":    e.StateChange.Reason,
		}
	case e.Error != nil:
		s.Payload = map[string]any{
			"layer":   e.Error.Layer.String(),
			"message": e.Error.Message,
			"context": e.Error.Context,
		}
	}
	return s
}

// Hub fans capture events out to stream clients. It is a log.Logger, so
// it can sit in a log.MultiLogger next to the capture file.
type Hub struct {
	mu      sync.RWMutex
	clients map[chan []byte]struct{}
}

// NewHub returns an empty Hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[chan []byte]struct{})}
}

// Log encodes the event once and queues it for every client. Slow clients
// lose events rather than stall the caller.
func (h *Hub) Log(e log.Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if len(h.clients) == 0 {
		return
	}
	data, err := json.Marshal(newStreamEvent(e))
	if err != nil {
		return
	}
	for ch := range h.clients {
		select {
		case ch <- data:
		default:
		}
	}
}

func (h *Hub) subscribe() chan []byte {
	ch := make(chan []byte, clientBuffer)
	h.mu.Lock()
	h.clients[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *Hub) unsubscribe(ch chan []byte) {
	h.mu.Lock()
	delete(h.clients, ch)
	h.mu.Unlock()
}

// ClientCount returns the number of connected stream clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

var _ log.Logger = (*Hub)(nil)
