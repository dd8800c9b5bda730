package log

import (
	"time"
)

// Event is one captured occurrence on the bus or in the daemon.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID identifies the daemon run (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Direction indicates traffic flow relative to this device.
	Direction Direction `cbor:"3,keyasint"`

	// Layer where the event was captured.
	Layer Layer `cbor:"4,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"5,keyasint"`

	// Port is the adapter path, when known.
	Port string `cbor:"6,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Frame       *FrameEvent       `cbor:"10,keyasint,omitempty"` // CEC frame
	Key         *KeyEvent         `cbor:"11,keyasint,omitempty"` // remote key
	LibLog      *LibLogEvent      `cbor:"12,keyasint,omitempty"` // libcec log line
	Alert       *AlertEvent       `cbor:"13,keyasint,omitempty"` // adapter alert
	Dispatch    *DispatchEvent    `cbor:"14,keyasint,omitempty"` // dispatcher decision
	StateChange *StateChangeEvent `cbor:"15,keyasint,omitempty"` // lifecycle
	Error       *ErrorEventData   `cbor:"16,keyasint,omitempty"`
}

// Direction indicates the direction of traffic.
type Direction uint8

const (
	// DirectionIn is traffic received from the bus or an event source.
	DirectionIn Direction = 0
	// DirectionOut is traffic sent to the bus.
	DirectionOut Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// Layer indicates where the event was captured.
type Layer uint8

const (
	// LayerBus is the libcec callback boundary.
	LayerBus Layer = 0
	// LayerDispatch is the command dispatcher.
	LayerDispatch Layer = 1
	// LayerSource is an OS event source.
	LayerSource Layer = 2
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerBus:
		return "BUS"
	case LayerDispatch:
		return "DISPATCH"
	case LayerSource:
		return "SOURCE"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	CategoryCommand  Category = 0
	CategoryKeypress Category = 1
	CategoryLog      Category = 2
	CategoryAlert    Category = 3
	CategoryMenu     Category = 4
	CategorySource   Category = 5
	CategoryDispatch Category = 6
	CategoryState    Category = 7
	CategoryError    Category = 8
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryCommand:
		return "COMMAND"
	case CategoryKeypress:
		return "KEYPRESS"
	case CategoryLog:
		return "LOG"
	case CategoryAlert:
		return "ALERT"
	case CategoryMenu:
		return "MENU"
	case CategorySource:
		return "SOURCE"
	case CategoryDispatch:
		return "DISPATCH"
	case CategoryState:
		return "STATE"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseCategory resolves a category by name.
func ParseCategory(s string) (Category, bool) {
	for c := CategoryCommand; c <= CategoryError; c++ {
		if c.String() == s {
			return c, true
		}
	}
	return 0, false
}

// FrameEvent captures a CEC frame. Codes are stored raw so that frames the
// decoder rejected can still be recorded.
type FrameEvent struct {
	Initiator   int8   `cbor:"1,keyasint"`
	Destination int8   `cbor:"2,keyasint"`
	Opcode      uint8  `cbor:"3,keyasint"`
	OpcodeSet   bool   `cbor:"4,keyasint,omitempty"`
	Parameters  []byte `cbor:"5,keyasint,omitempty"`
	Ack         bool   `cbor:"6,keyasint,omitempty"`
	EOM         bool   `cbor:"7,keyasint,omitempty"`

	// Timeout is the transmit timeout, stored as nanoseconds.
	Timeout time.Duration `cbor:"8,keyasint,omitempty"`
}

// KeyEvent captures a remote-control key.
type KeyEvent struct {
	Keycode  uint8         `cbor:"1,keyasint"`
	Duration time.Duration `cbor:"2,keyasint,omitempty"`
}

// LibLogEvent captures a libcec log line.
type LibLogEvent struct {
	Level   uint8  `cbor:"1,keyasint"`
	Message string `cbor:"2,keyasint"`

	// Time is libcec's own timestamp, relative to connection open.
	Time time.Duration `cbor:"3,keyasint"`
}

// AlertEvent captures an adapter alert.
type AlertEvent struct {
	Alert uint8  `cbor:"1,keyasint"`
	Param string `cbor:"2,keyasint,omitempty"`
}

// DispatchEvent captures one dispatcher decision.
type DispatchEvent struct {
	// Command is the dispatcher command, e.g. "press(volume_up)".
	Command string `cbor:"1,keyasint"`

	Outcome Outcome `cbor:"2,keyasint"`

	// Error is set when Outcome is OutcomeFailed.
	Error string `cbor:"3,keyasint,omitempty"`

	// Latency is the time spent in the native call.
	Latency time.Duration `cbor:"4,keyasint,omitempty"`
}

// Outcome is what the dispatcher did with a command.
type Outcome uint8

const (
	OutcomeSent       Outcome = 0
	OutcomeSuppressed Outcome = 1
	OutcomeFailed     Outcome = 2
	OutcomeQueued     Outcome = 3
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeSent:
		return "SENT"
	case OutcomeSuppressed:
		return "SUPPRESSED"
	case OutcomeFailed:
		return "FAILED"
	case OutcomeQueued:
		return "QUEUED"
	default:
		return "UNKNOWN"
	}
}

// StateChangeEvent captures lifecycle events.
type StateChangeEvent struct {
	// Entity being changed.
	Entity StateEntity `cbor:"1,keyasint"`

	// OldState is the previous state (may be empty).
	OldState string `cbor:"2,keyasint,omitempty"`

	// NewState is the new state.
	NewState string `cbor:"3,keyasint"`

	// Reason for the change (if available).
	Reason string `cbor:"4,keyasint,omitempty"`
}

// StateEntity indicates what entity changed state.
type StateEntity uint8

const (
	StateEntityConnection StateEntity = 0
	StateEntityDispatcher StateEntity = 1
	StateEntityMenu       StateEntity = 2
	StateEntitySource     StateEntity = 3
	StateEntityConfig     StateEntity = 4
)

// String returns the state entity name.
func (s StateEntity) String() string {
	switch s {
	case StateEntityConnection:
		return "CONNECTION"
	case StateEntityDispatcher:
		return "DISPATCHER"
	case StateEntityMenu:
		return "MENU"
	case StateEntitySource:
		return "SOURCE"
	case StateEntityConfig:
		return "CONFIG"
	default:
		return "UNKNOWN"
	}
}

// ErrorEventData captures errors at any layer.
type ErrorEventData struct {
	// Layer where the error occurred.
	Layer Layer `cbor:"1,keyasint"`

	// Message is the error message.
	Message string `cbor:"2,keyasint"`

	// Context describes what operation was being performed.
	Context string `cbor:"3,keyasint,omitempty"`
}
