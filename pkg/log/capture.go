package log

import (
	"time"

	"github.com/google/uuid"

	"github.com/owl-cec/owl/pkg/cec"
)

// Session stamps events with a run identifier and adapter port.
type Session struct {
	ID     string
	Port   string
	Logger Logger

	// Now is the clock. Nil means time.Now.
	Now func() time.Time
}

// NewSession returns a Session with a fresh random ID.
func NewSession(logger Logger) *Session {
	return &Session{ID: uuid.NewString(), Logger: OrNoop(logger)}
}

func (s *Session) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Emit stamps e with the session's ID, port and clock and logs it. A nil
// Session discards the event.
func (s *Session) Emit(e Event) {
	if s == nil || s.Logger == nil {
		return
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = s.now()
	}
	e.SessionID = s.ID
	if e.Port == "" {
		e.Port = s.Port
	}
	s.Logger.Log(e)
}

// State records a lifecycle transition.
func (s *Session) State(entity StateEntity, from, to, reason string) {
	s.Emit(Event{
		Direction: DirectionIn,
		Layer:     LayerDispatch,
		Category:  CategoryState,
		StateChange: &StateChangeEvent{
			Entity:   entity,
			OldState: from,
			NewState: to,
			Reason:   reason,
		},
	})
}

// Fail records an error.
func (s *Session) Fail(layer Layer, context string, err error) {
	if err == nil {
		return
	}
	s.Emit(Event{
		Layer:    layer,
		Category: CategoryError,
		Error:    &ErrorEventData{Layer: layer, Message: err.Error(), Context: context},
	})
}

// NewFrameEvent converts a decoded command.
func NewFrameEvent(c cec.Command) *FrameEvent {
	f := &FrameEvent{
		Initiator:   int8(c.Initiator),
		Destination: int8(c.Destination),
		Opcode:      uint8(c.Opcode),
		OpcodeSet:   c.OpcodeSet,
		Ack:         c.Ack,
		EOM:         c.EOM,
		Timeout:     c.TransmitTimeout,
	}
	if c.Parameters.Len() > 0 {
		f.Parameters = c.Parameters.Bytes()
	}
	return f
}

// Capture returns callbacks that record every decoded libcec event to s
// before passing it on to next. next may be nil. The returned table shares
// next's Logger.
func Capture(s *Session, next *cec.Callbacks) *cec.Callbacks {
	if next == nil {
		next = &cec.Callbacks{}
	}
	bus := func(cat Category, e Event) {
		e.Direction = DirectionIn
		e.Layer = LayerBus
		e.Category = cat
		s.Emit(e)
	}
	return &cec.Callbacks{
		Logger: next.Logger,
		OnKeyPress: func(k cec.Keypress) {
			bus(CategoryKeypress, Event{Key: &KeyEvent{Keycode: uint8(k.Keycode), Duration: k.Duration}})
			if next.OnKeyPress != nil {
				next.OnKeyPress(k)
			}
		},
		OnCommand: func(c cec.Command) {
			bus(CategoryCommand, Event{Frame: NewFrameEvent(c)})
			if next.OnCommand != nil {
				next.OnCommand(c)
			}
		},
		OnLogMessage: func(m cec.LogMessage) {
			bus(CategoryLog, Event{LibLog: &LibLogEvent{Level: uint8(m.Level), Message: m.Message, Time: m.Time}})
			if next.OnLogMessage != nil {
				next.OnLogMessage(m)
			}
		},
		OnConfigurationChanged: func(c cec.ConfigurationChange) {
			bus(CategoryState, Event{StateChange: &StateChangeEvent{
				Entity:   StateEntityConfig,
				NewState: c.LogicalAddresses.String(),
				Reason:   c.DeviceName,
			}})
			if next.OnConfigurationChanged != nil {
				next.OnConfigurationChanged(c)
			}
		},
		OnAlert: func(a cec.Alert, p cec.Parameter) {
			bus(CategoryAlert, Event{Alert: &AlertEvent{Alert: uint8(a), Param: p.Text}})
			if next.OnAlert != nil {
				next.OnAlert(a, p)
			}
		},
		OnMenuStateChanged: func(m cec.MenuState) {
			bus(CategoryMenu, Event{StateChange: &StateChangeEvent{
				Entity:   StateEntityMenu,
				NewState: m.String(),
			}})
			if next.OnMenuStateChanged != nil {
				next.OnMenuStateChanged(m)
			}
		},
		OnSourceActivated: func(a cec.SourceActivation) {
			state := "inactive"
			if a.Activated {
				state = "active"
			}
			bus(CategorySource, Event{StateChange: &StateChangeEvent{
				Entity:   StateEntitySource,
				NewState: state,
				Reason:   a.Address.String(),
			}})
			if next.OnSourceActivated != nil {
				next.OnSourceActivated(a)
			}
		},
	}
}
