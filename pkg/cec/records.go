package cec

import (
	"fmt"
	"math"
	"time"
	"unicode/utf8"

	"github.com/owl-cec/owl/pkg/wire"
)

// Keypress is a remote-control key event.
type Keypress struct {
	Keycode  UserControlCode
	Duration time.Duration
}

// Encode returns the wire form.
func (k Keypress) Encode() wire.Keypress {
	return wire.Keypress{Keycode: k.Keycode.Code(), Duration: millisU32(k.Duration)}
}

// DecodeKeypress converts the wire form.
func DecodeKeypress(w wire.Keypress) (Keypress, error) {
	code, ok := ParseUserControlCode(w.Keycode)
	if !ok {
		return Keypress{}, fmt.Errorf("%w: 0x%X", ErrUnknownKeycode, w.Keycode)
	}
	return Keypress{
		Keycode:  code,
		Duration: time.Duration(w.Duration) * time.Millisecond,
	}, nil
}

// LogMessage is a diagnostic line emitted by libcec. Time is measured from
// the moment the connection was opened.
type LogMessage struct {
	Message string
	Level   LogLevel
	Time    time.Duration
}

// DecodeLogMessage converts the wire form. The message text, level and
// timestamp are validated independently, each with its own error.
func DecodeLogMessage(w wire.LogMessage) (LogMessage, error) {
	if !utf8.Valid(w.Message) {
		return LogMessage{}, ErrMessageParse
	}
	level, ok := ParseLogLevel(int64(w.Level))
	if !ok {
		return LogMessage{}, fmt.Errorf("%w: %d", ErrLogLevelParse, w.Level)
	}
	if w.Time < 0 || w.Time > math.MaxInt64/int64(time.Millisecond) {
		return LogMessage{}, fmt.Errorf("%w: %d", ErrTimestampParse, w.Time)
	}
	return LogMessage{
		Message: string(w.Message),
		Level:   level,
		Time:    time.Duration(w.Time) * time.Millisecond,
	}, nil
}

// Encode returns the wire form.
func (m LogMessage) Encode() wire.LogMessage {
	return wire.LogMessage{
		Message: []byte(m.Message),
		Level:   int32(m.Level),
		Time:    m.Time.Milliseconds(),
	}
}

// DecodeAlert converts an alert code.
func DecodeAlert(code int32) (Alert, error) {
	a, ok := ParseAlert(int64(code))
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownAlert, code)
	}
	return a, nil
}

// Parameter is the payload attached to an alert.
type Parameter struct {
	Type ParameterType
	Text string
}

// DecodeParameter converts the wire form. Only string parameters carry text.
func DecodeParameter(w wire.Parameter) (Parameter, error) {
	t, ok := ParseParameterType(int64(w.Type))
	if !ok {
		return Parameter{}, fmt.Errorf("%w: %d", ErrUnknownParameter, w.Type)
	}
	p := Parameter{Type: t}
	if t == ParameterString && len(w.Data) > 0 {
		if !utf8.Valid(w.Data) {
			return Parameter{}, ErrMessageParse
		}
		p.Text = string(w.Data)
	}
	return p, nil
}

// DecodeMenuState converts a menu state code.
func DecodeMenuState(code int32) (MenuState, error) {
	s, ok := ParseMenuState(int64(code))
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownMenuState, code)
	}
	return s, nil
}

// SourceActivation reports that a device became, or stopped being, the
// active source.
type SourceActivation struct {
	Address   KnownAddress
	Activated bool
}

// DecodeSourceActivation converts the arguments of the source-activated
// callback.
func DecodeSourceActivation(addr int32, activated uint8) (SourceActivation, error) {
	k, err := DecodeKnownAddress(addr)
	if err != nil {
		return SourceActivation{}, err
	}
	return SourceActivation{Address: k, Activated: activated != 0}, nil
}
