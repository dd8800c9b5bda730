// Package event turns operating-system notifications into dispatcher
// commands.
//
// Sources (the interactive console, the HTTP API, platform hooks) produce
// Events into a Pipe. Forward drains the pipe and submits the matching
// dispatch.Command for each event.
package event

import (
	"errors"
	"fmt"
	"strings"

	"github.com/owl-cec/owl/pkg/dispatch"
)

// ErrUnknownEvent is returned by ParseEvent.
var ErrUnknownEvent = errors.New("unknown event")

// Key is a volume key on the host keyboard.
type Key uint8

const (
	KeyVolumeUp Key = iota + 1
	KeyVolumeDown
	KeyVolumeMute
)

var keyNames = map[Key]string{
	KeyVolumeUp:   "volume_up",
	KeyVolumeDown: "volume_down",
	KeyVolumeMute: "volume_mute",
}

func (k Key) String() string {
	if s, ok := keyNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Key(%d)", uint8(k))
}

// Button returns the remote-control button for k.
func (k Key) Button() dispatch.Button {
	switch k {
	case KeyVolumeUp:
		return dispatch.ButtonVolumeUp
	case KeyVolumeDown:
		return dispatch.ButtonVolumeDown
	case KeyVolumeMute:
		return dispatch.ButtonVolumeMute
	}
	return dispatch.ButtonNone
}

// Kind is the event tag.
type Kind uint8

const (
	KindSuspend Kind = iota + 1
	KindResume
	KindFocus
	KindPress
	KindRelease
)

var kindNames = map[Kind]string{
	KindSuspend: "suspend",
	KindResume:  "resume",
	KindFocus:   "focus",
	KindPress:   "press",
	KindRelease: "release",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Event is a host notification. Key is set only for press and release.
type Event struct {
	Kind Kind
	Key  Key
}

func Suspend() Event      { return Event{Kind: KindSuspend} }
func Resume() Event       { return Event{Kind: KindResume} }
func Focus() Event        { return Event{Kind: KindFocus} }
func Press(k Key) Event   { return Event{Kind: KindPress, Key: k} }
func Release(k Key) Event { return Event{Kind: KindRelease, Key: k} }

func (e Event) String() string {
	if e.Kind == KindPress || e.Kind == KindRelease {
		return e.Kind.String() + " " + e.Key.String()
	}
	return e.Kind.String()
}

// Command returns the dispatcher command for e: the host going to sleep
// turns the TV off, waking turns it on, and volume keys are passed through
// to the audio system.
func (e Event) Command() (dispatch.Command, error) {
	var c dispatch.Command
	switch e.Kind {
	case KindSuspend:
		c = dispatch.PowerOff()
	case KindResume:
		c = dispatch.PowerOn()
	case KindFocus:
		c = dispatch.Focus()
	case KindPress:
		c = dispatch.Press(e.Key.Button())
	case KindRelease:
		c = dispatch.Release(e.Key.Button())
	}
	if !c.Valid() {
		return dispatch.Command{}, fmt.Errorf("%w: %v", ErrUnknownEvent, e)
	}
	return c, nil
}

// ParseEvent parses "suspend", "resume", "focus", "press up",
// "release volume_mute" and so on.
func ParseEvent(s string) (Event, error) {
	fields := strings.Fields(strings.ToLower(s))
	if len(fields) == 0 || len(fields) > 2 {
		return Event{}, fmt.Errorf("%w: %q", ErrUnknownEvent, s)
	}

	var e Event
	for k, n := range kindNames {
		if n == fields[0] {
			e.Kind = k
		}
	}
	if len(fields) == 2 {
		for k, n := range keyNames {
			if n == fields[1] || n == "volume_"+fields[1] {
				e.Key = k
			}
		}
	}
	keyed := e.Kind == KindPress || e.Kind == KindRelease
	if keyed != (len(fields) == 2) {
		return Event{}, fmt.Errorf("%w: %q", ErrUnknownEvent, s)
	}
	if _, err := e.Command(); err != nil {
		return Event{}, fmt.Errorf("%w: %q", ErrUnknownEvent, s)
	}
	return e, nil
}
