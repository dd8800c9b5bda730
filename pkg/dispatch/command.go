package dispatch

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownCommand is returned by ParseCommand.
var ErrUnknownCommand = errors.New("unknown command")

// Kind is the command tag.
type Kind uint8

const (
	KindPowerOn Kind = iota + 1
	KindPowerOff
	KindFocus
	KindPress
	KindRelease
)

var kindNames = map[Kind]string{
	KindPowerOn:  "power_on",
	KindPowerOff: "power_off",
	KindFocus:    "focus",
	KindPress:    "press",
	KindRelease:  "release",
}

// String returns the kind name.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Button is a remote-control button carried by press and release commands.
type Button uint8

const (
	ButtonNone Button = iota
	ButtonVolumeUp
	ButtonVolumeDown
	ButtonVolumeMute
)

var buttonNames = map[Button]string{
	ButtonVolumeUp:   "volume_up",
	ButtonVolumeDown: "volume_down",
	ButtonVolumeMute: "volume_mute",
}

// String returns the button name.
func (b Button) String() string {
	if s, ok := buttonNames[b]; ok {
		return s
	}
	return fmt.Sprintf("Button(%d)", uint8(b))
}

// Command is a request for the worker. Commands are comparable; two
// commands are the same debounce key when both kind and button match.
type Command struct {
	Kind   Kind
	Button Button
}

// PowerOn wakes the display by making this device the active source.
func PowerOn() Command { return Command{Kind: KindPowerOn} }

// PowerOff puts the TV into standby.
func PowerOff() Command { return Command{Kind: KindPowerOff} }

// Focus makes this device the active source.
func Focus() Command { return Command{Kind: KindFocus} }

// Press sends a button press to the audio system.
func Press(b Button) Command { return Command{Kind: KindPress, Button: b} }

// Release sends a button release to the audio system.
func Release(b Button) Command { return Command{Kind: KindRelease, Button: b} }

// Valid reports whether c is a command the worker can execute.
func (c Command) Valid() bool {
	switch c.Kind {
	case KindPowerOn, KindPowerOff, KindFocus:
		return c.Button == ButtonNone
	case KindPress, KindRelease:
		_, ok := buttonNames[c.Button]
		return ok
	}
	return false
}

// String formats c as "power_on" or "press(volume_up)".
func (c Command) String() string {
	if c.Kind == KindPress || c.Kind == KindRelease {
		return c.Kind.String() + "(" + c.Button.String() + ")"
	}
	return c.Kind.String()
}

// ParseCommand parses the String form of a command. Button names may be
// given without the "volume_" prefix.
func ParseCommand(s string) (Command, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	name, arg, hasArg := strings.Cut(s, "(")
	if hasArg {
		var ok bool
		arg, ok = strings.CutSuffix(arg, ")")
		if !ok {
			return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, s)
		}
	}

	var c Command
	for k, n := range kindNames {
		if n == name {
			c.Kind = k
		}
	}
	if hasArg {
		for b, n := range buttonNames {
			if n == arg || n == "volume_"+arg {
				c.Button = b
			}
		}
	}
	if !c.Valid() {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, s)
	}
	return c, nil
}

// Debounce windows.
const (
	ButtonDebounce = 200 * time.Millisecond
	FocusDebounce  = 3 * time.Second
)

// DebounceWindow returns the window within which a repeat of c is dropped.
// Power commands have no window and are always sent.
func (c Command) DebounceWindow() (time.Duration, bool) {
	switch c.Kind {
	case KindPress, KindRelease:
		return ButtonDebounce, true
	case KindFocus:
		return FocusDebounce, true
	}
	return 0, false
}
