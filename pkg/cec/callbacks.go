package cec

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/owl-cec/owl/pkg/wire"
)

// Callbacks holds the handlers for libcec events. Any handler may be nil, in
// which case the event is decoded for the trace log and dropped.
//
// Handlers run on libcec's own threads. They must return quickly and must
// not call back into the connection.
type Callbacks struct {
	OnKeyPress             func(Keypress)
	OnCommand              func(Command)
	OnLogMessage           func(LogMessage)
	OnConfigurationChanged func(ConfigurationChange)
	OnAlert                func(Alert, Parameter)
	OnMenuStateChanged     func(MenuState)
	OnSourceActivated      func(SourceActivation)

	// Logger receives trace lines and decode failures. Nil means
	// slog.Default().
	Logger *slog.Logger
}

// MenuStateResult is returned to libcec from the menu-state callback.
const MenuStateResult int32 = 0

func (c *Callbacks) logger() *slog.Logger {
	if c == nil || c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}

func (c *Callbacks) trace(event string, args ...any) {
	c.logger().Log(context.Background(), LevelTrace, event, args...)
}

func (c *Callbacks) dropped(event string, err error) {
	c.logger().Log(context.Background(), LevelTrace, "dropping "+event, "error", err)
}

// guard recovers a panicking handler so it never unwinds into C.
func (c *Callbacks) guard(event string) {
	if r := recover(); r != nil {
		c.logger().Error("callback panicked", "event", event, "panic", fmt.Sprint(r))
	}
}

// HandleKeyPress decodes w and invokes OnKeyPress.
func (c *Callbacks) HandleKeyPress(w *wire.Keypress) {
	if c == nil {
		slog.Default().Log(context.Background(), LevelTrace, "key press without callbacks")
		return
	}
	defer c.guard("key_press")
	if w == nil {
		c.dropped("key_press", ErrNilRecord)
		return
	}
	k, err := DecodeKeypress(*w)
	if err != nil {
		c.dropped("key_press", err)
		return
	}
	c.trace("key_press", "key", k.Keycode, "duration", k.Duration)
	if c.OnKeyPress != nil {
		c.OnKeyPress(k)
	}
}

// HandleCommand decodes w and invokes OnCommand.
func (c *Callbacks) HandleCommand(w *wire.Command) {
	if c == nil {
		slog.Default().Log(context.Background(), LevelTrace, "command without callbacks")
		return
	}
	defer c.guard("command")
	if w == nil {
		c.dropped("command", ErrNilRecord)
		return
	}
	cmd, err := DecodeCommand(*w)
	if err != nil {
		c.dropped("command", err)
		return
	}
	c.trace("command", "command", cmd)
	if c.OnCommand != nil {
		c.OnCommand(cmd)
	}
}

// HandleLogMessage decodes w and invokes OnLogMessage. The record itself is
// not echoed to the trace log.
func (c *Callbacks) HandleLogMessage(w *wire.LogMessage) {
	if c == nil {
		return
	}
	defer c.guard("log_message")
	if w == nil {
		c.dropped("log_message", ErrNilRecord)
		return
	}
	m, err := DecodeLogMessage(*w)
	if err != nil {
		c.dropped("log_message", err)
		return
	}
	if c.OnLogMessage != nil {
		c.OnLogMessage(m)
	}
}

// HandleConfigurationChanged summarizes w and invokes
// OnConfigurationChanged.
func (c *Callbacks) HandleConfigurationChanged(w *wire.Configuration) {
	if c == nil {
		slog.Default().Log(context.Background(), LevelTrace, "configuration change without callbacks")
		return
	}
	defer c.guard("configuration_changed")
	if w == nil {
		c.dropped("configuration_changed", ErrNilRecord)
		return
	}
	change, err := DecodeConfigurationChange(*w)
	if err != nil {
		c.dropped("configuration_changed", err)
		return
	}
	c.trace("configuration_changed", "name", change.DeviceName, "addresses", change.LogicalAddresses)
	if c.OnConfigurationChanged != nil {
		c.OnConfigurationChanged(change)
	}
}

// HandleAlert decodes the alert and its parameter and invokes OnAlert.
func (c *Callbacks) HandleAlert(code int32, param wire.Parameter) {
	if c == nil {
		slog.Default().Log(context.Background(), LevelTrace, "alert without callbacks")
		return
	}
	defer c.guard("alert")
	a, err := DecodeAlert(code)
	if err != nil {
		c.dropped("alert", err)
		return
	}
	p, err := DecodeParameter(param)
	if err != nil {
		c.dropped("alert", err)
		return
	}
	c.trace("alert", "alert", a, "param", p.Text)
	if c.OnAlert != nil {
		c.OnAlert(a, p)
	}
}

// HandleMenuStateChanged decodes state and invokes OnMenuStateChanged. It
// always returns MenuStateResult.
func (c *Callbacks) HandleMenuStateChanged(state int32) (result int32) {
	result = MenuStateResult
	if c == nil {
		slog.Default().Log(context.Background(), LevelTrace, "menu state without callbacks")
		return
	}
	defer c.guard("menu_state_changed")
	s, err := DecodeMenuState(state)
	if err != nil {
		c.dropped("menu_state_changed", err)
		return
	}
	c.trace("menu_state_changed", "state", s)
	if c.OnMenuStateChanged != nil {
		c.OnMenuStateChanged(s)
	}
	return
}

// HandleSourceActivated decodes the address and invokes OnSourceActivated.
func (c *Callbacks) HandleSourceActivated(addr int32, activated uint8) {
	if c == nil {
		slog.Default().Log(context.Background(), LevelTrace, "source activation without callbacks")
		return
	}
	defer c.guard("source_activated")
	s, err := DecodeSourceActivation(addr, activated)
	if err != nil {
		c.dropped("source_activated", err)
		return
	}
	c.trace("source_activated", "address", s.Address, "activated", s.Activated)
	if c.OnSourceActivated != nil {
		c.OnSourceActivated(s)
	}
}

// ConfigurationChange is the subset of the connection configuration
// reported when libcec changes it at runtime.
type ConfigurationChange struct {
	DeviceName       string
	DeviceTypes      DeviceTypes
	PhysicalAddress  uint16
	BaseDevice       KnownAddress
	HDMIPort         uint8
	LogicalAddresses AddressSet
}

// DecodeConfigurationChange extracts a ConfigurationChange from w with the
// same fail-closed rules as the other decoders.
func DecodeConfigurationChange(w wire.Configuration) (ConfigurationChange, error) {
	name := w.DeviceName[:]
	if i := bytes.IndexByte(name, 0); i >= 0 {
		name = name[:i]
	}
	if !utf8.Valid(name) {
		return ConfigurationChange{}, ErrMessageParse
	}
	types, err := DecodeDeviceTypes(w.DeviceTypes)
	if err != nil {
		return ConfigurationChange{}, err
	}
	base, err := DecodeKnownAddress(w.BaseDevice)
	if err != nil {
		return ConfigurationChange{}, fmt.Errorf("base device: %w", err)
	}
	addrs, err := DecodeAddressSet(w.LogicalAddresses)
	if err != nil {
		return ConfigurationChange{}, fmt.Errorf("logical addresses: %w", err)
	}
	return ConfigurationChange{
		DeviceName:       string(name),
		DeviceTypes:      types,
		PhysicalAddress:  w.PhysicalAddress,
		BaseDevice:       base,
		HDMIPort:         w.HDMIPort,
		LogicalAddresses: addrs,
	}, nil
}
