package cec

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/owl-cec/owl/pkg/wire"
)

func traceLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: LevelTrace}))
}

func TestHandleKeyPress(t *testing.T) {
	var got []Keypress
	cb := &Callbacks{OnKeyPress: func(k Keypress) { got = append(got, k) }}

	cb.HandleKeyPress(&wire.Keypress{Keycode: 0x41, Duration: 10})
	cb.HandleKeyPress(&wire.Keypress{Keycode: 0x0E})
	cb.HandleKeyPress(nil)

	require.Len(t, got, 1)
	assert.Equal(t, KeyVolumeUp, got[0].Keycode)
}

func TestHandleCommandDropsUndecodable(t *testing.T) {
	var buf bytes.Buffer
	calls := 0
	cb := &Callbacks{
		OnCommand: func(Command) { calls++ },
		Logger:    traceLogger(&buf),
	}

	w := sampleCommand(t).Encode()
	cb.HandleCommand(&w)
	w.Opcode = 0x01
	cb.HandleCommand(&w)

	assert.Equal(t, 1, calls)
	assert.Contains(t, buf.String(), "dropping command")
	assert.Contains(t, buf.String(), "unknown opcode")
}

func TestHandlersWithoutCallbacks(t *testing.T) {
	var cb *Callbacks
	w := sampleCommand(t).Encode()

	assert.NotPanics(t, func() {
		cb.HandleCommand(&w)
		cb.HandleKeyPress(&wire.Keypress{})
		cb.HandleLogMessage(&wire.LogMessage{})
		cb.HandleConfigurationChanged(&wire.Configuration{})
		cb.HandleAlert(0, wire.Parameter{})
		cb.HandleSourceActivated(0, 1)
		assert.Equal(t, MenuStateResult, cb.HandleMenuStateChanged(0))
	})

	// A table with no handlers set drops everything.
	empty := &Callbacks{}
	assert.NotPanics(t, func() {
		empty.HandleCommand(&w)
		empty.HandleAlert(1, wire.Parameter{Type: 1, Data: []byte("x")})
	})
}

func TestHandlerPanicIsContained(t *testing.T) {
	var buf bytes.Buffer
	cb := &Callbacks{
		OnMenuStateChanged: func(MenuState) { panic("boom") },
		OnSourceActivated:  func(SourceActivation) { panic("boom") },
		Logger:             traceLogger(&buf),
	}

	var result int32 = -1
	assert.NotPanics(t, func() { result = cb.HandleMenuStateChanged(1) })
	assert.Equal(t, MenuStateResult, result)
	assert.NotPanics(t, func() { cb.HandleSourceActivated(4, 1) })
	assert.Contains(t, buf.String(), "callback panicked")
}

func TestHandleLogMessage(t *testing.T) {
	var got LogMessage
	cb := &Callbacks{OnLogMessage: func(m LogMessage) { got = m }}
	cb.HandleLogMessage(&wire.LogMessage{Message: []byte("hello"), Level: 1, Time: 5})
	assert.Equal(t, LogMessage{Message: "hello", Level: LogError, Time: 5e6}, got)
}

func TestHandleAlertAndMenuAndSource(t *testing.T) {
	var (
		alert  Alert
		param  Parameter
		menu   MenuState
		source SourceActivation
	)
	cb := &Callbacks{
		OnAlert:            func(a Alert, p Parameter) { alert, param = a, p },
		OnMenuStateChanged: func(s MenuState) { menu = s },
		OnSourceActivated:  func(s SourceActivation) { source = s },
	}

	cb.HandleAlert(3, wire.Parameter{Type: 1, Data: []byte("/dev/ttyACM0")})
	assert.Equal(t, AlertPortBusy, alert)
	assert.Equal(t, "/dev/ttyACM0", param.Text)

	assert.Equal(t, MenuStateResult, cb.HandleMenuStateChanged(1))
	assert.Equal(t, MenuDeactivated, menu)

	cb.HandleSourceActivated(5, 0)
	assert.Equal(t, AddressAudioSystem, source.Address.Address())
	assert.False(t, source.Activated)
}

func TestHandleConfigurationChanged(t *testing.T) {
	cfg, err := NewConfigBuilder().Name("owl").DeviceType(DeviceTypeRecordingDevice).DetectDevice(true).Build()
	require.NoError(t, err)
	w := cfg.Encode(wire.DefaultConfiguration())
	w.PhysicalAddress = 0x2000
	w.LogicalAddresses = wire.LogicalAddresses{Primary: 1}
	w.LogicalAddresses.Addresses[1] = 1

	var got ConfigurationChange
	cb := &Callbacks{OnConfigurationChanged: func(c ConfigurationChange) { got = c }}
	cb.HandleConfigurationChanged(&w)

	assert.Equal(t, "owl", got.DeviceName)
	assert.Equal(t, uint16(0x2000), got.PhysicalAddress)
	assert.Equal(t, AddressTV, got.BaseDevice.Address())
	assert.Equal(t, AddressRecordingDevice1, got.LogicalAddresses.Primary().Address())
	assert.Equal(t, []DeviceType{DeviceTypeRecordingDevice}, got.DeviceTypes.Types())
}

func TestDecodeConfigurationChangeRejectsBadBaseDevice(t *testing.T) {
	w := wire.DefaultConfiguration()
	w.BaseDevice = 99
	_, err := DecodeConfigurationChange(w)
	assert.ErrorIs(t, err, ErrUnknownAddress)
}
