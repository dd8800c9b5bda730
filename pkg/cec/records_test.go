package cec

import (
	"log/slog"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/owl-cec/owl/pkg/wire"
)

func TestDecodeLogMessage(t *testing.T) {
	m, err := DecodeLogMessage(wire.LogMessage{
		Message: []byte("TV (0): power status changed"),
		Level:   8,
		Time:    1234,
	})
	require.NoError(t, err)
	assert.Equal(t, "TV (0): power status changed", m.Message)
	assert.Equal(t, LogTraffic, m.Level)
	assert.Equal(t, 1234*time.Millisecond, m.Time)

	back := m.Encode()
	assert.Equal(t, int32(8), back.Level)
	assert.Equal(t, int64(1234), back.Time)
}

func TestDecodeLogMessageErrorsAreIndependent(t *testing.T) {
	valid := wire.LogMessage{Message: []byte("ok"), Level: 1, Time: 0}

	bad := valid
	bad.Message = []byte{0xff, 0xfe, 'x'}
	_, err := DecodeLogMessage(bad)
	assert.ErrorIs(t, err, ErrMessageParse)

	bad = valid
	bad.Level = 3
	_, err = DecodeLogMessage(bad)
	assert.ErrorIs(t, err, ErrLogLevelParse)

	bad = valid
	bad.Time = -1
	_, err = DecodeLogMessage(bad)
	assert.ErrorIs(t, err, ErrTimestampParse)

	bad = valid
	bad.Time = math.MaxInt64
	_, err = DecodeLogMessage(bad)
	assert.ErrorIs(t, err, ErrTimestampParse)
}

func TestLogLevelSlogMapping(t *testing.T) {
	cases := map[LogLevel]slog.Level{
		LogError:   slog.LevelError,
		LogWarning: slog.LevelWarn,
		LogNotice:  LevelTrace,
		LogTraffic: LevelTrace,
		LogDebug:   slog.LevelDebug,
		LogAll:     LevelTrace,
	}
	for in, want := range cases {
		assert.Equal(t, want, in.SlogLevel(), in.String())
	}
}

func TestKeypressRoundTrip(t *testing.T) {
	k := Keypress{Keycode: KeyVolumeUp, Duration: 350 * time.Millisecond}
	w := k.Encode()
	assert.Equal(t, int32(0x41), w.Keycode)
	assert.Equal(t, uint32(350), w.Duration)

	got, err := DecodeKeypress(w)
	require.NoError(t, err)
	assert.Equal(t, k, got)
}

func TestDecodeKeypressUnknownKeycode(t *testing.T) {
	for _, code := range []int32{0x0E, 0x3F, 0x97, 0x100, -1} {
		_, err := DecodeKeypress(wire.Keypress{Keycode: code})
		assert.ErrorIs(t, err, ErrUnknownKeycode, "keycode 0x%X", code)
	}
	k, err := DecodeKeypress(wire.Keypress{Keycode: 0xFF})
	require.NoError(t, err)
	assert.Equal(t, KeyUnknown, k.Keycode)
}

func TestDecodeAlert(t *testing.T) {
	a, err := DecodeAlert(1)
	require.NoError(t, err)
	assert.Equal(t, AlertConnectionLost, a)

	_, err = DecodeAlert(6)
	assert.ErrorIs(t, err, ErrUnknownAlert)
}

func TestDecodeParameter(t *testing.T) {
	p, err := DecodeParameter(wire.Parameter{Type: 1, Data: []byte("/dev/ttyACM0")})
	require.NoError(t, err)
	assert.Equal(t, Parameter{Type: ParameterString, Text: "/dev/ttyACM0"}, p)

	p, err = DecodeParameter(wire.Parameter{Type: 2, Data: []byte{1, 2}})
	require.NoError(t, err)
	assert.Equal(t, Parameter{Type: ParameterUnknown}, p)

	_, err = DecodeParameter(wire.Parameter{Type: 9})
	assert.ErrorIs(t, err, ErrUnknownParameter)
}

func TestDecodeMenuState(t *testing.T) {
	s, err := DecodeMenuState(0)
	require.NoError(t, err)
	assert.Equal(t, MenuActivated, s)

	s, err = DecodeMenuState(1)
	require.NoError(t, err)
	assert.Equal(t, MenuDeactivated, s)

	_, err = DecodeMenuState(2)
	assert.ErrorIs(t, err, ErrUnknownMenuState)
}

func TestDecodeSourceActivation(t *testing.T) {
	s, err := DecodeSourceActivation(4, 1)
	require.NoError(t, err)
	assert.Equal(t, AddressPlaybackDevice1, s.Address.Address())
	assert.True(t, s.Activated)

	_, err = DecodeSourceActivation(-1, 1)
	assert.ErrorIs(t, err, ErrNoAddress)
}

func TestDeviceTypes(t *testing.T) {
	d, err := NewDeviceTypes(DeviceTypeRecordingDevice, DeviceTypePlaybackDevice)
	require.NoError(t, err)

	w := d.Encode()
	assert.Equal(t, [5]int32{1, 4, 2, 2, 2}, w.Types)

	got, err := DecodeDeviceTypes(w)
	require.NoError(t, err)
	assert.Equal(t, d, got)

	_, err = NewDeviceTypes()
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewDeviceTypes(DeviceTypeTV, DeviceTypeTV, DeviceTypeTV, DeviceTypeTV, DeviceTypeTV, DeviceTypeTV)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewDeviceTypes(DeviceTypeReserved)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "device_types", cfgErr.Field)

	_, err = NewDeviceTypes(DeviceTypeTV, DeviceTypeReserved)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = DecodeDeviceTypes(wire.DeviceTypeList{Types: [5]int32{9, 2, 2, 2, 2}})
	assert.ErrorIs(t, err, ErrUnknownDeviceType)
}

func TestParseDeviceTypeName(t *testing.T) {
	d, ok := ParseDeviceTypeName("recording_device")
	require.True(t, ok)
	assert.Equal(t, DeviceTypeRecordingDevice, d)
	assert.Equal(t, AddressRecordingDevice1, d.DefaultAddress())

	_, ok = ParseDeviceTypeName("fridge")
	assert.False(t, ok)
}
