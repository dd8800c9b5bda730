package log

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleFrame(ts time.Time) Event {
	return Event{
		Timestamp: ts,
		SessionID: "7f1c",
		Direction: DirectionOut,
		Layer:     LayerBus,
		Category:  CategoryCommand,
		Port:      "/dev/ttyACM0",
		Frame: &FrameEvent{
			Initiator:   1,
			Destination: 0,
			Opcode:      0x36,
			OpcodeSet:   true,
			Parameters:  []byte{0x02, 0x03},
			EOM:         true,
			Timeout:     time.Second,
		},
	}
}

func TestEncodeDecodeFrame(t *testing.T) {
	ts := time.Date(2026, 3, 1, 12, 0, 0, 123456789, time.UTC)
	in := sampleFrame(ts)

	data, err := MarshalEvent(in)
	require.NoError(t, err)

	out, err := UnmarshalEvent(data)
	require.NoError(t, err)
	assert.True(t, out.Timestamp.Equal(ts), "nanoseconds survive")
	assert.Equal(t, in.SessionID, out.SessionID)
	assert.Equal(t, in.Port, out.Port)
	require.NotNil(t, out.Frame)
	assert.Equal(t, *in.Frame, *out.Frame)
	assert.Nil(t, out.Key)
	assert.Nil(t, out.Dispatch)
}

func TestEncodeIsDeterministic(t *testing.T) {
	e := sampleFrame(time.Unix(0, 0).UTC())
	a, err := MarshalEvent(e)
	require.NoError(t, err)
	b, err := MarshalEvent(e)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestDecodeGarbage(t *testing.T) {
	_, err := UnmarshalEvent([]byte{0xff, 0x00})
	assert.Error(t, err)
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "IN", DirectionIn.String())
	assert.Equal(t, "OUT", DirectionOut.String())
	assert.Equal(t, "UNKNOWN", Direction(9).String())
	assert.Equal(t, "SOURCE", LayerSource.String())
	assert.Equal(t, "UNKNOWN", Layer(9).String())
	assert.Equal(t, "SUPPRESSED", OutcomeSuppressed.String())
	assert.Equal(t, "UNKNOWN", Outcome(9).String())
	assert.Equal(t, "CONFIG", StateEntityConfig.String())
	assert.Equal(t, "UNKNOWN", StateEntity(9).String())
}

func TestParseCategory(t *testing.T) {
	for c := CategoryCommand; c <= CategoryError; c++ {
		got, ok := ParseCategory(c.String())
		require.True(t, ok, c.String())
		assert.Equal(t, c, got)
	}
	_, ok := ParseCategory("UNKNOWN")
	assert.False(t, ok)
}
