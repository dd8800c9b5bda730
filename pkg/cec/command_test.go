package cec

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/owl-cec/owl/pkg/wire"
)

func TestDataPacketRoundTrip(t *testing.T) {
	full := make([]byte, 64)
	for i := range full {
		full[i] = byte(i + 1)
	}
	for _, b := range [][]byte{{}, {7}, full} {
		p, err := NewDataPacket(b...)
		require.NoError(t, err)
		got := DecodeDataPacket(p.Encode())
		assert.Equal(t, p, got)
		assert.Equal(t, b, got.Bytes())
	}
}

func TestDataPacketEncodeZeroFills(t *testing.T) {
	p := MustDataPacket(2, 50)
	w := p.Encode()

	var want [64]byte
	want[0], want[1] = 2, 50
	assert.Equal(t, want, w.Data)
	assert.Equal(t, uint8(2), w.Size)
}

func TestDataPacketTooLarge(t *testing.T) {
	_, err := NewDataPacket(make([]byte, 65)...)
	assert.ErrorIs(t, err, ErrPacketTooLarge)
}

func TestDecodeDataPacketFromFullBuffer(t *testing.T) {
	var w wire.DataPacket
	for i := range w.Data {
		w.Data[i] = 50
	}
	w.Data[0], w.Data[1], w.Data[3] = 5, 7, 99
	w.Size = 3

	p := DecodeDataPacket(w)
	assert.Equal(t, []byte{5, 7, 50}, p.Bytes())

	// The decoded packet re-encodes with a clean tail.
	re := p.Encode()
	assert.Equal(t, byte(0), re.Data[3])
}

func TestDecodeDataPacketClampsSize(t *testing.T) {
	p := DecodeDataPacket(wire.DataPacket{Size: 200})
	assert.Equal(t, 64, p.Len())
}

func sampleCommand(t *testing.T) Command {
	t.Helper()
	return Command{
		Initiator:       AddressPlaybackDevice1,
		Destination:     AddressPlaybackDevice2,
		Ack:             false,
		EOM:             true,
		Opcode:          OpcodeClearAnalogueTimer,
		Parameters:      MustDataPacket(2, 3),
		OpcodeSet:       true,
		TransmitTimeout: 65 * time.Second,
	}
}

func TestCommandEncode(t *testing.T) {
	w := sampleCommand(t).Encode()

	assert.Equal(t, int32(4), w.Initiator)
	assert.Equal(t, int32(8), w.Destination)
	assert.Equal(t, int8(0), w.Ack)
	assert.Equal(t, int8(1), w.EOM)
	assert.Equal(t, int32(0x33), w.Opcode)
	assert.Equal(t, int8(1), w.OpcodeSet)
	assert.Equal(t, int32(65000), w.TransmitTimeout)
	assert.Equal(t, uint8(2), w.Parameters.Size)
	assert.Equal(t, []byte{2, 3}, w.Parameters.Data[:2])
}

func TestCommandRoundTrip(t *testing.T) {
	cmd := sampleCommand(t)
	got, err := DecodeCommand(cmd.Encode())
	require.NoError(t, err)
	assert.Equal(t, cmd, got)
	assert.Equal(t, 65*time.Second, got.TransmitTimeout)
}

func TestCommandRoundTripAllOpcodes(t *testing.T) {
	for _, op := range Opcodes() {
		cmd, err := NewCommand(AddressTV, AddressBroadcast, op, 0x10)
		require.NoError(t, err)
		got, err := DecodeCommand(cmd.Encode())
		if err != nil {
			t.Fatalf("%s: %v", op, err)
		}
		if got != cmd {
			t.Errorf("%s: got %+v, want %+v", op, got, cmd)
		}
	}
}

func TestDecodeCommandUnknownOpcode(t *testing.T) {
	w := sampleCommand(t).Encode()
	for _, code := range []int32{0x01, 0x50, 0xFE, 0x100, -1} {
		w.Opcode = code
		_, err := DecodeCommand(w)
		assert.ErrorIs(t, err, ErrUnknownOpcode, "opcode 0x%X", code)
	}
}

func TestDecodeCommandDistinctAddressErrors(t *testing.T) {
	w := sampleCommand(t).Encode()
	w.Initiator = 16
	_, err := DecodeCommand(w)
	assert.ErrorIs(t, err, ErrUnknownInitiator)
	assert.NotErrorIs(t, err, ErrUnknownDestination)

	w = sampleCommand(t).Encode()
	w.Destination = -7
	_, err = DecodeCommand(w)
	assert.ErrorIs(t, err, ErrUnknownDestination)
	assert.NotErrorIs(t, err, ErrUnknownInitiator)
}

func TestDecodeCommandNegativeTimeout(t *testing.T) {
	w := sampleCommand(t).Encode()
	w.TransmitTimeout = -5
	got, err := DecodeCommand(w)
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), got.TransmitTimeout)
}

func TestCommandEncodeSaturatesTimeout(t *testing.T) {
	cmd := sampleCommand(t)
	cmd.TransmitTimeout = 1000 * time.Hour
	assert.Equal(t, int32(2147483647), cmd.Encode().TransmitTimeout)

	cmd.TransmitTimeout = -time.Second
	assert.Equal(t, int32(0), cmd.Encode().TransmitTimeout)
}

func TestCommandString(t *testing.T) {
	cmd, err := NewCommand(AddressPlaybackDevice1, AddressTV, OpcodeStandby)
	require.NoError(t, err)
	assert.Equal(t, "PLAYBACK_DEVICE_1 -> TV: STANDBY", cmd.String())

	assert.Equal(t, "PLAYBACK_DEVICE_1 -> PLAYBACK_DEVICE_2: CLEAR_ANALOGUE_TIMER [02 03]", sampleCommand(t).String())
}
