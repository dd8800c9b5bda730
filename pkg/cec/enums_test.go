package cec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnumTablesFailClosed(t *testing.T) {
	// Every code in every table round-trips and nothing between entries is
	// accepted.
	for code := int64(-1); code <= 0x200; code++ {
		if v, ok := ParseOpcode(int32(code)); ok {
			assert.Equal(t, code, int64(v.Code()))
			_, named := opcodeNames[v]
			assert.True(t, named)
		}
		if v, ok := ParseLogLevel(code); ok {
			assert.Contains(t, logLevelNames, v)
		}
		if v, ok := ParsePowerStatus(code); ok {
			assert.Equal(t, code, int64(v))
		}
	}

	_, ok := ParseLogLevel(3)
	assert.False(t, ok)
	_, ok = ParseLogLevel(0x101)
	assert.False(t, ok, "values wider than the enum must not wrap")
	_, ok = ParseAdapterType(0x10000)
	assert.False(t, ok)
	_, ok = ParseVendorID(-1)
	assert.False(t, ok)
}

func TestOpcodesAreSortedAndComplete(t *testing.T) {
	ops := Opcodes()
	assert.Len(t, ops, len(opcodeNames))
	for i := 1; i < len(ops); i++ {
		assert.Less(t, ops[i-1], ops[i])
	}
	assert.Equal(t, OpcodeFeatureAbort, ops[0])
	assert.Equal(t, OpcodeAbort, ops[len(ops)-1])
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "CLEAR_ANALOGUE_TIMER", OpcodeClearAnalogueTimer.String())
	assert.Equal(t, "OPCODE_0x01", Opcode(0x01).String())
	assert.Equal(t, "VOLUME_UP", KeyVolumeUp.String())
	assert.Equal(t, "PULSE_EIGHT", VendorPulseEight.String())
	assert.Equal(t, "1.4", Version14.String())
	assert.Equal(t, "UNKNOWN", AddressUnknown.String())
	assert.Equal(t, "AUDIO_SYSTEM", AddressAudioSystem.String())
	assert.Equal(t, "ADDRESS(20)", LogicalAddress(20).String())
	assert.Equal(t, "LogLevel(0x3)", LogLevel(3).String())
}

func TestVendorIDs(t *testing.T) {
	v, ok := ParseVendorID(0x00E091)
	assert.True(t, ok)
	assert.Equal(t, VendorLG, v)

	v, ok = ParseVendorID(0x080046)
	assert.True(t, ok)
	assert.Equal(t, VendorSony, v)

	_, ok = ParseVendorID(0x123456)
	assert.False(t, ok)
}
