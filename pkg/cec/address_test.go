package cec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/owl-cec/owl/pkg/wire"
)

func TestLogicalAddressRoundTrip(t *testing.T) {
	for code := int32(-1); code <= 15; code++ {
		a, ok := ParseLogicalAddress(code)
		if !ok {
			t.Fatalf("ParseLogicalAddress(%d) failed", code)
		}
		if a.Code() != code {
			t.Errorf("code %d round-tripped to %d", code, a.Code())
		}
	}
	for _, code := range []int32{-2, 16, 255, -128} {
		if _, ok := ParseLogicalAddress(code); ok {
			t.Errorf("ParseLogicalAddress(%d) should fail", code)
		}
	}
}

func TestParseAddressName(t *testing.T) {
	a, ok := ParseAddressName("playback_device_1")
	require.True(t, ok)
	assert.Equal(t, AddressPlaybackDevice1, a)

	a, ok = ParseAddressName("TV")
	require.True(t, ok)
	assert.Equal(t, AddressTV, a)

	_, ok = ParseAddressName("toaster")
	assert.False(t, ok)
}

func TestKnownAddress(t *testing.T) {
	_, err := NewKnownAddress(AddressUnknown)
	assert.ErrorIs(t, err, ErrNoAddress)

	k, err := NewKnownAddress(AddressAudioSystem)
	require.NoError(t, err)
	assert.Equal(t, AddressAudioSystem, k.Address())

	k, err = NewKnownAddress(AddressUnregistered)
	require.NoError(t, err)
	assert.Equal(t, AddressUnregistered, k.Address())

	_, err = NewKnownAddress(LogicalAddress(42))
	assert.ErrorIs(t, err, ErrUnknownAddress)
}

func TestRegisteredAddress(t *testing.T) {
	_, err := NewRegisteredAddress(AddressUnregistered)
	assert.ErrorIs(t, err, ErrUnregisteredAddress)

	_, err = NewRegisteredAddress(AddressUnknown)
	assert.ErrorIs(t, err, ErrNoAddress)

	for a := AddressTV; a < AddressUnregistered; a++ {
		r, err := NewRegisteredAddress(a)
		if err != nil {
			t.Fatalf("NewRegisteredAddress(%s): %v", a, err)
		}
		if r.Known().Address() != a {
			t.Errorf("Known() = %s, want %s", r.Known(), a)
		}
	}
}

func TestAddressSetRejectsSecondariesWithoutPrimary(t *testing.T) {
	_, err := NewAddressSet(
		MustKnownAddress(AddressUnregistered),
		MustRegisteredAddress(AddressAudioSystem),
	)
	assert.ErrorIs(t, err, ErrSecondaryWithoutPrimary)

	s, err := NewAddressSet(MustKnownAddress(AddressUnregistered))
	require.NoError(t, err)
	assert.True(t, s.IsEmpty())
	assert.Equal(t, EmptyAddressSet(), s)
}

func TestAddressSetEncodeSetsPrimaryBit(t *testing.T) {
	s, err := NewAddressSet(
		MustKnownAddress(AddressPlaybackDevice1),
		MustRegisteredAddress(AddressPlaybackDevice2),
		MustRegisteredAddress(AddressAudioSystem),
	)
	require.NoError(t, err)

	w := s.Encode()
	assert.Equal(t, int32(AddressPlaybackDevice1), w.Primary)
	for i, v := range w.Addresses {
		switch LogicalAddress(i) {
		case AddressPlaybackDevice1, AddressPlaybackDevice2, AddressAudioSystem:
			assert.Equal(t, int32(1), v, "slot %d", i)
		default:
			assert.Equal(t, int32(0), v, "slot %d", i)
		}
	}
}

func TestAddressSetEncodeSetsPrimaryBitForEveryPrimary(t *testing.T) {
	for a := AddressTV; a <= AddressUnregistered; a++ {
		s, err := NewAddressSet(MustKnownAddress(a))
		require.NoError(t, err)
		if w := s.Encode(); w.Addresses[a] != 1 {
			t.Errorf("primary %s: slot not set in %v", a, w.Addresses)
		}
	}
}

func TestAddressSetRoundTrip(t *testing.T) {
	sets := []AddressSet{EmptyAddressSet()}
	for a := AddressTV; a < AddressUnregistered; a++ {
		s, err := NewAddressSet(MustKnownAddress(a))
		require.NoError(t, err)
		sets = append(sets, s)
	}
	all := make([]RegisteredAddress, 0, 15)
	for a := AddressTV; a < AddressUnregistered; a++ {
		all = append(all, MustRegisteredAddress(a))
	}
	full, err := NewAddressSet(MustKnownAddress(AddressRecordingDevice1), all...)
	require.NoError(t, err)
	sets = append(sets, full)

	for _, s := range sets {
		got, err := DecodeAddressSet(s.Encode())
		if err != nil {
			t.Fatalf("DecodeAddressSet(%s): %v", s, err)
		}
		assert.Equal(t, s, got)
	}
}

func TestDecodeAddressSetErrors(t *testing.T) {
	_, err := DecodeAddressSet(wire.LogicalAddresses{Primary: -1})
	assert.ErrorIs(t, err, ErrUnknownPrimaryAddress)

	_, err = DecodeAddressSet(wire.LogicalAddresses{Primary: 16})
	assert.ErrorIs(t, err, ErrInvalidPrimaryAddress)
}

func TestDecodeAddressSetUnregisteredPrimaryWithSecondaries(t *testing.T) {
	w := wire.ClearLogicalAddresses()
	w.Addresses[AddressAudioSystem] = 1
	_, err := DecodeAddressSet(w)
	assert.ErrorIs(t, err, ErrSecondaryWithoutPrimary)

	w.Addresses[AddressAudioSystem] = 0
	w.Addresses[AddressUnregistered] = 1
	s, err := DecodeAddressSet(w)
	require.NoError(t, err)
	assert.True(t, s.IsEmpty())
	assert.Empty(t, s.Secondary())
}

func TestDecodeAddressSetFromCleared(t *testing.T) {
	s, err := DecodeAddressSet(wire.ClearLogicalAddresses())
	require.NoError(t, err)
	assert.True(t, s.IsEmpty())
	assert.Empty(t, s.Secondary())
}

func TestAddressSetSecondaryOrder(t *testing.T) {
	s, err := NewAddressSet(
		MustKnownAddress(AddressTuner1),
		MustRegisteredAddress(AddressFreeUse),
		MustRegisteredAddress(AddressTV),
	)
	require.NoError(t, err)
	got := s.Secondary()
	require.Len(t, got, 3)
	assert.Equal(t, AddressTV, got[0].Address())
	assert.Equal(t, AddressTuner1, got[1].Address())
	assert.Equal(t, AddressFreeUse, got[2].Address())
	assert.True(t, s.Contains(MustRegisteredAddress(AddressTuner1)))
	assert.False(t, s.Contains(MustRegisteredAddress(AddressTuner2)))
	assert.Equal(t, "TUNER_1 [TV TUNER_1 FREE_USE]", s.String())
}

func TestMustKnownAddressPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		if err, ok := r.(error); !ok || !errors.Is(err, ErrNoAddress) {
			t.Errorf("panic value = %v", r)
		}
	}()
	MustKnownAddress(AddressUnknown)
}
