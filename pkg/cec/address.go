package cec

import (
	"fmt"
	"strings"

	"github.com/owl-cec/owl/pkg/wire"
)

// LogicalAddress is a bus role identifier, 0-15, plus the AddressUnknown
// sentinel.
type LogicalAddress int8

// Logical addresses.
const (
	AddressUnknown          LogicalAddress = -1
	AddressTV               LogicalAddress = 0
	AddressRecordingDevice1 LogicalAddress = 1
	AddressRecordingDevice2 LogicalAddress = 2
	AddressTuner1           LogicalAddress = 3
	AddressPlaybackDevice1  LogicalAddress = 4
	AddressAudioSystem      LogicalAddress = 5
	AddressTuner2           LogicalAddress = 6
	AddressTuner3           LogicalAddress = 7
	AddressPlaybackDevice2  LogicalAddress = 8
	AddressRecordingDevice3 LogicalAddress = 9
	AddressTuner4           LogicalAddress = 10
	AddressPlaybackDevice3  LogicalAddress = 11
	AddressReserved1        LogicalAddress = 12
	AddressReserved2        LogicalAddress = 13
	AddressFreeUse          LogicalAddress = 14
	AddressUnregistered     LogicalAddress = 15

	// AddressBroadcast shares the Unregistered code when used as a destination.
	AddressBroadcast = AddressUnregistered
)

var addressNames = [...]string{
	"TV",
	"RECORDING_DEVICE_1",
	"RECORDING_DEVICE_2",
	"TUNER_1",
	"PLAYBACK_DEVICE_1",
	"AUDIO_SYSTEM",
	"TUNER_2",
	"TUNER_3",
	"PLAYBACK_DEVICE_2",
	"RECORDING_DEVICE_3",
	"TUNER_4",
	"PLAYBACK_DEVICE_3",
	"RESERVED_1",
	"RESERVED_2",
	"FREE_USE",
	"UNREGISTERED",
}

// String returns the address name.
func (a LogicalAddress) String() string {
	switch {
	case a == AddressUnknown:
		return "UNKNOWN"
	case a.Valid():
		return addressNames[a]
	default:
		return fmt.Sprintf("ADDRESS(%d)", int8(a))
	}
}

// Code returns the wire code.
func (a LogicalAddress) Code() int32 { return int32(a) }

// Valid reports whether a is in the address table, sentinels included.
func (a LogicalAddress) Valid() bool {
	return a >= AddressUnknown && a <= AddressUnregistered
}

// ParseLogicalAddress looks up a wire code.
func ParseLogicalAddress(code int32) (LogicalAddress, bool) {
	if code < int32(AddressUnknown) || code > int32(AddressUnregistered) {
		return 0, false
	}
	return LogicalAddress(code), true
}

// ParseAddressName resolves an address by name, case-insensitively. Both the
// table name ("PLAYBACK_DEVICE_1") and its lower-case form are accepted.
func ParseAddressName(name string) (LogicalAddress, bool) {
	n := strings.ToUpper(strings.TrimSpace(name))
	if n == "UNKNOWN" {
		return AddressUnknown, true
	}
	if n == "BROADCAST" {
		return AddressBroadcast, true
	}
	for i, s := range addressNames {
		if s == n {
			return LogicalAddress(i), true
		}
	}
	return 0, false
}

// KnownAddress is a LogicalAddress that is not AddressUnknown.
type KnownAddress struct {
	addr LogicalAddress
}

// NewKnownAddress refines a. It fails for AddressUnknown and for codes
// outside the table.
func NewKnownAddress(a LogicalAddress) (KnownAddress, error) {
	if !a.Valid() {
		return KnownAddress{}, fmt.Errorf("%w: %d", ErrUnknownAddress, int8(a))
	}
	if a == AddressUnknown {
		return KnownAddress{}, ErrNoAddress
	}
	return KnownAddress{addr: a}, nil
}

// MustKnownAddress is like NewKnownAddress but panics on error. It is meant
// for constants.
func MustKnownAddress(a LogicalAddress) KnownAddress {
	k, err := NewKnownAddress(a)
	if err != nil {
		panic(err)
	}
	return k
}

// DecodeKnownAddress decodes a wire code into a KnownAddress.
func DecodeKnownAddress(code int32) (KnownAddress, error) {
	a, ok := ParseLogicalAddress(code)
	if !ok {
		return KnownAddress{}, fmt.Errorf("%w: %d", ErrUnknownAddress, code)
	}
	return NewKnownAddress(a)
}

// Address returns the underlying address.
func (k KnownAddress) Address() LogicalAddress { return k.addr }

// Encode returns the wire code.
func (k KnownAddress) Encode() int32 { return int32(k.addr) }

// Registered refines k further. It fails for AddressUnregistered.
func (k KnownAddress) Registered() (RegisteredAddress, error) {
	return NewRegisteredAddress(k.addr)
}

func (k KnownAddress) String() string { return k.addr.String() }

// RegisteredAddress is a KnownAddress that is not AddressUnregistered, so it
// occupies a bus slot.
type RegisteredAddress struct {
	addr LogicalAddress
}

// NewRegisteredAddress refines a. It fails for both sentinels.
func NewRegisteredAddress(a LogicalAddress) (RegisteredAddress, error) {
	k, err := NewKnownAddress(a)
	if err != nil {
		return RegisteredAddress{}, err
	}
	if k.addr == AddressUnregistered {
		return RegisteredAddress{}, ErrUnregisteredAddress
	}
	return RegisteredAddress{addr: a}, nil
}

// MustRegisteredAddress is like NewRegisteredAddress but panics on error.
func MustRegisteredAddress(a LogicalAddress) RegisteredAddress {
	r, err := NewRegisteredAddress(a)
	if err != nil {
		panic(err)
	}
	return r
}

// Address returns the underlying address.
func (r RegisteredAddress) Address() LogicalAddress { return r.addr }

// Known widens r back to a KnownAddress.
func (r RegisteredAddress) Known() KnownAddress { return KnownAddress{addr: r.addr} }

// Encode returns the wire code.
func (r RegisteredAddress) Encode() int32 { return int32(r.addr) }

func (r RegisteredAddress) String() string { return r.addr.String() }

// AddressSet is the bus occupancy seen by one device: a primary address plus
// the registered addresses in use.
//
// The zero value is not meaningful; use NewAddressSet or EmptyAddressSet.
type AddressSet struct {
	primary KnownAddress
	mask    [wire.AddressCount]bool
}

// EmptyAddressSet returns the set of a device holding no address.
func EmptyAddressSet() AddressSet {
	return AddressSet{primary: KnownAddress{addr: AddressUnregistered}}
}

// NewAddressSet builds a set from a primary and its secondaries. A registered
// primary is always a member of its own set. An unregistered primary cannot
// carry secondaries.
func NewAddressSet(primary KnownAddress, secondary ...RegisteredAddress) (AddressSet, error) {
	if !primary.addr.Valid() || primary.addr == AddressUnknown {
		return AddressSet{}, ErrInvalidPrimaryAddress
	}
	s := AddressSet{primary: primary}
	if primary.addr == AddressUnregistered {
		if len(secondary) > 0 {
			return AddressSet{}, ErrSecondaryWithoutPrimary
		}
		return s, nil
	}
	s.mask[primary.addr] = true
	for _, r := range secondary {
		s.mask[r.addr] = true
	}
	return s, nil
}

// Primary returns the primary address.
func (s AddressSet) Primary() KnownAddress { return s.primary }

// Contains reports whether r is in the set.
func (s AddressSet) Contains(r RegisteredAddress) bool {
	return r.addr.Valid() && r.addr != AddressUnknown && s.mask[r.addr]
}

// Secondary returns the registered addresses in ascending order.
func (s AddressSet) Secondary() []RegisteredAddress {
	var out []RegisteredAddress
	for i, set := range s.mask {
		if set && LogicalAddress(i) != AddressUnregistered {
			out = append(out, RegisteredAddress{addr: LogicalAddress(i)})
		}
	}
	return out
}

// Len returns the number of registered addresses.
func (s AddressSet) Len() int { return len(s.Secondary()) }

// IsEmpty reports whether the device holds no address.
func (s AddressSet) IsEmpty() bool { return s.primary.addr == AddressUnregistered }

func (s AddressSet) String() string {
	var b strings.Builder
	b.WriteString(s.primary.String())
	b.WriteString(" [")
	for i, r := range s.Secondary() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(r.String())
	}
	b.WriteByte(']')
	return b.String()
}

// Encode converts s to its wire form. The primary's own mask slot is always
// set, whether or not it was listed among the secondaries.
func (s AddressSet) Encode() wire.LogicalAddresses {
	out := wire.LogicalAddresses{Primary: s.primary.Encode()}
	for i, set := range s.mask {
		if set {
			out.Addresses[i] = 1
		}
	}
	out.Addresses[s.primary.addr] = 1
	return out
}

// DecodeAddressSet converts the wire form. The primary must be a known
// address; every occupied mask slot that refines to a RegisteredAddress is
// collected and the unregistered slot is ignored. An unregistered primary
// with occupied registered slots fails with ErrSecondaryWithoutPrimary.
func DecodeAddressSet(w wire.LogicalAddresses) (AddressSet, error) {
	a, ok := ParseLogicalAddress(w.Primary)
	if !ok {
		return AddressSet{}, fmt.Errorf("%w: %d", ErrInvalidPrimaryAddress, w.Primary)
	}
	if a == AddressUnknown {
		return AddressSet{}, ErrUnknownPrimaryAddress
	}
	s := AddressSet{primary: KnownAddress{addr: a}}
	for i, v := range w.Addresses {
		if v != 0 && LogicalAddress(i) != AddressUnregistered {
			if a == AddressUnregistered {
				return AddressSet{}, fmt.Errorf("%w: slot %d occupied", ErrSecondaryWithoutPrimary, i)
			}
			s.mask[i] = true
		}
	}
	if a != AddressUnregistered {
		s.mask[a] = true
	}
	return s, nil
}
