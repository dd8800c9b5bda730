package cec

import (
	"fmt"
	"strings"

	"github.com/owl-cec/owl/pkg/wire"
)

// MaxDeviceTypes is the number of device types a client can register.
const MaxDeviceTypes = wire.DeviceTypeSlots

// DeviceTypes is an ordered list of one to five device types.
type DeviceTypes struct {
	types [MaxDeviceTypes]DeviceType
	n     int
}

// NewDeviceTypes validates and builds a device type list. DeviceTypeReserved
// is rejected since it marks an empty slot on the wire.
func NewDeviceTypes(types ...DeviceType) (DeviceTypes, error) {
	var d DeviceTypes
	if len(types) == 0 {
		return d, missingField("device_types")
	}
	if len(types) > MaxDeviceTypes {
		return d, invalidField("device_types", "at most %d entries, got %d", MaxDeviceTypes, len(types))
	}
	for i, t := range types {
		if !t.Valid() {
			return d, invalidField("device_types", "%v: %d", ErrUnknownDeviceType, uint8(t))
		}
		if t == DeviceTypeReserved {
			return d, invalidField("device_types", "entry %d: RESERVED only pads unused slots", i)
		}
		d.types[i] = t
	}
	d.n = len(types)
	return d, nil
}

// Types returns the listed device types.
func (d DeviceTypes) Types() []DeviceType {
	return append([]DeviceType(nil), d.types[:d.n]...)
}

// Len returns the number of device types.
func (d DeviceTypes) Len() int { return d.n }

// Encode returns the wire form, padding unused slots with DeviceTypeReserved.
func (d DeviceTypes) Encode() wire.DeviceTypeList {
	var w wire.DeviceTypeList
	for i := range w.Types {
		if i < d.n {
			w.Types[i] = int32(d.types[i])
		} else {
			w.Types[i] = int32(DeviceTypeReserved)
		}
	}
	return w
}

// DecodeDeviceTypes converts the wire form. Reserved slots are skipped.
func DecodeDeviceTypes(w wire.DeviceTypeList) (DeviceTypes, error) {
	var d DeviceTypes
	for _, code := range w.Types {
		t, ok := ParseDeviceType(int64(code))
		if !ok {
			return DeviceTypes{}, fmt.Errorf("%w: %d", ErrUnknownDeviceType, code)
		}
		if t == DeviceTypeReserved {
			continue
		}
		d.types[d.n] = t
		d.n++
	}
	return d, nil
}

// ParseDeviceTypeName resolves a device type by its table name, case
// insensitively ("playback_device", "PLAYBACK_DEVICE").
func ParseDeviceTypeName(name string) (DeviceType, bool) {
	n := strings.ToUpper(strings.TrimSpace(name))
	for t, s := range deviceTypeNames {
		if s == n {
			return t, true
		}
	}
	return 0, false
}

// DefaultAddress returns the first logical address libcec tries for t.
func (t DeviceType) DefaultAddress() LogicalAddress {
	switch t {
	case DeviceTypeTV:
		return AddressTV
	case DeviceTypeRecordingDevice:
		return AddressRecordingDevice1
	case DeviceTypeTuner:
		return AddressTuner1
	case DeviceTypePlaybackDevice:
		return AddressPlaybackDevice1
	case DeviceTypeAudioSystem:
		return AddressAudioSystem
	default:
		return AddressUnregistered
	}
}
