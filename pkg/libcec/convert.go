//go:build cgo

package libcec

/*
#include <string.h>
#include <libcec/cecc.h>
*/
import "C"

import (
	"unsafe"

	"github.com/owl-cec/owl/pkg/wire"
)

// Conversions between the C records and their pkg/wire mirrors. These are
// plain field copies; validation happens in pkg/cec.

func wireDataPacket(p *C.cec_datapacket) wire.DataPacket {
	var w wire.DataPacket
	for i := range w.Data {
		w.Data[i] = uint8(p.data[i])
	}
	w.Size = uint8(p.size)
	return w
}

func cDataPacket(w wire.DataPacket) C.cec_datapacket {
	var p C.cec_datapacket
	for i := range w.Data {
		p.data[i] = C.uint8_t(w.Data[i])
	}
	p.size = C.uint8_t(w.Size)
	return p
}

func wireCommand(c *C.cec_command) wire.Command {
	return wire.Command{
		Initiator:       int32(c.initiator),
		Destination:     int32(c.destination),
		Ack:             int8(c.ack),
		EOM:             int8(c.eom),
		Opcode:          int32(c.opcode),
		Parameters:      wireDataPacket(&c.parameters),
		OpcodeSet:       int8(c.opcode_set),
		TransmitTimeout: int32(c.transmit_timeout),
	}
}

func cCommand(w wire.Command) C.cec_command {
	var c C.cec_command
	c.initiator = C.cec_logical_address(w.Initiator)
	c.destination = C.cec_logical_address(w.Destination)
	c.ack = C.int8_t(w.Ack)
	c.eom = C.int8_t(w.EOM)
	c.opcode = C.cec_opcode(w.Opcode)
	c.parameters = cDataPacket(w.Parameters)
	c.opcode_set = C.int8_t(w.OpcodeSet)
	c.transmit_timeout = C.int32_t(w.TransmitTimeout)
	return c
}

func wireKeypress(k *C.cec_keypress) wire.Keypress {
	return wire.Keypress{Keycode: int32(k.keycode), Duration: uint32(k.duration)}
}

func wireLogMessage(m *C.cec_log_message) wire.LogMessage {
	w := wire.LogMessage{Level: int32(m.level), Time: int64(m.time)}
	if m.message != nil {
		n := C.strlen(m.message)
		w.Message = C.GoBytes(unsafe.Pointer(m.message), C.int(n))
	}
	return w
}

func wireLogicalAddresses(a *C.cec_logical_addresses) wire.LogicalAddresses {
	w := wire.LogicalAddresses{Primary: int32(a.primary)}
	for i := range w.Addresses {
		w.Addresses[i] = int32(a.addresses[i])
	}
	return w
}

func cLogicalAddresses(w wire.LogicalAddresses) C.cec_logical_addresses {
	var a C.cec_logical_addresses
	a.primary = C.cec_logical_address(w.Primary)
	for i := range w.Addresses {
		a.addresses[i] = C.int(w.Addresses[i])
	}
	return a
}

func wireConfiguration(c *C.libcec_configuration) wire.Configuration {
	w := wire.Configuration{
		ClientVersion:        uint32(c.clientVersion),
		AutodetectAddress:    uint8(c.bAutodetectAddress),
		PhysicalAddress:      uint16(c.iPhysicalAddress),
		BaseDevice:           int32(c.baseDevice),
		HDMIPort:             uint8(c.iHDMIPort),
		TVVendor:             uint32(c.tvVendor),
		WakeDevices:          wireLogicalAddresses(&c.wakeDevices),
		PowerOffDevices:      wireLogicalAddresses(&c.powerOffDevices),
		ServerVersion:        uint32(c.serverVersion),
		GetSettingsFromROM:   uint8(c.bGetSettingsFromROM),
		ActivateSource:       uint8(c.bActivateSource),
		PowerOffOnStandby:    uint8(c.bPowerOffOnStandby),
		LogicalAddresses:     wireLogicalAddresses(&c.logicalAddresses),
		FirmwareVersion:      uint16(c.iFirmwareVersion),
		FirmwareBuildDate:    uint32(c.iFirmwareBuildDate),
		MonitorOnly:          uint8(c.bMonitorOnly),
		CECVersion:           int32(c.cecVersion),
		AdapterType:          int32(c.adapterType),
		ComboKey:             int32(c.comboKey),
		ComboKeyTimeoutMs:    uint32(c.iComboKeyTimeoutMs),
		ButtonRepeatRateMs:   uint32(c.iButtonRepeatRateMs),
		ButtonReleaseDelayMs: uint32(c.iButtonReleaseDelayMs),
		DoubleTapTimeoutMs:   uint32(c.iDoubleTapTimeoutMs),
		AutoWakeAVR:          uint8(c.bAutoWakeAVR),
	}
	for i := range w.DeviceName {
		w.DeviceName[i] = byte(c.strDeviceName[i])
	}
	for i := range w.DeviceLanguage {
		w.DeviceLanguage[i] = byte(c.strDeviceLanguage[i])
	}
	for i := range w.DeviceTypes.Types {
		w.DeviceTypes.Types[i] = int32(c.deviceTypes.types[i])
	}
	return w
}

// applyConfiguration writes the value fields of w into c. The callback
// pointers in c are left alone.
func applyConfiguration(c *C.libcec_configuration, w wire.Configuration) {
	c.clientVersion = C.uint32_t(w.ClientVersion)
	for i := range w.DeviceName {
		c.strDeviceName[i] = C.char(w.DeviceName[i])
	}
	for i := range w.DeviceTypes.Types {
		c.deviceTypes.types[i] = C.cec_device_type(w.DeviceTypes.Types[i])
	}
	c.bAutodetectAddress = C.uint8_t(w.AutodetectAddress)
	c.iPhysicalAddress = C.uint16_t(w.PhysicalAddress)
	c.baseDevice = C.cec_logical_address(w.BaseDevice)
	c.iHDMIPort = C.uint8_t(w.HDMIPort)
	c.tvVendor = C.uint32_t(w.TVVendor)
	c.wakeDevices = cLogicalAddresses(w.WakeDevices)
	c.powerOffDevices = cLogicalAddresses(w.PowerOffDevices)
	c.bGetSettingsFromROM = C.uint8_t(w.GetSettingsFromROM)
	c.bActivateSource = C.uint8_t(w.ActivateSource)
	c.bPowerOffOnStandby = C.uint8_t(w.PowerOffOnStandby)
	for i := range w.DeviceLanguage {
		c.strDeviceLanguage[i] = C.char(w.DeviceLanguage[i])
	}
	c.bMonitorOnly = C.uint8_t(w.MonitorOnly)
	c.cecVersion = C.cec_version(w.CECVersion)
	c.adapterType = C.cec_adapter_type(w.AdapterType)
	c.comboKey = C.cec_user_control_code(w.ComboKey)
	c.iComboKeyTimeoutMs = C.uint32_t(w.ComboKeyTimeoutMs)
	c.iButtonRepeatRateMs = C.uint32_t(w.ButtonRepeatRateMs)
	c.iButtonReleaseDelayMs = C.uint32_t(w.ButtonReleaseDelayMs)
	c.iDoubleTapTimeoutMs = C.uint32_t(w.DoubleTapTimeoutMs)
	c.bAutoWakeAVR = C.uint8_t(w.AutoWakeAVR)
}
