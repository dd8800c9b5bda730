package wire

// ABI sizes from cectypes.h.
const (
	// DataPacketSize is the capacity of cec_datapacket.data.
	DataPacketSize = 64

	// AddressCount is the number of logical address slots on the bus.
	AddressCount = 16

	// DeviceTypeSlots is the capacity of cec_device_type_list.types.
	DeviceTypeSlots = 5

	// OSDNameSize is LIBCEC_OSD_NAME_SIZE, including the terminating NUL.
	OSDNameSize = 15

	// LanguageSize is the size of strDeviceLanguage (no terminator).
	LanguageSize = 3
)

// ClientVersion is LIBCEC_VERSION_CURRENT for libcec 6.0.2.
const ClientVersion uint32 = 0x060002

// DataPacket mirrors cec_datapacket.
type DataPacket struct {
	Data [DataPacketSize]uint8
	Size uint8
}

// LogicalAddresses mirrors cec_logical_addresses. Addresses is an
// occupancy mask indexed by logical address: a non-zero slot means the
// address is in use.
type LogicalAddresses struct {
	Primary   int32
	Addresses [AddressCount]int32
}

// Command mirrors cec_command.
type Command struct {
	Initiator       int32
	Destination     int32
	Ack             int8
	EOM             int8
	Opcode          int32
	Parameters      DataPacket
	OpcodeSet       int8
	TransmitTimeout int32
}

// Keypress mirrors cec_keypress.
type Keypress struct {
	Keycode  int32
	Duration uint32
}

// LogMessage mirrors cec_log_message. Message holds the bytes the C
// string pointed at, without the terminating NUL.
type LogMessage struct {
	Message []byte
	Level   int32
	Time    int64
}

// DeviceTypeList mirrors cec_device_type_list.
type DeviceTypeList struct {
	Types [DeviceTypeSlots]int32
}

// Parameter mirrors libcec_parameter. When Type is the string parameter
// type, Data holds the referenced text.
type Parameter struct {
	Type int32
	Data []byte
}

// Configuration mirrors the value fields of libcec_configuration. The
// callback table and callback parameter pointers are owned by the cgo
// layer and are not part of this record.
type Configuration struct {
	ClientVersion        uint32
	DeviceName           [OSDNameSize]byte
	DeviceTypes          DeviceTypeList
	AutodetectAddress    uint8
	PhysicalAddress      uint16
	BaseDevice           int32
	HDMIPort             uint8
	TVVendor             uint32
	WakeDevices          LogicalAddresses
	PowerOffDevices      LogicalAddresses
	ServerVersion        uint32
	GetSettingsFromROM   uint8
	ActivateSource       uint8
	PowerOffOnStandby    uint8
	LogicalAddresses     LogicalAddresses
	FirmwareVersion      uint16
	DeviceLanguage       [LanguageSize]byte
	FirmwareBuildDate    uint32
	MonitorOnly          uint8
	CECVersion           int32
	AdapterType          int32
	ComboKey             int32
	ComboKeyTimeoutMs    uint32
	ButtonRepeatRateMs   uint32
	ButtonReleaseDelayMs uint32
	DoubleTapTimeoutMs   uint32
	AutoWakeAVR          uint8
}
