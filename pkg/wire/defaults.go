package wire

// Raw codes used by the defaults below. The authoritative enum tables live
// in pkg/cec; these are repeated so this package stays dependency free.
const (
	codeAddressTV           int32 = 0
	codeAddressUnregistered int32 = 15
	codeDeviceTypeReserved  int32 = 2
	codeVersion14           int32 = 5
	codeUserControlStop     int32 = 0x45
)

// ClearLogicalAddresses returns an empty address set: no occupied slots and
// an unregistered primary, matching cec_logical_addresses::Clear.
func ClearLogicalAddresses() LogicalAddresses {
	return LogicalAddresses{Primary: codeAddressUnregistered}
}

// ClearDeviceTypeList returns a list with every slot set to Reserved.
func ClearDeviceTypeList() DeviceTypeList {
	var l DeviceTypeList
	for i := range l.Types {
		l.Types[i] = codeDeviceTypeReserved
	}
	return l
}

// DefaultConfiguration returns the values libcec_clear_configuration writes
// for libcec 6. The cgo layer asks the library itself; this copy serves
// builds and tests without the native library.
func DefaultConfiguration() Configuration {
	cfg := Configuration{
		ClientVersion:        ClientVersion,
		ServerVersion:        ClientVersion,
		DeviceTypes:          ClearDeviceTypeList(),
		BaseDevice:           codeAddressTV,
		HDMIPort:             1,
		WakeDevices:          ClearLogicalAddresses(),
		PowerOffDevices:      ClearLogicalAddresses(),
		LogicalAddresses:     ClearLogicalAddresses(),
		ActivateSource:       1,
		PowerOffOnStandby:    1,
		DeviceLanguage:       [LanguageSize]byte{'e', 'n', 'g'},
		CECVersion:           codeVersion14,
		ComboKey:             codeUserControlStop,
		ComboKeyTimeoutMs:    1000,
		ButtonReleaseDelayMs: 500,
		DoubleTapTimeoutMs:   200,
	}
	cfg.WakeDevices.Addresses[codeAddressTV] = 1
	cfg.PowerOffDevices.Addresses[codeAddressUnregistered] = 1
	return cfg
}
