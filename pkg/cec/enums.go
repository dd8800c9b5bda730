package cec

import "fmt"

type enumCode interface {
	~uint8 | ~uint16 | ~uint32
}

// lookupCode converts a wire code through an exhaustive name table. Codes
// that do not fit T or are not in the table fail.
func lookupCode[T enumCode](code int64, names map[T]string) (T, bool) {
	v := T(code)
	if code < 0 || int64(v) != code {
		return 0, false
	}
	_, ok := names[v]
	return v, ok
}

// LogLevel is the severity of a libcec log record.
type LogLevel uint8

// LogLevel values.
const (
	LogError   LogLevel = 0x01
	LogWarning LogLevel = 0x02
	LogNotice  LogLevel = 0x04
	LogTraffic LogLevel = 0x08
	LogDebug   LogLevel = 0x10
	LogAll     LogLevel = 0x1F
)

var logLevelNames = map[LogLevel]string{
	LogError:   "ERROR",
	LogWarning: "WARNING",
	LogNotice:  "NOTICE",
	LogTraffic: "TRAFFIC",
	LogDebug:   "DEBUG",
	LogAll:     "ALL",
}

func (l LogLevel) String() string {
	if name, ok := logLevelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LogLevel(0x%X)", uint8(l))
}

// Valid reports whether the value is in the LogLevel table.
func (l LogLevel) Valid() bool {
	_, ok := logLevelNames[l]
	return ok
}

// ParseLogLevel looks up a wire code.
func ParseLogLevel(code int64) (LogLevel, bool) {
	return lookupCode(code, logLevelNames)
}

// Alert is an out-of-band condition reported by the adapter.
type Alert uint8

// Alert values.
const (
	AlertServiceDevice        Alert = 0x00
	AlertConnectionLost       Alert = 0x01
	AlertPermissionError      Alert = 0x02
	AlertPortBusy             Alert = 0x03
	AlertPhysicalAddressError Alert = 0x04
	AlertTVPollFailed         Alert = 0x05
)

var alertNames = map[Alert]string{
	AlertServiceDevice:        "SERVICE_DEVICE",
	AlertConnectionLost:       "CONNECTION_LOST",
	AlertPermissionError:      "PERMISSION_ERROR",
	AlertPortBusy:             "PORT_BUSY",
	AlertPhysicalAddressError: "PHYSICAL_ADDRESS_ERROR",
	AlertTVPollFailed:         "TV_POLL_FAILED",
}

func (a Alert) String() string {
	if name, ok := alertNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Alert(0x%X)", uint8(a))
}

// Valid reports whether the value is in the Alert table.
func (a Alert) Valid() bool {
	_, ok := alertNames[a]
	return ok
}

// ParseAlert looks up a wire code.
func ParseAlert(code int64) (Alert, bool) {
	return lookupCode(code, alertNames)
}

// MenuState is the state of the device menu as requested by the TV.
type MenuState uint8

// MenuState values.
const (
	MenuActivated   MenuState = 0x00
	MenuDeactivated MenuState = 0x01
)

var menuStateNames = map[MenuState]string{
	MenuActivated:   "ACTIVATED",
	MenuDeactivated: "DEACTIVATED",
}

func (m MenuState) String() string {
	if name, ok := menuStateNames[m]; ok {
		return name
	}
	return fmt.Sprintf("MenuState(0x%X)", uint8(m))
}

// Valid reports whether the value is in the MenuState table.
func (m MenuState) Valid() bool {
	_, ok := menuStateNames[m]
	return ok
}

// ParseMenuState looks up a wire code.
func ParseMenuState(code int64) (MenuState, bool) {
	return lookupCode(code, menuStateNames)
}

// DeviceType is the kind of device a client registers as.
type DeviceType uint8

// DeviceType values.
const (
	DeviceTypeTV              DeviceType = 0x00
	DeviceTypeRecordingDevice DeviceType = 0x01
	DeviceTypeReserved        DeviceType = 0x02
	DeviceTypeTuner           DeviceType = 0x03
	DeviceTypePlaybackDevice  DeviceType = 0x04
	DeviceTypeAudioSystem     DeviceType = 0x05
)

var deviceTypeNames = map[DeviceType]string{
	DeviceTypeTV:              "TV",
	DeviceTypeRecordingDevice: "RECORDING_DEVICE",
	DeviceTypeReserved:        "RESERVED",
	DeviceTypeTuner:           "TUNER",
	DeviceTypePlaybackDevice:  "PLAYBACK_DEVICE",
	DeviceTypeAudioSystem:     "AUDIO_SYSTEM",
}

func (d DeviceType) String() string {
	if name, ok := deviceTypeNames[d]; ok {
		return name
	}
	return fmt.Sprintf("DeviceType(0x%X)", uint8(d))
}

// Valid reports whether the value is in the DeviceType table.
func (d DeviceType) Valid() bool {
	_, ok := deviceTypeNames[d]
	return ok
}

// ParseDeviceType looks up a wire code.
func ParseDeviceType(code int64) (DeviceType, bool) {
	return lookupCode(code, deviceTypeNames)
}

// AdapterType identifies the adapter hardware.
type AdapterType uint16

// AdapterType values.
const (
	AdapterUnknown         AdapterType = 0x0000
	AdapterP8External      AdapterType = 0x0001
	AdapterP8Daughterboard AdapterType = 0x0002
	AdapterRPI             AdapterType = 0x0100
	AdapterTDA995x         AdapterType = 0x0200
	AdapterExynos          AdapterType = 0x0300
	AdapterLinux           AdapterType = 0x0400
	AdapterAOCEC           AdapterType = 0x0500
	AdapterIMX             AdapterType = 0x0600
)

var adapterTypeNames = map[AdapterType]string{
	AdapterUnknown:         "UNKNOWN",
	AdapterP8External:      "P8_EXTERNAL",
	AdapterP8Daughterboard: "P8_DAUGHTERBOARD",
	AdapterRPI:             "RPI",
	AdapterTDA995x:         "TDA995X",
	AdapterExynos:          "EXYNOS",
	AdapterLinux:           "LINUX",
	AdapterAOCEC:           "AOCEC",
	AdapterIMX:             "IMX",
}

func (a AdapterType) String() string {
	if name, ok := adapterTypeNames[a]; ok {
		return name
	}
	return fmt.Sprintf("AdapterType(0x%X)", uint16(a))
}

// Valid reports whether the value is in the AdapterType table.
func (a AdapterType) Valid() bool {
	_, ok := adapterTypeNames[a]
	return ok
}

// ParseAdapterType looks up a wire code.
func ParseAdapterType(code int64) (AdapterType, bool) {
	return lookupCode(code, adapterTypeNames)
}

// PowerStatus is a device power state.
type PowerStatus uint8

// PowerStatus values.
const (
	PowerOn                      PowerStatus = 0x00
	PowerStandby                 PowerStatus = 0x01
	PowerInTransitionStandbyToOn PowerStatus = 0x02
	PowerInTransitionOnToStandby PowerStatus = 0x03
	PowerUnknown                 PowerStatus = 0x99
)

var powerStatusNames = map[PowerStatus]string{
	PowerOn:                      "ON",
	PowerStandby:                 "STANDBY",
	PowerInTransitionStandbyToOn: "IN_TRANSITION_STANDBY_TO_ON",
	PowerInTransitionOnToStandby: "IN_TRANSITION_ON_TO_STANDBY",
	PowerUnknown:                 "UNKNOWN",
}

func (p PowerStatus) String() string {
	if name, ok := powerStatusNames[p]; ok {
		return name
	}
	return fmt.Sprintf("PowerStatus(0x%X)", uint8(p))
}

// Valid reports whether the value is in the PowerStatus table.
func (p PowerStatus) Valid() bool {
	_, ok := powerStatusNames[p]
	return ok
}

// ParsePowerStatus looks up a wire code.
func ParsePowerStatus(code int64) (PowerStatus, bool) {
	return lookupCode(code, powerStatusNames)
}

// Version is a CEC protocol version.
type Version uint8

// Version values.
const (
	VersionUnknown Version = 0x00
	Version12      Version = 0x01
	Version12A     Version = 0x02
	Version13      Version = 0x03
	Version13A     Version = 0x04
	Version14      Version = 0x05
	Version20      Version = 0x06
)

var versionNames = map[Version]string{
	VersionUnknown: "UNKNOWN",
	Version12:      "1.2",
	Version12A:     "1.2a",
	Version13:      "1.3",
	Version13A:     "1.3a",
	Version14:      "1.4",
	Version20:      "2.0",
}

func (v Version) String() string {
	if name, ok := versionNames[v]; ok {
		return name
	}
	return fmt.Sprintf("Version(0x%X)", uint8(v))
}

// Valid reports whether the value is in the Version table.
func (v Version) Valid() bool {
	_, ok := versionNames[v]
	return ok
}

// ParseVersion looks up a wire code.
func ParseVersion(code int64) (Version, bool) {
	return lookupCode(code, versionNames)
}

// ParameterType tags the payload of an alert parameter.
type ParameterType uint8

// ParameterType values.
const (
	ParameterString  ParameterType = 0x01
	ParameterUnknown ParameterType = 0x02
)

var parameterTypeNames = map[ParameterType]string{
	ParameterString:  "STRING",
	ParameterUnknown: "UNKNOWN",
}

func (p ParameterType) String() string {
	if name, ok := parameterTypeNames[p]; ok {
		return name
	}
	return fmt.Sprintf("ParameterType(0x%X)", uint8(p))
}

// Valid reports whether the value is in the ParameterType table.
func (p ParameterType) Valid() bool {
	_, ok := parameterTypeNames[p]
	return ok
}

// ParseParameterType looks up a wire code.
func ParseParameterType(code int64) (ParameterType, bool) {
	return lookupCode(code, parameterTypeNames)
}

// BusDeviceStatus is the presence of a device on the bus.
type BusDeviceStatus uint8

// BusDeviceStatus values.
const (
	BusDeviceUnknown         BusDeviceStatus = 0x00
	BusDevicePresent         BusDeviceStatus = 0x01
	BusDeviceNotPresent      BusDeviceStatus = 0x02
	BusDeviceHandledByLibCEC BusDeviceStatus = 0x03
)

var busDeviceStatusNames = map[BusDeviceStatus]string{
	BusDeviceUnknown:         "UNKNOWN",
	BusDevicePresent:         "PRESENT",
	BusDeviceNotPresent:      "NOT_PRESENT",
	BusDeviceHandledByLibCEC: "HANDLED_BY_LIBCEC",
}

func (b BusDeviceStatus) String() string {
	if name, ok := busDeviceStatusNames[b]; ok {
		return name
	}
	return fmt.Sprintf("BusDeviceStatus(0x%X)", uint8(b))
}

// Valid reports whether the value is in the BusDeviceStatus table.
func (b BusDeviceStatus) Valid() bool {
	_, ok := busDeviceStatusNames[b]
	return ok
}

// ParseBusDeviceStatus looks up a wire code.
func ParseBusDeviceStatus(code int64) (BusDeviceStatus, bool) {
	return lookupCode(code, busDeviceStatusNames)
}

// AbortReason is the operand of FEATURE_ABORT.
type AbortReason uint8

// AbortReason values.
const (
	AbortUnrecognizedOpcode        AbortReason = 0x00
	AbortNotInCorrectModeToRespond AbortReason = 0x01
	AbortCannotProvideSource       AbortReason = 0x02
	AbortInvalidOperand            AbortReason = 0x03
	AbortRefused                   AbortReason = 0x04
)

var abortReasonNames = map[AbortReason]string{
	AbortUnrecognizedOpcode:        "UNRECOGNIZED_OPCODE",
	AbortNotInCorrectModeToRespond: "NOT_IN_CORRECT_MODE_TO_RESPOND",
	AbortCannotProvideSource:       "CANNOT_PROVIDE_SOURCE",
	AbortInvalidOperand:            "INVALID_OPERAND",
	AbortRefused:                   "REFUSED",
}

func (a AbortReason) String() string {
	if name, ok := abortReasonNames[a]; ok {
		return name
	}
	return fmt.Sprintf("AbortReason(0x%X)", uint8(a))
}

// Valid reports whether the value is in the AbortReason table.
func (a AbortReason) Valid() bool {
	_, ok := abortReasonNames[a]
	return ok
}

// ParseAbortReason looks up a wire code.
func ParseAbortReason(code int64) (AbortReason, bool) {
	return lookupCode(code, abortReasonNames)
}

// DeckInfo is the operand of DECK_STATUS.
type DeckInfo uint8

// DeckInfo values.
const (
	DeckPlay               DeckInfo = 0x11
	DeckRecord             DeckInfo = 0x12
	DeckPlayReverse        DeckInfo = 0x13
	DeckStill              DeckInfo = 0x14
	DeckSlow               DeckInfo = 0x15
	DeckSlowReverse        DeckInfo = 0x16
	DeckFastForward        DeckInfo = 0x17
	DeckFastReverse        DeckInfo = 0x18
	DeckNoMedia            DeckInfo = 0x19
	DeckStop               DeckInfo = 0x1A
	DeckSkipForwardWind    DeckInfo = 0x1B
	DeckSkipReverseRewind  DeckInfo = 0x1C
	DeckIndexSearchForward DeckInfo = 0x1D
	DeckIndexSearchReverse DeckInfo = 0x1E
	DeckOtherStatus        DeckInfo = 0x1F
	DeckOtherStatusLG      DeckInfo = 0x20
)

var deckInfoNames = map[DeckInfo]string{
	DeckPlay:               "PLAY",
	DeckRecord:             "RECORD",
	DeckPlayReverse:        "PLAY_REVERSE",
	DeckStill:              "STILL",
	DeckSlow:               "SLOW",
	DeckSlowReverse:        "SLOW_REVERSE",
	DeckFastForward:        "FAST_FORWARD",
	DeckFastReverse:        "FAST_REVERSE",
	DeckNoMedia:            "NO_MEDIA",
	DeckStop:               "STOP",
	DeckSkipForwardWind:    "SKIP_FORWARD_WIND",
	DeckSkipReverseRewind:  "SKIP_REVERSE_REWIND",
	DeckIndexSearchForward: "INDEX_SEARCH_FORWARD",
	DeckIndexSearchReverse: "INDEX_SEARCH_REVERSE",
	DeckOtherStatus:        "OTHER_STATUS",
	DeckOtherStatusLG:      "OTHER_STATUS_LG",
}

func (d DeckInfo) String() string {
	if name, ok := deckInfoNames[d]; ok {
		return name
	}
	return fmt.Sprintf("DeckInfo(0x%X)", uint8(d))
}

// Valid reports whether the value is in the DeckInfo table.
func (d DeckInfo) Valid() bool {
	_, ok := deckInfoNames[d]
	return ok
}

// ParseDeckInfo looks up a wire code.
func ParseDeckInfo(code int64) (DeckInfo, bool) {
	return lookupCode(code, deckInfoNames)
}

// PlayMode is the operand of PLAY.
type PlayMode uint8

// PlayMode values.
const (
	PlayForward           PlayMode = 0x24
	PlayReverse           PlayMode = 0x20
	PlayStill             PlayMode = 0x25
	PlayFastForwardMin    PlayMode = 0x05
	PlayFastForwardMedium PlayMode = 0x06
	PlayFastForwardMax    PlayMode = 0x07
	PlayFastReverseMin    PlayMode = 0x09
	PlayFastReverseMedium PlayMode = 0x0A
	PlayFastReverseMax    PlayMode = 0x0B
	PlaySlowForwardMin    PlayMode = 0x15
	PlaySlowForwardMedium PlayMode = 0x16
	PlaySlowForwardMax    PlayMode = 0x17
	PlaySlowReverseMin    PlayMode = 0x19
	PlaySlowReverseMedium PlayMode = 0x1A
	PlaySlowReverseMax    PlayMode = 0x1B
)

var playModeNames = map[PlayMode]string{
	PlayForward:           "PLAY_FORWARD",
	PlayReverse:           "PLAY_REVERSE",
	PlayStill:             "PLAY_STILL",
	PlayFastForwardMin:    "FAST_FORWARD_MIN_SPEED",
	PlayFastForwardMedium: "FAST_FORWARD_MEDIUM_SPEED",
	PlayFastForwardMax:    "FAST_FORWARD_MAX_SPEED",
	PlayFastReverseMin:    "FAST_REVERSE_MIN_SPEED",
	PlayFastReverseMedium: "FAST_REVERSE_MEDIUM_SPEED",
	PlayFastReverseMax:    "FAST_REVERSE_MAX_SPEED",
	PlaySlowForwardMin:    "SLOW_FORWARD_MIN_SPEED",
	PlaySlowForwardMedium: "SLOW_FORWARD_MEDIUM_SPEED",
	PlaySlowForwardMax:    "SLOW_FORWARD_MAX_SPEED",
	PlaySlowReverseMin:    "SLOW_REVERSE_MIN_SPEED",
	PlaySlowReverseMedium: "SLOW_REVERSE_MEDIUM_SPEED",
	PlaySlowReverseMax:    "SLOW_REVERSE_MAX_SPEED",
}

func (p PlayMode) String() string {
	if name, ok := playModeNames[p]; ok {
		return name
	}
	return fmt.Sprintf("PlayMode(0x%X)", uint8(p))
}

// Valid reports whether the value is in the PlayMode table.
func (p PlayMode) Valid() bool {
	_, ok := playModeNames[p]
	return ok
}

// ParsePlayMode looks up a wire code.
func ParsePlayMode(code int64) (PlayMode, bool) {
	return lookupCode(code, playModeNames)
}

// DisplayControl is the display operand of SET_OSD_STRING.
type DisplayControl uint8

// DisplayControl values.
const (
	DisplayForDefaultTime       DisplayControl = 0x00
	DisplayUntilCleared         DisplayControl = 0x40
	DisplayClearPreviousMessage DisplayControl = 0x80
	DisplayReservedForFutureUse DisplayControl = 0xC0
)

var displayControlNames = map[DisplayControl]string{
	DisplayForDefaultTime:       "DISPLAY_FOR_DEFAULT_TIME",
	DisplayUntilCleared:         "DISPLAY_UNTIL_CLEARED",
	DisplayClearPreviousMessage: "CLEAR_PREVIOUS_MESSAGE",
	DisplayReservedForFutureUse: "RESERVED_FOR_FUTURE_USE",
}

func (d DisplayControl) String() string {
	if name, ok := displayControlNames[d]; ok {
		return name
	}
	return fmt.Sprintf("DisplayControl(0x%X)", uint8(d))
}

// Valid reports whether the value is in the DisplayControl table.
func (d DisplayControl) Valid() bool {
	_, ok := displayControlNames[d]
	return ok
}

// ParseDisplayControl looks up a wire code.
func ParseDisplayControl(code int64) (DisplayControl, bool) {
	return lookupCode(code, displayControlNames)
}

// SystemAudioStatus is the operand of SYSTEM_AUDIO_MODE_STATUS.
type SystemAudioStatus uint8

// SystemAudioStatus values.
const (
	SystemAudioOff SystemAudioStatus = 0x00
	SystemAudioOn  SystemAudioStatus = 0x01
)

var systemAudioStatusNames = map[SystemAudioStatus]string{
	SystemAudioOff: "OFF",
	SystemAudioOn:  "ON",
}

func (s SystemAudioStatus) String() string {
	if name, ok := systemAudioStatusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("SystemAudioStatus(0x%X)", uint8(s))
}

// Valid reports whether the value is in the SystemAudioStatus table.
func (s SystemAudioStatus) Valid() bool {
	_, ok := systemAudioStatusNames[s]
	return ok
}

// ParseSystemAudioStatus looks up a wire code.
func ParseSystemAudioStatus(code int64) (SystemAudioStatus, bool) {
	return lookupCode(code, systemAudioStatusNames)
}

// VendorID is an IEEE OUI announced with DEVICE_VENDOR_ID.
type VendorID uint32

// VendorID values.
const (
	VendorUnknown       VendorID = 0x000000
	VendorToshiba       VendorID = 0x000039
	VendorSamsung       VendorID = 0x0000F0
	VendorDenon         VendorID = 0x0005CD
	VendorMarantz       VendorID = 0x000678
	VendorLoewe         VendorID = 0x000982
	VendorOnkyo         VendorID = 0x0009B0
	VendorMedion        VendorID = 0x000CB8
	VendorToshiba2      VendorID = 0x000CE7
	VendorApple         VendorID = 0x0010FA
	VendorPulseEight    VendorID = 0x001582
	VendorHarmanKardon2 VendorID = 0x001950
	VendorGoogle        VendorID = 0x001A11
	VendorAkai          VendorID = 0x0020C7
	VendorAOC           VendorID = 0x002467
	VendorPanasonic     VendorID = 0x008045
	VendorPhilips       VendorID = 0x00903E
	VendorDaewoo        VendorID = 0x009053
	VendorYamaha        VendorID = 0x00A0DE
	VendorGrundig       VendorID = 0x00D0D5
	VendorPioneer       VendorID = 0x00E036
	VendorLG            VendorID = 0x00E091
	VendorSharp         VendorID = 0x08001F
	VendorSony          VendorID = 0x080046
	VendorBroadcom      VendorID = 0x18C086
	VendorSharp2        VendorID = 0x534850
	VendorVizio         VendorID = 0x6B746D
	VendorBenQ          VendorID = 0x8065E9
	VendorHarmanKardon  VendorID = 0x9C645E
)

var vendorIDNames = map[VendorID]string{
	VendorUnknown:       "UNKNOWN",
	VendorToshiba:       "TOSHIBA",
	VendorSamsung:       "SAMSUNG",
	VendorDenon:         "DENON",
	VendorMarantz:       "MARANTZ",
	VendorLoewe:         "LOEWE",
	VendorOnkyo:         "ONKYO",
	VendorMedion:        "MEDION",
	VendorToshiba2:      "TOSHIBA2",
	VendorApple:         "APPLE",
	VendorPulseEight:    "PULSE_EIGHT",
	VendorHarmanKardon2: "HARMAN_KARDON2",
	VendorGoogle:        "GOOGLE",
	VendorAkai:          "AKAI",
	VendorAOC:           "AOC",
	VendorPanasonic:     "PANASONIC",
	VendorPhilips:       "PHILIPS",
	VendorDaewoo:        "DAEWOO",
	VendorYamaha:        "YAMAHA",
	VendorGrundig:       "GRUNDIG",
	VendorPioneer:       "PIONEER",
	VendorLG:            "LG",
	VendorSharp:         "SHARP",
	VendorSony:          "SONY",
	VendorBroadcom:      "BROADCOM",
	VendorSharp2:        "SHARP2",
	VendorVizio:         "VIZIO",
	VendorBenQ:          "BENQ",
	VendorHarmanKardon:  "HARMAN_KARDON",
}

func (v VendorID) String() string {
	if name, ok := vendorIDNames[v]; ok {
		return name
	}
	return fmt.Sprintf("VendorID(0x%X)", uint32(v))
}

// Valid reports whether the value is in the VendorID table.
func (v VendorID) Valid() bool {
	_, ok := vendorIDNames[v]
	return ok
}

// ParseVendorID looks up a wire code.
func ParseVendorID(code int64) (VendorID, bool) {
	return lookupCode(code, vendorIDNames)
}
