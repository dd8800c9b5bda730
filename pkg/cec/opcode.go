package cec

import "fmt"

// Opcode identifies the semantic type of a CEC message.
type Opcode uint8

// Opcodes defined by CEC 1.4/2.0 as exposed by libcec.
const (
	OpcodeFeatureAbort                 Opcode = 0x00
	OpcodeImageViewOn                  Opcode = 0x04
	OpcodeTunerStepIncrement           Opcode = 0x05
	OpcodeTunerStepDecrement           Opcode = 0x06
	OpcodeTunerDeviceStatus            Opcode = 0x07
	OpcodeGiveTunerDeviceStatus        Opcode = 0x08
	OpcodeRecordOn                     Opcode = 0x09
	OpcodeRecordStatus                 Opcode = 0x0A
	OpcodeRecordOff                    Opcode = 0x0B
	OpcodeTextViewOn                   Opcode = 0x0D
	OpcodeRecordTVScreen               Opcode = 0x0F
	OpcodeGiveDeckStatus               Opcode = 0x1A
	OpcodeDeckStatus                   Opcode = 0x1B
	OpcodeSetMenuLanguage              Opcode = 0x32
	OpcodeClearAnalogueTimer           Opcode = 0x33
	OpcodeSetAnalogueTimer             Opcode = 0x34
	OpcodeTimerStatus                  Opcode = 0x35
	OpcodeStandby                      Opcode = 0x36
	OpcodePlay                         Opcode = 0x41
	OpcodeDeckControl                  Opcode = 0x42
	OpcodeTimerClearedStatus           Opcode = 0x43
	OpcodeUserControlPressed           Opcode = 0x44
	OpcodeUserControlRelease           Opcode = 0x45
	OpcodeGiveOSDName                  Opcode = 0x46
	OpcodeSetOSDName                   Opcode = 0x47
	OpcodeSetOSDString                 Opcode = 0x64
	OpcodeSetTimerProgramTitle         Opcode = 0x67
	OpcodeSystemAudioModeRequest       Opcode = 0x70
	OpcodeGiveAudioStatus              Opcode = 0x71
	OpcodeSetSystemAudioMode           Opcode = 0x72
	OpcodeReportAudioStatus            Opcode = 0x7A
	OpcodeGiveSystemAudioModeStatus    Opcode = 0x7D
	OpcodeSystemAudioModeStatus        Opcode = 0x7E
	OpcodeRoutingChange                Opcode = 0x80
	OpcodeRoutingInformation           Opcode = 0x81
	OpcodeActiveSource                 Opcode = 0x82
	OpcodeGivePhysicalAddress          Opcode = 0x83
	OpcodeReportPhysicalAddress        Opcode = 0x84
	OpcodeRequestActiveSource          Opcode = 0x85
	OpcodeSetStreamPath                Opcode = 0x86
	OpcodeDeviceVendorID               Opcode = 0x87
	OpcodeVendorCommand                Opcode = 0x89
	OpcodeVendorRemoteButtonDown       Opcode = 0x8A
	OpcodeVendorRemoteButtonUp         Opcode = 0x8B
	OpcodeGiveDeviceVendorID           Opcode = 0x8C
	OpcodeMenuRequest                  Opcode = 0x8D
	OpcodeMenuStatus                   Opcode = 0x8E
	OpcodeGiveDevicePowerStatus        Opcode = 0x8F
	OpcodeReportPowerStatus            Opcode = 0x90
	OpcodeGetMenuLanguage              Opcode = 0x91
	OpcodeSelectAnalogueService        Opcode = 0x92
	OpcodeSelectDigitalService         Opcode = 0x93
	OpcodeSetDigitalTimer              Opcode = 0x97
	OpcodeClearDigitalTimer            Opcode = 0x99
	OpcodeSetAudioRate                 Opcode = 0x9A
	OpcodeInactiveSource               Opcode = 0x9D
	OpcodeCECVersion                   Opcode = 0x9E
	OpcodeGetCECVersion                Opcode = 0x9F
	OpcodeVendorCommandWithID          Opcode = 0xA0
	OpcodeClearExternalTimer           Opcode = 0xA1
	OpcodeSetExternalTimer             Opcode = 0xA2
	OpcodeReportShortAudioDescriptors  Opcode = 0xA3
	OpcodeRequestShortAudioDescriptors Opcode = 0xA4
	OpcodeStartARC                     Opcode = 0xC0
	OpcodeReportARCStarted             Opcode = 0xC1
	OpcodeReportARCEnded               Opcode = 0xC2
	OpcodeRequestARCStart              Opcode = 0xC3
	OpcodeRequestARCEnd                Opcode = 0xC4
	OpcodeEndARC                       Opcode = 0xC5
	OpcodeCDC                          Opcode = 0xF8
	OpcodeNone                         Opcode = 0xFD
	OpcodeAbort                        Opcode = 0xFF
)

var opcodeNames = map[Opcode]string{
	OpcodeFeatureAbort:                 "FEATURE_ABORT",
	OpcodeImageViewOn:                  "IMAGE_VIEW_ON",
	OpcodeTunerStepIncrement:           "TUNER_STEP_INCREMENT",
	OpcodeTunerStepDecrement:           "TUNER_STEP_DECREMENT",
	OpcodeTunerDeviceStatus:            "TUNER_DEVICE_STATUS",
	OpcodeGiveTunerDeviceStatus:        "GIVE_TUNER_DEVICE_STATUS",
	OpcodeRecordOn:                     "RECORD_ON",
	OpcodeRecordStatus:                 "RECORD_STATUS",
	OpcodeRecordOff:                    "RECORD_OFF",
	OpcodeTextViewOn:                   "TEXT_VIEW_ON",
	OpcodeRecordTVScreen:               "RECORD_TV_SCREEN",
	OpcodeGiveDeckStatus:               "GIVE_DECK_STATUS",
	OpcodeDeckStatus:                   "DECK_STATUS",
	OpcodeSetMenuLanguage:              "SET_MENU_LANGUAGE",
	OpcodeClearAnalogueTimer:           "CLEAR_ANALOGUE_TIMER",
	OpcodeSetAnalogueTimer:             "SET_ANALOGUE_TIMER",
	OpcodeTimerStatus:                  "TIMER_STATUS",
	OpcodeStandby:                      "STANDBY",
	OpcodePlay:                         "PLAY",
	OpcodeDeckControl:                  "DECK_CONTROL",
	OpcodeTimerClearedStatus:           "TIMER_CLEARED_STATUS",
	OpcodeUserControlPressed:           "USER_CONTROL_PRESSED",
	OpcodeUserControlRelease:           "USER_CONTROL_RELEASE",
	OpcodeGiveOSDName:                  "GIVE_OSD_NAME",
	OpcodeSetOSDName:                   "SET_OSD_NAME",
	OpcodeSetOSDString:                 "SET_OSD_STRING",
	OpcodeSetTimerProgramTitle:         "SET_TIMER_PROGRAM_TITLE",
	OpcodeSystemAudioModeRequest:       "SYSTEM_AUDIO_MODE_REQUEST",
	OpcodeGiveAudioStatus:              "GIVE_AUDIO_STATUS",
	OpcodeSetSystemAudioMode:           "SET_SYSTEM_AUDIO_MODE",
	OpcodeReportAudioStatus:            "REPORT_AUDIO_STATUS",
	OpcodeGiveSystemAudioModeStatus:    "GIVE_SYSTEM_AUDIO_MODE_STATUS",
	OpcodeSystemAudioModeStatus:        "SYSTEM_AUDIO_MODE_STATUS",
	OpcodeRoutingChange:                "ROUTING_CHANGE",
	OpcodeRoutingInformation:           "ROUTING_INFORMATION",
	OpcodeActiveSource:                 "ACTIVE_SOURCE",
	OpcodeGivePhysicalAddress:          "GIVE_PHYSICAL_ADDRESS",
	OpcodeReportPhysicalAddress:        "REPORT_PHYSICAL_ADDRESS",
	OpcodeRequestActiveSource:          "REQUEST_ACTIVE_SOURCE",
	OpcodeSetStreamPath:                "SET_STREAM_PATH",
	OpcodeDeviceVendorID:               "DEVICE_VENDOR_ID",
	OpcodeVendorCommand:                "VENDOR_COMMAND",
	OpcodeVendorRemoteButtonDown:       "VENDOR_REMOTE_BUTTON_DOWN",
	OpcodeVendorRemoteButtonUp:         "VENDOR_REMOTE_BUTTON_UP",
	OpcodeGiveDeviceVendorID:           "GIVE_DEVICE_VENDOR_ID",
	OpcodeMenuRequest:                  "MENU_REQUEST",
	OpcodeMenuStatus:                   "MENU_STATUS",
	OpcodeGiveDevicePowerStatus:        "GIVE_DEVICE_POWER_STATUS",
	OpcodeReportPowerStatus:            "REPORT_POWER_STATUS",
	OpcodeGetMenuLanguage:              "GET_MENU_LANGUAGE",
	OpcodeSelectAnalogueService:        "SELECT_ANALOGUE_SERVICE",
	OpcodeSelectDigitalService:         "SELECT_DIGITAL_SERVICE",
	OpcodeSetDigitalTimer:              "SET_DIGITAL_TIMER",
	OpcodeClearDigitalTimer:            "CLEAR_DIGITAL_TIMER",
	OpcodeSetAudioRate:                 "SET_AUDIO_RATE",
	OpcodeInactiveSource:               "INACTIVE_SOURCE",
	OpcodeCECVersion:                   "CEC_VERSION",
	OpcodeGetCECVersion:                "GET_CEC_VERSION",
	OpcodeVendorCommandWithID:          "VENDOR_COMMAND_WITH_ID",
	OpcodeClearExternalTimer:           "CLEAR_EXTERNAL_TIMER",
	OpcodeSetExternalTimer:             "SET_EXTERNAL_TIMER",
	OpcodeReportShortAudioDescriptors:  "REPORT_SHORT_AUDIO_DESCRIPTORS",
	OpcodeRequestShortAudioDescriptors: "REQUEST_SHORT_AUDIO_DESCRIPTORS",
	OpcodeStartARC:                     "START_ARC",
	OpcodeReportARCStarted:             "REPORT_ARC_STARTED",
	OpcodeReportARCEnded:               "REPORT_ARC_ENDED",
	OpcodeRequestARCStart:              "REQUEST_ARC_START",
	OpcodeRequestARCEnd:                "REQUEST_ARC_END",
	OpcodeEndARC:                       "END_ARC",
	OpcodeCDC:                          "CDC",
	OpcodeNone:                         "NONE",
	OpcodeAbort:                        "ABORT",
}

// String returns the opcode name.
func (o Opcode) String() string {
	if name, ok := opcodeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("OPCODE_0x%02X", uint8(o))
}

// Code returns the wire code.
func (o Opcode) Code() int32 { return int32(o) }

// Valid reports whether o is a defined opcode.
func (o Opcode) Valid() bool {
	_, ok := opcodeNames[o]
	return ok
}

// ParseOpcode looks up a wire code. Codes outside the opcode table fail.
func ParseOpcode(code int32) (Opcode, bool) {
	if code < 0 || code > 0xFF {
		return 0, false
	}
	o := Opcode(code)
	return o, o.Valid()
}

// Opcodes returns every defined opcode in ascending code order.
func Opcodes() []Opcode {
	out := make([]Opcode, 0, len(opcodeNames))
	for c := 0; c <= 0xFF; c++ {
		if o := Opcode(c); o.Valid() {
			out = append(out, o)
		}
	}
	return out
}
