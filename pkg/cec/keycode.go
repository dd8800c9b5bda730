package cec

import "fmt"

// UserControlCode is a remote-control key as carried by USER_CONTROL_PRESSED.
type UserControlCode uint8

// User control codes.
const (
	KeySelect                   UserControlCode = 0x00
	KeyUp                       UserControlCode = 0x01
	KeyDown                     UserControlCode = 0x02
	KeyLeft                     UserControlCode = 0x03
	KeyRight                    UserControlCode = 0x04
	KeyRightUp                  UserControlCode = 0x05
	KeyRightDown                UserControlCode = 0x06
	KeyLeftUp                   UserControlCode = 0x07
	KeyLeftDown                 UserControlCode = 0x08
	KeyRootMenu                 UserControlCode = 0x09
	KeySetupMenu                UserControlCode = 0x0A
	KeyContentsMenu             UserControlCode = 0x0B
	KeyFavoriteMenu             UserControlCode = 0x0C
	KeyExit                     UserControlCode = 0x0D
	KeyTopMenu                  UserControlCode = 0x10
	KeyDVDMenu                  UserControlCode = 0x11
	KeyNumberEntryMode          UserControlCode = 0x1D
	KeyNumber11                 UserControlCode = 0x1E
	KeyNumber12                 UserControlCode = 0x1F
	KeyNumber0                  UserControlCode = 0x20
	KeyNumber1                  UserControlCode = 0x21
	KeyNumber2                  UserControlCode = 0x22
	KeyNumber3                  UserControlCode = 0x23
	KeyNumber4                  UserControlCode = 0x24
	KeyNumber5                  UserControlCode = 0x25
	KeyNumber6                  UserControlCode = 0x26
	KeyNumber7                  UserControlCode = 0x27
	KeyNumber8                  UserControlCode = 0x28
	KeyNumber9                  UserControlCode = 0x29
	KeyDot                      UserControlCode = 0x2A
	KeyEnter                    UserControlCode = 0x2B
	KeyClear                    UserControlCode = 0x2C
	KeyNextFavorite             UserControlCode = 0x2F
	KeyChannelUp                UserControlCode = 0x30
	KeyChannelDown              UserControlCode = 0x31
	KeyPreviousChannel          UserControlCode = 0x32
	KeySoundSelect              UserControlCode = 0x33
	KeyInputSelect              UserControlCode = 0x34
	KeyDisplayInformation       UserControlCode = 0x35
	KeyHelp                     UserControlCode = 0x36
	KeyPageUp                   UserControlCode = 0x37
	KeyPageDown                 UserControlCode = 0x38
	KeyPower                    UserControlCode = 0x40
	KeyVolumeUp                 UserControlCode = 0x41
	KeyVolumeDown               UserControlCode = 0x42
	KeyMute                     UserControlCode = 0x43
	KeyPlay                     UserControlCode = 0x44
	KeyStop                     UserControlCode = 0x45
	KeyPause                    UserControlCode = 0x46
	KeyRecord                   UserControlCode = 0x47
	KeyRewind                   UserControlCode = 0x48
	KeyFastForward              UserControlCode = 0x49
	KeyEject                    UserControlCode = 0x4A
	KeyForward                  UserControlCode = 0x4B
	KeyBackward                 UserControlCode = 0x4C
	KeyStopRecord               UserControlCode = 0x4D
	KeyPauseRecord              UserControlCode = 0x4E
	KeyAngle                    UserControlCode = 0x50
	KeySubPicture               UserControlCode = 0x51
	KeyVideoOnDemand            UserControlCode = 0x52
	KeyElectronicProgramGuide   UserControlCode = 0x53
	KeyTimerProgramming         UserControlCode = 0x54
	KeyInitialConfiguration     UserControlCode = 0x55
	KeySelectBroadcastType      UserControlCode = 0x56
	KeySelectSoundPresentation  UserControlCode = 0x57
	KeyPlayFunction             UserControlCode = 0x60
	KeyPausePlayFunction        UserControlCode = 0x61
	KeyRecordFunction           UserControlCode = 0x62
	KeyPauseRecordFunction      UserControlCode = 0x63
	KeyStopFunction             UserControlCode = 0x64
	KeyMuteFunction             UserControlCode = 0x65
	KeyRestoreVolumeFunction    UserControlCode = 0x66
	KeyTuneFunction             UserControlCode = 0x67
	KeySelectMediaFunction      UserControlCode = 0x68
	KeySelectAVInputFunction    UserControlCode = 0x69
	KeySelectAudioInputFunction UserControlCode = 0x6A
	KeyPowerToggleFunction      UserControlCode = 0x6B
	KeyPowerOffFunction         UserControlCode = 0x6C
	KeyPowerOnFunction          UserControlCode = 0x6D
	KeyF1Blue                   UserControlCode = 0x71
	KeyF2Red                    UserControlCode = 0x72
	KeyF3Green                  UserControlCode = 0x73
	KeyF4Yellow                 UserControlCode = 0x74
	KeyF5                       UserControlCode = 0x75
	KeyData                     UserControlCode = 0x76
	KeyANReturn                 UserControlCode = 0x91
	KeyANChannelsList           UserControlCode = 0x96
	KeyUnknown                  UserControlCode = 0xFF
)

var keyNames = map[UserControlCode]string{
	KeySelect:                   "SELECT",
	KeyUp:                       "UP",
	KeyDown:                     "DOWN",
	KeyLeft:                     "LEFT",
	KeyRight:                    "RIGHT",
	KeyRightUp:                  "RIGHT_UP",
	KeyRightDown:                "RIGHT_DOWN",
	KeyLeftUp:                   "LEFT_UP",
	KeyLeftDown:                 "LEFT_DOWN",
	KeyRootMenu:                 "ROOT_MENU",
	KeySetupMenu:                "SETUP_MENU",
	KeyContentsMenu:             "CONTENTS_MENU",
	KeyFavoriteMenu:             "FAVORITE_MENU",
	KeyExit:                     "EXIT",
	KeyTopMenu:                  "TOP_MENU",
	KeyDVDMenu:                  "DVD_MENU",
	KeyNumberEntryMode:          "NUMBER_ENTRY_MODE",
	KeyNumber11:                 "NUMBER11",
	KeyNumber12:                 "NUMBER12",
	KeyNumber0:                  "NUMBER0",
	KeyNumber1:                  "NUMBER1",
	KeyNumber2:                  "NUMBER2",
	KeyNumber3:                  "NUMBER3",
	KeyNumber4:                  "NUMBER4",
	KeyNumber5:                  "NUMBER5",
	KeyNumber6:                  "NUMBER6",
	KeyNumber7:                  "NUMBER7",
	KeyNumber8:                  "NUMBER8",
	KeyNumber9:                  "NUMBER9",
	KeyDot:                      "DOT",
	KeyEnter:                    "ENTER",
	KeyClear:                    "CLEAR",
	KeyNextFavorite:             "NEXT_FAVORITE",
	KeyChannelUp:                "CHANNEL_UP",
	KeyChannelDown:              "CHANNEL_DOWN",
	KeyPreviousChannel:          "PREVIOUS_CHANNEL",
	KeySoundSelect:              "SOUND_SELECT",
	KeyInputSelect:              "INPUT_SELECT",
	KeyDisplayInformation:       "DISPLAY_INFORMATION",
	KeyHelp:                     "HELP",
	KeyPageUp:                   "PAGE_UP",
	KeyPageDown:                 "PAGE_DOWN",
	KeyPower:                    "POWER",
	KeyVolumeUp:                 "VOLUME_UP",
	KeyVolumeDown:               "VOLUME_DOWN",
	KeyMute:                     "MUTE",
	KeyPlay:                     "PLAY",
	KeyStop:                     "STOP",
	KeyPause:                    "PAUSE",
	KeyRecord:                   "RECORD",
	KeyRewind:                   "REWIND",
	KeyFastForward:              "FAST_FORWARD",
	KeyEject:                    "EJECT",
	KeyForward:                  "FORWARD",
	KeyBackward:                 "BACKWARD",
	KeyStopRecord:               "STOP_RECORD",
	KeyPauseRecord:              "PAUSE_RECORD",
	KeyAngle:                    "ANGLE",
	KeySubPicture:               "SUB_PICTURE",
	KeyVideoOnDemand:            "VIDEO_ON_DEMAND",
	KeyElectronicProgramGuide:   "ELECTRONIC_PROGRAM_GUIDE",
	KeyTimerProgramming:         "TIMER_PROGRAMMING",
	KeyInitialConfiguration:     "INITIAL_CONFIGURATION",
	KeySelectBroadcastType:      "SELECT_BROADCAST_TYPE",
	KeySelectSoundPresentation:  "SELECT_SOUND_PRESENTATION",
	KeyPlayFunction:             "PLAY_FUNCTION",
	KeyPausePlayFunction:        "PAUSE_PLAY_FUNCTION",
	KeyRecordFunction:           "RECORD_FUNCTION",
	KeyPauseRecordFunction:      "PAUSE_RECORD_FUNCTION",
	KeyStopFunction:             "STOP_FUNCTION",
	KeyMuteFunction:             "MUTE_FUNCTION",
	KeyRestoreVolumeFunction:    "RESTORE_VOLUME_FUNCTION",
	KeyTuneFunction:             "TUNE_FUNCTION",
	KeySelectMediaFunction:      "SELECT_MEDIA_FUNCTION",
	KeySelectAVInputFunction:    "SELECT_AV_INPUT_FUNCTION",
	KeySelectAudioInputFunction: "SELECT_AUDIO_INPUT_FUNCTION",
	KeyPowerToggleFunction:      "POWER_TOGGLE_FUNCTION",
	KeyPowerOffFunction:         "POWER_OFF_FUNCTION",
	KeyPowerOnFunction:          "POWER_ON_FUNCTION",
	KeyF1Blue:                   "F1_BLUE",
	KeyF2Red:                    "F2_RED",
	KeyF3Green:                  "F3_GREEN",
	KeyF4Yellow:                 "F4_YELLOW",
	KeyF5:                       "F5",
	KeyData:                     "DATA",
	KeyANReturn:                 "AN_RETURN",
	KeyANChannelsList:           "AN_CHANNELS_LIST",
	KeyUnknown:                  "UNKNOWN",
}

// String returns the key name.
func (k UserControlCode) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("KEY_0x%02X", uint8(k))
}

// Code returns the wire code.
func (k UserControlCode) Code() int32 { return int32(k) }

// Valid reports whether k is a defined key.
func (k UserControlCode) Valid() bool {
	_, ok := keyNames[k]
	return ok
}

// ParseUserControlCode looks up a wire keycode. KeyUnknown (0xFF) is a defined
// code and decodes successfully.
func ParseUserControlCode(code int32) (UserControlCode, bool) {
	if code < 0 || code > 0xFF {
		return 0, false
	}
	k := UserControlCode(code)
	return k, k.Valid()
}
