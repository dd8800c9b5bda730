package cec

import (
	"errors"
	"fmt"
)

// Address errors.
var (
	ErrUnknownAddress          = errors.New("unknown logical address")
	ErrNoAddress               = errors.New("address is the unknown sentinel")
	ErrUnregisteredAddress     = errors.New("address is the unregistered sentinel")
	ErrInvalidPrimaryAddress   = errors.New("invalid primary address")
	ErrUnknownPrimaryAddress   = errors.New("primary address is the unknown sentinel")
	ErrSecondaryWithoutPrimary = errors.New("secondary addresses require a registered primary")
)

// Command errors.
var (
	ErrUnknownOpcode      = errors.New("unknown opcode")
	ErrUnknownInitiator   = errors.New("unknown initiator")
	ErrUnknownDestination = errors.New("unknown destination")
	ErrPacketTooLarge     = errors.New("data packet exceeds 64 bytes")
)

// Record errors.
var (
	ErrMessageParse      = errors.New("log message is not valid UTF-8")
	ErrLogLevelParse     = errors.New("unknown log level")
	ErrTimestampParse    = errors.New("log timestamp out of range")
	ErrUnknownKeycode    = errors.New("unknown keycode")
	ErrUnknownAlert      = errors.New("unknown alert")
	ErrUnknownMenuState  = errors.New("unknown menu state")
	ErrUnknownDeviceType = errors.New("unknown device type")
	ErrUnknownParameter  = errors.New("unknown parameter type")
	ErrNilRecord         = errors.New("nil record")
)

// ErrInvalidConfig is matched by every *ConfigError.
var ErrInvalidConfig = errors.New("invalid configuration")

// ConfigError reports a configuration field that is missing or invalid.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}

// Is reports whether target is ErrInvalidConfig.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

func missingField(field string) error {
	return &ConfigError{Field: field, Reason: "must be set"}
}

func invalidField(field, format string, args ...any) error {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
