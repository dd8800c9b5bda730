package cec

import (
	"time"

	"github.com/owl-cec/owl/pkg/wire"
)

// HDMI port bounds accepted by libcec.
const (
	MinHDMIPort = 1
	MaxHDMIPort = 15
)

// DefaultOpenTimeout bounds adapter detection and the connection handshake.
const DefaultOpenTimeout = 10 * time.Second

// Config holds the parameters used to open one connection. Pointer fields
// are optional: a nil field leaves the library default in place.
//
// Build a Config with ConfigBuilder; a Config assembled by hand skips
// validation.
type Config struct {
	Name        string
	DeviceTypes DeviceTypes

	// Port is the adapter path. When empty, DetectDevice must be set and the
	// first adapter found is used.
	Port         string
	DetectDevice bool
	OpenTimeout  time.Duration

	PhysicalAddress    *uint16
	BaseDevice         *LogicalAddress
	HDMIPort           *uint8
	TVVendor           *VendorID
	WakeDevices        *AddressSet
	PowerOffDevices    *AddressSet
	SettingsFromROM    *bool
	ActivateSource     *bool
	PowerOffOnStandby  *bool
	Language           *string
	MonitorOnly        *bool
	AdapterType        *AdapterType
	ComboKey           *UserControlCode
	ComboKeyTimeout    *time.Duration
	ButtonRepeatRate   *time.Duration
	ButtonReleaseDelay *time.Duration
	DoubleTapTimeout   *time.Duration
	AutoWakeAVR        *bool

	Callbacks *Callbacks
}

// Encode overlays c onto base, which normally comes from the library's
// default initializer. Only fields set in c are written. Name and language
// are truncated to their buffer size and NUL padded.
func (c *Config) Encode(base wire.Configuration) wire.Configuration {
	cfg := base
	cfg.ClientVersion = wire.ClientVersion
	copyPadded(cfg.DeviceName[:], c.Name)
	cfg.DeviceTypes = c.DeviceTypes.Encode()

	if c.PhysicalAddress != nil {
		cfg.PhysicalAddress = *c.PhysicalAddress
	}
	if c.BaseDevice != nil {
		cfg.BaseDevice = c.BaseDevice.Code()
	}
	if c.HDMIPort != nil {
		cfg.HDMIPort = *c.HDMIPort
	}
	if c.TVVendor != nil {
		cfg.TVVendor = uint32(*c.TVVendor)
	}
	if c.WakeDevices != nil {
		cfg.WakeDevices = c.WakeDevices.Encode()
	}
	if c.PowerOffDevices != nil {
		cfg.PowerOffDevices = c.PowerOffDevices.Encode()
	}
	if c.SettingsFromROM != nil {
		cfg.GetSettingsFromROM = boolUint8(*c.SettingsFromROM)
	}
	if c.ActivateSource != nil {
		cfg.ActivateSource = boolUint8(*c.ActivateSource)
	}
	if c.PowerOffOnStandby != nil {
		cfg.PowerOffOnStandby = boolUint8(*c.PowerOffOnStandby)
	}
	if c.Language != nil {
		copyPadded(cfg.DeviceLanguage[:], *c.Language)
	}
	if c.MonitorOnly != nil {
		cfg.MonitorOnly = boolUint8(*c.MonitorOnly)
	}
	if c.AdapterType != nil {
		cfg.AdapterType = int32(*c.AdapterType)
	}
	if c.ComboKey != nil {
		cfg.ComboKey = c.ComboKey.Code()
	}
	if c.ComboKeyTimeout != nil {
		cfg.ComboKeyTimeoutMs = millisU32(*c.ComboKeyTimeout)
	}
	if c.ButtonRepeatRate != nil {
		cfg.ButtonRepeatRateMs = millisU32(*c.ButtonRepeatRate)
	}
	if c.ButtonReleaseDelay != nil {
		cfg.ButtonReleaseDelayMs = millisU32(*c.ButtonReleaseDelay)
	}
	if c.DoubleTapTimeout != nil {
		cfg.DoubleTapTimeoutMs = millisU32(*c.DoubleTapTimeout)
	}
	if c.AutoWakeAVR != nil {
		cfg.AutoWakeAVR = boolUint8(*c.AutoWakeAVR)
	}
	return cfg
}

// copyPadded copies s into dst, truncating silently and zeroing the rest.
func copyPadded(dst []byte, s string) {
	n := copy(dst, s)
	clear(dst[n:])
}

// ConfigBuilder accumulates connection parameters. Errors are reported by
// Build, which names the first missing or invalid field.
type ConfigBuilder struct {
	cfg   Config
	types []DeviceType
}

// NewConfigBuilder returns an empty builder.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{cfg: Config{OpenTimeout: DefaultOpenTimeout}}
}

// Name sets the OSD name announced on the bus. Names longer than 15 bytes
// are truncated on encode.
func (b *ConfigBuilder) Name(name string) *ConfigBuilder {
	b.cfg.Name = name
	return b
}

// DeviceType appends a device type to register as.
func (b *ConfigBuilder) DeviceType(t ...DeviceType) *ConfigBuilder {
	b.types = append(b.types, t...)
	return b
}

// Port selects an adapter path explicitly.
func (b *ConfigBuilder) Port(port string) *ConfigBuilder {
	b.cfg.Port = port
	return b
}

// DetectDevice enables adapter autodetection when no port is given.
func (b *ConfigBuilder) DetectDevice(detect bool) *ConfigBuilder {
	b.cfg.DetectDevice = detect
	return b
}

// OpenTimeout bounds the connection handshake.
func (b *ConfigBuilder) OpenTimeout(d time.Duration) *ConfigBuilder {
	b.cfg.OpenTimeout = d
	return b
}

func (b *ConfigBuilder) PhysicalAddress(addr uint16) *ConfigBuilder {
	b.cfg.PhysicalAddress = &addr
	return b
}

func (b *ConfigBuilder) BaseDevice(addr LogicalAddress) *ConfigBuilder {
	b.cfg.BaseDevice = &addr
	return b
}

func (b *ConfigBuilder) HDMIPort(port uint8) *ConfigBuilder {
	b.cfg.HDMIPort = &port
	return b
}

func (b *ConfigBuilder) TVVendor(v VendorID) *ConfigBuilder {
	b.cfg.TVVendor = &v
	return b
}

func (b *ConfigBuilder) WakeDevices(s AddressSet) *ConfigBuilder {
	b.cfg.WakeDevices = &s
	return b
}

func (b *ConfigBuilder) PowerOffDevices(s AddressSet) *ConfigBuilder {
	b.cfg.PowerOffDevices = &s
	return b
}

func (b *ConfigBuilder) SettingsFromROM(v bool) *ConfigBuilder {
	b.cfg.SettingsFromROM = &v
	return b
}

func (b *ConfigBuilder) ActivateSource(v bool) *ConfigBuilder {
	b.cfg.ActivateSource = &v
	return b
}

func (b *ConfigBuilder) PowerOffOnStandby(v bool) *ConfigBuilder {
	b.cfg.PowerOffOnStandby = &v
	return b
}

// Language sets the ISO 639-2 menu language. Only the first three bytes are
// used.
func (b *ConfigBuilder) Language(lang string) *ConfigBuilder {
	b.cfg.Language = &lang
	return b
}

func (b *ConfigBuilder) MonitorOnly(v bool) *ConfigBuilder {
	b.cfg.MonitorOnly = &v
	return b
}

func (b *ConfigBuilder) AdapterType(t AdapterType) *ConfigBuilder {
	b.cfg.AdapterType = &t
	return b
}

func (b *ConfigBuilder) ComboKey(k UserControlCode) *ConfigBuilder {
	b.cfg.ComboKey = &k
	return b
}

func (b *ConfigBuilder) ComboKeyTimeout(d time.Duration) *ConfigBuilder {
	b.cfg.ComboKeyTimeout = &d
	return b
}

func (b *ConfigBuilder) ButtonRepeatRate(d time.Duration) *ConfigBuilder {
	b.cfg.ButtonRepeatRate = &d
	return b
}

func (b *ConfigBuilder) ButtonReleaseDelay(d time.Duration) *ConfigBuilder {
	b.cfg.ButtonReleaseDelay = &d
	return b
}

func (b *ConfigBuilder) DoubleTapTimeout(d time.Duration) *ConfigBuilder {
	b.cfg.DoubleTapTimeout = &d
	return b
}

func (b *ConfigBuilder) AutoWakeAVR(v bool) *ConfigBuilder {
	b.cfg.AutoWakeAVR = &v
	return b
}

// Callbacks sets the event handlers.
func (b *ConfigBuilder) Callbacks(cb *Callbacks) *ConfigBuilder {
	b.cfg.Callbacks = cb
	return b
}

// Build validates the accumulated fields and returns the configuration.
// Failures are *ConfigError values.
func (b *ConfigBuilder) Build() (*Config, error) {
	cfg := b.cfg

	if cfg.Name == "" {
		return nil, missingField("name")
	}
	types, err := NewDeviceTypes(b.types...)
	if err != nil {
		return nil, err
	}
	cfg.DeviceTypes = types

	if cfg.Port == "" && !cfg.DetectDevice {
		return nil, invalidField("port", "no adapter port and autodetection disabled")
	}
	if cfg.OpenTimeout <= 0 {
		return nil, invalidField("open_timeout", "must be positive, got %s", cfg.OpenTimeout)
	}
	if cfg.HDMIPort != nil && (*cfg.HDMIPort < MinHDMIPort || *cfg.HDMIPort > MaxHDMIPort) {
		return nil, invalidField("hdmi_port", "must be in [%d, %d], got %d", MinHDMIPort, MaxHDMIPort, *cfg.HDMIPort)
	}
	if cfg.BaseDevice != nil && (!cfg.BaseDevice.Valid() || *cfg.BaseDevice == AddressUnknown) {
		return nil, invalidField("base_device", "not a known address: %d", int8(*cfg.BaseDevice))
	}
	if cfg.TVVendor != nil && !cfg.TVVendor.Valid() {
		return nil, invalidField("tv_vendor", "unknown vendor id 0x%06X", uint32(*cfg.TVVendor))
	}
	if cfg.AdapterType != nil && !cfg.AdapterType.Valid() {
		return nil, invalidField("adapter_type", "unknown adapter type 0x%X", uint16(*cfg.AdapterType))
	}
	if cfg.ComboKey != nil && !cfg.ComboKey.Valid() {
		return nil, invalidField("combo_key", "unknown keycode 0x%02X", uint8(*cfg.ComboKey))
	}
	for _, f := range []struct {
		name string
		d    *time.Duration
	}{
		{"combo_key_timeout", cfg.ComboKeyTimeout},
		{"button_repeat_rate", cfg.ButtonRepeatRate},
		{"button_release_delay", cfg.ButtonReleaseDelay},
		{"double_tap_timeout", cfg.DoubleTapTimeout},
	} {
		if f.d != nil && *f.d < 0 {
			return nil, invalidField(f.name, "must not be negative, got %s", *f.d)
		}
	}
	return &cfg, nil
}
