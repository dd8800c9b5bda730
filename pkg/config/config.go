// Package config loads the owl daemon configuration.
//
// Configuration comes from a single YAML file (owl.yaml) layered over
// Default. Unknown keys are rejected so that typos fail loudly instead of
// silently falling back to defaults. Command-line flags are applied by the
// caller after loading.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/owl-cec/owl/pkg/cec"
	"github.com/owl-cec/owl/pkg/dispatch"
)

// Config is the daemon configuration.
type Config struct {
	Device   DeviceConfig   `yaml:"device"`
	Dispatch DispatchConfig `yaml:"dispatch"`
	Log      LogConfig      `yaml:"log"`
	HTTP     HTTPConfig     `yaml:"http"`
}

// DeviceConfig describes how owl presents itself on the CEC bus.
type DeviceConfig struct {
	// Name is the OSD name shown by the TV. Longer names are truncated to
	// wire.OSDNameSize (15) bytes when sent.
	Name string `yaml:"name"`

	// Types are the device kinds to register as, e.g. recording_device.
	Types []string `yaml:"types"`

	// Port is the adapter path. Empty means autodetect.
	Port string `yaml:"port"`

	// HDMIPort is the TV input owl is plugged into.
	HDMIPort *uint8 `yaml:"hdmi_port,omitempty"`

	// PhysicalAddress overrides the address libcec would derive.
	PhysicalAddress *uint16 `yaml:"physical_address,omitempty"`

	// BaseDevice is the device owl is connected to, usually tv.
	BaseDevice string `yaml:"base_device,omitempty"`

	ActivateSource    *bool  `yaml:"activate_source,omitempty"`
	PowerOffOnStandby *bool  `yaml:"power_off_on_standby,omitempty"`
	MonitorOnly       *bool  `yaml:"monitor_only,omitempty"`
	Language          string `yaml:"language,omitempty"`

	// WakeDevices and PowerOffDevices are logical address names.
	WakeDevices     []string `yaml:"wake_devices,omitempty"`
	PowerOffDevices []string `yaml:"power_off_devices,omitempty"`

	OpenTimeout Duration `yaml:"open_timeout"`
}

// DispatchConfig tunes the command worker.
type DispatchConfig struct {
	PollInterval Duration `yaml:"poll_interval"`
	QueueSize    int      `yaml:"queue_size"`
}

// LogConfig configures operational logging and traffic capture.
type LogConfig struct {
	// Level is one of trace, debug, info, warn, error.
	Level string `yaml:"level"`

	// Capture is an optional .clog file receiving bus traffic.
	Capture string `yaml:"capture"`
}

// HTTPConfig configures the optional control API.
type HTTPConfig struct {
	// Listen is a host:port. Empty disables the API.
	Listen string `yaml:"listen"`
}

// Duration is a time.Duration written as "250ms" in YAML.
type Duration time.Duration

// UnmarshalYAML parses a duration string.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*d = Duration(v)
	return nil
}

// MarshalYAML writes the duration string.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Default returns the configuration used when no file is given.
func Default() *Config {
	hdmiPort := uint8(2)
	activate := false
	return &Config{
		Device: DeviceConfig{
			Name:           "owl",
			Types:          []string{"recording_device"},
			HDMIPort:       &hdmiPort,
			ActivateSource: &activate,
			OpenTimeout:    Duration(cec.DefaultOpenTimeout),
		},
		Dispatch: DispatchConfig{
			PollInterval: Duration(dispatch.DefaultPollInterval),
			QueueSize:    dispatch.DefaultQueueSize,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadFile reads path over Default and validates the result.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse reads YAML from r over Default and validates the result. An empty
// document yields Default.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every problem in c at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Device.Name == "" {
		errs = append(errs, errors.New("device.name is required"))
	}
	if _, err := c.deviceTypes(); err != nil {
		errs = append(errs, err)
	}
	if p := c.Device.HDMIPort; p != nil && (*p < cec.MinHDMIPort || *p > cec.MaxHDMIPort) {
		errs = append(errs, fmt.Errorf("device.hdmi_port %d out of range %d-%d", *p, cec.MinHDMIPort, cec.MaxHDMIPort))
	}
	if c.Device.BaseDevice != "" {
		if _, ok := cec.ParseAddressName(c.Device.BaseDevice); !ok {
			errs = append(errs, fmt.Errorf("device.base_device: unknown address %q", c.Device.BaseDevice))
		}
	}
	if _, err := addressSet("device.wake_devices", c.Device.WakeDevices); err != nil {
		errs = append(errs, err)
	}
	if _, err := addressSet("device.power_off_devices", c.Device.PowerOffDevices); err != nil {
		errs = append(errs, err)
	}
	if l := c.Device.Language; l != "" && len(l) != 3 {
		errs = append(errs, fmt.Errorf("device.language %q is not a 3-letter code", l))
	}
	if c.Device.OpenTimeout <= 0 {
		errs = append(errs, errors.New("device.open_timeout must be positive"))
	}
	if c.Dispatch.PollInterval <= 0 {
		errs = append(errs, errors.New("dispatch.poll_interval must be positive"))
	}
	if c.Dispatch.QueueSize <= 0 {
		errs = append(errs, errors.New("dispatch.queue_size must be positive"))
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}

	return errors.Join(errs...)
}

func (c *Config) deviceTypes() ([]cec.DeviceType, error) {
	if len(c.Device.Types) == 0 {
		return nil, errors.New("device.types is required")
	}
	out := make([]cec.DeviceType, 0, len(c.Device.Types))
	for _, name := range c.Device.Types {
		t, ok := cec.ParseDeviceTypeName(name)
		if !ok {
			return nil, fmt.Errorf("device.types: unknown device type %q", name)
		}
		out = append(out, t)
	}
	return out, nil
}

// addressSet builds a set from address names. The first name is the
// primary. No names yields (nil, nil).
func addressSet(field string, names []string) (*cec.AddressSet, error) {
	if len(names) == 0 {
		return nil, nil
	}
	var primary cec.KnownAddress
	var rest []cec.RegisteredAddress
	for i, name := range names {
		a, ok := cec.ParseAddressName(name)
		if !ok {
			return nil, fmt.Errorf("%s: unknown address %q", field, name)
		}
		r, err := cec.NewRegisteredAddress(a)
		if err != nil {
			return nil, fmt.Errorf("%s: %q: %w", field, name, err)
		}
		if i == 0 {
			primary = r.Known()
		}
		rest = append(rest, r)
	}
	s, err := cec.NewAddressSet(primary, rest...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}
	return &s, nil
}

// Builder returns a connection builder populated from c.Device. The caller
// adds callbacks and builds.
func (c *Config) Builder() (*cec.ConfigBuilder, error) {
	d := c.Device
	types, err := c.deviceTypes()
	if err != nil {
		return nil, err
	}

	b := cec.NewConfigBuilder().
		Name(d.Name).
		DeviceType(types...).
		Port(d.Port).
		DetectDevice(d.Port == "").
		OpenTimeout(d.OpenTimeout.Std())

	if d.HDMIPort != nil {
		b.HDMIPort(*d.HDMIPort)
	}
	if d.PhysicalAddress != nil {
		b.PhysicalAddress(*d.PhysicalAddress)
	}
	if d.BaseDevice != "" {
		a, ok := cec.ParseAddressName(d.BaseDevice)
		if !ok {
			return nil, fmt.Errorf("device.base_device: unknown address %q", d.BaseDevice)
		}
		b.BaseDevice(a)
	}
	if d.ActivateSource != nil {
		b.ActivateSource(*d.ActivateSource)
	}
	if d.PowerOffOnStandby != nil {
		b.PowerOffOnStandby(*d.PowerOffOnStandby)
	}
	if d.MonitorOnly != nil {
		b.MonitorOnly(*d.MonitorOnly)
	}
	if d.Language != "" {
		b.Language(d.Language)
	}
	wake, err := addressSet("device.wake_devices", d.WakeDevices)
	if err != nil {
		return nil, err
	}
	if wake != nil {
		b.WakeDevices(*wake)
	}
	off, err := addressSet("device.power_off_devices", d.PowerOffDevices)
	if err != nil {
		return nil, err
	}
	if off != nil {
		b.PowerOffDevices(*off)
	}
	return b, nil
}

// DispatchOptions returns the dispatcher tuning from c.
func (c *Config) DispatchOptions() dispatch.Options {
	return dispatch.Options{
		QueueSize:    c.Dispatch.QueueSize,
		PollInterval: c.Dispatch.PollInterval.Std(),
	}
}

// ParseLevel maps a level name to an slog level. trace is cec.LevelTrace.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return cec.LevelTrace, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown level %q", s)
}
