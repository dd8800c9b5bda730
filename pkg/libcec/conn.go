//go:build cgo

package libcec

/*
#include <stdlib.h>
#include <string.h>
#include <libcec/cecc.h>
*/
import "C"

import (
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/owl-cec/owl/pkg/cec"
)

const maxAdapters = 10

// Connection is an open libcec connection. It is not safe for concurrent
// use.
type Connection struct {
	conn      C.libcec_connection_t
	callbacks *callbackTable
	port      string
	logger    *slog.Logger
}

// Open initialises libcec with cfg and opens the configured adapter, or the
// first one detected.
func Open(cfg *cec.Config, logger *slog.Logger) (*Connection, error) {
	if logger == nil {
		logger = slog.Default()
	}
	cb := cfg.Callbacks
	if cb == nil {
		cb = &cec.Callbacks{Logger: logger}
	}
	table, err := newCallbackTable(cb)
	if err != nil {
		return nil, err
	}

	var native C.libcec_configuration
	C.libcec_clear_configuration(&native)
	applyConfiguration(&native, cfg.Encode(wireConfiguration(&native)))
	native.callbackParam = table.param
	native.callbacks = table.fns

	conn := C.libcec_initialise(&native)
	if conn == nil {
		table.free()
		return nil, ErrInitialise
	}
	c := &Connection{conn: conn, callbacks: table, logger: logger}

	port := cfg.Port
	if port == "" {
		port, err = c.detect()
		if err != nil {
			c.destroy()
			return nil, err
		}
	}

	cport := C.CString(port)
	defer C.free(unsafe.Pointer(cport))
	if C.libcec_open(conn, cport, C.uint32_t(cfg.OpenTimeout.Milliseconds())) == 0 {
		c.destroy()
		return nil, fmt.Errorf("%w: %s", ErrOpen, port)
	}
	c.port = port
	logger.Info("libcec connection opened", "port", port)
	return c, nil
}

func (c *Connection) detect() (string, error) {
	var adapters [maxAdapters]C.cec_adapter_descriptor
	n := C.libcec_detect_adapters(c.conn, &adapters[0], maxAdapters, nil, 1)
	if n < 1 {
		return "", ErrNoAdapter
	}
	port := C.GoString(&adapters[0].strComName[0])
	c.logger.Debug("detected adapter", "port", port, "count", int(n))
	return port, nil
}

func (c *Connection) destroy() {
	C.libcec_destroy(c.conn)
	c.conn = nil
	c.callbacks.free()
	c.callbacks = nil
}

// Port returns the adapter path the connection was opened on.
func (c *Connection) Port() string { return c.port }

// Close closes the adapter and releases libcec. It is safe to call more
// than once.
func (c *Connection) Close() error {
	if c.conn == nil {
		return nil
	}
	C.libcec_close(c.conn)
	c.destroy()
	return nil
}

func (c *Connection) check(op string, rc C.int) error {
	if rc == 0 {
		return fmt.Errorf("%w: %s", ErrCommandFailed, op)
	}
	return nil
}

func cbool(b bool) C.int {
	if b {
		return 1
	}
	return 0
}

// SetActiveSource marks this device, as the given type, as the active source.
func (c *Connection) SetActiveSource(t cec.DeviceType) error {
	if c.conn == nil {
		return ErrClosed
	}
	return c.check("set_active_source", C.libcec_set_active_source(c.conn, C.cec_device_type(t)))
}

// SetInactiveView broadcasts that this device is no longer the active source.
func (c *Connection) SetInactiveView() error {
	if c.conn == nil {
		return ErrClosed
	}
	return c.check("set_inactive_view", C.libcec_set_inactive_view(c.conn))
}

// StandbyDevices puts addr, or every device for AddressBroadcast, in standby.
func (c *Connection) StandbyDevices(addr cec.LogicalAddress) error {
	if c.conn == nil {
		return ErrClosed
	}
	return c.check("standby_devices", C.libcec_standby_devices(c.conn, C.cec_logical_address(addr)))
}

// PowerOnDevices wakes addr.
func (c *Connection) PowerOnDevices(addr cec.LogicalAddress) error {
	if c.conn == nil {
		return ErrClosed
	}
	return c.check("power_on_devices", C.libcec_power_on_devices(c.conn, C.cec_logical_address(addr)))
}

// SendKeypress sends USER_CONTROL_PRESSED for key to dest.
func (c *Connection) SendKeypress(dest cec.LogicalAddress, key cec.UserControlCode, wait bool) error {
	if c.conn == nil {
		return ErrClosed
	}
	rc := C.libcec_send_keypress(c.conn, C.cec_logical_address(dest), C.cec_user_control_code(key), cbool(wait))
	return c.check("send_keypress", rc)
}

// SendKeyRelease sends USER_CONTROL_RELEASE to dest.
func (c *Connection) SendKeyRelease(dest cec.LogicalAddress, wait bool) error {
	if c.conn == nil {
		return ErrClosed
	}
	return c.check("send_key_release", C.libcec_send_key_release(c.conn, C.cec_logical_address(dest), cbool(wait)))
}

// VolumeUp, VolumeDown, MuteAudio and AudioToggleMute return the audio
// status byte reported by the audio system.

func (c *Connection) VolumeUp(sendRelease bool) (uint8, error) {
	if c.conn == nil {
		return 0, ErrClosed
	}
	return uint8(C.libcec_volume_up(c.conn, cbool(sendRelease))), nil
}

func (c *Connection) VolumeDown(sendRelease bool) (uint8, error) {
	if c.conn == nil {
		return 0, ErrClosed
	}
	return uint8(C.libcec_volume_down(c.conn, cbool(sendRelease))), nil
}

func (c *Connection) MuteAudio(sendRelease bool) (uint8, error) {
	if c.conn == nil {
		return 0, ErrClosed
	}
	return uint8(C.libcec_mute_audio(c.conn, cbool(sendRelease))), nil
}

func (c *Connection) AudioToggleMute() (uint8, error) {
	if c.conn == nil {
		return 0, ErrClosed
	}
	return uint8(C.libcec_audio_toggle_mute(c.conn)), nil
}

// Transmit sends a raw command.
func (c *Connection) Transmit(cmd cec.Command) error {
	if c.conn == nil {
		return ErrClosed
	}
	native := cCommand(cmd.Encode())
	return c.check("transmit", C.libcec_transmit(c.conn, &native))
}

// LogicalAddresses returns the addresses claimed by this client.
func (c *Connection) LogicalAddresses() (cec.AddressSet, error) {
	if c.conn == nil {
		return cec.AddressSet{}, ErrClosed
	}
	native := C.libcec_get_logical_addresses(c.conn)
	return cec.DecodeAddressSet(wireLogicalAddresses(&native))
}

// ActiveDevices returns the devices currently present on the bus.
func (c *Connection) ActiveDevices() (cec.AddressSet, error) {
	if c.conn == nil {
		return cec.AddressSet{}, ErrClosed
	}
	native := C.libcec_get_active_devices(c.conn)
	return cec.DecodeAddressSet(wireLogicalAddresses(&native))
}

// PowerStatus queries the power state of addr.
func (c *Connection) PowerStatus(addr cec.LogicalAddress) (cec.PowerStatus, error) {
	if c.conn == nil {
		return cec.PowerUnknown, ErrClosed
	}
	code := C.libcec_get_device_power_status(c.conn, C.cec_logical_address(addr))
	s, ok := cec.ParsePowerStatus(int64(code))
	if !ok {
		return cec.PowerUnknown, fmt.Errorf("libcec: unknown power status %d", int64(code))
	}
	return s, nil
}

// VendorID queries the vendor of addr.
func (c *Connection) VendorID(addr cec.LogicalAddress) (cec.VendorID, error) {
	if c.conn == nil {
		return cec.VendorUnknown, ErrClosed
	}
	code := C.libcec_get_device_vendor_id(c.conn, C.cec_logical_address(addr))
	v, ok := cec.ParseVendorID(int64(code))
	if !ok {
		return cec.VendorUnknown, fmt.Errorf("libcec: unknown vendor id 0x%06X", uint32(code))
	}
	return v, nil
}

// PhysicalAddress queries the physical address of addr.
func (c *Connection) PhysicalAddress(addr cec.LogicalAddress) (uint16, error) {
	if c.conn == nil {
		return 0, ErrClosed
	}
	return uint16(C.libcec_get_device_physical_address(c.conn, C.cec_logical_address(addr))), nil
}

// OSDName queries the on-screen name of addr.
func (c *Connection) OSDName(addr cec.LogicalAddress) (string, error) {
	if c.conn == nil {
		return "", ErrClosed
	}
	var name C.cec_osd_name
	if err := c.check("get_device_osd_name", C.libcec_get_device_osd_name(c.conn, C.cec_logical_address(addr), &name[0])); err != nil {
		return "", err
	}
	return C.GoStringN(&name[0], C.int(C.strnlen(&name[0], C.LIBCEC_OSD_NAME_SIZE))), nil
}
