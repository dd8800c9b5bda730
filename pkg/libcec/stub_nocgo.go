//go:build !cgo

package libcec

import (
	"log/slog"

	"github.com/owl-cec/owl/pkg/cec"
)

// Connection is unavailable without cgo.
type Connection struct{}

// Open always fails with ErrUnsupported.
func Open(*cec.Config, *slog.Logger) (*Connection, error) { return nil, ErrUnsupported }

func (*Connection) Port() string                            { return "" }
func (*Connection) Close() error                            { return nil }
func (*Connection) SetActiveSource(cec.DeviceType) error    { return ErrUnsupported }
func (*Connection) SetInactiveView() error                  { return ErrUnsupported }
func (*Connection) StandbyDevices(cec.LogicalAddress) error { return ErrUnsupported }
func (*Connection) PowerOnDevices(cec.LogicalAddress) error { return ErrUnsupported }
func (*Connection) SendKeyRelease(cec.LogicalAddress, bool) error {
	return ErrUnsupported
}
func (*Connection) SendKeypress(cec.LogicalAddress, cec.UserControlCode, bool) error {
	return ErrUnsupported
}
func (*Connection) VolumeUp(bool) (uint8, error)    { return 0, ErrUnsupported }
func (*Connection) VolumeDown(bool) (uint8, error)  { return 0, ErrUnsupported }
func (*Connection) MuteAudio(bool) (uint8, error)   { return 0, ErrUnsupported }
func (*Connection) AudioToggleMute() (uint8, error) { return 0, ErrUnsupported }
func (*Connection) Transmit(cec.Command) error      { return ErrUnsupported }
func (*Connection) LogicalAddresses() (cec.AddressSet, error) {
	return cec.AddressSet{}, ErrUnsupported
}
func (*Connection) ActiveDevices() (cec.AddressSet, error) {
	return cec.AddressSet{}, ErrUnsupported
}
func (*Connection) PowerStatus(cec.LogicalAddress) (cec.PowerStatus, error) {
	return cec.PowerUnknown, ErrUnsupported
}
func (*Connection) VendorID(cec.LogicalAddress) (cec.VendorID, error) {
	return cec.VendorUnknown, ErrUnsupported
}
func (*Connection) PhysicalAddress(cec.LogicalAddress) (uint16, error) { return 0, ErrUnsupported }
func (*Connection) OSDName(cec.LogicalAddress) (string, error)         { return "", ErrUnsupported }
