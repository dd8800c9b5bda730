//go:build !cgo

package libcec

import (
	"errors"
	"testing"

	"github.com/owl-cec/owl/pkg/cec"
)

func TestOpenWithoutCgo(t *testing.T) {
	cfg, err := cec.NewConfigBuilder().Name("owl").DeviceType(cec.DeviceTypeRecordingDevice).DetectDevice(true).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if _, err := Open(cfg, nil); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("Open() error = %v, want ErrUnsupported", err)
	}
}
