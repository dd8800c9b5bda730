// Package version reports the owl build and the libcec API it targets.
package version

import (
	"fmt"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/owl-cec/owl/pkg/wire"
)

// Build information, set with -ldflags "-X".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// LibCEC is a libcec release, "major.minor.patch".
type LibCEC struct {
	Major uint8
	Minor uint8
	Patch uint8
}

// Client is the libcec API version owl announces when opening a connection.
var Client = FromCode(wire.ClientVersion)

// FromCode decodes libcec's packed 0xMMmmpp version number.
func FromCode(code uint32) LibCEC {
	return LibCEC{
		Major: uint8(code >> 16),
		Minor: uint8(code >> 8),
		Patch: uint8(code),
	}
}

// Code returns the packed form.
func (v LibCEC) Code() uint32 {
	return uint32(v.Major)<<16 | uint32(v.Minor)<<8 | uint32(v.Patch)
}

// Parse parses "major.minor" or "major.minor.patch".
func Parse(s string) (LibCEC, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 2 && len(parts) != 3 {
		return LibCEC{}, fmt.Errorf("invalid version %q: expected major.minor[.patch]", s)
	}

	var nums [3]uint8
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 8)
		if err != nil {
			return LibCEC{}, fmt.Errorf("invalid version %q: bad component %q", s, p)
		}
		nums[i] = uint8(n)
	}
	return LibCEC{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// String returns the version as "major.minor.patch".
func (v LibCEC) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compatible reports whether other shares v's major version.
func (v LibCEC) Compatible(other LibCEC) bool {
	return v.Major == other.Major
}

// GoVersion returns the toolchain the binary was built with, or "unknown".
func GoVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	return info.GoVersion
}
