package cec

import (
	"fmt"

	"github.com/owl-cec/owl/pkg/wire"
)

// DataPacket is a CEC message payload of at most 64 bytes.
//
// It is stored inline so that DataPacket and Command stay comparable with ==.
type DataPacket struct {
	buf [wire.DataPacketSize]byte
	n   uint8
}

// NewDataPacket copies b into a packet. It fails when b is longer than 64
// bytes.
func NewDataPacket(b ...byte) (DataPacket, error) {
	var p DataPacket
	if len(b) > wire.DataPacketSize {
		return p, fmt.Errorf("%w: %d bytes", ErrPacketTooLarge, len(b))
	}
	p.n = uint8(copy(p.buf[:], b))
	return p, nil
}

// MustDataPacket is like NewDataPacket but panics on error.
func MustDataPacket(b ...byte) DataPacket {
	p, err := NewDataPacket(b...)
	if err != nil {
		panic(err)
	}
	return p
}

// Bytes returns a copy of the payload.
func (p DataPacket) Bytes() []byte {
	out := make([]byte, p.n)
	copy(out, p.buf[:p.n])
	return out
}

// Len returns the payload length.
func (p DataPacket) Len() int { return int(p.n) }

// At returns the byte at index i. It panics when i is out of range.
func (p DataPacket) At(i int) byte {
	if i < 0 || i >= int(p.n) {
		panic(fmt.Sprintf("cec: packet index %d out of range [0:%d]", i, p.n))
	}
	return p.buf[i]
}

func (p DataPacket) String() string {
	return fmt.Sprintf("% X", p.buf[:p.n])
}

// Encode returns the wire form: the payload in a zero-filled 64-byte buffer
// and its length.
func (p DataPacket) Encode() wire.DataPacket {
	var w wire.DataPacket
	copy(w.Data[:], p.buf[:p.n])
	w.Size = p.n
	return w
}

// DecodeDataPacket converts the wire form. It never fails; a length byte
// larger than the buffer is clamped to 64.
func DecodeDataPacket(w wire.DataPacket) DataPacket {
	n := int(w.Size)
	if n > wire.DataPacketSize {
		n = wire.DataPacketSize
	}
	var p DataPacket
	p.n = uint8(copy(p.buf[:], w.Data[:n]))
	return p
}
