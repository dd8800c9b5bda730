package cec

import (
	"fmt"
	"math"
	"time"

	"github.com/owl-cec/owl/pkg/wire"
)

// Command is one CEC bus message.
type Command struct {
	Initiator       LogicalAddress
	Destination     LogicalAddress
	Ack             bool
	EOM             bool
	Opcode          Opcode
	Parameters      DataPacket
	OpcodeSet       bool
	TransmitTimeout time.Duration
}

// NewCommand returns a command with the opcode set and EOM flagged, the way
// a single-frame message is normally sent.
func NewCommand(from, to LogicalAddress, op Opcode, params ...byte) (Command, error) {
	p, err := NewDataPacket(params...)
	if err != nil {
		return Command{}, err
	}
	return Command{
		Initiator:   from,
		Destination: to,
		EOM:         true,
		Opcode:      op,
		OpcodeSet:   true,
		Parameters:  p,
	}, nil
}

func (c Command) String() string {
	if c.Parameters.Len() == 0 {
		return fmt.Sprintf("%s -> %s: %s", c.Initiator, c.Destination, c.Opcode)
	}
	return fmt.Sprintf("%s -> %s: %s [%s]", c.Initiator, c.Destination, c.Opcode, c.Parameters)
}

// Encode returns the wire form. Timeouts are truncated to whole milliseconds
// and saturate at math.MaxInt32.
func (c Command) Encode() wire.Command {
	return wire.Command{
		Initiator:       c.Initiator.Code(),
		Destination:     c.Destination.Code(),
		Ack:             boolByte(c.Ack),
		EOM:             boolByte(c.EOM),
		Opcode:          c.Opcode.Code(),
		Parameters:      c.Parameters.Encode(),
		OpcodeSet:       boolByte(c.OpcodeSet),
		TransmitTimeout: millis32(c.TransmitTimeout),
	}
}

// DecodeCommand converts the wire form. The opcode, initiator and
// destination are checked in that order and the first failure is returned.
// A negative timeout decodes as zero.
func DecodeCommand(w wire.Command) (Command, error) {
	op, ok := ParseOpcode(w.Opcode)
	if !ok {
		return Command{}, fmt.Errorf("%w: 0x%X", ErrUnknownOpcode, w.Opcode)
	}
	from, ok := ParseLogicalAddress(w.Initiator)
	if !ok {
		return Command{}, fmt.Errorf("%w: %d", ErrUnknownInitiator, w.Initiator)
	}
	to, ok := ParseLogicalAddress(w.Destination)
	if !ok {
		return Command{}, fmt.Errorf("%w: %d", ErrUnknownDestination, w.Destination)
	}
	timeout := time.Duration(0)
	if w.TransmitTimeout > 0 {
		timeout = time.Duration(w.TransmitTimeout) * time.Millisecond
	}
	return Command{
		Initiator:       from,
		Destination:     to,
		Ack:             w.Ack != 0,
		EOM:             w.EOM != 0,
		Opcode:          op,
		Parameters:      DecodeDataPacket(w.Parameters),
		OpcodeSet:       w.OpcodeSet != 0,
		TransmitTimeout: timeout,
	}, nil
}

func boolByte(b bool) int8 {
	if b {
		return 1
	}
	return 0
}

func boolUint8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

func millis32(d time.Duration) int32 {
	ms := d.Milliseconds()
	switch {
	case ms < 0:
		return 0
	case ms > math.MaxInt32:
		return math.MaxInt32
	}
	return int32(ms)
}

func millisU32(d time.Duration) uint32 {
	ms := d.Milliseconds()
	switch {
	case ms < 0:
		return 0
	case ms > math.MaxUint32:
		return math.MaxUint32
	}
	return uint32(ms)
}
