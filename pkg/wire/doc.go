// Package wire defines Go mirrors of the libcec C ABI records.
//
// Every type in this package has the same field set and element widths as
// its counterpart in libcec's cectypes.h. The cgo layer (pkg/libcec) copies
// between the C structures and these mirrors field by field; the domain
// codecs in pkg/cec only ever see the mirrors. This keeps all validation
// testable without a native library present.
//
// # Widths
//
// C enums are carried as int32. Flags that libcec declares as int8_t or
// uint8_t stay byte-sized. Millisecond timers keep their C signedness:
// Command.TransmitTimeout is int32 and LogMessage.Time is int64, so the
// domain layer is responsible for rejecting or clamping negative values.
//
// # Fixed buffers
//
// DataPacket.Data is always DataPacketSize bytes. Only the first Size bytes
// are meaningful; encoders leave the tail zeroed.
package wire
