// Package cec is a validated domain model for the HDMI-CEC bus protocol.
//
// Values in this package are checked on construction and are safe to pass
// around freely. Conversion to and from the raw ABI records in pkg/wire is
// split into two directions:
//
//   - Encode (domain to wire) is total. A domain value has already been
//     validated, so encoding never fails.
//   - Decode (wire to domain) is partial. Every numeric code is looked up in
//     an exhaustive table; a code outside the table is an error, never a
//     fallback variant. Errors name the field that failed, so a command
//     with an unknown destination reports ErrUnknownDestination rather
//     than a generic failure.
//
// # Addresses
//
// Logical addresses are refined in three layers:
//
//	LogicalAddress     any code in the table, including both sentinels
//	KnownAddress       not AddressUnknown
//	RegisteredAddress  not AddressUnknown and not AddressUnregistered
//
// AddressSet pairs a KnownAddress primary with a set of RegisteredAddress
// secondaries. On the wire the set is an occupancy mask, and the encoder
// always marks the primary's own slot as occupied.
//
// # Callbacks
//
// Callbacks holds the user handlers for the seven libcec events. Its
// methods take raw wire records, decode them, and invoke the handler. They
// never block, never return errors and never let a panic escape, which is
// what the native calling convention requires. Decode failures are logged
// at LevelTrace and the event is dropped.
package cec
