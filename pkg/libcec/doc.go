// Package libcec binds libcec 6 through cgo.
//
// A Connection owns one native connection handle. libcec is not reentrant,
// so a Connection must be opened, used and closed from a single goroutine
// locked to its OS thread; pkg/dispatch does exactly that.
//
// Events raised by libcec arrive on the seven exported trampolines in
// callbacks.go. Each recovers the connection's *cec.Callbacks from the
// opaque callbackParam pointer (a runtime/cgo.Handle stored in C memory)
// and hands the raw record to it. Decoding, logging and panic recovery are
// done by cec.Callbacks.
//
// Building without cgo yields a stub whose Open returns ErrUnsupported.
package libcec

import "errors"

var (
	// ErrUnsupported is returned by Open when built without cgo.
	ErrUnsupported = errors.New("libcec: built without cgo support")

	// ErrInitialise is returned when libcec refuses the configuration.
	ErrInitialise = errors.New("libcec: initialise failed")

	// ErrNoAdapter is returned when autodetection finds no adapter.
	ErrNoAdapter = errors.New("libcec: no adapter found")

	// ErrOpen is returned when the adapter cannot be opened.
	ErrOpen = errors.New("libcec: open failed")

	// ErrClosed is returned by operations on a closed connection.
	ErrClosed = errors.New("libcec: connection closed")

	// ErrCommandFailed is returned when libcec reports a failed operation.
	ErrCommandFailed = errors.New("libcec: command failed")
)
