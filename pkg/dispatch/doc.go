// Package dispatch runs the worker that owns the libcec connection.
//
// libcec is not reentrant, so a single goroutine, locked to its OS thread,
// opens the connection and performs every protocol call. Callers submit
// abstract commands (power on/off, focus, volume button press/release)
// through a bounded queue. The worker drains at most one command per poll,
// debounces repeats per command, and maps each accepted command to one
// libcec call. Failures of those calls are logged and counted; only a
// failure to open the connection stops the worker.
package dispatch
