// Package log captures CEC traffic as structured events.
//
// Capture is separate from operational logging (slog). Operational logs say
// what the daemon is doing; a capture is a machine-readable trace of every
// frame, keypress, libcec log line, alert and dispatcher decision, for
// offline debugging with owl-log.
//
// # Basic Usage
//
//	// Console, via slog
//	capture := log.NewSlogAdapter(slog.Default())
//
//	// Binary file
//	capture, _ := log.NewFileLogger("/var/log/owl/bus.clog")
//
//	// Both
//	capture := log.NewMultiLogger(log.NewSlogAdapter(slog.Default()), fileLogger)
//
// Capture wraps a cec.Callbacks table so that every libcec event is recorded
// before it reaches the application handler:
//
//	cb = log.Capture(capture, session, cb)
//
// # File Format
//
// Capture files are a stream of CBOR-encoded Events with integer keys, one
// after another, using the .clog extension. Files are append-only; several
// daemon runs may share one file and are told apart by SessionID.
package log
