package log

// Logger receives capture events. Implementations must be safe for
// concurrent use: libcec delivers callbacks on its own threads while the
// dispatcher logs from its worker.
type Logger interface {
	// Log records an event. It must not block for long.
	Log(event Event)
}

// NoopLogger discards all events. The zero value is ready to use.
type NoopLogger struct{}

// Log discards the event.
func (NoopLogger) Log(Event) {}

var _ Logger = NoopLogger{}

// OrNoop returns l, or NoopLogger when l is nil.
func OrNoop(l Logger) Logger {
	if l == nil {
		return NoopLogger{}
	}
	return l
}
