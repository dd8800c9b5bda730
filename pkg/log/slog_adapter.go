package log

import (
	"context"
	"fmt"
	"log/slog"
)

// SlogAdapter writes capture events to an slog.Logger at Debug level.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter returns a SlogAdapter writing to logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session", event.SessionID),
		slog.String("direction", event.Direction.String()),
		slog.String("layer", event.Layer.String()),
		slog.String("category", event.Category.String()),
	}
	if event.Port != "" {
		attrs = append(attrs, slog.String("port", event.Port))
	}

	switch {
	case event.Frame != nil:
		attrs = append(attrs,
			slog.Int("initiator", int(event.Frame.Initiator)),
			slog.Int("destination", int(event.Frame.Destination)),
			slog.String("opcode", fmt.Sprintf("0x%02X", event.Frame.Opcode)),
		)
		if len(event.Frame.Parameters) > 0 {
			attrs = append(attrs, slog.String("params", fmt.Sprintf("% X", event.Frame.Parameters)))
		}
		if event.Frame.Ack {
			attrs = append(attrs, slog.Bool("ack", true))
		}
	case event.Key != nil:
		attrs = append(attrs,
			slog.String("key", fmt.Sprintf("0x%02X", event.Key.Keycode)),
			slog.Duration("duration", event.Key.Duration),
		)
	case event.LibLog != nil:
		attrs = append(attrs,
			slog.Int("level", int(event.LibLog.Level)),
			slog.String("message", event.LibLog.Message),
		)
	case event.Alert != nil:
		attrs = append(attrs, slog.Int("alert", int(event.Alert.Alert)))
		if event.Alert.Param != "" {
			attrs = append(attrs, slog.String("param", event.Alert.Param))
		}
	case event.Dispatch != nil:
		attrs = append(attrs,
			slog.String("command", event.Dispatch.Command),
			slog.String("outcome", event.Dispatch.Outcome.String()),
		)
		if event.Dispatch.Latency > 0 {
			attrs = append(attrs, slog.Duration("latency", event.Dispatch.Latency))
		}
		if event.Dispatch.Error != "" {
			attrs = append(attrs, slog.String("error", event.Dispatch.Error))
		}
	case event.StateChange != nil:
		attrs = append(attrs,
			slog.String("entity", event.StateChange.Entity.String()),
			slog.String("old_state", event.StateChange.OldState),
			slog.String("new_state", event.StateChange.NewState),
		)
		if event.StateChange.Reason != "" {
			attrs = append(attrs, slog.String("reason", event.StateChange.Reason))
		}
	case event.Error != nil:
		attrs = append(attrs,
			slog.String("error_layer", event.Error.Layer.String()),
			slog.String("error_msg", event.Error.Message),
			slog.String("error_context", event.Error.Context),
		)
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "cec", attrs...)
}

var _ Logger = (*SlogAdapter)(nil)
