package cec

import (
	"context"
	"log/slog"
)

// LevelTrace is below slog.LevelDebug and carries per-callback lines.
const LevelTrace = slog.LevelDebug - 4

// SlogLevel maps a libcec severity onto slog levels.
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LogError:
		return slog.LevelError
	case LogWarning:
		return slog.LevelWarn
	case LogDebug:
		return slog.LevelDebug
	default:
		return LevelTrace
	}
}

// LogTo writes m to logger at the mapped level under component=libcec.
func (m LogMessage) LogTo(ctx context.Context, logger *slog.Logger) {
	logger.LogAttrs(ctx, m.Level.SlogLevel(), m.Message,
		slog.String("component", "libcec"),
		slog.Duration("t", m.Time),
	)
}
