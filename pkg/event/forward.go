package event

import (
	"context"
	"errors"
	"log/slog"

	"github.com/owl-cec/owl/pkg/dispatch"
	"github.com/owl-cec/owl/pkg/log"
)

// Sender accepts dispatcher commands. *dispatch.Dispatcher implements it.
type Sender interface {
	Send(ctx context.Context, cmd dispatch.Command) error
}

var _ Sender = (*dispatch.Dispatcher)(nil)

// Forward submits the command for every event received on events until ctx
// is done, events is closed, or the dispatcher stops. Events that fail to
// convert are logged and skipped.
func Forward(ctx context.Context, events <-chan Event, to Sender, logger *slog.Logger, capture *log.Session) error {
	if logger == nil {
		logger = slog.Default()
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case e, ok := <-events:
			if !ok {
				return nil
			}
			capture.Emit(log.Event{
				Direction: log.DirectionIn,
				Layer:     log.LayerSource,
				Category:  log.CategorySource,
				StateChange: &log.StateChangeEvent{
					Entity:   log.StateEntitySource,
					NewState: e.String(),
				},
			})
			cmd, err := e.Command()
			if err != nil {
				logger.Error("owl error", "event", e, "error", err)
				continue
			}
			logger.Debug("forwarding event", "event", e, "command", cmd)
			if err := to.Send(ctx, cmd); err != nil {
				switch {
				case errors.Is(err, dispatch.ErrStopped):
					return err
				case ctx.Err() != nil:
					return nil
				}
				logger.Error("failed to send cec command", "command", cmd, "error", err)
			}
		}
	}
}
