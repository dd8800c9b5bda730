package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/owl-cec/owl/pkg/cec"
	"github.com/owl-cec/owl/pkg/log"
)

var (
	// ErrStopped is returned when submitting to a dispatcher whose worker
	// has exited.
	ErrStopped = errors.New("dispatcher stopped")

	// ErrStartFailed wraps the error that kept the worker from opening its
	// connection.
	ErrStartFailed = errors.New("dispatcher failed to start")

	// ErrInvalidCommand is returned by Send for commands the worker cannot
	// execute.
	ErrInvalidCommand = errors.New("invalid command")
)

// Defaults.
const (
	DefaultQueueSize    = 8
	DefaultPollInterval = time.Millisecond
)

// Conn is the subset of a libcec connection the worker drives.
type Conn interface {
	SetActiveSource(t cec.DeviceType) error
	StandbyDevices(addr cec.LogicalAddress) error
	SendKeypress(dest cec.LogicalAddress, key cec.UserControlCode, wait bool) error
	SendKeyRelease(dest cec.LogicalAddress, wait bool) error
	AudioToggleMute() (uint8, error)
	Close() error
}

// Opener opens the connection. It runs on the worker's goroutine, so the
// connection is created on the thread that will use it.
type Opener func() (Conn, error)

// Options configures a Dispatcher. The zero value is usable.
type Options struct {
	// QueueSize is the submission queue capacity (default 8).
	QueueSize int

	// PollInterval is the pause between queue polls (default 1ms).
	PollInterval time.Duration

	// Clock drives debouncing. Nil means RealClock.
	Clock Clock

	Logger  *slog.Logger
	Capture *log.Session
	Metrics *Metrics
}

func (o *Options) applyDefaults() {
	if o.QueueSize <= 0 {
		o.QueueSize = DefaultQueueSize
	}
	if o.PollInterval <= 0 {
		o.PollInterval = DefaultPollInterval
	}
	if o.Clock == nil {
		o.Clock = RealClock()
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
}

// Dispatcher owns the libcec connection through a single worker goroutine.
type Dispatcher struct {
	opts      Options
	logger    *slog.Logger
	cmds      chan Command
	debouncer *Debouncer

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
	err    error

	stopOnce sync.Once
	running  atomic.Bool
}

// Start launches the worker, which opens the connection with open, and
// waits for the outcome. If the open fails the worker has already exited
// and the returned error wraps both ErrStartFailed and the open error.
//
// Cancelling ctx stops the worker just as Stop does.
func Start(ctx context.Context, open Opener, opts Options) (*Dispatcher, error) {
	opts.applyDefaults()
	d := &Dispatcher{
		opts:      opts,
		logger:    opts.Logger.With("component", "dispatch"),
		cmds:      make(chan Command, opts.QueueSize),
		debouncer: NewDebouncer(opts.Clock),
		done:      make(chan struct{}),
	}
	d.ctx, d.cancel = context.WithCancel(ctx)

	ready := make(chan error, 1)
	d.logger.Log(ctx, cec.LevelTrace, "spawning worker")
	go d.run(open, ready)

	if err := <-ready; err != nil {
		d.cancel()
		<-d.done
		return nil, fmt.Errorf("%w: %w", ErrStartFailed, err)
	}
	d.logger.Debug("worker ready")
	return d, nil
}

func (d *Dispatcher) run(open Opener, ready chan<- error) {
	defer close(d.done)

	// libcec expects every call on the thread that opened the connection.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	d.opts.Capture.State(log.StateEntityDispatcher, "", "starting", "")
	conn, err := open()
	if err != nil {
		d.opts.Capture.Fail(log.LayerDispatch, "open", err)
		d.opts.Capture.State(log.StateEntityDispatcher, "starting", "stopped", err.Error())
		ready <- err
		return
	}
	d.running.Store(true)
	d.opts.Metrics.setRunning(true)
	d.opts.Capture.State(log.StateEntityDispatcher, "starting", "running", "")
	ready <- nil

	for d.ctx.Err() == nil {
		select {
		case cmd := <-d.cmds:
			d.opts.Metrics.depth(len(d.cmds))
			d.handle(conn, cmd)
		default:
		}
		time.Sleep(d.opts.PollInterval)
	}

	d.logger.Log(context.Background(), cec.LevelTrace, "stopping worker")
	d.running.Store(false)
	d.opts.Metrics.setRunning(false)
	if err := conn.Close(); err != nil {
		d.logger.Warn("failed to close cec connection", "error", err)
		d.err = err
	}
	d.opts.Capture.State(log.StateEntityDispatcher, "running", "stopped", "")
}

func (d *Dispatcher) handle(conn Conn, cmd Command) {
	// Held volume keys repeat continuously; dropping repeats keeps the
	// queue and the bus from congesting.
	if !d.debouncer.Accept(cmd) {
		d.logger.Log(context.Background(), cec.LevelTrace, "debounced command", "command", cmd)
		d.opts.Metrics.outcome(cmd, "suppressed")
		d.record(cmd, log.OutcomeSuppressed, nil, 0)
		return
	}

	d.logger.Debug("sending command", "command", cmd)
	start := time.Now()
	err := execute(conn, cmd)
	elapsed := time.Since(start)
	d.opts.Metrics.call(cmd, elapsed)

	if err != nil {
		d.logger.Error("failed to send cec command", "command", cmd, "error", err)
		d.opts.Metrics.outcome(cmd, "failed")
		d.record(cmd, log.OutcomeFailed, err, elapsed)
		return
	}
	d.opts.Metrics.outcome(cmd, "sent")
	d.record(cmd, log.OutcomeSent, nil, elapsed)
}

func (d *Dispatcher) record(cmd Command, outcome log.Outcome, err error, latency time.Duration) {
	ev := &log.DispatchEvent{Command: cmd.String(), Outcome: outcome, Latency: latency}
	if err != nil {
		ev.Error = err.Error()
	}
	d.opts.Capture.Emit(log.Event{
		Direction: log.DirectionOut,
		Layer:     log.LayerDispatch,
		Category:  log.CategoryDispatch,
		Dispatch:  ev,
	})
}

// execute performs the single libcec call mapped from cmd.
func execute(conn Conn, cmd Command) error {
	switch cmd.Kind {
	case KindPowerOn, KindFocus:
		return conn.SetActiveSource(cec.DeviceTypePlaybackDevice)
	case KindPowerOff:
		return conn.StandbyDevices(cec.AddressTV)
	case KindPress:
		switch cmd.Button {
		case ButtonVolumeUp:
			return conn.SendKeypress(cec.AddressAudioSystem, cec.KeyVolumeUp, false)
		case ButtonVolumeDown:
			return conn.SendKeypress(cec.AddressAudioSystem, cec.KeyVolumeDown, false)
		case ButtonVolumeMute:
			_, err := conn.AudioToggleMute()
			return err
		}
	case KindRelease:
		switch cmd.Button {
		case ButtonVolumeUp, ButtonVolumeDown:
			return conn.SendKeyRelease(cec.AddressAudioSystem, false)
		case ButtonVolumeMute:
			return nil
		}
	}
	return fmt.Errorf("%w: %v", ErrInvalidCommand, cmd)
}

// Send queues cmd for the worker. It blocks while the queue is full and
// returns early if ctx is cancelled or the worker exits.
func (d *Dispatcher) Send(ctx context.Context, cmd Command) error {
	if !cmd.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidCommand, cmd)
	}
	if d.stopped() {
		return ErrStopped
	}
	select {
	case d.cmds <- cmd:
		d.opts.Metrics.depth(len(d.cmds))
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-d.done:
		return ErrStopped
	case <-d.ctx.Done():
		return ErrStopped
	}
}

func (d *Dispatcher) stopped() bool {
	select {
	case <-d.done:
		return true
	default:
		return d.ctx.Err() != nil
	}
}

// Running reports whether the worker holds an open connection.
func (d *Dispatcher) Running() bool {
	return d.running.Load()
}

// Done is closed once the worker has exited.
func (d *Dispatcher) Done() <-chan struct{} {
	return d.done
}

// Stop asks the worker to exit and waits for it. Commands still queued are
// discarded. The worker finishes an in-flight libcec call first. Stop may be
// called more than once.
func (d *Dispatcher) Stop() error {
	d.stopOnce.Do(d.cancel)
	return d.Wait()
}

// Wait blocks until the worker exits and returns the error, if any, from
// closing the connection.
func (d *Dispatcher) Wait() error {
	<-d.done
	return d.err
}
