package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/owl-cec/owl/internal/httpapi"
	"github.com/owl-cec/owl/pkg/cec"
	"github.com/owl-cec/owl/pkg/config"
	"github.com/owl-cec/owl/pkg/dispatch"
	"github.com/owl-cec/owl/pkg/event"
	"github.com/owl-cec/owl/pkg/libcec"
	"github.com/owl-cec/owl/pkg/log"
	"github.com/owl-cec/owl/pkg/version"
)

func runCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Open the adapter and forward host events until interrupted",
		Long: `Open the CEC adapter and forward host events to it until SIGINT or
SIGTERM. Events arrive through the platform hooks and, when --listen is
set, through POST /v1/events.

Examples:
  owl run
  owl run --port /dev/ttyACM0 --log-level debug
  owl run --capture /var/log/owl/owl.clog --listen 127.0.0.1:9470`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load()
			if err != nil {
				return err
			}
			logger, err := newLogger(os.Stderr, cfg)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return newDaemon(cfg, logger).run(ctx, nil)
		},
	}
}

// connector opens a native connection for cfg.
type connector func(cfg *cec.Config, logger *slog.Logger) (dispatch.Conn, error)

func openLibCEC(cfg *cec.Config, logger *slog.Logger) (dispatch.Conn, error) {
	conn, err := libcec.Open(cfg, logger)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// source feeds events into the pipe until ctx is done. Returning ends the
// daemon.
type source func(ctx context.Context, pipe *event.Pipe) error

// daemon wires the capture session, dispatcher, event pipe and optional
// HTTP API around a single connection.
type daemon struct {
	cfg      *config.Config
	logger   *slog.Logger
	connect  connector
	registry *event.Registry
	metrics  *prometheus.Registry
}

func newDaemon(cfg *config.Config, logger *slog.Logger) *daemon {
	return &daemon{
		cfg:      cfg,
		logger:   logger,
		connect:  openLibCEC,
		registry: &event.Hooks,
		metrics:  prometheus.NewRegistry(),
	}
}

// captureSession builds the capture fan-out. The returned func closes the
// capture file, if any.
func (d *daemon) captureSession(ctx context.Context, hub *httpapi.Hub) (*log.Session, func(), error) {
	var loggers []log.Logger
	closeFn := func() {}

	if path := d.cfg.Log.Capture; path != "" {
		fl, err := log.NewFileLogger(path)
		if err != nil {
			return nil, nil, fmt.Errorf("capture: %w", err)
		}
		d.logger.Info("capturing cec traffic", "path", fl.Path())
		loggers = append(loggers, fl)
		closeFn = func() {
			if n := fl.Dropped(); n > 0 {
				d.logger.Warn("capture events dropped", "count", n)
			}
			if err := fl.Close(); err != nil {
				d.logger.Warn("failed to close capture file", "error", err)
			}
		}
	}
	if d.logger.Enabled(ctx, slog.LevelDebug) {
		loggers = append(loggers, log.NewSlogAdapter(d.logger))
	}
	if hub != nil {
		loggers = append(loggers, hub)
	}

	s := log.NewSession(log.NewMultiLogger(loggers...))
	s.Port = d.cfg.Device.Port
	return s, closeFn, nil
}

// connConfig builds the libcec configuration with capturing callbacks that
// forward libcec's own log lines into slog.
func (d *daemon) connConfig(ctx context.Context, capture *log.Session) (*cec.Config, error) {
	b, err := d.cfg.Builder()
	if err != nil {
		return nil, err
	}
	cb := &cec.Callbacks{
		Logger: d.logger,
		OnLogMessage: func(m cec.LogMessage) {
			m.LogTo(ctx, d.logger)
		},
	}
	return b.Callbacks(log.Capture(capture, cb)).Build()
}

// run blocks until ctx is done, src returns, or the dispatcher exits, then
// stops everything and returns the first error.
func (d *daemon) run(parent context.Context, src source) error {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	var hub *httpapi.Hub
	if d.cfg.HTTP.Listen != "" {
		hub = httpapi.NewHub()
	}
	capture, closeCapture, err := d.captureSession(ctx, hub)
	if err != nil {
		return err
	}
	defer closeCapture()

	connCfg, err := d.connConfig(ctx, capture)
	if err != nil {
		return err
	}

	opts := d.cfg.DispatchOptions()
	opts.Logger = d.logger
	opts.Capture = capture
	opts.Metrics = dispatch.NewMetrics(d.metrics)

	capture.State(log.StateEntityConnection, "", "opening", connCfg.Port)
	disp, err := dispatch.Start(ctx, func() (dispatch.Conn, error) {
		return d.connect(connCfg, d.logger)
	}, opts)
	if err != nil {
		capture.State(log.StateEntityConnection, "opening", "failed", err.Error())
		return err
	}
	capture.State(log.StateEntityConnection, "opening", "open", "")

	pipe := event.NewPipe()
	unregister, err := d.registry.Register(pipe)
	if err != nil {
		cancel()
		return errors.Join(err, disp.Stop())
	}
	defer unregister()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	fail := func(err error) {
		if err == nil {
			return
		}
		mu.Lock()
		errs = append(errs, err)
		mu.Unlock()
		cancel()
	}
	goRun := func(f func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fail(f())
		}()
	}

	goRun(func() error {
		err := event.Forward(ctx, pipe.Events(), disp, d.logger, capture)
		if errors.Is(err, dispatch.ErrStopped) {
			return nil
		}
		return err
	})

	if hub != nil {
		srv := httpapi.New(httpapi.Options{
			Sender: disp,
			Events: pipe,
			Hub:    hub,
			Status: func() httpapi.Status {
				return httpapi.Status{
					Running: disp.Running(),
					Session: capture.ID,
					Port:    connCfg.Port,
					Version: version.Version,
					Pending: pipe.Pending(),
				}
			},
			Gatherer: d.metrics,
			Logger:   d.logger,
		})
		goRun(func() error { return srv.ListenAndServe(ctx, d.cfg.HTTP.Listen) })
	}

	if src != nil {
		goRun(func() error {
			defer cancel()
			return src(ctx, pipe)
		})
	}

	d.logger.Info("owl running", "session", capture.ID, "version", version.Version)
	select {
	case <-ctx.Done():
	case <-disp.Done():
		d.logger.Warn("dispatcher exited")
		cancel()
	}

	stopErr := disp.Stop()
	wg.Wait()
	pipe.Close()
	capture.State(log.StateEntityConnection, "open", "closed", "")
	d.logger.Info("owl stopped", "pending_events", pipe.Pending())

	mu.Lock()
	defer mu.Unlock()
	return errors.Join(append(errs, stopErr)...)
}
