package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/owl-cec/owl/pkg/config"
)

// globalFlags are shared by every command that opens the adapter. Flags
// that are set override the configuration file.
type globalFlags struct {
	configPath string
	logLevel   string
	port       string
	capture    string
	listen     string
}

func (f *globalFlags) register(cmd *cobra.Command) {
	p := cmd.PersistentFlags()
	p.StringVarP(&f.configPath, "config", "c", "", "Configuration file (YAML)")
	p.StringVar(&f.logLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	p.StringVarP(&f.port, "port", "p", "", "Adapter path (default from config, else autodetect)")
	p.StringVar(&f.capture, "capture", "", "Append CEC traffic to this capture file (.clog)")
	p.StringVar(&f.listen, "listen", "", "Serve the HTTP API on this address")
}

// load reads the configuration and applies the flag overrides.
func (f *globalFlags) load() (*config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		cfg, err = config.LoadFile(f.configPath)
		if err != nil {
			return nil, err
		}
	}

	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	if f.port != "" {
		cfg.Device.Port = f.port
	}
	if f.capture != "" {
		cfg.Log.Capture = f.capture
	}
	if f.listen != "" {
		cfg.HTTP.Listen = f.listen
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger returns a text logger at the configured level.
func newLogger(w io.Writer, cfg *config.Config) (*slog.Logger, error) {
	level, err := config.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}
