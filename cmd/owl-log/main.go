// Command owl-log views and analyzes owl capture files.
//
// Capture files are written by "owl run --capture <file>". Each record is a
// CBOR-encoded event describing a bus frame, a libcec log line, a dispatched
// command or a state change.
//
// Examples:
//
//	# View all events
//	owl-log view owl.clog
//
//	# View only dispatcher events
//	owl-log view --layer dispatch owl.clog
//
//	# View only STANDBY frames
//	owl-log view --opcode standby owl.clog
//
//	# Export to JSONL
//	owl-log export --format jsonl owl.clog
//
//	# Keep one session in a new file
//	owl-log filter --session 5f0c7a1e-... -o session.clog owl.clog
//
//	# Show statistics
//	owl-log stats owl.clog
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/owl-cec/owl/cmd/owl-log/commands"
	"github.com/owl-cec/owl/pkg/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "owl-log",
		Short:         "owl capture file analyzer",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		viewCmd(),
		exportCmd(),
		filterCmd(),
		statsCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

// addFilterFlags registers the filter flags shared by view, export and filter.
func addFilterFlags(cmd *cobra.Command, opts *commands.FilterOptions) {
	f := cmd.Flags()
	f.StringVar(&opts.Session, "session", "", "Filter by session ID")
	f.StringVar(&opts.Layer, "layer", "", "Filter by layer (bus, dispatch, source)")
	f.StringVar(&opts.Direction, "direction", "", "Filter by direction (in, out)")
	f.StringVar(&opts.Category, "category", "", "Filter by category (command, keypress, log, alert, menu, source, dispatch, state, error)")
	f.StringVar(&opts.Opcode, "opcode", "", "Filter frames by opcode name or number")
	f.StringVar(&opts.TimeStart, "time-start", "", "Filter events at or after this time (RFC3339)")
	f.StringVar(&opts.TimeEnd, "time-end", "", "Filter events before this time (RFC3339)")
}

func viewCmd() *cobra.Command {
	var opts commands.FilterOptions

	cmd := &cobra.Command{
		Use:   "view <file.clog>",
		Short: "View a capture file in human-readable format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := opts.Build()
			if err != nil {
				return err
			}
			return commands.RunView(args[0], filter, cmd.OutOrStdout())
		},
	}
	addFilterFlags(cmd, &opts)
	return cmd
}

func exportCmd() *cobra.Command {
	var (
		opts   commands.FilterOptions
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export <file.clog>",
		Short: "Export a capture file to JSONL or CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := opts.Build()
			if err != nil {
				return err
			}
			return commands.RunExport(args[0], filter, format, output)
		},
	}
	addFilterFlags(cmd, &opts)
	cmd.Flags().StringVar(&format, "format", "jsonl", "Output format (jsonl, csv)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	return cmd
}

func filterCmd() *cobra.Command {
	var (
		opts   commands.FilterOptions
		output string
	)

	cmd := &cobra.Command{
		Use:   "filter <file.clog>",
		Short: "Write the matching events to a new capture file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := opts.Build()
			if err != nil {
				return err
			}
			return commands.RunFilter(args[0], filter, output, cmd.OutOrStdout())
		},
	}
	addFilterFlags(cmd, &opts)
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <file.clog>",
		Short: "Show statistics about a capture file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunStats(args[0], cmd.OutOrStdout())
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "owl-log %s (%s, %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}
