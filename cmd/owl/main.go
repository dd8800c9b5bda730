// Command owl bridges host power and volume events onto an HDMI-CEC bus.
//
// Usage:
//
//	owl run [--config owl.yaml] [--port /dev/cec0] [--capture owl.clog] [--listen 127.0.0.1:9470]
//	owl console
//	owl version
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	var flags globalFlags

	rootCmd := &cobra.Command{
		Use:   "owl",
		Short: "HDMI-CEC bridge for host power and volume events",
		Long: `owl opens a libcec adapter and turns host events (suspend, resume,
focus, volume key presses) into CEC commands: standby the TV, make this
device the active source, or drive the audio system's volume.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags.register(rootCmd)

	rootCmd.AddCommand(
		runCmd(&flags),
		consoleCmd(&flags),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
