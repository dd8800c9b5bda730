package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/owl-cec/owl/pkg/version"
)

func versionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			if short {
				fmt.Fprintln(w, version.Version)
				return
			}
			fmt.Fprintf(w, "  Version:    %s\n", version.Version)
			fmt.Fprintf(w, "  Commit:     %s\n", version.Commit)
			fmt.Fprintf(w, "  Built:      %s\n", version.Date)
			fmt.Fprintf(w, "  libcec API: %s\n", version.Client)
			fmt.Fprintf(w, "  Go version: %s\n", version.GoVersion())
			fmt.Fprintf(w, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Print only version number")

	return cmd
}
