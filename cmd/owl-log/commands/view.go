// Package commands implements the owl-log CLI commands.
package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/owl-cec/owl/pkg/cec"
	"github.com/owl-cec/owl/pkg/log"
)

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [session] DIRECTION LAYER Type
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	fmt.Fprintf(w, "%s [%s] %-3s %s %s\n", ts, shortenID(event.SessionID),
		event.Direction.String(), event.Layer.String(), typeLabel(event))

	switch {
	case event.Frame != nil:
		formatFrameDetails(w, event.Frame)
	case event.Key != nil:
		fmt.Fprintf(w, "  Key: %s", cec.UserControlCode(event.Key.Keycode))
		if event.Key.Duration > 0 {
			fmt.Fprintf(w, " (%s)", formatDuration(event.Key.Duration))
		}
		fmt.Fprintln(w)
	case event.LibLog != nil:
		fmt.Fprintf(w, "  %s +%s %s\n", cec.LogLevel(event.LibLog.Level), event.LibLog.Time, event.LibLog.Message)
	case event.Alert != nil:
		fmt.Fprintf(w, "  Alert: %s\n", cec.Alert(event.Alert.Alert))
		if event.Alert.Param != "" {
			fmt.Fprintf(w, "  Param: %s\n", event.Alert.Param)
		}
	case event.Dispatch != nil:
		formatDispatchDetails(w, event.Dispatch)
	case event.StateChange != nil:
		formatStateChangeDetails(w, event.StateChange)
	case event.Error != nil:
		formatErrorDetails(w, event.Error)
	}

	fmt.Fprintln(w) // Blank line between events
}

func typeLabel(event log.Event) string {
	switch {
	case event.Frame != nil:
		if event.Frame.OpcodeSet {
			return cec.Opcode(event.Frame.Opcode).String()
		}
		return "POLL"
	case event.Key != nil:
		return "Key"
	case event.LibLog != nil:
		return "Log"
	case event.Alert != nil:
		return "Alert"
	case event.Dispatch != nil:
		return "Dispatch"
	case event.StateChange != nil:
		return "State"
	case event.Error != nil:
		return "Error"
	}
	return "Unknown"
}

// shortenID returns the first 8 characters of a session ID.
func shortenID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func formatFrameDetails(w io.Writer, f *log.FrameEvent) {
	fmt.Fprintf(w, "  %s -> %s", cec.LogicalAddress(f.Initiator), cec.LogicalAddress(f.Destination))
	if f.Ack {
		fmt.Fprint(w, " ack")
	}
	if f.EOM {
		fmt.Fprint(w, " eom")
	}
	fmt.Fprintln(w)
	if len(f.Parameters) > 0 {
		fmt.Fprintf(w, "  Params: % X\n", f.Parameters)
	}
	if f.Timeout > 0 {
		fmt.Fprintf(w, "  Timeout: %s\n", f.Timeout)
	}
}

func formatDispatchDetails(w io.Writer, d *log.DispatchEvent) {
	fmt.Fprintf(w, "  %s: %s", d.Command, d.Outcome)
	if d.Latency > 0 {
		fmt.Fprintf(w, " in %s", formatDuration(d.Latency))
	}
	fmt.Fprintln(w)
	if d.Error != "" {
		fmt.Fprintf(w, "  Error: %s\n", d.Error)
	}
}

func formatStateChangeDetails(w io.Writer, sc *log.StateChangeEvent) {
	fmt.Fprintf(w, "  Entity: %s\n", sc.Entity.String())
	if sc.OldState != "" {
		fmt.Fprintf(w, "  %s -> %s\n", sc.OldState, sc.NewState)
	} else {
		fmt.Fprintf(w, "  -> %s\n", sc.NewState)
	}
	if sc.Reason != "" {
		fmt.Fprintf(w, "  Reason: %s\n", sc.Reason)
	}
}

func formatErrorDetails(w io.Writer, err *log.ErrorEventData) {
	fmt.Fprintf(w, "  Layer: %s\n", err.Layer.String())
	fmt.Fprintf(w, "  Message: %s\n", err.Message)
	if err.Context != "" {
		fmt.Fprintf(w, "  Context: %s\n", err.Context)
	}
}

// formatDuration formats a duration for display.
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%.3fus", float64(d.Nanoseconds())/1000)
	}
	if d < time.Second {
		return fmt.Sprintf("%.3fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%.3fs", d.Seconds())
}

// RunView prints every event of path that matches filter.
func RunView(path string, filter log.Filter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open capture file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(output, event)
	}

	return nil
}
