package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/owl-cec/owl/pkg/event"
)

func consoleCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "console",
		Short: "Run with an interactive prompt as the event source",
		Long: `Run the daemon with a prompt that injects host events by hand.

Events:
  suspend | resume | focus
  press up|down|mute
  release up|down|mute`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load()
			if err != nil {
				return err
			}
			rl, err := readline.NewEx(&readline.Config{
				Prompt:          "owl> ",
				InterruptPrompt: "^C",
				EOFPrompt:       "exit",
			})
			if err != nil {
				return fmt.Errorf("failed to create readline: %w", err)
			}
			defer rl.Close()

			// Log through readline so lines do not clobber the prompt.
			logger, err := newLogger(rl.Stderr(), cfg)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM)
			defer stop()

			d := newDaemon(cfg, logger)
			return d.run(ctx, func(ctx context.Context, _ *event.Pipe) error {
				// Unblock Readline when the daemon stops on its own.
				release := context.AfterFunc(ctx, func() { rl.Close() })
				defer release()
				c := &console{rl: rl, out: rl.Stdout(), deliver: d.registry.Deliver}
				return c.run(ctx)
			})
		},
	}
}

// lineReader is the part of *readline.Instance the console uses.
type lineReader interface {
	Readline() (string, error)
}

// console turns typed lines into events and delivers them through the hook
// registry, the way a platform hook would.
type console struct {
	rl      lineReader
	out     io.Writer
	deliver func(event.Event) bool
}

func (c *console) run(ctx context.Context) error {
	c.printHelp()
	for ctx.Err() == nil {
		line, err := c.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(c.out, "Exiting...")
			return nil
		}
		if !c.handle(line) {
			return nil
		}
	}
	return nil
}

// handle processes one line. It returns false when the user asked to quit.
func (c *console) handle(line string) bool {
	input := strings.TrimSpace(line)
	switch strings.ToLower(input) {
	case "":
		return true
	case "help", "?":
		c.printHelp()
		return true
	case "quit", "exit", "q":
		return false
	}

	e, err := event.ParseEvent(input)
	if err != nil {
		fmt.Fprintf(c.out, "error: %v\n", err)
		return true
	}
	if !c.deliver(e) {
		fmt.Fprintf(c.out, "not delivered (no sink): %s\n", e)
		return true
	}
	fmt.Fprintf(c.out, "sent: %s\n", e)
	return true
}

func (c *console) printHelp() {
	fmt.Fprint(c.out, `Events:
  suspend          standby the TV
  resume, focus    make this device the active source
  press <key>      press up, down or mute
  release <key>    release up, down or mute
  help, quit
`)
}

var _ lineReader = (*readline.Instance)(nil)
