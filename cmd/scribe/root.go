package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

// rootCommand owns the cobra command tree.
type rootCommand struct {
	cmd *cobra.Command
}

func newRootCommand() *rootCommand {
	r := &rootCommand{}

	r.cmd = &cobra.Command{
		Use:   "scribe",
		Short: "scribe - one essay, four ways of wiring the pen to the writer",
		Long: `scribe writes a short essay using an injected writing instrument.

The point is not the essay. The Writer only ever sees the Instrument
interface; which implementation it receives, and how it receives it, is
decided here at the edge. Pick the wiring strategy with --wiring to see
manual construction, injector helpers, a dig container, and name-based
registry resolution all produce the same result.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	r.cmd.AddCommand(newWriteCommand())
	r.cmd.AddCommand(newInstrumentsCommand())

	return r
}

// Execute runs the command tree, reporting errors on stderr.
func (r *rootCommand) Execute() error {
	err := r.cmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

// Command returns the underlying cobra command, used by tests.
func (r *rootCommand) Command() *cobra.Command {
	return r.cmd
}
