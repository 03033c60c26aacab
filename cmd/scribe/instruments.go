package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// newInstrumentsCommand builds the "scribe instruments" command. It lists the
// registry contents rather than a hardcoded slice, so it can never drift from
// what "scribe write --wiring registry" would actually resolve.
func newInstrumentsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "instruments",
		Short: "List the registered instrument kinds",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := newInstrumentRegistry(io.Discard)
			if err != nil {
				return err
			}
			for _, name := range reg.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
