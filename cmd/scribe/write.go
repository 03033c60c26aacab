package main

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/inkworks/scribe/writing"
)

const defaultTopic = "the dependency inversion principle"

// newWriteCommand builds the "scribe write" command.
func newWriteCommand() *cobra.Command {
	var (
		topic      string
		instrument string
		wiring     string
	)

	cmd := &cobra.Command{
		Use:   "write",
		Short: "Write the essay with an injected instrument",
		Long: `Write the essay using the chosen instrument and wiring strategy.

When --instrument is omitted, an interactive prompt offers the known kinds.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if instrument == "" {
				chosen, err := promptForInstrument()
				if err != nil {
					return err
				}
				instrument = chosen
			}

			kind := writing.Kind(instrument)
			writer, err := buildWriter(wiringStrategy(wiring), kind, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return writer.WriteEssay(topic)
		},
	}

	cmd.Flags().StringVarP(&topic, "topic", "t", defaultTopic, "essay topic")
	cmd.Flags().StringVarP(&instrument, "instrument", "i", "", "instrument kind (see 'scribe instruments')")
	cmd.Flags().StringVarP(&wiring, "wiring", "w", string(wiringManual),
		fmt.Sprintf("wiring strategy %v", wiringStrategies))

	return cmd
}

// promptForInstrument interactively selects one of the known kinds.
func promptForInstrument() (string, error) {
	options := make([]string, 0, len(writing.Kinds()))
	for _, kind := range writing.Kinds() {
		options = append(options, string(kind))
	}

	var chosen string
	prompt := &survey.Select{
		Message: "Which instrument should the writer use?",
		Options: options,
	}
	if err := survey.AskOne(prompt, &chosen); err != nil {
		return "", fmt.Errorf("instrument selection: %w", err)
	}
	return chosen, nil
}
