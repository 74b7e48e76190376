package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/almanac/pkg/commands/options"
	"tableflip.dev/almanac/pkg/runner/facts"
)

func addFacts(topLevel *cobra.Command) {
	on := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "facts",
		Short: "show the weekday, day of the year, week number and zodiac sign of a day",
		Example: `
almanac facts
almanac facts --on=2024-2-29
almanac facts --on=1/1 --json
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			day, err := on.GetOnOrToday()
			if err != nil {
				return output.HandleError(err)
			}
			f := facts.Facts{On: day, JSON: output.JSON}
			return output.HandleError(f.Do(context.Background()))
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
