package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/almanac/pkg/commands/options"
	"tableflip.dev/almanac/pkg/runner/month"
)

func addMonth(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	weekNumbers := false

	cmd := &cobra.Command{
		Use:   "month",
		Short: "print a month grid",
		Example: `
almanac month
almanac month --on=2024-2-1
almanac month --on=12/1 --json
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg, logger, err := setup()
			if err != nil {
				return output.HandleError(err)
			}
			defer func() { _ = logger.Sync() }()

			day, err := on.GetOnOrToday()
			if err != nil {
				return output.HandleError(err)
			}
			if cmd.Flags().Changed("week-numbers") {
				cfg.UI.WeekNumbers = weekNumbers
			}

			m := month.Month{
				On:          day,
				Today:       today(),
				WeekNumbers: cfg.UI.WeekNumbers,
				JSON:        output.JSON,
			}
			return output.HandleError(m.Do(context.Background()))
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddOutputArg(cmd, output)
	cmd.Flags().BoolVarP(&weekNumbers, "week-numbers", "w", false,
		"Show ISO week numbers beside the grid.")

	topLevel.AddCommand(cmd)
}
