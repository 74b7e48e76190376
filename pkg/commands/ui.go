package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/almanac/pkg/commands/options"
	"tableflip.dev/almanac/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	weekNumbers := false

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
almanac ui
almanac ui --on=2024-2-29
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			day, err := on.GetOn()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("week-numbers") {
				cfg.UI.WeekNumbers = weekNumbers
			}

			u := ui.UI{Config: cfg, Logger: logger, On: day}
			return u.Do(context.Background())
		},
	}

	options.AddOnArgs(cmd, on)
	cmd.Flags().BoolVarP(&weekNumbers, "week-numbers", "w", false,
		"Show ISO week numbers beside the grid.")

	topLevel.AddCommand(cmd)
}
