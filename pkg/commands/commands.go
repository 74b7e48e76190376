package commands

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tableflip.dev/almanac/pkg/calendar"
	"tableflip.dev/almanac/pkg/clock"
	"tableflip.dev/almanac/pkg/commands/options"
	"tableflip.dev/almanac/pkg/config"
	"tableflip.dev/almanac/pkg/logging"
	"tableflip.dev/almanac/pkg/runner/month"
	"tableflip.dev/almanac/pkg/runner/ui"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {
	on := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "almanac",
		Short: options.Wrap80("A month calendar for the terminal."),
		Long: options.Wrap80("Browse months, pick a day, and see its weekday, day of the year, " +
			"ISO week and zodiac sign. Opens the interactive calendar on a terminal and " +
			"prints the current month otherwise."),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			day, err := on.GetOnOrToday()
			if err != nil {
				return err
			}

			if !isTerminal() {
				m := month.Month{
					On:          day,
					Today:       today(),
					WeekNumbers: cfg.UI.WeekNumbers,
				}
				return m.Do(context.Background())
			}
			u := ui.UI{Config: cfg, Logger: logger, On: &day}
			return u.Do(context.Background())
		},
	}

	options.AddOnArgs(cmd, on)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addMonth(topLevel)
	addFacts(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// setup loads the config file and opens the log.
func setup() (config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, nil, err
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, logger, nil
}

func isTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func today() calendar.Date {
	return calendar.FromTime(clock.System().Now())
}
