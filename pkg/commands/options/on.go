package options

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"tableflip.dev/almanac/pkg/calendar"
	"tableflip.dev/almanac/pkg/clock"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

// OnOptions selects the day a command starts on.
type OnOptions struct {
	OnString string
	// Clock resolves the current year for short dates; defaults to the system clock.
	Clock clock.Clock
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2020-2-28" or --on="2/28".`)
}

// GetOn returns the requested day, or nil when --on was not given.
func (o *OnOptions) GetOn() (*calendar.Date, error) {
	if o.OnString == "" {
		return nil, nil
	}
	t, err := time.Parse(layoutISO, o.OnString)
	if err != nil {
		// Short dates land in the current year.
		t, err = time.Parse(layoutISOShort, o.OnString)
		if err != nil {
			return nil, errors.Errorf("invalid --on %q, expected YYYY-M-D or M/D", o.OnString)
		}
		c := o.Clock
		if c == nil {
			c = clock.System()
		}
		d, err := calendar.NewDate(c.Now().Year(), t.Month(), t.Day())
		if err != nil {
			return nil, errors.Wrapf(err, "invalid --on %q", o.OnString)
		}
		return navigable(d)
	}
	return navigable(calendar.FromTime(t))
}

func navigable(d calendar.Date) (*calendar.Date, error) {
	if !calendar.Navigable(d) {
		return nil, errors.Errorf("--on %s is outside %s through %s",
			d, calendar.FirstAnchor, calendar.LastOfMonth(calendar.LastAnchor))
	}
	return &d, nil
}

// GetOnOrToday falls back to the clock's current day.
func (o *OnOptions) GetOnOrToday() (calendar.Date, error) {
	on, err := o.GetOn()
	if err != nil {
		return calendar.Date{}, err
	}
	if on != nil {
		return *on, nil
	}
	c := o.Clock
	if c == nil {
		c = clock.System()
	}
	return calendar.FromTime(c.Now()), nil
}
