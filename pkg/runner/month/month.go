// Package month prints a single month grid.
package month

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/pkg/errors"

	"tableflip.dev/almanac/pkg/calendar"
	"tableflip.dev/almanac/pkg/printers"
)

type Month struct {
	On          calendar.Date
	Today       calendar.Date
	WeekNumbers bool
	JSON        bool
	Out         io.Writer
}

type jsonMonth struct {
	Anchor calendar.Date   `json:"anchor"`
	Title  string          `json:"title"`
	Cells  []calendar.Cell `json:"cells"`
}

func (m *Month) Do(_ context.Context) error {
	out := m.Out
	if out == nil {
		out = color.Output
	}
	anchor := calendar.FirstOfMonth(m.On)
	if !calendar.Navigable(anchor) {
		return errors.Errorf("month %s is outside the calendar", anchor.Format("January 2006"))
	}

	if m.JSON {
		b, err := json.Marshal(jsonMonth{
			Anchor: anchor,
			Title:  anchor.Format("January 2006"),
			Cells:  calendar.BuildGrid(anchor),
		})
		if err != nil {
			return errors.Wrap(err, "encoding month")
		}
		_, _ = fmt.Fprintln(out, string(b))
		return nil
	}

	pp := printers.PrettyPrint{Out: out, WeekNumbers: m.WeekNumbers}
	pp.Month(anchor, m.Today)
	return nil
}
