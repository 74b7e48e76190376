package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/almanac/pkg/calendar"
)

// PrettyPrint writes colored month grids and day facts.
type PrettyPrint struct {
	// Out defaults to color.Output.
	Out io.Writer
	// WeekNumbers prefixes each week with its ISO week.
	WeekNumbers bool
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

const width = len("11 12 13 14 15 16 17") // an example week

// Month prints the grid for anchor's month, marking today in bold.
func (pp *PrettyPrint) Month(anchor calendar.Date, today calendar.Date) {
	w := pp.out()
	gutter := ""
	if pp.WeekNumbers {
		gutter = "   "
	}

	tf := color.New(color.FgWhite, color.Italic)
	title := fmt.Sprintf("%s %d", anchor.Month, anchor.Year)
	mid := (width - len(title)) / 2
	_, _ = tf.Fprintf(w, "%s%s%s%s\n", gutter, strings.Repeat(" ", mid), title, strings.Repeat(" ", width-mid-len(title)))

	hf := color.New(color.Faint, color.Bold)
	_, _ = hf.Fprintln(w, gutter+strings.Join(calendar.WeekdayNames[:], " "))

	outside := color.New(color.Faint, color.FgWhite)
	inside := color.New(color.FgHiWhite)
	bold := color.New(color.Bold, color.Underline, color.FgHiWhite)
	week := color.New(color.Faint)

	for _, row := range calendar.Weeks(calendar.BuildGrid(anchor)) {
		if pp.WeekNumbers {
			_, _ = week.Fprintf(w, "%2d ", calendar.RowISOWeek(row))
		}
		for i, c := range row {
			printer := inside
			switch {
			case !c.InCurrentMonth:
				printer = outside
			case c.Date == today:
				printer = bold
			}
			_, _ = printer.Fprintf(w, "%2d", c.Date.Day)
			if i < len(row)-1 {
				_, _ = fmt.Fprint(w, " ")
			}
		}
		_, _ = fmt.Fprint(w, "\n")
	}
	_, _ = fmt.Fprint(w, "\n")
}

// Facts prints the derived facts of a day as a two column table.
func (pp *PrettyPrint) Facts(f calendar.Facts) {
	w := pp.out()
	bold := color.New(color.Bold)

	_, _ = bold.Fprintln(w, f.Date.Format("Monday, January 02, 2006"))

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("Day of the year", f.DayOfYear)
	week := fmt.Sprintf("%d", f.ISOWeek)
	if f.ISOYear != f.Date.Year {
		week = fmt.Sprintf("%d (%d)", f.ISOWeek, f.ISOYear)
	}
	tbl.AddRow("Week number", week)
	tbl.AddRow("Zodiac sign", strings.TrimSpace(f.Zodiac.String()+" "+f.Zodiac.Symbol()))
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(w, tbl)
}
