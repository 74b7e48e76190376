// Package calendar renders month grids for the TUI.
package calendar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	cal "tableflip.dev/almanac/pkg/calendar"
)

// Marks are the days drawn with emphasis.
type Marks struct {
	Today  cal.Date
	Cursor cal.Date
}

// Options controls calendar styling.
type Options struct {
	TitleStyle   lipgloss.Style
	HeaderStyle  lipgloss.Style
	OutsideStyle lipgloss.Style
	DayStyle     lipgloss.Style
	WeekendStyle lipgloss.Style
	TodayStyle   lipgloss.Style
	CursorStyle  lipgloss.Style
	WeekStyle    lipgloss.Style
	ShowHeader   bool
	WeekNumbers  bool
}

// DefaultOptions returns the styling used for calendar rendering.
func DefaultOptions() Options {
	return Options{
		TitleStyle:   lipgloss.NewStyle().Bold(true),
		HeaderStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
		OutsideStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		DayStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		WeekendStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("111")),
		TodayStyle:   lipgloss.NewStyle().Underline(true).Bold(true),
		CursorStyle:  lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0")),
		WeekStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		ShowHeader:   true,
	}
}

// Title returns the "October 2026" label for anchor's month.
func Title(anchor cal.Date) string {
	return fmt.Sprintf("%s %d", anchor.Month, anchor.Year)
}

// Header returns the weekday header line, including the week column gutter
// when enabled.
func Header(opts Options) string {
	text := strings.Join(cal.WeekdayNames[:], " ")
	if opts.WeekNumbers {
		text = "   " + text
	}
	return opts.HeaderStyle.Render(text)
}

// Render produces a multi-line month grid from cells built by cal.BuildGrid.
func Render(cells []cal.Cell, marks Marks, opts Options) string {
	if len(cells) == 0 {
		return ""
	}

	var lines []string
	if opts.ShowHeader {
		lines = append(lines, Header(opts))
	}
	for _, row := range cal.Weeks(cells) {
		lines = append(lines, RenderRow(row, marks, opts))
	}
	return strings.Join(lines, "\n")
}

// RenderRow renders a single week.
func RenderRow(row []cal.Cell, marks Marks, opts Options) string {
	cells := make([]string, 0, len(row)+1)
	if opts.WeekNumbers {
		cells = append(cells, opts.WeekStyle.Render(fmt.Sprintf("%2d", cal.RowISOWeek(row))))
	}
	for _, c := range row {
		cells = append(cells, renderDay(c, marks, opts))
	}
	return strings.Join(cells, " ")
}

func renderDay(c cal.Cell, marks Marks, opts Options) string {
	text := fmt.Sprintf("%2d", c.Date.Day)

	style := opts.DayStyle
	if wd := c.Date.Weekday(); wd == 0 || wd == 6 {
		style = opts.WeekendStyle
	}
	if !c.InCurrentMonth {
		style = opts.OutsideStyle
	}
	if c.Date == marks.Today {
		style = style.Inherit(opts.TodayStyle)
	}
	if c.Date == marks.Cursor {
		style = opts.CursorStyle.Inherit(style)
	}
	return style.Render(text)
}

// Width returns the printable width of a rendered grid line.
func Width(opts Options) int {
	w := 7*2 + 6
	if opts.WeekNumbers {
		w += 3
	}
	return w
}
