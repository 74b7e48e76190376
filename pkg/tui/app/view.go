package teaui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/key"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/almanac/pkg/calendar"
	calview "tableflip.dev/almanac/pkg/tui/components/calendar"
	"tableflip.dev/almanac/pkg/tui/components/panel"
)

// View renders either the month grid or the selected day's facts, with
// the optional help panel and the footer.
func (m *Model) View() string {
	var sections []string

	if selected, ok := m.state.Selected(); ok {
		sections = append(sections, m.renderDetail(calendar.ComputeFacts(selected)))
	} else {
		sections = append(sections, m.renderGrid())
	}
	if m.showHelp {
		if help, _ := m.helpPanel().View(); help != "" {
			sections = append(sections, help)
		}
	}
	if footer, _ := m.bottom.View(); footer != "" {
		sections = append(sections, footer)
	}
	return strings.Join(sections, "\n\n")
}

func (m *Model) renderGrid() string {
	anchor := m.state.Anchor()
	opts := m.theme.Calendar
	width := calview.Width(opts)

	title := m.theme.Panel.Title.Render(calview.Title(anchor))
	prev := m.theme.Panel.Nav.Render("‹")
	next := m.theme.Panel.Nav.Render("›")
	inner := max(width-4, lipgloss.Width(title))
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		prev, " ",
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, title),
		" ", next,
	)

	grid := calview.Render(calendar.BuildGrid(anchor), calview.Marks{
		Today:  m.today,
		Cursor: m.cursor,
	}, opts)

	return m.frame(header + "\n\n" + grid)
}

func (m *Model) renderDetail(f calendar.Facts) string {
	th := m.theme.Detail
	row := func(label, value string) string {
		return th.Label.Render(label+":") + " " + th.Value.Render(value)
	}

	lines := []string{
		th.Heading.Render("Date: " + f.Date.Format("January 02, 2006")),
		"",
		row("Weekday", f.Weekday.String()),
		row("Day of the year", fmt.Sprintf("%d", f.DayOfYear)),
		row("Week number", fmt.Sprintf("%d", f.ISOWeek)),
	}
	if f.ISOYear != f.Date.Year {
		lines = append(lines, row("ISO week year", fmt.Sprintf("%d", f.ISOYear)))
	}
	lines = append(lines, row("Zodiac sign", f.Zodiac.String())+" "+th.Symbol.Render(f.Zodiac.Symbol()))

	return m.frame(strings.Join(lines, "\n"))
}

func (m *Model) frame(body string) string {
	view := m.theme.Panel.Frame.Render(body)
	if m.termWidth > 0 {
		view = lipgloss.PlaceHorizontal(m.termWidth, lipgloss.Center, view)
	}
	return view
}

func (m *Model) helpPanel() panel.Model {
	p := panel.New(m.theme.Help)
	p.SetContent("Keys",
		panel.Section{Title: "Month view:", Lines: bindingLines(m.keys.gridBindings())},
		panel.Section{Title: "Day view:", Lines: bindingLines(m.keys.detailBindings())},
	)
	return p
}

func bindingLines(bindings []key.Binding) []string {
	lines := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		lines = append(lines, fmt.Sprintf("%-6s %s", h.Key, h.Desc))
	}
	return lines
}
