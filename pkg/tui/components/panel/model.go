// Package panel renders framed information panels for the TUI.
package panel

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/almanac/pkg/tui/theme"
)

// Section is a titled group of lines inside a panel.
type Section struct {
	Title string
	Lines []string
}

// Model renders a titled panel of sections.
type Model struct {
	title    string
	sections []Section

	frameStyle   lipgloss.Style
	titleStyle   lipgloss.Style
	headingStyle lipgloss.Style
	bodyStyle    lipgloss.Style
}

// New returns an empty panel styled by th.
func New(th theme.HelpTheme) Model {
	return Model{
		frameStyle:   th.Frame,
		titleStyle:   th.Title,
		headingStyle: th.Heading,
		bodyStyle:    th.Body,
	}
}

// SetContent replaces the panel title and sections.
func (m *Model) SetContent(title string, sections ...Section) {
	m.title = title
	m.sections = sections
}

// Reset clears panel content.
func (m *Model) Reset() {
	m.title = ""
	m.sections = nil
}

// View returns the rendered panel and its height in lines. An empty panel
// renders as "".
func (m Model) View() (string, int) {
	if m.title == "" && len(m.sections) == 0 {
		return "", 0
	}
	var content []string
	if m.title != "" {
		content = append(content, m.titleStyle.Render(m.title))
	}
	for i, s := range m.sections {
		if i > 0 || m.title != "" {
			content = append(content, "")
		}
		if s.Title != "" {
			content = append(content, m.headingStyle.Render(s.Title))
		}
		for _, line := range s.Lines {
			content = append(content, m.bodyStyle.Render(line))
		}
	}
	view := m.frameStyle.Render(strings.Join(content, "\n"))
	return view, strings.Count(view, "\n") + 1
}
