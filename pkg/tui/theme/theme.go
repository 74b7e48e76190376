package theme

import (
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/almanac/pkg/tui/components/calendar"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Footer   FooterTheme
	Panel    PanelTheme
	Detail   DetailTheme
	Help     HelpTheme
	Calendar calendar.Options
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Mode   lipgloss.Style
}

// PanelTheme styles framed panels and headings.
type PanelTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Nav   lipgloss.Style
}

// HelpTheme styles the key reference panel.
type HelpTheme struct {
	Frame   lipgloss.Style
	Title   lipgloss.Style
	Heading lipgloss.Style
	Body    lipgloss.Style
}

// DetailTheme styles the selected-day facts.
type DetailTheme struct {
	Heading lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Symbol  lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Theme{
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Mode: lipgloss.NewStyle().
				Foreground(lipgloss.Color("212")).
				Bold(true),
		},
		Panel: PanelTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Nav:   lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true),
		},
		Detail: DetailTheme{
			Heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
			Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Value:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
			Symbol:  lipgloss.NewStyle().Foreground(lipgloss.Color("111")),
		},
		Help: HelpTheme{
			Frame:   lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).Padding(1, 2),
			Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
			Heading: lipgloss.NewStyle().Bold(true),
			Body:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		},
		Calendar: calendar.DefaultOptions(),
	}
}
