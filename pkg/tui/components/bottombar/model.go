package bottombar

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/almanac/pkg/tui/theme"
)

// Mode represents the UI mode that influences footer layout.
type Mode int

const (
	ModeGrid Mode = iota
	ModeDetail
	ModeHelp
)

func (m Mode) String() string {
	switch m {
	case ModeDetail:
		return "DAY"
	case ModeHelp:
		return "HELP"
	default:
		return "MONTH"
	}
}

// Model tracks footer/help/status rendering state.
type Model struct {
	mode       Mode
	helpLine   string
	statusLine string
	width      int
	styles     theme.FooterTheme
}

// New returns a footer model styled by th.
func New(th theme.FooterTheme) Model {
	return Model{mode: ModeGrid, styles: th}
}

// SetMode updates the visual mode.
func (m *Model) SetMode(mode Mode) {
	m.mode = mode
}

// Mode reports the current mode.
func (m Model) Mode() Mode { return m.mode }

// SetHelp sets the contextual help line.
func (m *Model) SetHelp(help string) {
	m.helpLine = help
}

// SetStatus sets the status message to display.
func (m *Model) SetStatus(status string) {
	m.statusLine = status
}

// Status returns the current status message.
func (m Model) Status() string { return m.statusLine }

// SetWidth bounds the footer; zero leaves lines unwrapped.
func (m *Model) SetWidth(width int) {
	m.width = width
}

// View renders the footer string and reports lines consumed.
func (m Model) View() (string, int) {
	segments := []string{m.styles.Mode.Render(m.mode.String())}
	if m.helpLine != "" {
		segments = append(segments, m.styles.Help.Render(m.helpLine))
	}
	if m.statusLine != "" {
		segments = append(segments, m.styles.Status.Render(m.statusLine))
	}
	line := strings.Join(segments, " │ ")
	if m.width > 0 {
		line = wordwrap.String(line, m.width)
	}
	return line, strings.Count(line, "\n") + 1
}
