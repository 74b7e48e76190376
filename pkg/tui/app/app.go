// Package teaui hosts the Bubble Tea program for the almanac TUI.
package teaui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"go.uber.org/zap"

	"tableflip.dev/almanac/pkg/calendar"
	"tableflip.dev/almanac/pkg/clock"
	"tableflip.dev/almanac/pkg/state"
	"tableflip.dev/almanac/pkg/tui/components/bottombar"
	"tableflip.dev/almanac/pkg/tui/theme"
)

// Options configures a Model. Zero values fall back to the system clock, a
// no-op logger and the default theme.
type Options struct {
	Clock       clock.Clock
	Logger      *zap.Logger
	Theme       *theme.Theme
	WeekNumbers bool
	// On anchors the first month shown; defaults to today.
	On *calendar.Date
}

// Model adapts state.State to Bubble Tea. The cursor is the keyboard focus
// inside the grid and always lies within the displayed grid.
type Model struct {
	clock  clock.Clock
	logger *zap.Logger
	theme  theme.Theme
	keys   keyMap

	state  state.State
	today  calendar.Date
	cursor calendar.Date

	bottom   bottombar.Model
	showHelp bool

	termWidth  int
	termHeight int
}

// New builds the model for the first frame.
func New(opts Options) *Model {
	if opts.Clock == nil {
		opts.Clock = clock.System()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	th := theme.Default()
	if opts.Theme != nil {
		th = *opts.Theme
	}
	th.Calendar.WeekNumbers = opts.WeekNumbers

	m := &Model{
		clock:  opts.Clock,
		logger: opts.Logger,
		theme:  th,
		keys:   defaultKeyMap(),
		bottom: bottombar.New(th.Footer),
	}
	m.today = calendar.FromTime(m.clock.Now())
	m.state = state.New(m.clock)
	m.cursor = m.today
	if opts.On != nil {
		m.state = state.At(*opts.On)
		m.cursor = *opts.On
	}
	m.updateBottomContext()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// State returns the current application state.
func (m *Model) State() state.State { return m.state }

// Cursor returns the focused day in the grid.
func (m *Model) Cursor() calendar.Date { return m.cursor }

// Update handles key presses and window sizing.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.bottom.SetWidth(msg.Width)
	case tea.KeyPressMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.Help) {
			m.showHelp = !m.showHelp
			m.updateBottomContext()
			return m, nil
		}
		if m.showHelp && key.Matches(msg, m.keys.Back) {
			m.showHelp = false
			m.updateBottomContext()
			return m, nil
		}
		switch m.state.View() {
		case state.DetailView:
			m.handleDetailKey(msg)
		default:
			m.handleGridKey(msg)
		}
	}
	return m, nil
}

func (m *Model) handleGridKey(msg tea.KeyPressMsg) {
	switch {
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-7)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(7)
	case key.Matches(msg, m.keys.PrevMonth):
		m.pageMonth(-1)
	case key.Matches(msg, m.keys.NextMonth):
		m.pageMonth(1)
	case key.Matches(msg, m.keys.Today):
		m.today = calendar.FromTime(m.clock.Now())
		m.dispatch(state.JumpTo{Date: m.today})
		m.cursor = m.today
		m.setStatus("")
	case key.Matches(msg, m.keys.Select):
		m.dispatch(state.DateSelected{Date: m.cursor})
	}
}

func (m *Model) handleDetailKey(msg tea.KeyPressMsg) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.dispatch(state.BackToCalendar{})
	case key.Matches(msg, m.keys.Left):
		m.stepSelection(-1)
	case key.Matches(msg, m.keys.Right):
		m.stepSelection(1)
	case key.Matches(msg, m.keys.PrevMonth):
		m.pageMonth(-1)
	case key.Matches(msg, m.keys.NextMonth):
		m.pageMonth(1)
	}
}

// moveCursor shifts the focus by delta days, paging the month when the focus
// would leave the visible grid.
func (m *Model) moveCursor(delta int) {
	next, ok := shift(m.cursor, delta)
	if !ok {
		m.setStatus("end of calendar")
		return
	}
	grid := calendar.BuildGrid(m.state.Anchor())
	if !calendar.Contains(grid, next) {
		target := calendar.FirstOfMonth(next)
		if !calendar.Navigable(target) {
			m.setStatus("end of calendar")
			return
		}
		if next.Before(grid[0].Date) {
			m.dispatch(state.PreviousMonth{})
		} else {
			m.dispatch(state.NextMonth{})
		}
	}
	m.cursor = next
	m.setStatus("")
}

// pageMonth moves the displayed month and keeps the cursor on the same day
// number, clamped to the new month's length.
func (m *Model) pageMonth(dir int) {
	anchor := m.state.Anchor()
	if (dir < 0 && !anchor.After(calendar.FirstAnchor)) || (dir > 0 && !anchor.Before(calendar.LastAnchor)) {
		m.setStatus("end of calendar")
		return
	}
	if dir < 0 {
		m.dispatch(state.PreviousMonth{})
	} else {
		m.dispatch(state.NextMonth{})
	}
	next := m.state.Anchor()
	day := m.cursor.Day
	if last := calendar.DaysIn(next); day > last {
		day = last
	}
	m.cursor = calendar.Date{Year: next.Year, Month: next.Month, Day: day}
	if m.state.View() == state.DetailView {
		m.setStatus(fmt.Sprintf("calendar at %s %d", next.Month, next.Year))
	} else {
		m.setStatus("")
	}
}

// stepSelection shows the neighbouring day in the detail view and keeps the
// grid behind it in sync.
func (m *Model) stepSelection(delta int) {
	selected, ok := m.state.Selected()
	if !ok {
		return
	}
	next, ok := shift(selected, delta)
	if !ok || !calendar.Navigable(next) {
		m.setStatus("end of calendar")
		return
	}
	m.dispatch(state.DateSelected{Date: next})
	if !next.SameMonth(m.state.Anchor()) {
		m.dispatch(state.JumpTo{Date: next})
	}
	m.cursor = next
}

func (m *Model) dispatch(e state.Event) {
	m.state = state.Apply(m.state, e)
	m.logger.Debug("event applied",
		zap.Stringer("event", e),
		zap.Stringer("anchor", m.state.Anchor()),
		zap.Stringer("view", m.state.View()))
	m.updateBottomContext()
}

func (m *Model) setStatus(msg string) {
	m.bottom.SetStatus(msg)
}

func (m *Model) updateBottomContext() {
	switch {
	case m.showHelp:
		m.bottom.SetMode(bottombar.ModeHelp)
		m.bottom.SetHelp("? or esc close help · q quit")
	case m.state.View() == state.DetailView:
		m.bottom.SetMode(bottombar.ModeDetail)
		m.bottom.SetHelp(shortHelp(m.keys.detailBindings()))
	default:
		m.bottom.SetMode(bottombar.ModeGrid)
		m.bottom.SetHelp(shortHelp(m.keys.gridBindings()))
	}
}

// shift adds delta days unless the result leaves the supported range.
func shift(d calendar.Date, delta int) (calendar.Date, bool) {
	t := d.Time().AddDate(0, 0, delta)
	if t.Year() < calendar.MinYear || t.Year() > calendar.MaxYear {
		return calendar.Date{}, false
	}
	return d.AddDays(delta), true
}

// Run launches the interactive TUI program.
func Run(opts Options, altScreen bool) error {
	var progOpts []tea.ProgramOption
	if altScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(New(opts), progOpts...)
	_, err := p.Run()
	return err
}
