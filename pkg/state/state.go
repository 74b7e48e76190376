// Package state holds the calendar viewer's application state and the reducer
// that applies navigation and selection events to it.
package state

import (
	"fmt"

	"tableflip.dev/almanac/pkg/calendar"
	"tableflip.dev/almanac/pkg/clock"
)

// View is the screen implied by a State.
type View int

const (
	GridView View = iota
	DetailView
)

func (v View) String() string {
	switch v {
	case GridView:
		return "grid"
	case DetailView:
		return "detail"
	}
	return fmt.Sprintf("View(%d)", int(v))
}

// State is the displayed month plus an optional selected day. The zero value
// is not usable; build one with New or At.
type State struct {
	anchor       calendar.Date
	selected     calendar.Date
	hasSelection bool
}

// New returns the grid view of the month containing c's current local date.
func New(c clock.Clock) State {
	return At(calendar.FromTime(c.Now()))
}

// At returns the grid view of the month containing d.
func At(d calendar.Date) State {
	return State{anchor: calendar.FirstOfMonth(d)}
}

// Anchor returns day 1 of the displayed month.
func (s State) Anchor() calendar.Date { return s.anchor }

// Selected returns the selected day, if any.
func (s State) Selected() (calendar.Date, bool) {
	return s.selected, s.hasSelection
}

// View reports DetailView while a day is selected.
func (s State) View() View {
	if s.hasSelection {
		return DetailView
	}
	return GridView
}

func (s State) String() string {
	if s.hasSelection {
		return fmt.Sprintf("%s anchor=%s selected=%s", s.View(), s.anchor, s.selected)
	}
	return fmt.Sprintf("%s anchor=%s", s.View(), s.anchor)
}
