package state

import (
	"fmt"

	"tableflip.dev/almanac/pkg/calendar"
)

// Event is a user action the reducer understands.
type Event interface {
	fmt.Stringer
	event()
}

// PreviousMonth pages back one month.
type PreviousMonth struct{}

// NextMonth pages forward one month.
type NextMonth struct{}

// DateSelected opens the detail view for Date.
type DateSelected struct{ Date calendar.Date }

// BackToCalendar closes the detail view.
type BackToCalendar struct{}

// JumpTo displays the month containing Date.
type JumpTo struct{ Date calendar.Date }

func (PreviousMonth) event()  {}
func (NextMonth) event()      {}
func (DateSelected) event()   {}
func (BackToCalendar) event() {}
func (JumpTo) event()         {}

func (PreviousMonth) String() string  { return "PreviousMonth" }
func (NextMonth) String() string      { return "NextMonth" }
func (e DateSelected) String() string { return "DateSelected(" + e.Date.String() + ")" }
func (BackToCalendar) String() string { return "BackToCalendar" }
func (e JumpTo) String() string       { return "JumpTo(" + e.Date.String() + ")" }

// Apply returns the state that follows s after e. It never modifies s.
// Paging or jumping to a month outside calendar.FirstAnchor through
// calendar.LastAnchor leaves the anchor unchanged.
func Apply(s State, e Event) State {
	switch e := e.(type) {
	case PreviousMonth:
		if s.anchor.After(calendar.FirstAnchor) {
			s.anchor = calendar.PreviousMonth(s.anchor)
		}
	case NextMonth:
		if s.anchor.Before(calendar.LastAnchor) {
			s.anchor = calendar.NextMonth(s.anchor)
		}
	case DateSelected:
		s.selected = e.Date
		s.hasSelection = true
	case BackToCalendar:
		s.selected = calendar.Date{}
		s.hasSelection = false
	case JumpTo:
		if calendar.Navigable(e.Date) {
			s.anchor = calendar.FirstOfMonth(e.Date)
		}
	}
	return s
}
