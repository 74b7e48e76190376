package state

import (
	"testing"
	"time"

	"tableflip.dev/almanac/pkg/calendar"
	"tableflip.dev/almanac/pkg/clock"
)

func TestNewAnchorsOnToday(t *testing.T) {
	now := time.Date(2026, time.October, 17, 23, 30, 0, 0, time.Local)
	s := New(clock.Fixed(now))

	if got, want := s.Anchor(), calendar.MustDate(2026, time.October, 1); got != want {
		t.Fatalf("anchor = %s, want %s", got, want)
	}
	if s.View() != GridView {
		t.Fatalf("expected grid view at startup, got %s", s.View())
	}
	if _, ok := s.Selected(); ok {
		t.Fatalf("expected no selection at startup")
	}
}

func TestApplyTransitions(t *testing.T) {
	start := At(calendar.MustDate(2024, time.January, 15))
	feb29 := calendar.MustDate(2024, time.February, 29)

	tests := []struct {
		name         string
		events       []Event
		wantAnchor   calendar.Date
		wantView     View
		wantSelected calendar.Date
	}{
		{
			name:       "previous month wraps year",
			events:     []Event{PreviousMonth{}},
			wantAnchor: calendar.MustDate(2023, time.December, 1),
			wantView:   GridView,
		},
		{
			name:       "next month",
			events:     []Event{NextMonth{}},
			wantAnchor: calendar.MustDate(2024, time.February, 1),
			wantView:   GridView,
		},
		{
			name:         "select opens detail",
			events:       []Event{DateSelected{Date: feb29}},
			wantAnchor:   calendar.MustDate(2024, time.January, 1),
			wantView:     DetailView,
			wantSelected: feb29,
		},
		{
			name:         "paging keeps selection",
			events:       []Event{DateSelected{Date: feb29}, NextMonth{}, NextMonth{}},
			wantAnchor:   calendar.MustDate(2024, time.March, 1),
			wantView:     DetailView,
			wantSelected: feb29,
		},
		{
			name:       "back to calendar",
			events:     []Event{DateSelected{Date: feb29}, BackToCalendar{}},
			wantAnchor: calendar.MustDate(2024, time.January, 1),
			wantView:   GridView,
		},
		{
			name:       "jump normalizes to day one",
			events:     []Event{JumpTo{Date: calendar.MustDate(2026, time.October, 17)}},
			wantAnchor: calendar.MustDate(2026, time.October, 1),
			wantView:   GridView,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := start
			for _, e := range tt.events {
				s = Apply(s, e)
			}
			if s.Anchor() != tt.wantAnchor {
				t.Errorf("anchor = %s, want %s", s.Anchor(), tt.wantAnchor)
			}
			if s.Anchor().Day != 1 {
				t.Errorf("anchor not normalized: %s", s.Anchor())
			}
			if s.View() != tt.wantView {
				t.Errorf("view = %s, want %s", s.View(), tt.wantView)
			}
			sel, ok := s.Selected()
			if ok != (tt.wantView == DetailView) {
				t.Errorf("selection present = %v in %s", ok, s.View())
			}
			if sel != tt.wantSelected {
				t.Errorf("selected = %s, want %s", sel, tt.wantSelected)
			}
		})
	}
}

func TestNextThenPreviousRestoresAnchor(t *testing.T) {
	anchors := []calendar.Date{
		calendar.MustDate(2023, time.December, 1),
		calendar.MustDate(2024, time.January, 1),
		calendar.MustDate(2024, time.February, 1),
	}
	for _, a := range anchors {
		s := At(a)
		withSel := Apply(s, DateSelected{Date: a})
		for _, st := range []State{s, withSel} {
			got := Apply(Apply(st, NextMonth{}), PreviousMonth{})
			if got != st {
				t.Errorf("NextMonth then PreviousMonth: got %s, want %s", got, st)
			}
		}
	}
}

func TestSelectThenBackRestoresGrid(t *testing.T) {
	s := At(calendar.MustDate(2026, time.October, 1))
	got := Apply(Apply(s, DateSelected{Date: calendar.MustDate(2025, time.May, 3)}), BackToCalendar{})
	if got != s {
		t.Fatalf("got %s, want %s", got, s)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	s := At(calendar.MustDate(2026, time.October, 1))
	_ = Apply(s, NextMonth{})
	_ = Apply(s, DateSelected{Date: calendar.MustDate(2026, time.October, 2)})
	if s.Anchor() != calendar.MustDate(2026, time.October, 1) || s.View() != GridView {
		t.Fatalf("input state mutated: %s", s)
	}
}

func TestEventStrings(t *testing.T) {
	e := DateSelected{Date: calendar.MustDate(2024, time.February, 29)}
	if e.String() != "DateSelected(2024-02-29)" {
		t.Errorf("unexpected event string %q", e.String())
	}
	if (NextMonth{}).String() != "NextMonth" {
		t.Errorf("unexpected event string")
	}
}

func TestApplyStopsAtCalendarEdges(t *testing.T) {
	tests := []struct {
		name  string
		start State
		event Event
		want  calendar.Date
	}{
		{
			name:  "previous from first month",
			start: At(calendar.MustDate(1, time.February, 10)),
			event: PreviousMonth{},
			want:  calendar.FirstAnchor,
		},
		{
			name:  "next from last month",
			start: At(calendar.MustDate(calendar.MaxYear, time.November, 30)),
			event: NextMonth{},
			want:  calendar.LastAnchor,
		},
		{
			name:  "jump before first month",
			start: At(calendar.MustDate(2024, time.February, 1)),
			event: JumpTo{Date: calendar.MustDate(1, time.January, 5)},
			want:  calendar.MustDate(2024, time.February, 1),
		},
		{
			name:  "jump after last month",
			start: At(calendar.MustDate(2024, time.February, 1)),
			event: JumpTo{Date: calendar.MustDate(calendar.MaxYear, time.December, 31)},
			want:  calendar.MustDate(2024, time.February, 1),
		},
		{
			name:  "next into last month",
			start: At(calendar.MustDate(calendar.MaxYear, time.October, 1)),
			event: NextMonth{},
			want:  calendar.LastAnchor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(tt.start, tt.event)
			if got.Anchor() != tt.want {
				t.Fatalf("anchor = %s, want %s", got.Anchor(), tt.want)
			}
			if cells := calendar.BuildGrid(got.Anchor()); len(cells) == 0 {
				t.Fatalf("expected a renderable grid")
			}
		})
	}
}
