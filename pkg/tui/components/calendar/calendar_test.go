package calendar

import (
	"strings"
	"testing"
	"time"

	"github.com/muesli/reflow/ansi"

	cal "tableflip.dev/almanac/pkg/calendar"
)

func stripANSI(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func TestRenderLeapFebruary(t *testing.T) {
	anchor := cal.MustDate(2024, time.February, 1)
	out := stripANSI(Render(cal.BuildGrid(anchor), Marks{}, DefaultOptions()))
	lines := strings.Split(out, "\n")

	if len(lines) != 6 {
		t.Fatalf("expected header plus 5 weeks, got %d lines:\n%s", len(lines), out)
	}
	if lines[0] != "Su Mo Tu We Th Fr Sa" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if lines[1] != "28 29 30 31  1  2  3" {
		t.Fatalf("unexpected first week %q", lines[1])
	}
	if lines[5] != "25 26 27 28 29  1  2" {
		t.Fatalf("unexpected last week %q", lines[5])
	}
	for i, line := range lines {
		if ansi.PrintableRuneWidth(line) != Width(DefaultOptions()) {
			t.Fatalf("line %d has width %d", i, ansi.PrintableRuneWidth(line))
		}
	}
}

func TestRenderWeekNumbers(t *testing.T) {
	opts := DefaultOptions()
	opts.WeekNumbers = true
	out := stripANSI(Render(cal.BuildGrid(cal.MustDate(2024, time.February, 1)), Marks{}, opts))
	lines := strings.Split(out, "\n")

	if !strings.HasPrefix(lines[1], " 5 28 29") {
		t.Fatalf("expected ISO week 5 gutter, got %q", lines[1])
	}
	if ansi.PrintableRuneWidth(lines[0]) != Width(opts) {
		t.Fatalf("header width %d, want %d", ansi.PrintableRuneWidth(lines[0]), Width(opts))
	}
}

func TestRenderEmpty(t *testing.T) {
	if got := Render(nil, Marks{}, DefaultOptions()); got != "" {
		t.Fatalf("expected empty render, got %q", got)
	}
}

func TestTitle(t *testing.T) {
	if got := Title(cal.MustDate(2026, time.October, 1)); got != "October 2026" {
		t.Fatalf("Title = %q", got)
	}
}
