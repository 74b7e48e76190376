// Package calendar implements Gregorian date arithmetic for the month grid:
// month navigation, grid construction and per-day facts.
package calendar

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

const (
	// MinYear and MaxYear bound the dates the package will produce.
	MinYear = 1
	MaxYear = 9999

	isoLayout = "2006-01-02"
)

// Date is a proleptic Gregorian calendar date without a clock or zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate validates year/month/day and returns the Date.
func NewDate(year int, month time.Month, day int) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, errors.Errorf("year %d out of range [%d, %d]", year, MinYear, MaxYear)
	}
	if month < time.January || month > time.December {
		return Date{}, errors.Errorf("month %d out of range", month)
	}
	d := Date{Year: year, Month: month, Day: 1}
	if day < 1 || day > DaysIn(d) {
		return Date{}, errors.Errorf("day %d out of range for %s %d", day, month, year)
	}
	d.Day = day
	return d, nil
}

// MustDate is NewDate for literals; it panics on an invalid date.
func MustDate(year int, month time.Month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// FromTime returns the calendar date of t in t's location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses an ISO 2006-01-02 date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(isoLayout, s)
	if err != nil {
		return Date{}, errors.Wrapf(err, "parse date %q", s)
	}
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Time returns midnight UTC on d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns d shifted by n days. Leaving [MinYear, MaxYear] is a bug in
// the caller and panics.
func (d Date) AddDays(n int) Date {
	next := FromTime(d.Time().AddDate(0, 0, n))
	if next.Year < MinYear || next.Year > MaxYear {
		panic(fmt.Sprintf("calendar: date out of range: %s%+d days", d, n))
	}
	return next
}

// Weekday reports the day of the week, Sunday = 0.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// YearDay returns the 1-based ordinal day within the year.
func (d Date) YearDay() int {
	return d.Time().YearDay()
}

// ISOWeek returns the ISO 8601 year and week number d falls in.
func (d Date) ISOWeek() (year, week int) {
	return d.Time().ISOWeek()
}

// Compare returns -1, 0 or +1 as d is before, equal to or after o.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return cmp(d.Year, o.Year)
	case d.Month != o.Month:
		return cmp(int(d.Month), int(o.Month))
	default:
		return cmp(d.Day, o.Day)
	}
}

func cmp(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }
func (d Date) After(o Date) bool  { return d.Compare(o) > 0 }
func (d Date) Equal(o Date) bool  { return d == o }

// IsZero reports whether d is the zero Date, which is not a valid date.
func (d Date) IsZero() bool { return d == Date{} }

// SameMonth reports whether d and o share year and month.
func (d Date) SameMonth(o Date) bool {
	return d.Year == o.Year && d.Month == o.Month
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Format formats d with a time layout.
func (d Date) Format(layout string) string {
	return d.Time().Format(layout)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
