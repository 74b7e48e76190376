package calendar

import "time"

// FirstAnchor and LastAnchor bound the months whose whole grid, padding
// included, stays within [MinYear, MaxYear].
var (
	FirstAnchor = Date{Year: MinYear, Month: time.February, Day: 1}
	LastAnchor  = Date{Year: MaxYear, Month: time.November, Day: 1}
)

// Navigable reports whether the grid for d's month can be built.
func Navigable(d Date) bool {
	a := FirstOfMonth(d)
	return !a.Before(FirstAnchor) && !a.After(LastAnchor)
}

// FirstOfMonth returns day 1 of d's month.
func FirstOfMonth(d Date) Date {
	return Date{Year: d.Year, Month: d.Month, Day: 1}
}

// NextMonth returns the anchor of the month after anchor. It steps 32 days
// past day 1, which always lands in the following month, and normalizes.
func NextMonth(anchor Date) Date {
	return FirstOfMonth(FirstOfMonth(anchor).AddDays(32))
}

// PreviousMonth returns the anchor of the month before anchor.
func PreviousMonth(anchor Date) Date {
	return FirstOfMonth(FirstOfMonth(anchor).AddDays(-1))
}

// LastOfMonth returns the last day of anchor's month.
func LastOfMonth(anchor Date) Date {
	return NextMonth(anchor).AddDays(-1)
}

// DaysIn returns the number of days in d's month.
func DaysIn(d Date) int {
	// Safe for December of MaxYear, unlike LastOfMonth.
	return FirstOfMonth(d).Time().AddDate(0, 1, -1).Day()
}
