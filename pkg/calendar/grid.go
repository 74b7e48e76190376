package calendar

import "time"

// Cell is one day square of a month grid.
type Cell struct {
	Date           Date `json:"date"`
	InCurrentMonth bool `json:"inCurrentMonth"`
}

// BuildGrid returns the Sunday-first cells covering anchor's month in whole
// weeks, padded with days from the adjacent months. The result always has a
// multiple of 7 cells and is freshly allocated on every call.
func BuildGrid(anchor Date) []Cell {
	first := FirstOfMonth(anchor)
	last := LastOfMonth(first)

	day := first.AddDays(-int(first.Weekday()))

	cells := make([]Cell, 0, 42)
	for !day.After(last) {
		for i := 0; i < 7; i++ {
			cells = append(cells, Cell{
				Date:           day,
				InCurrentMonth: day.SameMonth(first),
			})
			day = day.AddDays(1)
		}
	}
	return cells
}

// Weeks splits a grid into rows of seven cells.
func Weeks(cells []Cell) [][]Cell {
	rows := make([][]Cell, 0, (len(cells)+6)/7)
	for start := 0; start < len(cells); start += 7 {
		end := start + 7
		if end > len(cells) {
			end = len(cells)
		}
		rows = append(rows, cells[start:end])
	}
	return rows
}

// Contains reports whether d is one of the grid's cells.
func Contains(cells []Cell, d Date) bool {
	if len(cells) == 0 {
		return false
	}
	return !d.Before(cells[0].Date) && !d.After(cells[len(cells)-1].Date)
}

// WeekdayNames are the grid column headers, Sunday first.
var WeekdayNames = [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// RowISOWeek returns the ISO week of the Monday in a Sunday-first row.
func RowISOWeek(row []Cell) int {
	for _, c := range row {
		if c.Date.Weekday() == time.Monday {
			_, w := c.Date.ISOWeek()
			return w
		}
	}
	return 0
}
