package calendar

import "time"

// Facts are the derived details shown for a selected day.
type Facts struct {
	Date      Date         `json:"date"`
	Weekday   time.Weekday `json:"-"`
	DayOfYear int          `json:"dayOfYear"`
	ISOYear   int          `json:"isoYear"`
	ISOWeek   int          `json:"isoWeek"`
	Zodiac    Sign         `json:"zodiac"`
}

// ComputeFacts derives the Facts for d.
func ComputeFacts(d Date) Facts {
	isoYear, isoWeek := d.ISOWeek()
	return Facts{
		Date:      d,
		Weekday:   d.Weekday(),
		DayOfYear: d.YearDay(),
		ISOYear:   isoYear,
		ISOWeek:   isoWeek,
		Zodiac:    ZodiacSign(d.Month, d.Day),
	}
}
