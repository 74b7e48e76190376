package calendar

import "time"

// Sign is a western zodiac sign.
type Sign int

const (
	SignUnknown Sign = iota
	Capricorn
	Aquarius
	Pisces
	Aries
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
)

var signNames = map[Sign]string{
	Capricorn:   "Capricorn",
	Aquarius:    "Aquarius",
	Pisces:      "Pisces",
	Aries:       "Aries",
	Taurus:      "Taurus",
	Gemini:      "Gemini",
	Cancer:      "Cancer",
	Leo:         "Leo",
	Virgo:       "Virgo",
	Libra:       "Libra",
	Scorpio:     "Scorpio",
	Sagittarius: "Sagittarius",
}

var signSymbols = map[Sign]string{
	Capricorn:   "♑",
	Aquarius:    "♒",
	Pisces:      "♓",
	Aries:       "♈",
	Taurus:      "♉",
	Gemini:      "♊",
	Cancer:      "♋",
	Leo:         "♌",
	Virgo:       "♍",
	Libra:       "♎",
	Scorpio:     "♏",
	Sagittarius: "♐",
}

func (s Sign) String() string {
	if name, ok := signNames[s]; ok {
		return name
	}
	return "Unknown"
}

// Symbol returns the astrological glyph for s.
func (s Sign) Symbol() string {
	return signSymbols[s]
}

// MarshalText renders the sign name.
func (s Sign) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type monthDay struct {
	month time.Month
	day   int
}

func (md monthDay) ord() int { return int(md.month)*100 + md.day }

// signRange is inclusive on both ends. Capricorn is the only range that
// wraps the year end.
type signRange struct {
	sign       Sign
	start, end monthDay
}

var zodiacTable = []signRange{
	{Capricorn, monthDay{time.December, 22}, monthDay{time.January, 19}},
	{Aquarius, monthDay{time.January, 20}, monthDay{time.February, 18}},
	{Pisces, monthDay{time.February, 19}, monthDay{time.March, 20}},
	{Aries, monthDay{time.March, 21}, monthDay{time.April, 19}},
	{Taurus, monthDay{time.April, 20}, monthDay{time.May, 20}},
	{Gemini, monthDay{time.May, 21}, monthDay{time.June, 20}},
	{Cancer, monthDay{time.June, 21}, monthDay{time.July, 22}},
	{Leo, monthDay{time.July, 23}, monthDay{time.August, 22}},
	{Virgo, monthDay{time.August, 23}, monthDay{time.September, 22}},
	{Libra, monthDay{time.September, 23}, monthDay{time.October, 22}},
	{Scorpio, monthDay{time.October, 23}, monthDay{time.November, 21}},
	{Sagittarius, monthDay{time.November, 22}, monthDay{time.December, 21}},
}

// ZodiacSign maps a month and day to its sign. Feb 29 falls in Pisces.
// Out-of-range input yields SignUnknown.
func ZodiacSign(month time.Month, day int) Sign {
	if month < time.January || month > time.December || day < 1 || day > 31 {
		return SignUnknown
	}
	at := monthDay{month, day}.ord()
	for _, r := range zodiacTable {
		start, end := r.start.ord(), r.end.ord()
		if start <= end {
			if at >= start && at <= end {
				return r.sign
			}
			continue
		}
		if at >= start || at <= end {
			return r.sign
		}
	}
	return SignUnknown
}
