package calendar

import (
	"testing"
	"time"
)

func TestZodiacSignBoundaries(t *testing.T) {
	tests := []struct {
		month time.Month
		day   int
		want  Sign
	}{
		{time.December, 21, Sagittarius},
		{time.December, 22, Capricorn},
		{time.December, 31, Capricorn},
		{time.January, 1, Capricorn},
		{time.January, 19, Capricorn},
		{time.January, 20, Aquarius},
		{time.February, 18, Aquarius},
		{time.February, 19, Pisces},
		{time.February, 29, Pisces},
		{time.March, 20, Pisces},
		{time.March, 21, Aries},
		{time.April, 19, Aries},
		{time.April, 20, Taurus},
		{time.May, 20, Taurus},
		{time.May, 21, Gemini},
		{time.June, 20, Gemini},
		{time.June, 21, Cancer},
		{time.July, 22, Cancer},
		{time.July, 23, Leo},
		{time.August, 22, Leo},
		{time.August, 23, Virgo},
		{time.September, 22, Virgo},
		{time.September, 23, Libra},
		{time.October, 22, Libra},
		{time.October, 23, Scorpio},
		{time.November, 21, Scorpio},
		{time.November, 22, Sagittarius},
	}

	for _, tt := range tests {
		if got := ZodiacSign(tt.month, tt.day); got != tt.want {
			t.Errorf("ZodiacSign(%s %d) = %s, want %s", tt.month, tt.day, got, tt.want)
		}
	}
}

func TestZodiacSignTotalOverLeapYear(t *testing.T) {
	counts := make(map[Sign]int)
	for d := MustDate(2024, time.January, 1); d.Year == 2024; d = d.AddDays(1) {
		s := ZodiacSign(d.Month, d.Day)
		if s == SignUnknown {
			t.Fatalf("%s has no sign", d)
		}
		counts[s]++
	}
	if len(counts) != 12 {
		t.Fatalf("expected 12 signs, got %d", len(counts))
	}
}

func TestZodiacSignInvalidInput(t *testing.T) {
	if got := ZodiacSign(time.Month(13), 1); got != SignUnknown {
		t.Errorf("expected SignUnknown, got %s", got)
	}
	if got := ZodiacSign(time.March, 0); got != SignUnknown {
		t.Errorf("expected SignUnknown, got %s", got)
	}
	if SignUnknown.String() != "Unknown" || SignUnknown.Symbol() != "" {
		t.Errorf("unexpected rendering of SignUnknown")
	}
	if Libra.Symbol() != "♎" {
		t.Errorf("unexpected Libra symbol %q", Libra.Symbol())
	}
}
