package calendar

import "time"

// closedDates are the fixed month-day pairs on which B3 does not trade.
var closedDates = map[string]struct{}{
	"01-01": {}, // New Year
	"04-21": {}, // Tiradentes
	"05-01": {}, // Labor Day
	"09-07": {}, // Independence Day
	"10-12": {}, // Our Lady Aparecida
	"11-02": {}, // All Souls' Day
	"11-15": {}, // Republic Proclamation
	"12-24": {}, // Christmas Eve
	"12-25": {}, // Christmas
	"12-31": {}, // last day of the year
}

// blackConsciousnessFrom is the first year Nov 20 became a national holiday.
const blackConsciousnessFrom = 2024

// easterOffsets are the closures that move with Easter Sunday, in days:
// Carnival Monday and Tuesday, Good Friday and Corpus Christi.
var easterOffsets = []int{-48, -47, -2, 60}

// IsTradingDay reports whether B3 holds a regular session on t's calendar
// date (in t's location).
func IsTradingDay(t time.Time) bool {
	d := dateOf(t)

	if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return false
	}

	md := d.Format("01-02")
	if _, closed := closedDates[md]; closed {
		return false
	}
	if md == "11-20" && d.Year() >= blackConsciousnessFrom {
		return false
	}

	easter := EasterSunday(d.Year(), d.Location())
	for _, off := range easterOffsets {
		if d.Equal(easter.AddDate(0, 0, off)) {
			return false
		}
	}
	return true
}

// LastTradingDay returns the most recent trading day on or before t,
// truncated to midnight.
func LastTradingDay(t time.Time) time.Time {
	d := dateOf(t)
	for !IsTradingDay(d) {
		d = d.AddDate(0, 0, -1)
	}
	return d
}

// EasterSunday computes Easter for year in loc (Meeus/Jones/Butcher).
func EasterSunday(year int, loc *time.Location) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
