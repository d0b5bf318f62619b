package trackline

import "time"

// The calendar recognizes the US market holidays: New Year's Day, Martin
// Luther King Jr. Day, Presidents Day, Good Friday, Memorial Day, Juneteenth,
// Independence Day, Labor Day, Thanksgiving, and Christmas. A holiday landing
// on a Saturday is observed the preceding Friday, one landing on a Sunday the
// following Monday.

// nthWeekday returns the n-th given weekday of a month (n is 1-based).
func nthWeekday(year int, month time.Month, weekday time.Weekday, n int) Date {
	first := NewDate(year, month, 1)
	offset := int(weekday - first.Weekday())
	if offset < 0 {
		offset += 7
	}
	return first.Add(offset + (n-1)*7)
}

// lastWeekday returns the last given weekday of a month.
func lastWeekday(year int, month time.Month, weekday time.Weekday) Date {
	last := NewDate(year, month+1, 0)
	offset := int(last.Weekday() - weekday)
	if offset < 0 {
		offset += 7
	}
	return last.Add(-offset)
}

// easterSunday computes the date of Easter Sunday for a year using the
// anonymous Gregorian computus.
func easterSunday(year int) Date {
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
	day := (h+l-7*m+114)%31 + 1
	return NewDate(year, time.Month(month), day)
}

// marketHolidays returns the nominal (unobserved) holiday dates of a year.
func marketHolidays(year int) []Date {
	return []Date{
		NewDate(year, time.January, 1),                      // New Year's Day
		nthWeekday(year, time.January, time.Monday, 3),      // MLK Day
		nthWeekday(year, time.February, time.Monday, 3),     // Presidents Day
		easterSunday(year).Add(-2),                          // Good Friday
		lastWeekday(year, time.May, time.Monday),            // Memorial Day
		NewDate(year, time.June, 19),                        // Juneteenth
		NewDate(year, time.July, 4),                         // Independence Day
		nthWeekday(year, time.September, time.Monday, 1),    // Labor Day
		nthWeekday(year, time.November, time.Thursday, 4),   // Thanksgiving
		NewDate(year, time.December, 25),                    // Christmas
	}
}

// observed shifts a holiday landing on a weekend to its observed date.
func observed(d Date) Date {
	switch d.Weekday() {
	case time.Saturday:
		return d.Add(-1)
	case time.Sunday:
		return d.Add(1)
	}
	return d
}

// observedHolidays returns the set of observed holiday dates that fall within
// a given year. Observation can cross the year boundary: New Year's Day on a
// Saturday is observed on December 31 of the prior year.
func observedHolidays(year int) map[Date]bool {
	set := make(map[Date]bool, 11)
	for y := year - 1; y <= year+1; y++ {
		for _, h := range marketHolidays(y) {
			if o := observed(h); o.Year() == year {
				set[o] = true
			}
		}
	}
	return set
}

// IsBusinessDay reports whether d is a tradeable day: not a weekend and not
// an observed market holiday.
func IsBusinessDay(d Date) bool {
	switch d.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	return !observedHolidays(d.Year())[d]
}

// CountBusinessDays returns the number of business days strictly after start,
// up to and including end. It returns 0 when end is on or before start.
func CountBusinessDays(start, end Date) int {
	if !end.After(start) {
		return 0
	}
	count := 0
	holidays := observedHolidays(start.Year())
	year := start.Year()
	for on := start.Add(1); !on.After(end); on = on.Add(1) {
		if y := on.Year(); y != year {
			year = y
			holidays = observedHolidays(year)
		}
		switch on.Weekday() {
		case time.Saturday, time.Sunday:
			continue
		}
		if !holidays[on] {
			count++
		}
	}
	return count
}

// AddBusinessDays advances d one calendar day at a time until n business days
// have been crossed. The starting date itself is never counted; n <= 0
// returns d unchanged.
func AddBusinessDays(d Date, n int) Date {
	if n <= 0 {
		return d
	}
	count := 0
	on := d
	for count < n {
		on = on.Add(1)
		if IsBusinessDay(on) {
			count++
		}
	}
	return on
}
