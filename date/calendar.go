package date

import "time"

// Calendar knows which days are business days: weekdays that are not
// holidays. Its zero value only closes on weekends.
type Calendar struct {
	holidays map[Date]struct{}
}

// NewCalendar returns a calendar closed on weekends and on holidays.
func NewCalendar(holidays ...Date) Calendar {
	c := Calendar{holidays: make(map[Date]struct{}, len(holidays))}
	for _, h := range holidays {
		c.holidays[h] = struct{}{}
	}
	return c
}

// IsBusinessDay checks weekends and holidays.
func (c Calendar) IsBusinessDay(d Date) bool {
	if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
		return false
	}
	_, holiday := c.holidays[d]
	return !holiday
}

// Preceding returns d if it is a business day, or the closest business day before it.
func (c Calendar) Preceding(d Date) Date {
	for !c.IsBusinessDay(d) {
		d = d.Add(-1)
	}
	return d
}

// ToDate returns the range over which the performance of period p up to d is
// measured: from the last business day before the period starts to the last
// business day on or before d.
func (c Calendar) ToDate(d Date, p Period) Range {
	return Range{From: c.Preceding(d.StartOf(p).Add(-1)), To: c.Preceding(d)}
}
