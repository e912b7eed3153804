package date

import (
	"testing"
	"time"
)

func TestCalendar_IsBusinessDay(t *testing.T) {
	cal := NewCalendar(New(2024, time.December, 25))
	testCases := []struct {
		name string
		in   Date
		want bool
	}{
		{"Tuesday", New(2024, time.December, 24), true},
		{"Holiday", New(2024, time.December, 25), false},
		{"Saturday", New(2024, time.December, 28), false},
		{"Sunday", New(2024, time.December, 29), false},
		{"Monday", New(2024, time.December, 30), true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := cal.IsBusinessDay(tc.in); got != tc.want {
				t.Errorf("IsBusinessDay(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
	var zero Calendar
	if !zero.IsBusinessDay(New(2024, time.December, 25)) {
		t.Errorf("zero Calendar.IsBusinessDay(2024-12-25) = false, want true")
	}
}

func TestCalendar_ToDate(t *testing.T) {
	cal := NewCalendar(New(2024, time.December, 31))
	testCases := []struct {
		name   string
		on     Date
		period Period
		want   Range
	}{
		// 2025-06-01 is a Sunday, May 30th is the Friday before.
		{"month to date", New(2025, time.June, 18), Monthly, Range{New(2025, time.May, 30), New(2025, time.June, 18)}},
		{"on a weekend", New(2025, time.June, 22), Monthly, Range{New(2025, time.May, 30), New(2025, time.June, 20)}},
		{"year to date skips the holiday", New(2025, time.March, 3), Yearly, Range{New(2024, time.December, 30), New(2025, time.March, 3)}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := cal.ToDate(tc.on, tc.period); got != tc.want {
				t.Errorf("ToDate(%v, %v) = %v, want %v", tc.on, tc.period, got, tc.want)
			}
		})
	}
}
