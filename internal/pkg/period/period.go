// Package period computes the date ranges used by attendance summaries.
package period

import "time"

// WeekRange returns the Monday and Friday of the work week containing t.
func WeekRange(t time.Time) (start, end time.Time) {
	day := int(t.Weekday())
	// Sunday belongs to the week that ended the day before.
	diff := -(day - 1)
	if day == 0 {
		diff = -6
	}
	monday := truncate(t).AddDate(0, 0, diff)
	return monday, monday.AddDate(0, 0, 4)
}

// MonthRange returns the first and last day of the calendar month containing t.
func MonthRange(t time.Time) (start, end time.Time) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1)
	return first, last
}

// IsWeekend reports whether t falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	day := t.Weekday()
	return day == time.Saturday || day == time.Sunday
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
