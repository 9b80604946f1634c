// Package dates holds calendar-day helpers. Loan, due, return and fine dates
// are whole days pinned to UTC midnight.
package dates

import "time"

const Layout = "2006-01-02"

// Day truncates t to midnight UTC of its UTC calendar day.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole calendar days from a to b.
// Negative when b is before a.
func DaysBetween(a, b time.Time) int {
	return int(Day(b).Sub(Day(a)).Hours() / 24)
}

// Parse reads a YYYY-MM-DD string as a UTC day.
func Parse(s string) (time.Time, error) {
	return time.ParseInLocation(Layout, s, time.UTC)
}
