// Package timeutil holds the calendar arithmetic shared by the stats and
// history views.
package timeutil

import "time"

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns midnight of the most recent Sunday (weekday 0) on or
// before t.
func StartOfWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// StartOfMonth returns midnight of the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day, judged in
// b's location.
func SameDay(a, b time.Time) bool {
	a = a.In(b.Location())
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// LastWeek returns the instant seven days before now.
func LastWeek(now time.Time) time.Time {
	return now.Add(-7 * 24 * time.Hour)
}

// LastMonth returns the same wall clock time one calendar month before now.
func LastMonth(now time.Time) time.Time {
	return now.AddDate(0, -1, 0)
}
