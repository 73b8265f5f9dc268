package domain

import "time"

// NormalizeDate strips time-of-day and zone, keeping the calendar day of t
// as seen in t's own location. The result is midnight UTC.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same calendar day
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// AddDays returns the calendar day n days after date
func AddDays(date time.Time, n int) time.Time {
	return NormalizeDate(date).AddDate(0, 0, n)
}

// StartOfWeek returns the first day of the week containing date
func StartOfWeek(date time.Time, weekStart time.Weekday) time.Time {
	day := NormalizeDate(date)
	offset := (int(day.Weekday()) - int(weekStart) + DaysInWeek) % DaysInWeek
	return day.AddDate(0, 0, -offset)
}

// WeekDates returns seven consecutive calendar days starting at start
func WeekDates(start time.Time) [DaysInWeek]time.Time {
	var week [DaysInWeek]time.Time
	for i := range week {
		week[i] = AddDays(start, i)
	}
	return week
}
