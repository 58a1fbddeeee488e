// Package timeutil provides the pure date arithmetic the journal is built on.
package timeutil

import "time"

const layoutISO = "2006-01-02"

// ISODate renders the local calendar day of t as "YYYY-MM-DD". The local
// fields are used on purpose: converting to UTC first shifts the day for
// users west of UTC in the evening.
func ISODate(t time.Time) string {
	return t.Format(layoutISO)
}

// ParseISODate parses "YYYY-MM-DD" into a local midnight time.
func ParseISODate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutISO, s, time.Local)
}

// AddDays returns t shifted by n calendar days.
func AddDays(t time.Time, n int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()+n, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// AddMonths returns t shifted by n calendar months. Overflowing days
// normalize forward (Jan 31 + 1 month lands in early March); callers that
// care about recurrence accept this.
func AddMonths(t time.Time, n int) time.Time {
	return time.Date(t.Year(), time.Month(int(t.Month())+n), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// StartOfWeek returns the first day of the week containing t.
func StartOfWeek(t time.Time, startsMonday bool) time.Time {
	day := int(t.Weekday()) // Sunday == 0
	diff := -day
	if startsMonday {
		if day == 0 {
			diff = -6
		} else {
			diff = 1 - day
		}
	}
	return AddDays(midnight(t), diff)
}

// WeekDays returns the seven days of the week containing t.
func WeekDays(t time.Time, startsMonday bool) []time.Time {
	start := StartOfWeek(t, startsMonday)
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = AddDays(start, i)
	}
	return days
}

// MonthDays returns the days of t's month laid out for a fixed seven-column
// grid. Leading padding cells are zero times.
func MonthDays(t time.Time, startsMonday bool) []time.Time {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	last := AddDays(time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, t.Location()), -1)

	padding := int(first.Weekday())
	if startsMonday {
		if padding == 0 {
			padding = 6
		} else {
			padding--
		}
	}

	days := make([]time.Time, 0, padding+last.Day())
	for i := 0; i < padding; i++ {
		days = append(days, time.Time{})
	}
	for d := 1; d <= last.Day(); d++ {
		days = append(days, time.Date(t.Year(), t.Month(), d, 0, 0, 0, 0, t.Location()))
	}
	return days
}

// WeekNumber returns the ISO-8601 week number of t.
func WeekNumber(t time.Time) int {
	_, week := t.ISOWeek()
	return week
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
