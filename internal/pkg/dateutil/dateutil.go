// Package dateutil is the single home for calendar-day arithmetic shared by
// the attendance and leave services. All day counts use the
// inclusive-both-ends convention: end - start + 1.
package dateutil

import "time"

// DateOf truncates a timestamp to its calendar date in the timestamp's
// location.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// InclusiveDays returns the number of calendar days between start and end,
// counting both endpoints. Returns 0 if end is before start.
func InclusiveDays(start, end time.Time) int {
	start = DateOf(start)
	end = DateOf(end)
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// Covers reports whether date falls inside [start, end], endpoints included.
func Covers(start, end, date time.Time) bool {
	start = DateOf(start)
	end = DateOf(end)
	date = DateOf(date)
	return !date.Before(start) && !date.After(end)
}

// OverlapDays returns the number of calendar days the span [aStart, aEnd]
// shares with [bStart, bEnd], endpoints included on both spans.
func OverlapDays(aStart, aEnd, bStart, bEnd time.Time) int {
	start := DateOf(aStart)
	if DateOf(bStart).After(start) {
		start = DateOf(bStart)
	}
	end := DateOf(aEnd)
	if DateOf(bEnd).Before(end) {
		end = DateOf(bEnd)
	}
	return InclusiveDays(start, end)
}

// MonthSpan returns the first and last day of the month containing t.
func MonthSpan(t time.Time) (time.Time, time.Time) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1)
	return first, last
}

// IsWeekend reports whether t falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// WorkingDaysInMonth counts the weekdays in the month containing t.
func WorkingDaysInMonth(t time.Time) int {
	first, last := MonthSpan(t)
	count := 0
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		if !IsWeekend(d) {
			count++
		}
	}
	return count
}
