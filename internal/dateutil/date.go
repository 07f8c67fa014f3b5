// Package dateutil provides local-calendar helpers for due dates.
//
// Due dates are plain YYYY-MM-DD strings with wall-clock semantics: no
// time of day, no timezone offset. Because the format is zero-padded
// and date-ordered, lexicographic string comparison is date comparison.
// Every date written to storage and every date compared against "today"
// must go through Format so the two stay in the same calendar.
//
// Every predicate takes the clock as an argument; callers that want
// wall time pass time.Now and tests pass a frozen value.
package dateutil

import "time"

const layout = "2006-01-02"

// Format renders t's local calendar date as YYYY-MM-DD.
func Format(t time.Time) string {
	return t.Format(layout)
}

// AddDays returns the local calendar date n days after t. n may be
// negative. Arithmetic is calendar-based, so day boundaries follow the
// user's wall clock across DST changes.
func AddDays(t time.Time, n int) string {
	return Format(t.AddDate(0, 0, n))
}

// IsToday reports whether d is set and falls on now's calendar day.
func IsToday(d *string, now time.Time) bool {
	return d != nil && *d == Format(now)
}

// IsOverdue reports whether d is set and falls strictly before now's
// calendar day.
func IsOverdue(d *string, now time.Time) bool {
	return d != nil && *d < Format(now)
}

// DueSoon reports whether d is set and falls within [today, today+2].
// The board uses this to highlight cards that need attention but are
// not overdue yet.
func DueSoon(d *string, now time.Time) bool {
	return d != nil && *d >= Format(now) && *d <= AddDays(now, 2)
}
