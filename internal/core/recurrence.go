// Package core contains the business logic for the task tracker: temporal
// recurrence rules, window expansion, task lifecycle orchestration,
// validation, reminders, and reporting.
package core

import (
	"time"

	"github.com/AbinashGupta/task-manager/pkg/models"
)

// startOfDay returns midnight of the day containing t, in t's location.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns midnight of the Monday of the week containing t.
func StartOfWeek(t time.Time) time.Time {
	days := (int(t.Weekday()) + 6) % 7 // Monday=0 .. Sunday=6
	return startOfDay(t).AddDate(0, 0, -days)
}

// EndOfPeriod returns the last instant of the period containing t for the
// given frequency: end of the calendar day, the Monday-starting week, the
// calendar month, or the calendar year. Period ends are the start of the
// next period minus one millisecond. For FrequencyNone, t is returned
// unchanged.
func EndOfPeriod(t time.Time, freq models.Frequency) time.Time {
	var next time.Time
	switch freq {
	case models.FrequencyDaily:
		next = startOfDay(t).AddDate(0, 0, 1)
	case models.FrequencyWeekly:
		next = StartOfWeek(t).AddDate(0, 0, 7)
	case models.FrequencyMonthly:
		y, m, _ := t.Date()
		next = time.Date(y, m, 1, 0, 0, 0, 0, t.Location()).AddDate(0, 1, 0)
	case models.FrequencyYearly:
		next = time.Date(t.Year()+1, time.January, 1, 0, 0, 0, 0, t.Location())
	default:
		return t
	}
	return next.Add(-time.Millisecond)
}

// NextOccurrence advances t by exactly one calendar unit for the given
// frequency, preserving time-of-day. Month and year arithmetic follows Go's
// AddDate normalization: Jan 31 plus one month rolls into early March.
// The second return value is false for FrequencyNone.
func NextOccurrence(t time.Time, freq models.Frequency) (time.Time, bool) {
	switch freq {
	case models.FrequencyDaily:
		return t.AddDate(0, 0, 1), true
	case models.FrequencyWeekly:
		return t.AddDate(0, 0, 7), true
	case models.FrequencyMonthly:
		return t.AddDate(0, 1, 0), true
	case models.FrequencyYearly:
		return t.AddDate(1, 0, 0), true
	default:
		return time.Time{}, false
	}
}

// NextOccurrenceFromDueDate computes the due date for the task spawned when
// a recurring task is completed: one calendar unit past the completed task's
// due date, snapped to the end of that unit's period. The spawned due date
// is always a period boundary, never an arbitrary instant.
func NextOccurrenceFromDueDate(due time.Time, freq models.Frequency) (time.Time, bool) {
	next, ok := NextOccurrence(due, freq)
	if !ok {
		return time.Time{}, false
	}
	return EndOfPeriod(next, freq), true
}

// InitialRecurringDueDate returns the due date assigned to a newly created
// recurring task that has none: the end of the current period.
func InitialRecurringDueDate(now time.Time, freq models.Frequency) time.Time {
	return EndOfPeriod(now, freq)
}

// CalendarView identifies a calendar window size.
type CalendarView string

const (
	ViewDaily   CalendarView = "daily"
	ViewWeekly  CalendarView = "weekly"
	ViewMonthly CalendarView = "monthly"
)

// WindowFor computes the inclusive [start, end] window for a calendar view
// anchored at the given date.
func WindowFor(view CalendarView, date time.Time) (start, end time.Time) {
	switch view {
	case ViewWeekly:
		start = StartOfWeek(date)
		return start, EndOfPeriod(date, models.FrequencyWeekly)
	case ViewMonthly:
		y, m, _ := date.Date()
		start = time.Date(y, m, 1, 0, 0, 0, 0, date.Location())
		return start, EndOfPeriod(date, models.FrequencyMonthly)
	default:
		return startOfDay(date), EndOfPeriod(date, models.FrequencyDaily)
	}
}
