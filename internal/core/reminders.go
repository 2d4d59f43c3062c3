package core

import (
	"time"

	"github.com/AbinashGupta/task-manager/pkg/models"
)

// DefaultDueSoonHours is the look-ahead used for due-soon reminders when no
// other window is configured.
const DefaultDueSoonHours = 24

// IsOverdue reports whether the task's due date has passed. Done tasks and
// tasks without a due date are never overdue.
func IsOverdue(task models.Task, now time.Time) bool {
	if task.DueDate == nil || task.Status == models.StatusDone {
		return false
	}
	return task.DueDate.Before(now)
}

// IsDueToday reports whether the task is due on the same calendar day as now.
// Done tasks are excluded.
func IsDueToday(task models.Task, now time.Time) bool {
	if task.DueDate == nil || task.Status == models.StatusDone {
		return false
	}
	due := task.DueDate.In(now.Location())
	return due.Year() == now.Year() && due.YearDay() == now.YearDay()
}

// IsDueSoon reports whether the task is due after now but within the next
// hoursAhead hours. Done tasks are excluded.
func IsDueSoon(task models.Task, now time.Time, hoursAhead int) bool {
	if task.DueDate == nil || task.Status == models.StatusDone {
		return false
	}
	cutoff := now.Add(time.Duration(hoursAhead) * time.Hour)
	return task.DueDate.After(now) && !task.DueDate.After(cutoff)
}

// ReminderCounts aggregates reminder buckets over a task collection.
type ReminderCounts struct {
	Overdue  int
	DueToday int
	DueSoon  int
}

// CountReminders tallies overdue, due-today, and due-soon tasks.
func CountReminders(tasks []models.Task, now time.Time, dueSoonHours int) ReminderCounts {
	var counts ReminderCounts
	for _, t := range tasks {
		if IsOverdue(t, now) {
			counts.Overdue++
		}
		if IsDueToday(t, now) {
			counts.DueToday++
		}
		if IsDueSoon(t, now, dueSoonHours) {
			counts.DueSoon++
		}
	}
	return counts
}
