package core

import (
	"time"

	"github.com/AbinashGupta/task-manager/pkg/models"
)

// Summary aggregates the current state of the task collection.
type Summary struct {
	Total             int
	ByStatus          map[models.TaskStatus]int
	ByPriority        map[models.Priority]int
	Overdue           int
	CompletionRate    float64
	CompletedThisWeek int
}

// Summarize computes status/priority breakdowns, the overdue count, the
// completion rate, and the number of tasks completed since the start of the
// current Monday-based week.
func Summarize(tasks []models.Task, now time.Time) Summary {
	s := Summary{
		ByStatus:   make(map[models.TaskStatus]int, len(models.AllStatuses)),
		ByPriority: make(map[models.Priority]int, 3),
	}
	for _, st := range models.AllStatuses {
		s.ByStatus[st] = 0
	}
	for _, p := range []models.Priority{models.PriorityHigh, models.PriorityMedium, models.PriorityLow} {
		s.ByPriority[p] = 0
	}

	weekStart := StartOfWeek(now)
	for _, t := range tasks {
		s.Total++
		s.ByStatus[t.Status]++
		s.ByPriority[t.Priority]++
		if IsOverdue(t, now) {
			s.Overdue++
		}
		if t.Status == models.StatusDone && !t.UpdatedAt.Before(weekStart) {
			s.CompletedThisWeek++
		}
	}

	if s.Total > 0 {
		s.CompletionRate = float64(s.ByStatus[models.StatusDone]) / float64(s.Total)
	}
	return s
}

// DayCount is the number of tasks completed on a single calendar day.
type DayCount struct {
	Date  string // YYYY-MM-DD
	Count int
}

// Productivity reports completion throughput over the trailing week.
type Productivity struct {
	CompletedPerDay        []DayCount
	AvgCompletionTimeHours float64
}

// ProductivityReport computes per-day completion counts for the last seven
// days (oldest first) and the average created-to-completed time in hours
// across all done tasks.
func ProductivityReport(tasks []models.Task, now time.Time) Productivity {
	var done []models.Task
	for _, t := range tasks {
		if t.Status == models.StatusDone {
			done = append(done, t)
		}
	}

	perDay := make([]DayCount, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i).Format("2006-01-02")
		count := 0
		for _, t := range done {
			if t.UpdatedAt.In(now.Location()).Format("2006-01-02") == day {
				count++
			}
		}
		perDay = append(perDay, DayCount{Date: day, Count: count})
	}

	var avg float64
	if len(done) > 0 {
		var total float64
		for _, t := range done {
			total += t.UpdatedAt.Sub(t.CreatedAt).Hours()
		}
		avg = total / float64(len(done))
	}

	return Productivity{CompletedPerDay: perDay, AvgCompletionTimeHours: avg}
}
