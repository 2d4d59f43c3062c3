package observability

import (
	"fmt"
	"time"

	"github.com/AbinashGupta/task-manager/internal/core"
	"github.com/AbinashGupta/task-manager/pkg/models"
)

// AlertSeverity ranks how urgent an alert is.
type AlertSeverity string

const (
	SeverityHigh   AlertSeverity = "high"
	SeverityMedium AlertSeverity = "medium"
	SeverityLow    AlertSeverity = "low"
)

// Alert is one triggered reminder condition over the task collection.
type Alert struct {
	ID          string
	Condition   string
	Severity    AlertSeverity
	Message     string
	TriggeredAt time.Time
}

// TaskLister is the subset of the storage layer the alert engine needs.
type TaskLister interface {
	List() ([]models.Task, error)
}

// AlertEngine evaluates reminder conditions against the current tasks.
type AlertEngine interface {
	Evaluate() ([]Alert, error)
}

type reminderAlertEngine struct {
	tasks        TaskLister
	dueSoonHours int
}

// NewAlertEngine creates an AlertEngine that flags overdue, due-today, and
// due-soon tasks.
func NewAlertEngine(tasks TaskLister, dueSoonHours int) AlertEngine {
	if dueSoonHours <= 0 {
		dueSoonHours = core.DefaultDueSoonHours
	}
	return &reminderAlertEngine{tasks: tasks, dueSoonHours: dueSoonHours}
}

// Evaluate returns one alert per triggered condition, most severe first.
func (e *reminderAlertEngine) Evaluate() ([]Alert, error) {
	tasks, err := e.tasks.List()
	if err != nil {
		return nil, fmt.Errorf("evaluating reminder alerts: %w", err)
	}

	now := time.Now().UTC()
	counts := core.CountReminders(tasks, now, e.dueSoonHours)

	var alerts []Alert
	if counts.Overdue > 0 {
		alerts = append(alerts, Alert{
			ID:          "overdue",
			Condition:   "overdue_tasks",
			Severity:    SeverityHigh,
			Message:     fmt.Sprintf("%d task(s) overdue", counts.Overdue),
			TriggeredAt: now,
		})
	}
	if counts.DueToday > 0 {
		alerts = append(alerts, Alert{
			ID:          "due_today",
			Condition:   "due_today_tasks",
			Severity:    SeverityMedium,
			Message:     fmt.Sprintf("%d task(s) due today", counts.DueToday),
			TriggeredAt: now,
		})
	}
	if counts.DueSoon > 0 {
		alerts = append(alerts, Alert{
			ID:          "due_soon",
			Condition:   "due_soon_tasks",
			Severity:    SeverityLow,
			Message:     fmt.Sprintf("%d task(s) due within %dh", counts.DueSoon, e.dueSoonHours),
			TriggeredAt: now,
		})
	}
	return alerts, nil
}
