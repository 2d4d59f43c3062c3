package core

import (
	"testing"

	"github.com/AbinashGupta/task-manager/pkg/models"
)

func taskDueAt(t *testing.T, due string, status models.TaskStatus) models.Task {
	t.Helper()
	dueAt := mustParse(t, due)
	return models.Task{ID: "t", Title: "t", Status: status, DueDate: &dueAt}
}

func TestIsOverdue(t *testing.T) {
	now := mustParse(t, "2026-02-18T12:00:00Z")

	if !IsOverdue(taskDueAt(t, "2026-02-17T09:00:00Z", models.StatusTodo), now) {
		t.Error("past due task should be overdue")
	}
	if IsOverdue(taskDueAt(t, "2026-02-19T09:00:00Z", models.StatusTodo), now) {
		t.Error("future task should not be overdue")
	}
	if IsOverdue(taskDueAt(t, "2026-02-17T09:00:00Z", models.StatusDone), now) {
		t.Error("done task should never be overdue")
	}
	if IsOverdue(models.Task{Status: models.StatusTodo}, now) {
		t.Error("task without due date should never be overdue")
	}
}

func TestIsDueToday(t *testing.T) {
	now := mustParse(t, "2026-02-18T12:00:00Z")

	if !IsDueToday(taskDueAt(t, "2026-02-18T23:00:00Z", models.StatusTodo), now) {
		t.Error("task due later today should count")
	}
	if !IsDueToday(taskDueAt(t, "2026-02-18T01:00:00Z", models.StatusTodo), now) {
		t.Error("task due earlier today should count")
	}
	if IsDueToday(taskDueAt(t, "2026-02-19T01:00:00Z", models.StatusTodo), now) {
		t.Error("task due tomorrow should not count")
	}
	if IsDueToday(taskDueAt(t, "2026-02-18T23:00:00Z", models.StatusDone), now) {
		t.Error("done task should not count")
	}
}

func TestIsDueSoon(t *testing.T) {
	now := mustParse(t, "2026-02-18T12:00:00Z")

	if !IsDueSoon(taskDueAt(t, "2026-02-19T09:00:00Z", models.StatusTodo), now, 24) {
		t.Error("task due within the horizon should count")
	}
	if IsDueSoon(taskDueAt(t, "2026-02-20T09:00:00Z", models.StatusTodo), now, 24) {
		t.Error("task due past the horizon should not count")
	}
	if IsDueSoon(taskDueAt(t, "2026-02-17T09:00:00Z", models.StatusTodo), now, 24) {
		t.Error("overdue task is not due soon")
	}
}

func TestCountReminders(t *testing.T) {
	now := mustParse(t, "2026-02-18T12:00:00Z")
	tasks := []models.Task{
		taskDueAt(t, "2026-02-17T09:00:00Z", models.StatusTodo), // overdue
		taskDueAt(t, "2026-02-18T20:00:00Z", models.StatusTodo), // today + soon
		taskDueAt(t, "2026-02-19T09:00:00Z", models.StatusTodo), // soon
		taskDueAt(t, "2026-02-25T09:00:00Z", models.StatusTodo), // neither
		taskDueAt(t, "2026-02-17T09:00:00Z", models.StatusDone), // done, ignored
	}

	counts := CountReminders(tasks, now, 24)
	if counts.Overdue != 1 {
		t.Errorf("Overdue = %d, want 1", counts.Overdue)
	}
	if counts.DueToday != 1 {
		t.Errorf("DueToday = %d, want 1", counts.DueToday)
	}
	if counts.DueSoon != 2 {
		t.Errorf("DueSoon = %d, want 2", counts.DueSoon)
	}
}
