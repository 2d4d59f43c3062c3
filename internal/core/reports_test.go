package core

import (
	"testing"

	"github.com/AbinashGupta/task-manager/pkg/models"
)

func TestSummarize(t *testing.T) {
	now := mustParse(t, "2026-02-18T12:00:00Z") // Wednesday; week started Mon Feb 16
	overdueDue := mustParse(t, "2026-02-10T00:00:00Z")

	tasks := []models.Task{
		{Status: models.StatusTodo, Priority: models.PriorityHigh, DueDate: &overdueDue},
		{Status: models.StatusInProgress, Priority: models.PriorityMedium},
		{Status: models.StatusDone, Priority: models.PriorityLow, UpdatedAt: mustParse(t, "2026-02-17T09:00:00Z")},
		{Status: models.StatusDone, Priority: models.PriorityLow, UpdatedAt: mustParse(t, "2026-02-13T09:00:00Z")},
	}

	s := Summarize(tasks, now)

	if s.Total != 4 {
		t.Errorf("Total = %d, want 4", s.Total)
	}
	if s.ByStatus[models.StatusDone] != 2 || s.ByStatus[models.StatusBlocked] != 0 {
		t.Errorf("ByStatus = %v", s.ByStatus)
	}
	if s.ByPriority[models.PriorityLow] != 2 {
		t.Errorf("ByPriority = %v", s.ByPriority)
	}
	if s.Overdue != 1 {
		t.Errorf("Overdue = %d, want 1", s.Overdue)
	}
	if s.CompletionRate != 0.5 {
		t.Errorf("CompletionRate = %f, want 0.5", s.CompletionRate)
	}
	// Only the Feb 17 completion falls in the current Monday-based week.
	if s.CompletedThisWeek != 1 {
		t.Errorf("CompletedThisWeek = %d, want 1", s.CompletedThisWeek)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, mustParse(t, "2026-02-18T12:00:00Z"))
	if s.Total != 0 || s.CompletionRate != 0 {
		t.Errorf("empty summary = %+v", s)
	}
	if len(s.ByStatus) != 4 {
		t.Errorf("all status buckets must be present, got %v", s.ByStatus)
	}
}

func TestProductivityReport(t *testing.T) {
	now := mustParse(t, "2026-02-18T12:00:00Z")

	tasks := []models.Task{
		{
			Status:    models.StatusDone,
			CreatedAt: mustParse(t, "2026-02-16T09:00:00Z"),
			UpdatedAt: mustParse(t, "2026-02-17T09:00:00Z"), // 24h to complete
		},
		{
			Status:    models.StatusDone,
			CreatedAt: mustParse(t, "2026-02-17T09:00:00Z"),
			UpdatedAt: mustParse(t, "2026-02-17T21:00:00Z"), // 12h to complete
		},
		{Status: models.StatusTodo, CreatedAt: now, UpdatedAt: now},
	}

	p := ProductivityReport(tasks, now)

	if len(p.CompletedPerDay) != 7 {
		t.Fatalf("expected 7 day buckets, got %d", len(p.CompletedPerDay))
	}
	if p.CompletedPerDay[0].Date != "2026-02-12" {
		t.Errorf("first bucket = %s, want oldest day 2026-02-12", p.CompletedPerDay[0].Date)
	}
	if p.CompletedPerDay[6].Date != "2026-02-18" {
		t.Errorf("last bucket = %s, want 2026-02-18", p.CompletedPerDay[6].Date)
	}

	var feb17 int
	for _, dc := range p.CompletedPerDay {
		if dc.Date == "2026-02-17" {
			feb17 = dc.Count
		}
	}
	if feb17 != 2 {
		t.Errorf("completions on 2026-02-17 = %d, want 2", feb17)
	}

	if p.AvgCompletionTimeHours != 18 {
		t.Errorf("AvgCompletionTimeHours = %f, want 18", p.AvgCompletionTimeHours)
	}
}
