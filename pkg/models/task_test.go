package models

import (
	"testing"
	"time"
)

func TestNextCaretStatus(t *testing.T) {
	tests := []struct {
		in   TaskStatus
		want TaskStatus
	}{
		{StatusTodo, StatusInProgress},
		{StatusInProgress, StatusDone},
		{StatusDone, ""},
		{StatusBlocked, ""},
	}
	for _, tt := range tests {
		if got := NextCaretStatus(tt.in); got != tt.want {
			t.Errorf("NextCaretStatus(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPreviousCaretStatus(t *testing.T) {
	tests := []struct {
		in   TaskStatus
		want TaskStatus
	}{
		{StatusDone, StatusInProgress},
		{StatusInProgress, StatusTodo},
		{StatusTodo, ""},
		{StatusBlocked, ""},
	}
	for _, tt := range tests {
		if got := PreviousCaretStatus(tt.in); got != tt.want {
			t.Errorf("PreviousCaretStatus(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRecurs(t *testing.T) {
	due := time.Now()

	tests := []struct {
		name string
		task Task
		want bool
	}{
		{"frequency and due date", Task{RecurringFrequency: FrequencyDaily, DueDate: &due}, true},
		{"frequency without due date", Task{RecurringFrequency: FrequencyDaily}, false},
		{"due date without frequency", Task{RecurringFrequency: FrequencyNone, DueDate: &due}, false},
		{"neither", Task{RecurringFrequency: FrequencyNone}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.task.Recurs(); got != tt.want {
				t.Errorf("Recurs() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColumnLabelsCoverAllStatuses(t *testing.T) {
	for _, st := range AllStatuses {
		if _, ok := ColumnLabels[st]; !ok {
			t.Errorf("no column label for status %s", st)
		}
	}
}
