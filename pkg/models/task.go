package models

import "time"

// TaskStatus represents the current lifecycle state of a task.
type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in-progress"
	StatusBlocked    TaskStatus = "blocked"
	StatusDone       TaskStatus = "done"
)

// Priority represents the urgency level of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Frequency represents how often a recurring task repeats.
type Frequency string

const (
	FrequencyNone    Frequency = "none"
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// Task represents a single tracked task. It is the only persisted entity.
// Optional text fields use the empty string as the absent sentinel;
// optional timestamps are nil pointers.
type Task struct {
	ID                 string     `yaml:"id"`
	Title              string     `yaml:"title"`
	Description        string     `yaml:"description"`
	Note               string     `yaml:"note"`
	Status             TaskStatus `yaml:"status"`
	Priority           Priority   `yaml:"priority"`
	DueDate            *time.Time `yaml:"due_date,omitempty"`
	CreatedAt          time.Time  `yaml:"created_at"`
	UpdatedAt          time.Time  `yaml:"updated_at"`
	RecurringFrequency Frequency  `yaml:"recurring_frequency"`
	RecurringEndDate   *time.Time `yaml:"recurring_end_date,omitempty"`
	Tags               []string   `yaml:"tags"`
}

// Recurs reports whether recurrence is in effect for this task.
// A recurring frequency without a due date is stored but inert.
func (t Task) Recurs() bool {
	return t.RecurringFrequency != FrequencyNone && t.DueDate != nil
}

// AllStatuses lists every status in kanban column order.
var AllStatuses = []TaskStatus{StatusTodo, StatusInProgress, StatusBlocked, StatusDone}

// caretStatuses is the linear sequence used by next/previous navigation.
// Blocked is deliberately absent: it is only reachable via a direct edit.
var caretStatuses = []TaskStatus{StatusTodo, StatusInProgress, StatusDone}

// NextCaretStatus returns the status after s in caret navigation order,
// or "" if s is already last or not navigable.
func NextCaretStatus(s TaskStatus) TaskStatus {
	for i, c := range caretStatuses {
		if c == s && i < len(caretStatuses)-1 {
			return caretStatuses[i+1]
		}
	}
	return ""
}

// PreviousCaretStatus returns the status before s in caret navigation order,
// or "" if s is already first or not navigable.
func PreviousCaretStatus(s TaskStatus) TaskStatus {
	for i, c := range caretStatuses {
		if c == s && i > 0 {
			return caretStatuses[i-1]
		}
	}
	return ""
}

// ColumnLabels maps statuses to their human-readable kanban column names.
var ColumnLabels = map[TaskStatus]string{
	StatusTodo:       "To Do",
	StatusInProgress: "In Progress",
	StatusBlocked:    "Blocked",
	StatusDone:       "Done",
}
