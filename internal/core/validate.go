package core

import (
	"fmt"
	"unicode/utf8"

	"github.com/AbinashGupta/task-manager/pkg/models"
)

// Field length limits, counted in code points.
const (
	maxTitleLen       = 200
	maxDescriptionLen = 2000
	maxNoteLen        = 100
)

var validStatuses = map[models.TaskStatus]bool{
	models.StatusTodo:       true,
	models.StatusInProgress: true,
	models.StatusBlocked:    true,
	models.StatusDone:       true,
}

var validPriorities = map[models.Priority]bool{
	models.PriorityLow:    true,
	models.PriorityMedium: true,
	models.PriorityHigh:   true,
}

var validFrequencies = map[models.Frequency]bool{
	models.FrequencyNone:    true,
	models.FrequencyDaily:   true,
	models.FrequencyWeekly:  true,
	models.FrequencyMonthly: true,
	models.FrequencyYearly:  true,
}

// validateCreate checks a fully-defaulted create input. A non-nil return is
// always a *ValidationError.
func validateCreate(in CreateTaskInput) error {
	var issues []string

	if in.Title == "" {
		issues = append(issues, "title must not be empty")
	}
	issues = appendLengthIssues(issues, in.Title, in.Description, in.Note)

	if !validStatuses[in.Status] {
		issues = append(issues, fmt.Sprintf("status %q is invalid, must be one of: todo, in-progress, blocked, done", in.Status))
	}
	if !validPriorities[in.Priority] {
		issues = append(issues, fmt.Sprintf("priority %q is invalid, must be one of: low, medium, high", in.Priority))
	}
	if !validFrequencies[in.RecurringFrequency] {
		issues = append(issues, fmt.Sprintf("recurring frequency %q is invalid, must be one of: none, daily, weekly, monthly, yearly", in.RecurringFrequency))
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

// validatePatch checks only the fields a patch actually sets.
func validatePatch(p TaskPatch) error {
	var issues []string

	if p.Title != nil {
		if *p.Title == "" {
			issues = append(issues, "title must not be empty")
		}
		if utf8.RuneCountInString(*p.Title) > maxTitleLen {
			issues = append(issues, fmt.Sprintf("title exceeds %d characters", maxTitleLen))
		}
	}
	if p.Description != nil && utf8.RuneCountInString(*p.Description) > maxDescriptionLen {
		issues = append(issues, fmt.Sprintf("description exceeds %d characters", maxDescriptionLen))
	}
	if p.Note != nil && utf8.RuneCountInString(*p.Note) > maxNoteLen {
		issues = append(issues, fmt.Sprintf("note exceeds %d characters", maxNoteLen))
	}
	if p.Status != nil && !validStatuses[*p.Status] {
		issues = append(issues, fmt.Sprintf("status %q is invalid, must be one of: todo, in-progress, blocked, done", *p.Status))
	}
	if p.Priority != nil && !validPriorities[*p.Priority] {
		issues = append(issues, fmt.Sprintf("priority %q is invalid, must be one of: low, medium, high", *p.Priority))
	}
	if p.RecurringFrequency != nil && !validFrequencies[*p.RecurringFrequency] {
		issues = append(issues, fmt.Sprintf("recurring frequency %q is invalid, must be one of: none, daily, weekly, monthly, yearly", *p.RecurringFrequency))
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

func appendLengthIssues(issues []string, title, description, note string) []string {
	if utf8.RuneCountInString(title) > maxTitleLen {
		issues = append(issues, fmt.Sprintf("title exceeds %d characters", maxTitleLen))
	}
	if utf8.RuneCountInString(description) > maxDescriptionLen {
		issues = append(issues, fmt.Sprintf("description exceeds %d characters", maxDescriptionLen))
	}
	if utf8.RuneCountInString(note) > maxNoteLen {
		issues = append(issues, fmt.Sprintf("note exceeds %d characters", maxNoteLen))
	}
	return issues
}
