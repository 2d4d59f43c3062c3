package core

import (
	"time"

	"github.com/AbinashGupta/task-manager/pkg/models"
)

// maxOccurrencesPerTask bounds the expansion walk for a single task. The
// window check already terminates normal walks; this cap guarantees
// termination for degenerate inputs regardless of window size.
const maxOccurrencesPerTask = 1000

// occurrenceIDFormat renders an occurrence timestamp inside a virtual
// instance ID. Millisecond precision matches the persisted date format, so
// repeated expansions of the same window always produce the same IDs.
const occurrenceIDFormat = "2006-01-02T15:04:05.000Z07:00"

// Instance is one entry in an expanded calendar window: either a real stored
// task or a virtual occurrence projected from a recurring parent. Virtual
// instances are never persisted and must not be fed back into the CRUD path.
type Instance struct {
	Task       models.Task
	Virtual    bool
	ParentID   string
	Occurrence time.Time
}

// ID returns the stored task ID for real instances, or a deterministic
// composite of the parent ID and the occurrence timestamp for virtual ones.
func (i Instance) ID() string {
	if !i.Virtual {
		return i.Task.ID
	}
	return i.ParentID + "-" + i.Occurrence.UTC().Format(occurrenceIDFormat)
}

// Expand materializes every task instance visible in the inclusive
// [start, end] window. Each task contributes itself when its due date falls
// inside the window, plus one virtual instance per later recurrence
// occurrence inside the window, stopping at the recurring end date.
//
// Instances are ordered by input task, then chronologically within a task.
// Callers needing a single calendar ordering must sort by due date.
func Expand(tasks []models.Task, start, end time.Time) []Instance {
	var out []Instance

	for _, task := range tasks {
		if task.DueDate != nil {
			due := *task.DueDate
			if !due.Before(start) && !due.After(end) {
				out = append(out, Instance{Task: task})
			}
		}

		if !task.Recurs() {
			continue
		}

		cur := *task.DueDate
		for n := 0; n < maxOccurrencesPerTask; n++ {
			next, ok := NextOccurrence(cur, task.RecurringFrequency)
			if !ok {
				break
			}
			cur = next
			if cur.After(end) {
				break
			}
			if task.RecurringEndDate != nil && cur.After(*task.RecurringEndDate) {
				break
			}
			if cur.Before(start) {
				continue
			}
			out = append(out, virtualInstance(task, cur))
		}
	}

	return out
}

// virtualInstance projects a recurring parent onto a single occurrence.
// The projection shares every field with the parent except the due date.
func virtualInstance(parent models.Task, occurrence time.Time) Instance {
	projected := parent
	due := occurrence
	projected.DueDate = &due
	return Instance{
		Task:       projected,
		Virtual:    true,
		ParentID:   parent.ID,
		Occurrence: occurrence,
	}
}
