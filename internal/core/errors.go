package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates an operation referenced a task ID that is not in the
// store. Callers can map it to a 404-equivalent with errors.Is.
var ErrNotFound = errors.New("task not found")

// ValidationError reports malformed or out-of-range input fields. It is
// always returned before any store mutation is attempted.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(e.Issues, "\n  - "))
}

// ContinuationError reports that spawning the next occurrence of a completed
// recurring task failed. The triggering status update has already been
// committed when this error is produced; it must be surfaced to observers
// without being conflated with the primary update's result.
type ContinuationError struct {
	TaskID string
	Err    error
}

func (e *ContinuationError) Error() string {
	return fmt.Sprintf("spawning next occurrence for task %s: %v", e.TaskID, e.Err)
}

func (e *ContinuationError) Unwrap() error {
	return e.Err
}
