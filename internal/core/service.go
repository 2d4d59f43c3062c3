package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/AbinashGupta/task-manager/pkg/models"
	"github.com/google/uuid"
)

// TaskStore is the subset of the storage layer that TaskService needs.
// Defining it here keeps core independent of the storage package; the app
// wiring adapts the concrete store and translates its not-found errors
// into ErrNotFound.
type TaskStore interface {
	List() ([]models.Task, error)
	Get(id string) (models.Task, error)
	Create(task models.Task) (models.Task, error)
	Update(task models.Task) (models.Task, error)
	Delete(id string) error
}

// EventLogger records domain events for observability. Implementations must
// tolerate best-effort use: event logging failures never fail an operation.
type EventLogger interface {
	LogEvent(eventType string, data map[string]any) error
}

// CreateTaskInput carries the caller-supplied fields for a new task.
// Zero values for Status, Priority, and RecurringFrequency default to
// todo, medium, and none respectively.
type CreateTaskInput struct {
	Title              string
	Description        string
	Note               string
	Status             models.TaskStatus
	Priority           models.Priority
	DueDate            *time.Time
	RecurringFrequency models.Frequency
	RecurringEndDate   *time.Time
	Tags               []string
}

// TaskPatch is a partial update: nil fields are left untouched.
type TaskPatch struct {
	Title              *string
	Description        *string
	Note               *string
	Status             *models.TaskStatus
	Priority           *models.Priority
	DueDate            **time.Time
	RecurringFrequency *models.Frequency
	RecurringEndDate   **time.Time
	Tags               *[]string
}

// ListFilter narrows ListTasks results. Zero-valued fields are ignored.
// Tag matching is case-insensitive with any-of semantics.
type ListFilter struct {
	Status    models.TaskStatus
	Priority  models.Priority
	DueBefore *time.Time
	DueAfter  *time.Time
	Tags      []string
}

// TaskService defines the task lifecycle operations consumed by the CLI and
// MCP layers.
type TaskService interface {
	ListTasks(filter ListFilter) ([]models.Task, error)
	GetTask(id string) (models.Task, error)
	CreateTask(in CreateTaskInput) (models.Task, error)
	UpdateTask(id string, patch TaskPatch) (models.Task, error)
	DeleteTask(id string) error
	MoveTask(id string, status models.TaskStatus) (models.Task, error)
	KanbanColumns() (map[models.TaskStatus][]models.Task, error)
	ExpandWindow(start, end time.Time) ([]Instance, error)
}

// taskService implements TaskService over a TaskStore.
type taskService struct {
	store  TaskStore
	events EventLogger
}

// NewTaskService creates a TaskService. events may be nil to disable
// event logging.
func NewTaskService(store TaskStore, events EventLogger) TaskService {
	return &taskService{store: store, events: events}
}

// ListTasks returns all stored tasks matching the filter.
func (s *taskService) ListTasks(filter ListFilter) ([]models.Task, error) {
	tasks, err := s.store.List()
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}

	var out []models.Task
	for _, t := range tasks {
		if matchesFilter(t, filter) {
			out = append(out, t)
		}
	}
	return out, nil
}

// GetTask returns a single task by ID.
func (s *taskService) GetTask(id string) (models.Task, error) {
	task, err := s.store.Get(id)
	if err != nil {
		return models.Task{}, fmt.Errorf("getting task %s: %w", id, err)
	}
	return task, nil
}

// CreateTask validates the input, assigns an ID and timestamps, and persists
// the new task.
func (s *taskService) CreateTask(in CreateTaskInput) (models.Task, error) {
	if in.Status == "" {
		in.Status = models.StatusTodo
	}
	if in.Priority == "" {
		in.Priority = models.PriorityMedium
	}
	if in.RecurringFrequency == "" {
		in.RecurringFrequency = models.FrequencyNone
	}

	if err := validateCreate(in); err != nil {
		return models.Task{}, err
	}

	now := time.Now().UTC()
	task := models.Task{
		ID:                 uuid.NewString(),
		Title:              in.Title,
		Description:        in.Description,
		Note:               in.Note,
		Status:             in.Status,
		Priority:           in.Priority,
		DueDate:            in.DueDate,
		CreatedAt:          now,
		UpdatedAt:          now,
		RecurringFrequency: in.RecurringFrequency,
		RecurringEndDate:   in.RecurringEndDate,
		Tags:               in.Tags,
	}

	created, err := s.store.Create(task)
	if err != nil {
		return models.Task{}, fmt.Errorf("creating task: %w", err)
	}

	s.logEvent("task.created", map[string]any{
		"task_id": created.ID,
		"title":   created.Title,
		"status":  string(created.Status),
	})

	return created, nil
}

// UpdateTask applies a partial update and stamps UpdatedAt. When the patch
// transitions a recurring task from a non-done status to done, the next
// occurrence is spawned as a best-effort side effect after the primary
// update has been committed; a spawn failure is reported through the event
// log and never fails the update itself.
func (s *taskService) UpdateTask(id string, patch TaskPatch) (models.Task, error) {
	if err := validatePatch(patch); err != nil {
		return models.Task{}, err
	}

	existing, err := s.store.Get(id)
	if err != nil {
		return models.Task{}, fmt.Errorf("updating task %s: %w", id, err)
	}

	updated := applyPatch(existing, patch)
	updated.UpdatedAt = time.Now().UTC()

	updated, err = s.store.Update(updated)
	if err != nil {
		return models.Task{}, fmt.Errorf("updating task %s: %w", id, err)
	}

	if patch.Status != nil && *patch.Status != existing.Status {
		s.logEvent("task.status_changed", map[string]any{
			"task_id": id,
			"from":    string(existing.Status),
			"to":      string(*patch.Status),
		})
	}

	if completionTransition(existing, patch) {
		if spawnErr := s.spawnNextOccurrence(existing); spawnErr != nil {
			cerr := &ContinuationError{TaskID: id, Err: spawnErr}
			s.logEvent("task.continuation_failed", map[string]any{
				"task_id": id,
				"error":   cerr.Error(),
			})
		}
	}

	return updated, nil
}

// DeleteTask removes a task from the store.
func (s *taskService) DeleteTask(id string) error {
	if err := s.store.Delete(id); err != nil {
		return fmt.Errorf("deleting task %s: %w", id, err)
	}
	s.logEvent("task.deleted", map[string]any{"task_id": id})
	return nil
}

// MoveTask changes only the task's status. Continuation applies exactly as
// it does for UpdateTask.
func (s *taskService) MoveTask(id string, status models.TaskStatus) (models.Task, error) {
	return s.UpdateTask(id, TaskPatch{Status: &status})
}

// KanbanColumns groups every stored task into the four status buckets.
// All buckets are present in the result, empty ones included.
func (s *taskService) KanbanColumns() (map[models.TaskStatus][]models.Task, error) {
	tasks, err := s.store.List()
	if err != nil {
		return nil, fmt.Errorf("loading kanban columns: %w", err)
	}

	columns := make(map[models.TaskStatus][]models.Task, len(models.AllStatuses))
	for _, st := range models.AllStatuses {
		columns[st] = []models.Task{}
	}
	for _, t := range tasks {
		columns[t.Status] = append(columns[t.Status], t)
	}
	return columns, nil
}

// ExpandWindow delegates to the recurrence expander over all stored tasks.
func (s *taskService) ExpandWindow(start, end time.Time) ([]Instance, error) {
	tasks, err := s.store.List()
	if err != nil {
		return nil, fmt.Errorf("expanding window: %w", err)
	}
	return Expand(tasks, start, end), nil
}

// completionTransition reports whether the patch moves the task from a
// non-done status to done on a task whose recurrence is in effect.
func completionTransition(existing models.Task, patch TaskPatch) bool {
	if patch.Status == nil || *patch.Status != models.StatusDone {
		return false
	}
	if existing.Status == models.StatusDone {
		return false
	}
	return existing.Recurs()
}

// spawnNextOccurrence creates the sibling task for a completed recurring
// task. The completed task itself is never touched.
func (s *taskService) spawnNextOccurrence(completed models.Task) error {
	next, ok := NextOccurrenceFromDueDate(*completed.DueDate, completed.RecurringFrequency)
	if !ok {
		return nil
	}
	if completed.RecurringEndDate != nil && next.After(*completed.RecurringEndDate) {
		return nil
	}

	now := time.Now().UTC()
	sibling := models.Task{
		ID:                 uuid.NewString(),
		Title:              completed.Title,
		Description:        completed.Description,
		Note:               completed.Note,
		Status:             models.StatusTodo,
		Priority:           completed.Priority,
		DueDate:            &next,
		CreatedAt:          now,
		UpdatedAt:          now,
		RecurringFrequency: completed.RecurringFrequency,
		RecurringEndDate:   completed.RecurringEndDate,
		Tags:               completed.Tags,
	}

	created, err := s.store.Create(sibling)
	if err != nil {
		return err
	}

	s.logEvent("task.recurrence_spawned", map[string]any{
		"parent_id": completed.ID,
		"task_id":   created.ID,
		"due_date":  next.Format(time.RFC3339),
	})
	return nil
}

func (s *taskService) logEvent(eventType string, data map[string]any) {
	if s.events == nil {
		return
	}
	_ = s.events.LogEvent(eventType, data)
}

func applyPatch(task models.Task, patch TaskPatch) models.Task {
	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Note != nil {
		task.Note = *patch.Note
	}
	if patch.Status != nil {
		task.Status = *patch.Status
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
	if patch.DueDate != nil {
		task.DueDate = *patch.DueDate
	}
	if patch.RecurringFrequency != nil {
		task.RecurringFrequency = *patch.RecurringFrequency
	}
	if patch.RecurringEndDate != nil {
		task.RecurringEndDate = *patch.RecurringEndDate
	}
	if patch.Tags != nil {
		task.Tags = *patch.Tags
	}
	return task
}

func matchesFilter(task models.Task, filter ListFilter) bool {
	if filter.Status != "" && task.Status != filter.Status {
		return false
	}
	if filter.Priority != "" && task.Priority != filter.Priority {
		return false
	}
	if filter.DueBefore != nil {
		if task.DueDate == nil || task.DueDate.After(*filter.DueBefore) {
			return false
		}
	}
	if filter.DueAfter != nil {
		if task.DueDate == nil || task.DueDate.Before(*filter.DueAfter) {
			return false
		}
	}
	if len(filter.Tags) > 0 && !hasAnyTag(task.Tags, filter.Tags) {
		return false
	}
	return true
}

func hasAnyTag(taskTags, filterTags []string) bool {
	wanted := make(map[string]struct{}, len(filterTags))
	for _, t := range filterTags {
		wanted[strings.ToLower(strings.TrimSpace(t))] = struct{}{}
	}
	for _, t := range taskTags {
		if _, ok := wanted[strings.ToLower(t)]; ok {
			return true
		}
	}
	return false
}
