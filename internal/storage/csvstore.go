// Package storage provides the durable task record store: a single CSV file
// holding the whole collection, rewritten atomically on every mutation.
package storage

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/AbinashGupta/task-manager/pkg/models"
)

// ErrNotFound indicates a record ID absent from the store.
var ErrNotFound = errors.New("record not found")

// TimeFormat is the persisted timestamp layout. Millisecond precision,
// always UTC, so fields round-trip byte-for-byte.
const TimeFormat = "2006-01-02T15:04:05.000Z07:00"

// columns is the fixed CSV schema. Optional fields serialize as empty
// strings, never as omitted columns; the file always carries the header,
// even for an empty collection.
var columns = []string{
	"id", "title", "description", "note", "status", "priority",
	"dueDate", "createdAt", "updatedAt",
	"recurringFrequency", "recurringEndDate", "tags",
}

// formulaTriggers are the leading characters stripped from free-text fields
// before persistence, so the file is safe to open in spreadsheet tools.
const formulaTriggers = "=+-@\t\r"

// Store is the durable CRUD contract over the task collection. Mutations
// are serialized internally; the store assumes a single writer process.
type Store interface {
	List() ([]models.Task, error)
	Get(id string) (models.Task, error)
	Create(task models.Task) (models.Task, error)
	Update(task models.Task) (models.Task, error)
	Delete(id string) error
}

// csvStore implements Store over one CSV file. Every mutation reads the
// entire collection, applies the change in memory, and rewrites the file
// through a temp-file rename, so readers never observe a partial write.
type csvStore struct {
	path string
	mu   sync.Mutex
}

// NewCSVStore creates a Store backed by the CSV file at path. The file and
// its parent directory are created on first use.
func NewCSVStore(path string) Store {
	return &csvStore{path: path}
}

// List returns every task in the collection, in file order.
func (s *csvStore) List() ([]models.Task, error) {
	return s.readAll()
}

// Get returns the task with the given ID.
func (s *csvStore) Get(id string) (models.Task, error) {
	tasks, err := s.readAll()
	if err != nil {
		return models.Task{}, err
	}
	for _, t := range tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Task{}, fmt.Errorf("getting task %s: %w", id, ErrNotFound)
}

// Create sanitizes and appends the task, then rewrites the collection.
func (s *csvStore) Create(task models.Task) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task = sanitizeTask(task)

	tasks, err := s.readAll()
	if err != nil {
		return models.Task{}, err
	}
	tasks = append(tasks, task)
	if err := s.writeAll(tasks); err != nil {
		return models.Task{}, fmt.Errorf("creating task %s: %w", task.ID, err)
	}
	return task, nil
}

// Update replaces the record matching task.ID.
func (s *csvStore) Update(task models.Task) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task = sanitizeTask(task)

	tasks, err := s.readAll()
	if err != nil {
		return models.Task{}, err
	}

	found := false
	for i := range tasks {
		if tasks[i].ID == task.ID {
			tasks[i] = task
			found = true
			break
		}
	}
	if !found {
		return models.Task{}, fmt.Errorf("updating task %s: %w", task.ID, ErrNotFound)
	}

	if err := s.writeAll(tasks); err != nil {
		return models.Task{}, fmt.Errorf("updating task %s: %w", task.ID, err)
	}
	return task, nil
}

// Delete removes the record with the given ID.
func (s *csvStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.readAll()
	if err != nil {
		return err
	}

	kept := tasks[:0]
	for _, t := range tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(tasks) {
		return fmt.Errorf("deleting task %s: %w", id, ErrNotFound)
	}

	if err := s.writeAll(kept); err != nil {
		return fmt.Errorf("deleting task %s: %w", id, err)
	}
	return nil
}

// ensureFile creates the parent directory and a header-only file if the
// collection does not exist yet.
func (s *csvStore) ensureFile() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("checking collection file: %w", err)
	}
	header := strings.Join(columns, ",") + "\n"
	if err := os.WriteFile(s.path, []byte(header), 0o600); err != nil {
		return fmt.Errorf("writing collection header: %w", err)
	}
	return nil
}

func (s *csvStore) readAll() ([]models.Task, error) {
	if err := s.ensureFile(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading collection: %w", err)
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = len(columns)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing collection: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("parsing collection: missing header row")
	}

	tasks := make([]models.Task, 0, len(records)-1)
	for _, rec := range records[1:] {
		task, err := recordToTask(rec)
		if err != nil {
			return nil, fmt.Errorf("parsing collection: %w", err)
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// writeAll rewrites the whole collection through a temp file in the same
// directory, then renames it into place. A crash mid-write leaves the prior
// version intact.
func (s *csvStore) writeAll(tasks []models.Task) error {
	if err := s.ensureFile(); err != nil {
		return err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(columns); err != nil {
		return fmt.Errorf("encoding header: %w", err)
	}
	for _, t := range tasks {
		if err := w.Write(taskToRecord(t)); err != nil {
			return fmt.Errorf("encoding task %s: %w", t.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("encoding collection: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".tasks-*.csv")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing collection: %w", err)
	}
	return nil
}

func taskToRecord(t models.Task) []string {
	return []string{
		t.ID,
		t.Title,
		t.Description,
		t.Note,
		string(t.Status),
		string(t.Priority),
		formatOptionalTime(t.DueDate),
		t.CreatedAt.UTC().Format(TimeFormat),
		t.UpdatedAt.UTC().Format(TimeFormat),
		string(t.RecurringFrequency),
		formatOptionalTime(t.RecurringEndDate),
		strings.Join(t.Tags, "|"),
	}
}

func recordToTask(rec []string) (models.Task, error) {
	createdAt, err := time.Parse(TimeFormat, rec[7])
	if err != nil {
		return models.Task{}, fmt.Errorf("record %s: bad createdAt %q: %w", rec[0], rec[7], err)
	}
	updatedAt, err := time.Parse(TimeFormat, rec[8])
	if err != nil {
		return models.Task{}, fmt.Errorf("record %s: bad updatedAt %q: %w", rec[0], rec[8], err)
	}
	dueDate, err := parseOptionalTime(rec[6])
	if err != nil {
		return models.Task{}, fmt.Errorf("record %s: bad dueDate %q: %w", rec[0], rec[6], err)
	}
	recurEnd, err := parseOptionalTime(rec[10])
	if err != nil {
		return models.Task{}, fmt.Errorf("record %s: bad recurringEndDate %q: %w", rec[0], rec[10], err)
	}

	return models.Task{
		ID:                 rec[0],
		Title:              rec[1],
		Description:        rec[2],
		Note:               rec[3],
		Status:             models.TaskStatus(rec[4]),
		Priority:           models.Priority(rec[5]),
		DueDate:            dueDate,
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
		RecurringFrequency: models.Frequency(rec[9]),
		RecurringEndDate:   recurEnd,
		Tags:               splitTags(rec[11]),
	}, nil
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(TimeFormat)
}

func parseOptionalTime(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(TimeFormat, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func splitTags(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, "|")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			tags = append(tags, p)
		}
	}
	return tags
}

// SanitizeField strips leading spreadsheet formula trigger characters from a
// free-text value.
func SanitizeField(value string) string {
	return strings.TrimLeft(value, formulaTriggers)
}

func sanitizeTask(t models.Task) models.Task {
	t.Title = SanitizeField(t.Title)
	t.Description = SanitizeField(t.Description)
	t.Note = SanitizeField(t.Note)
	if len(t.Tags) > 0 {
		tags := make([]string, len(t.Tags))
		for i, tag := range t.Tags {
			tags[i] = SanitizeField(tag)
		}
		t.Tags = tags
	}
	return t
}
