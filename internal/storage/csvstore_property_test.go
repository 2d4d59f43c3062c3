package storage

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/AbinashGupta/task-manager/pkg/models"
)

// fieldText generates free text that survives sanitization unchanged:
// nothing the generator emits starts with a formula trigger character.
func fieldText() *rapid.Generator[string] {
	return rapid.StringMatching(`[a-zA-Z0-9 .,!?:é☕]{0,40}`).
		Filter(func(s string) bool { return s == SanitizeField(s) })
}

func storedTimeGenerator() *rapid.Generator[time.Time] {
	return rapid.Custom(func(rt *rapid.T) time.Time {
		sec := rapid.Int64Range(946684800, 2840140800).Draw(rt, "sec")
		ms := rapid.Int64Range(0, 999).Draw(rt, "ms")
		return time.Unix(sec, ms*int64(time.Millisecond)).UTC()
	})
}

func taskGenerator() *rapid.Generator[models.Task] {
	return rapid.Custom(func(rt *rapid.T) models.Task {
		task := models.Task{
			ID:          rapid.StringMatching(`[a-f0-9]{8}`).Draw(rt, "id"),
			Title:       "task " + rapid.StringMatching(`[a-z]{1,20}`).Draw(rt, "title"),
			Description: fieldText().Draw(rt, "description"),
			Note:        fieldText().Draw(rt, "note"),
			Status: rapid.SampledFrom([]models.TaskStatus{
				models.StatusTodo, models.StatusInProgress, models.StatusBlocked, models.StatusDone,
			}).Draw(rt, "status"),
			Priority: rapid.SampledFrom([]models.Priority{
				models.PriorityLow, models.PriorityMedium, models.PriorityHigh,
			}).Draw(rt, "priority"),
			CreatedAt: storedTimeGenerator().Draw(rt, "createdAt"),
			UpdatedAt: storedTimeGenerator().Draw(rt, "updatedAt"),
			RecurringFrequency: rapid.SampledFrom([]models.Frequency{
				models.FrequencyNone, models.FrequencyDaily, models.FrequencyWeekly,
				models.FrequencyMonthly, models.FrequencyYearly,
			}).Draw(rt, "frequency"),
		}
		if rapid.Bool().Draw(rt, "hasDue") {
			due := storedTimeGenerator().Draw(rt, "due")
			task.DueDate = &due
		}
		if rapid.Bool().Draw(rt, "hasRecurEnd") {
			end := storedTimeGenerator().Draw(rt, "recurEnd")
			task.RecurringEndDate = &end
		}
		n := rapid.IntRange(0, 4).Draw(rt, "tagCount")
		for i := 0; i < n; i++ {
			task.Tags = append(task.Tags, rapid.StringMatching(`[a-z]{1,10}`).Draw(rt, "tag"))
		}
		return task
	})
}

// Property: any task written through the store reads back identical.
func TestProperty_TaskRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		store := NewCSVStore(filepath.Join(t.TempDir(), "tasks.csv"))
		want := taskGenerator().Draw(rt, "task")

		if _, err := store.Create(want); err != nil {
			t.Fatalf("Create: %v", err)
		}
		got, err := store.Get(want.ID)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}

		if got.ID != want.ID || got.Title != want.Title ||
			got.Description != want.Description || got.Note != want.Note {
			t.Fatalf("text fields changed:\n got %+v\nwant %+v", got, want)
		}
		if got.Status != want.Status || got.Priority != want.Priority ||
			got.RecurringFrequency != want.RecurringFrequency {
			t.Fatalf("enum fields changed:\n got %+v\nwant %+v", got, want)
		}
		if !equalOptionalTime(got.DueDate, want.DueDate) {
			t.Fatalf("due date changed: got %v, want %v", got.DueDate, want.DueDate)
		}
		if !equalOptionalTime(got.RecurringEndDate, want.RecurringEndDate) {
			t.Fatalf("recurring end changed: got %v, want %v", got.RecurringEndDate, want.RecurringEndDate)
		}
		if !got.CreatedAt.Equal(want.CreatedAt) || !got.UpdatedAt.Equal(want.UpdatedAt) {
			t.Fatalf("timestamps changed:\n got %+v\nwant %+v", got, want)
		}
		if len(got.Tags) != len(want.Tags) {
			t.Fatalf("tags changed: got %v, want %v", got.Tags, want.Tags)
		}
		for i := range got.Tags {
			if got.Tags[i] != want.Tags[i] {
				t.Fatalf("tags changed: got %v, want %v", got.Tags, want.Tags)
			}
		}
	})
}

// Property: sanitization strips every leading formula trigger and nothing
// else.
func TestProperty_SanitizeField(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		input := rapid.String().Draw(rt, "input")
		out := SanitizeField(input)

		if len(out) > 0 && strings.ContainsRune(formulaTriggers, rune(out[0])) {
			t.Fatalf("SanitizeField(%q) = %q still starts with a trigger", input, out)
		}
		if !strings.HasSuffix(input, out) {
			t.Fatalf("SanitizeField(%q) = %q is not a suffix of the input", input, out)
		}
	})
}

func equalOptionalTime(a, b *time.Time) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return a == nil || a.Equal(*b)
}
