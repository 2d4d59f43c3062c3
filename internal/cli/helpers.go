package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/AbinashGupta/task-manager/internal/core"
	"github.com/AbinashGupta/task-manager/pkg/models"
)

// dateLayouts are the accepted input formats for date flags, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseDateFlag parses a user-supplied date string. Date-only values are
// interpreted as local midnight.
func parseDateFlag(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q: use YYYY-MM-DD or RFC3339", value)
}

func formatOptionalDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}

func printTaskDetail(t models.Task) {
	fmt.Printf("ID:          %s\n", t.ID)
	fmt.Printf("Title:       %s\n", t.Title)
	fmt.Printf("Status:      %s\n", t.Status)
	fmt.Printf("Priority:    %s\n", t.Priority)
	fmt.Printf("Due:         %s\n", formatOptionalDate(t.DueDate))
	if t.RecurringFrequency != models.FrequencyNone {
		fmt.Printf("Recurs:      %s", t.RecurringFrequency)
		if t.RecurringEndDate != nil {
			fmt.Printf(" (until %s)", formatOptionalDate(t.RecurringEndDate))
		}
		fmt.Println()
	}
	if t.Description != "" {
		fmt.Printf("Description: %s\n", t.Description)
	}
	if t.Note != "" {
		fmt.Printf("Note:        %s\n", t.Note)
	}
	if len(t.Tags) > 0 {
		fmt.Printf("Tags:        %s\n", strings.Join(t.Tags, ", "))
	}
	fmt.Printf("Created:     %s\n", t.CreatedAt.Local().Format("2006-01-02 15:04"))
	fmt.Printf("Updated:     %s\n", t.UpdatedAt.Local().Format("2006-01-02 15:04"))
}

func printTaskRow(t models.Task) {
	due := formatOptionalDate(t.DueDate)
	recur := ""
	if t.RecurringFrequency != models.FrequencyNone {
		recur = " ↻"
	}
	fmt.Printf("%-36s  %-11s  %-6s  %-16s  %s%s\n",
		t.ID, t.Status, t.Priority, due, t.Title, recur)
}

func printTaskHeader() {
	fmt.Printf("%-36s  %-11s  %-6s  %-16s  %s\n",
		"ID", "STATUS", "PRIO", "DUE", "TITLE")
}

// completeStatuses returns valid status values for shell completion.
func completeStatuses(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{
		"todo\tNot started yet",
		"in-progress\tBeing worked on",
		"blocked\tWaiting on something",
		"done\tCompleted",
	}, cobra.ShellCompDirectiveNoFileComp
}

// completePriorities returns valid priority values for shell completion.
func completePriorities(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{"low", "medium", "high"}, cobra.ShellCompDirectiveNoFileComp
}

// completeFrequencies returns valid recurrence frequencies for shell completion.
func completeFrequencies(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{"none", "daily", "weekly", "monthly", "yearly"}, cobra.ShellCompDirectiveNoFileComp
}

// completeTaskIDs completes task IDs, excluding tasks in any of the given
// statuses.
func completeTaskIDs(exclude ...models.TaskStatus) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		if Service == nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		tasks, err := Service.ListTasks(core.ListFilter{})
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		var out []string
		for _, t := range tasks {
			skip := false
			for _, ex := range exclude {
				if t.Status == ex {
					skip = true
					break
				}
			}
			if !skip {
				out = append(out, fmt.Sprintf("%s\t%s", t.ID, t.Title))
			}
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	}
}
