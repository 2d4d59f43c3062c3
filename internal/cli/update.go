package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/AbinashGupta/task-manager/internal/core"
	"github.com/AbinashGupta/task-manager/pkg/models"
)

var (
	updateTitleFlag       string
	updateDescriptionFlag string
	updateNoteFlag        string
	updateStatusFlag      string
	updatePriorityFlag    string
	updateDueFlag         string
	updateRecurFlag       string
	updateRecurEndFlag    string
	updateTagsFlag        []string
	updateClearDue        bool
	updateClearRecurEnd   bool
)

var updateCmd = &cobra.Command{
	Use:   "update <task-id>",
	Short: "Update fields of an existing task",
	Long: `Update a task. Only the fields whose flags are given change.

Moving a recurring task to done spawns its next occurrence automatically.
Use --clear-due and --clear-recur-end to remove the respective dates.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Service == nil {
			return fmt.Errorf("task service not initialized")
		}

		patch := core.TaskPatch{}
		if cmd.Flags().Changed("title") {
			patch.Title = &updateTitleFlag
		}
		if cmd.Flags().Changed("description") {
			patch.Description = &updateDescriptionFlag
		}
		if cmd.Flags().Changed("note") {
			patch.Note = &updateNoteFlag
		}
		if cmd.Flags().Changed("status") {
			st := models.TaskStatus(updateStatusFlag)
			patch.Status = &st
		}
		if cmd.Flags().Changed("priority") {
			p := models.Priority(updatePriorityFlag)
			patch.Priority = &p
		}
		if cmd.Flags().Changed("recur") {
			f := models.Frequency(updateRecurFlag)
			patch.RecurringFrequency = &f
		}
		if cmd.Flags().Changed("tags") {
			patch.Tags = &updateTagsFlag
		}

		if updateClearDue {
			var cleared *time.Time
			patch.DueDate = &cleared
		} else if cmd.Flags().Changed("due") {
			due, err := parseDateFlag(updateDueFlag)
			if err != nil {
				return err
			}
			duePtr := &due
			patch.DueDate = &duePtr
		}

		if updateClearRecurEnd {
			var cleared *time.Time
			patch.RecurringEndDate = &cleared
		} else if cmd.Flags().Changed("recur-end") {
			end, err := parseDateFlag(updateRecurEndFlag)
			if err != nil {
				return err
			}
			endPtr := &end
			patch.RecurringEndDate = &endPtr
		}

		task, err := Service.UpdateTask(args[0], patch)
		if err != nil {
			if errors.Is(err, core.ErrNotFound) {
				return fmt.Errorf("task %s not found", args[0])
			}
			return err
		}

		fmt.Printf("Updated task %s\n", task.ID)
		printTaskDetail(task)
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateTitleFlag, "title", "", "New title")
	updateCmd.Flags().StringVarP(&updateDescriptionFlag, "description", "d", "", "New description")
	updateCmd.Flags().StringVar(&updateNoteFlag, "note", "", "New note")
	updateCmd.Flags().StringVarP(&updateStatusFlag, "status", "s", "", "New status")
	updateCmd.Flags().StringVarP(&updatePriorityFlag, "priority", "p", "", "New priority")
	updateCmd.Flags().StringVar(&updateDueFlag, "due", "", "New due date")
	updateCmd.Flags().StringVar(&updateRecurFlag, "recur", "", "New recurrence frequency")
	updateCmd.Flags().StringVar(&updateRecurEndFlag, "recur-end", "", "New recurrence end date")
	updateCmd.Flags().StringSliceVarP(&updateTagsFlag, "tags", "t", nil, "Replacement tag list")
	updateCmd.Flags().BoolVar(&updateClearDue, "clear-due", false, "Remove the due date")
	updateCmd.Flags().BoolVar(&updateClearRecurEnd, "clear-recur-end", false, "Remove the recurrence end date")

	_ = updateCmd.RegisterFlagCompletionFunc("status", completeStatuses)
	_ = updateCmd.RegisterFlagCompletionFunc("priority", completePriorities)
	_ = updateCmd.RegisterFlagCompletionFunc("recur", completeFrequencies)
	updateCmd.ValidArgsFunction = completeTaskIDs()

	rootCmd.AddCommand(updateCmd)
}
