package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/AbinashGupta/task-manager/internal/core"
	"github.com/AbinashGupta/task-manager/pkg/models"
)

var (
	addDescriptionFlag string
	addNoteFlag        string
	addStatusFlag      string
	addPriorityFlag    string
	addDueFlag         string
	addRecurFlag       string
	addRecurEndFlag    string
	addTagsFlag        []string
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a new task",
	Long: `Create a new task with the given title.

A recurring task created with --recur but without --due is assigned the end
of the current period as its due date, so the recurrence takes effect
immediately.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Service == nil {
			return fmt.Errorf("task service not initialized")
		}

		in := core.CreateTaskInput{
			Title:       args[0],
			Description: addDescriptionFlag,
			Note:        addNoteFlag,
			Status:      models.TaskStatus(addStatusFlag),
			Tags:        addTagsFlag,
		}

		if addPriorityFlag != "" {
			in.Priority = models.Priority(addPriorityFlag)
		} else if Config != nil {
			in.Priority = Config.DefaultPriority
		}

		if addDueFlag != "" {
			due, err := parseDateFlag(addDueFlag)
			if err != nil {
				return err
			}
			in.DueDate = &due
		}

		if addRecurFlag != "" {
			in.RecurringFrequency = models.Frequency(addRecurFlag)
			if addRecurEndFlag != "" {
				end, err := parseDateFlag(addRecurEndFlag)
				if err != nil {
					return err
				}
				in.RecurringEndDate = &end
			}
			if in.DueDate == nil && in.RecurringFrequency != models.FrequencyNone {
				due := core.InitialRecurringDueDate(time.Now(), in.RecurringFrequency)
				in.DueDate = &due
			}
		}

		task, err := Service.CreateTask(in)
		if err != nil {
			return fmt.Errorf("creating task: %w", err)
		}

		fmt.Printf("Created task %s\n", task.ID)
		fmt.Printf("  Title:    %s\n", task.Title)
		fmt.Printf("  Status:   %s\n", task.Status)
		fmt.Printf("  Priority: %s\n", task.Priority)
		if task.DueDate != nil {
			fmt.Printf("  Due:      %s\n", formatOptionalDate(task.DueDate))
		}
		if task.RecurringFrequency != models.FrequencyNone {
			fmt.Printf("  Recurs:   %s\n", task.RecurringFrequency)
		}
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&addDescriptionFlag, "description", "d", "", "Task description")
	addCmd.Flags().StringVar(&addNoteFlag, "note", "", "Short note shown on the kanban tile")
	addCmd.Flags().StringVar(&addStatusFlag, "status", "", "Initial status (default todo)")
	addCmd.Flags().StringVarP(&addPriorityFlag, "priority", "p", "", "Priority: low, medium, or high")
	addCmd.Flags().StringVar(&addDueFlag, "due", "", "Due date (YYYY-MM-DD or RFC3339)")
	addCmd.Flags().StringVar(&addRecurFlag, "recur", "", "Recurrence: daily, weekly, monthly, or yearly")
	addCmd.Flags().StringVar(&addRecurEndFlag, "recur-end", "", "Last eligible occurrence date (inclusive)")
	addCmd.Flags().StringSliceVarP(&addTagsFlag, "tags", "t", nil, "Comma-separated tags")

	_ = addCmd.RegisterFlagCompletionFunc("status", completeStatuses)
	_ = addCmd.RegisterFlagCompletionFunc("priority", completePriorities)
	_ = addCmd.RegisterFlagCompletionFunc("recur", completeFrequencies)

	rootCmd.AddCommand(addCmd)
}
