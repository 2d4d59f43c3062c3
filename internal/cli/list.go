package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AbinashGupta/task-manager/internal/core"
	"github.com/AbinashGupta/task-manager/pkg/models"
)

var (
	listStatusFlag    string
	listPriorityFlag  string
	listDueBeforeFlag string
	listDueAfterFlag  string
	listTagsFlag      []string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks, optionally filtered",
	Long: `List all tasks. Filters combine with AND semantics; tag matching is
case-insensitive and matches any of the given tags.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Service == nil {
			return fmt.Errorf("task service not initialized")
		}

		filter := core.ListFilter{
			Status:   models.TaskStatus(listStatusFlag),
			Priority: models.Priority(listPriorityFlag),
			Tags:     listTagsFlag,
		}
		if listDueBeforeFlag != "" {
			t, err := parseDateFlag(listDueBeforeFlag)
			if err != nil {
				return err
			}
			filter.DueBefore = &t
		}
		if listDueAfterFlag != "" {
			t, err := parseDateFlag(listDueAfterFlag)
			if err != nil {
				return err
			}
			filter.DueAfter = &t
		}

		tasks, err := Service.ListTasks(filter)
		if err != nil {
			return fmt.Errorf("listing tasks: %w", err)
		}

		if len(tasks) == 0 {
			fmt.Println("No tasks found.")
			return nil
		}

		printTaskHeader()
		for _, t := range tasks {
			printTaskRow(t)
		}
		fmt.Printf("\n%d task(s)\n", len(tasks))
		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&listStatusFlag, "status", "s", "", "Filter by status")
	listCmd.Flags().StringVarP(&listPriorityFlag, "priority", "p", "", "Filter by priority")
	listCmd.Flags().StringVar(&listDueBeforeFlag, "due-before", "", "Only tasks due on or before this date")
	listCmd.Flags().StringVar(&listDueAfterFlag, "due-after", "", "Only tasks due on or after this date")
	listCmd.Flags().StringSliceVarP(&listTagsFlag, "tags", "t", nil, "Filter by tags (any-of)")

	_ = listCmd.RegisterFlagCompletionFunc("status", completeStatuses)
	_ = listCmd.RegisterFlagCompletionFunc("priority", completePriorities)

	rootCmd.AddCommand(listCmd)
}
