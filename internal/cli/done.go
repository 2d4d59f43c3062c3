package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AbinashGupta/task-manager/internal/core"
	"github.com/AbinashGupta/task-manager/pkg/models"
)

var doneCmd = &cobra.Command{
	Use:   "done <task-id>",
	Short: "Mark a task as done",
	Long: `Mark a task as done. Completing a recurring task spawns a fresh task
for the next occurrence, due at the end of the next period.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Service == nil {
			return fmt.Errorf("task service not initialized")
		}

		task, err := Service.MoveTask(args[0], models.StatusDone)
		if err != nil {
			if errors.Is(err, core.ErrNotFound) {
				return fmt.Errorf("task %s not found", args[0])
			}
			return err
		}

		fmt.Printf("Done: %s\n", task.Title)
		if task.Recurs() {
			fmt.Println("Next occurrence scheduled.")
		}
		return nil
	},
}

func init() {
	doneCmd.ValidArgsFunction = completeTaskIDs(models.StatusDone)
	rootCmd.AddCommand(doneCmd)
}
