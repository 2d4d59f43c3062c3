package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AbinashGupta/task-manager/internal/core"
	"github.com/AbinashGupta/task-manager/pkg/models"
)

var moveCmd = &cobra.Command{
	Use:   "move <task-id> <status>",
	Short: "Move a task to another status",
	Long: `Move a task to one of: todo, in-progress, blocked, done.

Moving a recurring task to done spawns its next occurrence.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Service == nil {
			return fmt.Errorf("task service not initialized")
		}

		task, err := Service.MoveTask(args[0], models.TaskStatus(args[1]))
		if err != nil {
			if errors.Is(err, core.ErrNotFound) {
				return fmt.Errorf("task %s not found", args[0])
			}
			return err
		}

		fmt.Printf("Moved %s to %s\n", task.Title, task.Status)
		return nil
	},
}

func init() {
	moveCmd.ValidArgsFunction = func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) == 0 {
			return completeTaskIDs()(cmd, args, toComplete)
		}
		return completeStatuses(cmd, args, toComplete)
	}
	rootCmd.AddCommand(moveCmd)
}
