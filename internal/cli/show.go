package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AbinashGupta/task-manager/internal/core"
)

var showCmd = &cobra.Command{
	Use:   "show <task-id>",
	Short: "Show full details of a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Service == nil {
			return fmt.Errorf("task service not initialized")
		}

		task, err := Service.GetTask(args[0])
		if err != nil {
			if errors.Is(err, core.ErrNotFound) {
				return fmt.Errorf("task %s not found", args[0])
			}
			return err
		}

		printTaskDetail(task)
		return nil
	},
}

func init() {
	showCmd.ValidArgsFunction = completeTaskIDs()
	rootCmd.AddCommand(showCmd)
}
