package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AbinashGupta/task-manager/internal/core"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <task-id>",
	Short: "Delete a task permanently",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Service == nil {
			return fmt.Errorf("task service not initialized")
		}

		if err := Service.DeleteTask(args[0]); err != nil {
			if errors.Is(err, core.ErrNotFound) {
				return fmt.Errorf("task %s not found", args[0])
			}
			return err
		}

		fmt.Printf("Deleted task %s\n", args[0])
		return nil
	},
}

func init() {
	deleteCmd.ValidArgsFunction = completeTaskIDs()
	rootCmd.AddCommand(deleteCmd)
}
