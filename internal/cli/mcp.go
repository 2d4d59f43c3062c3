package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	taskmcp "github.com/AbinashGupta/task-manager/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  "Commands for running the taskman MCP (Model Context Protocol) server.",
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the taskman MCP server on stdio",
	Long: `Start the taskman MCP server on stdio transport.

The server exposes task operations as MCP tools that AI coding assistants
can call: get_task, list_tasks, create_task, update_task, move_task,
kanban_columns, calendar, reminder_counts.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Service == nil {
			return fmt.Errorf("task service not initialized")
		}

		dueSoonHours := 0
		if Config != nil {
			dueSoonHours = Config.DueSoonHours
		}
		srv := taskmcp.NewServer(Service, dueSoonHours, appVersion)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		if err := srv.Run(ctx); err != nil {
			return fmt.Errorf("running MCP server: %w", err)
		}

		return nil
	},
}

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}
