// Package cli implements the taskman command-line interface using cobra.
// Service instances are package-level variables wired during app
// initialization.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "taskman",
	Short: "Personal task tracker with recurring tasks and a kanban board",
	Long: `taskman is a personal task tracker backed by a single CSV file.

It manages one-off and recurring tasks, expands recurring tasks over
calendar windows, shows a kanban board in the terminal, and surfaces
reminders for overdue and upcoming work.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("taskman %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
