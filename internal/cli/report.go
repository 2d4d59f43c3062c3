package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/AbinashGupta/task-manager/internal/core"
	"github.com/AbinashGupta/task-manager/pkg/models"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate reports over the task collection",
}

var reportSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Status and priority breakdown with completion rate",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Service == nil {
			return fmt.Errorf("task service not initialized")
		}

		tasks, err := Service.ListTasks(core.ListFilter{})
		if err != nil {
			return fmt.Errorf("loading tasks: %w", err)
		}

		s := core.Summarize(tasks, time.Now().UTC())

		fmt.Printf("Total tasks: %d\n\n", s.Total)
		fmt.Println("By status:")
		for _, st := range models.AllStatuses {
			fmt.Printf("  %-12s %d\n", st, s.ByStatus[st])
		}
		fmt.Println("\nBy priority:")
		for _, p := range []models.Priority{models.PriorityHigh, models.PriorityMedium, models.PriorityLow} {
			fmt.Printf("  %-12s %d\n", p, s.ByPriority[p])
		}
		fmt.Printf("\nOverdue:             %d\n", s.Overdue)
		fmt.Printf("Completed this week: %d\n", s.CompletedThisWeek)
		fmt.Printf("Completion rate:     %.0f%%\n", s.CompletionRate*100)
		return nil
	},
}

var reportProductivityCmd = &cobra.Command{
	Use:   "productivity",
	Short: "Completions per day over the trailing week",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Service == nil {
			return fmt.Errorf("task service not initialized")
		}

		tasks, err := Service.ListTasks(core.ListFilter{})
		if err != nil {
			return fmt.Errorf("loading tasks: %w", err)
		}

		p := core.ProductivityReport(tasks, time.Now())

		fmt.Println("Completions, last 7 days:")
		for _, dc := range p.CompletedPerDay {
			bar := strings.Repeat("█", dc.Count)
			fmt.Printf("  %s  %3d %s\n", dc.Date, dc.Count, bar)
		}
		fmt.Printf("\nAvg completion time: %.1fh\n", p.AvgCompletionTimeHours)
		return nil
	},
}

func init() {
	reportCmd.AddCommand(reportSummaryCmd)
	reportCmd.AddCommand(reportProductivityCmd)
	rootCmd.AddCommand(reportCmd)
}
