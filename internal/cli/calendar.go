package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/AbinashGupta/task-manager/internal/core"
)

var (
	calendarViewFlag string
	calendarDateFlag string
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Show tasks over a daily, weekly, or monthly window",
	Long: `Show every task instance falling in a calendar window, including the
projected occurrences of recurring tasks. Projected occurrences are marked
with ↻ and exist only in the view, never in the store.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Service == nil {
			return fmt.Errorf("task service not initialized")
		}

		view := core.CalendarView(calendarViewFlag)
		switch view {
		case core.ViewDaily, core.ViewWeekly, core.ViewMonthly:
		default:
			return fmt.Errorf("invalid view %q: must be daily, weekly, or monthly", calendarViewFlag)
		}

		date := time.Now()
		if calendarDateFlag != "" {
			var err error
			date, err = parseDateFlag(calendarDateFlag)
			if err != nil {
				return err
			}
		}

		start, end := core.WindowFor(view, date)
		instances, err := Service.ExpandWindow(start, end)
		if err != nil {
			return fmt.Errorf("expanding calendar window: %w", err)
		}

		fmt.Printf("%s view: %s — %s\n\n",
			view,
			start.Local().Format("2006-01-02"),
			end.Local().Format("2006-01-02"),
		)

		if len(instances) == 0 {
			fmt.Println("No tasks in this window.")
			return nil
		}

		for _, inst := range instances {
			marker := " "
			if inst.Virtual {
				marker = "↻"
			}
			fmt.Printf("%s %-16s  %-11s  %-6s  %s\n",
				marker,
				formatOptionalDate(inst.Task.DueDate),
				inst.Task.Status,
				inst.Task.Priority,
				inst.Task.Title,
			)
		}
		fmt.Printf("\n%d instance(s)\n", len(instances))
		return nil
	},
}

func init() {
	calendarCmd.Flags().StringVarP(&calendarViewFlag, "view", "v", "weekly", "Window size: daily, weekly, or monthly")
	calendarCmd.Flags().StringVar(&calendarDateFlag, "date", "", "Anchor date (default today)")

	_ = calendarCmd.RegisterFlagCompletionFunc("view", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"daily", "weekly", "monthly"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(calendarCmd)
}
