package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/AbinashGupta/task-manager/internal/core"
)

var remindersNotifyFlag bool

var remindersCmd = &cobra.Command{
	Use:   "reminders",
	Short: "Show overdue, due-today, and due-soon tasks",
	Long: `Show reminders grouped into overdue, due today, and due soon.

The due-soon horizon defaults to 24 hours and can be changed via
reminders.due_soon_hours in .taskman.yaml. With --notify, triggered
reminders are also posted to the configured webhook.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Service == nil {
			return fmt.Errorf("task service not initialized")
		}

		hours := core.DefaultDueSoonHours
		if Config != nil && Config.DueSoonHours > 0 {
			hours = Config.DueSoonHours
		}

		tasks, err := Service.ListTasks(core.ListFilter{})
		if err != nil {
			return fmt.Errorf("loading tasks: %w", err)
		}

		now := time.Now().UTC()
		printed := false

		printGroup := func(header string, match func() []string) {
			lines := match()
			if len(lines) == 0 {
				return
			}
			printed = true
			fmt.Println(header)
			for _, l := range lines {
				fmt.Println(l)
			}
			fmt.Println()
		}

		printGroup("Overdue:", func() []string {
			var out []string
			for _, t := range tasks {
				if core.IsOverdue(t, now) {
					out = append(out, fmt.Sprintf("  %-16s  %s", formatOptionalDate(t.DueDate), t.Title))
				}
			}
			return out
		})
		printGroup("Due today:", func() []string {
			var out []string
			for _, t := range tasks {
				if core.IsDueToday(t, now) {
					out = append(out, fmt.Sprintf("  %-16s  %s", formatOptionalDate(t.DueDate), t.Title))
				}
			}
			return out
		})
		printGroup(fmt.Sprintf("Due within %dh:", hours), func() []string {
			var out []string
			for _, t := range tasks {
				if core.IsDueSoon(t, now, hours) {
					out = append(out, fmt.Sprintf("  %-16s  %s", formatOptionalDate(t.DueDate), t.Title))
				}
			}
			return out
		})

		if !printed {
			fmt.Println("Nothing due. All clear.")
		}

		if remindersNotifyFlag {
			if AlertEngine == nil || Notifier == nil {
				return fmt.Errorf("notifications are not configured (set notifications.enabled and notifications.webhook_url)")
			}
			alerts, err := AlertEngine.Evaluate()
			if err != nil {
				return fmt.Errorf("evaluating reminders: %w", err)
			}
			if err := Notifier.Notify(alerts); err != nil {
				return fmt.Errorf("sending notification: %w", err)
			}
			if len(alerts) > 0 {
				fmt.Printf("Sent %d alert(s) to webhook.\n", len(alerts))
			}
		}

		return nil
	},
}

func init() {
	remindersCmd.Flags().BoolVar(&remindersNotifyFlag, "notify", false, "Post triggered reminders to the configured webhook")
	rootCmd.AddCommand(remindersCmd)
}
