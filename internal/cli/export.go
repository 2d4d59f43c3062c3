package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/AbinashGupta/task-manager/internal/core"
	"github.com/AbinashGupta/task-manager/pkg/models"
)

var exportOutputFlag string

// exportDocument is the YAML envelope written by the export command.
type exportDocument struct {
	ExportedAt string        `yaml:"exported_at"`
	Count      int           `yaml:"count"`
	Tasks      []models.Task `yaml:"tasks"`
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all tasks as YAML",
	Long: `Export the whole task collection as a YAML document, to stdout or to a
file given with --output. The CSV data file itself stays untouched.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Service == nil {
			return fmt.Errorf("task service not initialized")
		}

		tasks, err := Service.ListTasks(core.ListFilter{})
		if err != nil {
			return fmt.Errorf("loading tasks: %w", err)
		}

		doc := exportDocument{
			ExportedAt: time.Now().UTC().Format(time.RFC3339),
			Count:      len(tasks),
			Tasks:      tasks,
		}

		data, err := yaml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("encoding export: %w", err)
		}

		if exportOutputFlag == "" {
			fmt.Print(string(data))
			return nil
		}

		if err := os.WriteFile(exportOutputFlag, data, 0o600); err != nil {
			return fmt.Errorf("writing export file: %w", err)
		}
		fmt.Printf("Exported %d task(s) to %s\n", len(tasks), exportOutputFlag)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutputFlag, "output", "o", "", "Output file (default stdout)")
	rootCmd.AddCommand(exportCmd)
}
