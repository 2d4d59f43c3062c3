package core

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AbinashGupta/task-manager/pkg/models"
)

func TestLoadConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	cm := NewConfigurationManager(dir)

	cfg, err := cm.Load()
	if err != nil {
		t.Fatalf("Load without config file: %v", err)
	}

	if cfg.CSVPath != filepath.Join(dir, "data", "tasks.csv") {
		t.Errorf("CSVPath = %s", cfg.CSVPath)
	}
	if cfg.DefaultPriority != models.PriorityMedium {
		t.Errorf("DefaultPriority = %s, want medium", cfg.DefaultPriority)
	}
	if cfg.DueSoonHours != DefaultDueSoonHours {
		t.Errorf("DueSoonHours = %d, want %d", cfg.DueSoonHours, DefaultDueSoonHours)
	}
	if cfg.Notifications.Enabled {
		t.Error("notifications should be disabled by default")
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	content := `storage:
  csv_path: my/tasks.csv
defaults:
  priority: high
reminders:
  due_soon_hours: 48
notifications:
  enabled: true
  webhook_url: https://hooks.example.com/abc
`
	if err := os.WriteFile(filepath.Join(dir, ".taskman.yaml"), []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := NewConfigurationManager(dir).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// Relative paths resolve against the base path.
	if cfg.CSVPath != filepath.Join(dir, "my", "tasks.csv") {
		t.Errorf("CSVPath = %s", cfg.CSVPath)
	}
	if cfg.DefaultPriority != models.PriorityHigh {
		t.Errorf("DefaultPriority = %s, want high", cfg.DefaultPriority)
	}
	if cfg.DueSoonHours != 48 {
		t.Errorf("DueSoonHours = %d, want 48", cfg.DueSoonHours)
	}
	if !cfg.Notifications.Enabled || cfg.Notifications.WebhookURL != "https://hooks.example.com/abc" {
		t.Errorf("notifications = %+v", cfg.Notifications)
	}
}

func TestValidateConfig(t *testing.T) {
	cm := NewConfigurationManager(t.TempDir())

	valid := &models.Config{
		CSVPath:         "/tmp/tasks.csv",
		DefaultPriority: models.PriorityLow,
		DueSoonHours:    24,
	}
	if err := cm.Validate(valid); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	invalid := &models.Config{
		CSVPath:         "",
		DefaultPriority: "urgent",
		DueSoonHours:    -1,
		Notifications:   models.NotificationConfig{Enabled: true},
	}
	err := cm.Validate(invalid)
	if err == nil {
		t.Fatal("invalid config accepted")
	}
	// Every problem must be reported, not just the first.
	for _, fragment := range []string{"csv_path", "priority", "due_soon_hours", "webhook_url"} {
		if !strings.Contains(err.Error(), fragment) {
			t.Errorf("validation error missing %q: %v", fragment, err)
		}
	}
}
