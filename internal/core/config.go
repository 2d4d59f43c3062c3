package core

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/AbinashGupta/task-manager/pkg/models"
	"github.com/spf13/viper"
)

// ConfigurationManager loads and validates configuration from the
// .taskman.yaml file in the base path.
type ConfigurationManager interface {
	Load() (*models.Config, error)
	Validate(cfg *models.Config) error
}

// viperConfigManager implements ConfigurationManager using Viper.
type viperConfigManager struct {
	basePath string
}

// NewConfigurationManager creates a ConfigurationManager that reads
// configuration relative to basePath.
func NewConfigurationManager(basePath string) ConfigurationManager {
	return &viperConfigManager{basePath: basePath}
}

// defaultConfig returns a Config populated with sensible defaults.
func defaultConfig(basePath string) *models.Config {
	return &models.Config{
		CSVPath:         filepath.Join(basePath, "data", "tasks.csv"),
		DefaultPriority: models.PriorityMedium,
		DueSoonHours:    DefaultDueSoonHours,
	}
}

// Load reads .taskman.yaml from the base path. If the file does not exist,
// defaults are returned.
func (cm *viperConfigManager) Load() (*models.Config, error) {
	cfg := defaultConfig(cm.basePath)

	v := viper.New()
	v.SetConfigName(".taskman")
	v.SetConfigType("yaml")
	v.AddConfigPath(cm.basePath)

	v.SetDefault("storage.csv_path", cfg.CSVPath)
	v.SetDefault("defaults.priority", string(cfg.DefaultPriority))
	v.SetDefault("reminders.due_soon_hours", cfg.DueSoonHours)
	v.SetDefault("notifications.enabled", false)
	v.SetDefault("notifications.webhook_url", "")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading .taskman.yaml: %w", err)
	}

	cfg.CSVPath = v.GetString("storage.csv_path")
	if !filepath.IsAbs(cfg.CSVPath) {
		cfg.CSVPath = filepath.Join(cm.basePath, cfg.CSVPath)
	}
	cfg.DefaultPriority = models.Priority(v.GetString("defaults.priority"))
	cfg.DueSoonHours = v.GetInt("reminders.due_soon_hours")
	cfg.Notifications.Enabled = v.GetBool("notifications.enabled")
	cfg.Notifications.WebhookURL = v.GetString("notifications.webhook_url")

	return cfg, nil
}

// Validate checks the configuration for invalid values and returns a clear
// error message identifying every problem.
func (cm *viperConfigManager) Validate(cfg *models.Config) error {
	if cfg == nil {
		return fmt.Errorf("configuration is nil")
	}

	var errs []string

	if cfg.CSVPath == "" {
		errs = append(errs, "storage.csv_path must not be empty")
	}
	if cfg.DefaultPriority != "" && !validPriorities[cfg.DefaultPriority] {
		errs = append(errs, fmt.Sprintf(
			"defaults.priority %q is invalid, must be one of: low, medium, high",
			cfg.DefaultPriority,
		))
	}
	if cfg.DueSoonHours < 0 {
		errs = append(errs, fmt.Sprintf(
			"reminders.due_soon_hours must be non-negative, got %d",
			cfg.DueSoonHours,
		))
	}
	if cfg.Notifications.Enabled && cfg.Notifications.WebhookURL == "" {
		errs = append(errs, "notifications.webhook_url must be set when notifications are enabled")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
