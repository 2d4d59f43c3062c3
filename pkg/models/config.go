package models

// NotificationConfig controls reminder alert delivery.
type NotificationConfig struct {
	Enabled    bool   `yaml:"enabled"`
	WebhookURL string `yaml:"webhook_url"`
}

// Config holds the settings read from .taskman.yaml.
type Config struct {
	// CSVPath is the location of the task collection file.
	CSVPath string `yaml:"csv_path"`

	// DefaultPriority is assigned to tasks created without one.
	DefaultPriority Priority `yaml:"default_priority"`

	// DueSoonHours is the look-ahead window for due-soon reminders.
	DueSoonHours int `yaml:"due_soon_hours"`

	Notifications NotificationConfig `yaml:"notifications"`
}
