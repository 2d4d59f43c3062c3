// Package internal provides the App struct that wires all components of the
// task tracker together and initializes the CLI layer.
package internal

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/AbinashGupta/task-manager/internal/cli"
	"github.com/AbinashGupta/task-manager/internal/core"
	"github.com/AbinashGupta/task-manager/internal/observability"
	"github.com/AbinashGupta/task-manager/internal/storage"
	"github.com/AbinashGupta/task-manager/pkg/models"
)

// App holds all service dependencies for the task tracker.
type App struct {
	BasePath string

	// Configuration
	ConfigMgr core.ConfigurationManager
	Config    *models.Config

	// Storage layer
	Store storage.Store

	// Core services
	Tasks core.TaskService

	// Observability
	EventLog    observability.EventLog
	AlertEngine observability.AlertEngine
	Notifier    observability.Notifier
}

// NewApp creates and wires all components. basePath is the root directory
// where data is stored (typically the directory containing .taskman.yaml).
func NewApp(basePath string) (*App, error) {
	app := &App{BasePath: basePath}

	// --- Configuration ---
	app.ConfigMgr = core.NewConfigurationManager(basePath)
	cfg, err := app.ConfigMgr.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	if err := app.ConfigMgr.Validate(cfg); err != nil {
		return nil, err
	}
	app.Config = cfg

	// --- Storage layer ---
	app.Store = storage.NewCSVStore(cfg.CSVPath)

	// --- Observability ---
	eventLogPath := filepath.Join(basePath, ".taskman_events.jsonl")
	app.EventLog, err = observability.NewJSONLEventLog(eventLogPath)
	if err != nil {
		// Non-fatal: disable event logging if the file can't be created.
		app.EventLog = nil
	}

	// --- Core services ---
	storeAdapter := &taskStoreAdapter{store: app.Store}
	var evtAdapter core.EventLogger
	if app.EventLog != nil {
		evtAdapter = &eventLogAdapter{log: app.EventLog}
	}
	app.Tasks = core.NewTaskService(storeAdapter, evtAdapter)

	app.AlertEngine = observability.NewAlertEngine(app.Store, cfg.DueSoonHours)
	if cfg.Notifications.Enabled && cfg.Notifications.WebhookURL != "" {
		app.Notifier = observability.NewWebhookNotifier(cfg.Notifications.WebhookURL)
	}

	// --- Wire CLI package-level variables ---
	cli.BasePath = basePath
	cli.Config = app.Config
	cli.Service = app.Tasks
	cli.EventLog = app.EventLog
	cli.AlertEngine = app.AlertEngine
	cli.Notifier = app.Notifier

	return app, nil
}

// Close releases resources held by the App, such as the event log file
// handle. It is safe to call Close on an App whose EventLog is nil.
func (a *App) Close() error {
	if a.EventLog != nil {
		return a.EventLog.Close()
	}
	return nil
}

// ResolveBasePath determines the base path for the task tracker data
// directory. It checks the TASKMAN_HOME env var, then walks up from the
// current directory looking for .taskman.yaml, falling back to cwd.
func ResolveBasePath() string {
	if home := os.Getenv("TASKMAN_HOME"); home != "" {
		return home
	}
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, ".taskman.yaml")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	cwd, _ := os.Getwd()
	return cwd
}

// --- Adapters ---

// taskStoreAdapter adapts storage.Store to core.TaskStore, translating the
// storage package's not-found sentinel into the core one.
type taskStoreAdapter struct {
	store storage.Store
}

func (a *taskStoreAdapter) List() ([]models.Task, error) {
	return a.store.List()
}

func (a *taskStoreAdapter) Get(id string) (models.Task, error) {
	t, err := a.store.Get(id)
	return t, translateNotFound(err)
}

func (a *taskStoreAdapter) Create(task models.Task) (models.Task, error) {
	return a.store.Create(task)
}

func (a *taskStoreAdapter) Update(task models.Task) (models.Task, error) {
	t, err := a.store.Update(task)
	return t, translateNotFound(err)
}

func (a *taskStoreAdapter) Delete(id string) error {
	return translateNotFound(a.store.Delete(id))
}

func translateNotFound(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, storage.ErrNotFound) {
		return core.ErrNotFound
	}
	return err
}

// eventLogAdapter adapts observability.EventLog to core.EventLogger.
type eventLogAdapter struct {
	log observability.EventLog
}

func (a *eventLogAdapter) LogEvent(eventType string, data map[string]any) error {
	level := "INFO"
	if eventType == "task.continuation_failed" {
		level = "ERROR"
	}
	return a.log.Append(observability.Event{
		Time:    time.Now().UTC(),
		Level:   level,
		Type:    eventType,
		Message: eventType,
		Data:    data,
	})
}
