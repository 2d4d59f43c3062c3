package internal

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/AbinashGupta/task-manager/internal/cli"
	"github.com/AbinashGupta/task-manager/internal/core"
)

func TestNewAppWiresServices(t *testing.T) {
	dir := t.TempDir()

	app, err := NewApp(dir)
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	defer func() { _ = app.Close() }()

	if app.Tasks == nil || app.Store == nil || app.AlertEngine == nil {
		t.Fatal("core services not wired")
	}
	if app.Notifier != nil {
		t.Error("notifier should be nil when notifications are disabled")
	}
	if cli.Service == nil || cli.Config == nil {
		t.Error("CLI package variables not wired")
	}

	// A full create/complete cycle through the wired stack.
	created, err := app.Tasks.CreateTask(core.CreateTaskInput{Title: "wired"})
	if err != nil {
		t.Fatalf("CreateTask through app: %v", err)
	}
	if _, err := app.Tasks.GetTask(created.ID); err != nil {
		t.Fatalf("GetTask through app: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "data", "tasks.csv")); err != nil {
		t.Errorf("collection file not created at default path: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, ".taskman_events.jsonl")); err != nil {
		t.Errorf("event log not created: %v", err)
	}
}

func TestStoreAdapterTranslatesNotFound(t *testing.T) {
	app, err := NewApp(t.TempDir())
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	defer func() { _ = app.Close() }()

	if _, err := app.Tasks.GetTask("missing"); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("expected core.ErrNotFound through the adapter, got %v", err)
	}
	if err := app.Tasks.DeleteTask("missing"); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("expected core.ErrNotFound on delete, got %v", err)
	}
}

func TestNewAppRejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	content := "defaults:\n  priority: urgent\n"
	if err := os.WriteFile(filepath.Join(dir, ".taskman.yaml"), []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	if _, err := NewApp(dir); err == nil {
		t.Error("expected config validation error")
	}
}

func TestResolveBasePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("TASKMAN_HOME", home)
	if got := ResolveBasePath(); got != home {
		t.Errorf("ResolveBasePath = %s, want %s", got, home)
	}

	t.Setenv("TASKMAN_HOME", "")
	marker := t.TempDir()
	if err := os.WriteFile(filepath.Join(marker, ".taskman.yaml"), []byte("{}\n"), 0o600); err != nil {
		t.Fatalf("writing marker config: %v", err)
	}
	nested := filepath.Join(marker, "a", "b")
	if err := os.MkdirAll(nested, 0o750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	t.Chdir(nested)
	got := ResolveBasePath()
	// Compare resolved paths: the tmp dir may be behind a symlink.
	wantInfo, _ := os.Stat(marker)
	gotInfo, err := os.Stat(got)
	if err != nil || !os.SameFile(wantInfo, gotInfo) {
		t.Errorf("ResolveBasePath = %s, want %s", got, marker)
	}
}
