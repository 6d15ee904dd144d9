package internal

import (
	"testing"

	"github.com/valter-silva-au/taskdeck/internal/cli"
)

func TestNewAppWiresEverything(t *testing.T) {
	app, err := NewApp(t.TempDir())
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}

	if app.Config == nil || app.Store == nil || app.OpLog == nil || app.Service == nil {
		t.Fatalf("expected all dependencies wired, got %+v", app)
	}
	if cli.Service == nil || cli.Cfg == nil {
		t.Fatalf("expected the CLI layer to receive the service and config")
	}

	// The wired service is usable end to end.
	task, err := app.Service.AddTask("wired")
	if err != nil {
		t.Fatalf("AddTask through the wired service failed: %v", err)
	}
	tasks, err := app.Service.GetAllTasks()
	if err != nil {
		t.Fatalf("GetAllTasks failed: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != task.ID {
		t.Errorf("expected the added task in the wired store")
	}
}

func TestResolveBasePath(t *testing.T) {
	if ResolveBasePath() == "" {
		t.Fatalf("expected a non-empty base path")
	}
}
