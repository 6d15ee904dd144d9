// Package internal provides the App struct that wires taskdeck's
// components together and initializes the CLI layer.
package internal

import (
	"fmt"
	"os"

	"github.com/valter-silva-au/taskdeck/internal/cli"
	"github.com/valter-silva-au/taskdeck/internal/core"
	"github.com/valter-silva-au/taskdeck/internal/observability"
	"github.com/valter-silva-au/taskdeck/internal/storage"
	"github.com/valter-silva-au/taskdeck/pkg/models"
)

// App holds the wired dependencies for a taskdeck process.
type App struct {
	BasePath string

	Config  *models.Config
	Store   *storage.MemoryStore[models.Task]
	OpLog   observability.Logger
	Service core.TaskService
}

// ResolveBasePath returns the directory searched for .taskdeckrc: the
// user's home directory, or the working directory when home cannot be
// determined.
func ResolveBasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

// NewApp builds the dependency graph and hands the service and config
// to the CLI layer.
func NewApp(basePath string) (*App, error) {
	cfg, err := core.NewConfigLoader(basePath).Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	store := storage.NewMemoryStore[models.Task]()
	oplog := observability.NewWriterLogger(os.Stdout)
	svc := core.NewTaskService(store, oplog)

	app := &App{
		BasePath: basePath,
		Config:   cfg,
		Store:    store,
		OpLog:    oplog,
		Service:  svc,
	}

	cli.Service = svc
	cli.Cfg = cfg
	return app, nil
}
