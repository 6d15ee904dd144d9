package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/taskdeck/internal/core"
	"github.com/valter-silva-au/taskdeck/pkg/models"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// Service and Cfg are injected by the app wiring before Execute runs.
var (
	Service core.TaskService
	Cfg     *models.Config
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "taskdeck",
	Short: "taskdeck - interactive console task manager",
	Long: `taskdeck is an interactive console task manager. It keeps an ordered
in-memory task list for the session and drives it through a menu loop:
add, list, complete, remove, and sort, in English or Spanish.

Run it bare (or with 'run') to enter the interactive loop.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive()
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive task loop",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("taskdeck %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
	},
}

func runInteractive() error {
	if Service == nil || Cfg == nil {
		return fmt.Errorf("task service not initialized")
	}
	driver := NewDriver(Service, os.Stdin, os.Stdout, Cfg)
	driver.Run()
	return nil
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
