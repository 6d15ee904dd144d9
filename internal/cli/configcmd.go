package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration taskdeck is running with, after merging
.taskdeckrc (if present) over the built-in defaults.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Cfg == nil {
			return fmt.Errorf("configuration not initialized")
		}
		out, err := yaml.Marshal(Cfg)
		if err != nil {
			return fmt.Errorf("rendering configuration: %w", err)
		}
		cmd.Print(string(out))
		return nil
	},
}
