package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/petralog/lascore/config"
)

// ConfigCmd manages lascore configuration.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage lascore configuration",
	Long: `Manage lascore configuration.

Examples:
  lascore config init             # Write lascore.toml with defaults
  lascore config init ~/.lascore/lascore.toml`,
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a config file populated with defaults",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "lascore.toml"
		if len(args) == 1 {
			path = args[0]
		}
		if err := config.WriteDefault(path); err != nil {
			return err
		}
		pterm.Success.Printfln("Wrote %s", path)
		return nil
	},
}

func init() {
	ConfigCmd.AddCommand(configInitCmd)
}
