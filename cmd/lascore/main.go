package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/petralog/lascore/cmd/lascore/commands"
	"github.com/petralog/lascore/config"
	"github.com/petralog/lascore/logger"
)

var rootCmd = &cobra.Command{
	Use:   "lascore",
	Short: "lascore - LAS well-log parsing and curve extraction",
	Long: `lascore - Parse Log ASCII Standard (LAS) well-log files.

lascore reads LAS 1.2/2.0/3.0 files and extracts well metadata,
depth-aligned curve series, and descriptive statistics.

Available commands:
  info    - Show well metadata for a LAS file
  curves  - List available curves
  stats   - Compute per-curve statistics
  extract - Extract a curve to CSV
  report  - Render a plain-text interpretation summary
  watch   - Watch a directory and ingest LAS files as they appear
  config  - Manage lascore configuration

Examples:
  lascore info well.las                 # Show well metadata
  lascore curves well.las               # List curves with units
  lascore stats well.las GR RHOB        # Statistics for two curves
  lascore extract well.las GR -o gr.csv # Export gamma ray to CSV
  lascore report well.las --from 1670 --to 1700
  lascore watch --dir /data/incoming    # Ingest new files`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		if err := logger.Initialize(jsonOutput); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		if configPath, _ := cmd.Flags().GetString("config"); configPath != "" {
			if err := config.UseFile(configPath); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("json", false, "Output machine-readable JSON")
	rootCmd.PersistentFlags().String("config", "", "Config file path (default: lascore.toml in . or ~/.lascore)")

	rootCmd.AddCommand(commands.InfoCmd)
	rootCmd.AddCommand(commands.CurvesCmd)
	rootCmd.AddCommand(commands.StatsCmd)
	rootCmd.AddCommand(commands.ExtractCmd)
	rootCmd.AddCommand(commands.ReportCmd)
	rootCmd.AddCommand(commands.WatchCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
