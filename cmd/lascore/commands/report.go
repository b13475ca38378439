package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/petralog/lascore/config"
	"github.com/petralog/lascore/report"
)

// ReportCmd renders the plain-text interpretation summary.
var ReportCmd = &cobra.Command{
	Use:   "report <file> [curve...]",
	Short: "Render a plain-text interpretation summary",
	Long: `Render well metadata, depth range, and per-curve statistics with a few
evenly-spaced sample values as plain text, suitable as a context block
for downstream interpretation tooling.

Examples:
  lascore report well.las
  lascore report well.las GR RHOB --from 1670 --to 1700
  lascore report well.las --samples 10`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReport,
}

func init() {
	ReportCmd.Flags().Float64("from", 0, "Depth window start")
	ReportCmd.Flags().Float64("to", 0, "Depth window end")
	ReportCmd.Flags().Int("samples", 0, "Samples per curve (default from config)")
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	doc, err := parseDocument(args[0])
	if err != nil {
		return err
	}

	names := args[1:]
	if len(names) == 0 {
		names = doc.CurveNames()
	}

	start, end := depthWindow(cmd)
	sampleCount, _ := cmd.Flags().GetInt("samples")
	if sampleCount <= 0 {
		sampleCount = cfg.Output.SampleCount
	}

	text, warnings := report.Render(doc, names, report.Options{
		Start:       start,
		End:         end,
		SampleCount: sampleCount,
	})
	printWarnings(warnings)

	fmt.Print(text)
	return nil
}
