package commands

import (
	"encoding/json"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/petralog/lascore/internal/util"
)

// StatsCmd computes per-curve statistics.
var StatsCmd = &cobra.Command{
	Use:   "stats <file> [curve...]",
	Short: "Compute per-curve statistics",
	Long: `Compute min, max, mean and population standard deviation for the named
curves, or for every available curve when none are named. An optional
depth window clips each curve before computing.

Examples:
  lascore stats well.las
  lascore stats well.las GR RHOB
  lascore stats well.las GR --from 1670 --to 1700`,
	Args: cobra.MinimumNArgs(1),
	RunE: runStats,
}

func init() {
	StatsCmd.Flags().Float64("from", 0, "Depth window start")
	StatsCmd.Flags().Float64("to", 0, "Depth window end")
}

func runStats(cmd *cobra.Command, args []string) error {
	doc, err := parseDocument(args[0])
	if err != nil {
		return err
	}

	names := args[1:]
	if len(names) == 0 {
		names = doc.CurveNames()
	}

	start, end := depthWindow(cmd)

	type curveStats struct {
		Name    string   `json:"name"`
		Unit    string   `json:"unit"`
		Samples int      `json:"samples"`
		Min     *float64 `json:"min"`
		Max     *float64 `json:"max"`
		Mean    *float64 `json:"mean"`
		Std     *float64 `json:"std"`
	}

	var results []curveStats
	for _, name := range names {
		series, err := doc.Curve(name)
		if err != nil {
			pterm.Warning.Println(err.Error())
			continue
		}
		series = series.Clip(start, end)
		stats := series.Statistics()
		results = append(results, curveStats{
			Name:    series.Mnemonic,
			Unit:    series.Unit,
			Samples: series.Len(),
			Min:     stats.Min,
			Max:     stats.Max,
			Mean:    stats.Mean,
			Std:     stats.Std,
		})
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		out, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	data := pterm.TableData{{"Curve", "Unit", "Samples", "Min", "Max", "Mean", "Std"}}
	for _, r := range results {
		data = append(data, []string{
			r.Name, r.Unit,
			pterm.Sprintf("%d", r.Samples),
			formatFloat(r.Min), formatFloat(r.Max),
			formatFloat(r.Mean), formatFloat(r.Std),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// depthWindow converts the --from/--to flags into optional bounds;
// an unset flag leaves that side of the window open.
func depthWindow(cmd *cobra.Command) (start, end *float64) {
	if cmd.Flags().Changed("from") {
		v, _ := cmd.Flags().GetFloat64("from")
		start = util.Ptr(v)
	}
	if cmd.Flags().Changed("to") {
		v, _ := cmd.Flags().GetFloat64("to")
		end = util.Ptr(v)
	}
	return start, end
}
