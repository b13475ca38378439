package commands

import (
	"encoding/json"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// CurvesCmd lists the curves available in a LAS file.
var CurvesCmd = &cobra.Command{
	Use:   "curves <file>",
	Short: "List available curves",
	Long: `List the curves declared in the ~CURVE section, excluding the depth
index, with units and descriptions.

Examples:
  lascore curves well.las
  lascore curves well.las --json`,
	Args: cobra.ExactArgs(1),
	RunE: runCurves,
}

func runCurves(cmd *cobra.Command, args []string) error {
	doc, err := parseDocument(args[0])
	if err != nil {
		return err
	}

	available := doc.AvailableCurves()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		type curveInfo struct {
			Name        string `json:"name"`
			Unit        string `json:"unit"`
			Description string `json:"description"`
		}
		curves := make([]curveInfo, len(available))
		for i, c := range available {
			curves[i] = curveInfo{Name: c.Mnemonic, Unit: c.Unit, Description: c.Description}
		}
		out, err := json.MarshalIndent(curves, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	data := pterm.TableData{{"Curve", "Unit", "Description"}}
	for _, c := range available {
		data = append(data, []string{c.Mnemonic, c.Unit, c.Description})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
