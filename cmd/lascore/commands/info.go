package commands

import (
	"encoding/json"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// InfoCmd shows well metadata for a LAS file.
var InfoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Show well metadata for a LAS file",
	Long: `Display the well metadata derived from the ~WELL section: well name,
field, company, log date, nominal depth range, step, and null value.

Examples:
  lascore info well.las
  lascore info well.las --json`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	doc, err := parseDocument(args[0])
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		payload := struct {
			Version string `json:"las_version"`
			Wrap    bool   `json:"wrap"`
			Well    struct {
				WellName   string   `json:"well_name"`
				FieldName  string   `json:"field_name"`
				Company    string   `json:"company"`
				Date       string   `json:"date"`
				StartDepth *float64 `json:"start_depth"`
				StopDepth  *float64 `json:"stop_depth"`
				Step       *float64 `json:"step"`
				DepthUnit  string   `json:"depth_unit"`
				NullValue  float64  `json:"null_value"`
			} `json:"well"`
			Rows   int `json:"rows"`
			Curves int `json:"curves"`
		}{
			Version: doc.Version,
			Wrap:    doc.Wrap,
			Rows:    doc.RowCount(),
			Curves:  len(doc.AvailableCurves()),
		}
		payload.Well.WellName = doc.Well.WellName
		payload.Well.FieldName = doc.Well.FieldName
		payload.Well.Company = doc.Well.Company
		payload.Well.Date = doc.Well.Date
		payload.Well.StartDepth = doc.Well.StartDepth
		payload.Well.StopDepth = doc.Well.StopDepth
		payload.Well.Step = doc.Well.Step
		payload.Well.DepthUnit = doc.Well.DepthUnit
		payload.Well.NullValue = doc.Well.NullValue

		out, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	pterm.DefaultSection.Println("Well Information")
	data := pterm.TableData{
		{"Well", doc.Well.WellName},
		{"Field", doc.Well.FieldName},
		{"Company", doc.Well.Company},
		{"Date", doc.Well.Date},
		{"Start Depth", formatFloat(doc.Well.StartDepth) + " " + doc.Well.DepthUnit},
		{"Stop Depth", formatFloat(doc.Well.StopDepth) + " " + doc.Well.DepthUnit},
		{"Step", formatFloat(doc.Well.Step)},
		{"Null Value", pterm.Sprintf("%g", doc.Well.NullValue)},
		{"LAS Version", doc.Version},
		{"Data Rows", pterm.Sprintf("%d", doc.RowCount())},
		{"Curves", pterm.Sprintf("%d", len(doc.AvailableCurves()))},
	}
	return pterm.DefaultTable.WithData(data).Render()
}
