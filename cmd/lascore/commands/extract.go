package commands

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/petralog/lascore/errors"
)

// ExtractCmd exports a curve's depth-aligned samples to CSV.
var ExtractCmd = &cobra.Command{
	Use:   "extract <file> <curve>",
	Short: "Extract a curve to CSV",
	Long: `Extract the named curve as depth/value pairs and write them as CSV.
Rows with missing depth or value are already excluded; the two columns
are always the same length.

Examples:
  lascore extract well.las GR -o gr.csv
  lascore extract well.las RHOB --from 1670 --to 1700 -o rhob.csv`,
	Args: cobra.ExactArgs(2),
	RunE: runExtract,
}

var extractOutFlag string

func init() {
	ExtractCmd.Flags().StringVarP(&extractOutFlag, "out", "o", "", "Output CSV path (default: stdout)")
	ExtractCmd.Flags().Float64("from", 0, "Depth window start")
	ExtractCmd.Flags().Float64("to", 0, "Depth window end")
}

func runExtract(cmd *cobra.Command, args []string) error {
	doc, err := parseDocument(args[0])
	if err != nil {
		return err
	}

	series, err := doc.Curve(args[1])
	if err != nil {
		return err
	}

	start, end := depthWindow(cmd)
	series = series.Clip(start, end)

	out := os.Stdout
	if extractOutFlag != "" {
		f, err := os.Create(extractOutFlag)
		if err != nil {
			return errors.Wrapf(err, "failed to create %s", extractOutFlag)
		}
		defer f.Close()
		out = f
	}

	w := csv.NewWriter(out)
	depthHeader := "DEPT"
	if doc.Well.DepthUnit != "" {
		depthHeader += " (" + doc.Well.DepthUnit + ")"
	}
	valueHeader := series.Mnemonic
	if series.Unit != "" {
		valueHeader += " (" + series.Unit + ")"
	}
	if err := w.Write([]string{depthHeader, valueHeader}); err != nil {
		return errors.Wrap(err, "failed to write CSV header")
	}

	for i := range series.Depths {
		record := []string{
			strconv.FormatFloat(series.Depths[i], 'f', -1, 64),
			strconv.FormatFloat(series.Values[i], 'f', -1, 64),
		}
		if err := w.Write(record); err != nil {
			return errors.Wrap(err, "failed to write CSV row")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return errors.Wrap(err, "failed to flush CSV")
	}

	if extractOutFlag != "" {
		pterm.Success.Printfln("Wrote %d samples to %s", series.Len(), extractOutFlag)
	}
	return nil
}
