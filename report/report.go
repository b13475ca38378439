// Package report renders parsed well-log data as the plain-text
// summary consumed by downstream interpretation tooling: well
// metadata, depth range, and per-curve statistics with a handful of
// representative (depth, value) samples.
//
// The package formats data only. Prompt assembly and any model call
// belong to the caller.
package report

import (
	"fmt"
	"strings"

	"github.com/petralog/lascore/las"
)

// DefaultSampleCount is the number of evenly-spaced samples included
// per curve.
const DefaultSampleCount = 5

// Options controls rendering.
type Options struct {
	// Start and End clip every curve to a depth window before
	// summarizing. Either may be nil. Direction-agnostic.
	Start *float64
	End   *float64

	// SampleCount overrides DefaultSampleCount when > 0.
	SampleCount int
}

// Render builds the summary for the named curves. Curves that cannot
// be extracted are skipped and reported as warnings, mirroring batch
// extraction semantics; the summary never fails outright.
func Render(doc *las.Document, curveNames []string, opts Options) (string, []las.Warning) {
	sampleCount := opts.SampleCount
	if sampleCount <= 0 {
		sampleCount = DefaultSampleCount
	}

	var b strings.Builder
	var warnings []las.Warning

	writeWellInfo(&b, doc.Well)
	writeDepthRange(&b, doc.Well, opts)

	b.WriteString("Curve Data Summary:\n")
	for _, name := range curveNames {
		series, err := doc.Curve(name)
		if err != nil {
			warnings = append(warnings, las.Warning{
				Message: fmt.Sprintf("skipping curve %s: %v", name, err),
			})
			continue
		}
		series = series.Clip(opts.Start, opts.End)
		writeCurve(&b, series, sampleCount)
	}

	return b.String(), warnings
}

func writeWellInfo(b *strings.Builder, well las.WellMetadata) {
	b.WriteString("Well Information:\n")
	if well.WellName != "" {
		fmt.Fprintf(b, "- Well Name: %s\n", well.WellName)
	}
	if well.FieldName != "" {
		fmt.Fprintf(b, "- Field: %s\n", well.FieldName)
	}
	if well.Company != "" {
		fmt.Fprintf(b, "- Company: %s\n", well.Company)
	}
	if well.Date != "" {
		fmt.Fprintf(b, "- Date: %s\n", well.Date)
	}
	b.WriteString("\n")
}

func writeDepthRange(b *strings.Builder, well las.WellMetadata, opts Options) {
	start, end := opts.Start, opts.End
	if start == nil {
		start = well.StartDepth
	}
	if end == nil {
		end = well.StopDepth
	}
	if start != nil && end != nil {
		fmt.Fprintf(b, "Depth Range: %g to %g %s\n\n", *start, *end, well.DepthUnit)
	}
}

func writeCurve(b *strings.Builder, series *las.Series, sampleCount int) {
	if series.Unit != "" {
		fmt.Fprintf(b, "\n%s (%s):\n", series.Mnemonic, series.Unit)
	} else {
		fmt.Fprintf(b, "\n%s:\n", series.Mnemonic)
	}

	stats := series.Statistics()
	fmt.Fprintf(b, "  - Minimum: %s\n", formatStat(stats.Min))
	fmt.Fprintf(b, "  - Maximum: %s\n", formatStat(stats.Max))
	fmt.Fprintf(b, "  - Average: %s\n", formatStat(stats.Mean))
	fmt.Fprintf(b, "  - Std Dev: %s\n", formatStat(stats.Std))

	samples := series.Samples(sampleCount)
	if len(samples) == 0 {
		return
	}
	pairs := make([]string, len(samples))
	for i, sample := range samples {
		pairs[i] = fmt.Sprintf("%.2f: %.2f", sample.Depth, sample.Value)
	}
	fmt.Fprintf(b, "  - Sample values: %s\n", strings.Join(pairs, ", "))
}

func formatStat(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.4f", *v)
}
