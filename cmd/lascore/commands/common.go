package commands

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/petralog/lascore/config"
	"github.com/petralog/lascore/errors"
	"github.com/petralog/lascore/las"
)

// parseDocument loads and parses a LAS file using the configured
// parse conventions, printing any non-fatal warnings.
func parseDocument(path string) (*las.Document, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load configuration")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	doc, err := las.ParseBytesWith(data, cfg.Parser.Options())
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}

	printWarnings(doc.Warnings)
	return doc, nil
}

func printWarnings(warnings []las.Warning) {
	for _, w := range warnings {
		pterm.Warning.Println(w.String())
	}
}

// formatFloat renders an optional float for table output.
func formatFloat(v *float64) string {
	if v == nil {
		return "-"
	}
	return pterm.Sprintf("%.4f", *v)
}
