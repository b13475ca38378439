package las

import (
	"fmt"
	"strings"
)

// DefaultNullValue is the null sentinel assumed when the well section
// declares none. -999.25 is the de-facto industry convention.
const DefaultNullValue = -999.25

// SectionKind identifies the role of a LAS section.
type SectionKind string

const (
	SectionVersion   SectionKind = "version"
	SectionWell      SectionKind = "well"
	SectionCurve     SectionKind = "curve"
	SectionParameter SectionKind = "parameter"
	SectionData      SectionKind = "data"
	SectionOther     SectionKind = "other"
	SectionUnknown   SectionKind = "unknown"
)

// HeaderEntry is one parsed line of a header section:
// MNEMONIC.UNIT VALUE : DESCRIPTION, with unit and description optional.
type HeaderEntry struct {
	Mnemonic    string
	Unit        string
	Value       string
	Description string
}

// Section is one ~-delimited section of a LAS file. Header sections
// carry Entries; the data section and unrecognized sections retain
// their raw lines.
type Section struct {
	Name    string // as written in the file, without the ~
	Kind    SectionKind
	Line    int // 1-based line number of the section header
	Entries []HeaderEntry
	Raw     []string
}

// Entry returns the entry with the given mnemonic (case-insensitive),
// or nil if absent.
func (s *Section) Entry(mnemonic string) *HeaderEntry {
	for i := range s.Entries {
		if strings.EqualFold(s.Entries[i].Mnemonic, mnemonic) {
			return &s.Entries[i]
		}
	}
	return nil
}

// CurveDefinition describes one declared curve and its ordinal column
// in the data matrix.
type CurveDefinition struct {
	Mnemonic    string
	Unit        string
	Description string
	Column      int
}

// WellMetadata is the derived summary of the ~WELL section. Start,
// stop and step are the nominal header values; they may not exactly
// bound the data rows, and step may be negative for reverse-logged
// wells. Numeric fields are nil when absent or unparsable.
type WellMetadata struct {
	WellName   string
	FieldName  string
	Company    string
	Date       string // free text; format varies by operator
	StartDepth *float64
	StopDepth  *float64
	Step       *float64
	DepthUnit  string
	NullValue  float64
}

// Warning records a non-fatal problem encountered while parsing or
// extracting. Line is 1-based, 0 when not line-specific.
type Warning struct {
	Line    int
	Message string
}

func (w Warning) String() string {
	if w.Line > 0 {
		return fmt.Sprintf("line %d: %s", w.Line, w.Message)
	}
	return w.Message
}

// Document is the parsed representation of one LAS file. It exists
// in memory only; persistence of derived artifacts is the caller's
// concern.
type Document struct {
	// Version is the VERS value from the version section ("1.2",
	// "2.0", ...), empty when the section is absent.
	Version string
	// Wrap reports whether the data section uses wrapped lines
	// (WRAP YES), where one physical row spans multiple lines.
	Wrap bool

	Well     WellMetadata
	Curves   []CurveDefinition
	Sections []Section
	Warnings []Warning

	// data is the cleaned numeric matrix, one row per physical
	// sample, one column per declared curve. Missing measurements
	// (null sentinel, unparsable in a surviving row) are NaN.
	data [][]float64

	// depthCol is the resolved index-column ordinal.
	depthCol int
}

// Section returns the first section of the given kind, or nil.
func (d *Document) Section(kind SectionKind) *Section {
	for i := range d.Sections {
		if d.Sections[i].Kind == kind {
			return &d.Sections[i]
		}
	}
	return nil
}

// RowCount reports the number of data rows that survived parsing.
func (d *Document) RowCount() int {
	return len(d.data)
}

// DepthColumn reports the resolved index-column ordinal.
func (d *Document) DepthColumn() int {
	return d.depthCol
}

// curveDef returns the definition for the given mnemonic
// (case-insensitive), or nil if the curve is not declared.
func (d *Document) curveDef(mnemonic string) *CurveDefinition {
	for i := range d.Curves {
		if strings.EqualFold(d.Curves[i].Mnemonic, mnemonic) {
			return &d.Curves[i]
		}
	}
	return nil
}

// AvailableCurves lists the declared curves excluding the depth index,
// in file order. This is the set a caller can extract and plot.
func (d *Document) AvailableCurves() []CurveDefinition {
	curves := make([]CurveDefinition, 0, len(d.Curves))
	for _, c := range d.Curves {
		if c.Column == d.depthCol {
			continue
		}
		curves = append(curves, c)
	}
	return curves
}

// CurveNames lists the mnemonics of AvailableCurves.
func (d *Document) CurveNames() []string {
	available := d.AvailableCurves()
	names := make([]string, len(available))
	for i, c := range available {
		names[i] = c.Mnemonic
	}
	return names
}
