package las

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/petralog/lascore/internal/util"
	"github.com/petralog/lascore/logger"
)

// Options controls parse behavior. The zero value selects defaults;
// conventions are explicit here rather than ambient state so callers
// can override them per file.
type Options struct {
	// NullTolerance is the absolute tolerance used when comparing a
	// data value against the declared null sentinel. Default 1e-6.
	NullTolerance float64

	// DepthMnemonics are curve names recognized as the depth index
	// when the index is not the first column. Case-insensitive.
	// Default: DEPT, DEPTH, MD.
	DepthMnemonics []string
}

func (o Options) withDefaults() Options {
	if o.NullTolerance <= 0 {
		o.NullTolerance = 1e-6
	}
	if len(o.DepthMnemonics) == 0 {
		o.DepthMnemonics = []string{"DEPT", "DEPTH", "MD"}
	}
	return o
}

// Parse reads an entire LAS file from r and parses it.
// Callers wanting cancellation or timeouts should bound the read
// before invoking the parser; no I/O occurs after this point.
func Parse(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseBytes(data)
}

// ParseFile parses the LAS file at path.
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseBytes(data)
}

// ParseBytes parses raw LAS file content with default Options.
func ParseBytes(data []byte) (*Document, error) {
	return ParseBytesWith(data, Options{})
}

// ParseBytesWith parses raw LAS file content. Input is decoded as
// UTF-8 when valid, falling back to Windows-1252 (the common legacy
// encoding for operator-supplied logs). On success the returned
// Document carries any non-fatal warnings accumulated along the way.
func ParseBytesWith(data []byte, opts Options) (*Document, error) {
	text, err := decode(data)
	if err != nil {
		return nil, newFormatError(0, "undecodable input: %v", err)
	}

	p := &parser{
		opts: opts.withDefaults(),
		doc:  &Document{Well: WellMetadata{NullValue: DefaultNullValue, DepthUnit: "M"}},
	}
	if err := p.run(text); err != nil {
		return nil, err
	}

	logger.Debugw("LAS document parsed",
		logger.FieldRows, p.doc.RowCount(),
		logger.FieldCurveCount, len(p.doc.Curves),
		logger.FieldWarnings, len(p.doc.Warnings))

	return p.doc, nil
}

// decode converts raw bytes to text, stripping a UTF-8 BOM if present.
func decode(data []byte) (string, error) {
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		data = data[3:]
	}
	if utf8.Valid(data) {
		return string(data), nil
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

// numberedLine pairs a raw line with its 1-based position in the file.
type numberedLine struct {
	num  int
	text string
}

type parser struct {
	opts Options
	doc  *Document

	// dataLines buffers the raw data-section content; it is parsed
	// after the header sections so the declared curve count is known
	// even in files with unusual section ordering.
	dataLines    []numberedLine
	dataLineNum  int // line of the ~A/~D section header
	sawDataBlock bool
}

func (p *parser) warnf(line int, format string, args ...interface{}) {
	p.doc.Warnings = append(p.doc.Warnings, Warning{
		Line:    line,
		Message: fmt.Sprintf(format, args...),
	})
}

func (p *parser) run(text string) error {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	var current *Section
	sawSection := false

	for i, raw := range lines {
		lineNum := i + 1
		line := strings.TrimRight(raw, "\r")
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		if strings.HasPrefix(trimmed, "~") {
			sawSection = true
			section := Section{
				Name: strings.TrimSpace(trimmed[1:]),
				Kind: sectionKind(trimmed[1:]),
				Line: lineNum,
			}
			if section.Kind == SectionUnknown {
				p.warnf(lineNum, "unrecognized section %q", section.Name)
			}
			p.doc.Sections = append(p.doc.Sections, section)
			current = &p.doc.Sections[len(p.doc.Sections)-1]
			if current.Kind == SectionData {
				p.sawDataBlock = true
				p.dataLineNum = lineNum
			}
			continue
		}

		if current == nil {
			// Content before any ~ section is not LAS.
			return newFormatError(lineNum, "content before first section header")
		}

		switch current.Kind {
		case SectionData:
			p.dataLines = append(p.dataLines, numberedLine{num: lineNum, text: trimmed})
			current.Raw = append(current.Raw, line)
		case SectionOther, SectionUnknown:
			current.Raw = append(current.Raw, line)
		default:
			entry, ok := parseHeaderLine(line)
			if !ok {
				p.warnf(lineNum, "malformed header line %q", trimmed)
				continue
			}
			current.Entries = append(current.Entries, entry)
		}
	}

	if !sawSection {
		return newFormatError(0, "no ~ section headers found")
	}

	p.deriveVersion()
	p.deriveCurves()
	p.deriveWell()

	if len(p.doc.Curves) == 0 {
		return newDepthIndexError(0, "no curves declared; cannot resolve depth index")
	}
	if err := p.resolveDepthColumn(); err != nil {
		return err
	}
	return p.parseData()
}

// sectionKind maps a section name to its role. Matching is on the
// leading letter, the tolerant convention LAS readers share: writers
// emit anything from "~A" to "~ASCII Log Data".
func sectionKind(name string) SectionKind {
	name = strings.TrimSpace(name)
	if name == "" {
		return SectionUnknown
	}
	switch unicode.ToUpper(rune(name[0])) {
	case 'V':
		return SectionVersion
	case 'W':
		return SectionWell
	case 'C':
		return SectionCurve
	case 'P':
		return SectionParameter
	case 'A', 'D':
		return SectionData
	case 'O':
		return SectionOther
	default:
		return SectionUnknown
	}
}

// parseHeaderLine splits MNEMONIC.UNIT VALUE : DESCRIPTION.
//
// The mnemonic ends at the first period; the unit runs to the first
// whitespace after it; the description starts at the LAST colon.
// First-period/last-colon splitting keeps values like "12:30:00" or
// "3.5 M/FT" intact instead of truncating them at the first token.
func parseHeaderLine(line string) (HeaderEntry, bool) {
	dot := strings.Index(line, ".")
	if dot < 0 {
		return HeaderEntry{}, false
	}
	mnemonic := strings.TrimSpace(line[:dot])
	if mnemonic == "" {
		return HeaderEntry{}, false
	}

	rest := line[dot+1:]
	unit := rest
	remainder := ""
	if idx := strings.IndexFunc(rest, unicode.IsSpace); idx >= 0 {
		unit = rest[:idx]
		remainder = rest[idx:]
	}

	entry := HeaderEntry{Mnemonic: mnemonic, Unit: strings.TrimSpace(unit)}
	if colon := strings.LastIndex(remainder, ":"); colon >= 0 {
		entry.Value = strings.TrimSpace(remainder[:colon])
		entry.Description = strings.TrimSpace(remainder[colon+1:])
	} else {
		entry.Value = strings.TrimSpace(remainder)
	}
	return entry, true
}

func (p *parser) deriveVersion() {
	section := p.doc.Section(SectionVersion)
	if section == nil {
		p.warnf(0, "missing version section")
		return
	}
	if vers := section.Entry("VERS"); vers != nil {
		p.doc.Version = vers.Value
	}
	if wrap := section.Entry("WRAP"); wrap != nil {
		p.doc.Wrap = strings.EqualFold(wrap.Value, "YES")
	}
}

func (p *parser) deriveCurves() {
	section := p.doc.Section(SectionCurve)
	if section == nil {
		return
	}
	for i, entry := range section.Entries {
		p.doc.Curves = append(p.doc.Curves, CurveDefinition{
			Mnemonic:    entry.Mnemonic,
			Unit:        entry.Unit,
			Description: entry.Description,
			Column:      i,
		})
	}
}

func (p *parser) deriveWell() {
	section := p.doc.Section(SectionWell)
	if section == nil {
		p.warnf(0, "missing well section")
		return
	}

	p.doc.Well.WellName = p.textValue(section, "WELL")
	p.doc.Well.FieldName = p.textValue(section, "FLD")
	p.doc.Well.Company = p.textValue(section, "COMP")
	p.doc.Well.Date = p.textValue(section, "DATE")

	p.doc.Well.StartDepth = p.floatValue(section, "STRT")
	p.doc.Well.StopDepth = p.floatValue(section, "STOP")
	p.doc.Well.Step = p.floatValue(section, "STEP")

	if strt := section.Entry("STRT"); strt != nil && strt.Unit != "" {
		p.doc.Well.DepthUnit = strt.Unit
	}

	if null := section.Entry("NULL"); null != nil {
		if v, err := strconv.ParseFloat(null.Value, 64); err == nil {
			p.doc.Well.NullValue = v
		} else {
			p.warnf(0, "unparsable NULL value %q, using %v", null.Value, DefaultNullValue)
		}
	}
}

// textValue extracts a free-text well field. LAS 1.2 places textual
// well values after the colon (where 2.0 puts the description), so
// fall back to the description when the value slot is empty.
func (p *parser) textValue(section *Section, mnemonic string) string {
	entry := section.Entry(mnemonic)
	if entry == nil {
		return ""
	}
	if strings.HasPrefix(p.doc.Version, "1.") && entry.Description != "" {
		return entry.Description
	}
	if entry.Value == "" {
		return entry.Description
	}
	return entry.Value
}

func (p *parser) floatValue(section *Section, mnemonic string) *float64 {
	entry := section.Entry(mnemonic)
	if entry == nil || entry.Value == "" {
		return nil
	}
	v, err := strconv.ParseFloat(entry.Value, 64)
	if err != nil {
		p.warnf(0, "non-numeric %s value %q", mnemonic, entry.Value)
		return nil
	}
	return util.Ptr(v)
}

// resolveDepthColumn locates the index column: a curve mnemonically
// named as depth wins, otherwise the first column serves by
// convention.
func (p *parser) resolveDepthColumn() error {
	for _, c := range p.doc.Curves {
		for _, m := range p.opts.DepthMnemonics {
			if strings.EqualFold(c.Mnemonic, m) {
				p.doc.depthCol = c.Column
				return nil
			}
		}
	}
	p.doc.depthCol = 0
	return nil
}

// parseData converts the buffered data-section lines into the numeric
// matrix. Row-level problems are recoverable: the row is skipped and a
// warning recorded. Only a data section that yields zero rows is
// fatal.
func (p *parser) parseData() error {
	if !p.sawDataBlock {
		return newFormatError(0, "missing data section")
	}

	ncols := len(p.doc.Curves)

	if p.doc.Wrap {
		p.parseWrappedRows(ncols)
	} else {
		p.parseUnwrappedRows(ncols)
	}

	if len(p.doc.data) == 0 {
		return newFormatError(p.dataLineNum, "zero parsable data rows")
	}
	return nil
}

func (p *parser) parseUnwrappedRows(ncols int) {
	for _, line := range p.dataLines {
		fields := strings.Fields(line.text)
		if len(fields) != ncols {
			p.warnf(line.num, "row has %d fields, expected %d", len(fields), ncols)
			continue
		}
		row, ok := p.parseRow(fields, line.num)
		if ok {
			p.doc.data = append(p.doc.data, row)
		}
	}
}

// parseWrappedRows handles WRAP YES files, where one physical sample
// spans multiple lines: tokens accumulate until the declared column
// count is reached.
func (p *parser) parseWrappedRows(ncols int) {
	var pending []string
	pendingLine := 0

	for _, line := range p.dataLines {
		if len(pending) == 0 {
			pendingLine = line.num
		}
		pending = append(pending, strings.Fields(line.text)...)

		if len(pending) < ncols {
			continue
		}
		if len(pending) > ncols {
			p.warnf(pendingLine, "wrapped row has %d fields, expected %d", len(pending), ncols)
			pending = nil
			continue
		}
		if row, ok := p.parseRow(pending, pendingLine); ok {
			p.doc.data = append(p.doc.data, row)
		}
		pending = nil
	}

	if len(pending) > 0 {
		p.warnf(pendingLine, "truncated wrapped row with %d of %d fields", len(pending), ncols)
	}
}

// parseRow converts one row of tokens. Values equal to the null
// sentinel (within tolerance) become NaN: missing measurements, not
// errors. An unparsable token invalidates the whole row.
func (p *parser) parseRow(fields []string, lineNum int) ([]float64, bool) {
	row := make([]float64, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			p.warnf(lineNum, "unparsable numeric token %q", field)
			return nil, false
		}
		if util.AbsFloat64(v-p.doc.Well.NullValue) < p.opts.NullTolerance {
			v = math.NaN()
		}
		row[i] = v
	}
	return row, true
}
