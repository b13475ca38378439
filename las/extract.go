package las

import (
	"math"

	"github.com/petralog/lascore/internal/util"
)

// Series is one curve's extracted measurements: parallel depth and
// value sequences of equal length, ordered as logged (ascending or
// descending depth per the file's step sign). Rows where either the
// depth or the value was missing are dropped from both sequences in
// lockstep, so index i always refers to one physical sample.
type Series struct {
	Mnemonic    string
	Unit        string
	Description string
	Depths      []float64
	Values      []float64
}

// Sample is one (depth, value) pair.
type Sample struct {
	Depth float64
	Value float64
}

// Len reports the number of samples in the series.
func (s *Series) Len() int {
	return len(s.Values)
}

// Curve extracts the named curve (case-insensitive exact mnemonic
// match) as a depth-aligned series. Returns *CurveNotFoundError when
// the mnemonic is not declared in the curve section.
func (d *Document) Curve(name string) (*Series, error) {
	def := d.curveDef(name)
	if def == nil {
		return nil, newCurveNotFoundError(name, d.CurveNames())
	}
	return d.extractColumn(def), nil
}

// AllCurves extracts every available curve in a single pass over the
// data matrix. A curve that yields no samples is still returned (an
// empty series is valid data); warnings report curves whose columns
// fall outside the matrix, which are omitted.
func (d *Document) AllCurves() (map[string]*Series, []Warning) {
	var warnings []Warning
	out := make(map[string]*Series, len(d.Curves))

	for i := range d.Curves {
		def := &d.Curves[i]
		if def.Column == d.depthCol {
			continue
		}
		// Parser-produced matrices are always full width (short rows
		// are rejected), so this guards documents assembled by hand or
		// curve definitions added after parsing.
		if len(d.data) > 0 && def.Column >= len(d.data[0]) {
			warnings = append(warnings, Warning{
				Message: "curve " + def.Mnemonic + " has no data column",
			})
			continue
		}
		out[def.Mnemonic] = d.extractColumn(def)
	}
	return out, warnings
}

// extractColumn walks the depth and value columns in lockstep,
// keeping a sample only when both fields are present.
func (d *Document) extractColumn(def *CurveDefinition) *Series {
	s := &Series{
		Mnemonic:    def.Mnemonic,
		Unit:        def.Unit,
		Description: def.Description,
	}
	for _, row := range d.data {
		depth, value := row[d.depthCol], row[def.Column]
		if math.IsNaN(depth) || math.IsNaN(value) {
			continue
		}
		s.Depths = append(s.Depths, depth)
		s.Values = append(s.Values, value)
	}
	return s
}

// Clip returns the subsequence of samples whose depth falls within
// [min(start,end), max(start,end)] inclusive, preserving order. The
// filter is direction-agnostic: it behaves the same for ascending and
// descending logs. Either bound may be nil to leave that side open.
func (s *Series) Clip(start, end *float64) *Series {
	lo, hi := math.Inf(-1), math.Inf(1)
	switch {
	case start != nil && end != nil:
		lo, hi = math.Min(*start, *end), math.Max(*start, *end)
	case start != nil:
		lo = *start
	case end != nil:
		hi = *end
	}

	out := &Series{Mnemonic: s.Mnemonic, Unit: s.Unit, Description: s.Description}
	for i, d := range s.Depths {
		if d < lo || d > hi {
			continue
		}
		out.Depths = append(out.Depths, d)
		out.Values = append(out.Values, s.Values[i])
	}
	return out
}

// Samples returns up to n evenly-spaced (depth, value) pairs from the
// series, in order. Used to hand a small representative excerpt to
// downstream consumers without shipping the whole curve.
func (s *Series) Samples(n int) []Sample {
	if n <= 0 || s.Len() == 0 {
		return nil
	}
	if n > s.Len() {
		n = s.Len()
	}
	out := make([]Sample, 0, n)
	for i := 0; i < n; i++ {
		idx := i * s.Len() / n
		out = append(out, Sample{Depth: s.Depths[idx], Value: s.Values[idx]})
	}
	return out
}

// DepthRange reports the minimum and maximum depth of the surviving
// samples, nil on an empty series. Unlike the nominal STRT/STOP header
// values, this reflects the data actually present.
func (s *Series) DepthRange() (min, max *float64) {
	if s.Len() == 0 {
		return nil, nil
	}
	lo, hi := s.Depths[0], s.Depths[0]
	for _, d := range s.Depths[1:] {
		if d < lo {
			lo = d
		}
		if d > hi {
			hi = d
		}
	}
	return util.Ptr(lo), util.Ptr(hi)
}
