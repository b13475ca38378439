package las

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petralog/lascore/errors"
	"github.com/petralog/lascore/internal/util"
)

func parseSample(t *testing.T) *Document {
	t.Helper()
	doc, err := ParseBytes([]byte(sampleLAS))
	require.NoError(t, err)
	return doc
}

func TestCurveAlignment(t *testing.T) {
	doc := parseSample(t)

	gr, err := doc.Curve("GR")
	require.NoError(t, err)

	// Row at 1671.000 has a null GR and must be dropped from both
	// sequences in lockstep.
	require.Equal(t, len(gr.Depths), len(gr.Values))
	assert.Equal(t, []float64{1670.0, 1670.5, 1671.5, 1672.0}, gr.Depths)
	assert.Equal(t, []float64{85.2, 90.1, 95.0, 88.8}, gr.Values)
	assert.Equal(t, "GAPI", gr.Unit)
	assert.Equal(t, "GAMMA RAY", gr.Description)
}

func TestCurveNullExclusion(t *testing.T) {
	doc := parseSample(t)

	rhob, err := doc.Curve("RHOB")
	require.NoError(t, err)

	for _, v := range rhob.Values {
		assert.NotEqual(t, -999.25, v, "null sentinel leaked into series")
	}
	assert.Equal(t, []float64{1670.0, 1671.0, 1671.5, 1672.0}, rhob.Depths)
}

func TestCurveCaseInsensitive(t *testing.T) {
	doc := parseSample(t)

	gr, err := doc.Curve("gr")
	require.NoError(t, err)
	assert.Equal(t, "GR", gr.Mnemonic)
}

func TestCurveNotFound(t *testing.T) {
	doc := parseSample(t)

	_, err := doc.Curve("NPHI")
	require.Error(t, err)
	assert.True(t, errors.IsCurveNotFoundError(err))

	var notFound *CurveNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "NPHI", notFound.Mnemonic)
	assert.Equal(t, []string{"GR", "RHOB"}, notFound.Available)
}

func TestAllCurves(t *testing.T) {
	doc := parseSample(t)

	series, warnings := doc.AllCurves()
	assert.Empty(t, warnings)
	assert.Len(t, series, 2)
	assert.Contains(t, series, "GR")
	assert.Contains(t, series, "RHOB")
	assert.NotContains(t, series, "DEPT", "depth index is not an available curve")
}

func TestAllCurvesPartialSuccess(t *testing.T) {
	doc := parseSample(t)

	// A curve declared past the matrix width cannot be extracted;
	// the batch must still return the others and warn by name.
	doc.Curves = append(doc.Curves, CurveDefinition{Mnemonic: "BADCURVE", Column: 3})

	series, warnings := doc.AllCurves()
	assert.Len(t, series, 2)
	assert.Contains(t, series, "GR")
	assert.Contains(t, series, "RHOB")
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0].Message, "BADCURVE")
}

func TestSeriesClip(t *testing.T) {
	doc := parseSample(t)
	gr, err := doc.Curve("GR")
	require.NoError(t, err)

	tests := []struct {
		name       string
		start, end *float64
		depths     []float64
	}{
		{
			name:  "both bounds",
			start: util.Ptr(1670.5), end: util.Ptr(1671.5),
			depths: []float64{1670.5, 1671.5},
		},
		{
			name:  "reversed bounds are direction-agnostic",
			start: util.Ptr(1671.5), end: util.Ptr(1670.5),
			depths: []float64{1670.5, 1671.5},
		},
		{
			name:  "open end",
			start: util.Ptr(1671.0),
			depths: []float64{1671.5, 1672.0},
		},
		{
			name: "open start",
			end:  util.Ptr(1670.5),
			depths: []float64{1670.0, 1670.5},
		},
		{
			name:   "no bounds keeps everything",
			depths: []float64{1670.0, 1670.5, 1671.5, 1672.0},
		},
		{
			name:  "bounds inclusive",
			start: util.Ptr(1670.0), end: util.Ptr(1672.0),
			depths: []float64{1670.0, 1670.5, 1671.5, 1672.0},
		},
		{
			name:  "empty window",
			start: util.Ptr(100.0), end: util.Ptr(200.0),
			depths: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clipped := gr.Clip(tt.start, tt.end)
			assert.Equal(t, tt.depths, clipped.Depths)
			assert.Equal(t, len(clipped.Depths), len(clipped.Values))
			assert.Equal(t, gr.Mnemonic, clipped.Mnemonic)
		})
	}
}

func TestSeriesClipDescendingLog(t *testing.T) {
	s := &Series{
		Mnemonic: "GR",
		Depths:   []float64{1672.0, 1671.5, 1671.0, 1670.5},
		Values:   []float64{1.0, 2.0, 3.0, 4.0},
	}

	clipped := s.Clip(util.Ptr(1670.5), util.Ptr(1671.5))
	assert.Equal(t, []float64{1671.5, 1671.0, 1670.5}, clipped.Depths, "original order preserved")
	assert.Equal(t, []float64{2.0, 3.0, 4.0}, clipped.Values)
}

func TestSeriesSamples(t *testing.T) {
	s := &Series{
		Depths: []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		Values: []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
	}

	samples := s.Samples(5)
	require.Len(t, samples, 5)
	assert.Equal(t, Sample{Depth: 1, Value: 10}, samples[0])
	assert.Equal(t, Sample{Depth: 3, Value: 30}, samples[1])
	assert.Equal(t, Sample{Depth: 9, Value: 90}, samples[4])

	assert.Len(t, s.Samples(100), 10, "n capped at series length")
	assert.Nil(t, s.Samples(0))
	assert.Nil(t, (&Series{}).Samples(5))
}

func TestSeriesDepthRange(t *testing.T) {
	doc := parseSample(t)
	gr, err := doc.Curve("GR")
	require.NoError(t, err)

	min, max := gr.DepthRange()
	require.NotNil(t, min)
	require.NotNil(t, max)
	assert.Equal(t, 1670.0, *min)
	assert.Equal(t, 1672.0, *max)

	min, max = (&Series{}).DepthRange()
	assert.Nil(t, min)
	assert.Nil(t, max)
}
