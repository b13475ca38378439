package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petralog/lascore/las"
)

const fixtureLAS = `~VERSION
 VERS. 2.0 :
~WELL
 STRT.M  1670.0 : START
 STOP.M  1674.0 : STOP
 NULL. -999.25 :
 WELL.  TEST 9-9 : WELL
 FLD .  BASIN : FIELD
 COMP.  ACME ENERGY : COMPANY
~CURVE
 DEPT.M :
 GR  .GAPI : GAMMA RAY
 RHOB.K/M3 : BULK DENSITY
~A
1670.0  80.0  2250.0
1671.0  82.0  2255.0
1672.0  84.0  2260.0
1673.0  86.0  2265.0
1674.0  88.0  2270.0
`

func parseFixture(t *testing.T) *las.Document {
	t.Helper()
	doc, err := las.ParseBytes([]byte(fixtureLAS))
	require.NoError(t, err)
	return doc
}

func TestRenderIncludesWellAndCurves(t *testing.T) {
	doc := parseFixture(t)

	text, warnings := Render(doc, []string{"GR", "RHOB"}, Options{})
	assert.Empty(t, warnings)

	assert.Contains(t, text, "- Well Name: TEST 9-9")
	assert.Contains(t, text, "- Field: BASIN")
	assert.Contains(t, text, "- Company: ACME ENERGY")
	assert.Contains(t, text, "Depth Range: 1670 to 1674 M")

	assert.Contains(t, text, "GR (GAPI):")
	assert.Contains(t, text, "RHOB (K/M3):")
	assert.Contains(t, text, "- Minimum: 80.0000")
	assert.Contains(t, text, "- Maximum: 88.0000")
	assert.Contains(t, text, "- Average: 84.0000")
}

func TestRenderSamplesEvenlySpaced(t *testing.T) {
	doc := parseFixture(t)

	text, _ := Render(doc, []string{"GR"}, Options{})
	// Five samples over five rows: every row appears.
	assert.Contains(t, text,
		"Sample values: 1670.00: 80.00, 1671.00: 82.00, 1672.00: 84.00, 1673.00: 86.00, 1674.00: 88.00")
}

func TestRenderClipsDepthWindow(t *testing.T) {
	doc := parseFixture(t)

	start, end := 1671.0, 1673.0
	text, _ := Render(doc, []string{"GR"}, Options{Start: &start, End: &end})

	assert.Contains(t, text, "Depth Range: 1671 to 1673 M")
	assert.Contains(t, text, "- Minimum: 82.0000")
	assert.Contains(t, text, "- Maximum: 86.0000")
	assert.NotContains(t, text, "80.00,")
}

func TestRenderSkipsUnknownCurves(t *testing.T) {
	doc := parseFixture(t)

	text, warnings := Render(doc, []string{"GR", "BADCURVE"}, Options{})
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0].Message, "BADCURVE")
	assert.Contains(t, text, "GR (GAPI):")
	assert.False(t, strings.Contains(text, "BADCURVE"))
}

func TestRenderEmptyWindowShowsNA(t *testing.T) {
	doc := parseFixture(t)

	start, end := 100.0, 200.0
	text, warnings := Render(doc, []string{"GR"}, Options{Start: &start, End: &end})
	assert.Empty(t, warnings)
	assert.Contains(t, text, "- Minimum: N/A")
	assert.NotContains(t, text, "Sample values")
}
