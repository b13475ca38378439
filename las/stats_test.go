package las

import (
	"math"
	"testing"
)

func TestDescribeKnownSeries(t *testing.T) {
	stats := Describe([]float64{1.0, 2.0, 3.0, 4.0})

	if stats.Min == nil || *stats.Min != 1.0 {
		t.Errorf("Min = %v, want 1.0", stats.Min)
	}
	if stats.Max == nil || *stats.Max != 4.0 {
		t.Errorf("Max = %v, want 4.0", stats.Max)
	}
	if stats.Mean == nil || *stats.Mean != 2.5 {
		t.Errorf("Mean = %v, want 2.5", stats.Mean)
	}
	// Population standard deviation: sqrt(1.25).
	want := math.Sqrt(1.25)
	if stats.Std == nil || math.Abs(*stats.Std-want) > 1e-12 {
		t.Errorf("Std = %v, want %v", stats.Std, want)
	}
}

func TestDescribeEmptyIsAllNil(t *testing.T) {
	for _, values := range [][]float64{nil, {}} {
		stats := Describe(values)
		if stats.Min != nil || stats.Max != nil || stats.Mean != nil || stats.Std != nil {
			t.Errorf("Describe(%v) = %+v, want all nil", values, stats)
		}
	}
}

func TestDescribeSingleValue(t *testing.T) {
	stats := Describe([]float64{42.0})

	if *stats.Min != 42.0 || *stats.Max != 42.0 || *stats.Mean != 42.0 {
		t.Errorf("single-value stats = %+v", stats)
	}
	if *stats.Std != 0.0 {
		t.Errorf("Std = %v, want 0", *stats.Std)
	}
}

func TestDescribeNegativeValues(t *testing.T) {
	stats := Describe([]float64{-10.0, -20.0, -30.0})

	if *stats.Min != -30.0 {
		t.Errorf("Min = %v, want -30", *stats.Min)
	}
	if *stats.Max != -10.0 {
		t.Errorf("Max = %v, want -10", *stats.Max)
	}
	if *stats.Mean != -20.0 {
		t.Errorf("Mean = %v, want -20", *stats.Mean)
	}
}

func TestSeriesStatistics(t *testing.T) {
	doc, err := ParseBytes([]byte(sampleLAS))
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}
	gr, err := doc.Curve("GR")
	if err != nil {
		t.Fatalf("Curve(GR) error = %v", err)
	}

	stats := gr.Statistics()
	if *stats.Min != 85.2 {
		t.Errorf("Min = %v, want 85.2", *stats.Min)
	}
	if *stats.Max != 95.0 {
		t.Errorf("Max = %v, want 95.0", *stats.Max)
	}
}
