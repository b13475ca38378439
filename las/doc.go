// Package las parses Log ASCII Standard (LAS) well-log files into typed
// documents and extracts depth-aligned curve series with descriptive
// statistics.
//
// The package is a pure transformation: raw file bytes in, in-memory
// structured data out. It holds no global state and a Document is safe
// to read from multiple goroutines once parsed.
//
// Parsing is tolerant: structural failures (not a LAS file, zero
// usable data rows) abort with a FormatError, while row-level problems
// (field-count mismatches, unparsable numeric tokens) drop the
// offending row and accumulate a Warning so a mostly-valid file can
// still be ingested.
//
//	doc, err := las.ParseFile("well.las")
//	if err != nil {
//	    return err
//	}
//	gr, err := doc.Curve("GR")
//	if err != nil {
//	    return err
//	}
//	stats := gr.Statistics()
package las
