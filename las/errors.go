package las

import (
	"fmt"
	"strings"

	"github.com/petralog/lascore/errors"
)

// FormatError reports that input could not be parsed as a LAS document
// at all, or that zero data rows survived parsing. It wraps
// errors.ErrFormat, so errors.Is(err, errors.ErrFormat) holds.
type FormatError struct {
	// Line is the 1-based line where parsing failed, 0 when the
	// failure is not tied to a single line.
	Line int
	// Reason is a human-readable description of the failure.
	Reason string

	errs []error
}

func newFormatError(line int, format string, args ...interface{}) *FormatError {
	return &FormatError{
		Line:   line,
		Reason: fmt.Sprintf(format, args...),
		errs:   []error{errors.ErrFormat},
	}
}

// newDepthIndexError marks the failure with both ErrFormat and
// ErrNoDepthIndex so callers can match either sentinel.
func newDepthIndexError(line int, format string, args ...interface{}) *FormatError {
	return &FormatError{
		Line:   line,
		Reason: fmt.Sprintf(format, args...),
		errs:   []error{errors.ErrFormat, errors.ErrNoDepthIndex},
	}
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("invalid LAS format at line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("invalid LAS format: %s", e.Reason)
}

// Unwrap exposes the sentinel errors for errors.Is/As.
func (e *FormatError) Unwrap() []error {
	return e.errs
}

// CurveNotFoundError reports that a requested curve mnemonic is absent
// from the document's curve section. It wraps errors.ErrCurveNotFound.
type CurveNotFoundError struct {
	Mnemonic  string
	Available []string

	err error
}

func newCurveNotFoundError(mnemonic string, available []string) *CurveNotFoundError {
	return &CurveNotFoundError{
		Mnemonic:  mnemonic,
		Available: available,
		err:       errors.ErrCurveNotFound,
	}
}

// Error implements the error interface.
func (e *CurveNotFoundError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("curve %q not found", e.Mnemonic)
	}
	return fmt.Sprintf("curve %q not found (available: %s)",
		e.Mnemonic, strings.Join(e.Available, ", "))
}

// Unwrap exposes the ErrCurveNotFound sentinel for errors.Is/As.
func (e *CurveNotFoundError) Unwrap() error {
	return e.err
}
