// Package errors provides error handling for lascore.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - PII-safe error formatting
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Add hints for users
//	return errors.WithHint(err, "check that the file is LAS 1.2/2.0/3.0")
//
//	// Check errors
//	if errors.Is(err, errors.ErrFormat) {
//	    // reject the file
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is         = crdb.Is
	IsAny      = crdb.IsAny
	As         = crdb.As
	Unwrap     = crdb.Unwrap
	UnwrapOnce = crdb.UnwrapOnce
	UnwrapAll  = crdb.UnwrapAll
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Common sentinel errors for use across lascore.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrFormat indicates the input does not parse as a LAS document,
	// or that zero data rows survived parsing. Fatal to a parse call.
	ErrFormat = New("invalid LAS format")

	// ErrCurveNotFound indicates a requested curve mnemonic is absent
	// from the document's curve section.
	ErrCurveNotFound = New("curve not found")

	// ErrNoDepthIndex indicates no column could be resolved as the
	// depth index (empty curve section, or no DEPT/DEPTH/MD column).
	ErrNoDepthIndex = New("no depth index column")
)

// IsFormatError checks if an error is or wraps ErrFormat.
func IsFormatError(err error) bool {
	return err != nil && Is(err, ErrFormat)
}

// IsCurveNotFoundError checks if an error is or wraps ErrCurveNotFound.
func IsCurveNotFoundError(err error) bool {
	return err != nil && Is(err, ErrCurveNotFound)
}

// NewFormatError creates a format error with a formatted message.
func NewFormatError(format string, args ...interface{}) error {
	return Wrap(ErrFormat, Newf(format, args...).Error())
}
