// Package xerr defines the sentinel error kinds shared across the
// solver and its collaborators, so callers can distinguish failure
// modes with errors.Is instead of string matching.
package xerr

import "errors"

var (
	// ErrDimensionMismatch signals operands of incompatible shape (dot, add, addcol).
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrOutOfBounds signals a linear or column index outside the valid range.
	ErrOutOfBounds = errors.New("out of bounds")

	// ErrMaxIterationsExceeded signals the extractor exhausted its retry budget.
	ErrMaxIterationsExceeded = errors.New("max iterations exceeded")

	// ErrTooManyFreeColumns signals a triangular system is too under-determined
	// to enumerate (n - rank exceeds the configured cap).
	ErrTooManyFreeColumns = errors.New("too many free columns to enumerate")

	// ErrParse signals a malformed program file.
	ErrParse = errors.New("parse error")

	// ErrIO signals an underlying file operation failed.
	ErrIO = errors.New("io error")

	// ErrCancelled signals the caller's context was cancelled mid-extraction.
	ErrCancelled = errors.New("cancelled")
)
