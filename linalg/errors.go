package linalg

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Every failure produced by this package wraps exactly
// one of them, so callers match with errors.Is and never need to parse
// messages.
var (
	// ErrInvalidInput marks input that cannot be interpreted as a valid
	// numeric matrix or vector: empty, ragged, more than two dimensions,
	// or a non-numeric entry.
	ErrInvalidInput = errors.New("linalg: invalid input")

	// ErrDimensionMismatch marks operands whose shapes are incompatible
	// with the requested operation.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrSingular marks a square matrix that has no inverse under the
	// package's determinant tolerance policy.
	ErrSingular = errors.New("linalg: singular matrix")
)

// OpError is the concrete error type returned by every operation. It carries
// the operation name, one of the three sentinel kinds, and a human-readable
// detail message that is safe to surface to end users as-is.
type OpError struct {
	Op     string // operation name, e.g. "Determinant"; may be empty
	Kind   error  // one of ErrInvalidInput, ErrDimensionMismatch, ErrSingular
	Detail string
}

func (e *OpError) Error() string {
	if e.Op == "" {
		return e.Detail
	}
	return e.Op + ": " + e.Detail
}

// Unwrap exposes the sentinel kind to errors.Is.
func (e *OpError) Unwrap() error { return e.Kind }

// Errorf builds an OpError of the given kind with a formatted detail message.
func Errorf(op string, kind error, format string, args ...any) *OpError {
	return &OpError{Op: op, Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

func invalidInputf(op, format string, args ...any) *OpError {
	return Errorf(op, ErrInvalidInput, format, args...)
}

func dimensionf(op, format string, args ...any) *OpError {
	return Errorf(op, ErrDimensionMismatch, format, args...)
}

func singularf(op, format string, args ...any) *OpError {
	return Errorf(op, ErrSingular, format, args...)
}
