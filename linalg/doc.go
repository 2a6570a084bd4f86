// Package linalg provides validated dense matrix and vector operations on
// top of gonum. It coerces arbitrary user-supplied numeric data into
// canonical immutable types, checks dimensional compatibility before every
// kernel call, and maps domain failures to a small typed error taxonomy
// (ErrInvalidInput, ErrDimensionMismatch, ErrSingular).
//
// All operations are pure and stateless: the same input always yields the
// same result or the same error, and concurrent calls need no coordination.
package linalg
