package linalg

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Coercion converts user-supplied data of unknown shape into the canonical
// Matrix / Vector types. It is total: every input either yields a value or an
// ErrInvalidInput naming the label and the first offending token. Nothing
// downstream of coercion ever sees empty, ragged or non-numeric data.

// NewMatrix builds a Matrix from rows of float64 values.
// It fails with ErrInvalidInput when rows are empty or ragged.
func NewMatrix(rows [][]float64) (*Matrix, error) {
	return matrixFromRows(rows, "matrix")
}

// NewVector builds a Vector from a slice of float64 values.
// It fails with ErrInvalidInput when the slice is empty.
func NewVector(data []float64) (*Vector, error) {
	if len(data) == 0 {
		return nil, invalidInputf("vector", "vector must not be empty")
	}
	out := make([]float64, len(data))
	copy(out, data)
	return newVector(out), nil
}

// CoerceMatrix converts v into a Matrix. Accepted inputs: *Matrix (returned
// as-is), *Vector and []float64 (promoted to a single-row matrix),
// [][]float64, and JSON-decoded nested sequences ([]any) whose elements are
// numbers, json.Number values, or numeric strings. The label appears in
// every diagnostic.
func CoerceMatrix(v any, label string) (*Matrix, error) {
	switch x := v.(type) {
	case *Matrix:
		if x == nil {
			return nil, invalidInputf(label, "matrix must not be empty")
		}
		return x, nil
	case *Vector:
		if x == nil {
			return nil, invalidInputf(label, "matrix must not be empty")
		}
		return matrixFromRows([][]float64{x.Slice()}, label)
	case [][]float64:
		return matrixFromRows(x, label)
	case []float64:
		return matrixFromRows([][]float64{x}, label)
	case []any:
		rows, err := rowsFromAny(x, label)
		if err != nil {
			return nil, err
		}
		return matrixFromRows(rows, label)
	case nil:
		return nil, invalidInputf(label, "matrix must not be empty")
	default:
		return nil, invalidInputf(label, "expected a 2-D matrix, got %T", v)
	}
}

// CoerceVector converts v into a Vector, flattening one level of nesting the
// way the matrix path accepts a single row. Accepted inputs: *Vector,
// []float64, [][]float64 (flattened), and JSON-decoded []any of numbers.
func CoerceVector(v any, label string) (*Vector, error) {
	var data []float64
	switch x := v.(type) {
	case *Vector:
		if x == nil {
			return nil, invalidInputf(label, "vector must not be empty")
		}
		return x, nil
	case []float64:
		data = append(data, x...)
	case [][]float64:
		for _, row := range x {
			data = append(data, row...)
		}
	case []any:
		for _, e := range x {
			switch inner := e.(type) {
			case []any:
				for _, ee := range inner {
					f, err := toFloat(ee, label)
					if err != nil {
						return nil, err
					}
					data = append(data, f)
				}
			default:
				f, err := toFloat(e, label)
				if err != nil {
					return nil, err
				}
				data = append(data, f)
			}
		}
	case nil:
		return nil, invalidInputf(label, "vector must not be empty")
	default:
		return nil, invalidInputf(label, "expected a numeric vector, got %T", v)
	}
	if len(data) == 0 {
		return nil, invalidInputf(label, "vector must not be empty")
	}
	return newVector(data), nil
}

// matrixFromRows is the pre-pass shared by every matrix entry point: it
// rejects empty and ragged input before any data is copied.
func matrixFromRows(rows [][]float64, label string) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, invalidInputf(label, "matrix must not be empty")
	}
	cols := len(rows[0])
	for i, row := range rows {
		if len(row) != cols {
			return nil, invalidInputf(label,
				"ragged rows: row %d has %d values but row 1 has %d", i+1, len(row), cols)
		}
	}
	data := make([]float64, 0, len(rows)*cols)
	for _, row := range rows {
		data = append(data, row...)
	}
	return newMatrix(len(rows), cols, data), nil
}

// rowsFromAny turns a JSON-decoded sequence into rows of float64. A sequence
// of scalars becomes one row; a sequence of sequences becomes one row per
// element. Deeper nesting and mixed scalar/sequence levels are rejected.
func rowsFromAny(seq []any, label string) ([][]float64, error) {
	if len(seq) == 0 {
		return nil, invalidInputf(label, "matrix must not be empty")
	}
	if _, nested := seq[0].([]any); !nested {
		row, err := rowFromAny(seq, label)
		if err != nil {
			return nil, err
		}
		return [][]float64{row}, nil
	}
	rows := make([][]float64, 0, len(seq))
	for _, e := range seq {
		inner, ok := e.([]any)
		if !ok {
			return nil, invalidInputf(label, "expected a 2-D matrix, got mixed nesting")
		}
		row, err := rowFromAny(inner, label)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func rowFromAny(seq []any, label string) ([]float64, error) {
	row := make([]float64, 0, len(seq))
	for _, e := range seq {
		if _, nested := e.([]any); nested {
			return nil, invalidInputf(label, "expected a 2-D matrix, got more than two dimensions")
		}
		f, err := toFloat(e, label)
		if err != nil {
			return nil, err
		}
		row = append(row, f)
	}
	return row, nil
}

// toFloat converts a single element. Conversion is total over every
// IEEE-754-representable literal; anything else reports the offending token.
func toFloat(v any, label string) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0, invalidInputf(label, "cannot convert to numeric matrix: '%s' is not a valid number", x.String())
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return 0, invalidInputf(label, "cannot convert to numeric matrix: '%s' is not a valid number", x)
		}
		return f, nil
	default:
		return 0, invalidInputf(label, "cannot convert to numeric matrix: %v is not a valid number", formatToken(v))
	}
}

func formatToken(v any) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprintf("'%v'", v)
}
