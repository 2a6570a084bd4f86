package web

import "math"

// JSON rendering helpers. Complex values become {"re": x, "im": y} objects
// only when the imaginary part is non-zero; purely real values render as
// plain numbers so the common case stays readable.

func renderComplex(z complex128) any {
	if imag(z) == 0 {
		return real(z)
	}
	return map[string]float64{"re": real(z), "im": imag(z)}
}

func renderComplexSlice(zs []complex128) []any {
	out := make([]any, len(zs))
	for i, z := range zs {
		out[i] = renderComplex(z)
	}
	return out
}

func renderComplexRows(rows [][]complex128) [][]any {
	out := make([][]any, len(rows))
	for i, row := range rows {
		out[i] = make([]any, len(row))
		for j, z := range row {
			out[i][j] = renderComplex(z)
		}
	}
	return out
}

// round10 rounds scalar results (determinant, trace) to 10 decimal places so
// values like -2.0000000000000004 display as -2.
func round10(f float64) float64 {
	return math.Round(f*1e10) / 1e10
}
