package linalg

import "gonum.org/v1/gonum/mat"

// This file wraps types from gonum so that the rest of the repository never
// handles *mat.Dense / *mat.VecDense directly. The wrappers are constructed
// only by the coercion functions in coerce.go and are immutable from then on:
// operations allocate fresh results and accessors hand out copies.

// Matrix is a rectangular, dense matrix of float64 values. All rows have
// equal length and the element count is at least one.
type Matrix struct {
	d *mat.Dense
}

// Dims returns the number of rows and columns.
func (m *Matrix) Dims() (r, c int) { return m.d.Dims() }

// At returns the element at row i, column j.
func (m *Matrix) At(i, j int) float64 { return m.d.At(i, j) }

// Rows returns the matrix contents as a freshly allocated slice of rows.
func (m *Matrix) Rows() [][]float64 {
	r, c := m.d.Dims()
	out := make([][]float64, r)
	for i := 0; i < r; i++ {
		row := make([]float64, c)
		copy(row, m.d.RawRowView(i))
		out[i] = row
	}
	return out
}

// shape renders the dimensions as "r×c" for diagnostics.
func (m *Matrix) shape() string { return shapeString(m.d.Dims()) }

func newMatrix(r, c int, data []float64) *Matrix {
	return &Matrix{d: mat.NewDense(r, c, data)}
}

// Vector is a dense vector of float64 values with length at least one.
type Vector struct {
	v *mat.VecDense
}

// Len returns the number of elements.
func (v *Vector) Len() int { return v.v.Len() }

// At returns the element at index i.
func (v *Vector) At(i int) float64 { return v.v.AtVec(i) }

// Slice returns the vector contents as a freshly allocated slice.
func (v *Vector) Slice() []float64 {
	out := make([]float64, v.v.Len())
	copy(out, v.v.RawVector().Data)
	return out
}

func newVector(data []float64) *Vector {
	return &Vector{v: mat.NewVecDense(len(data), data)}
}
