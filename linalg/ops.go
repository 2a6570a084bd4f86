package linalg

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack/lapack64"
	"gonum.org/v1/gonum/mat"
)

// SingularTol is the absolute determinant tolerance below which a square
// matrix is treated as singular by Inverse and Solve. It is a fixed policy
// constant, deliberately not scaled by matrix norm or condition number.
const SingularTol = 1e-12

// eps64 is the float64 machine epsilon, used by the rank threshold.
const eps64 = 0x1p-52

// Every operation in this file takes Matrix/Vector values produced by the
// coercion functions, validates shapes, and only then calls into gonum.
// Operations never mutate their inputs and hold no state, so they are safe
// to call concurrently.

// Multiply computes the matrix product A·B. The result has shape
// (A.rows, B.cols). It fails with ErrDimensionMismatch unless
// A.cols == B.rows.
func Multiply(a, b *Matrix) (*Matrix, error) {
	if err := requireMultiplyCompat(a, b); err != nil {
		return nil, err
	}
	var c mat.Dense
	c.Mul(a.d, b.d)
	return &Matrix{d: &c}, nil
}

// Det computes the determinant of a square matrix.
func Det(a *Matrix) (float64, error) {
	if err := requireSquare(a, "Determinant"); err != nil {
		return 0, err
	}
	return mat.Det(a.d), nil
}

// Inverse computes A⁻¹. It fails with ErrDimensionMismatch for non-square
// input and with ErrSingular when |det(A)| < SingularTol.
func Inverse(a *Matrix) (*Matrix, error) {
	if err := requireSquare(a, "Inverse"); err != nil {
		return nil, err
	}
	d := mat.Det(a.d)
	if math.Abs(d) < SingularTol {
		return nil, singularf("Inverse", "matrix is singular (det ≈ %.2e); inverse does not exist", d)
	}
	var inv mat.Dense
	if err := inv.Inverse(a.d); err != nil && !isCondition(err) {
		return nil, fmt.Errorf("inverse: kernel failure: %w", err)
	}
	return &Matrix{d: &inv}, nil
}

// Transpose returns Aᵗ with rows and columns swapped.
func Transpose(a *Matrix) *Matrix {
	return &Matrix{d: mat.DenseCopyOf(a.d.T())}
}

// EigenResult holds an eigendecomposition. Column j of Vectors (that is,
// Vectors[i][j] over all i) is the right eigenvector paired with Values[j].
type EigenResult struct {
	Values  []complex128
	Vectors [][]complex128
}

// Eig computes the eigenvalues and right eigenvectors of a square matrix.
// Values and vectors may be complex even for real input.
func Eig(a *Matrix) (*EigenResult, error) {
	const op = "Eigenvalue decomposition"
	if err := requireSquare(a, op); err != nil {
		return nil, err
	}
	var e mat.Eigen
	if ok := e.Factorize(a.d, mat.EigenRight); !ok {
		return nil, fmt.Errorf("eig: kernel failed to converge")
	}
	n, _ := a.Dims()
	vecs := mat.NewCDense(n, n, nil)
	e.VectorsTo(vecs)
	rows := make([][]complex128, n)
	for i := range rows {
		rows[i] = make([]complex128, n)
		for j := 0; j < n; j++ {
			rows[i][j] = vecs.At(i, j)
		}
	}
	return &EigenResult{Values: e.Values(nil), Vectors: rows}, nil
}

// Solve computes the vector x satisfying A·x = b. It fails with
// ErrDimensionMismatch unless A is square and len(b) == A.rows, and with
// ErrSingular when |det(A)| < SingularTol.
func Solve(a *Matrix, b *Vector) (*Vector, error) {
	if err := requireSolveCompat(a, b); err != nil {
		return nil, err
	}
	d := mat.Det(a.d)
	if math.Abs(d) < SingularTol {
		return nil, singularf("Solve Ax=b",
			"coefficient matrix is singular (det ≈ %.2e); system may have no solution or infinitely many solutions", d)
	}
	var x mat.VecDense
	if err := x.SolveVec(a.d, b.v); err != nil && !isCondition(err) {
		return nil, fmt.Errorf("solve: kernel failure: %w", err)
	}
	return &Vector{v: &x}, nil
}

// LUResult holds a partial-pivot LU decomposition satisfying P·L·U == A.
// For an m×n input with k = min(m, n): P is an m×m permutation matrix, L is
// m×k unit-lower-triangular and U is k×n upper-triangular.
type LUResult struct {
	P, L, U *Matrix
}

// LU decomposes a matrix of any shape using LAPACK's partial-pivot
// factorization. Pivot tie-breaking (largest magnitude in the active column)
// is inherited from the kernel. Exactly singular input still factorizes; the
// zero pivot simply appears on U's diagonal.
func LU(a *Matrix) (*LUResult, error) {
	m, n := a.Dims()
	k := m
	if n < k {
		k = n
	}
	f := blas64.General{Rows: m, Cols: n, Stride: n, Data: make([]float64, m*n)}
	for i := 0; i < m; i++ {
		copy(f.Data[i*n:(i+1)*n], a.d.RawRowView(i))
	}
	ipiv := make([]int, k)
	lapack64.Getrf(f, ipiv)

	// Getrf swaps row r with row ipiv[r] in order; replaying the swaps on an
	// identity index gives the original row that ended up at each position,
	// which is exactly the column pattern of P in A = P·L·U.
	idx := make([]int, m)
	for i := range idx {
		idx[i] = i
	}
	for r := 0; r < k; r++ {
		idx[r], idx[ipiv[r]] = idx[ipiv[r]], idx[r]
	}
	p := make([]float64, m*m)
	for r := 0; r < m; r++ {
		p[idx[r]*m+r] = 1
	}

	l := make([]float64, m*k)
	for i := 0; i < m; i++ {
		for j := 0; j < k && j <= i; j++ {
			if j == i {
				l[i*k+j] = 1
			} else {
				l[i*k+j] = f.Data[i*n+j]
			}
		}
	}
	u := make([]float64, k*n)
	for i := 0; i < k; i++ {
		for j := i; j < n; j++ {
			u[i*n+j] = f.Data[i*n+j]
		}
	}
	return &LUResult{
		P: newMatrix(m, m, p),
		L: newMatrix(m, k, l),
		U: newMatrix(k, n, u),
	}, nil
}

// Rank computes the numerical rank: the count of singular values exceeding
// σ_max · max(m, n) · ε, the same default threshold NumPy uses.
func Rank(a *Matrix) (int, error) {
	var svd mat.SVD
	if ok := svd.Factorize(a.d, mat.SVDNone); !ok {
		return 0, fmt.Errorf("rank: kernel failed to converge")
	}
	s := svd.Values(nil)
	m, n := a.Dims()
	dim := m
	if n > dim {
		dim = n
	}
	tol := s[0] * float64(dim) * eps64
	r := 0
	for _, v := range s {
		if v > tol {
			r++
		}
	}
	return r, nil
}

// Trace computes the sum of the diagonal entries of a square matrix.
func Trace(a *Matrix) (float64, error) {
	if err := requireSquare(a, "Trace"); err != nil {
		return 0, err
	}
	return mat.Trace(a.d), nil
}

// isCondition reports whether err is gonum's ill-conditioning warning, which
// accompanies a still-valid result and is not a failure under the
// determinant-tolerance policy.
func isCondition(err error) bool {
	var cond mat.Condition
	return errors.As(err, &cond)
}
