package linalg

import "fmt"

// Pure shape predicates invoked by the operations before any kernel call.
// Each returns nil or a DimensionMismatch error naming the operation and the
// offending shapes; the kernel is therefore never entered with invalid
// operands.

func shapeString(r, c int) string {
	return fmt.Sprintf("%d×%d", r, c)
}

// requireSquare fails unless m has as many rows as columns.
func requireSquare(m *Matrix, op string) error {
	r, c := m.Dims()
	if r != c {
		return dimensionf(op, "requires a square matrix, got shape %s", shapeString(r, c))
	}
	return nil
}

// requireMultiplyCompat fails unless a.cols == b.rows.
func requireMultiplyCompat(a, b *Matrix) error {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ac != br {
		return dimensionf("Multiply",
			"cannot multiply: A is %s but B is %s: inner dimensions %d ≠ %d",
			shapeString(ar, ac), shapeString(br, bc), ac, br)
	}
	return nil
}

// requireSolveCompat fails unless a is square and b matches its row count.
func requireSolveCompat(a *Matrix, b *Vector) error {
	if err := requireSquare(a, "Solve Ax=b"); err != nil {
		return err
	}
	r, c := a.Dims()
	if b.Len() != r {
		return dimensionf("Solve Ax=b",
			"dimension mismatch: A is %s but b has length %d", shapeString(r, c), b.Len())
	}
	return nil
}
