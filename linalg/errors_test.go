package linalg

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpErrorUnwrapsToKind(t *testing.T) {
	t.Parallel()

	err := Errorf("Inverse", ErrSingular, "matrix is singular (det ≈ %.2e); inverse does not exist", 1e-20)
	require.ErrorIs(t, err, ErrSingular)
	assert.NotErrorIs(t, err, ErrDimensionMismatch)
	assert.NotErrorIs(t, err, ErrInvalidInput)

	var opErr *OpError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "Inverse", opErr.Op)
}

func TestOpErrorMessage(t *testing.T) {
	t.Parallel()

	withOp := Errorf("Trace", ErrDimensionMismatch, "requires a square matrix, got shape 1×3")
	assert.Equal(t, "Trace: requires a square matrix, got shape 1×3", withOp.Error())

	noOp := Errorf("", ErrInvalidInput, "matrix input is empty")
	assert.Equal(t, "matrix input is empty", noOp.Error())
}

func TestKindsAreDistinct(t *testing.T) {
	t.Parallel()

	kinds := []error{ErrInvalidInput, ErrDimensionMismatch, ErrSingular}
	for i, a := range kinds {
		for j, b := range kinds {
			if i == j {
				continue
			}
			assert.False(t, errors.Is(a, b), "%v must not match %v", a, b)
		}
	}
}
