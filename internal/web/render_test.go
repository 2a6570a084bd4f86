package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderComplex(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2.0, renderComplex(complex(2, 0)))
	assert.Equal(t, map[string]float64{"re": 0, "im": 1}, renderComplex(complex(0, 1)))
	assert.Equal(t, map[string]float64{"re": 1.5, "im": -0.5}, renderComplex(complex(1.5, -0.5)))
}

func TestRenderComplexRows(t *testing.T) {
	t.Parallel()

	got := renderComplexRows([][]complex128{
		{complex(1, 0), complex(0, 2)},
		{complex(3, 0), complex(4, 0)},
	})
	assert.Equal(t, [][]any{
		{1.0, map[string]float64{"re": 0, "im": 2}},
		{3.0, 4.0},
	}, got)
}

func TestRound10(t *testing.T) {
	t.Parallel()

	assert.Equal(t, -2.0, round10(-2.0000000000000004))
	assert.Equal(t, 3.1415926536, round10(3.14159265358979))
}
