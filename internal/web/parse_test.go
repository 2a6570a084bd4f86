package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/e-XpertSolutions/go-linalg/linalg"
)

func TestParseMatrix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    [][]float64
		wantErr string
	}{
		{name: "semicolon rows", in: "1 2; 3 4", want: [][]float64{{1, 2}, {3, 4}}},
		{name: "newline rows", in: "1 2\n3 4", want: [][]float64{{1, 2}, {3, 4}}},
		{name: "comma values", in: "1,2;3,4", want: [][]float64{{1, 2}, {3, 4}}},
		{name: "mixed separators", in: " 1, 2 \n 3  4 ", want: [][]float64{{1, 2}, {3, 4}}},
		{name: "single row", in: "1 2 3", want: [][]float64{{1, 2, 3}}},
		{name: "negative and decimal", in: "-1.5 2e3", want: [][]float64{{-1.5, 2000}}},
		{name: "trailing separator", in: "1 2; 3 4;", want: [][]float64{{1, 2}, {3, 4}}},
		{name: "empty", in: "   ", wantErr: "matrix input is empty"},
		{name: "bad token", in: "1 x; 3 4", wantErr: "row 1: 'x' is not a valid number"},
		{name: "bad token second row", in: "1 2; 3 y", wantErr: "row 2: 'y' is not a valid number"},
		{name: "ragged", in: "1 2; 3", wantErr: "row 2 has 1 values but row 1 has 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMatrix(tt.in)
			if tt.wantErr != "" {
				require.ErrorIs(t, err, linalg.ErrInvalidInput)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseVector(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    []float64
		wantErr string
	}{
		{name: "spaces", in: "1 2 3", want: []float64{1, 2, 3}},
		{name: "commas and semicolons", in: "1,2;3", want: []float64{1, 2, 3}},
		{name: "newlines", in: "4\n7", want: []float64{4, 7}},
		{name: "empty", in: "", wantErr: "vector input is empty"},
		{name: "bad token", in: "1 z", wantErr: "'z' is not a valid number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVector(tt.in)
			if tt.wantErr != "" {
				require.ErrorIs(t, err, linalg.ErrInvalidInput)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
