// SPDX-License-Identifier: MIT
// Package matrix_test: unit tests for Dense storage and ingestion facades.

package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/linsolve/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewDenseDefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{3, 3},
		{6, 6},
		{2, 5},
	} {
		name := fmt.Sprintf("%dx%d", tc.rows, tc.cols)
		t.Run(name, func(t *testing.T) {
			m := MustDense(t, tc.rows, tc.cols)
			// immediately after creation all elements should be 0
			var i, j int // loop iterators
			for i = 0; i < tc.rows; i++ {
				for j = 0; j < tc.cols; j++ {
					if MustAt(t, m, i, j) != 0.0 {
						t.Fatalf("element [%d,%d] of a new Dense(%dx%d) must be 0", i, j, tc.rows, tc.cols)
					}
				}
			}
		})
	}
}

func TestNewDenseInvalidDimensions(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct{ rows, cols int }{
		{0, 3},
		{3, 0},
		{-1, 2},
		{2, -4},
	} {
		_, err := matrix.NewDense(tc.rows, tc.cols)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions, "NewDense(%d,%d)", tc.rows, tc.cols)
	}
}

func TestDenseAtSetBounds(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 3)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, 1.0), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1.0), matrix.ErrOutOfRange)
}

func TestDenseCloneIndependence(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	c := m.Clone()

	// Mutating the clone must not leak into the original.
	MustSet(t, c, 0, 0, 99)
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, 99.0, MustAt(t, c, 0, 0))
}

func TestDenseRowCopies(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 5, 6}, row)

	// Mutating the returned slice must not leak into the matrix.
	row[0] = -7
	require.Equal(t, 4.0, MustAt(t, m, 1, 0))

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestFromRows(t *testing.T) {
	t.Parallel()

	t.Run("copies input", func(t *testing.T) {
		src := [][]float64{{1, 2}, {3, 4}}
		m := MustFromRows(t, src)
		src[0][0] = 42 // caller-side mutation after ingestion
		require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	})

	t.Run("ragged", func(t *testing.T) {
		_, err := matrix.FromRows([][]float64{{1, 2}, {3}})
		require.ErrorIs(t, err, matrix.ErrRagged)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := matrix.FromRows(nil)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
		_, err = matrix.FromRows([][]float64{{}})
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	})

	t.Run("non-finite", func(t *testing.T) {
		_, err := matrix.FromRows([][]float64{{1, math.NaN()}})
		require.ErrorIs(t, err, matrix.ErrNaNInf)
		_, err = matrix.FromRows([][]float64{{math.Inf(1), 0}})
		require.ErrorIs(t, err, matrix.ErrNaNInf)
	})
}

func TestColumn(t *testing.T) {
	t.Parallel()

	b, err := matrix.Column([]float64{8, -11, -3})
	require.NoError(t, err)
	require.Equal(t, 3, b.Rows())
	require.Equal(t, 1, b.Cols())
	require.Equal(t, -11.0, MustAt(t, b, 1, 0))

	_, err = matrix.Column(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.Column([]float64{math.Inf(-1)})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestNewIdentity(t *testing.T) {
	t.Parallel()

	const n = 4
	I, err := matrix.NewIdentity(n)
	require.NoError(t, err)
	var i, j int // loop iterators
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			require.Equal(t, want, MustAt(t, I, i, j), "I[%d,%d]", i, j)
		}
	}
}
