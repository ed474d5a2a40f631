// SPDX-License-Identifier: MIT
// Package gauss_test: unit tests for the row-swap primitive.

package gauss_test

import (
	"testing"

	"github.com/katalvlaran/linsolve/gauss"
	"github.com/katalvlaran/linsolve/matrix"
	"github.com/stretchr/testify/require"
)

func TestSwapRows(t *testing.T) {
	t.Parallel()

	src := [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	m := MustFromRows(t, src)

	out, err := gauss.SwapRows(m, 0, 2)
	require.NoError(t, err)
	RequireAllInDelta(t, [][]float64{{7, 8, 9}, {4, 5, 6}, {1, 2, 3}}, out, 0)

	// The input must stay intact (copy-on-write).
	RequireAllInDelta(t, src, m, 0)
}

func TestSwapRowsSelfSwapStillCopies(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	out, err := gauss.SwapRows(m, 1, 1)
	require.NoError(t, err)
	RequireAllInDelta(t, [][]float64{{1, 2}, {3, 4}}, out, 0)

	// Mutating the result must not leak into the original.
	require.NoError(t, out.Set(0, 0, 42))
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
}

func TestSwapRowsDoubleSwapRestores(t *testing.T) {
	t.Parallel()

	src := [][]float64{{1, 2}, {3, 4}, {5, 6}}
	m := MustFromRows(t, src)

	once, err := gauss.SwapRows(m, 0, 1)
	require.NoError(t, err)
	twice, err := gauss.SwapRows(once, 1, 0)
	require.NoError(t, err)

	// swap(swap(M,i,j),j,i) == M
	RequireAllInDelta(t, src, twice, 0)
}

func TestSwapRowsValidation(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})

	_, err := gauss.SwapRows(nil, 0, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	for _, tc := range []struct{ i, j int }{
		{-1, 0},
		{0, 2},
		{2, 0},
		{0, -3},
	} {
		_, err = gauss.SwapRows(m, tc.i, tc.j)
		require.ErrorIs(t, err, matrix.ErrOutOfRange, "SwapRows(m,%d,%d)", tc.i, tc.j)
	}
}
