// SPDX-License-Identifier: MIT
// Package gauss_test: unit tests for the tolerance-based pivot scans.

package gauss_test

import (
	"testing"

	"github.com/katalvlaran/linsolve/gauss"
	"github.com/katalvlaran/linsolve/matrix"
	"github.com/stretchr/testify/require"
)

func TestFirstNonZeroInColumn(t *testing.T) {
	t.Parallel()

	// Column 1 is zero (within eps) until row 2.
	m := MustFromRows(t, [][]float64{
		{1, 0, 5},
		{2, 1e-6, 6},
		{3, 4, 7},
		{4, 0, 8},
	})

	for _, tc := range []struct {
		name          string
		col, startRow int
		want          int
	}{
		{"finds_first_usable", 1, 0, 2},
		{"respects_start_row", 1, 3, gauss.NotFound},
		{"start_at_hit", 1, 2, 2},
		{"start_past_last_row", 1, 9, gauss.NotFound},
		{"dense_column", 0, 1, 1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := gauss.FirstNonZeroInColumn(m, tc.col, tc.startRow, gauss.DefaultEntryEps)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestFirstNonZeroInColumnAllZero(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{0, 1}, {0, 2}, {0, 3}})
	for startRow := 0; startRow < 3; startRow++ {
		got, err := gauss.FirstNonZeroInColumn(m, 0, startRow, gauss.DefaultEntryEps)
		require.NoError(t, err)
		require.Equal(t, gauss.NotFound, got, "startRow=%d", startRow)
	}
}

func TestFirstNonZeroInColumnToleranceBoundary(t *testing.T) {
	t.Parallel()

	// |v| ≤ eps is zero; the boundary value itself must NOT count as a pivot.
	m := MustFromRows(t, [][]float64{{1e-5}, {1.1e-5}})
	got, err := gauss.FirstNonZeroInColumn(m, 0, 0, gauss.DefaultEntryEps)
	require.NoError(t, err)
	require.Equal(t, 1, got)
}

func TestFirstNonZeroInColumnValidation(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})

	_, err := gauss.FirstNonZeroInColumn(nil, 0, 0, gauss.DefaultEntryEps)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = gauss.FirstNonZeroInColumn(m, 2, 0, gauss.DefaultEntryEps)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = gauss.FirstNonZeroInColumn(m, 0, -1, gauss.DefaultEntryEps)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestFirstNonZeroInRow(t *testing.T) {
	t.Parallel()

	// Row 1's only entry beyond eps sits in the last (constants) column.
	m := MustFromRows(t, [][]float64{
		{0, 2, 9},
		{0, 0, 7},
		{5, 6, 8},
	})

	for _, tc := range []struct {
		name      string
		row       int
		augmented bool
		want      int
	}{
		{"skips_leading_zero", 0, false, 1},
		{"augmented_excludes_last_column", 1, true, gauss.NotFound},
		{"full_scan_reaches_last_column", 1, false, 2},
		{"first_column_hit", 2, true, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := gauss.FirstNonZeroInRow(m, tc.row, tc.augmented, gauss.DefaultEntryEps)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestFirstNonZeroInRowValidation(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{1, 2}})

	_, err := gauss.FirstNonZeroInRow(nil, 0, false, gauss.DefaultEntryEps)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = gauss.FirstNonZeroInRow(m, 1, false, gauss.DefaultEntryEps)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = gauss.FirstNonZeroInRow(m, -1, true, gauss.DefaultEntryEps)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}
