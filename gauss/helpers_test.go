// SPDX-License-Identifier: MIT
// Package gauss_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the elimination pipeline.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package gauss_test

import (
	"testing"

	"github.com/katalvlaran/linsolve/matrix"
	"github.com/stretchr/testify/require"
)

// MustFromRows BUILDS a *Dense from literal rows or fails the test.
func MustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}

	return m
}

// MustColumn BUILDS an n×1 *Dense from a slice or fails the test.
func MustColumn(t *testing.T, values []float64) *matrix.Dense {
	t.Helper()
	b, err := matrix.Column(values)
	if err != nil {
		t.Fatalf("Column: %v", err)
	}

	return b
}

// MustAt READS element (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// RequireAllInDelta ASSERTS m equals want entrywise within delta.
func RequireAllInDelta(t *testing.T, want [][]float64, m matrix.Matrix, delta float64) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "row count")
	require.Equal(t, len(want[0]), m.Cols(), "column count")
	for i := range want {
		for j := range want[i] {
			require.InDelta(t, want[i][j], MustAt(t, m, i, j), delta, "entry (%d,%d)", i, j)
		}
	}
}

// RequireResidual ASSERTS that A·x reproduces B within delta per entry.
func RequireResidual(t *testing.T, a matrix.Matrix, x []float64, b matrix.Matrix, delta float64) {
	t.Helper()
	got, err := matrix.MatVec(a, x)
	require.NoError(t, err)
	for i := range got {
		require.InDelta(t, MustAt(t, b, i, 0), got[i], delta, "residual at row %d", i)
	}
}
