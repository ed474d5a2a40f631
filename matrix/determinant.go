// SPDX-License-Identifier: MIT
// Package matrix: determinant kernel.
// Det is the primitive behind the solver's upfront singularity test; it is a
// plain numeric kernel here so other consumers can reuse it.

package matrix

import (
	"fmt"
	"math"
)

// Det computes det(m) by elimination with partial pivoting on a working clone.
// The input must be non-nil and square; it is never mutated.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m). Clone into a private working Dense.
//   - Stage 2: For each column k, pick the row r ≥ k maximizing |w[r][k]|
//     (partial pivoting; ties resolved to the smallest r for determinism).
//     A zero pivot column short-circuits to det = 0. Each row swap flips the
//     sign; eliminate below the pivot in place.
//   - Stage 3: Return sign × product of the diagonal.
//
// Returns:
//   - float64: the determinant; exactly 0 when a pivot column vanishes.
//   - error  : validation failures wrapped with opDet.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare. A zero determinant is a value, not an error.
//
// Determinism:
//   - Fixed k→r→j traversal; smallest-index tie-break on pivot selection.
//
// Complexity:
//   - Time O(n^3), Space O(n^2) for the working clone.
func Det(m Matrix) (float64, error) {
	// Validate input non-nil and square
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	// Materialize a private working copy; the caller's matrix stays intact.
	n := m.Rows()
	w, err := NewDense(n, n)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	if d, ok := m.(*Dense); ok {
		copy(w.data, d.data) // flat copy on the fast path
	} else {
		var i, j int
		var v float64
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				v, err = m.At(i, j)
				if err != nil {
					return 0, matrixErrorf(opDet, fmt.Errorf("At(%d,%d): %w", i, j, err))
				}
				w.data[i*n+j] = v
			}
		}
	}

	var (
		k, r, j, pivotRow int     // loop iterators and chosen pivot row
		pivot, best, cand float64 // pivot value and |candidate| scan state
		factor            float64 // elimination multiplier
		sign              = 1.0   // flips on each row swap
	)
	for k = 0; k < n; k++ {
		// Partial pivoting: scan column k from row k downward for max |value|.
		pivotRow, best = k, math.Abs(w.data[k*n+k])
		for r = k + 1; r < n; r++ {
			cand = math.Abs(w.data[r*n+k])
			if cand > best {
				pivotRow, best = r, cand
			}
		}
		pivot = w.data[pivotRow*n+k]
		if pivot == 0 {
			return 0, nil // the column is exactly zero below k: det(m) = 0
		}
		// Swap rows k and pivotRow in place; each swap negates the determinant.
		if pivotRow != k {
			for j = 0; j < n; j++ {
				w.data[k*n+j], w.data[pivotRow*n+j] = w.data[pivotRow*n+j], w.data[k*n+j]
			}
			sign = -sign
		}
		// Eliminate below the pivot (row k stays unnormalized; the diagonal
		// accumulates the pivot product).
		for r = k + 1; r < n; r++ {
			factor = w.data[r*n+k] / pivot
			if factor == 0 {
				continue // already zero, skip the row update
			}
			for j = k; j < n; j++ {
				w.data[r*n+j] -= factor * w.data[k*n+j]
			}
		}
	}

	// Accumulate the signed product of the diagonal.
	det := sign
	for k = 0; k < n; k++ {
		det *= w.data[k*n+k]
	}

	return det, nil
}
