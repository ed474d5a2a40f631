// SPDX-License-Identifier: MIT
// Package gauss: the elimination engine.

package gauss

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linsolve/matrix"
)

// RowEchelonForm reduces the system A·x = B to row echelon form and returns
// the processed augmented matrix [A | B]. Callers' A and B are never mutated;
// all work happens on a private augmented copy.
//
// Implementation:
//   - Stage 1: ValidateSystem(a, b) — square A, matching row counts.
//   - Stage 2: Singularity gate: |det(A)| ≤ DetEpsilon ⇒ matrix.ErrSingular
//     before any elimination. This is a global upfront test; the loop below
//     keeps its own independent handling of zero pivots the gate missed.
//   - Stage 3: Build the augmented working matrix via Augment.
//   - Stage 4: For row=0..n−1: if |M[row][row]| ≤ EntryEpsilon, look for a
//     replacement strictly below via FirstNonZeroInColumn and bring it up with
//     SwapRows; when no replacement exists the row is left untouched and the
//     loop moves on — downstream sees a zero-pivot row rather than an error.
//     With a usable pivot: normalize the pivot row to a unit pivot, then
//     eliminate downward so column row is zero in every row below.
//
// Result guarantee: for inputs that pass the determinant gate, every row that
// received a valid pivot ends with M[i][i] = 1 and M[j][i] = 0 for all j > i.
//
// Returns:
//   - matrix.Matrix: the n×(n+k) augmented matrix in row echelon form.
//   - error        : matrix.ErrSingular for singular systems; precondition
//     violations via the shape sentinels; all wrapped with opRowEchelon.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrDimensionMismatch.
//   - matrix.ErrSingular — check with errors.Is before using the result.
//
// Determinism:
//   - Fixed row order; replacement search always picks the first usable row.
//
// Complexity:
//   - Time O(n^3) elimination + O(n^3) determinant gate, Space O(n^2).
func RowEchelonForm(a, b matrix.Matrix, opts ...Option) (matrix.Matrix, error) {
	// Resolve numeric policy
	opt := gatherOptions(opts...)

	// Fail fast on malformed shapes before any numeric work.
	if err := matrix.ValidateSystem(a, b); err != nil {
		return nil, gaussErrorf(opRowEchelon, err)
	}

	// Upfront singularity gate on the coefficient matrix alone.
	det, err := matrix.Det(a)
	if err != nil {
		return nil, gaussErrorf(opRowEchelon, err)
	}
	if math.Abs(det) <= opt.detEps {
		return nil, gaussErrorf(opRowEchelon, matrix.ErrSingular)
	}

	// Build the private working state [A | B]; inputs stay untouched.
	work, err := Augment(a, b)
	if err != nil {
		return nil, gaussErrorf(opRowEchelon, err)
	}

	var (
		n, cols       = a.Rows(), work.Cols()
		row, found, j int     // current pivot row, replacement row, column iterator
		jrow          int     // row being eliminated below the pivot
		pivot, factor float64 // pivot value and elimination multiplier
		v, pv         float64 // element temporaries
	)
	for row = 0; row < n; row++ {
		// Inspect the diagonal candidate pivot.
		pivot, err = work.At(row, row)
		if err != nil {
			return nil, gaussErrorf(opRowEchelon, fmt.Errorf("At(%d,%d): %w", row, row, err))
		}

		if math.Abs(pivot) <= opt.entryEps {
			// Search strictly below for a replacement pivot in the same column.
			found, err = FirstNonZeroInColumn(work, row, row+1, opt.entryEps)
			if err != nil {
				return nil, gaussErrorf(opRowEchelon, err)
			}
			if found == NotFound {
				// No usable pivot anywhere below: leave the row as-is and move
				// on. The determinant gate keeps well-separated systems out of
				// this branch, but near-singular inputs can land here and flow
				// through with a zero-pivot row.
				continue
			}
			// Bring the replacement up; SwapRows yields a fresh working state.
			work, err = SwapRows(work, row, found)
			if err != nil {
				return nil, gaussErrorf(opRowEchelon, err)
			}
			pivot, err = work.At(row, row)
			if err != nil {
				return nil, gaussErrorf(opRowEchelon, fmt.Errorf("At(%d,%d): %w", row, row, err))
			}
		}

		// Normalize the pivot row: divide every entry by the pivot value so the
		// pivot position becomes exactly 1.
		for j = 0; j < cols; j++ {
			v, err = work.At(row, j)
			if err != nil {
				return nil, gaussErrorf(opRowEchelon, fmt.Errorf("At(%d,%d): %w", row, j, err))
			}
			if err = work.Set(row, j, v/pivot); err != nil {
				return nil, gaussErrorf(opRowEchelon, fmt.Errorf("Set(%d,%d): %w", row, j, err))
			}
		}

		// Eliminate downward: zero column row in every row below the pivot.
		for jrow = row + 1; jrow < n; jrow++ {
			factor, err = work.At(jrow, row)
			if err != nil {
				return nil, gaussErrorf(opRowEchelon, fmt.Errorf("At(%d,%d): %w", jrow, row, err))
			}
			if factor == 0 {
				continue // already zero, skip the row update
			}
			for j = 0; j < cols; j++ {
				pv, err = work.At(row, j)
				if err != nil {
					return nil, gaussErrorf(opRowEchelon, fmt.Errorf("At(%d,%d): %w", row, j, err))
				}
				v, err = work.At(jrow, j)
				if err != nil {
					return nil, gaussErrorf(opRowEchelon, fmt.Errorf("At(%d,%d): %w", jrow, j, err))
				}
				if err = work.Set(jrow, j, v-factor*pv); err != nil {
					return nil, gaussErrorf(opRowEchelon, fmt.Errorf("Set(%d,%d): %w", jrow, j, err))
				}
			}
		}
	}

	// Return the fully processed augmented matrix
	return work, nil
}
