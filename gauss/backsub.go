// SPDX-License-Identifier: MIT
// Package gauss: the upward pass from row echelon form to a solution vector.

package gauss

import (
	"fmt"

	"github.com/katalvlaran/linsolve/matrix"
)

// BackSubstitute resolves the solution vector from an n×(n+1) augmented matrix
// already in row echelon form (unit pivots, zeros below the diagonal — as
// produced by RowEchelonForm). The input is never mutated; the upward pass
// runs on a private clone.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m); require exactly Rows()+1 columns.
//   - Stage 2: For row=n−1 down to 0: locate the row's pivot column via
//     FirstNonZeroInRow restricted to the coefficient columns; rows with no
//     pivot are skipped. Subtract M[k][pivot]·M[row] from every row k above so
//     only the constants column keeps that variable's contribution.
//   - Stage 3: Read each variable off the constants column at its pivot row.
//
// Precondition: the input must already be in valid row echelon form. This pass
// does not re-validate that invariant (garbage in, garbage out); calling it
// only after a successful reduction is the Solve facade's responsibility.
//
// Returns:
//   - []float64: n solution values, one per variable in column order.
//   - error    : validation failures wrapped with opBackSubstitute.
//
// Errors:
//   - matrix.ErrNilMatrix         (nil input).
//   - matrix.ErrDimensionMismatch (not an n×(n+1) augmented shape).
//
// Determinism:
//   - Fixed bottom-up row order and left-to-right scans.
//
// Complexity:
//   - Time O(n^3) worst case for the upward elimination, Space O(n^2) clone.
func BackSubstitute(m matrix.Matrix, opts ...Option) ([]float64, error) {
	// Resolve numeric policy
	opt := gatherOptions(opts...)

	// Validate the augmented shape
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, gaussErrorf(opBackSubstitute, err)
	}
	n := m.Rows()
	if m.Cols() != n+1 {
		return nil, gaussErrorf(opBackSubstitute, matrix.ErrDimensionMismatch)
	}

	// Work on a private clone; the caller's matrix stays intact.
	work := m.Clone()

	var (
		row, k, j, pivotCol int     // iterators and located pivot column
		factor, v, pv       float64 // elimination multiplier and temporaries
		err                 error
		pivotCols           = make([]int, n) // pivot column per row, NotFound when absent
	)

	// Upward elimination keyed on each row's pivot column.
	for row = n - 1; row >= 0; row-- {
		pivotCol, err = FirstNonZeroInRow(work, row, true, opt.entryEps)
		if err != nil {
			return nil, gaussErrorf(opBackSubstitute, err)
		}
		pivotCols[row] = pivotCol
		if pivotCol == NotFound {
			continue // an all-zero coefficient row contributes nothing upward
		}

		// Remove this variable's contribution from every row above.
		for k = row - 1; k >= 0; k-- {
			factor, err = work.At(k, pivotCol)
			if err != nil {
				return nil, gaussErrorf(opBackSubstitute, fmt.Errorf("At(%d,%d): %w", k, pivotCol, err))
			}
			if factor == 0 {
				continue // already clear, skip the row update
			}
			for j = 0; j < n+1; j++ {
				pv, err = work.At(row, j)
				if err != nil {
					return nil, gaussErrorf(opBackSubstitute, fmt.Errorf("At(%d,%d): %w", row, j, err))
				}
				v, err = work.At(k, j)
				if err != nil {
					return nil, gaussErrorf(opBackSubstitute, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				if err = work.Set(k, j, v-factor*pv); err != nil {
					return nil, gaussErrorf(opBackSubstitute, fmt.Errorf("Set(%d,%d): %w", k, j, err))
				}
			}
		}
	}

	// Read each variable directly off the constants column at its pivot row.
	x := make([]float64, n)
	for row = 0; row < n; row++ {
		pivotCol = pivotCols[row]
		if pivotCol == NotFound {
			continue // no pivot, the variable stays at zero
		}
		v, err = work.At(row, n)
		if err != nil {
			return nil, gaussErrorf(opBackSubstitute, fmt.Errorf("At(%d,%d): %w", row, n, err))
		}
		x[pivotCol] = v
	}

	// Return the solution vector
	return x, nil
}
