// SPDX-License-Identifier: MIT
// Package gauss: primitive row operations.

package gauss

import (
	"fmt"

	"github.com/katalvlaran/linsolve/matrix"
)

// SwapRows returns a fresh matrix equal to m with rows i and j exchanged.
// The input is never mutated; swapping a row with itself (i == j) is a no-op
// that still returns an independent copy.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m); bounds-check both row indices.
//   - Stage 2: Clone m, then exchange the two row spans on the copy via At/Set
//     with a fixed left-to-right column order.
//
// Returns:
//   - matrix.Matrix: newly allocated copy with the rows exchanged.
//   - error        : validation failures wrapped with opSwapRows.
//
// Errors:
//   - matrix.ErrNilMatrix  (nil input).
//   - matrix.ErrOutOfRange (i or j outside [0, Rows)).
//
// Determinism:
//   - Fixed column order j=0..c−1; no data-dependent branches.
//
// Complexity:
//   - Time O(r*c) for the copy, Space O(r*c).
func SwapRows(m matrix.Matrix, i, j int) (matrix.Matrix, error) {
	// Validate input non-nil
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, gaussErrorf(opSwapRows, err)
	}
	// Validate both row indices before touching data
	rows := m.Rows()
	if i < 0 || i >= rows || j < 0 || j >= rows {
		return nil, gaussErrorf(opSwapRows, matrix.ErrOutOfRange)
	}

	// Copy first: the caller's matrix must stay intact.
	out := m.Clone()
	if i == j {
		return out, nil // self-swap still yields a fresh copy
	}

	// Exchange the two rows on the copy, column by column.
	var (
		col      int
		vi, vj   float64
		err      error
		cols     = m.Cols()
	)
	for col = 0; col < cols; col++ {
		vi, err = out.At(i, col)
		if err != nil {
			return nil, gaussErrorf(opSwapRows, fmt.Errorf("At(%d,%d): %w", i, col, err))
		}
		vj, err = out.At(j, col)
		if err != nil {
			return nil, gaussErrorf(opSwapRows, fmt.Errorf("At(%d,%d): %w", j, col, err))
		}
		if err = out.Set(i, col, vj); err != nil {
			return nil, gaussErrorf(opSwapRows, fmt.Errorf("Set(%d,%d): %w", i, col, err))
		}
		if err = out.Set(j, col, vi); err != nil {
			return nil, gaussErrorf(opSwapRows, fmt.Errorf("Set(%d,%d): %w", j, col, err))
		}
	}

	// Return the swapped copy
	return out, nil
}
