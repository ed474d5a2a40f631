// SPDX-License-Identifier: MIT
// Package gauss: augmented matrix construction.

package gauss

import (
	"fmt"

	"github.com/katalvlaran/linsolve/matrix"
)

// Augment returns the horizontal concatenation [A | B]: a fresh n×(cA+cB)
// matrix with A's columns first, then B's columns, per row. The usual shape is
// a square A with an n×1 constants column B, but any column counts are
// accepted as long as the row counts agree. Neither input is mutated.
//
// Implementation:
//   - Stage 1: ValidateNotNil(a), ValidateNotNil(b), ValidateSameRows(a, b).
//     Allocate Dense(n, cA+cB).
//   - Stage 2: Copy A's block then B's block with fixed i→j order via At/Set.
//
// Returns:
//   - matrix.Matrix: newly allocated Dense holding [A | B].
//   - error        : validation/allocation failures wrapped with opAugment.
//
// Errors:
//   - matrix.ErrNilMatrix         (nil input).
//   - matrix.ErrDimensionMismatch (row counts differ).
//
// Determinism:
//   - Fixed traversal: all of A row-block-wise, then all of B.
//
// Complexity:
//   - Time O(n*(cA+cB)), Space O(n*(cA+cB)).
func Augment(a, b matrix.Matrix) (matrix.Matrix, error) {
	// Validate operands and the shared row count
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, gaussErrorf(opAugment, err)
	}
	if err := matrix.ValidateNotNil(b); err != nil {
		return nil, gaussErrorf(opAugment, err)
	}
	if err := matrix.ValidateSameRows(a, b); err != nil {
		return nil, gaussErrorf(opAugment, err)
	}

	// Allocate the combined result
	rows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := matrix.NewDense(rows, aCols+bCols)
	if err != nil {
		return nil, gaussErrorf(opAugment, err)
	}

	// Copy A's columns first, then B's, per row.
	var (
		i, j int
		v    float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < aCols; j++ {
			v, err = a.At(i, j)
			if err != nil {
				return nil, gaussErrorf(opAugment, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(i, j, v); err != nil {
				return nil, gaussErrorf(opAugment, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
		for j = 0; j < bCols; j++ {
			v, err = b.At(i, j)
			if err != nil {
				return nil, gaussErrorf(opAugment, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(i, aCols+j, v); err != nil {
				return nil, gaussErrorf(opAugment, fmt.Errorf("Set(%d,%d): %w", i, aCols+j, err))
			}
		}
	}

	// Return the augmented matrix
	return res, nil
}
