// SPDX-License-Identifier: MIT
// Package gauss: tolerance-based pivot scans.
// Both scans are read-only and treat |v| ≤ eps as zero; exact equality against
// zero is never used, to avoid false positives/negatives from rounding.

package gauss

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linsolve/matrix"
)

// FirstNonZeroInColumn scans rows startRow..Rows()−1 in increasing row order at
// the fixed column col, and returns the first row index whose entry exceeds eps
// in magnitude. When every scanned entry is zero within eps — including when
// startRow is past the last row — it returns NotFound, not an error.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m); bounds-check col; reject negative startRow.
//   - Stage 2: Fixed downward scan r=startRow..rows−1 via At.
//
// Returns:
//   - int  : first row r ≥ startRow with |m[r][col]| > eps, or NotFound.
//   - error: validation failures wrapped with opColumnScan.
//
// Errors:
//   - matrix.ErrNilMatrix  (nil input).
//   - matrix.ErrOutOfRange (col outside [0, Cols), or startRow < 0).
//     startRow ≥ Rows() is NOT an error: the scanned range is empty → NotFound.
//
// Complexity:
//   - Time O(rows − startRow), Space O(1).
func FirstNonZeroInColumn(m matrix.Matrix, col, startRow int, eps float64) (int, error) {
	// Validate input non-nil
	if err := matrix.ValidateNotNil(m); err != nil {
		return NotFound, gaussErrorf(opColumnScan, err)
	}
	// Validate the fixed column and the scan origin
	if col < 0 || col >= m.Cols() || startRow < 0 {
		return NotFound, gaussErrorf(opColumnScan, matrix.ErrOutOfRange)
	}

	// Downward scan in increasing row order.
	var (
		r    int
		v    float64
		err  error
		rows = m.Rows()
	)
	for r = startRow; r < rows; r++ {
		v, err = m.At(r, col)
		if err != nil {
			return NotFound, gaussErrorf(opColumnScan, fmt.Errorf("At(%d,%d): %w", r, col, err))
		}
		if math.Abs(v) > eps {
			return r, nil // first usable entry wins
		}
	}

	// Every entry from startRow down was zero within eps.
	return NotFound, nil
}

// FirstNonZeroInRow scans columns left-to-right in row row and returns the
// first column index whose entry exceeds eps in magnitude. When augmented is
// true the last column is excluded from the scan: it is the constants column
// of an augmented matrix, not part of the coefficient search. An all-zero
// (possibly truncated) row yields NotFound.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m); bounds-check row.
//   - Stage 2: Fixed left-to-right scan c=0..limit−1 via At, where limit is
//     Cols() or Cols()−1 under augmented.
//
// Returns:
//   - int  : first column c with |m[row][c]| > eps, or NotFound.
//   - error: validation failures wrapped with opRowScan.
//
// Errors:
//   - matrix.ErrNilMatrix  (nil input).
//   - matrix.ErrOutOfRange (row outside [0, Rows)).
//
// Complexity:
//   - Time O(cols), Space O(1).
func FirstNonZeroInRow(m matrix.Matrix, row int, augmented bool, eps float64) (int, error) {
	// Validate input non-nil
	if err := matrix.ValidateNotNil(m); err != nil {
		return NotFound, gaussErrorf(opRowScan, err)
	}
	// Validate the fixed row
	if row < 0 || row >= m.Rows() {
		return NotFound, gaussErrorf(opRowScan, matrix.ErrOutOfRange)
	}

	// Resolve the scan limit: the constants column is excluded when augmented.
	limit := m.Cols()
	if augmented {
		limit--
	}

	// Left-to-right scan in increasing column order.
	var (
		c   int
		v   float64
		err error
	)
	for c = 0; c < limit; c++ {
		v, err = m.At(row, c)
		if err != nil {
			return NotFound, gaussErrorf(opRowScan, fmt.Errorf("At(%d,%d): %w", row, c, err))
		}
		if math.Abs(v) > eps {
			return c, nil // first usable entry wins
		}
	}

	// The (possibly truncated) row is all zero within eps.
	return NotFound, nil
}
