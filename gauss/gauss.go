// SPDX-License-Identifier: MIT
// Package gauss: shared constants and uniform error wrapping for the
// elimination pipeline. Sentinels themselves live in the matrix package so
// both layers expose one error surface matched via errors.Is.

package gauss

import "fmt"

// NotFound is the marker returned by the pivot scans when no entry beyond the
// configured tolerance exists in the scanned range.
const NotFound = -1

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opSwapRows       = "SwapRows"
	opColumnScan     = "FirstNonZeroInColumn"
	opRowScan        = "FirstNonZeroInRow"
	opAugment        = "Augment"
	opRowEchelon     = "RowEchelonForm"
	opBackSubstitute = "BackSubstitute"
	opSolve          = "Solve"
)

// gaussErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
// Complexity: O(1).
func gaussErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
