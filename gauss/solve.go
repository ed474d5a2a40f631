// SPDX-License-Identifier: MIT
// Package gauss: the solver facade.

package gauss

import (
	"github.com/katalvlaran/linsolve/matrix"
)

// Solve computes the unique solution x of the dense linear system A·x = B via
// Gaussian elimination with partial pivoting. It orchestrates RowEchelonForm
// and BackSubstitute; both inputs are left untouched.
//
// Implementation:
//   - Stage 1: ValidateSystem(a, b) — fail fast before any numeric work.
//   - Stage 2: RowEchelonForm(a, b) — a singular system surfaces here as
//     matrix.ErrSingular and is propagated verbatim; BackSubstitute is never
//     reached in that case.
//   - Stage 3: BackSubstitute on the reduced augmented matrix.
//
// Returns:
//   - []float64: n solution values in the column order of A.
//   - error    : matrix.ErrSingular (no unique solution — branch on it with
//     errors.Is before using the vector), or a shape sentinel on malformed
//     input; all wrapped with opSolve.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrDimensionMismatch.
//   - matrix.ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2). Deterministic and side-effect-free on its
//     inputs; independent concurrent calls need no synchronization.
func Solve(a, b matrix.Matrix, opts ...Option) ([]float64, error) {
	// Fail fast on malformed shapes (B must be a column matching A's rows).
	if err := matrix.ValidateSystem(a, b); err != nil {
		return nil, gaussErrorf(opSolve, err)
	}
	if b.Cols() != 1 {
		return nil, gaussErrorf(opSolve, matrix.ErrDimensionMismatch)
	}

	// Reduce to row echelon form; singular systems stop here.
	ref, err := RowEchelonForm(a, b, opts...)
	if err != nil {
		return nil, gaussErrorf(opSolve, err)
	}

	// Resolve the solution by the upward pass.
	x, err := BackSubstitute(ref, opts...)
	if err != nil {
		return nil, gaussErrorf(opSolve, err)
	}

	// Return the solution vector
	return x, nil
}
