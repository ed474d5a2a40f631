// Package gauss solves dense linear systems A·x = B by classical Gaussian
// elimination with partial pivoting.
//
// The gauss package provides:
//
//   - SwapRows, FirstNonZeroInColumn, FirstNonZeroInRow — the copy-on-write
//     row primitive and the tolerance-based pivot scans.
//   - Augment — [A | B] construction for joint row operations.
//   - RowEchelonForm — the elimination engine: an upfront determinant
//     singularity gate, pivot selection with downward replacement search,
//     normalization to unit pivots, and downward elimination.
//   - BackSubstitute — the upward pass resolving each variable once the
//     system is in row echelon form.
//   - Solve — the facade tying the pipeline together.
//
// A singular system (no unique solution) is reported as matrix.ErrSingular;
// branch on it with errors.Is before indexing into the solution:
//
//	x, err := gauss.Solve(A, B)
//	if errors.Is(err, matrix.ErrSingular) {
//		// handle "no unique solution"
//	}
//
// Two distinct named tolerances drive all zero tests: the entrywise epsilon
// (pivot scans and pivot checks) and the determinant epsilon (the singularity
// gate). Both default to 1e-5 and are tunable per call via WithEntryEpsilon
// and WithDetEpsilon; they are never unified because they guard different
// tests.
//
// Every operation treats its inputs as immutable and returns fresh values, so
// independent concurrent solves need no synchronization.
package gauss
