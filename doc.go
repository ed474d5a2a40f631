// Package linsolve is a small, deterministic toolkit for solving dense
// linear systems A·x = B by Gaussian elimination with partial pivoting.
//
// 🚀 What is linsolve?
//
//	A pure-Go numeric library that brings together:
//		• Matrix substrate: a row-major Dense type behind a minimal Matrix interface
//		• Row primitives: copy-on-write row swaps and tolerance-based pivot scans
//		• Augmentation: [A | B] construction for joint row operations
//		• Reduction: row echelon form with pivot selection and normalization
//		• Back substitution: upward elimination and solution extraction
//		• Singularity detection: an upfront determinant test with an explicit tolerance
//
// ✨ Why choose linsolve?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – value semantics everywhere, inputs never mutated
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – fixed loop orders, explicit named tolerances, no global state
//
// Under the hood, everything is organized under two subpackages:
//
//	matrix/ — Dense storage, kernels (Add, Sub, Mul, MatVec, Det), validators & sentinels
//	gauss/  — the elimination pipeline: SwapRows, pivot scans, Augment,
//	          RowEchelonForm, BackSubstitute, Solve
//
// Quick example:
//
//	A, _ := matrix.FromRows([][]float64{{2, 1, -1}, {-3, -1, 2}, {-2, 1, 2}})
//	B, _ := matrix.Column([]float64{8, -11, -3})
//	x, err := gauss.Solve(A, B)
//	if errors.Is(err, matrix.ErrSingular) {
//		// no unique solution exists
//	}
//	// x == [2 3 -1]
//
// Every operation returns a fresh result and leaves its arguments untouched;
// independent concurrent calls need no synchronization.
//
//	go get github.com/katalvlaran/linsolve
package linsolve
