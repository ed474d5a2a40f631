// Package matrix offers the dense float64 substrate for linear-system solving.
//
// The matrix package provides:
//
//   - A minimal Matrix interface (Rows, Cols, At, Set, Clone) with Dense, a
//     row-major flat-slice implementation tuned for cache friendliness.
//   - Ingestion facades (FromRows, Column) that copy caller data and enforce
//     the finite-value numeric policy up front.
//   - Deterministic kernels — Add, Sub, Mul, MatVec, and Det — each with a
//     *Dense fast path and a generic interface fallback.
//   - A unified sentinel error set and canonical validators shared with the
//     gauss elimination pipeline.
//
// Dense storage is best for small and modestly sized systems where O(r*c)
// memory is acceptable; there is no sparse representation here.
//
// See the gauss package for the elimination pipeline built on this substrate.
package matrix
