// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package and by the gauss solver built on top of it. All algorithms MUST
// return these sentinels and tests MUST check them via errors.Is. No algorithm
// should panic on user-triggered error conditions. Panics are reserved for
// programmer errors in private helpers (if any).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// shape/index/NaN -> dimension mismatch -> numeric outcomes (ErrSingular).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	// Constructors must validate dense creation before allocation.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, Mul where a.Cols != b.Rows, or an
	// augmentation [A | B] where row counts differ.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (ingestion via FromRows/Column).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrRagged indicates that a [][]float64 ingested via FromRows had rows of
	// unequal length; Dense storage requires a rectangular shape.
	ErrRagged = errors.New("matrix: ragged rows")

	// ErrSingular is returned when a coefficient matrix has no inverse within
	// the configured determinant tolerance, hence the system has no unique
	// solution. This is a numeric outcome, not a precondition violation.
	ErrSingular = errors.New("matrix: singular matrix")
)

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
// Keep it as an alias so errors.Is(err, ErrIndexOutOfBounds) remains true.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.
