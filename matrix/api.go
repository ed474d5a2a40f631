// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Ingestion copies caller data (value semantics at the boundary) and rejects
//     NaN/±Inf and ragged shapes up front.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock fast-paths in kernels (flat-slice loops).
//   - Use FromRows/Column to ingest caller-owned data safely; the library never
//     aliases the input slices afterwards.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
// Complexity: O(r*c) zero-init (constructor).
//
// Note: Returns (*Dense, error) to surface ErrInvalidDimensions.
func NewZeros(rows, cols int) (*Dense, error) {
	// Delegate directly to the strict constructor (single allocation).
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	// Allocate an n×n zero matrix via the constructor.
	I, err := NewDense(n, n) // O(1) alloc + O(n^2) zeroing
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	// Set the diagonal deterministically in a single loop.
	for i := 0; i < n; i++ { // fixed i order guarantees reproducibility
		I.data[i*n+i] = 1.0 // direct write; shape already validated
	}

	// Return the identity matrix.
	return I, nil
}

// FromRows builds a Dense from caller-provided rows, copying every element.
// Stage 1 (Validate): non-empty, rectangular, finite values only.
// Stage 2 (Execute): copy row-by-row into the flat backing slice.
// Stage 3 (Finalize): return the new Dense; the input is never aliased.
//
// Errors:
//   - ErrInvalidDimensions (no rows, or empty first row).
//   - ErrRagged            (rows of unequal length).
//   - ErrNaNInf            (non-finite entry under the numeric policy).
//
// Complexity: O(r*c).
func FromRows(rows [][]float64) (*Dense, error) {
	// Validate outer shape before allocating.
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	// Copy each row, enforcing rectangularity and the finite-value policy.
	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, validatorErrorf("FromRows", ErrRagged)
		}
		for j = 0; j < c; j++ {
			if err = ValidateFinite(rows[i][j]); err != nil {
				return nil, validatorErrorf("FromRows", err)
			}
			m.data[i*c+j] = rows[i][j]
		}
	}

	return m, nil
}

// Column builds an n×1 column vector Dense from a slice, copying every element.
// The usual way to supply the constants vector B of a linear system.
//
// Errors:
//   - ErrInvalidDimensions (empty slice).
//   - ErrNaNInf            (non-finite entry under the numeric policy).
//
// Complexity: O(n).
func Column(values []float64) (*Dense, error) {
	// Validate shape before allocating.
	if len(values) == 0 {
		return nil, ErrInvalidDimensions
	}
	m, err := NewDense(len(values), 1)
	if err != nil {
		return nil, err
	}
	// Copy with the finite-value policy enforced per entry.
	for i, v := range values {
		if err = ValidateFinite(v); err != nil {
			return nil, validatorErrorf("Column", err)
		}
		m.data[i] = v
	}

	return m, nil
}

// CloneMatrix returns a structural clone of m (same type if m is *Dense).
// Thin wrapper over Matrix.Clone for API discoverability.
// Complexity: O(r*c) copy for dense; implementation-defined otherwise.
func CloneMatrix(m Matrix) Matrix {
	return m.Clone()
}
