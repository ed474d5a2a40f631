// SPDX-License-Identifier: MIT

// Package gauss: functional configuration for the elimination pipeline's
// numeric policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - The two tolerances are deliberately DISTINCT knobs. EntryEpsilon drives
//     entrywise zero tests (pivot scans, pivot checks); DetEpsilon drives the
//     whole-matrix determinant singularity test. They happen to share a default
//     value, but unifying them would change behavior on boundary cases, so the
//     pipeline never substitutes one for the other.
package gauss

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEntryEps is the absolute tolerance for entrywise zero tests:
	// a value v is treated as zero when |v| ≤ DefaultEntryEps. Used by the
	// pivot scans and the per-row pivot check during reduction.
	DefaultEntryEps = 1e-5

	// DefaultDetEps is the absolute tolerance of the upfront singularity test:
	// a system is declared singular when |det(A)| ≤ DefaultDetEps.
	DefaultDetEps = 1e-5
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEntryEpsInvalid = "gauss: WithEntryEpsilon: eps must be finite, non-negative"
	panicDetEpsInvalid   = "gauss: WithDetEpsilon: eps must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are intentionally unexported to prevent external mutation; public
// entry points accept `...Option` and internally resolve them via gatherOptions.
type Options struct {
	entryEps float64 // ≥ 0; DefaultEntryEps — entrywise zero tolerance
	detEps   float64 // ≥ 0; DefaultDetEps — determinant singularity tolerance
}

// EntryEpsilon reports the resolved entrywise zero tolerance.
// Complexity: O(1).
func (o Options) EntryEpsilon() float64 { return o.entryEps }

// DetEpsilon reports the resolved determinant singularity tolerance.
// Complexity: O(1).
func (o Options) DetEpsilon() float64 { return o.detEps }

// ---------- Constructors (WithX) ----------

// WithEntryEpsilon sets the entrywise zero tolerance used by pivot scans and
// pivot checks: |v| ≤ eps is treated as zero.
//
// Inputs:
//   - eps: non-negative finite tolerance.
//
// Errors:
//   - Panics with a stable message when eps is invalid (programmer error).
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Larger eps treats more near-zero entries as pivots to replace; use
//     judiciously on noisy data.
func WithEntryEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEntryEpsInvalid)
	}

	// Assign validated epsilon
	return func(o *Options) { o.entryEps = eps }
}

// WithDetEpsilon sets the determinant tolerance of the upfront singularity
// test: |det(A)| ≤ eps declares the system singular before elimination starts.
//
// Inputs:
//   - eps: non-negative finite tolerance.
//
// Errors:
//   - Panics with a stable message when eps is invalid (programmer error).
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Kept separate from WithEntryEpsilon on purpose: the two tolerances guard
//     different tests and must stay independently tunable.
func WithDetEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicDetEpsInvalid)
	}

	// Assign validated epsilon
	return func(o *Options) { o.detEps = eps }
}

// NewOptions resolves option setters against documented defaults.
// Most public entry points accept ...Option and call gatherOptions themselves;
// NewOptions exists for callers that want to inspect the resolved policy.
// Complexity: O(len(opts)).
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions builds the effective Options: documented defaults first, then
// user setters applied in order (last-writer-wins semantics).
func gatherOptions(user ...Option) Options {
	o := Options{
		entryEps: DefaultEntryEps,
		detEps:   DefaultDetEps,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
