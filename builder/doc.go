// SPDX-License-Identifier: MIT

// Package builder generates deterministic input matrices for fixtures,
// benchmarks and the `parmatmul gen` command.
//
// The package offers:
//
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – WithSeed/WithRand: explicit RNG; stochastic builders require one.
//     – WithRange:      value interval [lo, hi) for Random.
//     – WithStep/WithStart: arithmetic progression for Sequence.
//   - Constructors (all return a fresh *matrix.Dense owned by the caller):
//     – Random(rows, cols, opts...)   uniform values in [lo, hi).
//     – Sequence(rows, cols, opts...) start, start+step, … in row-major order.
//     – Identity(n)                   n×n identity.
//     – Constant(rows, cols, v)       every cell equal to v.
//     – Pair(m, k, n, opts...)        a multiplication-compatible (m×k, k×n) pair.
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors never panic; shape violations return ErrBadSize wrapped
//     with the method name.
//   - Same seed and options give the same matrix, element for element.
package builder
