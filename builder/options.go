// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"
)

// BuilderOption customizes a constructor by mutating a builderConfig before
// the matrix is filled.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRange sets the half-open interval [lo, hi) for Random.
// Panics if either bound is not finite or hi <= lo.
func WithRange(lo, hi float32) BuilderOption {
	if !finite(lo) || !finite(hi) || hi <= lo {
		panic("builder: WithRange: need finite lo < hi")
	}

	return func(c *builderConfig) { c.lo, c.hi = lo, hi }
}

// WithStart sets the first Sequence value. Panics if v is not finite.
func WithStart(v float32) BuilderOption {
	if !finite(v) {
		panic("builder: WithStart: value must be finite")
	}

	return func(c *builderConfig) { c.start = v }
}

// WithStep sets the Sequence increment. Panics if step is not finite.
func WithStep(step float32) BuilderOption {
	if !finite(step) {
		panic("builder: WithStep: step must be finite")
	}

	return func(c *builderConfig) { c.step = step }
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
