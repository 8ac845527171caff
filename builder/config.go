// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng   = nil            (Random fails with ErrNeedRandSource)
//   • lo/hi = DefaultLow / DefaultHigh
//   • start = DefaultStart, step = DefaultStep

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
type builderConfig struct {
	rng   *rand.Rand
	lo    float32
	hi    float32
	start float32
	step  float32
}

// newBuilderConfig applies opts in order over the defaults; last wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		lo:    DefaultLow,
		hi:    DefaultHigh,
		start: DefaultStart,
		step:  DefaultStep,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
