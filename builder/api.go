// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go - matrix constructors.
//
// Every constructor resolves its options, validates the shape, and fills a
// fresh matrix.Dense in row-major order. Complexity is O(rows*cols) time and
// space for all of them.

package builder

import (
	"fmt"

	"github.com/katalvlaran/parmatmul/matrix"
)

// Random returns a rows×cols matrix with values drawn uniformly from
// [lo, hi) (WithRange, default [-1, 1)).
// Errors: ErrBadSize, ErrNeedRandSource.
func Random(rows, cols int, opts ...BuilderOption) (*matrix.Dense, error) {
	cfg := newBuilderConfig(opts...)
	if err := validateShape(MethodRandom, rows, cols); err != nil {
		return nil, err
	}
	if cfg.rng == nil {
		return nil, builderErrorf(MethodRandom, ErrNeedRandSource, "use WithSeed or WithRand")
	}

	return fill(MethodRandom, rows, cols, func(int) float32 {
		return cfg.lo + cfg.rng.Float32()*(cfg.hi-cfg.lo)
	})
}

// Sequence returns a rows×cols matrix whose cell at flat index i holds
// start + i*step. With the defaults, Sequence(2, 3) is [[1,2,3],[4,5,6]].
// Errors: ErrBadSize.
func Sequence(rows, cols int, opts ...BuilderOption) (*matrix.Dense, error) {
	cfg := newBuilderConfig(opts...)
	if err := validateShape(MethodSequence, rows, cols); err != nil {
		return nil, err
	}

	return fill(MethodSequence, rows, cols, func(i int) float32 {
		return cfg.start + float32(i)*cfg.step
	})
}

// Identity returns the n×n identity matrix.
// Errors: ErrBadSize.
func Identity(n int) (*matrix.Dense, error) {
	if err := validateShape(MethodIdentity, n, n); err != nil {
		return nil, err
	}

	return fill(MethodIdentity, n, n, func(i int) float32 {
		if i/n == i%n {
			return 1
		}
		return 0
	})
}

// Constant returns a rows×cols matrix with every cell equal to v.
// Errors: ErrBadSize.
func Constant(rows, cols int, v float32) (*matrix.Dense, error) {
	if err := validateShape(MethodConstant, rows, cols); err != nil {
		return nil, err
	}

	return fill(MethodConstant, rows, cols, func(int) float32 { return v })
}

// Pair returns random A (m×k) and B (k×n) from one RNG stream: A is drawn
// first, so the pair is reproducible for a fixed seed.
// Errors: ErrBadSize, ErrNeedRandSource.
func Pair(m, k, n int, opts ...BuilderOption) (a, b *matrix.Dense, err error) {
	if err = validateShape(MethodPair, m, k); err == nil {
		err = validateShape(MethodPair, k, n)
	}
	if err != nil {
		return nil, nil, err
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, nil, builderErrorf(MethodPair, ErrNeedRandSource, "use WithSeed or WithRand")
	}
	// Both halves share cfg.rng through WithRand.
	shared := append(opts[:len(opts):len(opts)], WithRand(cfg.rng))
	if a, err = Random(m, k, shared...); err != nil {
		return nil, nil, err
	}
	if b, err = Random(k, n, shared...); err != nil {
		return nil, nil, err
	}

	return a, b, nil
}

// fill allocates rows×cols and sets flat cell i to at(i).
func fill(method string, rows, cols int, at func(i int) float32) (*matrix.Dense, error) {
	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	data := m.RawData()
	for i := range data {
		data[i] = at(i)
	}

	return m, nil
}
