// SPDX-License-Identifier: MIT

package builder

// Builder method name constants, used as error context.
const (
	// MethodRandom is the canonical name for the Random constructor.
	MethodRandom = "Random"
	// MethodSequence is the canonical name for the Sequence constructor.
	MethodSequence = "Sequence"
	// MethodIdentity is the canonical name for the Identity constructor.
	MethodIdentity = "Identity"
	// MethodConstant is the canonical name for the Constant constructor.
	MethodConstant = "Constant"
	// MethodPair is the canonical name for the Pair constructor.
	MethodPair = "Pair"
)

// Defaults for the value knobs.
const (
	// DefaultLow is the inclusive lower bound of Random values.
	DefaultLow float32 = -1
	// DefaultHigh is the exclusive upper bound of Random values.
	DefaultHigh float32 = 1
	// DefaultStart is the first value of a Sequence.
	DefaultStart float32 = 1
	// DefaultStep is the increment between consecutive Sequence cells.
	DefaultStep float32 = 1
)
