// SPDX-License-Identifier: MIT

// Package matrixio reads and writes matrices in the whitespace-separated text
// format used by the parmatmul CLI: one row per line, one float per token.
//
// Reading skips blank lines and takes the column count from the first row;
// every later row must match it. Writing prints every value with "%.15f",
// space separated, one row per line, and WriteFile replaces the target
// atomically so a failed run never leaves a truncated file behind.
package matrixio
