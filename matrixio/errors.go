// SPDX-License-Identifier: MIT

package matrixio

import "errors"

var (
	// ErrInputRead indicates that an input file could not be opened or read.
	ErrInputRead = errors.New("matrixio: input read failed")

	// ErrMalformedInput indicates a token that is not a float or a row whose
	// length differs from the first row.
	ErrMalformedInput = errors.New("matrixio: malformed input")

	// ErrEmptyInput indicates input without a single non-blank line.
	ErrEmptyInput = errors.New("matrixio: empty input")

	// ErrOutputWrite indicates that an output file could not be written.
	ErrOutputWrite = errors.New("matrixio: output write failed")
)
