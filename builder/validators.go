// SPDX-License-Identifier: MIT

package builder

// validateShape rejects negative dimensions. Zero is allowed, matching
// matrix.NewDense.
func validateShape(method string, rows, cols int) error {
	if rows < 0 || cols < 0 {
		return builderErrorf(method, ErrBadSize, "shape %dx%d", rows, cols)
	}

	return nil
}
