// SPDX-License-Identifier: MIT

package matrixio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/katalvlaran/parmatmul/matrix"
)

// valuePrecision is the number of decimals written per value.
const valuePrecision = 15

// Write prints m to w, one row per line, values formatted like "%.15f" and
// separated by one space. A 0×n or m×0 matrix writes m empty lines.
func Write(w io.Writer, m *matrix.Dense) error {
	if err := matrix.ValidateLive(m); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 32)
	for i := 0; i < m.Rows(); i++ {
		row, err := m.Row(i)
		if err != nil {
			return err
		}
		for j, v := range row {
			if j > 0 {
				_ = bw.WriteByte(' ')
			}
			buf = strconv.AppendFloat(buf[:0], float64(v), 'f', valuePrecision, 32)
			_, _ = bw.Write(buf)
		}
		_ = bw.WriteByte('\n')
	}

	return bw.Flush()
}

// WriteFile writes m to path through a temporary file in the same directory
// that is renamed over path only after a successful write and sync.
func WriteFile(path string, m *matrix.Dense) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("%w: %w", err, ErrOutputWrite)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
			err = fmt.Errorf("%s: %w: %w", path, err, ErrOutputWrite)
		}
	}()

	if err = Write(tmp, m); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
