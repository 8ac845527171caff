// SPDX-License-Identifier: MIT

package matrixio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/parmatmul/matrix"
)

// maxLine bounds one input row; wide matrices at %.15f need ~20 bytes a cell.
const maxLine = 64 << 20

// Read parses one matrix from r.
//
// Errors:
//   - ErrEmptyInput (also matching ErrMalformedInput) when r holds only
//     blank lines.
//   - ErrMalformedInput (with the 1-based line number) for a bad token or a
//     row of the wrong length.
//   - ErrInputRead when r itself fails.
func Read(r io.Reader) (*matrix.Dense, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	var (
		data []float32
		rows int
		cols = -1
		line int
	)
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if cols < 0 {
			cols = len(fields)
		} else if len(fields) != cols {
			return nil, fmt.Errorf("line %d: %d values, want %d: %w", line, len(fields), cols, ErrMalformedInput)
		}
		for _, tok := range fields {
			v, err := strconv.ParseFloat(tok, 32)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w: %w", line, err, ErrMalformedInput)
			}
			data = append(data, float32(v))
		}
		rows++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w: %w", line+1, err, ErrInputRead)
	}
	if rows == 0 {
		return nil, fmt.Errorf("%w: %w", ErrEmptyInput, ErrMalformedInput)
	}

	return matrix.NewDenseFrom(rows, cols, data)
}

// ReadFile opens path and parses it with Read. Errors carry the path.
func ReadFile(path string) (*matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", err, ErrInputRead)
	}
	defer f.Close()

	m, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}
