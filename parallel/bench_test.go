// SPDX-License-Identifier: MIT

package parallel_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/parmatmul/matrix"
	"github.com/katalvlaran/parmatmul/parallel"
)

var benchSink *matrix.Dense

func BenchmarkMultiplyGoroutines(b *testing.B) {
	a := randDense(b, 192, 192, 1)
	m := randDense(b, 192, 192, 2)
	for _, w := range []int{1, 2, 4, 8} {
		e := parallel.New(parallel.WithWorkers(w))
		b.Run(fmt.Sprintf("w=%d", w), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				c, err := e.Multiply(context.Background(), a, m)
				if err != nil {
					b.Fatal(err)
				}
				benchSink = c
			}
		})
	}
}
