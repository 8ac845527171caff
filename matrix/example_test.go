package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/parmatmul/matrix"
)

// ExampleMul multiplies a 2×3 matrix by a 3×2 matrix.
func ExampleMul() {
	a, _ := matrix.NewDenseRows([][]float32{{1, 2, 3}, {4, 5, 6}})
	b, _ := matrix.NewDenseRows([][]float32{{7, 8}, {9, 10}, {11, 12}})

	c, err := matrix.Mul(a, b)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(c)

	// Output:
	// [58, 64]
	// [139, 154]
}

// ExampleDense_Release shows the explicit destroy lifecycle.
func ExampleDense_Release() {
	m, _ := matrix.NewDense(2, 2)
	m.Release()

	_, err := m.At(0, 0)
	fmt.Println(err)

	// Output:
	// Dense.At(0,0): matrix: matrix released
}
