package gauss_test

import (
	"fmt"

	"github.com/katalvlaran/cayley/gauss"
	"github.com/katalvlaran/cayley/matrix"
)

// ExampleSolve solves a 3×3 system and shows the singular outcome.
func ExampleSolve() {
	a, _ := matrix.New([][]float64{
		{1, 3, -2},
		{3, 5, 6},
		{2, 4, 3},
	})
	b := matrix.NewVector([]float64{5, 7, 8}, matrix.Col)

	x, ok, err := gauss.Solve(a, b)
	if err != nil {
		fmt.Println(err)
		return
	}
	for i := 0; i < x.Len(); i++ {
		xi, _ := x.Get(i)
		fmt.Printf("x%d = %.6f\n", i, xi)
	}
	fmt.Println("ok:", ok)

	singular, _ := matrix.New([][]float64{{1, 2}, {2, 4}})
	_, ok, err = gauss.Solve(singular, matrix.NewVector([]float64{3, 6}, matrix.Col))
	fmt.Println("ok:", ok, "err:", err)

	// Output:
	// x0 = -15.000000
	// x1 = 8.000000
	// x2 = 2.000000
	// ok: true
	// ok: false err: <nil>
}
