package gauss_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/cayley/gauss"
	"github.com/katalvlaran/cayley/matrix"
)

var sinkX *matrix.Vector[float64]

func BenchmarkSolve(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{8, 64, 256} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			r, err := matrix.Random(-1.0, 1.0, n, n, matrix.WithSeed(1))
			if err != nil {
				b.Fatal(err)
			}
			I, _ := matrix.NewIdentity[float64](n)
			a, err := r.Add(I.Scalar(float64(n + 1)))
			if err != nil {
				b.Fatal(err)
			}
			rhs, err := matrix.RandomVector(-1.0, 1.0, n, matrix.Col, matrix.WithSeed(2))
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				x, ok, err := gauss.Solve(a, rhs)
				if err != nil || !ok {
					b.Fatalf("Solve: ok=%v err=%v", ok, err)
				}
				sinkX = x
			}
		})
	}
}
