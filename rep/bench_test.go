package rep_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/sl2word/bigcplx"
	"github.com/katalvlaran/sl2word/rep"
	"github.com/katalvlaran/sl2word/word"
)

// benchmarkEvaluate folds a fixed pseudo-random word of n letters at the
// given precision, rebuilding nothing between iterations.
func benchmarkEvaluate(b *testing.B, prec uint, n int) {
	z := bigcplx.FromFloat64(1, 2, prec)
	w := word.Random(n, rand.New(rand.NewSource(1)))

	r, err := rep.New(rep.Standard{}, z)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := word.Evaluate(w, r, prec); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkEvaluate_100bits_64letters is the typical interactive workload.
func BenchmarkEvaluate_100bits_64letters(b *testing.B) {
	benchmarkEvaluate(b, 100, 64)
}

// BenchmarkEvaluate_1000bits_64letters measures precision scaling.
func BenchmarkEvaluate_1000bits_64letters(b *testing.B) {
	benchmarkEvaluate(b, 1000, 64)
}

// BenchmarkNew_100bits measures representation construction, dominated by
// the four square roots and inverses.
func BenchmarkNew_100bits(b *testing.B) {
	z := bigcplx.FromFloat64(1, 2, 100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := rep.New(rep.Standard{}, z); err != nil {
			b.Fatal(err)
		}
	}
}
