package word_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/sl2word/word"
)

// BenchmarkDerive_Fibonacci benchmarks the deepest descent shape: two
// consecutive Fibonacci numbers maximize descent depth per output letter.
func BenchmarkDerive_Fibonacci(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := word.Derive(6765, 4181); err != nil {
			b.Fatalf("Derive failed: %v", err)
		}
	}
}

// BenchmarkDerive_Skewed benchmarks the shallow, long-run shape 1/q.
func BenchmarkDerive_Skewed(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := word.Derive(1, 10000); err != nil {
			b.Fatalf("Derive failed: %v", err)
		}
	}
}

// BenchmarkEvaluate_100Letters measures the fold over a 100-letter random
// word with integer shear images at 100 bits.
func BenchmarkEvaluate_100Letters(b *testing.B) {
	w := word.Random(100, rand.New(rand.NewSource(2)))
	rep := shearRep{100}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := word.Evaluate(w, rep, 100); err != nil {
			b.Fatalf("Evaluate failed: %v", err)
		}
	}
}
