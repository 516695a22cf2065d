package mat2_test

import (
	"testing"

	"github.com/katalvlaran/sl2word/bigcplx"
	"github.com/katalvlaran/sl2word/mat2"
)

// benchMatrix returns a fixed non-dyadic complex matrix at prec bits so
// every kernel exercises the guarded rounding path.
func benchMatrix(prec uint) *mat2.Matrix {
	return mat2.New(
		bigcplx.FromFloat64(1.25, 2.5, prec), bigcplx.FromFloat64(-0.3, 4.7, prec),
		bigcplx.FromFloat64(0.9, -1.1, prec), bigcplx.FromFloat64(2.25, 0.5, prec),
	)
}

// BenchmarkMul_100 measures one 2×2 complex product at 100 bits.
func BenchmarkMul_100(b *testing.B) {
	m := benchMatrix(100)
	n := benchMatrix(100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Mul(n)
	}
}

// BenchmarkMul_1000 shows the cost growth with precision.
func BenchmarkMul_1000(b *testing.B) {
	m := benchMatrix(1000)
	n := benchMatrix(1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Mul(n)
	}
}

// BenchmarkInv_100 measures the adjugate-based inverse at 100 bits.
func BenchmarkInv_100(b *testing.B) {
	m := benchMatrix(100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.Inv(); err != nil {
			b.Fatalf("Inv failed: %v", err)
		}
	}
}

// BenchmarkDominant_100 measures the eigenpair computation at 100 bits.
func BenchmarkDominant_100(b *testing.B) {
	m := benchMatrix(100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Dominant()
	}
}
