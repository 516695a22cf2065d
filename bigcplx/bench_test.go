package bigcplx_test

import (
	"testing"

	"github.com/katalvlaran/sl2word/bigcplx"
)

// benchmarkKernel runs op b.N times on a fixed non-dyadic operand pair at
// the given precision, so the guarded rounding path is always exercised.
func benchmarkKernel(b *testing.B, prec uint, op func(z, w *bigcplx.Complex)) {
	z := bigcplx.FromFloat64(1.25, 2.5, prec)
	w := bigcplx.FromFloat64(0.3, -4.7, prec)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		op(z, w)
	}
}

// BenchmarkMul_100 measures complex multiplication at a typical run precision.
func BenchmarkMul_100(b *testing.B) {
	benchmarkKernel(b, 100, func(z, w *bigcplx.Complex) { z.Mul(w) })
}

// BenchmarkMul_1000 measures multiplication cost growth at 1000 bits.
func BenchmarkMul_1000(b *testing.B) {
	benchmarkKernel(b, 1000, func(z, w *bigcplx.Complex) { z.Mul(w) })
}

// BenchmarkSqrt_100 measures the principal square root at 100 bits.
func BenchmarkSqrt_100(b *testing.B) {
	benchmarkKernel(b, 100, func(z, _ *bigcplx.Complex) { z.Sqrt() })
}

// BenchmarkInv_100 measures the reciprocal at 100 bits.
func BenchmarkInv_100(b *testing.B) {
	benchmarkKernel(b, 100, func(z, _ *bigcplx.Complex) { _, _ = z.Inv() })
}
