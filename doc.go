// Package sl2word evaluates elements of the free group on two generators
// under 2×2 complex-matrix representations, at any bit precision — from
// Stern–Brocot word derivation to high-precision trace computation.
//
// 🚀 What is sl2word?
//
//	A small, deterministic library that brings together:
//		• Arbitrary-precision complex arithmetic over math/big
//		• 2×2 complex matrix algebra: multiply, determinant, inverse, trace
//		• Generator representations F₂ → SL(2,ℂ), parametrized by z
//		• Canonical (Christoffel) words for rationals via the Stern–Brocot tree
//		• Word evaluation: fold letter images into one matrix, report its trace
//
// ✨ Why choose sl2word?
//
//   - Exact control – one precision per run, threaded explicitly everywhere
//   - Honest arithmetic – no symbolic cancellation, no silent coercion
//   - Pure Go – no cgo, no GMP/MPFR bindings
//   - Extensible – plug in your own representation family for testing or research
//
// Under the hood, everything is organized under four subpackages:
//
//	bigcplx/ — immutable arbitrary-precision complex values + MPFR-style formatting
//	mat2/    — 2×2 complex matrices, inverses, traces, dominant eigenpairs
//	word/    — letters, words, random words, Stern–Brocot derivation, evaluation
//	rep/     — representation families and memoized letter→matrix images
//
// Quick sketch:
//
//	    p/q ──derive──▶ "ababb" ──images──▶ M₁·M₂·M₃·M₄·M₅ ──▶ trace
//
// A command-line front end lives in cmd/sl2word; see its help output for
// the flag surface (word, rational, random word, random z, precision).
//
//	go get github.com/katalvlaran/sl2word
package sl2word
