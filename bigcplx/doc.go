// Package bigcplx implements immutable arbitrary-precision complex
// numbers on top of math/big, with MPFR-style text rendering.
//
// 🚀 What is bigcplx?
//
//	A complex value is an ordered pair (real, imaginary) of big.Float
//	significands, both carrying the same bit precision P fixed at
//	construction time. Every operation allocates a fresh result; no
//	method ever mutates its receiver or its operands.
//
// ✨ Key properties:
//
//   - One precision per value – results inherit the receiver's precision
//   - Round-to-nearest-even throughout (big.Float default), matching MPFR
//   - Guard bits on compound operations (Mul, Square, Inv, Div, Sqrt) so
//     each result stays within ~1 ulp of the correctly rounded answer
//   - Principal-branch Sqrt (real part ≥ 0; on the negative real axis the
//     root with positive imaginary part)
//   - Inv and Div fail only at exact zero (ErrZeroInverse), never coerce
//
// ⚙️ Usage:
//
//	z := bigcplx.FromFloat64(1, 2, 100)       // 1+2i at 100 bits
//	w, err := z.Square().Sub(bigcplx.One(100)).Sqrt().Inv()
//	fmt.Println(w)                            // "(re im)", 32 digits
//
// Formatting follows the MPFR convention: "(re im)" pairs, each part with
// 1+⌈P·log₁₀2⌉ significant digits, printed plainly when the decimal
// exponent fits inside the digit window and in scientific form otherwise.
//
// Complexity: every operation is O(M(P)) where M is big.Float
// multiplication cost at P bits.
package bigcplx
