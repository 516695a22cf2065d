// Package mat2 implements 2×2 matrices over arbitrary-precision complex
// values: multiplication, determinant, inverse, trace, and dominant
// eigenpairs.
//
// 🚀 What is mat2?
//
//	The matrix algebra underneath free-group word evaluation. A Matrix is
//	an immutable row-major grid of four bigcplx.Complex cells, all at one
//	bit precision; every operation allocates a fresh result.
//
// ✨ Key properties:
//
//   - Non-commutative Mul: 8 complex multiplications, 4 additions, in
//     textbook order — callers own the multiplication order
//   - Inverse via (1/det)·adj, failing with ErrSingular only when the
//     determinant is exactly zero, never coercing
//   - Trace = M₀₀+M₁₁, the scalar invariant reported for word images
//   - Dominant eigenvalue/eigenvector for unit-determinant matrices, with
//     a residual check usable as a precision-sufficiency probe
//
// ⚙️ Usage:
//
//	m := mat2.Identity(100)
//	p := m.Mul(n)            // order matters: p = m·n
//	tr := p.Trace()
//	inv, err := p.Inv()      // ErrSingular iff det(p) == 0 exactly
//
// Rendering follows the run output convention: each row prints as two
// "(re im)" pairs separated by a space, rows separated by a newline.
//
// Complexity: all operations are O(M(P)) in the bit precision P.
package mat2
