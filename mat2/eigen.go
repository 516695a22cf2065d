// SPDX-License-Identifier: MIT

// Dominant eigenpair for unit-determinant matrices. The CLI reports the
// dominant eigenvalue and eigenvector of the final word image; the
// residual check doubles as a coarse probe for insufficient run
// precision.

package mat2

import (
	"math/big"

	"github.com/katalvlaran/sl2word/bigcplx"
)

// Dominant returns the larger-modulus eigenvalue of m together with an
// (unnormalized) eigenvector, assuming det(m) = 1 — the structural
// constant of generator representations. Under that assumption the
// characteristic equation λ² − tr(m)·λ + 1 = 0 gives
//
//	λ = (tr(m) ± sqrt(tr(m)² − 4)) / 2
//
// and the eigenvector is [λ−m11, m10] for the "−" branch or
// [m01, λ−m00] for the "+" branch.
//
// For matrices with |tr| = 2 (parabolic images) both roots coincide and
// the returned eigenvector may be the zero vector; IsEigenvector reports
// false there.
// Complexity: O(M(P)).
func (m *Matrix) Dominant() (lambda *bigcplx.Complex, vx, vy *bigcplx.Complex) {
	p := m.Prec()
	two := bigcplx.FromFloat64(2, 0, p)
	four := bigcplx.FromFloat64(4, 0, p)

	tr := m.Trace()
	disc := tr.Square().Sub(four).Sqrt()

	// The two roots of λ² − tr·λ + 1.
	lo, _ := tr.Sub(disc).Div(two) // divisor 2 is never zero
	hi, _ := tr.Add(disc).Div(two)

	// Pick the larger modulus; ties favor the "−" branch like cmp_abs
	// resolving Equal|Greater together.
	if lo.AbsSq().Cmp(hi.AbsSq()) >= 0 {
		return lo, lo.Sub(m.m11), m.m10
	}

	return hi, m.m01, hi.Sub(m.m00)
}

// IsEigenvector reports whether (vx, vy) is mapped by m onto a scalar
// multiple of itself, within the absolute tolerance eps. A false result
// for a vector produced by Dominant suggests the run precision is too
// low to separate the eigenspaces.
//
// Stage 1: image (ux, uy) = m·(vx, vy).
// Stage 2: infer the scalar from a nonzero coordinate of v.
// Stage 3: compare the other coordinate's residual against eps.
// Complexity: O(M(P)).
func (m *Matrix) IsEigenvector(vx, vy *bigcplx.Complex, eps *big.Float) bool {
	ux := m.m00.Mul(vx).Add(m.m01.Mul(vy))
	uy := m.m10.Mul(vx).Add(m.m11.Mul(vy))

	var resid *bigcplx.Complex
	switch {
	case !vx.IsZero():
		scale, _ := ux.Div(vx)
		resid = scale.Mul(vy).Sub(uy)
	case !vy.IsZero():
		scale, _ := uy.Div(vy)
		resid = scale.Mul(vx).Sub(ux)
	default:
		return false // the zero vector is never an eigenvector
	}

	// |resid|² < eps²
	epsSq := new(big.Float).SetPrec(eps.Prec()).Mul(eps, eps)

	return resid.AbsSq().Cmp(epsSq) < 0
}
