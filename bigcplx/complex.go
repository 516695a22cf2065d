// SPDX-License-Identifier: MIT
// Package bigcplx: the Complex value type and its arithmetic kernels.
// Every kernel allocates a fresh result at the receiver's precision;
// operands are never mutated. Rounding is to-nearest-even everywhere
// (big.Float default), matching the MPFR default.

package bigcplx

import (
	"fmt"
	"math/big"
)

// guardBits is the extra working precision carried by compound kernels
// (Mul, Square, Inv, Div, Sqrt, AbsSq). Intermediate products round at
// prec+guardBits before the single final rounding to prec, keeping each
// result within ~1 ulp of the correctly rounded value.
const guardBits = 32

// Complex is an immutable arbitrary-precision complex number: an ordered
// (real, imaginary) pair of big.Float values sharing one bit precision.
// The zero value is not usable; construct via New, FromFloat64, FromParts,
// Parse, One or I.
type Complex struct {
	re *big.Float // real part, precision == Prec()
	im *big.Float // imaginary part, precision == Prec()
}

// newFloat returns a fresh zero big.Float rounded at prec bits.
func newFloat(prec uint) *big.Float {
	return new(big.Float).SetPrec(prec)
}

// round returns a copy of x rounded to prec bits (to nearest even).
func round(x *big.Float, prec uint) *big.Float {
	return new(big.Float).SetPrec(prec).Set(x)
}

// New returns 0+0i at prec bits.
// Complexity: O(1).
func New(prec uint) *Complex {
	return &Complex{re: newFloat(prec), im: newFloat(prec)}
}

// One returns 1+0i at prec bits.
func One(prec uint) *Complex {
	return &Complex{re: newFloat(prec).SetInt64(1), im: newFloat(prec)}
}

// I returns 0+1i at prec bits.
func I(prec uint) *Complex {
	return &Complex{re: newFloat(prec), im: newFloat(prec).SetInt64(1)}
}

// FromFloat64 builds re+im·i at prec bits. Both arguments must be finite;
// NaN or ±Inf panics (programmer error, mirroring big.Float.SetFloat64).
// Complexity: O(1).
func FromFloat64(re, im float64, prec uint) *Complex {
	return &Complex{
		re: newFloat(prec).SetFloat64(re),
		im: newFloat(prec).SetFloat64(im),
	}
}

// FromParts copies re and im into a fresh value rounded at prec bits.
// The inputs remain owned by the caller.
func FromParts(re, im *big.Float, prec uint) *Complex {
	return &Complex{
		re: newFloat(prec).Set(re),
		im: newFloat(prec).Set(im),
	}
}

// Parse reads decimal real and imaginary parts at prec bits.
// Returns ErrParse (wrapped with the offending literal) on malformed input.
func Parse(re, im string, prec uint) (*Complex, error) {
	r, _, err := big.ParseFloat(re, 10, prec, big.ToNearestEven)
	if err != nil {
		return nil, fmt.Errorf("real part %q: %w", re, ErrParse)
	}
	i, _, err := big.ParseFloat(im, 10, prec, big.ToNearestEven)
	if err != nil {
		return nil, fmt.Errorf("imaginary part %q: %w", im, ErrParse)
	}

	return &Complex{re: r, im: i}, nil
}

// Prec reports the bit precision carried by z.
// Complexity: O(1).
func (z *Complex) Prec() uint { return z.re.Prec() }

// Real returns a copy of the real part. The copy is independent of z.
func (z *Complex) Real() *big.Float { return new(big.Float).Copy(z.re) }

// Imag returns a copy of the imaginary part.
func (z *Complex) Imag() *big.Float { return new(big.Float).Copy(z.im) }

// IsZero reports whether z is exactly 0+0i.
// Complexity: O(1).
func (z *Complex) IsZero() bool {
	return z.re.Sign() == 0 && z.im.Sign() == 0
}

// Equal reports exact equality of both parts.
func (z *Complex) Equal(w *Complex) bool {
	return z.re.Cmp(w.re) == 0 && z.im.Cmp(w.im) == 0
}

// Add returns z+w at z's precision.
// Complexity: O(P).
func (z *Complex) Add(w *Complex) *Complex {
	p := z.Prec()

	return &Complex{
		re: newFloat(p).Add(z.re, w.re),
		im: newFloat(p).Add(z.im, w.im),
	}
}

// Sub returns z−w at z's precision.
// Complexity: O(P).
func (z *Complex) Sub(w *Complex) *Complex {
	p := z.Prec()

	return &Complex{
		re: newFloat(p).Sub(z.re, w.re),
		im: newFloat(p).Sub(z.im, w.im),
	}
}

// Neg returns −z.
// Complexity: O(1) plus copy.
func (z *Complex) Neg() *Complex {
	p := z.Prec()

	return &Complex{
		re: newFloat(p).Neg(z.re),
		im: newFloat(p).Neg(z.im),
	}
}

// Conj returns the complex conjugate of z.
func (z *Complex) Conj() *Complex {
	p := z.Prec()

	return &Complex{
		re: newFloat(p).Set(z.re),
		im: newFloat(p).Neg(z.im),
	}
}

// Mul returns z·w at z's precision.
// Stage 1 (Expand): four real products at prec+guardBits.
// Stage 2 (Combine): (ac−bd) + (ad+bc)i, still guarded.
// Stage 3 (Round): single rounding of each part down to prec.
// Complexity: O(M(P)).
func (z *Complex) Mul(w *Complex) *Complex {
	p := z.Prec()
	wp := p + guardBits

	ac := new(big.Float).SetPrec(wp).Mul(z.re, w.re)
	bd := new(big.Float).SetPrec(wp).Mul(z.im, w.im)
	ad := new(big.Float).SetPrec(wp).Mul(z.re, w.im)
	bc := new(big.Float).SetPrec(wp).Mul(z.im, w.re)

	re := new(big.Float).SetPrec(wp).Sub(ac, bd)
	im := new(big.Float).SetPrec(wp).Add(ad, bc)

	return &Complex{re: round(re, p), im: round(im, p)}
}

// Square returns z² at z's precision. Cheaper than z.Mul(z): three real
// multiplications instead of four.
func (z *Complex) Square() *Complex {
	p := z.Prec()
	wp := p + guardBits

	rr := new(big.Float).SetPrec(wp).Mul(z.re, z.re)
	ii := new(big.Float).SetPrec(wp).Mul(z.im, z.im)
	ri := new(big.Float).SetPrec(wp).Mul(z.re, z.im)

	re := new(big.Float).SetPrec(wp).Sub(rr, ii)
	im := new(big.Float).SetPrec(wp).Add(ri, ri)

	return &Complex{re: round(re, p), im: round(im, p)}
}

// AbsSq returns |z|² = re²+im² as a real value at z's precision.
func (z *Complex) AbsSq() *big.Float {
	wp := z.Prec() + guardBits

	rr := new(big.Float).SetPrec(wp).Mul(z.re, z.re)
	ii := new(big.Float).SetPrec(wp).Mul(z.im, z.im)

	return round(new(big.Float).SetPrec(wp).Add(rr, ii), z.Prec())
}

// Inv returns 1/z, or ErrZeroInverse when z is exactly zero.
// Uses conj(z)/|z|² with guarded intermediates; the failure mode is the
// exact-zero denominator only — tiny values divide honestly.
// Complexity: O(M(P)).
func (z *Complex) Inv() (*Complex, error) {
	if z.IsZero() {
		return nil, ErrZeroInverse
	}
	p := z.Prec()
	wp := p + guardBits

	rr := new(big.Float).SetPrec(wp).Mul(z.re, z.re)
	ii := new(big.Float).SetPrec(wp).Mul(z.im, z.im)
	den := new(big.Float).SetPrec(wp).Add(rr, ii)

	re := new(big.Float).SetPrec(wp).Quo(z.re, den)
	im := new(big.Float).SetPrec(wp).Quo(new(big.Float).SetPrec(wp).Neg(z.im), den)

	return &Complex{re: round(re, p), im: round(im, p)}, nil
}

// Div returns z/w, or ErrZeroInverse when w is exactly zero.
func (z *Complex) Div(w *Complex) (*Complex, error) {
	inv, err := w.Inv()
	if err != nil {
		return nil, err
	}

	return z.Mul(inv), nil
}

// Sqrt returns the principal square root of z: the root with non-negative
// real part, and with positive imaginary part on the negative real axis.
// This matches the MPFR/MPC branch convention.
//
// Stage 1: r = |z| via a guarded real square root.
// Stage 2: the half-angle identities, picking the cancellation-free form:
//
//	re(z) ≥ 0:  u = √((r+re)/2),  v = im/(2u)
//	re(z) < 0:  |v| = √((r−re)/2), sign(v) = sign(im), u = im/(2v)
//
// Stage 3: round both parts to prec.
// Complexity: O(M(P)).
func (z *Complex) Sqrt() *Complex {
	p := z.Prec()
	if z.IsZero() {
		return New(p)
	}
	wp := p + guardBits
	half := newFloat(wp).SetFloat64(0.5) // exact in binary

	rr := new(big.Float).SetPrec(wp).Mul(z.re, z.re)
	ii := new(big.Float).SetPrec(wp).Mul(z.im, z.im)
	r := new(big.Float).SetPrec(wp).Sqrt(new(big.Float).SetPrec(wp).Add(rr, ii))

	u := new(big.Float).SetPrec(wp)
	v := new(big.Float).SetPrec(wp)
	if z.re.Sign() >= 0 {
		// u = sqrt((r+re)/2) is safe from cancellation here.
		u.Add(r, z.re).Mul(u, half)
		u.Sqrt(u)
		// v = im / (2u)
		v.Add(u, u)
		v.Quo(z.im, v)
	} else {
		// |v| = sqrt((r-re)/2); the sign follows im, with +0 treated as
		// positive so the negative real axis maps onto the +i half-line.
		v.Sub(r, z.re).Mul(v, half)
		v.Sqrt(v)
		if z.im.Sign() < 0 {
			v.Neg(v)
		}
		// u = im / (2v)
		u.Add(v, v)
		u.Quo(z.im, u)
	}

	return &Complex{re: round(u, p), im: round(v, p)}
}
