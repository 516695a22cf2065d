// SPDX-License-Identifier: MIT
// Package bigcplx: sentinel error set.
// All user-triggered failure modes surface as these sentinels; callers
// match them with errors.Is. Panics are reserved for programmer errors
// (negative precision requests and the like).

package bigcplx

import "errors"

var (
	// ErrZeroInverse is returned by Inv and Div when the divisor is exactly
	// zero. The reciprocal is undefined there; the value is never coerced
	// to zero or infinity.
	ErrZeroInverse = errors.New("bigcplx: inverse of exact zero")

	// ErrParse is returned when a textual real or imaginary part cannot be
	// read as a decimal floating-point number.
	ErrParse = errors.New("bigcplx: malformed numeric literal")
)
