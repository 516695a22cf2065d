// SPDX-License-Identifier: MIT
// Package bigcplx: MPFR-style text rendering.
// A complex value renders as "(re im)". Each real part prints with a
// precision-derived significant-digit count: plainly when the decimal
// point lands inside the digit window, otherwise in scientific form with
// a bare exponent ("e-1", not "e-01"). Exact zero prints as "0".

package bigcplx

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Digits returns the significant-digit count used to print values carrying
// prec bits: 1+⌈prec·log₁₀2⌉, i.e. enough digits for an exact decimal
// round-trip. 100 bits ⇒ 32 digits.
// Complexity: O(1).
func Digits(prec uint) int {
	return 1 + int(math.Ceil(float64(prec)*math.Log10(2)))
}

// FormatFloat renders x with the given count of significant digits.
// Values whose decimal exponent e satisfies 0 ≤ e < digits print plainly
// ("10.554…"); everything else prints as "d.ddd…e±x" with the exponent
// stripped of padding. Exact zero renders as "0".
func FormatFloat(x *big.Float, digits int) string {
	if digits < 1 {
		digits = 1
	}
	if x.Sign() == 0 {
		return "0"
	}

	// big.Float.Text gives "d.ddd…e±xx" with a zero-padded exponent.
	s := x.Text('e', digits-1)
	mant, expStr, ok := strings.Cut(s, "e")
	if !ok {
		// Inf carries no exponent; pass it through untouched.
		return s
	}
	exp, err := strconv.Atoi(expStr)
	if err != nil {
		return s
	}

	neg := strings.HasPrefix(mant, "-")
	mant = strings.TrimPrefix(mant, "-")
	all := strings.Replace(mant, ".", "", 1) // exactly `digits` digit runes

	var out string
	if exp >= 0 && exp < len(all)-1 {
		// Decimal point lands inside the digit window: print plainly.
		out = all[:exp+1] + "." + all[exp+1:]
	} else {
		out = mant + "e" + strconv.Itoa(exp)
	}
	if neg {
		out = "-" + out
	}

	return out
}

// Format renders z as "(re im)" with the given significant-digit count.
func (z *Complex) Format(digits int) string {
	return fmt.Sprintf("(%s %s)", FormatFloat(z.re, digits), FormatFloat(z.im, digits))
}

// String renders z with the digit count derived from its own precision.
// Satisfies fmt.Stringer.
func (z *Complex) String() string {
	return z.Format(Digits(z.Prec()))
}
