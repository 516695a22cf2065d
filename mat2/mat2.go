// SPDX-License-Identifier: MIT
// Package mat2: the Matrix type and its algebra kernels.
// All kernels treat matrices as immutable values: inputs are never
// mutated, results are freshly allocated at the operand precision.

package mat2

import (
	"fmt"

	"github.com/katalvlaran/sl2word/bigcplx"
)

// Matrix is an immutable 2×2 matrix of complex values in row-major order:
//
//	[ m00 m01 ]
//	[ m10 m11 ]
//
// All four cells carry the same bit precision, fixed at construction.
// Construct via New or Identity; the zero value is not usable.
type Matrix struct {
	m00, m01 *bigcplx.Complex // first row
	m10, m11 *bigcplx.Complex // second row
}

// New builds a matrix from four cells in row-major order. The cells are
// retained, not copied — bigcplx values are immutable, so sharing is safe.
// Panics on a nil cell (programmer error).
func New(m00, m01, m10, m11 *bigcplx.Complex) *Matrix {
	if m00 == nil || m01 == nil || m10 == nil || m11 == nil {
		panic("mat2: New called with a nil cell")
	}

	return &Matrix{m00: m00, m01: m01, m10: m10, m11: m11}
}

// Identity returns the 2×2 identity matrix at prec bits.
// Complexity: O(1).
func Identity(prec uint) *Matrix {
	return &Matrix{
		m00: bigcplx.One(prec), m01: bigcplx.New(prec),
		m10: bigcplx.New(prec), m11: bigcplx.One(prec),
	}
}

// Prec reports the bit precision carried by the matrix cells.
func (m *Matrix) Prec() uint { return m.m00.Prec() }

// At returns the cell at row i, column j (both in 0..1).
// Panics on an out-of-range index (programmer error; the index space is
// a compile-time-known 2×2 grid).
func (m *Matrix) At(i, j int) *bigcplx.Complex {
	switch {
	case i == 0 && j == 0:
		return m.m00
	case i == 0 && j == 1:
		return m.m01
	case i == 1 && j == 0:
		return m.m10
	case i == 1 && j == 1:
		return m.m11
	default:
		panic(fmt.Sprintf("mat2: index (%d,%d) out of range", i, j))
	}
}

// Mul returns the matrix product m·n. Matrix multiplication is not
// commutative: m.Mul(n) applies m on the left, and word evaluation
// depends on this order.
// Complexity: 8 complex multiplications + 4 additions, O(M(P)).
func (m *Matrix) Mul(n *Matrix) *Matrix {
	return &Matrix{
		m00: m.m00.Mul(n.m00).Add(m.m01.Mul(n.m10)),
		m01: m.m00.Mul(n.m01).Add(m.m01.Mul(n.m11)),
		m10: m.m10.Mul(n.m00).Add(m.m11.Mul(n.m10)),
		m11: m.m10.Mul(n.m01).Add(m.m11.Mul(n.m11)),
	}
}

// Det returns the determinant m00·m11 − m01·m10.
// Complexity: O(M(P)).
func (m *Matrix) Det() *bigcplx.Complex {
	return m.m00.Mul(m.m11).Sub(m.m01.Mul(m.m10))
}

// Inv returns the matrix inverse (1/det)·adj(m), where
// adj(m) = [[m11, −m01], [−m10, m00]].
// Returns ErrSingular when the determinant is exactly zero.
// Complexity: O(M(P)).
func (m *Matrix) Inv() (*Matrix, error) {
	det := m.Det()
	invDet, err := det.Inv()
	if err != nil {
		return nil, ErrSingular
	}

	return &Matrix{
		m00: invDet.Mul(m.m11),
		m01: invDet.Mul(m.m01.Neg()),
		m10: invDet.Mul(m.m10.Neg()),
		m11: invDet.Mul(m.m00),
	}, nil
}

// Trace returns the sum of the diagonal cells, the scalar invariant
// reported for every evaluated word.
// Complexity: O(P).
func (m *Matrix) Trace() *bigcplx.Complex {
	return m.m00.Add(m.m11)
}

// Equal reports exact cell-wise equality.
func (m *Matrix) Equal(n *Matrix) bool {
	return m.m00.Equal(n.m00) && m.m01.Equal(n.m01) &&
		m.m10.Equal(n.m10) && m.m11.Equal(n.m11)
}

// Format renders the matrix as two rows of "(re im)" pairs with the given
// significant-digit count, rows separated by a newline.
func (m *Matrix) Format(digits int) string {
	return fmt.Sprintf("%s %s\n%s %s",
		m.m00.Format(digits), m.m01.Format(digits),
		m.m10.Format(digits), m.m11.Format(digits))
}

// String renders the matrix with the digit count derived from its
// precision. Satisfies fmt.Stringer.
func (m *Matrix) String() string {
	return m.Format(bigcplx.Digits(m.Prec()))
}
