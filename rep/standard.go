// SPDX-License-Identifier: MIT

package rep

import (
	"fmt"

	"github.com/katalvlaran/sl2word/bigcplx"
	"github.com/katalvlaran/sl2word/mat2"
)

// Standard is the built-in representation family F₂ → SL(2,ℂ):
//
//	image('a') = [ cz  c  ]   with c = 1/√(z²−1)
//	             [ c   cz ]
//
//	image('b') = [ cy  ci ]   with y = −z/√(z²−1), c = 1/√(y²−1)
//	             [ −ci cy ]
//
// where i is the imaginary unit and √ is the principal branch. Both
// images have determinant exactly 1 in exact arithmetic:
// det(image('a')) = c²z² − c² = (z²−1)/(z²−1), and likewise for 'b'.
//
// The family degenerates where a square root collapses to exact zero
// (z² = 1, or the induced y² = 1); Generators reports ErrDegenerate
// there instead of dividing by zero.
type Standard struct{}

// Generators implements Family.
// Complexity: a constant number of guarded complex operations.
func (Standard) Generators(z *bigcplx.Complex) (*mat2.Matrix, *mat2.Matrix, error) {
	one := bigcplx.One(z.Prec())

	// image('a'): c = 1/sqrt(z²−1).
	root := z.Square().Sub(one).Sqrt()
	c, err := root.Inv()
	if err != nil {
		return nil, nil, fmt.Errorf("image of 'a' at z = %s: %w", z, ErrDegenerate)
	}
	cz := c.Mul(z)
	imgA := mat2.New(cz, c, c, cz)

	// image('b'): y = −z/sqrt(z²−1), then the same construction rotated
	// by the imaginary unit.
	y, err := z.Neg().Div(root)
	if err != nil {
		// Unreachable: root proved invertible above. Kept for symmetry.
		return nil, nil, fmt.Errorf("image of 'b' at z = %s: %w", z, ErrDegenerate)
	}
	rootB := y.Square().Sub(one).Sqrt()
	cb, err := rootB.Inv()
	if err != nil {
		return nil, nil, fmt.Errorf("image of 'b' at z = %s: %w", z, ErrDegenerate)
	}
	cy := cb.Mul(y)
	ci := cb.Mul(bigcplx.I(z.Prec()))
	imgB := mat2.New(cy, ci, ci.Neg(), cy)

	return imgA, imgB, nil
}
