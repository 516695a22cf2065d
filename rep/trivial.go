// SPDX-License-Identifier: MIT

package rep

import (
	"github.com/katalvlaran/sl2word/bigcplx"
	"github.com/katalvlaran/sl2word/mat2"
)

// Trivial maps both generators to the identity matrix at z's precision.
// Every word then evaluates to the identity, regardless of z.
type Trivial struct{}

// Generators implements Family.
func (Trivial) Generators(z *bigcplx.Complex) (*mat2.Matrix, *mat2.Matrix, error) {
	return mat2.Identity(z.Prec()), mat2.Identity(z.Prec()), nil
}
